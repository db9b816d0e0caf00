package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

// Hero renders the top banner.
func Hero(h models.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-grid"),
			Div(
				Class("hero-copy"),
				H1(animate(animFadeUp, 0), g.Text(h.Headline)),
				P(Class("hero-subheadline"), animate(animFadeUp, 0.2), g.Text(h.Subheadline)),
				P(Class("hero-credentials"), animate(animFadeUp, 0.3), g.Text(h.Credentials)),
				Div(
					Class("hero-actions"),
					animate(animFadeUp, 0.4),
					A(Class("btn btn-primary"), Href(h.PrimaryCTA.Href), g.Text(h.PrimaryCTA.Name)),
					A(Class("btn btn-outline"), Href(h.SecondaryCTA.Href), g.Text(h.SecondaryCTA.Name)),
				),
			),
			Div(
				Class("hero-media"),
				animate(animScale, 0.2),
				img(h.Image, h.ImageAlt, "rounded shadow"),
			),
		),
		Div(Class("container"), animate(animFadeUp, 0.6), stats(h.Stats)),
	)
}
