package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

// Services renders the offering cards with a 0.1s stagger.
func Services(items []models.Service) g.Node {
	cards := make([]g.Node, 0, len(items))
	for i, s := range items {
		cards = append(cards, serviceCard(s, 0.1*float64(i)))
	}
	return Section(
		ID("services"),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading("Our Services", "Comprehensive technology solutions to accelerate your digital transformation"),
			Div(Class("grid grid-4"), g.Group(cards)),
		),
	)
}

func serviceCard(s models.Service, delay float64) g.Node {
	return Article(
		Class("card service-card"),
		ID("service-"+s.ID),
		animate(animFadeUp, delay),
		Div(Class("icon-badge bg-"+s.Color), icon(s.Icon, "white")),
		H3(g.Text(s.Title)),
		P(g.Text(s.Description)),
		Ul(
			Class("features"),
			g.Map(s.Features, func(f string) g.Node {
				return Li(g.Text(f))
			}),
		),
	)
}
