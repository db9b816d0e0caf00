package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

// Animation kinds understood by site.js and site.css.
const (
	animFadeUp     = "fade-up"
	animFade       = "fade"
	animSlideLeft  = "slide-left"
	animSlideRight = "slide-right"
	animScale      = "scale"
)

// animate marks a block for a one-time entrance animation that starts
// delay seconds after it scrolls into view.
func animate(kind string, delay float64) g.Node {
	return g.Group{
		Data("animate", kind),
		Style(fmt.Sprintf("--delay: %.2fs", delay)),
	}
}

func icon(name, color string) g.Node {
	return Span(Class("icon icon-"+name+" text-"+color), Aria("hidden", "true"))
}

func sectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("section-heading text-center"),
		animate(animFadeUp, 0),
		H2(Class("section-title"), g.Text(title)),
		g.If(subtitle != "", P(Class("section-subtitle"), g.Text(subtitle))),
	)
}

func stats(items []models.Stat) g.Node {
	return Div(
		Class("stats grid"),
		g.Map(items, func(s models.Stat) g.Node {
			return Div(
				Class("stat"),
				Strong(Class("stat-number"), g.Text(s.Number)),
				Span(Class("stat-label"), g.Text(s.Label)),
			)
		}),
	)
}

func img(src, alt string, classes string) g.Node {
	return Img(Src(src), Alt(alt), Class(classes), g.Attr("loading", "lazy"))
}
