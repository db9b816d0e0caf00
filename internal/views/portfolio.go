package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

// Portfolio renders the case studies with a 0.2s stagger.
func Portfolio(projects []models.Project) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, projectCard(p, 0.2*float64(i)))
	}
	return Section(
		ID("portfolio"),
		Class("section section-alt"),
		Div(
			Class("container"),
			sectionHeading("Our Portfolio", "Real-world solutions delivering measurable business impact"),
			Div(Class("grid grid-2"), g.Group(cards)),
		),
	)
}

func projectCard(p models.Project, delay float64) g.Node {
	return Article(
		Class("card project-card"),
		ID("project-"+p.ID),
		animate(animFadeUp, delay),
		img(p.Image, p.Title, "project-image"),
		Div(
			Class("card-body"),
			Span(Class("badge"), g.Text(p.Category)),
			H3(g.Text(p.Title)),
			Div(
				Class("tags"),
				g.Map(p.Tags, func(t models.Tag) g.Node {
					return Span(Class("tag tag-"+t.Color), g.Text(t.Label))
				}),
			),
			caseStudyRow("Challenge", p.Challenge),
			caseStudyRow("Solution", p.Solution),
			Div(
				Class("case-row"),
				H4(g.Text("Results")),
				Ol(
					Class("case-results"),
					g.Map(p.Results, func(r string) g.Node { return Li(g.Text(r)) }),
				),
			),
		),
	)
}

func caseStudyRow(label, text string) g.Node {
	return Div(
		Class("case-row"),
		H4(g.Text(label)),
		P(g.Text(text)),
	)
}
