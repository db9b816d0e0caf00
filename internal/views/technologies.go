package views

import (
	"net/url"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

// Technologies renders the filter bar and the already filtered grid.
func Technologies(categories []models.Category, active string, techs []models.Technology) g.Node {
	cells := make([]g.Node, 0, len(techs))
	for i, t := range techs {
		cells = append(cells, Div(
			Class("card tech-card"),
			Data("category", t.Category),
			animate(animScale, 0.05*float64(i)),
			icon(t.Icon, t.Color),
			Span(Class("tech-name"), g.Text(t.Name)),
		))
	}
	return Section(
		ID("technologies"),
		Class("section section-alt"),
		Div(
			Class("container"),
			sectionHeading("Technology Stack", "We work with cutting-edge technologies to deliver robust solutions"),
			Div(
				Class("filters"),
				Role("group"),
				Aria("label", "Filter technologies"),
				g.Map(categories, func(cat models.Category) g.Node {
					return filterLink(cat, cat.ID == active)
				}),
			),
			Div(Class("grid grid-4 tech-grid"), g.Group(cells)),
		),
	)
}

func filterLink(cat models.Category, active bool) g.Node {
	return A(
		c.Classes{"filter-btn": true, "active": active},
		Href("/?category="+url.QueryEscape(cat.ID)+"#technologies"),
		Data("category", cat.ID),
		g.If(active, Aria("current", "true")),
		g.Text(cat.Label),
	)
}
