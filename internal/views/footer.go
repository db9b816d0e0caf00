package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

// PageFooter renders the closing links and copyright line.
func PageFooter(company models.Company, f models.Footer) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Strong(Class("brand"), g.Text(company.Name)),
				P(g.Text(f.Blurb)),
				Div(
					Class("social"),
					g.Map(f.Social, func(s models.SocialLink) g.Node {
						return A(Href(s.Href), Aria("label", s.Icon), icon(s.Icon, "white"))
					}),
				),
			),
			Div(
				H4(g.Text("Services")),
				Ul(g.Map(f.ServiceLinks, func(s string) g.Node {
					return Li(A(Href("#services"), g.Text(s)))
				})),
			),
			Div(
				H4(g.Text("Company")),
				Ul(g.Map(f.CompanyLinks, func(l models.Link) g.Node {
					return Li(A(Href(l.Href), g.Text(l.Name)))
				})),
			),
		),
		Div(Class("container footer-bottom"), P(g.Text(f.Copyright))),
	)
}
