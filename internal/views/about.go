package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

// About renders the company summary and the team grid. Team members
// appear after the summary, staggered by 0.1s starting at 0.6s.
func About(company models.Company, a models.About) g.Node {
	team := make([]g.Node, 0, len(a.Team))
	for i, m := range a.Team {
		team = append(team, teamCard(m, 0.6+0.1*float64(i)))
	}
	return Section(
		ID("about"),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading("About "+company.Name, ""),
			Div(
				Class("about-grid"),
				Div(
					animate(animSlideLeft, 0),
					P(Class("lead"), g.Text(a.Summary)),
					stats(a.Stats),
					Ul(
						Class("values"),
						g.Map(a.Values, func(v string) g.Node {
							return Li(icon("check", "success-green"), g.Text(v))
						}),
					),
				),
				Div(animate(animSlideRight, 0.2), img(a.Image, a.ImageAlt, "rounded shadow")),
			),
			H3(Class("team-title"), animate(animFadeUp, 0.5), g.Text("Meet Our Team")),
			Div(Class("grid grid-4 team-grid"), g.Group(team)),
		),
	)
}

func teamCard(m models.TeamMember, delay float64) g.Node {
	return Div(
		Class("card team-card"),
		animate(animFadeUp, delay),
		img(m.Image, m.Name, "avatar ring-"+m.Color),
		H4(g.Text(m.Name)),
		P(Class("role text-"+m.Color), g.Text(m.Role)),
		P(Class("specialty"), g.Text(m.Specialty)),
	)
}
