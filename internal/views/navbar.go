package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

var navLinks = []models.Link{
	{Name: "Services", Href: "#services"},
	{Name: "Technologies", Href: "#technologies"},
	{Name: "About", Href: "#about"},
	{Name: "Portfolio", Href: "#portfolio"},
	{Name: "Contact", Href: "#contact"},
}

// Navbar is the fixed top navigation.
func Navbar(site *models.Site) g.Node {
	return Header(
		Class("navbar"),
		Nav(
			Class("container flex items-center justify-between"),
			Aria("label", "Main"),
			A(Class("brand"), Href("#top"), g.Text(site.Company.Name)),
			Ul(
				Class("nav-links"),
				g.Map(navLinks, func(l models.Link) g.Node {
					return Li(A(Href(l.Href), g.Text(l.Name)))
				}),
			),
			A(Class("btn btn-primary"), Href("#contact"), g.Text("Get Started")),
		),
	)
}

// BackToTop is hidden until the page has been scrolled past
// BackToTopThreshold pixels.
func BackToTop() g.Node {
	return A(
		ID("back-to-top"),
		Class("back-to-top"),
		Href("#top"),
		Aria("label", "Back to top"),
		Data("threshold", strconv.Itoa(BackToTopThreshold)),
		icon("arrow-up", "white"),
	)
}
