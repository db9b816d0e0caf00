// Package views renders the landing page with gomponents. Sections are
// plain functions of the content models; the browser-side entrance
// animations are driven by data-animate attributes and static/js/site.js.
package views

import (
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/models"
)

// BackToTopThreshold is the scroll offset in pixels after which the
// back-to-top button is shown.
const BackToTopThreshold = 300

// PageData is everything needed to render the landing page.
type PageData struct {
	Site         *models.Site
	Category     string
	Technologies []models.Technology
	Form         ContactForm
}

// ContactForm carries the state of the contact form across a round trip.
type ContactForm struct {
	Values models.ContactRequest
	Errors map[string]string
	Notice *Notice
}

// Notice is the confirmation or error banner shown above the form.
type Notice struct {
	Kind        string // "success" or "error"
	Title       string
	Description string
}

// SuccessNotice is shown after a message was accepted.
func SuccessNotice() *Notice {
	return &Notice{
		Kind:        "success",
		Title:       "Message Sent Successfully!",
		Description: "Thank you for your message. We will get back to you within 24 hours.",
	}
}

// ErrorNotice is shown when the delivery backend rejected a message.
func ErrorNotice() *Notice {
	return &Notice{
		Kind:        "error",
		Title:       "Error",
		Description: "There was an error sending your message. Please try again.",
	}
}

// Render writes the full HTML document for data to w.
func Render(w io.Writer, data PageData) error {
	return Page(data).Render(w)
}

// Page composes the sections in their fixed order.
func Page(data PageData) g.Node {
	site := data.Site
	return c.HTML5(c.HTML5Props{
		Title:       site.Company.Name + " - " + site.Company.Tagline,
		Description: site.Hero.Subheadline,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(Rel("stylesheet"), Href("/static/css/site.css")),
			Script(Src("/static/js/site.js"), Defer()),
		},
		Body: []g.Node{
			Div(ID("top"), Class("min-h-screen"),
				Navbar(site),
				Main(
					Hero(site.Hero),
					Services(site.Services),
					Technologies(site.Categories, data.Category, data.Technologies),
					About(site.Company, site.About),
					Portfolio(site.Projects),
					Contact(site.Contact, data.Form),
				),
				PageFooter(site.Company, site.Footer),
				BackToTop(),
			),
		},
	})
}
