package views

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"aicloudmania.dev/internal/contact"
	"aicloudmania.dev/internal/models"
)

// Contact renders the contact form next to the details and
// certification cards.
func Contact(section models.ContactSection, form ContactForm) g.Node {
	return Section(
		ID("contact"),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading("Get Started Today", "Ready to transform your technology infrastructure? Let's discuss your project requirements."),
			P(Class("response-time text-center"), icon("clock", "primary"), g.Text("We respond within 24 hours")),
			Div(
				Class("contact-grid"),
				Div(Class("card"), animate(animSlideLeft, 0), contactForm(section, form)),
				Div(
					animate(animSlideRight, 0.2),
					contactInfo(section.Info),
					certifications(section.Certifications),
				),
			),
		),
	)
}

func contactForm(section models.ContactSection, form ContactForm) g.Node {
	v := form.Values
	return g.El("form",
		ID("contact-form"),
		Method("post"),
		Action("/contact"),
		Data("api", "/api/contact"),
		g.Attr("novalidate"),
		notice(form.Notice),
		Div(
			Class("form-row"),
			textField(contact.FieldName, "Full Name *", "text", v.Name, form.Errors, true),
			textField(contact.FieldEmail, "Email Address *", "email", v.Email, form.Errors, true),
		),
		Div(
			Class("form-row"),
			textField(contact.FieldPhone, "Phone Number", "tel", v.Phone, form.Errors, false),
			textField(contact.FieldCompany, "Company", "text", v.Company, form.Errors, false),
		),
		Div(
			Class("form-row"),
			selectField(contact.FieldService, "Service Interested In", "Select a service", section.Services, v.Service, form.Errors),
			selectField(contact.FieldBudget, "Project Budget", "Select budget range", section.Budgets, v.Budget, form.Errors),
		),
		field(contact.FieldMessage, "Message *", form.Errors,
			Textarea(
				ID(contact.FieldMessage),
				Name(contact.FieldMessage),
				Rows("5"),
				Placeholder("Tell us about your project requirements..."),
				Required(),
				invalid(contact.FieldMessage, form.Errors),
				g.Text(v.Message),
			),
		),
		Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("Send Message")),
	)
}

func notice(n *Notice) g.Node {
	if n == nil {
		return Div(ID("form-notice"), Class("notice"), Aria("live", "polite"), g.Attr("hidden"))
	}
	role := "status"
	if n.Kind == "error" {
		role = "alert"
	}
	return Div(
		ID("form-notice"),
		Class("notice notice-"+n.Kind),
		Role(role),
		Aria("live", "polite"),
		Strong(g.Text(n.Title)),
		P(g.Text(n.Description)),
	)
}

// field wraps an input with its label and, when present, its error message.
func field(name, label string, errs map[string]string, input g.Node) g.Node {
	msg, bad := errs[name]
	return Div(
		c.Classes{"field": true, "has-error": bad},
		Label(For(name), g.Text(label)),
		input,
		g.If(bad, P(ID(name+"-error"), Class("field-error"), g.Text(msg))),
	)
}

func invalid(name string, errs map[string]string) g.Node {
	if _, bad := errs[name]; !bad {
		return nil
	}
	return g.Group{Aria("invalid", "true"), Aria("describedby", name+"-error")}
}

func textField(name, label, typ, value string, errs map[string]string, required bool) g.Node {
	return field(name, label, errs, Input(
		ID(name),
		Name(name),
		Type(typ),
		Value(value),
		g.If(required, Required()),
		invalid(name, errs),
	))
}

func selectField(name, label, prompt string, opts []models.Option, value string, errs map[string]string) g.Node {
	return field(name, label, errs, Select(
		ID(name),
		Name(name),
		invalid(name, errs),
		Option(Value(""), g.Text(prompt)),
		g.Map(opts, func(o models.Option) g.Node {
			return Option(Value(o.Value), g.If(o.Value == value, Selected()), g.Text(o.Label))
		}),
	))
}

func contactInfo(info []models.ContactInfo) g.Node {
	return Div(
		Class("card contact-info"),
		H3(g.Text("Contact Information")),
		g.Map(info, func(i models.ContactInfo) g.Node {
			return Div(
				Class("info-row"),
				Div(Class("icon-badge bg-"+i.Color), icon(i.Icon, "white")),
				Div(
					Span(Class("info-label"), g.Text(i.Label)),
					P(g.Text(i.Value)),
				),
			)
		}),
	)
}

func certifications(certs []models.Certification) g.Node {
	return Div(
		Class("card certifications"),
		H3(g.Text("Certifications & Compliance")),
		Div(
			Class("grid grid-2"),
			g.Map(certs, func(cert models.Certification) g.Node {
				return Div(
					Class("cert"),
					icon(cert.Icon, cert.Color),
					Strong(g.Text(cert.Name)),
					Span(Class("cert-status"), g.Text(cert.Status)),
				)
			}),
		),
	)
}
