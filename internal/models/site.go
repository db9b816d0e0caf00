package models

// Site aggregates everything rendered on the landing page
type Site struct {
	Company      Company        `json:"company" yaml:"company"`
	Hero         Hero           `json:"hero" yaml:"hero"`
	Services     []Service      `json:"services" yaml:"services"`
	Categories   []Category     `json:"categories" yaml:"categories"`
	Technologies []Technology   `json:"technologies" yaml:"technologies"`
	About        About          `json:"about" yaml:"about"`
	Projects     []Project      `json:"projects" yaml:"projects"`
	Contact      ContactSection `json:"contact" yaml:"contact"`
	Footer       Footer         `json:"footer" yaml:"footer"`
}

// Company holds branding shared across sections
type Company struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Country string `json:"country" yaml:"country"`
}

// Hero is the top banner
type Hero struct {
	Headline     string `json:"headline" yaml:"headline"`
	Subheadline  string `json:"subheadline" yaml:"subheadline"`
	Credentials  string `json:"credentials" yaml:"credentials"`
	Image        string `json:"image" yaml:"image"`
	ImageAlt     string `json:"image_alt" yaml:"image_alt"`
	Stats        []Stat `json:"stats" yaml:"stats"`
	PrimaryCTA   Link   `json:"primary_cta" yaml:"primary_cta"`
	SecondaryCTA Link   `json:"secondary_cta" yaml:"secondary_cta"`
}

// About describes the company and its team
type About struct {
	Summary  string       `json:"summary" yaml:"summary"`
	Image    string       `json:"image" yaml:"image"`
	ImageAlt string       `json:"image_alt" yaml:"image_alt"`
	Stats    []Stat       `json:"stats" yaml:"stats"`
	Values   []string     `json:"values" yaml:"values"`
	Team     []TeamMember `json:"team" yaml:"team"`
}

// ContactSection holds the form option lists and side cards
type ContactSection struct {
	Services       []Option        `json:"services" yaml:"services"`
	Budgets        []Option        `json:"budgets" yaml:"budgets"`
	Info           []ContactInfo   `json:"info" yaml:"info"`
	Certifications []Certification `json:"certifications" yaml:"certifications"`
}

// Footer holds the closing links
type Footer struct {
	Blurb        string       `json:"blurb" yaml:"blurb"`
	ServiceLinks []string     `json:"service_links" yaml:"service_links"`
	CompanyLinks []Link       `json:"company_links" yaml:"company_links"`
	Social       []SocialLink `json:"social" yaml:"social"`
	Copyright    string       `json:"copyright" yaml:"copyright"`
}

// Link is a labelled in-page or external link
type Link struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

// SocialLink is an icon link in the footer
type SocialLink struct {
	Icon string `json:"icon" yaml:"icon"`
	Href string `json:"href" yaml:"href"`
}

// CategoryLabel returns the label of the category with the given id.
func (s *Site) CategoryLabel(id string) string {
	for _, c := range s.Categories {
		if c.ID == id {
			return c.Label
		}
	}
	return ""
}
