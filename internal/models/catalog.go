package models

// Service represents a consulting offering
type Service struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	Icon        string   `json:"icon" yaml:"icon"`
	Color       string   `json:"color" yaml:"color"`
}

// CategoryAll selects every technology regardless of category.
const CategoryAll = "all"

// Category is a technology filter bucket
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Technology is a single entry of the technology showcase
type Technology struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Icon     string `json:"icon" yaml:"icon"`
	Color    string `json:"color" yaml:"color"`
}

// TeamMember represents a person on the about section
type TeamMember struct {
	Name      string `json:"name" yaml:"name"`
	Role      string `json:"role" yaml:"role"`
	Specialty string `json:"specialty" yaml:"specialty"`
	Image     string `json:"image" yaml:"image"`
	Color     string `json:"color" yaml:"color"`
}

// Stat is a headline number with a caption
type Stat struct {
	Number string `json:"number" yaml:"number"`
	Label  string `json:"label" yaml:"label"`
}
