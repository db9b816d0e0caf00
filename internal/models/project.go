package models

// Project represents a portfolio case study
type Project struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Category  string   `json:"category" yaml:"category"`
	Image     string   `json:"image" yaml:"image"`
	Tags      []Tag    `json:"tags" yaml:"tags"`
	Challenge string   `json:"challenge" yaml:"challenge"`
	Solution  string   `json:"solution" yaml:"solution"`
	Results   []string `json:"results" yaml:"results"`
}

// Tag is a colored label shown on a case study card
type Tag struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}
