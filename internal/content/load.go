package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"aicloudmania.dev/internal/models"
)

// Load reads a YAML content file. Unknown fields are rejected.
func Load(path string) (*models.Site, error) {
	// #nosec G304 -- content path is provided by the operator
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML content and validates it.
func Parse(data []byte) (*models.Site, error) {
	var site models.Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content file is empty")
		}
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Marshal encodes site content as YAML in the format Parse accepts.
func Marshal(site *models.Site) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(site); err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks the cross-list constraints of site content.
func Validate(site *models.Site) error {
	var errs []error

	categories := make(map[string]bool, len(site.Categories))
	for _, c := range site.Categories {
		if c.ID == "" {
			errs = append(errs, errors.New("category with empty id"))
			continue
		}
		categories[c.ID] = true
	}
	if !categories[models.CategoryAll] {
		errs = append(errs, fmt.Errorf("categories must include %q", models.CategoryAll))
	}
	for _, t := range site.Technologies {
		if t.Category == models.CategoryAll || !categories[t.Category] {
			errs = append(errs, fmt.Errorf("technology %q has unknown category %q", t.Name, t.Category))
		}
	}

	projects := make(map[string]bool, len(site.Projects))
	for _, p := range site.Projects {
		if p.ID == "" || projects[p.ID] {
			errs = append(errs, fmt.Errorf("project %q has empty or duplicate id", p.Title))
		}
		projects[p.ID] = true
	}

	errs = append(errs, uniqueOptions("service", site.Contact.Services)...)
	errs = append(errs, uniqueOptions("budget", site.Contact.Budgets)...)

	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

func uniqueOptions(kind string, opts []models.Option) []error {
	var errs []error
	seen := make(map[string]bool, len(opts))
	for _, o := range opts {
		if o.Value == "" || seen[o.Value] {
			errs = append(errs, fmt.Errorf("%s option %q has empty or duplicate value", kind, o.Label))
		}
		seen[o.Value] = true
	}
	return errs
}
