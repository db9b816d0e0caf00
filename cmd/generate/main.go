package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"aicloudmania.dev/internal/content"
	"aicloudmania.dev/internal/models"
	"aicloudmania.dev/internal/views"
)

// output is one generated file
type output struct {
	name   string
	render func(site *models.Site) ([]byte, error)
}

var outputs = []output{
	{name: "index.html", render: renderPage},
	{name: "content.yaml", render: content.Marshal},
	{name: "projects.json", render: renderProjects},
}

func main() {
	contentPath := flag.String("content", "", "content file to render instead of the built-in content")
	flag.Usage = func() {
		fmt.Println("Usage: generate [-content site.yaml] <output-dir>")
		fmt.Println()
		fmt.Println("Writes a static index.html, the content as YAML, and projects.json.")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputDir := flag.Arg(0)

	site := content.Default()
	if *contentPath != "" {
		loaded, err := content.Load(*contentPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load content: %v\n", err)
			os.Exit(1)
		}
		site = loaded
	}

	if err := generate(outputDir, site); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

// generate writes every output into dir atomically.
func generate(dir string, site *models.Site) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, out := range outputs {
		data, err := out.render(site)
		if err != nil {
			return fmt.Errorf("render %s: %w", out.name, err)
		}
		path := filepath.Join(dir, out.name)
		if err := renameio.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out.name, err)
		}
		fmt.Printf("  Created %s (%d bytes)\n", out.name, len(data))
	}
	return nil
}

// renderPage renders the page with every technology shown and an empty form.
func renderPage(site *models.Site) ([]byte, error) {
	var buf bytes.Buffer
	err := views.Render(&buf, views.PageData{
		Site:         site,
		Category:     models.CategoryAll,
		Technologies: site.Technologies,
	})
	return buf.Bytes(), err
}

func renderProjects(site *models.Site) ([]byte, error) {
	return json.MarshalIndent(site.Projects, "", "  ")
}
