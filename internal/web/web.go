// Package web holds the HTML views of the catalog, embedded at build time.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every view. Each file defines named templates
// ("genre_list", "author_form", ...) that handlers render by name.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for process start-up and tests.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
