// Package web carries the embedded HTML pages. Rendering is deliberately
// thin: each page is a small standalone template fed by its handler.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
