// Package templates renders recommendations as markdown documents.
//
// Templates are embedded at build time and parsed once by NewRenderer.
// Two layouts exist: the full report shown after every evaluation, and
// a condensed one-pager meant for printing or sharing.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed files/*.md.tmpl
var files embed.FS

// Template names.
const (
	Report   = "report.md.tmpl"
	OnePager = "onepager.md.tmpl"
)

// Renderer turns template data into markdown.
// Abstracted so tool handlers can be tested with a stub.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// EmbedRenderer renders the embedded templates.
type EmbedRenderer struct {
	tmpl *template.Template
}

// NewRenderer parses all embedded templates.
func NewRenderer() (*EmbedRenderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(files, "files/*.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &EmbedRenderer{tmpl: tmpl}, nil
}

// Render executes the named template with data.
func (r *EmbedRenderer) Render(name string, data any) (string, error) {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

var funcs = template.FuncMap{
	// listOr joins items, or returns fallback when there are none.
	"listOr": func(items []string, fallback string) string {
		if len(items) == 0 {
			return fallback
		}
		return strings.Join(items, ", ")
	},
}
