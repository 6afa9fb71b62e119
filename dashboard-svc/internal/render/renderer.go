// Package render turns a restaurant record into a tree of display blocks and
// draws that tree as HTML. All record text passes through html/template and is
// escaped on output.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer draws composed pages.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	funcMap := template.FuncMap{
		"section": r.section,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Render writes the full HTML document for page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// section draws one block with its own template. The result is already
// escaped, so it is returned as trusted HTML for embedding in the parent.
func (r *Renderer) section(b Block) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, b.TemplateName(), b); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
