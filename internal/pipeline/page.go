package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrPageRender indicates the page template failed to parse or execute.
var ErrPageRender = errors.New("page template rendering failed")

// PageData is the value the page template executes against.
type PageData struct {
	Title       string
	Description string
	Program     string
	Version     string
	Style       template.CSS
	Content     template.HTML
	TOC         []TOCEntry
	Nav         []NavItem
}

// Page wraps rendered document fragments in the site layout.
type Page struct {
	tmpl *template.Template
}

// NewPage parses the page template.
func NewPage(tmplContent string) (*Page, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return &Page{tmpl: tmpl}, nil
}

// Render executes the template with data.
func (p *Page) Render(ctx context.Context, data *PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}
