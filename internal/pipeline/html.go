package pipeline

import (
	"context"
	"fmt"
	"html/template"
)

// HTMLPage describes the document being rendered to HTML.
type HTMLPage struct {
	Path        string // content-relative document path
	Title       string
	Description string
}

// HTMLRenderer converts expanded markdown into a complete site page.
type HTMLRenderer struct {
	Converter   HTMLConverter
	Page        *Page
	Nav         Nav
	Style       string
	Program     string
	Version     string
	TOCMinDepth int
	TOCMaxDepth int
}

// Render converts src, rewrites doc links, then lays the fragment out with
// the table of contents and navigation.
func (r *HTMLRenderer) Render(ctx context.Context, src string, page HTMLPage) (string, error) {
	fragment, err := r.Converter.ToHTML(ctx, src)
	if err != nil {
		return "", err
	}

	pagePath := HTMLPath(page.Path)
	fragment, err = RewriteDocLinks(fragment, pagePath)
	if err != nil {
		return "", fmt.Errorf("%w: rewriting links: %v", ErrHTMLConversion, err)
	}

	minDepth, maxDepth := r.TOCMinDepth, r.TOCMaxDepth
	if minDepth == 0 {
		minDepth = DefaultTOCMinDepth
	}
	if maxDepth == 0 {
		maxDepth = DefaultTOCMaxDepth
	}

	return r.Page.Render(ctx, &PageData{
		Title:       page.Title,
		Description: page.Description,
		Program:     r.Program,
		Version:     r.Version,
		Style:       template.CSS(r.Style),   // #nosec G203 -- stylesheet from assets
		Content:     template.HTML(fragment), // #nosec G203 -- goldmark output
		TOC:         ExtractTOC(fragment, minDepth, maxDepth),
		Nav:         r.Nav.ForPage(page.Path),
	})
}
