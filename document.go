package npmdocs

import (
	"path"
	"strings"

	"github.com/alnah/go-npmdocs/internal/pipeline"
)

// Document is a markdown source with its front matter. Path is slash
// separated and relative to the content root, e.g. "commands/npm-view.md".
type Document struct {
	Path        string
	Title       string
	Section     string
	Description string
	Frontmatter string // raw YAML between the delimiters
	Body        string
}

// ParseDocument normalizes line endings and splits front matter from body.
// Documents without front matter are accepted with empty metadata.
func ParseDocument(docPath, raw string) (*Document, error) {
	if docPath == "" {
		return nil, ErrEmptyPath
	}

	fm, body, err := pipeline.SplitFrontmatter(pipeline.NormalizeLineEndings(raw))
	if err != nil {
		return nil, err
	}

	meta, err := pipeline.ParseMeta(fm)
	if err != nil {
		return nil, err
	}

	return &Document{
		Path:        strings.ReplaceAll(docPath, "\\", "/"),
		Title:       meta.Title,
		Section:     meta.Section,
		Description: meta.Description,
		Frontmatter: fm,
		Body:        body,
	}, nil
}

// Name is the file name without directory or extension, e.g. "npm-view".
func (d *Document) Name() string {
	return strings.TrimSuffix(path.Base(d.Path), pipeline.DocExt)
}

func (d *Document) meta() pipeline.Meta {
	title := d.Title
	if title == "" {
		title = d.Name()
	}
	return pipeline.Meta{Title: title, Section: d.Section, Description: d.Description}
}

// ManPagePath returns "man<section>/<name>.<section>".
func ManPagePath(name, section string) string {
	return pipeline.ManPagePath(name, section)
}

// HTMLPath swaps the .md extension of a document path for .html.
func HTMLPath(docPath string) string {
	return pipeline.HTMLPath(docPath)
}
