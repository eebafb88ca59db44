package npmdocs

import (
	"fmt"

	"github.com/alnah/go-npmdocs/internal/assets"
	"github.com/alnah/go-npmdocs/internal/pipeline"
)

// HTMLOptions configures NewHTMLRenderer. Zero values select the embedded
// assets, no navigation and h2-h3 table of contents.
type HTMLOptions struct {
	Program     string // footer program name
	Version     string // footer version
	Style       string // stylesheet name, without .css
	Template    string // page template name, without .html
	AssetsDir   string // custom asset directory, searched before the embedded assets
	NavPath     string // nav.yml; empty disables navigation
	TOCMinDepth int
	TOCMaxDepth int
}

// NewHTMLRenderer loads the page assets and navigation and returns the
// Goldmark based renderer.
func NewHTMLRenderer(opts HTMLOptions) (HTMLRenderer, error) {
	loader, err := assets.NewAssetResolver(opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	styleName := opts.Style
	if styleName == "" {
		styleName = assets.DefaultStyleName
	}
	style, err := loader.LoadStyle(styleName)
	if err != nil {
		return nil, fmt.Errorf("loading style: %w", err)
	}

	templateName := opts.Template
	if templateName == "" {
		templateName = assets.DefaultTemplateName
	}
	tmpl, err := loader.LoadTemplate(templateName)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	page, err := pipeline.NewPage(tmpl)
	if err != nil {
		return nil, err
	}

	var nav pipeline.Nav
	if opts.NavPath != "" {
		nav, err = pipeline.LoadNav(opts.NavPath)
		if err != nil {
			return nil, err
		}
	}

	return &pipeline.HTMLRenderer{
		Converter:   pipeline.NewGoldmarkConverter(),
		Page:        page,
		Nav:         nav,
		Style:       style,
		Program:     opts.Program,
		Version:     opts.Version,
		TOCMinDepth: opts.TOCMinDepth,
		TOCMaxDepth: opts.TOCMaxDepth,
	}, nil
}
