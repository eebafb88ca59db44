package npmdocs

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-npmdocs/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ ManRenderer            = (*pipeline.Md2ManRenderer)(nil)
	_ HTMLRenderer           = (*pipeline.HTMLRenderer)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
)

// Builder expands documents and renders them to the enabled formats.
// Create with NewBuilder. A Builder is safe for concurrent use.
type Builder struct {
	version        string
	program        string
	launcher       string
	launcherTarget string
	commandsDir    string
	configDoc      string
	outputs        Outputs
	man            ManRenderer
	html           HTMLRenderer
	subst          *pipeline.Substituter
}

// NewBuilder creates a Builder reading command and option data from reg.
// Without WithManRenderer, man pages render through go-md2man with a
// "<PROGRAM>@<version>" source field. Without WithHTMLRenderer, HTML uses the
// embedded stylesheet and page template.
func NewBuilder(reg Registry, opts ...Option) (*Builder, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	b := &Builder{
		program:        "npm",
		launcher:       "npx",
		launcherTarget: "exec",
		commandsDir:    pipeline.DefaultCommandsDir,
		configDoc:      pipeline.DefaultConfigDoc,
		outputs:        AllOutputs,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.commandsDir = strings.Trim(strings.ReplaceAll(b.commandsDir, "\\", "/"), "/")
	b.configDoc = strings.TrimPrefix(strings.ReplaceAll(b.configDoc, "\\", "/"), "/")

	resolver := pipeline.NewResolver(reg, reg)
	resolver.Program = b.program
	resolver.Launcher = b.launcher
	resolver.LauncherTarget = b.launcherTarget

	b.subst = &pipeline.Substituter{
		Version:    b.version,
		Resolver:   resolver,
		Aliases:    reg,
		Options:    reg,
		Shorthands: reg,
	}

	if b.man == nil {
		b.man = &pipeline.Md2ManRenderer{Source: manSource(b.program, b.version)}
	}

	if b.html == nil && b.outputs.HTML {
		r, err := NewHTMLRenderer(HTMLOptions{Program: b.program, Version: b.version})
		if err != nil {
			return nil, fmt.Errorf("initializing HTML renderer: %w", err)
		}
		b.html = r
	}

	return b, nil
}

func manSource(program, version string) string {
	if version == "" {
		return strings.ToUpper(program)
	}
	return strings.ToUpper(program) + "@" + version
}

// Build expands doc and renders every enabled artifact. Any error fails the
// whole document; nothing is returned partially. The context is checked
// between stages. Recovers from internal panics.
func (b *Builder) Build(ctx context.Context, doc *Document) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if doc == nil {
		return nil, ErrNilDocument
	}
	if doc.Path == "" {
		return nil, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := b.Expand(doc)
	if err != nil {
		return nil, err
	}

	res := &Result{Path: doc.Path}

	if b.outputs.Markdown {
		res.Artifacts = append(res.Artifacts, Artifact{
			Kind:    KindMarkdown,
			Path:    doc.Path,
			Content: pipeline.ToMarkdownWithFrontmatter(body, doc.Frontmatter),
		})
	}

	if b.outputs.Man && doc.Section != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		manBody, err := b.subst.ReplaceHelpLinks(body, doc.Path)
		if err != nil {
			return nil, err
		}
		page, err := pipeline.ToManPage(ctx, manBody, doc.meta(), b.man)
		if err != nil {
			return nil, fmt.Errorf("rendering man page: %w", err)
		}
		res.Artifacts = append(res.Artifacts, Artifact{
			Kind:    KindMan,
			Path:    pipeline.ManPagePath(doc.Name(), doc.Section),
			Content: page,
		})
	}

	if b.outputs.HTML && b.html != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		meta := doc.meta()
		page, err := b.html.Render(ctx, body, HTMLPage{
			Path:        doc.Path,
			Title:       meta.Title,
			Description: meta.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("rendering HTML: %w", err)
		}
		res.Artifacts = append(res.Artifacts, Artifact{
			Kind:    KindHTML,
			Path:    pipeline.HTMLPath(doc.Path),
			Content: page,
		})
	}

	return res, nil
}

// Expand runs the substitutions that apply to doc and returns the expanded
// body without front matter.
func (b *Builder) Expand(doc *Document) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}

	body := doc.Body
	for _, stage := range b.plan(doc.Path) {
		var err error
		body, err = stage(body, doc.Path)
		if err != nil {
			return "", err
		}
	}
	return body, nil
}

// plan lists the substitution stages for a document path. Version
// replacement runs last, after registry text is in place.
func (b *Builder) plan(docPath string) []pipeline.Transform {
	var stages []pipeline.Transform

	if b.isCommandDoc(docPath) {
		stages = append(stages, b.subst.ReplaceUsage, b.subst.ReplaceParams)
	}
	if docPath == b.configDoc {
		stages = append(stages, b.subst.ReplaceConfig, b.subst.ReplaceShorthands)
	}

	return append(stages, b.subst.ReplaceVersion)
}

func (b *Builder) isCommandDoc(docPath string) bool {
	if b.commandsDir == "" {
		return false
	}
	return strings.HasPrefix(docPath, b.commandsDir+"/")
}
