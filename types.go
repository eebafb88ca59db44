package npmdocs

import (
	"context"

	"github.com/alnah/go-npmdocs/internal/pipeline"
)

// ManRenderer turns markdown with a "# title(section) - description" header
// into roff.
type ManRenderer = pipeline.ManRenderer

// HTMLPage describes the document an HTMLRenderer lays out.
type HTMLPage = pipeline.HTMLPage

// HTMLRenderer turns an expanded markdown body into a complete HTML page.
type HTMLRenderer interface {
	Render(ctx context.Context, src string, page HTMLPage) (string, error)
}

// Outputs selects the artifacts a build produces.
type Outputs struct {
	Markdown bool
	Man      bool
	HTML     bool
}

// AllOutputs enables every output format.
var AllOutputs = Outputs{Markdown: true, Man: true, HTML: true}

// Kind identifies an artifact's output format.
type Kind string

// Artifact kinds.
const (
	KindMarkdown Kind = "md"
	KindMan      Kind = "man"
	KindHTML     Kind = "html"
)

// Artifact is one rendered file. Path is slash separated and relative to the
// output root of its Kind.
type Artifact struct {
	Kind    Kind
	Path    string
	Content string
}

// Result holds the artifacts built from a single document.
type Result struct {
	Path      string // source document path
	Artifacts []Artifact
}

// Artifact returns the artifact of the given kind, if built.
func (r *Result) Artifact(kind Kind) (Artifact, bool) {
	for _, a := range r.Artifacts {
		if a.Kind == kind {
			return a, true
		}
	}
	return Artifact{}, false
}

// Option configures a Builder.
type Option func(*Builder)

// WithVersion sets the value substituted for @VERSION@.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.version = version
	}
}

// WithProgram sets the top-level program name used for command resolution
// and help links. Defaults to "npm".
func WithProgram(program string) Option {
	return func(b *Builder) {
		b.program = program
	}
}

// WithLauncher sets the launcher alias document name and the command it
// proxies to. An empty name disables launcher resolution.
func WithLauncher(name, target string) Option {
	return func(b *Builder) {
		b.launcher = name
		b.launcherTarget = target
	}
}

// WithCommandsDir sets the content directory holding command documents.
func WithCommandsDir(dir string) Option {
	return func(b *Builder) {
		b.commandsDir = dir
	}
}

// WithConfigDoc sets the content path of the config reference document.
func WithConfigDoc(docPath string) Option {
	return func(b *Builder) {
		b.configDoc = docPath
	}
}

// WithManRenderer replaces the go-md2man renderer.
func WithManRenderer(r ManRenderer) Option {
	return func(b *Builder) {
		b.man = r
	}
}

// WithHTMLRenderer replaces the default HTML renderer, which uses the
// embedded assets and no navigation.
func WithHTMLRenderer(r HTMLRenderer) Option {
	return func(b *Builder) {
		b.html = r
	}
}

// WithOutputs selects the output formats. Defaults to AllOutputs.
func WithOutputs(o Outputs) Option {
	return func(b *Builder) {
		b.outputs = o
	}
}
