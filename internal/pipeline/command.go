package pipeline

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/alnah/go-npmdocs/internal/registry"
)

// Command is the resolved descriptor of a documentation file. It is either an
// Ordinary registry command or a Synthetic one (program root, launcher alias).
type Command interface {
	Name() string
	Usage() string
	// Params returns the option names documented for the command. Nil means
	// there is no config section to render.
	Params() []string
	// Workspaces reports workspace awareness; nil when untracked.
	Workspaces() *bool
	isCommand()
}

// Ordinary is a command found in the registry.
type Ordinary struct {
	name       string
	params     []string
	usage      string
	workspaces *bool
}

func (o Ordinary) Name() string { return o.name }
func (o Ordinary) Usage() string { return o.usage }
func (o Ordinary) Params() []string { return o.params }
func (o Ordinary) Workspaces() *bool { return o.workspaces }
func (Ordinary) isCommand() {}

// Synthetic is a document that maps to no registry command of its own name.
type Synthetic struct {
	name       string
	usage      string
	workspaces *bool
}

func (s Synthetic) Name() string { return s.name }
func (s Synthetic) Usage() string { return s.usage }
func (Synthetic) Params() []string { return nil }
func (s Synthetic) Workspaces() *bool { return s.workspaces }
func (Synthetic) isCommand() {}

// Resolver derives command descriptors from document filenames.
type Resolver struct {
	Program        string // top-level program name, e.g. "npm"
	Launcher       string // launcher alias document, e.g. "npx"; empty disables
	LauncherTarget string // command the launcher proxies to, e.g. "exec"
	Commands       registry.CommandSource
	Options        registry.OptionSource // optional, used for exclusive params
}

// NewResolver creates a Resolver with npm's conventions.
func NewResolver(commands registry.CommandSource, options registry.OptionSource) *Resolver {
	return &Resolver{
		Program:        "npm",
		Launcher:       "npx",
		LauncherTarget: "exec",
		Commands:       commands,
		Options:        options,
	}
}

// CommandName strips the directory, the document extension and the first
// "<program>-" prefix from a document path.
func (r *Resolver) CommandName(docPath string) string {
	base := strings.TrimSuffix(path.Base(filepathToSlash(docPath)), DocExt)
	return strings.Replace(base, r.Program+"-", "", 1)
}

// Resolve returns the descriptor for the document at docPath.
func (r *Resolver) Resolve(docPath string) (Command, error) {
	name := r.CommandName(docPath)

	if name == r.Program {
		return Synthetic{name: name, usage: r.Program}, nil
	}

	srcName := name
	prefix := r.Program + " " + name
	if r.Launcher != "" && name == r.Launcher {
		srcName = r.LauncherTarget
		prefix = r.Launcher
	}

	cmd, err := r.Commands.Command(srcName)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", docPath, err)
	}

	usage := joinUsage(prefix, cmd.Usage)

	if srcName != name {
		return Synthetic{name: name, usage: usage, workspaces: cmd.Workspaces}, nil
	}

	return Ordinary{
		name:       name,
		params:     r.expandExclusive(cmd.Params),
		usage:      usage,
		workspaces: cmd.Workspaces,
	}, nil
}

// joinUsage prefixes every usage line and joins them with newlines. A command
// without usage lines documents the bare prefix.
func joinUsage(prefix string, lines []string) string {
	if len(lines) == 0 {
		lines = []string{""}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(prefix + " " + line)
	}
	return strings.Join(out, "\n")
}

// expandExclusive inserts each exclusive partner right after the param that
// declares it, unless the partner is already listed.
func (r *Resolver) expandExclusive(params []string) []string {
	if params == nil || r.Options == nil {
		return params
	}

	out := slices.Clone(params)
	for i := 0; i < len(out); i++ {
		opt, err := r.Options.Option(out[i])
		if err != nil {
			continue // reported when the param is rendered
		}
		ex, ok := opt.(registry.Exclusiver)
		if !ok {
			continue
		}
		insertAt := i + 1
		for _, partner := range ex.ExclusiveWith() {
			if slices.Contains(out, partner) {
				continue
			}
			out = slices.Insert(out, insertAt, partner)
			insertAt++
		}
	}
	return out
}

// filepathToSlash normalizes Windows separators so path.Base works on any input.
func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
