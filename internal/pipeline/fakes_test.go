package pipeline

import (
	"fmt"

	"github.com/alnah/go-npmdocs/internal/registry"
)

type fakeCommands map[string]registry.Command

func (f fakeCommands) Command(name string) (registry.Command, error) {
	cmd, ok := f[name]
	if !ok {
		return registry.Command{}, fmt.Errorf("%w: %q", registry.ErrUnknownCommand, name)
	}
	return cmd, nil
}

type fakeAliases []registry.Alias

func (f fakeAliases) Aliases() []registry.Alias { return f }

type fakeOption struct {
	name       string
	deprecated bool
	exclusive  []string
}

func (o fakeOption) Deprecated() bool { return o.deprecated }
func (o fakeOption) Describe() string { return "desc:" + o.name }
func (o fakeOption) ExclusiveWith() []string { return o.exclusive }

type fakeOptions map[string]fakeOption

func (f fakeOptions) Option(key string) (registry.Option, error) {
	opt, ok := f[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", registry.ErrUnknownOption, key)
	}
	return opt, nil
}

func (f fakeOptions) Options() map[string]registry.Option {
	out := make(map[string]registry.Option, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

type fakeShorthands map[string][]string

func (f fakeShorthands) Shorthands() map[string][]string { return f }

func boolPtr(b bool) *bool { return &b }

func newFixtureOptions() fakeOptions {
	return fakeOptions{
		"json":       {name: "json"},
		"workspace":  {name: "workspace", exclusive: []string{"workspaces"}},
		"workspaces": {name: "workspaces"},
		"save":       {name: "save"},
		"registry":   {name: "registry"},
	}
}

func newFixtureCommands() fakeCommands {
	return fakeCommands{
		"view": {
			Usage:      []string{"[<package-spec>] [<field>[.subfield]...]"},
			Params:     []string{"json", "workspace"},
			Workspaces: boolPtr(true),
		},
		"install": {
			Usage:  []string{"[<package-spec> ...]", "<folder>"},
			Params: []string{"save"},
		},
		"exec": {
			Usage:      []string{"-- <pkg>[@<version>] [args...]", "-c '<cmd> [args...]'"},
			Params:     []string{"json"},
			Workspaces: boolPtr(true),
		},
		"token": {
			Usage:      []string{"list"},
			Params:     []string{"registry"},
			Workspaces: boolPtr(false),
		},
		"ping":   {},
		"broken": {Usage: []string{""}, Params: []string{"missing"}},
	}
}

func newFixtureSubstituter() *Substituter {
	options := newFixtureOptions()
	return &Substituter{
		Version:  "10.9.0",
		Resolver: NewResolver(newFixtureCommands(), options),
		Aliases: fakeAliases{
			{Name: "i", Command: "install"},
			{Name: "info", Command: "view"},
			{Name: "v", Command: "view"},
		},
		Options: options,
		Shorthands: fakeShorthands{
			"s":   {"--silent"},
			"reg": {"--registry"},
		},
	}
}
