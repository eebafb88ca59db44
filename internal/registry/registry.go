package registry

import "errors"

// Sentinel errors for lookups.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownOption  = errors.New("unknown option")
	ErrRegistryParse  = errors.New("failed to parse registry")
	ErrRegistryRead   = errors.New("failed to read registry")
)

// Command is a registry entry for one CLI command.
type Command struct {
	Usage  []string `yaml:"usage"`  // usage templates without the "<program> <command>" prefix
	Params []string `yaml:"params"` // option names, nil when the command has no config section

	// Workspaces reports whether the command honors workspaces. Nil means the
	// registry does not track it.
	Workspaces *bool `yaml:"workspaces"`
}

// Alias maps an alternate command name onto its canonical command.
type Alias struct {
	Name    string
	Command string
}

// Option is an option definition as seen by the renderer.
type Option interface {
	Deprecated() bool
	Describe() string
}

// CommandSource looks up commands by name.
type CommandSource interface {
	Command(name string) (Command, error)
}

// AliasSource enumerates aliases in declaration order.
type AliasSource interface {
	Aliases() []Alias
}

// OptionSource looks up and enumerates option definitions.
type OptionSource interface {
	Option(key string) (Option, error)
	Options() map[string]Option
}

// ShorthandSource enumerates shorthand flags and their expansions.
type ShorthandSource interface {
	Shorthands() map[string][]string
}

// Exclusiver is implemented by options that must be documented together with
// mutually exclusive partners.
type Exclusiver interface {
	ExclusiveWith() []string
}

// AliasesOf returns the aliases mapping to command, in declaration order.
func AliasesOf(src AliasSource, command string) []string {
	var names []string
	for _, a := range src.Aliases() {
		if a.Command == command {
			names = append(names, a.Name)
		}
	}
	return names
}
