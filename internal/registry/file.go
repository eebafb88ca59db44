package registry

import (
	"fmt"
	"os"

	"github.com/alnah/go-npmdocs/internal/yamlutil"
)

// fileData mirrors the on-disk registry layout.
type fileData struct {
	Commands    map[string]Command     `yaml:"commands"`
	Aliases     yamlutil.MapSlice      `yaml:"aliases"`
	Definitions map[string]*Definition `yaml:"definitions"`
	Shorthands  map[string][]string    `yaml:"shorthands"`
}

// File is a registry decoded from YAML. It is read-only after Parse and safe
// for concurrent use.
type File struct {
	commands   map[string]Command
	aliases    []Alias
	options    map[string]Option
	shorthands map[string][]string
}

// Load reads and parses a registry file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- registry path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryRead, err)
	}
	return Parse(data)
}

// Parse decodes registry YAML. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	var raw fileData
	if err := yamlutil.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryParse, err)
	}

	f := &File{
		commands:   raw.Commands,
		options:    make(map[string]Option, len(raw.Definitions)),
		shorthands: raw.Shorthands,
	}
	if f.commands == nil {
		f.commands = map[string]Command{}
	}
	if f.shorthands == nil {
		f.shorthands = map[string][]string{}
	}

	for key, def := range raw.Definitions {
		if def == nil {
			def = &Definition{}
		}
		def.Key = key
		f.options[key] = def
	}

	for _, item := range raw.Aliases {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: alias key %v is not a string", ErrRegistryParse, item.Key)
		}
		target, ok := item.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: alias %q must map to a command name", ErrRegistryParse, name)
		}
		f.aliases = append(f.aliases, Alias{Name: name, Command: target})
	}

	return f, nil
}

// Command returns the named command or ErrUnknownCommand.
func (f *File) Command(name string) (Command, error) {
	cmd, ok := f.commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return cmd, nil
}

// Aliases returns all aliases in declaration order.
func (f *File) Aliases() []Alias {
	return f.aliases
}

// Option returns the named option definition or ErrUnknownOption.
func (f *File) Option(key string) (Option, error) {
	opt, ok := f.options[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	return opt, nil
}

// Options returns every option definition keyed by name.
func (f *File) Options() map[string]Option {
	return f.options
}

// Shorthands returns every shorthand and its expansion.
func (f *File) Shorthands() map[string][]string {
	return f.shorthands
}

// Compile-time interface checks.
var (
	_ CommandSource   = (*File)(nil)
	_ AliasSource     = (*File)(nil)
	_ OptionSource    = (*File)(nil)
	_ ShorthandSource = (*File)(nil)
)
