package npmdocs

import "github.com/alnah/go-npmdocs/internal/registry"

var _ Registry = (*registry.File)(nil)

// Registry supplies the command, alias, option and shorthand data the
// substitutions render.
type Registry interface {
	registry.CommandSource
	registry.AliasSource
	registry.OptionSource
	registry.ShorthandSource
}

// LoadRegistry reads a registry YAML file.
func LoadRegistry(path string) (Registry, error) {
	return registry.Load(path)
}

// ParseRegistry decodes registry YAML.
func ParseRegistry(data []byte) (Registry, error) {
	return registry.Parse(data)
}
