package assets

// Built-in asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "page"
)

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded stylesheet by name, without the .css extension.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an embedded page template by name, without the .html
// extension.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
