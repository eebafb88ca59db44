package assets

// AssetLoader loads stylesheets and page templates by name.
type AssetLoader interface {
	// LoadStyle returns ErrStyleNotFound when the style does not exist.
	LoadStyle(name string) (string, error)
	// LoadTemplate returns ErrTemplateNotFound when the template does not exist.
	LoadTemplate(name string) (string, error)
}
