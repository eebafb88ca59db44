// Package assets provides the stylesheet and page template of the HTML
// documentation site.
//
// Assets load from the embedded defaults or from a custom directory laid out
// the same way:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// AssetResolver tries the custom directory first and falls back to the
// embedded copy when an asset is missing there, so a site can override the
// page template and keep the default stylesheet.
//
// Asset names never contain path separators or dots. FilesystemLoader also
// resolves symlinks and refuses paths that escape the base directory.
package assets
