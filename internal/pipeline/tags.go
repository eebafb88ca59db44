package pipeline

// DocExt is the extension of markdown source documents.
const DocExt = ".md"

// Placeholder tags marking where generated content is spliced in.
const (
	TagConfig     = "<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->"
	TagUsage      = "<!-- AUTOGENERATED USAGE DESCRIPTIONS -->"
	TagShorthands = "<!-- AUTOGENERATED CONFIG SHORTHANDS -->"
)

// VersionToken is replaced globally with the build version.
const VersionToken = "@VERSION@"

// Default output layout, relative to the tool's base directory.
const (
	DefaultContentDir  = "content"
	DefaultNavFile     = "content/nav.yml"
	DefaultManDir      = "man"
	DefaultHTMLDir     = "output"
	DefaultMarkdownDir = "md"
)

// Default document layout, relative to the content root.
const (
	DefaultCommandsDir = "commands"
	DefaultConfigDoc   = "using-npm/config.md"
)
