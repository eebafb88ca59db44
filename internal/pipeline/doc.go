// Package pipeline implements the documentation build stages.
//
// Substitution stages splice generated content into markdown templates:
//   - version token replacement (@VERSION@)
//   - command usage blocks (USAGE tag)
//   - per-command option descriptions (CONFIG tag)
//   - the full option reference (CONFIG tag)
//   - the shorthand flag list (SHORTHANDS tag)
//   - help link rewriting for terminal formats
//
// Render stages turn the substituted markdown into an artifact:
//   - man pages via go-md2man
//   - markdown with a front matter block
//   - HTML pages via Goldmark, with TOC, navigation and page template
//
// Every stage is a pure function of its input; collaborators (registries,
// renderers) are injected.
package pipeline
