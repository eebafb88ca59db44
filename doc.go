// Package npmdocs builds the npm CLI documentation from annotated markdown.
//
// # Quick Start
//
// Load the registry that describes commands and options, parse a document,
// and build it:
//
//	reg, err := npmdocs.LoadRegistry("registry.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := npmdocs.NewBuilder(reg, npmdocs.WithVersion("10.9.0"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := npmdocs.ParseDocument("commands/npm-view.md", raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Build(ctx, doc)
//
// The result holds one artifact per enabled output format, with its path
// relative to that format's output root. The Builder never touches the
// filesystem; writing artifacts is the caller's job.
//
// # Build Plan
//
// Each document goes through the substitutions that apply to it:
//
//  1. Documents under the commands directory get their usage block
//     (<!-- AUTOGENERATED USAGE DESCRIPTIONS -->) and their option
//     descriptions (<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->).
//  2. The config document gets the full option reference
//     (<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->) and the shorthand list
//     (<!-- AUTOGENERATED CONFIG SHORTHANDS -->).
//  3. Every document gets @VERSION@ replaced.
//
// A tag a stage needs but the document lacks is a MissingPlaceholderError.
// Tags are consumed, so building an already built document fails.
//
// # Outputs
//
//   - Markdown, the expanded body under its original front matter.
//   - Man pages (roff via go-md2man) for documents whose front matter has a
//     section, with doc links turned into `npm help <term>` references.
//   - HTML pages via Goldmark with relative links, a table of contents and
//     the site navigation.
//
// # Concurrency
//
// A Builder is safe for concurrent use once built; the CLI shares one across
// its worker pool.
package npmdocs
