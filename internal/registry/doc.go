// Package registry holds the data the documentation build consumes as black
// boxes: commands, command aliases, option definitions and shorthand flags.
//
// The build only depends on the small read-only interfaces below. File is the
// YAML-backed implementation used by the CLI:
//
//	commands:
//	  view:
//	    usage: ["[<package-spec>] [<field>[.subfield]...]"]
//	    params: [json, workspace]
//	    workspaces: true
//	aliases:
//	  info: view
//	  v: view
//	definitions:
//	  json:
//	    default: "false"
//	    type: Boolean
//	    description: Output JSON data.
//	shorthands:
//	  s: ["--loglevel", "silent"]
//
// Alias order is preserved as declared; every other mapping is sorted by the
// consumer before rendering.
package registry
