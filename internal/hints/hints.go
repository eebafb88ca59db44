// Package hints provides actionable error hints for common build failures.
// Hints are formatted as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound suggests --config or creating a config in the user
// config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/npmdocs.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathToSlash(p), "go-npmdocs/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForRegistryNotFound suggests pointing the build at the registry file.
func ForRegistryNotFound() string {
	return format("set registry in npmdocs.yaml or pass --registry /path/to/registry.yaml")
}

// ForMissingPlaceholder explains how to fix a template that lost its tag.
func ForMissingPlaceholder(placeholder string) string {
	if placeholder == "" {
		return ""
	}
	return format("restore " + placeholder + " in the source document, not in a generated copy")
}

// ForUnknownCommand suggests registering the command behind a document.
func ForUnknownCommand() string {
	return format("add the command to the registry's commands, or move the document out of the commands directory")
}

// ForUnknownOption suggests defining a param listed by a command.
func ForUnknownOption() string {
	return format("every param listed by a command needs an entry under definitions")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
