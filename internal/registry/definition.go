package registry

import (
	"fmt"
	"strings"
)

// Definition is a YAML-described option definition.
type Definition struct {
	Key         string   `yaml:"-"`
	Default     string   `yaml:"default"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Deprecation string   `yaml:"deprecated"` // non-empty marks the option deprecated
	Exclusive   []string `yaml:"exclusive"`
	EnvExport   *bool    `yaml:"envExport"` // nil means exported
}

// Deprecated reports whether the option carries a deprecation note.
func (d *Definition) Deprecated() bool {
	return strings.TrimSpace(d.Deprecation) != ""
}

// ExclusiveWith returns the options that cannot be combined with this one.
func (d *Definition) ExclusiveWith() []string {
	return d.Exclusive
}

// Describe renders the markdown block used in command and config pages:
//
//	#### `key`
//
//	* Default: ...
//	* Type: ...
//	* DEPRECATED: ...
//
//	description
func (d *Definition) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#### `%s`\n\n", d.Key)
	fmt.Fprintf(&b, "* Default: %s\n", orNone(d.Default))
	fmt.Fprintf(&b, "* Type: %s\n", orNone(d.Type))
	if d.Deprecated() {
		fmt.Fprintf(&b, "* DEPRECATED: %s\n", strings.TrimSpace(d.Deprecation))
	}

	if desc := strings.TrimSpace(d.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	if d.EnvExport != nil && !*d.EnvExport {
		b.WriteString("\nThis value is not exported to the environment for child processes.\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func orNone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "null"
	}
	return s
}

// Compile-time interface checks.
var (
	_ Option     = (*Definition)(nil)
	_ Exclusiver = (*Definition)(nil)
)
