package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alnah/go-npmdocs/internal/registry"
)

// Transform is a single substitution stage. path identifies the document for
// command resolution and error messages.
type Transform func(src, path string) (string, error)

// Substituter holds the collaborators the substitution stages read from.
type Substituter struct {
	Version    string
	Resolver   *Resolver
	Aliases    registry.AliasSource
	Options    registry.OptionSource
	Shorthands registry.ShorthandSource
}

// ReplaceVersion replaces every version token with the build version. The
// token is optional.
func (s *Substituter) ReplaceVersion(src, _ string) (string, error) {
	return strings.ReplaceAll(src, VersionToken, s.Version), nil
}

// workspacesNote follows the usage block of commands that ignore workspaces.
const workspacesNote = "Note: This command is unaware of workspaces."

// ReplaceUsage replaces the USAGE tag with a fenced usage block and the
// command's aliases.
func (s *Substituter) ReplaceUsage(src, path string) (string, error) {
	tag, err := AssertPlaceholder(src, path, TagUsage)
	if err != nil {
		return "", err
	}

	cmd, err := s.Resolver.Resolve(path)
	if err != nil {
		return "", err
	}

	synopsis := []string{"```bash", cmd.Usage()}

	var aliases []string
	if s.Aliases != nil {
		aliases = registry.AliasesOf(s.Aliases, cmd.Name())
	}
	switch {
	case len(aliases) == 1:
		synopsis = append(synopsis, "", "alias: "+aliases[0])
	case len(aliases) > 1:
		synopsis = append(synopsis, "", "aliases: "+strings.Join(aliases, ", "))
	}

	synopsis = append(synopsis, "```")

	if ws := cmd.Workspaces(); ws != nil && !*ws {
		synopsis = append(synopsis, "", workspacesNote)
	}

	return strings.Replace(src, tag, strings.Join(synopsis, "\n"), 1), nil
}

// ReplaceParams replaces the CONFIG tag with the descriptions of the command's
// own params. Commands without params are returned unchanged and need no tag.
func (s *Substituter) ReplaceParams(src, path string) (string, error) {
	cmd, err := s.Resolver.Resolve(path)
	if err != nil {
		return "", err
	}
	params := cmd.Params()
	if params == nil {
		return src, nil
	}

	tag, err := AssertPlaceholder(src, path, TagConfig)
	if err != nil {
		return "", err
	}

	described := make([]string, 0, len(params))
	for _, name := range params {
		opt, err := s.Options.Option(name)
		if err != nil {
			return "", fmt.Errorf("describing params of %s: %w", path, err)
		}
		described = append(described, opt.Describe())
	}

	return strings.Replace(src, tag, strings.Join(described, "\n\n"), 1), nil
}

// ReplaceConfig replaces the CONFIG tag with every option in the registry:
// non-deprecated first, then by case-insensitive locale order of the key.
func (s *Substituter) ReplaceConfig(src, path string) (string, error) {
	tag, err := AssertPlaceholder(src, path, TagConfig)
	if err != nil {
		return "", err
	}

	options := s.Options.Options()
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}

	col := newFoldCollator()
	sort.Slice(keys, func(i, j int) bool {
		di, dj := options[keys[i]].Deprecated(), options[keys[j]].Deprecated()
		if di != dj {
			return dj
		}
		if c := col.CompareString(keys[i], keys[j]); c != 0 {
			return c < 0
		}
		return keys[i] < keys[j]
	})

	described := make([]string, len(keys))
	for i, key := range keys {
		described[i] = options[key].Describe()
	}

	return strings.Replace(src, tag, strings.Join(described, "\n\n"), 1), nil
}

// ReplaceShorthands replaces the SHORTHANDS tag with a bullet per shorthand,
// ordered by what the shorthand expands to.
//
// One-character tokens get a single dash and longer ones two. Multi-letter
// single-dash flags are therefore shown with two dashes.
func (s *Substituter) ReplaceShorthands(src, path string) (string, error) {
	tag, err := AssertPlaceholder(src, path, TagShorthands)
	if err != nil {
		return "", err
	}

	type entry struct {
		short     string
		expansion string
	}

	table := s.Shorthands.Shorthands()
	entries := make([]entry, 0, len(table))
	for short, expansion := range table {
		entries = append(entries, entry{short: short, expansion: strings.Join(expansion, " ")})
	}

	col := newCollator()
	sort.Slice(entries, func(i, j int) bool {
		if c := col.CompareString(entries[i].expansion, entries[j].expansion); c != 0 {
			return c < 0
		}
		if c := col.CompareString(entries[i].short, entries[j].short); c != 0 {
			return c < 0
		}
		return entries[i].short < entries[j].short
	})

	lines := make([]string, len(entries))
	for i, e := range entries {
		dash := "--"
		if len([]rune(e.short)) == 1 {
			dash = "-"
		}
		lines[i] = fmt.Sprintf("* `%s%s`: `%s`", dash, e.short, e.expansion)
	}

	return strings.Replace(src, tag, strings.Join(lines, "\n"), 1), nil
}
