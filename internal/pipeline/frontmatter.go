package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-npmdocs/internal/yamlutil"
)

// ErrFrontmatter indicates a malformed front matter block.
var ErrFrontmatter = errors.New("invalid front matter")

const frontmatterDelimiter = "---"

// SplitFrontmatter separates a leading "---" delimited block from the body.
// Content without an opening delimiter has no front matter. The body keeps
// everything after the closing delimiter line minus one leading newline.
func SplitFrontmatter(content string) (frontmatter, body string, err error) {
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return "", content, nil
	}

	rest := content[len(frontmatterDelimiter)+1:]
	if strings.HasPrefix(rest, frontmatterDelimiter+"\n") || rest == frontmatterDelimiter {
		return "", trimLeadingNewline(strings.TrimPrefix(rest, frontmatterDelimiter)), nil
	}

	end := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
	if end == -1 {
		if strings.HasSuffix(rest, "\n"+frontmatterDelimiter) {
			return strings.TrimSuffix(rest, "\n"+frontmatterDelimiter), "", nil
		}
		return "", "", fmt.Errorf("%w: missing closing delimiter", ErrFrontmatter)
	}

	frontmatter = rest[:end]
	body = rest[end+len(frontmatterDelimiter)+2:]
	return frontmatter, trimLeadingNewline(body), nil
}

func trimLeadingNewline(s string) string {
	return strings.TrimPrefix(s, "\n")
}

// Meta is the subset of front matter the renderers read.
type Meta struct {
	Title       string
	Section     string
	Description string
}

// ParseMeta decodes front matter YAML. Scalar values of any type are
// stringified, so `section: 1` and `section: "1"` are equivalent.
func ParseMeta(frontmatter string) (Meta, error) {
	if strings.TrimSpace(frontmatter) == "" {
		return Meta{}, nil
	}

	var fields map[string]any
	if err := yamlutil.Unmarshal([]byte(frontmatter), &fields); err != nil {
		return Meta{}, fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}

	return Meta{
		Title:       scalar(fields["title"]),
		Section:     scalar(fields["section"]),
		Description: scalar(fields["description"]),
	}, nil
}

func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// ToMarkdownWithFrontmatter wraps src with a front matter block. The block is
// written even when empty.
func ToMarkdownWithFrontmatter(src, frontmatter string) string {
	return frontmatterDelimiter + "\n" + frontmatter + "\n" + frontmatterDelimiter + "\n\n" + src
}
