package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/cpuguy83/go-md2man/v2/md2man"
)

// ErrManRender indicates the man page renderer failed.
var ErrManRender = errors.New("man page rendering failed")

// ManRenderer turns markdown carrying a "# title(section) - description"
// header into roff.
type ManRenderer interface {
	RenderMan(ctx context.Context, markdown string) (string, error)
}

// ToManPage prepends the man header line and delegates to r.
func ToManPage(ctx context.Context, src string, meta Meta, r ManRenderer) (string, error) {
	header := fmt.Sprintf("# %s(%s) - %s\n\n", meta.Title, meta.Section, meta.Description)
	return r.RenderMan(ctx, header+src)
}

// ManPagePath returns the page location relative to the man root.
func ManPagePath(name, section string) string {
	return path.Join("man"+section, name+"."+section)
}

// manHeaderPattern captures title, section and description of the header line.
var manHeaderPattern = regexp.MustCompile(`^# (.+?)\(([^)]*)\) - (.*)\n`)

// Md2ManRenderer renders with go-md2man. md2man emits the first level one
// heading as the .TH line, so the header is rewritten into the .TH fields
// followed by a NAME section.
type Md2ManRenderer struct {
	Source string // .TH source field, e.g. "NPM@10.9.0"
	Date   string // .TH date field, may be empty
}

// RenderMan implements ManRenderer.
func (m *Md2ManRenderer) RenderMan(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	loc := manHeaderPattern.FindStringSubmatchIndex(markdown)
	if loc == nil {
		return "", fmt.Errorf("%w: missing title header", ErrManRender)
	}
	title := markdown[loc[2]:loc[3]]
	section := markdown[loc[4]:loc[5]]
	description := markdown[loc[6]:loc[7]]

	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s %q %q\n\n", strings.ToUpper(title), section, m.Date, m.Source)
	b.WriteString("# NAME\n\n")
	b.WriteString("**" + title + "** - " + description + "\n")
	b.WriteString(markdown[loc[1]:])

	return string(md2man.Render([]byte(b.String()))), nil
}
