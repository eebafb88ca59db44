package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// TOCEntry is a heading listed in a page's table of contents.
type TOCEntry struct {
	Level int
	ID    string
	Text  string
}

// Heading levels listed in the table of contents.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// headingPattern matches h1-h6 tags with an id attribute.
// Captures: 1=level, 2=id, 3=inner HTML.
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes tags and decodes entities so the template escapes the
// text exactly once.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// ExtractTOC lists the headings between minDepth and maxDepth, in document
// order. Headings without IDs are skipped.
func ExtractTOC(fragment string, minDepth, maxDepth int) []TOCEntry {
	matches := headingPattern.FindAllStringSubmatch(fragment, -1)

	var entries []TOCEntry
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level < minDepth || level > maxDepth {
			continue
		}
		entries = append(entries, TOCEntry{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return entries
}
