package pipeline

import (
	"net/url"
	"path"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DocSections are the top-level content directories that site-absolute links
// point into.
var DocSections = []string{"commands", "configuring-npm", "using-npm"}

// HTMLPath maps a content-relative document path to its page path.
func HTMLPath(docPath string) string {
	return strings.TrimSuffix(filepathToSlash(docPath), DocExt) + ".html"
}

// RewriteDocLinks rewrites site-absolute links into doc sections, such as
// /commands/npm-install, into page-relative links to the generated .html file.
// pagePath is the slash separated path of the page being rendered.
//
// Fragments and queries are preserved. Links outside doc sections, URLs and
// anchors are left alone.
func RewriteDocLinks(fragment, pagePath string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	fromDir := path.Dir(filepathToSlash(pagePath))
	for _, n := range nodes {
		rewriteLinks(n, fromDir)
	}

	return renderFragment(nodes)
}

// parseFragment parses HTML in a body context so no html/head/body wrapper is
// added.
func parseFragment(content string) ([]*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), body)
}

func renderFragment(nodes []*html.Node) (string, error) {
	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteLinks(n *html.Node, fromDir string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rel, ok := relativeDocLink(attr.Val, fromDir); ok {
				n.Attr[i].Val = rel
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteLinks(c, fromDir)
	}
}

// relativeDocLink returns the page-relative form of href when it targets a
// doc section.
func relativeDocLink(href, fromDir string) (string, bool) {
	if !strings.HasPrefix(href, "/") || strings.HasPrefix(href, "//") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	target := strings.Trim(u.Path, "/")
	section, page, ok := strings.Cut(target, "/")
	if !ok || page == "" || !slices.Contains(DocSections, section) {
		return "", false
	}
	if path.Ext(target) == "" {
		target += ".html"
	}

	rel := relPath(fromDir, target)
	if u.RawQuery != "" {
		rel += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		rel += "#" + u.Fragment
	}
	return rel, true
}

// relPath computes the slash separated path of target relative to dir. Both
// are relative to the same root.
func relPath(dir, target string) string {
	var from []string
	if dir != "." && dir != "" {
		from = strings.Split(dir, "/")
	}
	to := strings.Split(target, "/")

	common := 0
	for common < len(from) && common < len(to)-1 && from[common] == to[common] {
		common++
	}

	parts := make([]string, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)
	return strings.Join(parts, "/")
}
