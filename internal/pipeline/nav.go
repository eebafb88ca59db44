package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/alnah/go-npmdocs/internal/yamlutil"
)

// ErrNav indicates the navigation file could not be read or decoded.
var ErrNav = errors.New("invalid navigation")

// NavEntry is a node of nav.yml.
type NavEntry struct {
	Title       string     `yaml:"title"`
	ShortName   string     `yaml:"shortName"`
	URL         string     `yaml:"url"`
	Description string     `yaml:"description"`
	Children    []NavEntry `yaml:"children"`
}

// Nav is the site navigation tree.
type Nav []NavEntry

// LoadNav reads and decodes a nav.yml file.
func LoadNav(path string) (Nav, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- configured path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNav, err)
	}
	return ParseNav(data)
}

// ParseNav decodes nav.yml content.
func ParseNav(data []byte) (Nav, error) {
	var nav Nav
	if err := yamlutil.Unmarshal(data, &nav); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNav, err)
	}
	return nav, nil
}

// NavItem is a navigation entry prepared for one page.
type NavItem struct {
	Title    string
	Href     string
	Active   bool
	Children []NavItem
}

// ForPage resolves entry links relative to pagePath and marks the entry for
// the page, and its ancestors, active.
func (n Nav) ForPage(pagePath string) []NavItem {
	items, _ := n.forPage(pagePath, "/"+strings.TrimSuffix(strings.TrimSuffix(filepathToSlash(pagePath), ".html"), DocExt))
	return items
}

func (n Nav) forPage(pagePath, current string) ([]NavItem, bool) {
	if len(n) == 0 {
		return nil, false
	}

	fromDir := path.Dir(filepathToSlash(pagePath))
	items := make([]NavItem, len(n))
	anyActive := false
	for i, e := range n {
		title := e.ShortName
		if title == "" {
			title = e.Title
		}
		children, childActive := Nav(e.Children).forPage(pagePath, current)
		active := childActive || strings.TrimSuffix(e.URL, "/") == current
		items[i] = NavItem{
			Title:    title,
			Href:     navHref(e.URL, fromDir),
			Active:   active,
			Children: children,
		}
		anyActive = anyActive || active
	}
	return items, anyActive
}

func navHref(link, fromDir string) string {
	if rel, ok := relativeDocLink(link, fromDir); ok {
		return rel
	}
	return link
}
