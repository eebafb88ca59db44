package pipeline

import (
	"regexp"
	"strings"
)

// helpLinkPattern matches site-absolute links into the documentation sections
// that have man page equivalents. The link text may be backtick-quoted.
var helpLinkPattern = regexp.MustCompile(
	"\\[`?([\\w\\s-]+)`?\\]\\(/(?:commands|configuring-npm|using-npm)/(?:[\\w\\s-]+)\\)",
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ReplaceHelpLinks rewrites documentation links into inline `npm help <term>`
// references for formats that cannot follow links. Tagless.
func ReplaceHelpLinks(src, program string) string {
	programToken := regexp.MustCompile(`(^|\s)` + regexp.QuoteMeta(program) + `\s`)

	return helpLinkPattern.ReplaceAllStringFunc(src, func(link string) string {
		text := helpLinkPattern.FindStringSubmatch(link)[1]
		term := programToken.ReplaceAllString(text, "$1")
		term = strings.TrimSpace(whitespaceRun.ReplaceAllString(term, " "))
		if strings.Contains(term, " ") {
			term = `"` + term + `"`
		}
		return "`" + program + " help " + term + "`"
	})
}

// ReplaceHelpLinks binds the package function to the substituter's program so
// it can run as a stage.
func (s *Substituter) ReplaceHelpLinks(src, _ string) (string, error) {
	return ReplaceHelpLinks(src, s.program()), nil
}

func (s *Substituter) program() string {
	if s.Resolver != nil && s.Resolver.Program != "" {
		return s.Resolver.Program
	}
	return "npm"
}
