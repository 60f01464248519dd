package ldoc

import "regexp"

// titlePattern matches a @title: directive and captures its text.
var titlePattern = regexp.MustCompile(`@title:\s*(.+)`)

// extractTitle returns the buffer with every @title: line removed, plus the
// document title. The first directive wins; all of them are stripped. A
// document without a title gets DefaultTitle.
func extractTitle(text string) (string, string) {
	title := DefaultTitle
	if m := titlePattern.FindStringSubmatch(text); m != nil {
		title = m[1]
	}
	return titlePattern.ReplaceAllString(text, ""), title
}
