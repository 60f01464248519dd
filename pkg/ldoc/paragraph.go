package ldoc

import "regexp"

// paragraphBreakPattern matches any run of two or more line breaks.
var paragraphBreakPattern = regexp.MustCompile(`\n{2,}`)

// wrapParagraphs treats blank-line runs as paragraph boundaries and
// encloses the whole buffer in a single paragraph. It runs last, after
// every block directive has produced its own container, so block output
// is never split across paragraphs. Block containers end up nested inside
// the outer wrap; browsers render this equivalently, so the artifact is
// cosmetic only.
func wrapParagraphs(text string) string {
	return "<p>" + paragraphBreakPattern.ReplaceAllString(text, "</p><p>") + "</p>"
}
