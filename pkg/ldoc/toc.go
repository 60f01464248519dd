package ldoc

import (
	"fmt"
	"regexp"
	"strings"
)

// tocPlaceholder marks where the table of contents is inserted.
const tocPlaceholder = "@toc"

// headingPattern matches a level 1-3 Markdown-style heading line.
// It must run before the syntax transformer rewrites headings to HTML.
var headingPattern = regexp.MustCompile(`(?m)^(#{1,3}) (.+)$`)

// Heading is one table-of-contents entry.
type Heading struct {
	// Level is the heading depth, 1 through 3.
	Level int

	// Text is the raw heading text.
	Text string

	// Anchor is the slug used for in-page links. Duplicate anchors are
	// not de-duplicated; colliding headings share an id.
	Anchor string
}

// slugify lowercases text and replaces spaces with hyphens. The heading
// rewrite in the syntax transformer computes the same slug independently,
// so TOC links and heading ids collide identically by construction.
func slugify(text string) string {
	return strings.ReplaceAll(strings.ToLower(text), " ", "-")
}

// collectHeadings scans the still-unconverted buffer for headings in
// document order.
func collectHeadings(text string) []Heading {
	var headings []Heading
	for _, m := range headingPattern.FindAllStringSubmatch(text, -1) {
		headings = append(headings, Heading{
			Level:  len(m[1]),
			Text:   m[2],
			Anchor: slugify(m[2]),
		})
	}
	return headings
}

// insertTOC replaces every @toc placeholder with the navigation fragment.
// The same fragment repeats if the placeholder appears more than once.
func insertTOC(text string, headings []Heading) string {
	if !strings.Contains(text, tocPlaceholder) {
		return text
	}
	return strings.ReplaceAll(text, tocPlaceholder, buildTOC(headings))
}

// buildTOC renders the labeled navigation container: one list item per
// heading, classed by level, linking to the heading anchor.
func buildTOC(headings []Heading) string {
	var b strings.Builder
	b.WriteString("<nav class='toc'><h3>Table of Contents</h3><ul>")
	for _, h := range headings {
		fmt.Fprintf(&b, "<li class='level-%d'><a href='#%s'>%s</a></li>", h.Level, h.Anchor, h.Text)
	}
	b.WriteString("</ul></nav>")
	return b.String()
}
