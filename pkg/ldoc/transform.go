package ldoc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/ldoc/pkg/langdetect"
)

// transformer converts the remaining block and inline syntax to HTML by
// applying syntaxRules in order.
type transformer struct {
	detectLanguages bool
}

// syntaxRule is one rewrite in the transformer table.
type syntaxRule struct {
	name  string
	apply func(t *transformer, text string) string
}

// syntaxRules is the ordered rewrite table. The order is a contract:
// later rules must not re-match text produced by earlier rules. Notably,
// bold runs before italic so the italic pattern cannot consume half a
// bold marker, task items run before generic list items, and list
// wrapping runs after both so it only sees final <li> elements.
var syntaxRules = []syntaxRule{
	{"headings", (*transformer).headings},
	{"commands", (*transformer).commands},
	{"fences", (*transformer).fences},
	{"inline-code", (*transformer).inlineCode},
	{"bold", (*transformer).bold},
	{"italic", (*transformer).italic},
	{"rules", (*transformer).horizontalRules},
	{"task-items", (*transformer).taskItems},
	{"list-items", (*transformer).listItems},
	{"list-wrap", (*transformer).listWrap},
	{"links", (*transformer).links},
	{"images", (*transformer).images},
	{"videos", (*transformer).videos},
	{"callouts", (*transformer).callouts},
	{"alerts", (*transformer).alerts},
	{"badges", (*transformer).badges},
	{"tables", (*transformer).tables},
}

func (t *transformer) transform(text string) string {
	for _, rule := range syntaxRules {
		text = rule.apply(t, text)
	}
	return text
}

var (
	h3Pattern = regexp.MustCompile(`(?m)^### (.+)$`)
	h2Pattern = regexp.MustCompile(`(?m)^## (.+)$`)
	h1Pattern = regexp.MustCompile(`(?m)^# (.+)$`)

	commandPattern    = regexp.MustCompile(`(?m)^@command: (.+)$`)
	fencePattern      = regexp.MustCompile("(?s)```(\\w*)\n(.*?)```")
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.+?)\*`)
	hrPattern         = regexp.MustCompile(`(?m)^---$`)

	taskItemPattern = regexp.MustCompile(`(?m)^- \[( |x|X)\] (.+)$`)
	listItemPattern = regexp.MustCompile(`(?m)^- (.+)$`)
	// Anchored to line start so the inline <li> elements of an already
	// rendered TOC are never re-wrapped.
	listRunPattern = regexp.MustCompile(`(?m)^<li[^>]*>.*?</li>(?:\n<li[^>]*>.*?</li>)*`)

	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	imagePattern = regexp.MustCompile(`@image: (.+?) "(.*?)"`)
	videoPattern = regexp.MustCompile(`@video: (.+)`)

	alertPattern = regexp.MustCompile(`(?s)@alert (\w+)\n(.*?)@endalert`)
	badgePattern = regexp.MustCompile(`@badge: (\w+)\|(\w+)\|(\w+)`)
	tablePattern = regexp.MustCompile(`(?s)@table:\s*(.*?)@endtable`)
)

// headings rewrites #, ## and ### lines to heading tags carrying an id
// slug. The slug is computed here independently of the TOC builder, so
// duplicate headings keep the same id in both places by construction.
func (t *transformer) headings(text string) string {
	text = rewriteHeadingLevel(text, h3Pattern, 3)
	text = rewriteHeadingLevel(text, h2Pattern, 2)
	return rewriteHeadingLevel(text, h1Pattern, 1)
}

func rewriteHeadingLevel(text string, pattern *regexp.Regexp, level int) string {
	return pattern.ReplaceAllStringFunc(text, func(line string) string {
		heading := pattern.FindStringSubmatch(line)[1]
		return fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, slugify(heading), heading, level)
	})
}

// commands rewrites @command: lines to command-tagged code blocks. The
// text is HTML-escaped so shell examples render literally; this is the
// only rule that escapes (fence bodies pass through raw).
func (t *transformer) commands(text string) string {
	return commandPattern.ReplaceAllStringFunc(text, func(line string) string {
		cmd := commandPattern.FindStringSubmatch(line)[1]
		return renderCodeSnippet("command", escapeHTML(cmd))
	})
}

// fences rewrites triple-backtick blocks. The body is not escaped. An
// untagged fence gets an empty class unless language detection is on.
func (t *transformer) fences(text string) string {
	return fencePattern.ReplaceAllStringFunc(text, func(block string) string {
		m := fencePattern.FindStringSubmatch(block)
		lang, body := m[1], m[2]
		if lang == "" && t.detectLanguages {
			lang = langdetect.Detect([]byte(body))
		}
		return fmt.Sprintf(`<pre><code class="%s">%s</code></pre>`, lang, body)
	})
}

func (t *transformer) inlineCode(text string) string {
	return inlineCodePattern.ReplaceAllString(text, "<code>$1</code>")
}

func (t *transformer) bold(text string) string {
	return boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
}

func (t *transformer) italic(text string) string {
	return italicPattern.ReplaceAllString(text, "<em>$1</em>")
}

func (t *transformer) horizontalRules(text string) string {
	return hrPattern.ReplaceAllString(text, "<hr>")
}

// taskItems rewrites checkbox list syntax. The checkbox is disabled and
// checked iff the mark is x or X.
func (t *transformer) taskItems(text string) string {
	return taskItemPattern.ReplaceAllStringFunc(text, func(line string) string {
		m := taskItemPattern.FindStringSubmatch(line)
		checkbox := `<input type="checkbox" disabled>`
		if strings.EqualFold(m[1], "x") {
			checkbox = `<input type="checkbox" disabled checked>`
		}
		return fmt.Sprintf(`<li class="task-item">%s %s</li>`, checkbox, m[2])
	})
}

func (t *transformer) listItems(text string) string {
	return listItemPattern.ReplaceAllString(text, "<li>$1</li>")
}

// listWrap encloses each maximal run of adjacent list items in a single
// <ul>. The wrap is local and non-nesting: two unrelated lists that sit
// back to back merge into one container.
func (t *transformer) listWrap(text string) string {
	return listRunPattern.ReplaceAllString(text, "<ul>$0</ul>")
}

func (t *transformer) links(text string) string {
	return linkPattern.ReplaceAllString(text, `<a href="$2">$1</a>`)
}

func (t *transformer) images(text string) string {
	return imagePattern.ReplaceAllString(text, `<img src="$1" alt="$2">`)
}

func (t *transformer) videos(text string) string {
	return videoPattern.ReplaceAllString(text, `<iframe src="$1" frameborder="0" allowfullscreen></iframe>`)
}

// calloutKinds are the single-line callout directives, rewritten in this
// order. Each consumes the rest of its line.
var calloutKinds = []string{"note", "warning", "info", "tip"}

var (
	calloutPatterns = func() map[string]*regexp.Regexp {
		patterns := make(map[string]*regexp.Regexp, len(calloutKinds))
		for _, kind := range calloutKinds {
			patterns[kind] = regexp.MustCompile(`@` + kind + `: (.+)`)
		}
		return patterns
	}()

	todoPattern = regexp.MustCompile(`@todo: (.+)`)
)

func (t *transformer) callouts(text string) string {
	for _, kind := range calloutKinds {
		text = calloutPatterns[kind].ReplaceAllString(text, `<div class="`+kind+`">$1</div>`)
	}
	// @todo: carries a visible TODO: prefix in addition to its class.
	return todoPattern.ReplaceAllString(text, `<div class="todo">TODO: $1</div>`)
}

// allowedAlertTypes is the closed set of alert classes; anything else is
// coerced to info.
var allowedAlertTypes = map[string]bool{
	"info":    true,
	"warning": true,
	"error":   true,
	"success": true,
}

func (t *transformer) alerts(text string) string {
	return alertPattern.ReplaceAllStringFunc(text, func(block string) string {
		m := alertPattern.FindStringSubmatch(block)
		alertType, content := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if !allowedAlertTypes[alertType] {
			alertType = "info"
		}
		return fmt.Sprintf(`<div class="alert %s">%s</div>`, alertType, content)
	})
}

func (t *transformer) badges(text string) string {
	return badgePattern.ReplaceAllString(text, `<span class="badge $3">$1: $2</span>`)
}

// tables rewrites @table: blocks. The first line of the trimmed body is
// the header row; columns split on | with each cell trimmed. Cell content
// is not escaped, and a header-only table is legal.
func (t *transformer) tables(text string) string {
	return tablePattern.ReplaceAllStringFunc(text, func(block string) string {
		body := strings.TrimSpace(tablePattern.FindStringSubmatch(block)[1])

		var b strings.Builder
		b.WriteString("<table>")
		for i, row := range strings.Split(body, "\n") {
			cell := "td"
			if i == 0 {
				cell = "th"
			}
			b.WriteString("<tr>")
			for _, col := range strings.Split(row, "|") {
				fmt.Fprintf(&b, "<%s>%s</%s>", cell, strings.TrimSpace(col), cell)
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</table>")
		return b.String()
	})
}

// escapeHTML escapes the characters that would otherwise be interpreted
// as markup inside a command block.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
