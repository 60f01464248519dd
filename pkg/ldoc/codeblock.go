package ldoc

import (
	"fmt"
	"regexp"
	"strings"
)

// codeblockPattern matches a named, reusable code block declaration.
var codeblockPattern = regexp.MustCompile(`(?s)@codeblock (\w+) (\w+)\n(.*?)@endcodeblock`)

// codeblockRegistry stores pre-rendered snippets by name, in declaration
// order. It is populated once per document and never shared across
// documents.
type codeblockRegistry struct {
	names    []string
	snippets map[string]string
}

// extractCodeblocks pulls every @codeblock declaration out of the buffer.
// The body is trimmed and rendered immediately; the declaration (including
// its body) is removed in place.
func extractCodeblocks(text string) (string, *codeblockRegistry) {
	reg := &codeblockRegistry{snippets: make(map[string]string)}
	for _, m := range codeblockPattern.FindAllStringSubmatch(text, -1) {
		lang, name, body := m[1], m[2], m[3]
		if _, ok := reg.snippets[name]; !ok {
			reg.names = append(reg.names, name)
		}
		reg.snippets[name] = renderCodeSnippet(lang, strings.TrimSpace(body))
	}
	return codeblockPattern.ReplaceAllString(text, ""), reg
}

// substitute replaces every @usecode reference to a known name with its
// snippet. References to undeclared names are left as literal text.
func (r *codeblockRegistry) substitute(text string) string {
	for _, name := range r.names {
		text = strings.ReplaceAll(text, "@usecode "+name, r.snippets[name])
	}
	return text
}

// renderCodeSnippet wraps code in the pre/code shape shared by codeblocks,
// fences, and @command: output.
func renderCodeSnippet(lang, code string) string {
	return fmt.Sprintf(`<pre><code class="%s">%s</code></pre>`, lang, code)
}
