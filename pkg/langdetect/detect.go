// Package langdetect guesses the language of a code snippet so untagged
// fenced code blocks can still carry a useful class in the rendered HTML.
// It combines go-enry's shebang and classifier detection with a few cheap
// pattern checks for the languages that dominate documentation examples.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when no detection strategy is confident.
const Fallback = "text"

// classifierCandidates limits enry's Bayesian classifier to languages that
// actually appear in documentation code blocks; an open candidate set
// produces noisy guesses on short snippets.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Rust", "C", "SQL", "JSON", "YAML", "HTML", "CSS", "Dockerfile",
}

// heuristic is a cheap language check run before the classifier.
type heuristic struct {
	lang  string
	match func(content []byte) bool
}

// heuristics run in order of specificity. The first match wins.
var heuristics = []heuristic{
	{"go", func(c []byte) bool {
		return bytes.HasPrefix(bytes.TrimSpace(c), []byte("package ")) ||
			bytes.Contains(c, []byte("func main()"))
	}},
	{"python", func(c []byte) bool {
		s := string(c)
		return (strings.Contains(s, "def ") && strings.Contains(s, "):")) ||
			strings.Contains(s, "__main__")
	}},
	{"html", func(c []byte) bool {
		lower := bytes.ToLower(bytes.TrimSpace(c))
		return bytes.Contains(lower, []byte("<!doctype html")) || bytes.Contains(lower, []byte("<html"))
	}},
	{"json", func(c []byte) bool {
		trimmed := bytes.TrimSpace(c)
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(c []byte) bool {
		return bytes.HasPrefix(bytes.TrimSpace(c), []byte("FROM ")) ||
			(bytes.Contains(c, []byte("\nRUN ")) && bytes.Contains(c, []byte("FROM ")))
	}},
	{"sql", func(c []byte) bool {
		upper := strings.ToUpper(strings.TrimSpace(string(c)))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "CREATE TABLE"} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"bash", func(c []byte) bool {
		s := strings.TrimSpace(string(c))
		return strings.HasPrefix(s, "$ ") || strings.HasPrefix(s, "sudo ") ||
			strings.HasPrefix(s, "curl ") || strings.HasPrefix(s, "export ")
	}},
	{"yaml", isLikelyYAML},
}

// Detect returns a lowercase fence class for content, or Fallback when
// nothing is confident enough.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Fallback
	}

	// Shebangs are the most reliable signal.
	if lang, ok := enry.GetLanguageByShebang(content); ok {
		return normalize(lang)
	}

	for _, h := range heuristics {
		if h.match(content) {
			return h.lang
		}
	}

	if lang, ok := enry.GetLanguageByClassifier(content, classifierCandidates); ok && lang != "" {
		return normalize(lang)
	}

	return Fallback
}

// isLikelyYAML counts top-level "key: value" and "- item" lines; two or
// more is taken as YAML.
func isLikelyYAML(content []byte) bool {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0 || line[0] == '#':
		case bytes.HasPrefix(line, []byte("- ")):
			count++
		case bytes.Contains(line, []byte(": ")) && !bytes.ContainsAny(line, "({"):
			count++
		}
	}
	return count >= 2
}

// normalize maps enry language names onto conventional fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
