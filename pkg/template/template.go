// Package template renders ldoc HTML fragments into full pages.
//
// A page template is a plain string carrying exactly two literal
// placeholders, {title} and {content}. The package deliberately avoids a
// template engine: the placeholder contract is part of the template file
// format and must stay stable for user-supplied templates.
package template

import (
	"fmt"
	"os"
	"strings"
)

// Placeholder tokens every page template must contain.
const (
	TitlePlaceholder   = "{title}"
	ContentPlaceholder = "{content}"
)

// Template is a validated page template.
type Template struct {
	raw string
}

// Parse validates that raw contains both placeholders.
func Parse(raw string) (*Template, error) {
	for _, placeholder := range []string{TitlePlaceholder, ContentPlaceholder} {
		if !strings.Contains(raw, placeholder) {
			return nil, fmt.Errorf("template missing %s placeholder", placeholder)
		}
	}
	return &Template{raw: raw}, nil
}

// Load reads and validates a template file.
func Load(path string) (*Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	tpl, err := Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return tpl, nil
}

// Default returns the built-in page template, used when no template file
// is configured.
func Default() *Template {
	return &Template{raw: defaultPage}
}

// Render substitutes the title and fragment into the template.
func (t *Template) Render(title, content string) string {
	page := strings.ReplaceAll(t.raw, TitlePlaceholder, title)
	return strings.ReplaceAll(page, ContentPlaceholder, content)
}

// Raw returns the template source, e.g. for scaffolding a starter
// template file.
func (t *Template) Raw() string {
	return t.raw
}

// defaultPage styles every element class the pipeline emits: toc, alerts,
// callouts, badges, task items, command blocks, and tables.
const defaultPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{title}</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; color: #1f2430; }
  h1, h2, h3 { line-height: 1.25; }
  pre { background: #f6f8fa; padding: 0.75rem 1rem; border-radius: 6px; overflow-x: auto; }
  code { font-family: ui-monospace, monospace; font-size: 0.92em; }
  pre code.command::before { content: "$ "; color: #6a737d; }
  nav.toc { background: #f6f8fa; border: 1px solid #d8dee4; border-radius: 6px; padding: 0.5rem 1rem; }
  nav.toc ul { list-style: none; padding-left: 0; }
  nav.toc li.level-2 { padding-left: 1rem; }
  nav.toc li.level-3 { padding-left: 2rem; }
  .note, .info, .tip, .warning, .todo { border-left: 4px solid #8a94a6; padding: 0.5rem 1rem; margin: 0.75rem 0; background: #f6f8fa; }
  .warning { border-color: #d4a72c; background: #fff8c5; }
  .tip { border-color: #1a7f37; background: #dafbe1; }
  .todo { border-color: #8250df; background: #fbefff; }
  .alert { padding: 0.75rem 1rem; border-radius: 6px; margin: 0.75rem 0; }
  .alert.info { background: #ddf4ff; }
  .alert.warning { background: #fff8c5; }
  .alert.error { background: #ffebe9; }
  .alert.success { background: #dafbe1; }
  .badge { display: inline-block; padding: 0.1rem 0.5rem; border-radius: 999px; background: #eaeef2; font-size: 0.85em; }
  .error { color: #cf222e; border: 1px dashed #cf222e; padding: 0.25rem 0.5rem; }
  li.task-item { list-style: none; }
  table { border-collapse: collapse; margin: 0.75rem 0; }
  th, td { border: 1px solid #d8dee4; padding: 0.35rem 0.75rem; text-align: left; }
  th { background: #f6f8fa; }
  iframe { border: 0; width: 100%; aspect-ratio: 16 / 9; }
  img { max-width: 100%; }
</style>
</head>
<body>
{content}
</body>
</html>
`
