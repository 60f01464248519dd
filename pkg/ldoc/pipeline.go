// Package ldoc implements the ldoc markup-to-HTML conversion pipeline.
//
// A document moves through a fixed sequence of stages, each of which reads
// and rewrites a single text buffer: include resolution, title extraction,
// variable substitution, conditional evaluation, codeblock registration,
// table-of-contents synthesis, syntax transformation, and paragraph
// wrapping. The stage order is a contract: a stage must never observe
// syntax belonging to a later stage already rewritten.
package ldoc

import (
	"context"
	"fmt"
)

// DefaultTitle is used when a document carries no @title: directive.
const DefaultTitle = "Documentation"

// Options configures a conversion pipeline.
type Options struct {
	// BaseDir is the directory against which @include paths are resolved.
	BaseDir string

	// Platform gates @if PLATFORM=... blocks. Empty means every
	// conditional block evaluates false.
	Platform string

	// Vars pre-seeds the variable table, e.g. for batch builds that share
	// values across documents. In-document @var declarations override
	// seeded values of the same name.
	Vars map[string]string

	// DetectLanguages fills in the language class of untagged fenced code
	// blocks using content-based detection.
	DetectLanguages bool
}

// Document is the result of converting one ldoc source.
type Document struct {
	// Title is the extracted @title: value, or DefaultTitle.
	Title string

	// Fragment is the rendered HTML fragment, ready for template insertion.
	Fragment string

	// Headings lists the level 1-3 headings in document order, as used for
	// the table of contents. Duplicate anchors are preserved as-is.
	Headings []Heading

	// Vars is the final variable table after in-document declarations.
	Vars map[string]string
}

// Pipeline converts ldoc source text to HTML fragments.
// A Pipeline is stateless across documents and safe for concurrent use.
type Pipeline struct {
	opts Options
}

// New creates a Pipeline with the given options.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// Convert runs the full pipeline over source and returns the rendered
// document. It fails only on unrecoverable conditions (context
// cancellation, circular includes); all malformed directives degrade
// inline per stage.
func (p *Pipeline) Convert(ctx context.Context, source string) (*Document, error) {
	text, err := p.resolveIncludes(ctx, source, nil)
	if err != nil {
		return nil, fmt.Errorf("resolve includes: %w", err)
	}

	text, title := extractTitle(text)

	vars := newVarTable(p.opts.Vars)
	text = collectVars(text, vars)
	text = vars.substitute(text)

	text = evalConditionals(text, p.opts.Platform)

	text, blocks := extractCodeblocks(text)
	text = blocks.substitute(text)

	headings := collectHeadings(text)
	text = insertTOC(text, headings)

	t := &transformer{detectLanguages: p.opts.DetectLanguages}
	text = t.transform(text)

	text = wrapParagraphs(text)

	return &Document{
		Title:    title,
		Fragment: text,
		Headings: headings,
		Vars:     vars.export(),
	}, nil
}
