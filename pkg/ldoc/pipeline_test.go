package ldoc

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertPlainParagraph(t *testing.T) {
	p := New(Options{})

	doc, err := p.Convert(context.Background(), "Just some text.")
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, doc.Title)
	assert.Equal(t, "<p>Just some text.</p>", doc.Fragment)
	assert.Empty(t, doc.Headings)
}

func TestConvertTitleExtraction(t *testing.T) {
	p := New(Options{})

	doc, err := p.Convert(context.Background(), "@title: User Guide\n\nIntro text.")
	require.NoError(t, err)

	assert.Equal(t, "User Guide", doc.Title)
	assert.NotContains(t, doc.Fragment, "@title")
	assert.Contains(t, doc.Fragment, "Intro text.")
}

func TestConvertFirstTitleWins(t *testing.T) {
	p := New(Options{})

	doc, err := p.Convert(context.Background(), "@title: First\n@title: Second\n")
	require.NoError(t, err)

	assert.Equal(t, "First", doc.Title)
	assert.NotContains(t, doc.Fragment, "Second")
}

func TestConvertVariableSubstitution(t *testing.T) {
	source := "@var VERSION=2.0\nRelease @VERSION is out."

	doc, err := New(Options{}).Convert(context.Background(), source)
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "Release 2.0 is out.")
	assert.NotContains(t, doc.Fragment, "@var")
	assert.Equal(t, "2.0", doc.Vars["VERSION"])
}

func TestConvertSeededVarsOverriddenByDocument(t *testing.T) {
	source := "@var VERSION=3.0\nv@VERSION"

	doc, err := New(Options{Vars: map[string]string{"VERSION": "1.0"}}).
		Convert(context.Background(), source)
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "v3.0")
	assert.Equal(t, "3.0", doc.Vars["VERSION"])
}

func TestConvertUnknownVarPassesThrough(t *testing.T) {
	doc, err := New(Options{}).Convert(context.Background(), "ping @NOBODY here")
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "@NOBODY")
}

func TestConvertPlatformConditionals(t *testing.T) {
	source := "@if PLATFORM=linux\nLinux only.\n@endif\n@if PLATFORM=windows\nWindows only.\n@endif\nAlways."

	tests := []struct {
		name     string
		platform string
		want     string
		exclude  string
	}{
		{"matching platform", "linux", "Linux only.", "Windows only."},
		{"other platform", "windows", "Windows only.", "Linux only."},
		{"no platform drops all blocks", "", "Always.", "only."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := New(Options{Platform: tt.platform}).
				Convert(context.Background(), source)
			require.NoError(t, err)

			assert.Contains(t, doc.Fragment, tt.want)
			assert.NotContains(t, doc.Fragment, tt.exclude)
			assert.Contains(t, doc.Fragment, "Always.")
		})
	}
}

func TestConvertCodeblockReuse(t *testing.T) {
	source := "@codeblock go hello\nfmt.Println(\"hi\")\n@endcodeblock\n\nFirst: @usecode hello\n\nSecond: @usecode hello"

	doc, err := New(Options{}).Convert(context.Background(), source)
	require.NoError(t, err)

	snippet := `<pre><code class="go">fmt.Println("hi")</code></pre>`
	assert.Equal(t, 2, strings.Count(doc.Fragment, snippet))
	assert.NotContains(t, doc.Fragment, "@codeblock")
}

func TestConvertUndeclaredUsecodeStaysLiteral(t *testing.T) {
	doc, err := New(Options{}).Convert(context.Background(), "@usecode missing")
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "@usecode missing")
}

func TestConvertTOC(t *testing.T) {
	source := "@toc\n\n# Intro\n\n## Setup\n\n### Details"

	doc, err := New(Options{}).Convert(context.Background(), source)
	require.NoError(t, err)

	require.Len(t, doc.Headings, 3)
	assert.Equal(t, Heading{Level: 1, Text: "Intro", Anchor: "intro"}, doc.Headings[0])
	assert.Equal(t, Heading{Level: 2, Text: "Setup", Anchor: "setup"}, doc.Headings[1])
	assert.Equal(t, Heading{Level: 3, Text: "Details", Anchor: "details"}, doc.Headings[2])

	assert.Contains(t, doc.Fragment,
		"<nav class='toc'><h3>Table of Contents</h3><ul>"+
			"<li class='level-1'><a href='#intro'>Intro</a></li>"+
			"<li class='level-2'><a href='#setup'>Setup</a></li>"+
			"<li class='level-3'><a href='#details'>Details</a></li>"+
			"</ul></nav>")
	assert.Contains(t, doc.Fragment, `<h1 id="intro">Intro</h1>`)
}

func TestConvertEmptyTOC(t *testing.T) {
	doc, err := New(Options{}).Convert(context.Background(), "@toc\n\nno headings here")
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "<nav class='toc'><h3>Table of Contents</h3><ul></ul></nav>")
}

func TestConvertInclude(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "part.ldoc"), []byte("included text"), 0644))

	doc, err := New(Options{BaseDir: dir}).
		Convert(context.Background(), "before\n@include part.ldoc\nafter")
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "included text")
	assert.NotContains(t, doc.Fragment, "@include")
}

func TestConvertNestedInclude(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "outer.ldoc"), []byte("outer\n@include inner.ldoc"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inner.ldoc"), []byte("inner"), 0644))

	doc, err := New(Options{BaseDir: dir}).
		Convert(context.Background(), "@include outer.ldoc")
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "outer")
	assert.Contains(t, doc.Fragment, "inner")
}

func TestConvertMissingIncludeMarker(t *testing.T) {
	doc, err := New(Options{BaseDir: t.TempDir()}).
		Convert(context.Background(), "@include nope.ldoc")
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "<div class='error'>Missing include: nope.ldoc</div>")
}

func TestConvertCircularIncludeFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ldoc"), []byte("@include b.ldoc"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ldoc"), []byte("@include a.ldoc"), 0644))

	_, err := New(Options{BaseDir: dir}).
		Convert(context.Background(), "@include a.ldoc")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircularInclude)
}

func TestConvertSelfIncludeFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "self.ldoc"), []byte("@include self.ldoc"), 0644))

	_, err := New(Options{BaseDir: dir}).
		Convert(context.Background(), "@include self.ldoc")
	assert.ErrorIs(t, err, ErrCircularInclude)
}

func TestConvertCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "part.ldoc"), []byte("text"), 0644))

	_, err := New(Options{BaseDir: dir}).Convert(ctx, "@include part.ldoc")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvertParagraphWrapping(t *testing.T) {
	doc, err := New(Options{}).Convert(context.Background(), "first\n\nsecond\n\n\nthird")
	require.NoError(t, err)

	assert.Equal(t, "<p>first</p><p>second</p><p>third</p>", doc.Fragment)
}

func TestConvertStageOrdering(t *testing.T) {
	// A variable referenced inside a conditional body must already be
	// substituted by the time the conditional is evaluated.
	source := "@var OS=linux\n@if PLATFORM=linux\nrunning on @OS\n@endif"

	doc, err := New(Options{Platform: "linux"}).Convert(context.Background(), source)
	require.NoError(t, err)

	assert.Contains(t, doc.Fragment, "running on linux")
}

func TestConvertCodeblockInsideFalseConditional(t *testing.T) {
	source := "@if PLATFORM=windows\n@codeblock sh setup\nchoco install thing\n@endcodeblock\n@endif\n@usecode setup"

	doc, err := New(Options{Platform: "linux"}).Convert(context.Background(), source)
	require.NoError(t, err)

	// The declaration was dropped with its conditional, so the reference
	// stays literal.
	assert.Contains(t, doc.Fragment, "@usecode setup")
	assert.NotContains(t, doc.Fragment, "choco")
}
