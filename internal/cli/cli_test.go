package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ldoc/pkg/builder"
)

func testBuildInfo() BuildInfo {
	return BuildInfo{Version: "test", Commit: "abc123", Date: "2026-01-01"}
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand(testBuildInfo())

	assert.Equal(t, "ldoc", root.Name())

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "build")
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "version")
}

func TestRootPersistentFlags(t *testing.T) {
	root := NewRootCommand(testBuildInfo())

	for _, flag := range []string{"debug", "config", "color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand(testBuildInfo())
	root.SetArgs([]string{"version"})

	assert.NoError(t, root.Execute())
}

func TestInitCommand(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".ldoc.yml")

		root := NewRootCommand(testBuildInfo())
		root.SetArgs([]string{"init", "--output", path})
		require.NoError(t, root.Execute())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "output: build")
		assert.Contains(t, string(content), "extension: .ldoc")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".ldoc.yml")
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))

		root := NewRootCommand(testBuildInfo())
		root.SetArgs([]string{"init", "--output", path})
		err := root.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("force overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".ldoc.yml")
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))

		root := NewRootCommand(testBuildInfo())
		root.SetArgs([]string{"init", "--output", path, "--force"})
		require.NoError(t, root.Execute())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEqual(t, "existing", string(content))
	})

	t.Run("scaffolds template", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		root := NewRootCommand(testBuildInfo())
		root.SetArgs([]string{"init", "--output", filepath.Join(dir, ".ldoc.yml"), "--template"})
		require.NoError(t, root.Execute())

		content, err := os.ReadFile(filepath.Join(dir, "templates", "base.html"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "{title}")
		assert.Contains(t, string(content), "{content}")
	})
}

func TestExitCodeFromResult(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFromResult(nil))
	assert.Equal(t, ExitSuccess, ExitCodeFromResult(&builder.Result{}))

	failed := &builder.Result{}
	failed.Stats.FilesFailed = 1
	assert.Equal(t, ExitBuildFailed, ExitCodeFromResult(failed))
}

// newProjectDir bounds config discovery with a VCS marker so the build
// command never picks up configuration from the test host.
func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	return dir
}

func executeBuild(t *testing.T, dir string, args ...string) (*cobra.Command, string, error) {
	t.Helper()
	t.Chdir(dir)

	root := NewRootCommand(testBuildInfo())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"build"}, args...))

	err := root.Execute()
	return root, out.String(), err
}

func TestBuildCommand(t *testing.T) {
	t.Run("builds a document", func(t *testing.T) {
		dir := newProjectDir(t)
		source := filepath.Join(dir, "doc.ldoc")
		require.NoError(t, os.WriteFile(source, []byte("@title: Hello\n\nWorld."), 0644))

		_, out, err := executeBuild(t, dir, "doc.ldoc", "-o", filepath.Join(dir, "out"))
		require.NoError(t, err)

		page, err := os.ReadFile(filepath.Join(dir, "out", "doc.html"))
		require.NoError(t, err)
		assert.Contains(t, string(page), "<title>Hello</title>")
		assert.Contains(t, string(page), "World.")

		assert.Contains(t, out, "doc.ldoc")
		assert.Contains(t, out, "built 1 file")
	})

	t.Run("seeds variables from flags", func(t *testing.T) {
		dir := newProjectDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.ldoc"), []byte("v@VERSION"), 0644))

		_, _, err := executeBuild(t, dir, "doc.ldoc",
			"-o", filepath.Join(dir, "out"), "--var", "VERSION=9.9")
		require.NoError(t, err)

		page, err := os.ReadFile(filepath.Join(dir, "out", "doc.html"))
		require.NoError(t, err)
		assert.Contains(t, string(page), "v9.9")
	})

	t.Run("rejects malformed var flag", func(t *testing.T) {
		dir := newProjectDir(t)

		_, _, err := executeBuild(t, dir, "--var", "NOVALUE")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NAME=VALUE")
	})

	t.Run("failing document yields ErrBuildFailed", func(t *testing.T) {
		dir := newProjectDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "loop.ldoc"),
			[]byte("@include loop.ldoc"), 0644))

		_, _, err := executeBuild(t, dir, "loop.ldoc", "-o", filepath.Join(dir, "out"))
		assert.ErrorIs(t, err, ErrBuildFailed)
	})
}
