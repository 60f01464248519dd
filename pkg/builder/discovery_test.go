package builder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ldoc/pkg/config"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDiscoverDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.ldoc", "b")
	writeSource(t, dir, "a.ldoc", "a")
	writeSource(t, dir, "notes.txt", "skip me")
	writeSource(t, dir, "sub/c.ldoc", "c")

	sources, err := Discover(context.Background(), Options{
		Inputs:     []string{dir},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	require.Len(t, sources, 3)
	assert.Equal(t, "a.ldoc", sources[0].Rel)
	assert.Equal(t, "b.ldoc", sources[1].Rel)
	assert.Equal(t, filepath.Join("sub", "c.ldoc"), sources[2].Rel)
}

func TestDiscoverSkipsHiddenEntries(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "visible.ldoc", "v")
	writeSource(t, dir, ".hidden.ldoc", "h")
	writeSource(t, dir, ".git/inside.ldoc", "g")

	sources, err := Discover(context.Background(), Options{
		Inputs:     []string{dir},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	require.Len(t, sources, 1)
	assert.Equal(t, "visible.ldoc", sources[0].Rel)
}

func TestDiscoverExplicitFileIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "readme.txt", "text")

	sources, err := Discover(context.Background(), Options{
		Inputs:     []string{path},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	require.Len(t, sources, 1)
	assert.Equal(t, path, sources[0].Path)
	assert.Equal(t, "readme.txt", sources[0].Rel)
}

func TestDiscoverDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "doc.ldoc", "d")

	sources, err := Discover(context.Background(), Options{
		Inputs:     []string{dir, path},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Len(t, sources, 1)
}

func TestDiscoverMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := Discover(context.Background(), Options{
		Inputs:     []string{"missing-dir"},
		WorkingDir: dir,
	})
	assert.Error(t, err)
}

func TestDiscoverCustomExtension(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "doc.txt", "t")
	writeSource(t, dir, "doc.ldoc", "l")

	cfg := config.NewConfig()
	cfg.Extension = ".txt"

	sources, err := Discover(context.Background(), Options{
		Inputs:     []string{dir},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, sources, 1)
	assert.Equal(t, "doc.txt", sources[0].Rel)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		rel    string
		outDir string
		want   string
	}{
		{"flat file", "intro.ldoc", "build", filepath.Join("build", "intro.html")},
		{"nested file", filepath.Join("guides", "setup.ldoc"), "build", filepath.Join("build", "guides", "setup.html")},
		{"non-default extension", "readme.txt", "out", filepath.Join("out", "readme.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.outDir, Source{Rel: tt.rel})
			assert.Equal(t, tt.want, got)
		})
	}
}
