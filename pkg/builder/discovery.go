package builder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is one discovered input document.
type Source struct {
	// Path is the absolute path of the source file.
	Path string

	// Rel is the path used to derive the output file name: relative to
	// the input directory the file was discovered under, or the bare
	// file name for explicitly listed files.
	Rel string
}

// Discover resolves opts.Inputs to a deterministically sorted list of
// source documents. Directories are walked recursively for files with the
// configured extension (hidden entries skipped); files named explicitly
// are always included.
func Discover(ctx context.Context, opts Options) ([]Source, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extension := opts.effectiveConfig().Extension

	seen := make(map[string]struct{})
	var sources []Source

	add := func(s Source) {
		if _, ok := seen[s.Path]; !ok {
			seen[s.Path] = struct{}{}
			sources = append(sources, s)
		}
	}

	for _, input := range opts.Inputs {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := input
		if !filepath.IsAbs(input) {
			absPath = filepath.Join(workDir, input)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			add(Source{Path: absPath, Rel: filepath.Base(absPath)})
			continue
		}

		discovered, err := walkDirectory(ctx, absPath, extension)
		if err != nil {
			return nil, err
		}
		for _, s := range discovered {
			add(s)
		}
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })

	return sources, nil
}

// walkDirectory recursively collects source files under root.
func walkDirectory(ctx context.Context, root, extension string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), extension) {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = filepath.Base(path)
		}
		sources = append(sources, Source{Path: path, Rel: rel})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return sources, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd.
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// OutputPath derives the output file for a source: the relative source
// path under outputDir with its extension swapped for .html.
func OutputPath(outputDir string, source Source) string {
	rel := strings.TrimSuffix(source.Rel, filepath.Ext(source.Rel)) + ".html"
	return filepath.Join(outputDir, rel)
}
