package ldoc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// ErrCircularInclude indicates an @include chain that revisits a file.
var ErrCircularInclude = errors.New("circular include")

// includePattern matches an @include directive through the end of the line.
var includePattern = regexp.MustCompile(`@include (.+)`)

// resolveIncludes expands every @include directive in text. Included
// content is resolved recursively, so includes may themselves include
// further files. All paths are resolved against the pipeline's base
// directory.
//
// A missing file does not fail the document: the directive is replaced
// with an inline error marker and resolution continues. A chain that
// revisits a file fails fast with ErrCircularInclude instead of expanding
// forever.
func (p *Pipeline) resolveIncludes(ctx context.Context, text string, chain []string) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("include resolution cancelled: %w", ctx.Err())
		default:
		}

		loc := includePattern.FindStringSubmatchIndex(text)
		if loc == nil {
			return text, nil
		}

		includePath := strings.TrimSpace(text[loc[2]:loc[3]])
		fullPath := filepath.Join(p.opts.BaseDir, includePath)

		var replacement string
		switch {
		case slices.Contains(chain, fullPath):
			cycle := append(slices.Clone(chain), fullPath)
			return "", fmt.Errorf("%w: %s", ErrCircularInclude, strings.Join(cycle, " -> "))
		default:
			content, err := os.ReadFile(fullPath)
			if err != nil {
				replacement = missingIncludeMarker(includePath)
				break
			}
			// Resolve nested includes before splicing so the outer scan
			// never re-visits this subtree.
			resolved, err := p.resolveIncludes(ctx, string(content), append(chain, fullPath))
			if err != nil {
				return "", err
			}
			replacement = resolved
		}

		text = text[:loc[0]] + replacement + text[loc[1]:]
	}
}

func missingIncludeMarker(path string) string {
	return fmt.Sprintf("<div class='error'>Missing include: %s</div>", path)
}
