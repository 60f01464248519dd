// Package builder orchestrates multi-document ldoc builds: source
// discovery, a worker pool converting documents through the pipeline,
// template rendering, and atomic output writes.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/yaklabco/ldoc/pkg/config"
	"github.com/yaklabco/ldoc/pkg/fsutil"
	"github.com/yaklabco/ldoc/pkg/ldoc"
	"github.com/yaklabco/ldoc/pkg/template"
)

// outputDirMode is the permission mode for created output directories.
const outputDirMode os.FileMode = 0755

// Builder renders discovered documents into a page template.
type Builder struct {
	// Template is the page template every fragment is rendered into.
	Template *template.Template
}

// New creates a Builder with the given page template.
func New(tpl *template.Template) *Builder {
	return &Builder{Template: tpl}
}

// Run discovers documents under opts.Inputs and builds them concurrently.
// Per-document failures are recorded as outcomes rather than aborting the
// run; outcomes are returned in discovery order regardless of worker
// scheduling.
func (b *Builder) Run(ctx context.Context, opts Options) (*Result, error) {
	sources, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	cfg := opts.effectiveConfig()

	result := &Result{Files: make([]FileOutcome, 0, len(sources))}
	result.Stats.FilesDiscovered = len(sources)

	if len(sources) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(sources) {
		jobs = len(sources)
	}

	workCh := make(chan Source)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.worker(ctx, workCh, outCh, cfg)
		}()
	}

	go func() {
		defer close(workCh)
		for _, source := range sources {
			select {
			case <-ctx.Done():
				return
			case workCh <- source:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key outcomes by source path and
	// re-emit in discovery order.
	outcomes := make(map[string]FileOutcome, len(sources))
	for outcome := range outCh {
		outcomes[outcome.Source] = outcome
	}

	for _, source := range sources {
		if outcome, ok := outcomes[source.Path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("build cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker builds sources from workCh and sends outcomes to outCh.
func (b *Builder) worker(ctx context.Context, workCh <-chan Source, outCh chan<- FileOutcome, cfg *config.Config) {
	for source := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := b.buildDocument(ctx, source, cfg)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// buildDocument runs one source through read -> pipeline -> template ->
// atomic write.
func (b *Builder) buildDocument(ctx context.Context, source Source, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{
		Source: source.Path,
		Output: OutputPath(cfg.OutputDir, source),
	}

	content, _, err := fsutil.ReadFile(ctx, source.Path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	pipeline := ldoc.New(ldoc.Options{
		BaseDir:         filepath.Dir(source.Path),
		Platform:        cfg.Platform,
		Vars:            cfg.Vars,
		DetectLanguages: cfg.DetectLanguages,
	})

	doc, err := pipeline.Convert(ctx, string(content))
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Title = doc.Title

	page := b.Template.Render(doc.Title, doc.Fragment)

	if err := os.MkdirAll(filepath.Dir(outcome.Output), outputDirMode); err != nil {
		outcome.Error = fmt.Errorf("create output directory: %w", err)
		return outcome
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, outcome.Output, []byte(page), 0)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Written = written

	return outcome
}
