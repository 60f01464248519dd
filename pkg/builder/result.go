package builder

// FileOutcome is the result of building a single document.
type FileOutcome struct {
	// Source is the absolute path of the input document.
	Source string

	// Output is the path the rendered page was (or would have been)
	// written to.
	Output string

	// Title is the extracted document title.
	Title string

	// Written is true if the output file was created or updated.
	Written bool

	// Error is non-nil if this document failed to build. Other documents
	// in the run are unaffected.
	Error error
}

// Stats aggregates counts across a build run.
type Stats struct {
	// FilesDiscovered is the number of source documents found.
	FilesDiscovered int

	// FilesBuilt is the number of documents rendered successfully.
	FilesBuilt int

	// FilesUnchanged counts outputs skipped because the rendered page
	// was byte-identical to what was on disk.
	FilesUnchanged int

	// FilesFailed counts documents that errored.
	FilesFailed int
}

// Result collects per-file outcomes in deterministic (discovery) order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures returns true if any document failed to build.
func (r *Result) HasFailures() bool {
	return r.Stats.FilesFailed > 0
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	switch {
	case outcome.Error != nil:
		r.Stats.FilesFailed++
	case outcome.Written:
		r.Stats.FilesBuilt++
	default:
		r.Stats.FilesBuilt++
		r.Stats.FilesUnchanged++
	}
}
