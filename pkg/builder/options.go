package builder

import "github.com/yaklabco/ldoc/pkg/config"

// Options controls a single build run.
type Options struct {
	// Inputs are the files and/or directories to build. Directories are
	// walked for files carrying the source extension; explicit files are
	// built regardless of extension.
	Inputs []string

	// WorkingDir anchors relative input paths. Defaults to the current
	// working directory.
	WorkingDir string

	// Jobs is the number of parallel workers (0 = one per CPU).
	Jobs int

	// Config carries the build configuration (output directory, platform,
	// seeded variables, ...).
	Config *config.Config
}

// effectiveConfig returns the run configuration, falling back to
// defaults when none was supplied.
func (o Options) effectiveConfig() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.NewConfig()
}
