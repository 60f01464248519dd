// Package config defines core configuration types for ldoc.
// These are pure data structures; loading and merging live in
// internal/configloader.
package config

// DefaultExtension is the source file extension for ldoc documents.
const DefaultExtension = ".ldoc"

// DefaultOutputDir is where rendered HTML is written unless overridden.
const DefaultOutputDir = "build"

// Config is the root configuration structure for ldoc.
type Config struct {
	// Platform gates @if PLATFORM=... blocks. Empty disables all
	// conditional blocks.
	Platform string `yaml:"platform"`

	// OutputDir is the directory rendered HTML files are written to.
	OutputDir string `yaml:"output"`

	// Extension is the source file extension used during directory
	// discovery.
	Extension string `yaml:"extension"`

	// TemplatePath points to a page template file containing the {title}
	// and {content} placeholders. Empty selects the built-in template.
	TemplatePath string `yaml:"template"`

	// Vars pre-seeds the variable table for every document in the build.
	Vars map[string]string `yaml:"vars"`

	// DetectLanguages enables language detection for untagged fenced
	// code blocks.
	DetectLanguages bool `yaml:"detect_languages"`

	// Jobs is the number of parallel build workers (0 = one per CPU).
	Jobs int `yaml:"jobs"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Extension: DefaultExtension,
		Vars:      make(map[string]string),
	}
}
