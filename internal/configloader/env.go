package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/ldoc/pkg/config"
)

// envVarPrefix is the prefix for all ldoc environment variables.
const envVarPrefix = "LDOC_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeVars
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"PLATFORM":         {field: "platform", typ: envTypeString},
	"OUTPUT":           {field: "output", typ: envTypeString},
	"EXTENSION":        {field: "extension", typ: envTypeString},
	"TEMPLATE":         {field: "template", typ: envTypeString},
	"JOBS":             {field: "jobs", typ: envTypeInt},
	"DETECT_LANGUAGES": {field: "detect_languages", typ: envTypeBool},
	"VARS":             {field: "vars", typ: envTypeVars},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with LDOC_ (e.g., LDOC_PLATFORM).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeVars:
		vars, err := parseVarsValue(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", envVar, err)
		}
		if cfg.Vars == nil {
			cfg.Vars = make(map[string]string, len(vars))
		}
		for name, val := range vars {
			cfg.Vars[name] = val
		}
		return nil
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseVarsValue parses a comma-separated NAME=VALUE list.
// Example: "VERSION=2.0,PRODUCT=ldoc".
func parseVarsValue(value string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, val, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected NAME=VALUE, got %q", pair)
		}
		vars[name] = val
	}
	return vars, nil
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "platform":
		cfg.Platform = value
	case "output":
		cfg.OutputDir = value
	case "extension":
		cfg.Extension = value
	case "template":
		cfg.TemplatePath = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "detect_languages":
		cfg.DetectLanguages = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"LDOC_PLATFORM":         "Platform for @if PLATFORM=... conditionals",
		"LDOC_OUTPUT":           "Output directory for rendered HTML",
		"LDOC_EXTENSION":        "Source file extension (default .ldoc)",
		"LDOC_TEMPLATE":         "Path to a page template file",
		"LDOC_JOBS":             "Number of parallel workers (0 = auto)",
		"LDOC_DETECT_LANGUAGES": "Detect languages in untagged code fences: true or false",
		"LDOC_VARS":             "Comma-separated NAME=VALUE pairs seeding the variable table",
	}
}
