package configloader

import "github.com/yaklabco/ldoc/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Vars map: deep merge, with override's values taking precedence
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.Platform != "" {
		result.Platform = override.Platform
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.Extension != "" {
		result.Extension = override.Extension
	}
	if override.TemplatePath != "" {
		result.TemplatePath = override.TemplatePath
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Boolean: false is the zero value, so a config file cannot unset
	// detect_languages once a lower layer enabled it.
	if override.DetectLanguages {
		result.DetectLanguages = override.DetectLanguages
	}

	result.Vars = mergeVars(base.Vars, override.Vars)

	return &result
}

// mergeVars performs a deep merge of variable maps.
// Both maps are iterated, with override's values taking precedence.
func mergeVars(base, override map[string]string) map[string]string {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]string, len(base)+len(override))
	for name, value := range base {
		result[name] = value
	}
	for name, value := range override {
		result[name] = value
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
