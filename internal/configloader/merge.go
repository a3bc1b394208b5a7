package configloader

import (
	"maps"

	"github.com/yaklabco/refdeck/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.LineSpacing != 0 {
		result.LineSpacing = override.LineSpacing
	}

	// A file cannot switch line numbers back off once a lower layer enabled them.
	if override.LineNumbers {
		result.LineNumbers = true
	}

	if override.Catalog != nil {
		result.Catalog = override.Catalog
	}
	if override.DisableRules != nil {
		result.DisableRules = override.DisableRules
	}

	result.Highlight = mergeHighlight(base.Highlight, override.Highlight)
	result.Rules = mergeRules(base.Rules, override.Rules)

	return &result
}

func mergeHighlight(base, override config.HighlightConfig) config.HighlightConfig {
	result := base

	if override.Language != "" {
		result.Language = override.Language
	}
	if override.Keywords != nil {
		result.Keywords = override.Keywords
	}
	if override.Types != nil {
		result.Types = override.Types
	}
	if override.Patterns != nil {
		patterns := make(map[string]string, len(base.Patterns)+len(override.Patterns))
		maps.Copy(patterns, base.Patterns)
		maps.Copy(patterns, override.Patterns)
		result.Patterns = patterns
	}

	return result
}

// mergeRules performs deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
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
