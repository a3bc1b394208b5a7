// Package config defines core configuration types for refdeck.
// These types are pure data structures with no dependency on the loader.
package config

// Severity represents the severity level of a dialect diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// ColorMode controls when styled output is produced.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is valid.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration for the dialect check.
type RuleConfig struct {
	Enabled  *bool   `yaml:"enabled,omitempty"`
	Severity *string `yaml:"severity,omitempty"`
}

// HighlightConfig customizes the code highlighter.
type HighlightConfig struct {
	// Language selects the built-in word sets ("swift" when empty).
	Language string `yaml:"language,omitempty"`

	// Keywords and Types extend the built-in word sets.
	Keywords []string `yaml:"keywords,omitempty"`
	Types    []string `yaml:"types,omitempty"`

	// Patterns replaces the regular expression of a token family, keyed by
	// category name ("keyword", "type", "string", "number", "comment").
	Patterns map[string]string `yaml:"patterns,omitempty"`
}

// Config is the root configuration structure for refdeck.
type Config struct {
	// Theme names the chroma style used for colors.
	Theme string `yaml:"theme"`

	// Color is "auto", "always" or "never".
	Color ColorMode `yaml:"color"`

	// Width wraps text blocks; 0 uses the terminal width when known.
	Width int `yaml:"width"`

	// LineSpacing is forwarded to every rendered block.
	LineSpacing float64 `yaml:"line_spacing"`

	// LineNumbers numbers code block lines.
	LineNumbers bool `yaml:"line_numbers"`

	// Format is the render output format ("ansi", "plain" or "json").
	Format string `yaml:"format"`

	// Jobs specifies the number of parallel workers; 0 uses NumCPU.
	Jobs int `yaml:"jobs"`

	// Catalog lists extra record files merged over the built-in deck.
	Catalog []string `yaml:"catalog,omitempty"`

	// Highlight customizes code highlighting.
	Highlight HighlightConfig `yaml:"highlight,omitempty"`

	// Rules contains per-rule dialect check configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// CLI-level options (not persisted to config files).

	// DisableRules contains rule IDs to switch off for this run.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Theme:  "monokai",
		Color:  ColorAuto,
		Format: "ansi",
		Jobs:   0, // 0 means use NumCPU
		Rules:  make(map[string]RuleConfig),
	}
}

// RuleEnabled reports whether the rule with the given ID should run.
// Rules are enabled unless configured off or listed in DisableRules.
func (c *Config) RuleEnabled(id string) bool {
	for _, disabled := range c.DisableRules {
		if disabled == id {
			return false
		}
	}
	if rc, ok := c.Rules[id]; ok && rc.Enabled != nil {
		return *rc.Enabled
	}
	return true
}

// RuleSeverity returns the configured severity for a rule, or fallback.
func (c *Config) RuleSeverity(id string, fallback Severity) Severity {
	if rc, ok := c.Rules[id]; ok && rc.Severity != nil {
		return Severity(*rc.Severity)
	}
	return fallback
}
