package configloader

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/yaklabco/refdeck/internal/ui/pretty"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/dialect"
	"github.com/yaklabco/refdeck/pkg/highlight"
	"github.com/yaklabco/refdeck/pkg/render"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.link.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings. Empty fields are
// valid; they take the default.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Theme != "" && !pretty.HasTheme(cfg.Theme) {
		result.errorf("theme", cfg.Theme, "unknown theme %q; run 'refdeck themes' to list them", cfg.Theme)
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.errorf("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	if cfg.Format != "" {
		if _, err := render.ParseFormat(cfg.Format); err != nil {
			result.errorf("format", cfg.Format, "%v", err)
		}
	}

	if cfg.Width < 0 {
		result.errorf("width", cfg.Width, "width must be >= 0 (0 means terminal width)")
	}
	if cfg.Jobs < 0 {
		result.errorf("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.LineSpacing < 0 {
		result.errorf("line_spacing", cfg.LineSpacing, "line_spacing must be >= 0")
	}

	validateHighlight(cfg.Highlight, result)
	validateRules(cfg, result)

	return result
}

func validateHighlight(h config.HighlightConfig, result *ValidationResult) {
	// CanonicalLanguage maps unknown names to the default, so a default
	// result for any other name means the name was not recognized.
	if h.Language != "" && highlight.CanonicalLanguage(h.Language) == highlight.DefaultLanguage &&
		!strings.EqualFold(strings.TrimSpace(h.Language), highlight.DefaultLanguage) {
		result.warnf("highlight.language", h.Language, "unknown language %q; using %s", h.Language, highlight.DefaultLanguage)
	}

	for _, name := range sortedKeys(h.Patterns) {
		field := "highlight.patterns." + name
		if _, err := highlight.ParseCategory(name); err != nil {
			result.errorf(field, name, "%v", err)
			continue
		}
		if _, err := regexp.Compile(h.Patterns[name]); err != nil {
			result.warnf(field, h.Patterns[name], "pattern does not compile; the %s family is disabled: %v", name, err)
		}
	}
}

func validateRules(cfg *config.Config, result *ValidationResult) {
	for _, id := range sortedKeys(cfg.Rules) {
		if _, ok := dialect.Lookup(id); !ok {
			result.warnf("rules."+id, id, "unknown rule %q; it will be ignored", id)
		}
		if sev := cfg.Rules[id].Severity; sev != nil && !config.Severity(*sev).IsValid() {
			result.errorf("rules."+id+".severity", *sev, "invalid severity %q; must be one of: error, warning, info", *sev)
		}
	}

	for i, id := range cfg.DisableRules {
		if _, ok := dialect.Lookup(id); !ok {
			result.warnf(fmt.Sprintf("disable[%d]", i), id, "unknown rule %q; it will be ignored", id)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
