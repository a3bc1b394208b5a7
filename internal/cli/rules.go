package cli

import (
	"fmt"
	"io"

	"github.com/yaklabco/refdeck/internal/ui/pretty"
	"github.com/yaklabco/refdeck/pkg/dialect"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// writeRules lists the check rules as a table, or as a JSON array.
func writeRules(w io.Writer, styles *pretty.Styles, format string) error {
	rules := dialect.Rules()

	if format == formatJSON {
		infos := make([]ruleInfo, 0, len(rules))
		for _, rule := range rules {
			infos = append(infos, ruleInfo{
				ID:          rule.ID,
				Description: rule.Description,
				Severity:    string(rule.DefaultSeverity),
			})
		}
		return writeJSON(w, infos)
	}

	if _, err := fmt.Fprintln(w, styles.FormatRules(rules)); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	return nil
}
