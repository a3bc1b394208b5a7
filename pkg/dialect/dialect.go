// Package dialect reports markdown constructs that the refdeck renderer does
// not understand.
//
// The renderer accepts a narrow dialect: headers, dash or dot bullets, pipe
// tables, fenced code and paragraphs with **bold** runs. Anything else that a
// CommonMark parser would give meaning to is shown as literal text, which is
// usually not what the author intended. Check parses the text with goldmark
// and flags those constructs.
package dialect

import (
	"cmp"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/refdeck/pkg/config"
)

// Diagnostic is a single construct the dialect does not render.
type Diagnostic struct {
	// Name identifies the checked document (a file path or record ID).
	Name string `json:"name"`

	// Rule is the ID of the rule that produced this diagnostic.
	Rule string `json:"rule"`

	Message  string          `json:"message"`
	Severity config.Severity `json:"severity"`

	// Line and Column are 1-based; Column counts bytes.
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Options controls which rules run and how they are reported.
type Options struct {
	// Disable lists rule IDs to skip.
	Disable []string

	// Severity overrides the default severity per rule ID.
	Severity map[string]config.Severity
}

// OptionsFromConfig derives check options from the rules section of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{Severity: make(map[string]config.Severity)}
	if cfg == nil {
		return opts
	}
	for _, rule := range Rules() {
		if !cfg.RuleEnabled(rule.ID) {
			opts.Disable = append(opts.Disable, rule.ID)
		}
		if sev := cfg.RuleSeverity(rule.ID, ""); sev != "" {
			opts.Severity[rule.ID] = sev
		}
	}
	return opts
}

// document is the parsed input shared by all rules.
type document struct {
	src   []byte
	text  string
	lines lineIndex
	root  ast.Node
}

// finding is a rule hit before it is positioned and named.
type finding struct {
	offset  int
	message string
}

// Check parses content and returns the diagnostics of every enabled rule,
// ordered by position. It never fails; unparseable input is reported
// construct by construct like any other.
func Check(name, content string, opts Options) []Diagnostic {
	doc := newDocument(content)

	enabled := enabledRules(opts.Disable)
	var diags []Diagnostic

	report := func(rule Rule, f finding) {
		line, col := doc.lines.position(f.offset)
		severity := rule.DefaultSeverity
		if sev, ok := opts.Severity[rule.ID]; ok {
			severity = sev
		}
		diags = append(diags, Diagnostic{
			Name:     name,
			Rule:     rule.ID,
			Message:  f.message,
			Severity: severity,
			Line:     line,
			Column:   col,
		})
	}

	var nodeRules []Rule
	for _, rule := range enabled {
		if rule.node != nil {
			nodeRules = append(nodeRules, rule)
		}
	}

	if len(nodeRules) > 0 {
		_ = ast.Walk(doc.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			for _, rule := range nodeRules {
				if rule.node(n) {
					report(rule, finding{offset: doc.offsetOf(n), message: rule.message})
				}
			}
			return ast.WalkContinue, nil
		})
	}

	for _, rule := range enabled {
		if rule.scan == nil {
			continue
		}
		for _, f := range rule.scan(doc) {
			report(rule, f)
		}
	}

	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
			cmp.Compare(a.Rule, b.Rule),
		)
	})

	return diags
}

func newDocument(input string) *document {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")
	src := []byte(input)

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src), parser.WithContext(parser.NewContext()))

	return &document{
		src:   src,
		text:  input,
		lines: buildLineIndex(src),
		root:  root,
	}
}

func enabledRules(disable []string) []Rule {
	all := builtinRules()
	if len(disable) == 0 {
		return all
	}
	out := all[:0]
	for _, rule := range all {
		if !slices.Contains(disable, rule.ID) {
			out = append(out, rule)
		}
	}
	return out
}
