package catalog

import (
	"fmt"
	"strings"
)

// Kind separates design patterns from data structures.
type Kind string

// Record kinds.
const (
	KindPattern       Kind = "pattern"
	KindDataStructure Kind = "data-structure"
)

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	return k == KindPattern || k == KindDataStructure
}

// ParseKind resolves a kind name. The empty string and "all" mean no filter
// and return "".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all":
		return "", nil
	case "pattern", "patterns":
		return KindPattern, nil
	case "data-structure", "data-structures", "ds":
		return KindDataStructure, nil
	default:
		return "", fmt.Errorf("unknown kind %q; valid kinds: pattern, data-structure", name)
	}
}

// categoryOrder lists the categories of each kind in display order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var categoryOrder = map[Kind][]string{
	KindPattern:       {"creational", "structural", "behavioral"},
	KindDataStructure: {"linear", "tree", "graph", "hash", "other"},
}

// Categories returns the known categories of a kind in display order.
func Categories(kind Kind) []string {
	return append([]string(nil), categoryOrder[kind]...)
}

// Record is one entry of the reference deck. Text fields use the
// markdown-like dialect understood by the render package.
type Record struct {
	ID              string `yaml:"id"                         json:"id"`
	Title           string `yaml:"title"                      json:"title"`
	Kind            Kind   `yaml:"kind"                       json:"kind"`
	Category        string `yaml:"category"                   json:"category"`
	Description     string `yaml:"description"                json:"description"`
	TimeComplexity  string `yaml:"time_complexity,omitempty"  json:"timeComplexity,omitempty"`
	SpaceComplexity string `yaml:"space_complexity,omitempty" json:"spaceComplexity,omitempty"`
	Code            string `yaml:"code,omitempty"             json:"code,omitempty"`
	Language        string `yaml:"language,omitempty"         json:"language,omitempty"`
	Usage           string `yaml:"usage,omitempty"            json:"usage,omitempty"`
}

// Section selects part of a record for display.
type Section string

// Record sections.
const (
	SectionAll         Section = "all"
	SectionDescription Section = "description"
	SectionComplexity  Section = "complexity"
	SectionUsage       Section = "usage"
	SectionCode        Section = "code"
)

// ParseSection resolves a section name; "" means SectionAll.
func ParseSection(name string) (Section, error) {
	switch s := Section(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return SectionAll, nil
	case SectionAll, SectionDescription, SectionComplexity, SectionUsage, SectionCode:
		return s, nil
	default:
		return "", fmt.Errorf("unknown section %q; valid sections: all, description, complexity, usage, code", name)
	}
}

// Markdown builds the dialect text for a section of the record, ready for
// render.SegmentAndClassify. Sections the record does not carry produce "".
func (r Record) Markdown(section Section) string {
	var parts []string

	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	if section == SectionAll {
		add("# " + r.Title)
	}
	if section == SectionAll || section == SectionDescription {
		add(r.Description)
	}
	if section == SectionAll || section == SectionComplexity {
		add(r.complexityTable())
	}
	if section == SectionAll || section == SectionCode {
		add(r.codeFence())
	}
	if section == SectionAll || section == SectionUsage {
		add(r.Usage)
	}

	return strings.Join(parts, "\n\n")
}

func (r Record) complexityTable() string {
	if r.TimeComplexity == "" && r.SpaceComplexity == "" {
		return ""
	}
	rows := []string{"| Measure | Complexity |", "|-|-|"}
	if r.TimeComplexity != "" {
		rows = append(rows, "| Time | "+escapeCell(r.TimeComplexity)+" |")
	}
	if r.SpaceComplexity != "" {
		rows = append(rows, "| Space | "+escapeCell(r.SpaceComplexity)+" |")
	}
	return strings.Join(rows, "\n")
}

func (r Record) codeFence() string {
	code := strings.TrimRight(r.Code, "\n")
	if strings.TrimSpace(code) == "" {
		return ""
	}
	return "```" + r.Language + "\n" + code + "\n```"
}

// escapeCell keeps complexity text from splitting a table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "/")
}
