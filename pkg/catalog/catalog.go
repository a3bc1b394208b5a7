// Package catalog is the reference deck's content source: design-pattern and
// data-structure records loaded from YAML, with lookup, grouping and search.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

//go:embed data/deck.yaml
var defaultDeck []byte

// file is the YAML document layout.
type file struct {
	Records []Record `yaml:"records"`
}

// Catalog is an ordered, read-only set of records.
type Catalog struct {
	records []Record
	index   map[string]int
}

// New builds a catalog. A record whose ID repeats an earlier one replaces it
// in place.
func New(records ...Record) *Catalog {
	c := &Catalog{index: make(map[string]int, len(records))}
	c.add(records)
	return c
}

func (c *Catalog) add(records []Record) {
	for _, r := range records {
		if i, ok := c.index[r.ID]; ok {
			c.records[i] = r
			continue
		}
		c.index[r.ID] = len(c.records)
		c.records = append(c.records, r)
	}
}

// Parse decodes a YAML deck.
func Parse(data []byte) ([]Record, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	return f.Records, nil
}

// Default returns the embedded deck.
func Default() (*Catalog, error) {
	records, err := Parse(defaultDeck)
	if err != nil {
		return nil, fmt.Errorf("embedded deck: %w", err)
	}
	return New(records...), nil
}

// Load returns the embedded deck extended by the YAML files at paths, in
// order. Later files override records with the same ID.
func Load(paths ...string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read deck %s: %w", path, err)
		}
		records, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		c.add(records)
	}

	return c, nil
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns all records in deck order.
func (c *Catalog) Records() []Record {
	return slices.Clone(c.records)
}

// Get returns the record with the given ID. Lookup ignores case.
func (c *Catalog) Get(id string) (Record, error) {
	if i, ok := c.index[id]; ok {
		return c.records[i], nil
	}
	for _, r := range c.records {
		if strings.EqualFold(r.ID, id) {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Filter returns the records of one kind; an empty kind returns all.
func (c *Catalog) Filter(kind Kind) []Record {
	if kind == "" {
		return c.Records()
	}
	var out []Record
	for _, r := range c.records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Group is the records of one category.
type Group struct {
	Kind     Kind
	Category string
	Records  []Record
}

// ByCategory groups records by kind and category. Known categories come
// first in their display order; unknown ones follow in order of first
// appearance. Records keep deck order within a group.
func (c *Catalog) ByCategory() []Group {
	var groups []Group
	position := map[[2]string]int{}

	for _, kind := range []Kind{KindPattern, KindDataStructure} {
		for _, category := range categoryOrder[kind] {
			position[[2]string{string(kind), category}] = len(groups)
			groups = append(groups, Group{Kind: kind, Category: category})
		}
	}

	for _, r := range c.records {
		key := [2]string{string(r.Kind), r.Category}
		i, ok := position[key]
		if !ok {
			i = len(groups)
			position[key] = i
			groups = append(groups, Group{Kind: r.Kind, Category: r.Category})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	return slices.DeleteFunc(groups, func(g Group) bool { return len(g.Records) == 0 })
}

// Validate reports every structural problem in the catalog.
func (c *Catalog) Validate() error {
	var errs []error
	seen := map[string]bool{}

	for i, r := range c.records {
		where := fmt.Sprintf("records[%d]", i)
		if r.ID != "" {
			where = fmt.Sprintf("records[%d] (%s)", i, r.ID)
		}

		switch {
		case strings.TrimSpace(r.ID) == "":
			errs = append(errs, fmt.Errorf("%s: id is required", where))
		case seen[strings.ToLower(r.ID)]:
			errs = append(errs, fmt.Errorf("%s: duplicate id (ignoring case)", where))
		}
		seen[strings.ToLower(r.ID)] = true

		if strings.TrimSpace(r.Title) == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}
		if !r.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("%s: invalid kind %q", where, r.Kind))
		}
		if strings.TrimSpace(r.Category) == "" {
			errs = append(errs, fmt.Errorf("%s: category is required", where))
		}
		if n := fenceLine(r.Code); n > 0 {
			errs = append(errs, fmt.Errorf("%s: code line %d opens or closes a fence", where, n))
		}
	}

	return errors.Join(errs...)
}

// fenceLine returns the 1-based number of the first code line that starts
// with a backtick fence, or 0.
func fenceLine(code string) int {
	for i, line := range strings.Split(code, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			return i + 1
		}
	}
	return 0
}
