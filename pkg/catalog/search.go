package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is one search hit.
type Match struct {
	Record Record
	Score  int

	// MatchedIndexes are byte offsets of matched characters in the searched
	// text, which is "<id> <title>".
	MatchedIndexes []int
}

// recordSource exposes records to the fuzzy matcher.
type recordSource []Record

func (s recordSource) String(i int) string {
	return strings.ToLower(searchText(s[i]))
}

func (s recordSource) Len() int {
	return len(s)
}

func searchText(r Record) string {
	return r.ID + " " + r.Title
}

// Search fuzzy-matches query against record IDs and titles, best match
// first. An empty query matches nothing.
func (c *Catalog) Search(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(c.records) == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, recordSource(c.records))

	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = Match{
			Record:         c.records[m.Index],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return out
}
