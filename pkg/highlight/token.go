// Package highlight classifies the substrings of a code line into keyword,
// type, string, number and comment tokens using regular expressions.
//
// Highlighting is lossless: the text of the returned tokens, concatenated in
// order, is exactly the input line.
package highlight

import "fmt"

// Category is the classification of a token.
type Category uint8

// Token categories. Plain covers every character no family claimed.
const (
	Plain Category = iota
	Keyword
	Type
	String
	Number
	Comment
)

// categoryNames maps categories to their stable names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var categoryNames = map[Category]string{
	Plain:   "plain",
	Keyword: "keyword",
	Type:    "type",
	String:  "string",
	Number:  "number",
	Comment: "comment",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory resolves a category name.
func ParseCategory(name string) (Category, error) {
	for category, n := range categoryNames {
		if n == name {
			return category, nil
		}
	}
	return Plain, fmt.Errorf("unknown token category %q", name)
}

// Token is a classified span of one code line.
type Token struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// Line is the ordered tokens of one highlighted line.
type Line []Token

// Text reassembles the original line.
func (l Line) Text() string {
	n := 0
	for _, tok := range l {
		n += len(tok.Text)
	}
	buf := make([]byte, 0, n)
	for _, tok := range l {
		buf = append(buf, tok.Text...)
	}
	return string(buf)
}
