package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refdeck/pkg/catalog"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Greater(t, c.Len(), 10)
	assert.NotEmpty(t, c.Filter(catalog.KindPattern))
	assert.NotEmpty(t, c.Filter(catalog.KindDataStructure))

	for _, r := range c.Records() {
		assert.NotEmpty(t, r.Description, r.ID)
		assert.NotEmpty(t, r.Code, r.ID)
		if r.Kind == catalog.KindDataStructure {
			assert.NotEmpty(t, r.TimeComplexity, r.ID)
			assert.NotEmpty(t, r.SpaceComplexity, r.ID)
		}
	}
}

func TestDefault_CategoryBreadth(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)

	counts := map[string]int{}
	for _, g := range c.ByCategory() {
		counts[string(g.Kind)+"/"+g.Category] = len(g.Records)
	}
	for _, kind := range []catalog.Kind{catalog.KindPattern, catalog.KindDataStructure} {
		for _, category := range catalog.Categories(kind) {
			assert.Positive(t, counts[string(kind)+"/"+category], "%s/%s", kind, category)
		}
	}
	assert.GreaterOrEqual(t, counts["pattern/behavioral"], 4)
	assert.GreaterOrEqual(t, counts["data-structure/linear"], 5)

	for _, id := range []string{"chain-of-responsibility", "command", "linked-list", "deque", "composite", "proxy"} {
		_, err := c.Get(id)
		assert.NoError(t, err, id)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)

	r, err := c.Get("singleton")
	require.NoError(t, err)
	assert.Equal(t, "Singleton", r.Title)
	assert.Equal(t, catalog.KindPattern, r.Kind)
	assert.Equal(t, "creational", r.Category)

	r, err = c.Get("Hash-Table")
	require.NoError(t, err)
	assert.Equal(t, "hash-table", r.ID)

	_, err = c.Get("nope")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestByCategory_Order(t *testing.T) {
	t.Parallel()

	c := catalog.New(
		catalog.Record{ID: "q", Kind: catalog.KindDataStructure, Category: "linear"},
		catalog.Record{ID: "o", Kind: catalog.KindPattern, Category: "behavioral"},
		catalog.Record{ID: "x", Kind: catalog.KindPattern, Category: "exotic"},
		catalog.Record{ID: "s", Kind: catalog.KindPattern, Category: "creational"},
		catalog.Record{ID: "f", Kind: catalog.KindPattern, Category: "creational"},
	)

	groups := c.ByCategory()
	require.Len(t, groups, 4)

	assert.Equal(t, "creational", groups[0].Category)
	assert.Equal(t, []string{"s", "f"}, ids(groups[0].Records))
	assert.Equal(t, "behavioral", groups[1].Category)
	assert.Equal(t, "linear", groups[2].Category)
	assert.Equal(t, catalog.KindDataStructure, groups[2].Kind)
	assert.Equal(t, "exotic", groups[3].Category)
}

func TestNew_LaterIDReplaces(t *testing.T) {
	t.Parallel()

	c := catalog.New(
		catalog.Record{ID: "a", Title: "First"},
		catalog.Record{ID: "b", Title: "B"},
		catalog.Record{ID: "a", Title: "Second"},
	)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a", "b"}, ids(c.Records()))
	r, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Second", r.Title)
}

func TestLoad_MergesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`records:
  - id: singleton
    title: Singleton (team notes)
    kind: pattern
    category: creational
    description: Overridden.
  - id: trie
    title: Trie
    kind: data-structure
    category: tree
    description: A prefix tree.
`), 0o600))

	base, err := catalog.Default()
	require.NoError(t, err)

	c, err := catalog.Load(path)
	require.NoError(t, err)

	assert.Equal(t, base.Len()+1, c.Len())

	r, err := c.Get("singleton")
	require.NoError(t, err)
	assert.Equal(t, "Overridden.", r.Description)

	_, err = c.Get("trie")
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("records: [unterminated"), 0o600))
	_, err = catalog.Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	c := catalog.New(
		catalog.Record{ID: "", Title: "No ID", Kind: catalog.KindPattern, Category: "creational"},
		catalog.Record{ID: "dup", Title: "One", Kind: catalog.KindPattern, Category: "creational"},
		catalog.Record{ID: "DUP", Title: "Two", Kind: "widget", Category: ""},
	)

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "id is required")
	assert.Contains(t, msg, "duplicate id")
	assert.Contains(t, msg, `invalid kind "widget"`)
	assert.Contains(t, msg, "category is required")
}

func TestValidate_FenceInCode(t *testing.T) {
	t.Parallel()

	c := catalog.New(catalog.Record{
		ID: "markdown-literal", Title: "Markdown", Kind: catalog.KindPattern, Category: "other",
		Code: "let md = \"\"\"\n  ```swift\n\"\"\"\n",
	})

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code line 2 opens or closes a fence")

	c = catalog.New(catalog.Record{
		ID: "inline", Title: "Inline", Kind: catalog.KindPattern, Category: "other",
		Code: "let s = \"```\"\n",
	})
	require.NoError(t, c.Validate())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]catalog.Kind{
		"":                "",
		"all":             "",
		"patterns":        catalog.KindPattern,
		"Pattern":         catalog.KindPattern,
		"ds":              catalog.KindDataStructure,
		"data-structures": catalog.KindDataStructure,
	} {
		got, err := catalog.ParseKind(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := catalog.ParseKind("widgets")
	require.Error(t, err)
}

func ids(records []catalog.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
