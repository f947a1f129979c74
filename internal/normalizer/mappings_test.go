package normalizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTables_NoPath(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tables)
}

func TestLoadTables_MissingFile(t *testing.T) {
	tables, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tables)
}

func TestLoadTables_Overrides(t *testing.T) {
	content := `listing:
  sku:
    - "my sku column"
order:
  sold_price:
    - "gross amount"
    - "sold for"
`
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tables, err := LoadTables(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"my sku column"}, tables.Listing[FieldSKU])
	assert.Equal(t, []string{"gross amount", "sold for"}, tables.Order[FieldSoldPrice])

	// Fields absent from the override file keep the built-ins.
	assert.Equal(t, DefaultTables().Listing[FieldTitle], tables.Listing[FieldTitle])
	assert.Equal(t, DefaultTables().Order[FieldOrderNumber], tables.Order[FieldOrderNumber])
}

func TestLoadTables_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listing: [not: a map"), 0644))

	_, err := LoadTables(path)
	assert.Error(t, err)
}
