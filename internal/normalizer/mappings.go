package normalizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldMapping maps a canonical field name to the header synonyms that may
// carry it, in preference order. This is the single source of truth for
// "what column means what"; both report kinds share the same normalization
// routine parameterized by one of these tables.
type FieldMapping map[string][]string

// Tables bundles the per-kind mapping tables.
type Tables struct {
	Listing FieldMapping `yaml:"listing"`
	Order   FieldMapping `yaml:"order"`
}

// Canonical field names used by the mapping tables.
const (
	FieldItemNumber  = "item_number"
	FieldSKU         = "sku"
	FieldTitle       = "title"
	FieldCondition   = "condition"
	FieldListedPrice = "listed_price"
	FieldListedDate  = "listed_date"
	FieldQuantity    = "quantity"
	FieldCategoryID  = "category_id"
	FieldUPC         = "upc"
	FieldSoldPrice   = "sold_price"
	FieldSoldDate    = "sold_date"
	FieldOrderNumber = "order_number"
)

// DefaultTables returns the built-in header synonym tables matching the
// marketplace's known export layouts.
func DefaultTables() Tables {
	return Tables{
		Listing: FieldMapping{
			FieldItemNumber:  {"item number", "item id"},
			FieldSKU:         {"custom label (sku)", "custom label", "sku"},
			FieldTitle:       {"title", "item title"},
			FieldCondition:   {"condition"},
			FieldListedPrice: {"current price", "start price", "price"},
			FieldListedDate:  {"start date", "start time"},
			FieldQuantity:    {"available quantity", "quantity"},
			FieldCategoryID:  {"ebay category 1 number", "category number"},
			FieldUPC:         {"p:upc", "upc"},
		},
		Order: FieldMapping{
			FieldTitle:       {"item title", "title"},
			FieldSKU:         {"custom label", "custom label (sku)", "sku"},
			FieldSoldPrice:   {"sold for", "sale price", "total price", "item price"},
			FieldSoldDate:    {"sale date", "sold date", "order date"},
			FieldQuantity:    {"quantity", "qty"},
			FieldOrderNumber: {"order number", "order id"},
			FieldItemNumber:  {"item number", "item id"},
		},
	}
}

// LoadTables reads mapping overrides from a YAML file and merges them over
// the defaults. Fields present in the file replace the default synonym list
// for that field; absent fields keep the built-ins. A missing file is not an
// error, the defaults are used as-is.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("No mapping override file, using built-in tables")
			return tables, nil
		}
		return tables, fmt.Errorf("error reading mapping file: %w", err)
	}

	var overrides Tables
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return tables, fmt.Errorf("error parsing mapping file: %w", err)
	}

	for field, synonyms := range overrides.Listing {
		tables.Listing[field] = synonyms
	}
	for field, synonyms := range overrides.Order {
		tables.Order[field] = synonyms
	}

	log.WithField("file", path).Debug("Loaded header mapping overrides")
	return tables, nil
}
