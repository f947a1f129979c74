// Package normalizer maps raw CSV rows of a classified report into the
// canonical record shapes. Column lookup matches by case-insensitive,
// whitespace-trimmed header equality, so the same routine survives the
// marketplace renaming or reordering columns between export versions.
package normalizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/phoneman1224/ebay-reseller-manager/internal/classifier"
	"github.com/phoneman1224/ebay-reseller-manager/internal/fieldparse"
	"github.com/phoneman1224/ebay-reseller-manager/internal/importerror"
	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// RawRow is one data row keyed by canonicalized header name. It exists only
// during parsing of one file.
type RawRow struct {
	values map[string]string
}

// NewRawRow pairs a header row with one data row. Extra cells beyond the
// header are dropped; missing trailing cells read as empty.
func NewRawRow(header, cells []string) RawRow {
	values := make(map[string]string, len(header))
	for i, col := range header {
		name := classifier.Canonicalize(col)
		if name == "" {
			continue
		}
		if i < len(cells) {
			values[name] = cells[i]
		}
	}
	return RawRow{values: values}
}

// get returns the first non-empty value among the header synonyms.
func (r RawRow) get(synonyms []string) string {
	for _, name := range synonyms {
		if v, ok := r.values[name]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Normalizer turns raw rows into normalized records using declarative
// header-to-field tables.
type Normalizer struct {
	tables Tables
}

// New returns a Normalizer over the given mapping tables.
func New(tables Tables) *Normalizer {
	return &Normalizer{tables: tables}
}

// Normalize converts one raw row under the file's report kind. A missing or
// empty title rejects the row (trailer and summary lines land here too);
// any other absent column simply yields "no value" for that field.
func (n *Normalizer) Normalize(kind models.ReportKind, row RawRow, rowIndex int) (models.NormalizedRecord, error) {
	switch kind {
	case models.ListingExport:
		return n.normalizeListing(row, rowIndex)
	case models.OrderExport:
		return n.normalizeOrder(row, rowIndex)
	default:
		return nil, fmt.Errorf("cannot normalize rows of kind %s", kind)
	}
}

func (n *Normalizer) normalizeListing(row RawRow, rowIndex int) (models.NormalizedRecord, error) {
	m := n.tables.Listing

	title := strings.TrimSpace(row.get(m[FieldTitle]))
	if title == "" {
		return nil, &importerror.RowInvalidError{Row: rowIndex, Field: FieldTitle}
	}

	listing := models.NormalizedListing{
		ItemNumber:  strings.TrimSpace(row.get(m[FieldItemNumber])),
		SKU:         strings.TrimSpace(row.get(m[FieldSKU])),
		Title:       title,
		Condition:   fieldparse.MapCondition(row.get(m[FieldCondition])),
		ListedPrice: fieldparse.ParseNullCurrency(row.get(m[FieldListedPrice])),
		ListedDate:  parseOptionalDate(row.get(m[FieldListedDate])),
		Quantity:    fieldparse.ParseQuantity(row.get(m[FieldQuantity])),
		CategoryID:  strings.TrimSpace(row.get(m[FieldCategoryID])),
		UPC:         strings.TrimSpace(row.get(m[FieldUPC])),
	}
	return listing, nil
}

func (n *Normalizer) normalizeOrder(row RawRow, rowIndex int) (models.NormalizedRecord, error) {
	m := n.tables.Order

	title := strings.TrimSpace(row.get(m[FieldTitle]))
	if title == "" {
		return nil, &importerror.RowInvalidError{Row: rowIndex, Field: FieldTitle}
	}

	order := models.NormalizedOrder{
		Title:       title,
		SKU:         strings.TrimSpace(row.get(m[FieldSKU])),
		SoldPrice:   fieldparse.ParseNullCurrency(row.get(m[FieldSoldPrice])),
		SoldDate:    parseOptionalDate(row.get(m[FieldSoldDate])),
		Quantity:    fieldparse.ParseQuantity(row.get(m[FieldQuantity])),
		OrderNumber: strings.TrimSpace(row.get(m[FieldOrderNumber])),
		ItemNumber:  strings.TrimSpace(row.get(m[FieldItemNumber])),
	}
	return order, nil
}

func parseOptionalDate(raw string) *time.Time {
	if t, ok := fieldparse.ParseDate(raw); ok {
		return &t
	}
	return nil
}
