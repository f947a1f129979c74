package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReportKind identifies which marketplace export a file represents.
type ReportKind string

const (
	// ListingExport is an active-listings report.
	ListingExport ReportKind = "ListingExport"
	// OrderExport is a completed-orders (sales) report.
	OrderExport ReportKind = "OrderExport"
	// Unrecognized means the header matched neither signature set.
	Unrecognized ReportKind = "Unrecognized"
)

// Condition is a normalized item condition. Unmapped labels keep their raw
// text and carry no condition ID.
type Condition struct {
	Label  string `json:"label"`
	ID     int    `json:"id,omitempty"`
	Mapped bool   `json:"mapped"`
}

// NormalizedRecord is the tagged union produced by the row normalizer: one of
// NormalizedListing or NormalizedOrder. The shape is decided once per row so
// downstream code never re-sniffs it.
type NormalizedRecord interface {
	Kind() ReportKind
	// MatchSKU returns the trimmed reconciliation key, empty when absent.
	MatchSKU() string
	// RecordTitle returns the row title as parsed.
	RecordTitle() string
}

// NormalizedListing is the canonical shape of one active-listing row.
type NormalizedListing struct {
	ItemNumber  string
	SKU         string
	Title       string
	Condition   Condition
	ListedPrice decimal.NullDecimal
	ListedDate  *time.Time
	Quantity    int
	CategoryID  string
	UPC         string
}

// Kind implements NormalizedRecord.
func (l NormalizedListing) Kind() ReportKind { return ListingExport }

// MatchSKU implements NormalizedRecord.
func (l NormalizedListing) MatchSKU() string { return strings.TrimSpace(l.SKU) }

// RecordTitle implements NormalizedRecord.
func (l NormalizedListing) RecordTitle() string { return l.Title }

// NormalizedOrder is the canonical shape of one sold-order row.
type NormalizedOrder struct {
	Title       string
	SKU         string
	SoldPrice   decimal.NullDecimal
	SoldDate    *time.Time
	Quantity    int
	OrderNumber string
	ItemNumber  string
}

// Kind implements NormalizedRecord.
func (o NormalizedOrder) Kind() ReportKind { return OrderExport }

// MatchSKU implements NormalizedRecord.
func (o NormalizedOrder) MatchSKU() string { return strings.TrimSpace(o.SKU) }

// RecordTitle implements NormalizedRecord.
func (o NormalizedOrder) RecordTitle() string { return o.Title }
