// Package classifier decides which marketplace report kind a CSV file
// represents by scoring its header row against two fixed signature sets.
package classifier

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// listingSignature holds column names characteristic of an active-listings
// export. Comparison is against canonicalized header text.
var listingSignature = map[string]bool{
	"item number":            true,
	"custom label (sku)":     true,
	"current price":          true,
	"start price":            true,
	"start date":             true,
	"available quantity":     true,
	"ebay category 1 number": true,
	"p:upc":                  true,
	"condition":              true,
}

// orderSignature holds column names characteristic of an orders export.
var orderSignature = map[string]bool{
	"item title":   true,
	"custom label": true,
	"sold for":     true,
	"sale date":    true,
	"order number": true,
	"item number":  true,
	"quantity":     true,
}

// Canonicalize normalizes a header cell for comparison: strips a leading
// byte-order mark, trims whitespace, lowercases and collapses internal runs
// of whitespace. Export headers are not byte-stable across versions.
func Canonicalize(header string) string {
	header = strings.TrimPrefix(header, "\uFEFF")
	return strings.Join(strings.Fields(strings.ToLower(header)), " ")
}

// Classify scores the header row against both signature sets. The kind with
// the strictly higher overlap wins; a tie or zero overlap on both yields
// Unrecognized.
func Classify(header []string) models.ReportKind {
	var listingScore, orderScore int
	for _, col := range header {
		name := Canonicalize(col)
		if listingSignature[name] {
			listingScore++
		}
		if orderSignature[name] {
			orderScore++
		}
	}

	log.WithFields(logrus.Fields{
		"listing_score": listingScore,
		"order_score":   orderScore,
	}).Debug("Classified report header")

	switch {
	case listingScore > orderScore:
		return models.ListingExport
	case orderScore > listingScore:
		return models.OrderExport
	default:
		return models.Unrecognized
	}
}
