package classifier

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

func TestSetLogger(t *testing.T) {
	testLogger := logrus.New()
	testLogger.SetLevel(logrus.DebugLevel)

	SetLogger(testLogger)

	if log.Level != logrus.DebugLevel {
		t.Error("SetLogger did not correctly update the logger")
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "Item Number", "item number"},
		{"Trims", "  Sold For  ", "sold for"},
		{"Collapses internal whitespace", "Custom   Label  (SKU)", "custom label (sku)"},
		{"Strips byte order mark", "\uFEFFItem number", "item number"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Canonicalize(tc.input))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected models.ReportKind
	}{
		{
			name: "Listing export header",
			header: []string{
				"Item number", "Title", "Custom label (SKU)", "Available quantity",
				"Start price", "Current price", "Start date", "Condition",
				"eBay category 1 number", "P:UPC",
			},
			expected: models.ListingExport,
		},
		{
			name: "Order export header",
			header: []string{
				"Order number", "Item title", "Custom label", "Sold for",
				"Sale date", "Quantity", "Buyer name",
			},
			expected: models.OrderExport,
		},
		{
			name:     "Minimal order columns still win",
			header:   []string{"Item title", "Sold For", "Order Number"},
			expected: models.OrderExport,
		},
		{
			name:     "Unrelated header",
			header:   []string{"Date", "Payee", "Amount", "Memo"},
			expected: models.Unrecognized,
		},
		{
			name:     "Empty header",
			header:   []string{},
			expected: models.Unrecognized,
		},
		{
			name: "BOM and casing do not break classification",
			header: []string{
				"\uFEFFItem Number", "TITLE", "custom label (sku)",
				"current price", "available quantity", "start date",
			},
			expected: models.ListingExport,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.header))
		})
	}
}
