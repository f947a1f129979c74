package fieldparse

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected decimal.Decimal
		ok       bool
	}{
		{"Simple decimal", "19.99", decimal.NewFromFloat(19.99), true},
		{"Dollar sign and thousands comma", "$1,234.50", decimal.NewFromFloat(1234.50), true},
		{"Euro symbol", "€123.45", decimal.NewFromFloat(123.45), true},
		{"Apostrophe separator", "1'234.56", decimal.NewFromFloat(1234.56), true},
		{"Surrounding spaces", "  42.00  ", decimal.NewFromInt(42), true},
		{"Negative refund", "-$5.00", decimal.NewFromInt(-5), true},
		{"Empty", "", decimal.Zero, false},
		{"Whitespace only", "   ", decimal.Zero, false},
		{"Prose", "free", decimal.Zero, false},
		{"Garbage", "12.3.4", decimal.Zero, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := ParseCurrency(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected, result)
			}
		})
	}
}

func TestParseNullCurrency(t *testing.T) {
	present := ParseNullCurrency("$10.00")
	assert.True(t, present.Valid)
	assert.True(t, decimal.NewFromInt(10).Equal(present.Decimal))

	absent := ParseNullCurrency("free")
	assert.False(t, absent.Valid)
}

func TestParseDate(t *testing.T) {
	mar30 := time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{"ISO date", "2025-03-30", mar30, true},
		{"ISO datetime", "2025-03-30 16:58:08", mar30, true},
		{"US slash date", "3/30/2025", mar30, true},
		{"US slash date padded", "03/05/2025", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), true},
		{"US slash date single digit day", "3/5/2025", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), true},
		{"US slash datetime", "03/30/2025 16:58:08", mar30, true},
		{"Two digit year", "3/30/25", mar30, true},
		{"Two digit year padded", "03/30/25", mar30, true},
		{"Verbose stamp with timezone", "Mar-30-25 16:58:08 PDT", mar30, true},
		{"Verbose stamp single digit day", "Mar-5-25 01:02:03 PST", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), true},
		{"Empty", "", time.Time{}, false},
		{"Prose", "pending", time.Time{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := ParseDate(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected, result)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"Plain integer", "3", 3},
		{"Float from spreadsheet", "2.0", 2},
		{"Thousands comma", "1,000", 1000},
		{"Empty defaults to one", "", 1},
		{"Negative defaults to one", "-2", 1},
		{"Prose defaults to one", "lots", 1},
		{"Zero stays zero", "0", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseQuantity(tc.input))
		})
	}
}

func TestMapCondition(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		id     int
		mapped bool
	}{
		{"New", "New", 1000, true},
		{"New with tags", "new with tags", 1000, true},
		{"New without tags", "New without tags", 1500, true},
		{"Like new", "Like New", 2750, true},
		{"Used", "used", 3000, true},
		{"Very good", "Very Good", 4000, true},
		{"Good", "Good", 5000, true},
		{"Acceptable", "acceptable", 6000, true},
		{"For parts", "For parts or not working", 7000, true},
		{"Unknown label passes through", "Open box", 0, false},
		{"Empty", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cond := MapCondition(tc.input)
			assert.Equal(t, tc.mapped, cond.Mapped)
			assert.Equal(t, tc.id, cond.ID)
			if tc.input != "" {
				assert.NotEmpty(t, cond.Label)
			}
		})
	}
}
