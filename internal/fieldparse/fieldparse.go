// Package fieldparse provides total conversions from raw CSV cell strings to
// typed values. Every function returns an explicit "no value" (or a default)
// on bad input instead of an error, because marketplace exports routinely mix
// blanks, prose and numbers in the same column.
package fieldparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

// currencyJunk matches currency symbols, thousands separators and whitespace
// that must be stripped before decimal parsing.
var currencyJunk = regexp.MustCompile(`[$€£¥\s,']`)

// ParseCurrency converts a raw cell into a decimal amount. The boolean is
// false for empty or non-numeric input so "free" and "" never become 0.
// Negative values are preserved; refund rows carry them.
func ParseCurrency(raw string) (decimal.Decimal, bool) {
	cleaned := currencyJunk.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// ParseNullCurrency is ParseCurrency shaped for struct fields.
func ParseNullCurrency(raw string) decimal.NullDecimal {
	amount, ok := ParseCurrency(raw)
	return decimal.NullDecimal{Decimal: amount, Valid: ok}
}

// dateLayouts are tried in order; the first match wins. The slash layouts
// use non-padded tokens, which accept both "3/30/2025" and "03/30/2025".
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/06",
}

// stampPrefix matches the marketplace's verbose stamp ("Mar-30-25 16:58:08
// PDT"); only the leading date field is kept, the clock time and timezone
// abbreviation are discarded.
var stampPrefix = regexp.MustCompile(`^([A-Za-z]{3}-\d{1,2}-\d{2})\b`)

// ParseDate converts a raw cell into a calendar date. The boolean is false
// when no known layout matches. Time-of-day components are dropped.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDate(t), true
		}
	}
	if m := stampPrefix.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse("Jan-2-06", m[1]); err == nil {
			return truncateToDate(t), true
		}
	}
	return time.Time{}, false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseQuantity converts a raw cell into a non-negative quantity. Absent,
// negative or non-numeric input coerces to the default of 1, never to a
// negative and never to "no value".
func ParseQuantity(raw string) int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 1
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 1
	}
	return int(f)
}

// conditionCodes is the fixed label-to-code table. Lookup is exact but
// case-insensitive.
var conditionCodes = map[string]int{
	"new":                      1000,
	"new with tags":            1000,
	"new without tags":         1500,
	"like new":                 2750,
	"used":                     3000,
	"very good":                4000,
	"good":                     5000,
	"acceptable":               6000,
	"for parts or not working": 7000,
}

// MapCondition normalizes a free-text condition label. Unmapped labels pass
// through as raw text rather than erroring.
func MapCondition(raw string) models.Condition {
	label := strings.TrimSpace(raw)
	if code, ok := conditionCodes[strings.ToLower(label)]; ok {
		return models.Condition{Label: label, ID: code, Mapped: true}
	}
	return models.Condition{Label: label}
}
