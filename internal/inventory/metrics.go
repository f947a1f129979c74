package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

// Metrics are the dashboard aggregates.
type Metrics struct {
	InventoryValue     decimal.Decimal `json:"inventory_value"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalProfit        decimal.Decimal `json:"total_profit"`
	DeductibleExpenses decimal.Decimal `json:"deductible_expenses"`
	ListedCount        int             `json:"listed_count"`
	SoldCount          int             `json:"sold_count"`
}

// Amounts are stored as decimal text, so the sums are computed in Go rather
// than with SQL SUM over floats.

// DashboardMetrics computes the summary figures shown by the dashboard:
// inventory value (listed price times quantity over active items), revenue
// and profit over sold items, and total deductible expenses.
func (s *Store) DashboardMetrics() (Metrics, error) {
	var m Metrics

	items, err := s.ListItems(ListOptions{})
	if err != nil {
		return m, err
	}
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		switch item.Status {
		case models.StatusListed:
			m.ListedCount++
			if item.ListedPrice.Valid {
				m.InventoryValue = m.InventoryValue.Add(item.ListedPrice.Decimal.Mul(qty))
			}
		case models.StatusSold:
			m.SoldCount++
			if item.SoldPrice.Valid {
				m.TotalRevenue = m.TotalRevenue.Add(item.SoldPrice.Decimal.Mul(qty))
				m.TotalProfit = m.TotalProfit.Add(item.SoldPrice.Decimal.Mul(qty))
			}
			if item.PurchasePrice.Valid {
				m.TotalProfit = m.TotalProfit.Sub(item.PurchasePrice.Decimal.Mul(qty))
			}
		}
	}

	expenses, err := s.ListExpenses()
	if err != nil {
		return m, err
	}
	for _, e := range expenses {
		if e.TaxDeductible {
			m.DeductibleExpenses = m.DeductibleExpenses.Add(e.Amount)
		}
	}
	return m, nil
}

// String renders the metrics for the dashboard command.
func (m Metrics) String() string {
	return fmt.Sprintf(
		"listed: %d (value %s)\nsold: %d (revenue %s, profit %s)\ndeductible expenses: %s",
		m.ListedCount, m.InventoryValue.StringFixed(2),
		m.SoldCount, m.TotalRevenue.StringFixed(2), m.TotalProfit.StringFixed(2),
		m.DeductibleExpenses.StringFixed(2))
}
