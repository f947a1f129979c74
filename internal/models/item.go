// Package models defines the canonical data shapes shared by the importer,
// the reconciler and the inventory store.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item statuses as stored in the inventory table.
const (
	StatusListed = "Listed"
	StatusSold   = "Sold"
)

// Item is a stored inventory record. Optional currency amounts use
// decimal.NullDecimal so an unknown price is never conflated with zero;
// optional dates are nil pointers.
type Item struct {
	ID            int64               `json:"id"`
	ItemNumber    string              `json:"item_number,omitempty"`
	Title         string              `json:"title"`
	SKU           string              `json:"sku,omitempty"`
	Condition     string              `json:"condition,omitempty"`
	ConditionID   int                 `json:"condition_id,omitempty"`
	ListedPrice   decimal.NullDecimal `json:"listed_price,omitempty"`
	ListedDate    *time.Time          `json:"listed_date,omitempty"`
	Status        string              `json:"status"`
	SoldPrice     decimal.NullDecimal `json:"sold_price,omitempty"`
	SoldDate      *time.Time          `json:"sold_date,omitempty"`
	Quantity      int                 `json:"quantity"`
	OrderNumber   string              `json:"order_number,omitempty"`
	UPC           string              `json:"upc,omitempty"`
	CategoryID    string              `json:"category_id,omitempty"`
	ImageURL      string              `json:"image_url,omitempty"`
	Description   string              `json:"description,omitempty"`
	PurchasePrice decimal.NullDecimal `json:"purchase_price,omitempty"`
	Cost          decimal.NullDecimal `json:"cost,omitempty"`
}

// IsSold reports whether the item has been marked sold.
func (i Item) IsSold() bool {
	return i.Status == StatusSold
}

// Expense is a bookkeeping expense record.
type Expense struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category,omitempty"`
	Note          string          `json:"note,omitempty"`
	TaxDeductible bool            `json:"tax_deductible"`
}
