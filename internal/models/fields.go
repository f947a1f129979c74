package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemFields is a partial update for a stored item. Nil pointers mean "leave
// the stored value untouched"; only fields present in an incoming record are
// set.
type ItemFields struct {
	ItemNumber  *string
	Title       *string
	SKU         *string
	Condition   *string
	ConditionID *int
	ListedPrice *decimal.Decimal
	ListedDate  *time.Time
	Status      *string
	SoldPrice   *decimal.Decimal
	SoldDate    *time.Time
	Quantity    *int
	OrderNumber *string
	UPC         *string
	CategoryID  *string
}

// IsEmpty reports whether no field is set.
func (f ItemFields) IsEmpty() bool {
	return f == ItemFields{}
}

// ApplyTo overwrites the set fields on an item. Used by the dry-run overlay
// and by store implementations that update in memory.
func (f ItemFields) ApplyTo(item *Item) {
	if f.ItemNumber != nil {
		item.ItemNumber = *f.ItemNumber
	}
	if f.Title != nil {
		item.Title = *f.Title
	}
	if f.SKU != nil {
		item.SKU = *f.SKU
	}
	if f.Condition != nil {
		item.Condition = *f.Condition
	}
	if f.ConditionID != nil {
		item.ConditionID = *f.ConditionID
	}
	if f.ListedPrice != nil {
		item.ListedPrice = decimal.NullDecimal{Decimal: *f.ListedPrice, Valid: true}
	}
	if f.ListedDate != nil {
		item.ListedDate = f.ListedDate
	}
	if f.Status != nil {
		item.Status = *f.Status
	}
	if f.SoldPrice != nil {
		item.SoldPrice = decimal.NullDecimal{Decimal: *f.SoldPrice, Valid: true}
	}
	if f.SoldDate != nil {
		item.SoldDate = f.SoldDate
	}
	if f.Quantity != nil {
		item.Quantity = *f.Quantity
	}
	if f.OrderNumber != nil {
		item.OrderNumber = *f.OrderNumber
	}
	if f.UPC != nil {
		item.UPC = *f.UPC
	}
	if f.CategoryID != nil {
		item.CategoryID = *f.CategoryID
	}
}
