package reconciler

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

// fakeStore is an in-memory Store for exercising reconciliation decisions
// without a database.
type fakeStore struct {
	items   []models.Item
	nextID  int64
	inserts int
	updates int
	findErr error
}

func (f *fakeStore) FindBySKU(sku string) ([]models.Item, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matches []models.Item
	for _, item := range f.items {
		if item.SKU == sku {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func (f *fakeStore) FindByTitle(title, excludeStatus string) ([]models.Item, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matches []models.Item
	for _, item := range f.items {
		if strings.EqualFold(strings.TrimSpace(item.Title), strings.TrimSpace(title)) &&
			!strings.EqualFold(item.Status, excludeStatus) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func (f *fakeStore) Insert(item models.Item) (int64, error) {
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, item)
	f.inserts++
	return item.ID, nil
}

func (f *fakeStore) Update(id int64, fields models.ItemFields) error {
	for i := range f.items {
		if f.items[i].ID == id {
			fields.ApplyTo(&f.items[i])
			f.updates++
			return nil
		}
	}
	return errors.New("no such item")
}

func listing(sku, title string) models.NormalizedListing {
	return models.NormalizedListing{SKU: sku, Title: title, Quantity: 1}
}

func order(sku, title, orderNumber string) models.NormalizedOrder {
	return models.NormalizedOrder{
		SKU:         sku,
		Title:       title,
		OrderNumber: orderNumber,
		Quantity:    1,
		SoldPrice:   decimal.NullDecimal{Decimal: decimal.NewFromInt(20), Valid: true},
	}
}

func TestApply_InsertNewSKU(t *testing.T) {
	store := &fakeStore{}
	r := New(store, false)

	outcome, reason := r.Apply(listing("A1", "Brass lamp"))

	assert.Equal(t, models.OutcomeInserted, outcome)
	assert.Empty(t, reason)
	require.Len(t, store.items, 1)
	assert.Equal(t, models.StatusListed, store.items[0].Status)
}

func TestApply_UpdateExistingSKU(t *testing.T) {
	store := &fakeStore{}
	store.Insert(models.Item{SKU: "A1", Title: "Old title", Status: models.StatusListed})
	r := New(store, false)

	rec := listing("A1", "New title")
	rec.ListedPrice = decimal.NullDecimal{Decimal: decimal.NewFromInt(30), Valid: true}
	outcome, _ := r.Apply(rec)

	assert.Equal(t, models.OutcomeUpdated, outcome)
	require.Len(t, store.items, 1)
	assert.Equal(t, "New title", store.items[0].Title)
	require.True(t, store.items[0].ListedPrice.Valid)
	assert.True(t, decimal.NewFromInt(30).Equal(store.items[0].ListedPrice.Decimal))
}

func TestApply_RepeatedSKUInBatch(t *testing.T) {
	store := &fakeStore{}
	r := New(store, false)

	first, _ := r.Apply(listing("A1", "Lamp"))
	second, _ := r.Apply(listing("A1", "Lamp, relisted"))

	assert.Equal(t, models.OutcomeInserted, first)
	assert.Equal(t, models.OutcomeUpdated, second)
	require.Len(t, store.items, 1)
	assert.Equal(t, "Lamp, relisted", store.items[0].Title)
}

func TestApply_DuplicateSKUInStore(t *testing.T) {
	store := &fakeStore{}
	store.Insert(models.Item{SKU: "A1", Title: "One", Status: models.StatusListed})
	store.Insert(models.Item{SKU: "A1", Title: "Two", Status: models.StatusListed})
	r := New(store, false)

	outcome, reason := r.Apply(listing("A1", "Three"))

	assert.Equal(t, models.OutcomeErrored, outcome)
	assert.Contains(t, reason, "duplicate sku")
	assert.Equal(t, 0, store.updates)
	assert.Len(t, store.items, 2)
}

func TestApply_OrderMarksSold(t *testing.T) {
	store := &fakeStore{}
	store.Insert(models.Item{SKU: "A1", Title: "Lamp", Status: models.StatusListed})
	r := New(store, false)

	outcome, _ := r.Apply(order("A1", "Lamp", "ORD-1"))

	assert.Equal(t, models.OutcomeUpdated, outcome)
	assert.Equal(t, models.StatusSold, store.items[0].Status)
	require.True(t, store.items[0].SoldPrice.Valid)
}

func TestApply_OrderTitleFallback(t *testing.T) {
	store := &fakeStore{}
	store.Insert(models.Item{Title: "Brass Lamp", Status: models.StatusListed})
	r := New(store, false)

	outcome, _ := r.Apply(order("", "brass lamp", "ORD-1"))

	assert.Equal(t, models.OutcomeUpdated, outcome)
	assert.Equal(t, models.StatusSold, store.items[0].Status)
}

func TestApply_OrderTitleFallback_NoMatch(t *testing.T) {
	store := &fakeStore{}
	r := New(store, false)

	outcome, _ := r.Apply(order("", "Unknown widget", "ORD-1"))

	assert.Equal(t, models.OutcomeInserted, outcome)
	require.Len(t, store.items, 1)
	assert.Equal(t, models.StatusSold, store.items[0].Status)
}

func TestApply_OrderTitleFallback_Ambiguous(t *testing.T) {
	store := &fakeStore{}
	store.Insert(models.Item{Title: "Lamp", Status: models.StatusListed})
	store.Insert(models.Item{Title: "Lamp", Status: models.StatusListed})
	r := New(store, false)

	outcome, _ := r.Apply(order("", "Lamp", "ORD-1"))

	// Two candidates is ambiguous, so the sale lands as a standalone record.
	assert.Equal(t, models.OutcomeInserted, outcome)
	assert.Len(t, store.items, 3)
	assert.Equal(t, 0, store.updates)
}

func TestApply_OrderTitleFallback_SoldExcluded(t *testing.T) {
	store := &fakeStore{}
	store.Insert(models.Item{Title: "Lamp", Status: models.StatusSold})
	r := New(store, false)

	outcome, _ := r.Apply(order("", "Lamp", "ORD-1"))

	assert.Equal(t, models.OutcomeInserted, outcome)
	assert.Len(t, store.items, 2)
}

func TestApply_InBatchDuplicateOrder(t *testing.T) {
	store := &fakeStore{}
	r := New(store, false)

	first, _ := r.Apply(order("", "Lamp", "ORD-1"))
	second, _ := r.Apply(order("", "Lamp", "ORD-1"))

	assert.Equal(t, models.OutcomeInserted, first)
	assert.Equal(t, models.OutcomeSkippedDuplicate, second)
	assert.Len(t, store.items, 1)
}

func TestApply_MissingTitle(t *testing.T) {
	store := &fakeStore{}
	r := New(store, false)

	outcome, reason := r.Apply(models.NormalizedListing{SKU: "A1", Title: "  "})

	assert.Equal(t, models.OutcomeSkippedInvalid, outcome)
	assert.Contains(t, reason, "title")
	assert.Empty(t, store.items)
}

func TestApply_StoreReadFailure(t *testing.T) {
	store := &fakeStore{findErr: errors.New("disk on fire")}
	r := New(store, false)

	outcome, reason := r.Apply(listing("A1", "Lamp"))

	assert.Equal(t, models.OutcomeErrored, outcome)
	assert.Contains(t, reason, "disk on fire")
}

func TestApply_DryRunLeavesStoreUntouched(t *testing.T) {
	store := &fakeStore{}
	store.Insert(models.Item{SKU: "A1", Title: "Lamp", Status: models.StatusListed})
	before := store.items[0]
	r := New(store, true)

	ins, _ := r.Apply(listing("B2", "New thing"))
	upd, _ := r.Apply(listing("A1", "Renamed lamp"))

	assert.Equal(t, models.OutcomeInserted, ins)
	assert.Equal(t, models.OutcomeUpdated, upd)
	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, 0, store.updates)
	assert.Equal(t, before, store.items[0])
}

func TestApply_DryRunSeesPendingInserts(t *testing.T) {
	store := &fakeStore{}
	r := New(store, true)

	first, _ := r.Apply(listing("A1", "Lamp"))
	second, _ := r.Apply(listing("A1", "Lamp, relisted"))

	assert.Equal(t, models.OutcomeInserted, first)
	assert.Equal(t, models.OutcomeUpdated, second)
	assert.Empty(t, store.items)
}

func TestApply_DryRunPendingSoldExcludedFromTitleMatch(t *testing.T) {
	store := &fakeStore{}
	store.Insert(models.Item{Title: "Lamp", Status: models.StatusListed})
	r := New(store, true)

	first, _ := r.Apply(order("", "Lamp", "ORD-1"))
	second, _ := r.Apply(order("", "Lamp", "ORD-2"))

	// The first sale would mark the only candidate sold, so the second one
	// would insert a standalone record.
	assert.Equal(t, models.OutcomeUpdated, first)
	assert.Equal(t, models.OutcomeInserted, second)
	assert.Equal(t, models.StatusListed, store.items[0].Status)
}
