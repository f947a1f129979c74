// Package reconciler applies batches of normalized records against the
// inventory store: insert-if-absent, update-if-present, keyed by SKU with a
// fallback exact-title match for SKU-less order rows.
package reconciler

import (
	"strings"

	"github.com/sirupsen/logrus"

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

// Store is the persistence contract the reconciler consumes. This is the only
// boundary the import path crosses into the storage layer.
type Store interface {
	// FindBySKU returns every item carrying the exact (case-sensitive) SKU.
	FindBySKU(sku string) ([]models.Item, error)
	// FindByTitle returns items whose title equals the given one
	// case-insensitively, excluding items in excludeStatus.
	FindByTitle(title, excludeStatus string) ([]models.Item, error)
	Insert(item models.Item) (int64, error)
	Update(id int64, fields models.ItemFields) error
}

// Reconciler evaluates records in original file order. Later rows see the
// effects of earlier rows, so a repeated SKU inside one batch becomes an
// update-of-update rather than a duplicate insert.
type Reconciler struct {
	store  Store
	dryRun bool

	// Dry-run overlay: would-be inserts and would-be sold markings, so
	// matching still observes batch ordering without touching the store.
	pendingInserts []*models.Item
	pendingSold    map[int64]bool

	// Exact duplicates already seen on the no-SKU path in this batch.
	seenKeys map[string]bool

	// Distinct negative IDs handed to pending inserts.
	nextPendingID int64
}

// New returns a Reconciler over the store. With dryRun set, all store reads
// are performed but every write is suppressed; outcomes are what each record
// would have received.
func New(store Store, dryRun bool) *Reconciler {
	return &Reconciler{
		store:       store,
		dryRun:      dryRun,
		seenKeys:    make(map[string]bool),
		pendingSold: make(map[int64]bool),
	}
}

// Apply reconciles one record and returns its outcome. Store failures are
// converted to OutcomeErrored with a reason; they never abort the batch.
func (r *Reconciler) Apply(rec models.NormalizedRecord) (models.ImportOutcome, string) {
	if strings.TrimSpace(rec.RecordTitle()) == "" {
		return models.OutcomeSkippedInvalid, "missing title"
	}

	if sku := rec.MatchSKU(); sku != "" {
		return r.applyBySKU(rec, sku)
	}

	if key := duplicateKey(rec); key != "" {
		if r.seenKeys[key] {
			return models.OutcomeSkippedDuplicate, ""
		}
		r.seenKeys[key] = true
	}

	if order, ok := rec.(models.NormalizedOrder); ok {
		return r.applyByTitle(order)
	}

	// Listing rows without a SKU are still insertable as new listings.
	return r.insert(rec)
}

func (r *Reconciler) applyBySKU(rec models.NormalizedRecord, sku string) (models.ImportOutcome, string) {
	matches, err := r.findBySKU(sku)
	if err != nil {
		return models.OutcomeErrored, err.Error()
	}

	switch len(matches) {
	case 0:
		return r.insert(rec)
	case 1:
		return r.update(matches[0], fieldsFromRecord(rec))
	default:
		dup := &importerror.DuplicateKeyError{SKU: sku, Count: len(matches)}
		log.WithField("sku", sku).Warn("Duplicate SKU in store, row not applied")
		return models.OutcomeErrored, dup.Error()
	}
}

// applyByTitle is the fallback for SKU-less order rows: a case-insensitive
// exact title match against items not already marked sold. Anything other
// than exactly one candidate inserts a standalone sold record; an unmatched
// sale is never blocked.
func (r *Reconciler) applyByTitle(order models.NormalizedOrder) (models.ImportOutcome, string) {
	matches, err := r.findByTitle(order.Title)
	if err != nil {
		return models.OutcomeErrored, err.Error()
	}

	if len(matches) != 1 {
		return r.insert(order)
	}

	fields := fieldsFromRecord(order)
	return r.update(matches[0], fields)
}

func (r *Reconciler) insert(rec models.NormalizedRecord) (models.ImportOutcome, string) {
	item := r.itemFromRecord(rec)

	if r.dryRun {
		r.pendingInserts = append(r.pendingInserts, &item)
		return models.OutcomeInserted, ""
	}

	if _, err := r.store.Insert(item); err != nil {
		werr := &importerror.StoreWriteError{Op: "insert", Err: err}
		return models.OutcomeErrored, werr.Error()
	}
	return models.OutcomeInserted, ""
}

func (r *Reconciler) update(target models.Item, fields models.ItemFields) (models.ImportOutcome, string) {
	if r.dryRun {
		// Pending inserts carry negative IDs; mutate them directly so a
		// later row with the same SKU still sees the batch-local state.
		if target.ID < 0 {
			for _, pending := range r.pendingInserts {
				if pending.ID == target.ID {
					fields.ApplyTo(pending)
				}
			}
		} else if fields.Status != nil && *fields.Status == models.StatusSold {
			r.pendingSold[target.ID] = true
		}
		return models.OutcomeUpdated, ""
	}

	if err := r.store.Update(target.ID, fields); err != nil {
		werr := &importerror.StoreWriteError{Op: "update", Err: err}
		return models.OutcomeErrored, werr.Error()
	}
	return models.OutcomeUpdated, ""
}

// findBySKU reads the store and, in dry-run mode, folds in pending inserts.
func (r *Reconciler) findBySKU(sku string) ([]models.Item, error) {
	matches, err := r.store.FindBySKU(sku)
	if err != nil {
		return nil, err
	}
	for _, pending := range r.pendingInserts {
		if strings.TrimSpace(pending.SKU) == sku {
			matches = append(matches, *pending)
		}
	}
	return matches, nil
}

func (r *Reconciler) findByTitle(title string) ([]models.Item, error) {
	stored, err := r.store.FindByTitle(title, models.StatusSold)
	if err != nil {
		return nil, err
	}

	var matches []models.Item
	for _, item := range stored {
		if r.pendingSold[item.ID] {
			continue
		}
		matches = append(matches, item)
	}
	for _, pending := range r.pendingInserts {
		if pending.Status != models.StatusSold && strings.EqualFold(strings.TrimSpace(pending.Title), strings.TrimSpace(title)) {
			matches = append(matches, *pending)
		}
	}
	return matches, nil
}

// itemFromRecord builds a fresh stored item with the status implied by the
// record kind. Dry-run pending inserts get distinct negative IDs.
func (r *Reconciler) itemFromRecord(rec models.NormalizedRecord) models.Item {
	r.nextPendingID--
	item := models.Item{ID: r.nextPendingID}

	switch v := rec.(type) {
	case models.NormalizedListing:
		item.ItemNumber = v.ItemNumber
		item.Title = v.Title
		item.SKU = v.SKU
		item.Condition = v.Condition.Label
		item.ConditionID = v.Condition.ID
		item.ListedPrice = v.ListedPrice
		item.ListedDate = v.ListedDate
		item.Quantity = v.Quantity
		item.CategoryID = v.CategoryID
		item.UPC = v.UPC
		item.Status = models.StatusListed
	case models.NormalizedOrder:
		item.Title = v.Title
		item.SKU = v.SKU
		item.SoldPrice = v.SoldPrice
		item.SoldDate = v.SoldDate
		item.Quantity = v.Quantity
		item.OrderNumber = v.OrderNumber
		item.ItemNumber = v.ItemNumber
		item.Status = models.StatusSold
	}
	return item
}

// fieldsFromRecord builds the partial update for an existing item: only
// fields the incoming record actually carries overwrite stored values.
func fieldsFromRecord(rec models.NormalizedRecord) models.ItemFields {
	var fields models.ItemFields

	switch v := rec.(type) {
	case models.NormalizedListing:
		fields.Title = ptr(v.Title)
		fields.Quantity = ptr(v.Quantity)
		if v.ItemNumber != "" {
			fields.ItemNumber = ptr(v.ItemNumber)
		}
		if v.Condition.Label != "" {
			fields.Condition = ptr(v.Condition.Label)
			fields.ConditionID = ptr(v.Condition.ID)
		}
		if v.ListedPrice.Valid {
			fields.ListedPrice = ptr(v.ListedPrice.Decimal)
		}
		if v.ListedDate != nil {
			fields.ListedDate = v.ListedDate
		}
		if v.CategoryID != "" {
			fields.CategoryID = ptr(v.CategoryID)
		}
		if v.UPC != "" {
			fields.UPC = ptr(v.UPC)
		}
	case models.NormalizedOrder:
		fields.Status = ptr(models.StatusSold)
		fields.Quantity = ptr(v.Quantity)
		if v.SoldPrice.Valid {
			fields.SoldPrice = ptr(v.SoldPrice.Decimal)
		}
		if v.SoldDate != nil {
			fields.SoldDate = v.SoldDate
		}
		if v.OrderNumber != "" {
			fields.OrderNumber = ptr(v.OrderNumber)
		}
		if v.ItemNumber != "" {
			fields.ItemNumber = ptr(v.ItemNumber)
		}
	}
	return fields
}

// duplicateKey builds the in-batch dedupe key for no-SKU rows, empty when the
// row carries nothing stable enough to dedupe on.
func duplicateKey(rec models.NormalizedRecord) string {
	switch v := rec.(type) {
	case models.NormalizedListing:
		if v.ItemNumber == "" {
			return ""
		}
		return "listing|" + v.ItemNumber
	case models.NormalizedOrder:
		if v.OrderNumber == "" {
			return ""
		}
		return "order|" + v.OrderNumber + "|" + strings.ToLower(strings.TrimSpace(v.Title))
	}
	return ""
}

func ptr[T any](v T) *T {
	return &v
}
