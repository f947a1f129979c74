package inventory

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

const itemColumns = `id, item_number, title, sku, condition, condition_id,
	listed_price, listed_date, status, sold_price, sold_date, quantity,
	order_number, upc, category_id, image_url, description, purchase_price, cost`

// FindBySKU returns every item carrying the exact SKU. The comparison is
// case-sensitive; SKU is the canonical identity key and more than one match
// is a data error the reconciler reports, not something resolved here.
func (s *Store) FindBySKU(sku string) ([]models.Item, error) {
	return s.queryItems("SELECT "+itemColumns+" FROM inventory WHERE sku = ? ORDER BY id", sku)
}

// FindByTitle returns items whose trimmed title matches case-insensitively,
// excluding items in excludeStatus. Exact equality only; no fuzzy matching,
// a broader match could attribute a sale to the wrong item.
func (s *Store) FindByTitle(title, excludeStatus string) ([]models.Item, error) {
	return s.queryItems(
		"SELECT "+itemColumns+" FROM inventory WHERE LOWER(TRIM(title)) = LOWER(TRIM(?)) AND LOWER(status) <> LOWER(?) ORDER BY id",
		title, excludeStatus)
}

// GetItem fetches a single item by id.
func (s *Store) GetItem(id int64) (models.Item, error) {
	items, err := s.queryItems("SELECT "+itemColumns+" FROM inventory WHERE id = ?", id)
	if err != nil {
		return models.Item{}, err
	}
	if len(items) == 0 {
		return models.Item{}, fmt.Errorf("no inventory item with id %d", id)
	}
	return items[0], nil
}

// ListOptions filter ListItems.
type ListOptions struct {
	Status string // exact status, case-insensitive
	Search string // substring match on title or SKU
}

// ListItems returns inventory rows, newest first.
func (s *Store) ListItems(opts ListOptions) ([]models.Item, error) {
	var clauses []string
	var args []any
	if opts.Status != "" {
		clauses = append(clauses, "LOWER(status) = LOWER(?)")
		args = append(args, opts.Status)
	}
	if opts.Search != "" {
		clauses = append(clauses, "(LOWER(title) LIKE ? OR LOWER(sku) LIKE ?)")
		q := "%" + strings.ToLower(opts.Search) + "%"
		args = append(args, q, q)
	}

	query := "SELECT " + itemColumns + " FROM inventory"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id DESC"
	return s.queryItems(query, args...)
}

// Insert stores a new item and returns its id.
func (s *Store) Insert(item models.Item) (int64, error) {
	res, err := s.q.Exec(`INSERT INTO inventory
		(item_number, title, sku, condition, condition_id, listed_price,
		 listed_date, status, sold_price, sold_date, quantity, order_number,
		 upc, category_id, image_url, description, purchase_price, cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullString(item.ItemNumber), item.Title, nullString(item.SKU),
		nullString(item.Condition), nullInt(item.ConditionID),
		nullDecimal(item.ListedPrice), nullDate(item.ListedDate), item.Status,
		nullDecimal(item.SoldPrice), nullDate(item.SoldDate), item.Quantity,
		nullString(item.OrderNumber), nullString(item.UPC),
		nullString(item.CategoryID), nullString(item.ImageURL),
		nullString(item.Description), nullDecimal(item.PurchasePrice),
		nullDecimal(item.Cost))
	if err != nil {
		return 0, fmt.Errorf("error inserting inventory item: %w", err)
	}
	return res.LastInsertId()
}

// Update applies a partial update to one item. Unset fields are untouched.
func (s *Store) Update(id int64, fields models.ItemFields) error {
	set, args := updateClauses(fields)
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := s.q.Exec("UPDATE inventory SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("error updating inventory item %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no inventory item with id %d", id)
	}
	return nil
}

// DeleteItem removes one item.
func (s *Store) DeleteItem(id int64) error {
	if _, err := s.q.Exec("DELETE FROM inventory WHERE id = ?", id); err != nil {
		return fmt.Errorf("error deleting inventory item %d: %w", id, err)
	}
	return nil
}

func updateClauses(fields models.ItemFields) ([]string, []any) {
	var set []string
	var args []any
	add := func(column string, value any) {
		set = append(set, column+" = ?")
		args = append(args, value)
	}

	if fields.ItemNumber != nil {
		add("item_number", *fields.ItemNumber)
	}
	if fields.Title != nil {
		add("title", *fields.Title)
	}
	if fields.SKU != nil {
		add("sku", *fields.SKU)
	}
	if fields.Condition != nil {
		add("condition", *fields.Condition)
	}
	if fields.ConditionID != nil {
		add("condition_id", *fields.ConditionID)
	}
	if fields.ListedPrice != nil {
		add("listed_price", fields.ListedPrice.String())
	}
	if fields.ListedDate != nil {
		add("listed_date", fields.ListedDate.Format("2006-01-02"))
	}
	if fields.Status != nil {
		add("status", *fields.Status)
	}
	if fields.SoldPrice != nil {
		add("sold_price", fields.SoldPrice.String())
	}
	if fields.SoldDate != nil {
		add("sold_date", fields.SoldDate.Format("2006-01-02"))
	}
	if fields.Quantity != nil {
		add("quantity", *fields.Quantity)
	}
	if fields.OrderNumber != nil {
		add("order_number", *fields.OrderNumber)
	}
	if fields.UPC != nil {
		add("upc", *fields.UPC)
	}
	if fields.CategoryID != nil {
		add("category_id", *fields.CategoryID)
	}
	return set, args
}

func (s *Store) queryItems(query string, args ...any) ([]models.Item, error) {
	rows, err := s.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying inventory: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.WithError(err).Warn("Failed to close rows")
		}
	}()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(rows *sql.Rows) (models.Item, error) {
	var item models.Item
	var (
		itemNumber, sku, condition, status               sql.NullString
		listedPrice, soldPrice, purchasePrice, cost      sql.NullString
		listedDate, soldDate                             sql.NullString
		orderNumber, upc, categoryID, imageURL, descText sql.NullString
		conditionID                                      sql.NullInt64
	)

	if err := rows.Scan(&item.ID, &itemNumber, &item.Title, &sku, &condition,
		&conditionID, &listedPrice, &listedDate, &status, &soldPrice,
		&soldDate, &item.Quantity, &orderNumber, &upc, &categoryID,
		&imageURL, &descText, &purchasePrice, &cost); err != nil {
		return models.Item{}, fmt.Errorf("error scanning inventory row: %w", err)
	}

	item.ItemNumber = itemNumber.String
	item.SKU = sku.String
	item.Condition = condition.String
	item.ConditionID = int(conditionID.Int64)
	item.Status = status.String
	item.OrderNumber = orderNumber.String
	item.UPC = upc.String
	item.CategoryID = categoryID.String
	item.ImageURL = imageURL.String
	item.Description = descText.String
	item.ListedPrice = scanDecimal(listedPrice)
	item.SoldPrice = scanDecimal(soldPrice)
	item.PurchasePrice = scanDecimal(purchasePrice)
	item.Cost = scanDecimal(cost)
	item.ListedDate = scanDate(listedDate)
	item.SoldDate = scanDate(soldDate)
	return item, nil
}

func scanDecimal(v sql.NullString) decimal.NullDecimal {
	if !v.Valid || v.String == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v.String)
	if err != nil {
		log.WithField("value", v.String).Warn("Unparseable stored amount, treating as absent")
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func scanDate(v sql.NullString) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v.String)
	if err != nil {
		return nil
	}
	return &t
}

func nullString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func nullInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullDecimal(v decimal.NullDecimal) any {
	if !v.Valid {
		return nil
	}
	return v.Decimal.String()
}

func nullDate(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.Format("2006-01-02")
}
