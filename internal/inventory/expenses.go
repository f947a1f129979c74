package inventory

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

// AddExpense stores a new expense record and returns its id.
func (s *Store) AddExpense(e models.Expense) (int64, error) {
	deductible := 0
	if e.TaxDeductible {
		deductible = 1
	}
	res, err := s.q.Exec(
		"INSERT INTO expenses (date, amount, category, note, tax_deductible) VALUES (?, ?, ?, ?, ?)",
		e.Date.Format("2006-01-02"), e.Amount.String(),
		nullString(e.Category), nullString(e.Note), deductible)
	if err != nil {
		return 0, fmt.Errorf("error inserting expense: %w", err)
	}
	return res.LastInsertId()
}

// ListExpenses returns all expenses, newest first.
func (s *Store) ListExpenses() ([]models.Expense, error) {
	rows, err := s.q.Query(
		"SELECT id, date, amount, category, note, tax_deductible FROM expenses ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.WithError(err).Warn("Failed to close rows")
		}
	}()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var date, amount string
		var category, note sql.NullString
		var deductible int
		if err := rows.Scan(&e.ID, &date, &amount, &category, &note, &deductible); err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		if t, err := time.Parse("2006-01-02", date); err == nil {
			e.Date = t
		}
		e.Amount = scanDecimal(sql.NullString{String: amount, Valid: true}).Decimal
		e.Category = category.String
		e.Note = note.String
		e.TaxDeductible = deductible != 0
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
