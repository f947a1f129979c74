// Package inventory is the SQLite-backed persistence layer: the reconciler's
// store collaborator plus the query surface the presentation commands use.
// Access is single-writer; callers must not run two imports concurrently
// against the same database.
package inventory

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	// Pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// the same store methods work inside and outside a transaction.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
	q  querier
}

const schema = `
CREATE TABLE IF NOT EXISTS inventory (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item_number TEXT,
	title TEXT NOT NULL,
	sku TEXT,
	condition TEXT,
	condition_id INTEGER,
	listed_price TEXT,
	listed_date TEXT,
	status TEXT NOT NULL,
	sold_price TEXT,
	sold_date TEXT,
	quantity INTEGER NOT NULL DEFAULT 1,
	order_number TEXT,
	upc TEXT,
	category_id TEXT,
	image_url TEXT,
	description TEXT,
	purchase_price TEXT,
	cost TEXT
);
CREATE INDEX IF NOT EXISTS idx_inventory_sku ON inventory(sku);
CREATE INDEX IF NOT EXISTS idx_inventory_status ON inventory(status);

CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	amount TEXT NOT NULL,
	category TEXT,
	note TEXT,
	tax_deductible INTEGER NOT NULL DEFAULT 0
);
`

// Open opens (creating if needed) the inventory database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	log.WithField("path", path).Debug("Opened inventory database")
	return &Store{db: db, q: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RunInTransaction executes fn against a transaction-scoped view of the
// store. A whole-file import runs inside one of these so a crash mid-import
// leaves the database fully pre-import or fully post-import. The returned
// error from fn rolls the transaction back; otherwise it commits.
func (s *Store) RunInTransaction(fn func(*Store) error) error {
	if s.db == nil {
		return fmt.Errorf("store is transaction-scoped, cannot nest transactions")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}

	txStore := &Store{q: tx}
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.WithError(rbErr).Warn("Rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
