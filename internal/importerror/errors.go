// Package importerror defines the error taxonomy of the import path. None of
// these abort a batch once classification has succeeded; they are captured
// into the ImportReport row by row.
package importerror

import "fmt"

// ClassificationError means a file was not recognized as either report kind
// (or could not be decoded at all). It is surfaced to the caller before any
// store access happens.
type ClassificationError struct {
	FilePath string
	Reason   string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify %s: %s", e.FilePath, e.Reason)
}

// RowInvalidError means a required field is missing from one row. The row is
// skipped and the batch continues.
type RowInvalidError struct {
	Row    int
	Field  string
	Reason string
}

func (e *RowInvalidError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("row %d: invalid %s: %s", e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("row %d: missing required field %s", e.Row, e.Field)
}

// StoreWriteError wraps a persistence failure on a single row.
type StoreWriteError struct {
	Op  string
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// DuplicateKeyError means the store already holds more than one item for a
// SKU that must be unique. It is never auto-resolved.
type DuplicateKeyError struct {
	SKU   string
	Count int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate sku in store: %q held by %d items", e.SKU, e.Count)
}
