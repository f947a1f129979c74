package models

import "fmt"

// ImportOutcome is the result of reconciling one normalized record against
// the store.
type ImportOutcome string

const (
	OutcomeInserted         ImportOutcome = "Inserted"
	OutcomeUpdated          ImportOutcome = "Updated"
	OutcomeSkippedDuplicate ImportOutcome = "SkippedDuplicate"
	OutcomeSkippedInvalid   ImportOutcome = "SkippedInvalid"
	OutcomeErrored          ImportOutcome = "Errored"
)

// RowError records a per-row failure with its 1-based data row index.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportReport aggregates the outcome of importing one file. It is produced
// fresh per import call and never persisted.
type ImportReport struct {
	Kind             ReportKind `json:"reportKind"`
	TotalRows        int        `json:"totalRows"`
	Inserted         int        `json:"inserted"`
	Updated          int        `json:"updated"`
	SkippedDuplicate int        `json:"skippedDuplicate"`
	SkippedInvalid   int        `json:"skippedInvalid"`
	Errored          int        `json:"errored"`
	Errors           []RowError `json:"errors,omitempty"`
	DryRun           bool       `json:"dryRun,omitempty"`
}

// Record tallies one row outcome. A non-empty message is appended to the
// error list with the row index.
func (r *ImportReport) Record(row int, outcome ImportOutcome, message string) {
	switch outcome {
	case OutcomeInserted:
		r.Inserted++
	case OutcomeUpdated:
		r.Updated++
	case OutcomeSkippedDuplicate:
		r.SkippedDuplicate++
	case OutcomeSkippedInvalid:
		r.SkippedInvalid++
	case OutcomeErrored:
		r.Errored++
	}
	if message != "" {
		r.Errors = append(r.Errors, RowError{Row: row, Message: message})
	}
}

// Summary returns a one-line human summary of the report.
func (r *ImportReport) Summary() string {
	return fmt.Sprintf("%s: %d rows, %d inserted, %d updated, %d duplicate, %d invalid, %d errored",
		r.Kind, r.TotalRows, r.Inserted, r.Updated, r.SkippedDuplicate, r.SkippedInvalid, r.Errored)
}
