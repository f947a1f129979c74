// Package importer is the end-to-end entry point for marketplace report
// files: decode, classify, normalize, reconcile, and assemble the
// ImportReport.
package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/phoneman1224/ebay-reseller-manager/internal/charset"
	"github.com/phoneman1224/ebay-reseller-manager/internal/classifier"
	"github.com/phoneman1224/ebay-reseller-manager/internal/importerror"
	"github.com/phoneman1224/ebay-reseller-manager/internal/inventory"
	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
	"github.com/phoneman1224/ebay-reseller-manager/internal/normalizer"
	"github.com/phoneman1224/ebay-reseller-manager/internal/reconciler"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Importer drives one file import at a time against a single store.
type Importer struct {
	store     *inventory.Store
	tables    normalizer.Tables
	delimiter rune
}

// New returns an Importer over the store using the given mapping tables.
func New(store *inventory.Store, tables normalizer.Tables) *Importer {
	return &Importer{store: store, tables: tables, delimiter: ','}
}

// SetDelimiter overrides the CSV field delimiter for subsequent imports.
func (imp *Importer) SetDelimiter(d rune) {
	if d != 0 {
		imp.delimiter = d
	}
}

// ImportFile imports one marketplace report file. With dryRun set the store
// is read but never written and the report carries the outcomes each row
// would have received. In a wet run the whole file is applied inside one
// transaction; per-row failures are captured in the report and do not roll
// the rest of the file back. An Unrecognized file returns before any store
// access.
func (imp *Importer) ImportFile(path string, dryRun bool) (*models.ImportReport, error) {
	log.WithFields(logrus.Fields{"file": path, "dry_run": dryRun}).Info("Importing report file")

	header, rows, err := imp.readReportFile(path)
	if err != nil {
		return &models.ImportReport{Kind: models.Unrecognized, DryRun: dryRun}, err
	}

	kind := classifier.Classify(header)
	report := &models.ImportReport{Kind: kind, DryRun: dryRun}
	if kind == models.Unrecognized {
		cerr := &importerror.ClassificationError{FilePath: path, Reason: "header matches neither report signature"}
		report.Errors = append(report.Errors, models.RowError{Row: 0, Message: cerr.Error()})
		return report, cerr
	}

	norm := normalizer.New(imp.tables)

	if dryRun {
		recon := reconciler.New(imp.store, true)
		imp.processRows(recon, norm, kind, rows, report)
		return report, nil
	}

	err = imp.store.RunInTransaction(func(tx *inventory.Store) error {
		recon := reconciler.New(tx, false)
		imp.processRows(recon, norm, kind, rows, report)
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("import transaction failed: %w", err)
	}

	log.WithField("summary", report.Summary()).Info("Import finished")
	return report, nil
}

// processRows normalizes and reconciles every data row in file order. One
// bad row never aborts the batch.
func (imp *Importer) processRows(recon *reconciler.Reconciler, norm *normalizer.Normalizer,
	kind models.ReportKind, rows [][]string, report *models.ImportReport) {
	header := rows[0]
	for i, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		rowIndex := i + 1
		report.TotalRows++

		rec, err := norm.Normalize(kind, normalizer.NewRawRow(header, cells), rowIndex)
		if err != nil {
			report.Record(rowIndex, models.OutcomeSkippedInvalid, err.Error())
			continue
		}

		outcome, message := recon.Apply(rec)
		report.Record(rowIndex, outcome, message)
	}
}

// readReportFile decodes and parses the CSV, returning the header row and
// all rows (header included, blank leading lines dropped).
func (imp *Importer) readReportFile(path string) ([]string, [][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading report file: %w", err)
	}

	text, err := charset.Decode(data)
	if err != nil {
		return nil, nil, &importerror.ClassificationError{FilePath: path, Reason: err.Error()}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = imp.delimiter
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &importerror.ClassificationError{FilePath: path, Reason: fmt.Sprintf("malformed CSV: %v", err)}
	}

	// Some exports lead with blank lines before the header.
	for len(records) > 0 && blankRow(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, nil, &importerror.ClassificationError{FilePath: path, Reason: "file is empty"}
	}

	return records[0], records, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
