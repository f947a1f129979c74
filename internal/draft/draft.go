// Package draft generates the marketplace draft-listing upload CSV from
// stored inventory items. The output format is dictated by the marketplace's
// bulk-upload template and must be reproduced byte-for-byte in its preamble
// and header.
package draft

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/phoneman1224/ebay-reseller-manager/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const defaultSiteID = "US"

// preamble is the fixed #INFO block the marketplace's template ships with.
const preamble = `#INFO,Version=0.0.2,Template= eBay-draft-listings-template_US,,,,,,,,
#INFO Action and Category ID are required fields. 1) Set Action to Draft 2) Please find the category ID for your listings here: https://pages.ebay.com/sellerinformation/news/categorychanges.html,,,,,,,,,,
"#INFO After you've successfully uploaded your draft from the Seller Hub Reports tab, complete your drafts to active listings here: https://www.ebay.com/sh/lst/drafts",,,,,,,,,,
#INFO,,,,,,,,,,
`

// Row is one draft-listing line. The struct tags carry the template's exact
// column headers.
type Row struct {
	Action      string `csv:"Action(SiteID=US|Country=US|Currency=USD|Version=1193|CC=UTF-8)"`
	SKU         string `csv:"Custom label (SKU)"`
	CategoryID  string `csv:"Category ID"`
	Title       string `csv:"Title"`
	UPC         string `csv:"UPC"`
	Price       string `csv:"Price"`
	Quantity    int    `csv:"Quantity"`
	PhotoURL    string `csv:"Item photo URL"`
	ConditionID string `csv:"Condition ID"`
	Description string `csv:"Description"`
	Format      string `csv:"Format"`
}

// Options configure generation. DefaultCategoryID is an explicit
// configuration value, not ambient state; it fills items with no category of
// their own.
type Options struct {
	DefaultCategoryID string
	SiteID            string
}

// Generate writes the draft-listing CSV for the given items.
func Generate(items []models.Item, path string, opts Options) error {
	log.WithFields(logrus.Fields{"file": path, "count": len(items)}).Info("Generating draft listings CSV")

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, rowFromItem(item, opts))
	}

	body, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fmt.Errorf("error marshaling draft rows: %w", err)
	}

	if opts.SiteID != "" && opts.SiteID != defaultSiteID {
		body = strings.Replace(body, "SiteID="+defaultSiteID, "SiteID="+opts.SiteID, 1)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(preamble+body), 0644); err != nil {
		return fmt.Errorf("error writing draft CSV: %w", err)
	}

	log.WithField("file", path).Info("Draft listings CSV written")
	return nil
}

func rowFromItem(item models.Item, opts Options) Row {
	categoryID := item.CategoryID
	if categoryID == "" {
		categoryID = opts.DefaultCategoryID
	}

	price := ""
	switch {
	case item.ListedPrice.Valid:
		price = item.ListedPrice.Decimal.StringFixed(2)
	case item.PurchasePrice.Valid:
		price = item.PurchasePrice.Decimal.StringFixed(2)
	}

	conditionID := ""
	if item.ConditionID != 0 {
		conditionID = fmt.Sprintf("%d", item.ConditionID)
	}

	description := item.Description
	if description == "" {
		description = "<p>" + item.Title + "</p>"
	}

	quantity := item.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return Row{
		Action:      "Draft",
		SKU:         item.SKU,
		CategoryID:  categoryID,
		Title:       item.Title,
		UPC:         item.UPC,
		Price:       price,
		Quantity:    quantity,
		PhotoURL:    item.ImageURL,
		ConditionID: conditionID,
		Description: description,
		Format:      "FixedPrice",
	}
}
