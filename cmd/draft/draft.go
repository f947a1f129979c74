// Package draftcmd handles bulk draft-listing generation commands
package draftcmd

import (
	"fmt"

	"github.com/phoneman1224/ebay-reseller-manager/cmd/root"
	"github.com/phoneman1224/ebay-reseller-manager/internal/draft"
	"github.com/phoneman1224/ebay-reseller-manager/internal/inventory"
	"github.com/phoneman1224/ebay-reseller-manager/internal/models"

	"github.com/spf13/cobra"
)

var (
	output     string
	categoryID string
)

// Cmd represents the draft command
var Cmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate a bulk draft-listing CSV from unsold inventory",
	Long: `Generate a bulk draft-listing CSV file for the marketplace's seller
upload tool, containing every item in the inventory that is not yet sold.`,
	Run: draftFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "drafts.csv", "Output CSV file")
	Cmd.Flags().StringVar(&categoryID, "category", "", "Fallback category ID for items without one")
}

func draftFunc(cmd *cobra.Command, args []string) {
	store := root.OpenStore()
	defer store.Close()

	items, err := store.ListItems(inventory.ListOptions{Status: models.StatusListed})
	if err != nil {
		root.Log.Fatalf("Failed to list inventory: %v", err)
	}
	if len(items) == 0 {
		root.Log.Warn("No unsold items in inventory, nothing to generate")
		return
	}

	opts := draft.Options{
		DefaultCategoryID: categoryID,
		SiteID:            root.Cfg.Draft.SiteID,
	}
	if opts.DefaultCategoryID == "" {
		opts.DefaultCategoryID = root.Cfg.Draft.DefaultCategoryID
	}

	if err := draft.Generate(items, output, opts); err != nil {
		root.Log.Fatalf("Failed to generate draft file: %v", err)
	}
	fmt.Printf("Wrote %d draft listing(s) to %s\n", len(items), output)
}
