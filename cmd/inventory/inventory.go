// Package inventorycmd handles inventory listing commands
package inventorycmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/phoneman1224/ebay-reseller-manager/cmd/root"
	"github.com/phoneman1224/ebay-reseller-manager/internal/inventory"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	status string
	search string
)

// Cmd represents the inventory command
var Cmd = &cobra.Command{
	Use:   "inventory",
	Short: "List items in the inventory",
	Long: `List items in the inventory database, optionally filtered by status
or by a title/SKU search term.`,
	Run: inventoryFunc,
}

func init() {
	Cmd.Flags().StringVar(&status, "status", "", "Only show items with this status (Listed or Sold)")
	Cmd.Flags().StringVar(&search, "search", "", "Only show items whose title or SKU contains this text")
}

func inventoryFunc(cmd *cobra.Command, args []string) {
	store := root.OpenStore()
	defer store.Close()

	items, err := store.ListItems(inventory.ListOptions{Status: status, Search: search})
	if err != nil {
		root.Log.Fatalf("Failed to list inventory: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tTITLE\tSTATUS\tLISTED\tSOLD")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.SKU, item.Title, item.Status,
			priceColumn(item.ListedPrice), priceColumn(item.SoldPrice))
	}
	w.Flush()
	fmt.Printf("%d item(s)\n", len(items))
}

func priceColumn(price decimal.NullDecimal) string {
	if !price.Valid {
		return "-"
	}
	return "$" + price.Decimal.StringFixed(2)
}
