// Package importcmd handles marketplace export import commands
package importcmd

import (
	"fmt"

	"github.com/phoneman1224/ebay-reseller-manager/cmd/root"
	"github.com/phoneman1224/ebay-reseller-manager/internal/importer"
	"github.com/phoneman1224/ebay-reseller-manager/internal/normalizer"

	"github.com/spf13/cobra"
)

var (
	dryRun       bool
	mappingsFile string
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import marketplace export CSV files into the inventory",
	Long: `Import one or more marketplace export CSV files into the inventory.
Each file is classified as a listing export or an order export from its
header row, then reconciled row by row against the stored inventory.`,
	Args: cobra.MinimumNArgs(1),
	Run:  importFunc,
}

func init() {
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what the import would do without writing to the database")
	Cmd.Flags().StringVar(&mappingsFile, "mappings", "", "YAML file with header mapping overrides")
}

func importFunc(cmd *cobra.Command, args []string) {
	path := mappingsFile
	if path == "" {
		path = root.Cfg.Import.MappingsFile
	}
	tables, err := normalizer.LoadTables(path)
	if err != nil {
		root.Log.Fatalf("Failed to load header mappings: %v", err)
	}

	store := root.OpenStore()
	defer store.Close()

	imp := importer.New(store, tables)
	if d := root.Cfg.CSV.Delimiter; d != "" {
		imp.SetDelimiter([]rune(d)[0])
	}

	failed := 0
	for _, file := range args {
		report, err := imp.ImportFile(file, dryRun)
		if err != nil {
			root.Log.Errorf("Import of %s failed: %v", file, err)
			failed++
			if report == nil {
				continue
			}
		}

		if report.DryRun {
			fmt.Printf("%s (dry run): %s\n", file, report.Summary())
		} else {
			fmt.Printf("%s: %s\n", file, report.Summary())
		}
		for _, rowErr := range report.Errors {
			fmt.Printf("  row %d: %s\n", rowErr.Row, rowErr.Message)
		}
	}

	if failed > 0 {
		root.Log.Fatalf("%d of %d file(s) failed to import", failed, len(args))
	}
}
