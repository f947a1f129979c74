// Package root contains the root command for the application
package root

import (
	"github.com/phoneman1224/ebay-reseller-manager/internal/classifier"
	"github.com/phoneman1224/ebay-reseller-manager/internal/config"
	"github.com/phoneman1224/ebay-reseller-manager/internal/draft"
	"github.com/phoneman1224/ebay-reseller-manager/internal/importer"
	"github.com/phoneman1224/ebay-reseller-manager/internal/inventory"
	"github.com/phoneman1224/ebay-reseller-manager/internal/normalizer"
	"github.com/phoneman1224/ebay-reseller-manager/internal/reconciler"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	DBPath string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "reseller-manager",
		Short: "A CLI tool to track reseller inventory from marketplace export files.",
		Long: `reseller-manager keeps a local inventory database for resellers.
It imports marketplace listing and order export CSVs, reconciles them against
the stored inventory, and generates bulk draft-listing files.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to reseller-manager!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			classifier.SetLogger(Log)
			normalizer.SetLogger(Log)
			reconciler.SetLogger(Log)
			importer.SetLogger(Log)
			inventory.SetLogger(Log)
			draft.SetLogger(Log)

			if SharedFlags.DBPath != "" {
				Cfg.DB.Path = SharedFlags.DBPath
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.DBPath, "db", "", "Path to the inventory database file")
}

// OpenStore opens the inventory database configured for this invocation.
// Callers own the returned store and must Close it.
func OpenStore() *inventory.Store {
	store, err := inventory.Open(Cfg.DB.Path)
	if err != nil {
		Log.Fatalf("Failed to open inventory database %s: %v", Cfg.DB.Path, err)
	}
	return store
}
