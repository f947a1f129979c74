// Package dashboardcmd prints inventory and profit metrics
package dashboardcmd

import (
	"fmt"

	"github.com/phoneman1224/ebay-reseller-manager/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show inventory and profit metrics",
	Run:   dashboardFunc,
}

func dashboardFunc(cmd *cobra.Command, args []string) {
	store := root.OpenStore()
	defer store.Close()

	metrics, err := store.DashboardMetrics()
	if err != nil {
		root.Log.Fatalf("Failed to compute dashboard metrics: %v", err)
	}
	fmt.Println(metrics.String())
}
