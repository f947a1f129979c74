package main

import (
	"fmt"
	"os"

	dashboardcmd "github.com/phoneman1224/ebay-reseller-manager/cmd/dashboard"
	draftcmd "github.com/phoneman1224/ebay-reseller-manager/cmd/draft"
	expensecmd "github.com/phoneman1224/ebay-reseller-manager/cmd/expense"
	importcmd "github.com/phoneman1224/ebay-reseller-manager/cmd/import"
	inventorycmd "github.com/phoneman1224/ebay-reseller-manager/cmd/inventory"
	pricecmd "github.com/phoneman1224/ebay-reseller-manager/cmd/price"
	"github.com/phoneman1224/ebay-reseller-manager/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(inventorycmd.Cmd)
	root.Cmd.AddCommand(draftcmd.Cmd)
	root.Cmd.AddCommand(expensecmd.Cmd)
	root.Cmd.AddCommand(dashboardcmd.Cmd)
	root.Cmd.AddCommand(pricecmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
