// Package pricecmd suggests listing prices from cost and target profit
package pricecmd

import (
	"fmt"

	"github.com/phoneman1224/ebay-reseller-manager/cmd/root"
	"github.com/phoneman1224/ebay-reseller-manager/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	cost     string
	profit   string
	margin   float64
	shipping string
)

// Cmd represents the price command
var Cmd = &cobra.Command{
	Use:   "price",
	Short: "Suggest a listing price that hits a target profit after fees",
	Long: `Suggest a listing price from the item's cost basis, the target profit
and the configured marketplace fee rates. Two options are printed: one where
the price absorbs the shipping cost (free shipping) and one where the buyer
pays shipping.`,
	Run: priceFunc,
}

func init() {
	Cmd.Flags().StringVar(&cost, "cost", "", "Item cost basis in dollars")
	Cmd.Flags().StringVar(&profit, "profit", "", "Target profit in dollars")
	Cmd.Flags().Float64Var(&margin, "margin", 0, "Target profit as a percentage of cost (alternative to --profit)")
	Cmd.Flags().StringVar(&shipping, "shipping", "0", "Shipping cost in dollars")
	_ = Cmd.MarkFlagRequired("cost")
}

func priceFunc(cmd *cobra.Command, args []string) {
	costAmt, err := decimal.NewFromString(cost)
	if err != nil {
		root.Log.Fatalf("Invalid cost %q: %v", cost, err)
	}
	shippingAmt, err := decimal.NewFromString(shipping)
	if err != nil {
		root.Log.Fatalf("Invalid shipping cost %q: %v", shipping, err)
	}

	var target decimal.Decimal
	switch {
	case profit != "":
		target, err = decimal.NewFromString(profit)
		if err != nil {
			root.Log.Fatalf("Invalid profit %q: %v", profit, err)
		}
	case margin > 0:
		target = pricing.ProfitFromMarginPercent(costAmt, decimal.NewFromFloat(margin))
	default:
		root.Log.Fatal("One of --profit or --margin is required")
	}

	fees := pricing.Fees{
		MarketPercent:  decimal.NewFromFloat(root.Cfg.Pricing.MarketPercent),
		MarketFixed:    decimal.NewFromFloat(root.Cfg.Pricing.MarketFixed),
		PaymentPercent: decimal.NewFromFloat(root.Cfg.Pricing.PaymentPercent),
		PaymentFixed:   decimal.NewFromFloat(root.Cfg.Pricing.PaymentFixed),
	}

	free, err := pricing.SuggestPrice(costAmt, target, shippingAmt, fees)
	if err != nil {
		root.Log.Fatalf("Cannot compute price: %v", err)
	}
	buyerPays, err := pricing.SuggestPrice(costAmt, target, decimal.Zero, fees)
	if err != nil {
		root.Log.Fatalf("Cannot compute price: %v", err)
	}

	fmt.Printf("Option A, free shipping:       list at $%s (net profit $%s)\n",
		free.ListPrice.StringFixed(2), free.NetProfit.StringFixed(2))
	fmt.Printf("Option B, buyer pays shipping: list at $%s (net profit $%s)\n",
		buyerPays.ListPrice.StringFixed(2), buyerPays.NetProfit.StringFixed(2))
}
