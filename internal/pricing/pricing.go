// Package pricing computes suggested listing prices from cost basis, fee
// rates and target profit.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fees are the marketplace and payment-processor fee rates. Percentages are
// fractions (0.129 for 12.9%).
type Fees struct {
	MarketPercent  decimal.Decimal
	MarketFixed    decimal.Decimal
	PaymentPercent decimal.Decimal
	PaymentFixed   decimal.Decimal
}

// DefaultFees are the marketplace's standard rates.
func DefaultFees() Fees {
	return Fees{
		MarketPercent:  decimal.NewFromFloat(0.129),
		MarketFixed:    decimal.NewFromFloat(0.30),
		PaymentPercent: decimal.NewFromFloat(0.029),
		PaymentFixed:   decimal.NewFromFloat(0.30),
	}
}

// Quote is one pricing option.
type Quote struct {
	ListPrice  decimal.Decimal
	MarketFee  decimal.Decimal
	PaymentFee decimal.Decimal
	NetProfit  decimal.Decimal
}

// SuggestPrice solves for the list price that yields the target profit after
// fees, absorbing the given shipping cost into the price (pass zero when the
// buyer pays shipping):
//
//	price*(1 - marketPct - paymentPct) = profit + cost + shipping + fixedFees
//
// The price is rounded up to the next cent, so the realized profit is never
// below target.
func SuggestPrice(cost, targetProfit, shipping decimal.Decimal, fees Fees) (Quote, error) {
	combinedPercent := decimal.NewFromInt(1).Sub(fees.MarketPercent).Sub(fees.PaymentPercent)
	if combinedPercent.LessThanOrEqual(decimal.Zero) {
		return Quote{}, fmt.Errorf("combined fee percentage %s leaves nothing of the price", combinedPercent)
	}

	fixed := fees.MarketFixed.Add(fees.PaymentFixed)
	price := targetProfit.Add(cost).Add(shipping).Add(fixed).Div(combinedPercent).RoundUp(2)

	marketFee := price.Mul(fees.MarketPercent).Add(fees.MarketFixed).Round(2)
	paymentFee := price.Mul(fees.PaymentPercent).Add(fees.PaymentFixed).Round(2)

	return Quote{
		ListPrice:  price,
		MarketFee:  marketFee,
		PaymentFee: paymentFee,
		NetProfit:  price.Sub(shipping).Sub(marketFee).Sub(paymentFee).Sub(cost).Round(2),
	}, nil
}

// ProfitFromMarginPercent converts a margin percentage of cost into a dollar
// profit target.
func ProfitFromMarginPercent(cost, marginPercent decimal.Decimal) decimal.Decimal {
	return cost.Mul(marginPercent).Div(decimal.NewFromInt(100))
}
