package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestPrice(t *testing.T) {
	fees := DefaultFees()

	// cost 10, target profit 5, buyer pays shipping:
	// price = (5 + 10 + 0.60) / (1 - 0.158) = 18.527..., rounded up to 18.53
	quote, err := SuggestPrice(decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.Zero, fees)
	require.NoError(t, err)
	assert.Equal(t, "18.53", quote.ListPrice.StringFixed(2))

	// Rounding up means realized profit is never below target.
	assert.True(t, quote.NetProfit.GreaterThanOrEqual(decimal.NewFromInt(5).Sub(decimal.NewFromFloat(0.01))),
		"net profit %s fell below target", quote.NetProfit)
}

func TestSuggestPrice_FreeShipping(t *testing.T) {
	fees := DefaultFees()
	shipping := decimal.NewFromFloat(4.50)

	free, err := SuggestPrice(decimal.NewFromInt(10), decimal.NewFromInt(5), shipping, fees)
	require.NoError(t, err)
	buyerPays, err := SuggestPrice(decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.Zero, fees)
	require.NoError(t, err)

	// Absorbing shipping raises the price by more than the shipping cost,
	// because the fee percentage applies to the higher price too.
	assert.True(t, free.ListPrice.Sub(buyerPays.ListPrice).GreaterThan(shipping))
}

func TestSuggestPrice_FeeBreakdown(t *testing.T) {
	fees := DefaultFees()

	quote, err := SuggestPrice(decimal.NewFromInt(20), decimal.NewFromInt(10), decimal.Zero, fees)
	require.NoError(t, err)

	expectedMarket := quote.ListPrice.Mul(decimal.NewFromFloat(0.129)).Add(decimal.NewFromFloat(0.30)).Round(2)
	expectedPayment := quote.ListPrice.Mul(decimal.NewFromFloat(0.029)).Add(decimal.NewFromFloat(0.30)).Round(2)
	assert.True(t, expectedMarket.Equal(quote.MarketFee))
	assert.True(t, expectedPayment.Equal(quote.PaymentFee))
	assert.True(t, quote.ListPrice.Sub(quote.MarketFee).Sub(quote.PaymentFee).Sub(decimal.NewFromInt(20)).Round(2).Equal(quote.NetProfit))
}

func TestSuggestPrice_FeesEatEverything(t *testing.T) {
	fees := Fees{
		MarketPercent:  decimal.NewFromFloat(0.60),
		PaymentPercent: decimal.NewFromFloat(0.50),
	}

	_, err := SuggestPrice(decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.Zero, fees)
	assert.Error(t, err)
}

func TestProfitFromMarginPercent(t *testing.T) {
	profit := ProfitFromMarginPercent(decimal.NewFromInt(40), decimal.NewFromInt(50))
	assert.True(t, decimal.NewFromInt(20).Equal(profit))
}
