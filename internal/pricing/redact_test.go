package pricing

import (
	"testing"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculateNewResult(t *testing.T) *NewResult {
	t.Helper()
	snap := Snapshot{Rates: validRates(), Category: newGoldCategory()}
	result, err := CalculateNewJewelry(snap, 10)
	require.NoError(t, err)
	return result
}

func calculateOldResultWithResale(t *testing.T) *OldResult {
	t.Helper()
	snap := Snapshot{Rates: validRates(), Category: oldGoldCategoryWithResale()}
	result, err := CalculateOldJewelry(snap, OldInput{
		WeightGrams:    10,
		Source:         enum.ScrapSourceOwn,
		ResaleCategory: "chain",
	})
	require.NoError(t, err)
	return result
}

func TestNewResult_Redact_FullAccessKeepsEverything(t *testing.T) {
	result := calculateNewResult(t)

	result.Redact(Permissions{CanViewMargins: true, CanViewWholesaleRates: true})

	require.NotNil(t, result.Margin)
	assert.NotNil(t, result.Margin.Wholesale)
	assert.InDelta(t, 95.0, result.Percentages.Buying, 1e-9)
}

func TestNewResult_Redact_NoMarginAccessStripsMarginChain(t *testing.T) {
	result := calculateNewResult(t)

	result.Redact(Permissions{})

	assert.Nil(t, result.Margin)
	assert.Zero(t, result.Percentages.Buying)
	// Customer-facing figures stay intact
	assert.InDelta(t, 62300.0, result.FinalSellingAmount, 1e-9)
	assert.InDelta(t, 6230.0, result.Breakdown.SellingRatePerGram, 1e-9)
}

func TestNewResult_Redact_MarginWithoutWholesaleAccess(t *testing.T) {
	result := calculateNewResult(t)

	result.Redact(Permissions{CanViewMargins: true})

	require.NotNil(t, result.Margin)
	assert.Nil(t, result.Margin.Wholesale)
	assert.InDelta(t, 3100.0, result.Margin.OurMargin, 1e-9)
	assert.Zero(t, result.Percentages.Buying)
}

func TestOldResult_Redact_NoMarginAccess(t *testing.T) {
	result := calculateOldResultWithResale(t)

	result.Redact(Permissions{})

	assert.Nil(t, result.Margin)
	require.NotNil(t, result.Resale)
	assert.Nil(t, result.Resale.Direct.Cost)
	require.NotNil(t, result.Resale.PolishRepair)
	assert.Nil(t, result.Resale.PolishRepair.Cost)

	// The buy-back amount and resale totals stay visible
	assert.InDelta(t, 42000.0, result.TotalScrapValue, 1e-9)
	assert.InDelta(t, 55800.0, result.Resale.Direct.TotalAmount, 1e-9)
}

func TestOldResult_Redact_MarginWithoutWholesaleAccess(t *testing.T) {
	result := calculateOldResultWithResale(t)

	result.Redact(Permissions{CanViewMargins: true})

	require.NotNil(t, result.Margin)
	require.NotNil(t, result.Resale.Direct.Cost)
	assert.Nil(t, result.Resale.Direct.Cost.Wholesale)
	assert.InDelta(t, 6000.0, result.Resale.Direct.Cost.Margin, 1e-9)

	require.NotNil(t, result.Resale.PolishRepair.Cost)
	assert.Nil(t, result.Resale.PolishRepair.Cost.Wholesale)
}

func TestOldResult_Redact_FullAccessKeepsEverything(t *testing.T) {
	result := calculateOldResultWithResale(t)

	result.Redact(Permissions{CanViewMargins: true, CanViewWholesaleRates: true})

	require.NotNil(t, result.Margin)
	require.NotNil(t, result.Resale.Direct.Cost)
	assert.NotNil(t, result.Resale.Direct.Cost.Wholesale)
	assert.NotNil(t, result.Resale.PolishRepair.Cost.Wholesale)
}

func TestOldResult_Redact_NoResaleBranch(t *testing.T) {
	snap := Snapshot{Rates: validRates(), Category: oldGoldCategory()}
	result, err := CalculateOldJewelry(snap, OldInput{WeightGrams: 10, Source: enum.ScrapSourceOwn})
	require.NoError(t, err)

	result.Redact(Permissions{})
	assert.Nil(t, result.Margin)
	assert.Nil(t, result.Resale)
}
