package pricing

import (
	"math"
	"testing"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldCategory() *CategoryConfig {
	return &CategoryConfig{
		Code:         "916HM",
		Metal:        enum.MetalGold,
		Type:         enum.CategoryTypeNew,
		ItemCategory: "chain",
		New: &NewConfig{
			PurityPercentage:               91.6,
			BuyingFromWholesalerPercentage: 95,
			WholesalerLabourPerGram:        30,
			SellingPercentage:              100,
		},
	}
}

func TestCalculateNewJewelry_GoldBreakdown(t *testing.T) {
	snap := Snapshot{Rates: validRates(), Category: newGoldCategory()}

	result, err := CalculateNewJewelry(snap, 10)
	require.NoError(t, err)

	// Gold sell 62000 per 10g -> 6200 per gram
	assert.InDelta(t, 6200.0, result.Breakdown.RatePerGram, 1e-9)
	assert.InDelta(t, 5679.2, result.Breakdown.ActualRatePerGram, 1e-9)
	assert.InDelta(t, 6230.0, result.Breakdown.SellingRatePerGram, 1e-9)
	assert.InDelta(t, 550.8, result.Breakdown.MakingChargesPerGram, 1e-9)

	assert.InDelta(t, 62300.0, result.FinalSellingAmount, 1e-9)
	assert.False(t, result.Rounding.Applied)

	require.NotNil(t, result.Margin)
	require.NotNil(t, result.Margin.Wholesale)
	assert.InDelta(t, 56792.0, result.Margin.ActualValueByPurity, 1e-9)
	assert.InDelta(t, 2108.0, result.Margin.Wholesale.WastageMargin, 1e-9)
	assert.InDelta(t, 300.0, result.Margin.Wholesale.LabourCharges, 1e-9)
	assert.InDelta(t, 2408.0, result.Margin.Wholesale.WholesalerMargin, 1e-9)
	assert.InDelta(t, 59200.0, result.Margin.Wholesale.PurchaseFromWholesaler, 1e-9)
	assert.InDelta(t, 3100.0, result.Margin.OurMargin, 1e-9)
	assert.InDelta(t, 4.9759, result.Margin.OurMarginPercentage, 0.001)

	assert.Equal(t, "916HM", result.Category.Code)
	assert.Equal(t, enum.MetalGold, result.Category.Metal)
	assert.InDelta(t, 91.6, result.Percentages.Purity, 1e-9)
	assert.InDelta(t, 95.0, result.Percentages.Buying, 1e-9)
	assert.InDelta(t, 100.0, result.Percentages.Selling, 1e-9)
}

// The margin chain must always reconcile: what the shop paid the wholesaler
// plus its own margin equals the amount the customer pays.
func TestCalculateNewJewelry_MarginReconciles(t *testing.T) {
	weights := []float64{0.5, 1.234, 10, 11.57, 250}

	for _, w := range weights {
		snap := Snapshot{Rates: validRates(), Category: newGoldCategory()}
		result, err := CalculateNewJewelry(snap, w)
		require.NoError(t, err)

		total := result.Margin.Wholesale.PurchaseFromWholesaler + result.Margin.OurMargin
		assert.InDelta(t, result.FinalSellingAmount, total, 1e-6, "weight %v", w)
	}
}

func TestCalculateNewJewelry_RoundsCustomerAmountUp(t *testing.T) {
	snap := Snapshot{Rates: validRates(), Category: newGoldCategory()}

	result, err := CalculateNewJewelry(snap, 1.234)
	require.NoError(t, err)

	raw := 6230.0 * 1.234
	assert.InDelta(t, math.Ceil(raw), result.FinalSellingAmount, 1e-9)
	assert.True(t, result.Rounding.Applied)
	assert.Equal(t, "up", result.Rounding.Direction)
	assert.InDelta(t, raw, result.Rounding.BeforeRounding, 1e-9)
}

func TestCalculateNewJewelry_SilverUsesPerKilogramRate(t *testing.T) {
	cat := newGoldCategory()
	cat.Code = "925S"
	cat.Metal = enum.MetalSilver
	snap := Snapshot{Rates: validRates(), Category: cat}

	result, err := CalculateNewJewelry(snap, 100)
	require.NoError(t, err)

	// Silver sell 75000 per kg -> 75 per gram
	assert.InDelta(t, 75.0, result.Breakdown.RatePerGram, 1e-9)
	assert.InDelta(t, 105.0, result.Breakdown.SellingRatePerGram, 1e-9)
	assert.InDelta(t, 10500.0, result.FinalSellingAmount, 1e-9)
}

func TestCalculateNewJewelry_Errors(t *testing.T) {
	rates := validRates()

	t.Run("no category", func(t *testing.T) {
		_, err := CalculateNewJewelry(Snapshot{Rates: rates}, 10)
		assert.ErrorIs(t, err, ErrNoCategory)
	})

	t.Run("old category passed to new calculator", func(t *testing.T) {
		cat := oldGoldCategory()
		_, err := CalculateNewJewelry(Snapshot{Rates: rates, Category: cat}, 10)
		assert.ErrorIs(t, err, ErrCategoryTypeMismatch)
	})

	t.Run("missing branch config", func(t *testing.T) {
		cat := newGoldCategory()
		cat.New = nil
		_, err := CalculateNewJewelry(Snapshot{Rates: rates, Category: cat}, 10)
		assert.ErrorIs(t, err, ErrMissingConfig)
	})

	t.Run("invalid weight", func(t *testing.T) {
		snap := Snapshot{Rates: rates, Category: newGoldCategory()}
		for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := CalculateNewJewelry(snap, w)
			assert.ErrorIs(t, err, ErrInvalidWeight)
		}
	})

	t.Run("invalid rates", func(t *testing.T) {
		snap := Snapshot{Category: newGoldCategory()}
		_, err := CalculateNewJewelry(snap, 10)
		assert.ErrorIs(t, err, ErrInvalidRates)
	})
}
