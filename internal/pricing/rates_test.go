package pricing

import (
	"testing"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func validRates() Rates {
	return Rates{
		GoldBuy:    60000,
		GoldSell:   62000,
		SilverBuy:  72000,
		SilverSell: 75000,
	}
}

func TestRates_PerGram(t *testing.T) {
	rates := validRates()

	// Gold is quoted per 10 grams
	assert.InDelta(t, 6200.0, rates.PerGram(enum.MetalGold, enum.RateKindSelling), 1e-9)
	assert.InDelta(t, 6000.0, rates.PerGram(enum.MetalGold, enum.RateKindBuying), 1e-9)

	// Silver is quoted per kilogram
	assert.InDelta(t, 75.0, rates.PerGram(enum.MetalSilver, enum.RateKindSelling), 1e-9)
	assert.InDelta(t, 72.0, rates.PerGram(enum.MetalSilver, enum.RateKindBuying), 1e-9)
}

func TestRates_Validate_AcceptsValidRates(t *testing.T) {
	assert.Empty(t, validRates().Validate())

	// Equal buy and sell is allowed
	equal := Rates{GoldBuy: 60000, GoldSell: 60000, SilverBuy: 72000, SilverSell: 72000}
	assert.Empty(t, equal.Validate())
}

func TestRates_Validate_RejectsNonPositiveRates(t *testing.T) {
	rates := Rates{GoldBuy: 0, GoldSell: -1, SilverBuy: 72000, SilverSell: 75000}

	errs := rates.Validate()
	fields := fieldNames(errs)
	assert.Contains(t, fields, "gold_buy")
	assert.Contains(t, fields, "gold_sell")
	assert.NotContains(t, fields, "silver_buy")
	assert.NotContains(t, fields, "silver_sell")
}

func TestRates_Validate_RejectsSellBelowBuy(t *testing.T) {
	rates := validRates()
	rates.GoldSell = rates.GoldBuy - 1000

	fields := fieldNames(rates.Validate())
	assert.Contains(t, fields, "gold_sell")

	rates = validRates()
	rates.SilverSell = rates.SilverBuy - 500

	fields = fieldNames(rates.Validate())
	assert.Contains(t, fields, "silver_sell")
}

func TestMilligramsToGrams(t *testing.T) {
	assert.InDelta(t, 1.0, MilligramsToGrams(1000), 1e-9)
	assert.InDelta(t, 0.5, MilligramsToGrams(500), 1e-9)
	assert.InDelta(t, 10.25, MilligramsToGrams(10250), 1e-9)
}
