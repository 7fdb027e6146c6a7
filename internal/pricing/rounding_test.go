package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundSellingAmount_RoundsUp(t *testing.T) {
	amount, info := RoundSellingAmount(7458.296)

	assert.Equal(t, 7459.0, amount)
	assert.True(t, info.Applied)
	assert.Equal(t, 7458.296, info.BeforeRounding)
	assert.Equal(t, "up", info.Direction)
}

func TestRoundSellingAmount_WholeAmountUnchanged(t *testing.T) {
	amount, info := RoundSellingAmount(62300.0)

	assert.Equal(t, 62300.0, amount)
	assert.False(t, info.Applied)
	assert.Empty(t, info.Direction)
}

func TestRoundScrapAmount_RoundsDown(t *testing.T) {
	amount, info := RoundScrapAmount(43695.9)

	assert.Equal(t, 43695.0, amount)
	assert.True(t, info.Applied)
	assert.Equal(t, 43695.9, info.BeforeRounding)
	assert.Equal(t, "down", info.Direction)
}

func TestRoundScrapAmount_WholeAmountUnchanged(t *testing.T) {
	amount, info := RoundScrapAmount(42000.0)

	assert.Equal(t, 42000.0, amount)
	assert.False(t, info.Applied)
	assert.Empty(t, info.Direction)
}

func TestSafePercentage(t *testing.T) {
	assert.InDelta(t, 25.0, SafePercentage(25, 100), 1e-9)
	assert.InDelta(t, 50.0, SafePercentage(1, 2), 1e-9)

	// A zero whole must yield 0, never NaN or Inf
	assert.Equal(t, 0.0, SafePercentage(100, 0))
	assert.Equal(t, 0.0, SafePercentage(0, 0))
	assert.Equal(t, 0.0, SafePercentage(-50, 0))
}

func TestFormatAmount_IndianGrouping(t *testing.T) {
	assert.Equal(t, "1,23,456", FormatAmount(123456))
	assert.Equal(t, "62,300", FormatAmount(62300))
	assert.Equal(t, "500", FormatAmount(500))

	// Display formatting uses half-up rounding, not ceil/floor
	assert.Equal(t, "100", FormatAmount(99.5))
	assert.Equal(t, "99", FormatAmount(99.4))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "4.98", FormatPercentage(4.9759))
	assert.Equal(t, "0.00", FormatPercentage(0))
	assert.Equal(t, "100.00", FormatPercentage(100))
}
