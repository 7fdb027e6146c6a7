package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money rounding is asymmetric on purpose: amounts the shop charges round up,
// amounts the shop pays out round down. Every money figure derived from a
// rate must go through one of these two functions so the asymmetry lives in
// exactly one place.

// RoundingInfo records whether rounding changed a computed amount, keeping
// the raw figure for audit display.
type RoundingInfo struct {
	Applied        bool    `json:"rounding_applied"`
	BeforeRounding float64 `json:"before_rounding"`
	Direction      string  `json:"direction,omitempty"`
}

// RoundSellingAmount rounds a selling amount up to the next whole unit.
func RoundSellingAmount(raw float64) (float64, RoundingInfo) {
	rounded := math.Ceil(raw)
	return rounded, RoundingInfo{
		Applied:        rounded != raw,
		BeforeRounding: raw,
		Direction:      directionFor(rounded, raw, "up"),
	}
}

// RoundScrapAmount rounds a buy-back amount down to the previous whole unit.
func RoundScrapAmount(raw float64) (float64, RoundingInfo) {
	rounded := math.Floor(raw)
	return rounded, RoundingInfo{
		Applied:        rounded != raw,
		BeforeRounding: raw,
		Direction:      directionFor(rounded, raw, "down"),
	}
}

func directionFor(rounded, raw float64, dir string) string {
	if rounded == raw {
		return ""
	}
	return dir
}

// SafePercentage returns part as a percentage of whole, yielding 0 instead of
// NaN or Inf when the whole is zero. Zero rates or zero final amounts must
// never poison a result with non-finite numbers.
func SafePercentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	pct := part / whole * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return pct
}

// displayPrinter groups digits the Indian way (1,23,456).
var displayPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount renders a display-only amount with locale grouping and no
// decimals. Display formatting uses plain half-up rounding; the ceil/floor
// rules above apply only to amounts that feed back into calculations.
func FormatAmount(amount float64) string {
	return displayPrinter.Sprint(number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// FormatPercentage renders a percentage with exactly two decimals.
func FormatPercentage(pct float64) string {
	return displayPrinter.Sprintf("%.2f", pct)
}
