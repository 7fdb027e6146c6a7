package pricing

import (
	"math"
	"time"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/pkg/apperror"
)

// Rates is the current buy/sell rate pair for both metals in a shop.
// Gold rates are quoted per 10 grams, silver rates per kilogram, both as
// whole currency units. A calculation receives the rates by value so a
// concurrent rate update can never tear a result in half.
type Rates struct {
	GoldBuy    int64 `json:"gold_buy"`
	GoldSell   int64 `json:"gold_sell"`
	SilverBuy  int64 `json:"silver_buy"`
	SilverSell int64 `json:"silver_sell"`

	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

const (
	goldRateGrams   = 10   // gold quoted per 10 g
	silverRateGrams = 1000 // silver quoted per kg
)

// PerGram converts the quoted rate for a metal into a per-gram rate.
func (r Rates) PerGram(metal enum.Metal, kind enum.RateKind) float64 {
	var quoted int64
	switch {
	case metal == enum.MetalGold && kind == enum.RateKindSelling:
		quoted = r.GoldSell
	case metal == enum.MetalGold && kind == enum.RateKindBuying:
		quoted = r.GoldBuy
	case metal == enum.MetalSilver && kind == enum.RateKindSelling:
		quoted = r.SilverSell
	default:
		quoted = r.SilverBuy
	}
	if metal == enum.MetalGold {
		return float64(quoted) / goldRateGrams
	}
	return float64(quoted) / silverRateGrams
}

// Validate enforces the rate invariants: all four rates positive and the
// sell rate at or above the buy rate for each metal.
func (r Rates) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if r.GoldBuy <= 0 {
		errs = append(errs, apperror.FieldError{Field: "gold_buy", Message: "must be a positive amount"})
	}
	if r.GoldSell <= 0 {
		errs = append(errs, apperror.FieldError{Field: "gold_sell", Message: "must be a positive amount"})
	}
	if r.SilverBuy <= 0 {
		errs = append(errs, apperror.FieldError{Field: "silver_buy", Message: "must be a positive amount"})
	}
	if r.SilverSell <= 0 {
		errs = append(errs, apperror.FieldError{Field: "silver_sell", Message: "must be a positive amount"})
	}
	if r.GoldBuy > 0 && r.GoldSell > 0 && r.GoldSell < r.GoldBuy {
		errs = append(errs, apperror.FieldError{Field: "gold_sell", Message: "sell rate cannot be below the buy rate"})
	}
	if r.SilverBuy > 0 && r.SilverSell > 0 && r.SilverSell < r.SilverBuy {
		errs = append(errs, apperror.FieldError{Field: "silver_sell", Message: "sell rate cannot be below the buy rate"})
	}
	return errs
}

// MilligramsToGrams converts a milligram weight to grams (1000 mg = 1 g).
func MilligramsToGrams(mg float64) float64 {
	return mg / 1000
}

// Snapshot bundles everything a calculation reads, taken atomically before
// the calculators run. The pricers never touch shared mutable state; a rate
// or category update means building a fresh snapshot and recalculating.
type Snapshot struct {
	Rates    Rates
	Category *CategoryConfig
}

func validWeight(grams float64) bool {
	return grams > 0 && !math.IsNaN(grams) && !math.IsInf(grams, 0)
}
