package pricing

import (
	"time"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
)

// SellingRateBreakdown splits the per-gram selling rate into the intrinsic
// metal value and the additive making charge.
type SellingRateBreakdown struct {
	RatePerGram          float64 `json:"rate_per_gram"`
	ActualRatePerGram    float64 `json:"actual_rate_per_gram"`
	MakingChargesPerGram float64 `json:"making_charges_per_gram"`
	SellingRatePerGram   float64 `json:"selling_rate_per_gram"`
}

// NewPercentages echoes the configured percentages applied to the rate.
type NewPercentages struct {
	Purity  float64 `json:"purity"`
	Buying  float64 `json:"buying,omitempty"`
	Selling float64 `json:"selling"`
}

// WholesaleBreakdown is the wholesaler side of the margin chain. It is held
// behind a pointer so it can be withheld from roles without wholesale-rate
// access while the rest of the margin stays visible.
type WholesaleBreakdown struct {
	WastageMargin          float64 `json:"wastage_margin"`
	LabourCharges          float64 `json:"labour_charges"`
	WholesalerMargin       float64 `json:"wholesaler_margin"`
	PurchaseFromWholesaler float64 `json:"purchase_from_wholesaler"`
}

// NewMargin is the margin chain of a new-jewelry sale.
type NewMargin struct {
	ActualValueByPurity float64             `json:"actual_value_by_purity"`
	Wholesale           *WholesaleBreakdown `json:"wholesale,omitempty"`
	OurMargin           float64             `json:"our_margin"`
	OurMarginPercentage float64             `json:"our_margin_percentage"`
}

// NewResult is the full outcome of pricing freshly made jewelry.
type NewResult struct {
	Category           CategoryRef          `json:"category"`
	WeightGrams        float64              `json:"weight_grams"`
	Breakdown          SellingRateBreakdown `json:"selling_rate_breakdown"`
	Percentages        NewPercentages       `json:"percentages"`
	FinalSellingAmount float64              `json:"final_selling_amount"`
	Rounding           RoundingInfo         `json:"rounding_info"`
	Margin             *NewMargin           `json:"margin_breakdown,omitempty"`
	CalculatedAt       time.Time            `json:"calculated_at"`
}

// CalculateNewJewelry prices a freshly made piece: the selling rate is the
// configured selling percentage of the metal sell rate plus the per-gram
// labour, the customer amount rounds up, and the margin chain reconstructs
// what the piece cost from the wholesaler so the shop margin is the
// difference. purchaseFromWholesaler + ourMargin always equals the final
// selling amount.
func CalculateNewJewelry(snap Snapshot, weightGrams float64) (*NewResult, error) {
	cat := snap.Category
	if cat == nil {
		return nil, ErrNoCategory
	}
	if cat.Type != enum.CategoryTypeNew {
		return nil, ErrCategoryTypeMismatch
	}
	cfg := cat.New
	if cfg == nil {
		return nil, ErrMissingConfig
	}
	if !validWeight(weightGrams) {
		return nil, ErrInvalidWeight
	}
	if len(snap.Rates.Validate()) > 0 {
		return nil, ErrInvalidRates
	}

	ratePerGram := snap.Rates.PerGram(cat.Metal, enum.RateKindSelling)

	actualRatePerGram := ratePerGram * cfg.PurityPercentage / 100
	sellingRatePerGram := ratePerGram*cfg.SellingPercentage/100 + cfg.WholesalerLabourPerGram
	makingChargesPerGram := sellingRatePerGram - actualRatePerGram

	rawAmount := sellingRatePerGram * weightGrams
	finalAmount, rounding := RoundSellingAmount(rawAmount)

	// Margin chain: what the shop paid the wholesaler for this piece. The
	// wholesaler margin is the purity gap (wastage) plus labour.
	actualValueByPurity := actualRatePerGram * weightGrams
	wastageMargin := ratePerGram * (cfg.BuyingFromWholesalerPercentage - cfg.PurityPercentage) / 100 * weightGrams
	labourCharges := cfg.WholesalerLabourPerGram * weightGrams
	wholesalerMargin := wastageMargin + labourCharges
	purchaseFromWholesaler := actualValueByPurity + wholesalerMargin
	ourMargin := finalAmount - purchaseFromWholesaler

	return &NewResult{
		Category:    cat.ref(),
		WeightGrams: weightGrams,
		Breakdown: SellingRateBreakdown{
			RatePerGram:          ratePerGram,
			ActualRatePerGram:    actualRatePerGram,
			MakingChargesPerGram: makingChargesPerGram,
			SellingRatePerGram:   sellingRatePerGram,
		},
		Percentages: NewPercentages{
			Purity:  cfg.PurityPercentage,
			Buying:  cfg.BuyingFromWholesalerPercentage,
			Selling: cfg.SellingPercentage,
		},
		FinalSellingAmount: finalAmount,
		Rounding:           rounding,
		Margin: &NewMargin{
			ActualValueByPurity: actualValueByPurity,
			Wholesale: &WholesaleBreakdown{
				WastageMargin:          wastageMargin,
				LabourCharges:          labourCharges,
				WholesalerMargin:       wholesalerMargin,
				PurchaseFromWholesaler: purchaseFromWholesaler,
			},
			OurMargin:           ourMargin,
			OurMarginPercentage: SafePercentage(ourMargin, finalAmount),
		},
		CalculatedAt: time.Now().UTC(),
	}, nil
}
