package pricing

import (
	"time"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
)

// OldInput is everything the old-jewelry calculator needs beyond the snapshot.
type OldInput struct {
	WeightGrams    float64
	Source         enum.ScrapSource
	ResaleCategory string // optional resale sub-category name
}

// OldPercentages echoes the configured percentages used by the scrap branch.
type OldPercentages struct {
	TruePurity float64 `json:"true_purity"`
	ScrapBuy   float64 `json:"scrap_buy"`
}

// ScrapMargin compares the buy-back amount to the intrinsic metal value.
type ScrapMargin struct {
	ActualValueByPurity float64 `json:"actual_value_by_purity"`
	ScrapMargin         float64 `json:"scrap_margin"`
}

// ResaleCost is the wholesaler-cost baseline and the margin against it.
// Wholesale is withheld from roles without wholesale-rate access.
type ResaleCost struct {
	Wholesale        *WholesaleCost `json:"wholesale,omitempty"`
	Margin           float64        `json:"margin"`
	MarginPercentage float64        `json:"margin_percentage"`
}

// WholesaleCost breaks down what an equivalent piece costs from a wholesaler.
type WholesaleCost struct {
	BaseCost       float64 `json:"base_cost"`
	LabourCharges  float64 `json:"labour_charges"`
	WholesalerCost float64 `json:"wholesaler_cost"`
}

// DirectResaleResult values reselling the piece as-is.
type DirectResaleResult struct {
	Available        bool          `json:"available"`
	Message          string        `json:"message,omitempty"`
	RateKind         enum.RateKind `json:"rate_type"`
	ResalePercentage float64       `json:"resale_percentage"`
	TotalAmount      float64       `json:"total_amount"`
	Rounding         RoundingInfo  `json:"rounding_info"`
	Cost             *ResaleCost   `json:"cost,omitempty"`
}

// PolishRepairResult values reselling after refurbishment: the piece loses
// weight to polishing and incurs extra labour before it can be sold again.
type PolishRepairResult struct {
	Available            bool          `json:"available"`
	Message              string        `json:"message,omitempty"`
	RateKind             enum.RateKind `json:"rate_type"`
	ResalePercentage     float64       `json:"resale_percentage"`
	EffectiveWeightGrams float64       `json:"effective_weight_grams"`
	WeightLossGrams      float64       `json:"weight_loss_grams"`
	TotalAmount          float64       `json:"total_amount"`
	Rounding             RoundingInfo  `json:"rounding_info"`
	LabourCharges        float64       `json:"labour_charges"`
	CalculatedOnWeight   LabourBase    `json:"calculated_on_weight"`
	FinalValue           float64       `json:"final_value"`
	Cost                 *ResaleCost   `json:"cost,omitempty"`
}

// ResaleResult groups the valuations for one selected resale sub-category.
type ResaleResult struct {
	ItemCategory string              `json:"item_category"`
	Direct       DirectResaleResult  `json:"direct"`
	PolishRepair *PolishRepairResult `json:"polish_repair,omitempty"`
}

// OldResult is the full outcome of valuing used jewelry. The scrap branch is
// always present; the resale branch only when the category enables it and a
// sub-category was selected.
type OldResult struct {
	Category        CategoryRef      `json:"category"`
	WeightGrams     float64          `json:"weight_grams"`
	Source          enum.ScrapSource `json:"source"`
	TotalScrapValue float64          `json:"total_scrap_value"`
	Rounding        RoundingInfo     `json:"rounding_info"`
	Percentages     OldPercentages   `json:"percentages"`
	Margin          *ScrapMargin     `json:"margin_breakdown,omitempty"`
	Resale          *ResaleResult    `json:"resale_calculations,omitempty"`
	CalculatedAt    time.Time        `json:"calculated_at"`
}

// CalculateOldJewelry values a used piece. Scrap is always computed against
// the metal buy rate: the headline buy-back amount is the source-dependent
// scrap percentage of the rate, rounded down, and the scrap margin is the
// gap to the piece's intrinsic value at true purity. Resale valuations are
// additive and degrade to unavailable rather than failing the whole result
// when their configuration is incomplete.
func CalculateOldJewelry(snap Snapshot, in OldInput) (*OldResult, error) {
	cat := snap.Category
	if cat == nil {
		return nil, ErrNoCategory
	}
	if cat.Type != enum.CategoryTypeOld {
		return nil, ErrCategoryTypeMismatch
	}
	cfg := cat.Old
	if cfg == nil {
		return nil, ErrMissingConfig
	}
	if !validWeight(in.WeightGrams) {
		return nil, ErrInvalidWeight
	}
	if len(snap.Rates.Validate()) > 0 {
		return nil, ErrInvalidRates
	}

	buyRatePerGram := snap.Rates.PerGram(cat.Metal, enum.RateKindBuying)

	scrapBuyPct := cfg.ScrapBuyOwnPercentage
	if in.Source == enum.ScrapSourceOther {
		scrapBuyPct = cfg.ScrapBuyOtherPercentage
	}

	actualValueByPurity := buyRatePerGram * cfg.TruePurityPercentage / 100 * in.WeightGrams
	rawScrap := buyRatePerGram * scrapBuyPct / 100 * in.WeightGrams
	totalScrapValue, rounding := RoundScrapAmount(rawScrap)

	result := &OldResult{
		Category:        cat.ref(),
		WeightGrams:     in.WeightGrams,
		Source:          in.Source,
		TotalScrapValue: totalScrapValue,
		Rounding:        rounding,
		Percentages: OldPercentages{
			TruePurity: cfg.TruePurityPercentage,
			ScrapBuy:   scrapBuyPct,
		},
		Margin: &ScrapMargin{
			ActualValueByPurity: actualValueByPurity,
			ScrapMargin:         actualValueByPurity - totalScrapValue,
		},
		CalculatedAt: time.Now().UTC(),
	}

	if in.ResaleCategory == "" {
		return result, nil
	}
	if !cfg.ResaleEnabled {
		return result, nil
	}

	rc := cfg.FindResaleCategory(in.ResaleCategory)
	if rc == nil {
		return nil, ErrResaleCategoryNotFound
	}

	resale := &ResaleResult{ItemCategory: rc.ItemCategory}
	resale.Direct = calculateDirectResale(snap.Rates, cat.Metal, rc, in.WeightGrams)
	if rc.PolishRepairEnabled() {
		pr := calculatePolishRepair(snap.Rates, cat.Metal, rc, in.WeightGrams, resale.Direct)
		resale.PolishRepair = &pr
	}
	result.Resale = resale

	return result, nil
}

func calculateDirectResale(rates Rates, metal enum.Metal, rc *ResaleCategory, weight float64) DirectResaleResult {
	if rc.DirectResalePercentage < 1 || rc.BuyingFromWholesalerPercentage < 1 {
		return DirectResaleResult{
			Available: false,
			Message:   "direct resale is not configured for this category",
		}
	}

	ratePerGram := rates.PerGram(metal, rc.DirectResaleRateKind)

	baseCost := ratePerGram * rc.BuyingFromWholesalerPercentage / 100 * weight
	labourCharges := rc.WholesalerLabourPerGram * weight
	wholesalerCost := baseCost + labourCharges

	rawTotal := ratePerGram * rc.DirectResalePercentage / 100 * weight
	totalAmount, rounding := RoundSellingAmount(rawTotal)

	margin := totalAmount - wholesalerCost

	return DirectResaleResult{
		Available:        true,
		RateKind:         rc.DirectResaleRateKind,
		ResalePercentage: rc.DirectResalePercentage,
		TotalAmount:      totalAmount,
		Rounding:         rounding,
		Cost: &ResaleCost{
			Wholesale: &WholesaleCost{
				BaseCost:       baseCost,
				LabourCharges:  labourCharges,
				WholesalerCost: wholesalerCost,
			},
			Margin:           margin,
			MarginPercentage: SafePercentage(margin, totalAmount),
		},
	}
}

// calculatePolishRepair reuses the direct-resale wholesaler cost as the
// baseline: the alternative to refurbishing is buying an equivalent piece
// from the wholesaler.
func calculatePolishRepair(rates Rates, metal enum.Metal, rc *ResaleCategory, weight float64, direct DirectResaleResult) PolishRepairResult {
	pr := rc.PolishRepair
	if pr.ResalePercentage < 1 {
		return PolishRepairResult{
			Available: false,
			Message:   "polish/repair resale is not configured for this category",
		}
	}

	effectiveWeight := weight * (1 - pr.CostPercentage/100)
	weightLoss := weight - effectiveWeight

	ratePerGram := rates.PerGram(metal, pr.RateKind)
	rawTotal := ratePerGram * pr.ResalePercentage / 100 * effectiveWeight
	totalAmount, rounding := RoundSellingAmount(rawTotal)

	labourBase := effectiveWeight
	if pr.CalculatedOnWeight == LabourOnOriginalWeight {
		labourBase = weight
	}
	labourCharges := pr.LabourPerGram * labourBase

	finalValue := totalAmount - labourCharges
	if finalValue <= 0 {
		return PolishRepairResult{
			Available:            false,
			Message:              "polish/repair yields no positive value at the current rate",
			EffectiveWeightGrams: effectiveWeight,
			WeightLossGrams:      weightLoss,
		}
	}

	result := PolishRepairResult{
		Available:            true,
		RateKind:             pr.RateKind,
		ResalePercentage:     pr.ResalePercentage,
		EffectiveWeightGrams: effectiveWeight,
		WeightLossGrams:      weightLoss,
		TotalAmount:          totalAmount,
		Rounding:             rounding,
		LabourCharges:        labourCharges,
		CalculatedOnWeight:   pr.CalculatedOnWeight,
		FinalValue:           finalValue,
	}

	if direct.Cost != nil && direct.Cost.Wholesale != nil {
		margin := finalValue - direct.Cost.Wholesale.WholesalerCost
		result.Cost = &ResaleCost{
			Wholesale:        direct.Cost.Wholesale,
			Margin:           margin,
			MarginPercentage: SafePercentage(margin, finalValue),
		}
	}

	return result
}
