package pricing

import (
	"fmt"
	"strings"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/pkg/apperror"
)

// CategoryConfig is one pricing-configuration record: how a specific stamp
// code of a metal is priced. The NEW/OLD branches form a tagged union. The
// Type field says which of the two config pointers is meaningful, and
// Validate rejects records where the wrong branch is populated.
type CategoryConfig struct {
	Code         string            `json:"code"`
	Metal        enum.Metal        `json:"metal"`
	Type         enum.CategoryType `json:"type"`
	ItemCategory string            `json:"item_category,omitempty"`
	Descriptions Descriptions      `json:"descriptions"`

	New *NewConfig `json:"new_config,omitempty"`
	Old *OldConfig `json:"old_config,omitempty"`
}

// NewConfig prices freshly made jewelry as percentages of the metal sell rate
// plus a per-gram labour component.
type NewConfig struct {
	PurityPercentage               float64 `json:"purity_percentage"`
	BuyingFromWholesalerPercentage float64 `json:"buying_from_wholesaler_percentage"`
	WholesalerLabourPerGram        float64 `json:"wholesaler_labour_per_gram"`
	SellingPercentage              float64 `json:"selling_percentage"`
}

// OldConfig prices used jewelry bought back for scrap, optionally with
// resale sub-categories.
type OldConfig struct {
	TruePurityPercentage    float64          `json:"true_purity_percentage"`
	ScrapBuyOwnPercentage   float64          `json:"scrap_buy_own_percentage"`
	ScrapBuyOtherPercentage float64          `json:"scrap_buy_other_percentage"`
	ResaleEnabled           bool             `json:"resale_enabled"`
	ResaleCategories        []ResaleCategory `json:"resale_categories,omitempty"`
}

// ResaleCategory is one resale sub-configuration of an OLD category. The
// polish/repair fields only exist when that chain is enabled, so "enabled
// flag without its fields" is unrepresentable.
type ResaleCategory struct {
	ItemCategory                   string        `json:"item_category"`
	DirectResalePercentage         float64       `json:"direct_resale_percentage"`
	DirectResaleRateKind           enum.RateKind `json:"direct_resale_rate_type"`
	BuyingFromWholesalerPercentage float64       `json:"buying_from_wholesaler_percentage"`
	WholesalerLabourPerGram        float64       `json:"wholesaler_labour_per_gram"`
	PolishRepair                   *PolishRepair `json:"polish_repair,omitempty"`
}

// PolishRepairEnabled reports whether the polish/repair chain is configured.
func (rc ResaleCategory) PolishRepairEnabled() bool {
	return rc.PolishRepair != nil
}

// LabourBase says which weight the polish/repair labour is charged on.
// It is a per-record choice, not a global constant.
type LabourBase string

const (
	LabourOnEffectiveWeight LabourBase = "effective_weight"
	LabourOnOriginalWeight  LabourBase = "original_weight"
)

// PolishRepair configures the refurbish-then-resell valuation chain.
// CostPercentage is the weight lost to polishing, capped at 50%.
type PolishRepair struct {
	ResalePercentage   float64       `json:"resale_percentage"`
	RateKind           enum.RateKind `json:"rate_type"`
	CostPercentage     float64       `json:"cost_percentage"`
	LabourPerGram      float64       `json:"labour_per_gram"`
	CalculatedOnWeight LabourBase    `json:"calculated_on_weight"`
}

// FindResaleCategory looks up a resale sub-config by name, case-insensitively.
func (c *OldConfig) FindResaleCategory(name string) *ResaleCategory {
	for i := range c.ResaleCategories {
		if strings.EqualFold(c.ResaleCategories[i].ItemCategory, name) {
			return &c.ResaleCategories[i]
		}
	}
	return nil
}

// maxDescriptionLen bounds each role description.
const maxDescriptionLen = 500

// Validate checks every invariant of the record and returns one field error
// per violation, using the JSON field paths the form binds to.
func (c *CategoryConfig) Validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if strings.TrimSpace(c.Code) == "" {
		errs = append(errs, apperror.FieldError{Field: "code", Message: "code is required"})
	}
	if !c.Metal.IsValid() {
		errs = append(errs, apperror.FieldError{Field: "metal", Message: "metal must be GOLD or SILVER"})
	}
	if !c.Type.IsValid() {
		errs = append(errs, apperror.FieldError{Field: "type", Message: "type must be NEW or OLD"})
	}

	errs = append(errs, c.Descriptions.Validate()...)

	switch c.Type {
	case enum.CategoryTypeNew:
		if c.Old != nil {
			errs = append(errs, apperror.FieldError{Field: "old_config", Message: "must not be set on a NEW category"})
		}
		if c.New == nil {
			errs = append(errs, apperror.FieldError{Field: "new_config", Message: "required for a NEW category"})
		} else {
			errs = append(errs, c.New.validate()...)
		}
	case enum.CategoryTypeOld:
		if c.New != nil {
			errs = append(errs, apperror.FieldError{Field: "new_config", Message: "must not be set on an OLD category"})
		}
		if c.Old == nil {
			errs = append(errs, apperror.FieldError{Field: "old_config", Message: "required for an OLD category"})
		} else {
			errs = append(errs, c.Old.validate()...)
		}
	}

	return errs
}

func (c *NewConfig) validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if c.PurityPercentage < 1 || c.PurityPercentage > 100 {
		errs = append(errs, apperror.FieldError{Field: "new_config.purity_percentage", Message: "must be between 1 and 100"})
	}
	if c.BuyingFromWholesalerPercentage < 1 {
		errs = append(errs, apperror.FieldError{Field: "new_config.buying_from_wholesaler_percentage", Message: "must be at least 1"})
	}
	if c.WholesalerLabourPerGram < 0 {
		errs = append(errs, apperror.FieldError{Field: "new_config.wholesaler_labour_per_gram", Message: "cannot be negative"})
	}
	if c.SellingPercentage < 1 {
		errs = append(errs, apperror.FieldError{Field: "new_config.selling_percentage", Message: "must be at least 1"})
	}
	return errs
}

func (c *OldConfig) validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if c.TruePurityPercentage < 1 || c.TruePurityPercentage > 100 {
		errs = append(errs, apperror.FieldError{Field: "old_config.true_purity_percentage", Message: "must be between 1 and 100"})
	}
	if c.ScrapBuyOwnPercentage < 1 {
		errs = append(errs, apperror.FieldError{Field: "old_config.scrap_buy_own_percentage", Message: "must be at least 1"})
	}
	if c.ScrapBuyOtherPercentage < 1 {
		errs = append(errs, apperror.FieldError{Field: "old_config.scrap_buy_other_percentage", Message: "must be at least 1"})
	}

	if !c.ResaleEnabled && len(c.ResaleCategories) > 0 {
		errs = append(errs, apperror.FieldError{Field: "old_config.resale_categories", Message: "resale must be enabled to configure resale categories"})
	}
	if c.ResaleEnabled && len(c.ResaleCategories) == 0 {
		errs = append(errs, apperror.FieldError{Field: "old_config.resale_categories", Message: "at least one resale category is required when resale is enabled"})
	}

	seen := make(map[string]bool, len(c.ResaleCategories))
	for i := range c.ResaleCategories {
		rc := &c.ResaleCategories[i]
		prefix := fmt.Sprintf("old_config.resale_categories[%d]", i)

		name := strings.ToLower(strings.TrimSpace(rc.ItemCategory))
		if name == "" {
			errs = append(errs, apperror.FieldError{Field: prefix + ".item_category", Message: "name is required"})
		} else if seen[name] {
			errs = append(errs, apperror.FieldError{Field: prefix + ".item_category", Message: "name must be unique within the category"})
		}
		seen[name] = true

		if rc.DirectResalePercentage < 1 {
			errs = append(errs, apperror.FieldError{Field: prefix + ".direct_resale_percentage", Message: "must be at least 1"})
		}
		if !rc.DirectResaleRateKind.IsValid() {
			errs = append(errs, apperror.FieldError{Field: prefix + ".direct_resale_rate_type", Message: "must be SELLING or BUYING"})
		}
		if rc.BuyingFromWholesalerPercentage < 1 {
			errs = append(errs, apperror.FieldError{Field: prefix + ".buying_from_wholesaler_percentage", Message: "must be at least 1"})
		}
		if rc.WholesalerLabourPerGram < 0 {
			errs = append(errs, apperror.FieldError{Field: prefix + ".wholesaler_labour_per_gram", Message: "cannot be negative"})
		}

		if pr := rc.PolishRepair; pr != nil {
			if pr.ResalePercentage < 1 {
				errs = append(errs, apperror.FieldError{Field: prefix + ".polish_repair.resale_percentage", Message: "must be at least 1"})
			}
			if !pr.RateKind.IsValid() {
				errs = append(errs, apperror.FieldError{Field: prefix + ".polish_repair.rate_type", Message: "must be SELLING or BUYING"})
			}
			if pr.CostPercentage < 0 || pr.CostPercentage > 50 {
				errs = append(errs, apperror.FieldError{Field: prefix + ".polish_repair.cost_percentage", Message: "weight loss must be between 0 and 50"})
			}
			if pr.LabourPerGram < 0 {
				errs = append(errs, apperror.FieldError{Field: prefix + ".polish_repair.labour_per_gram", Message: "cannot be negative"})
			}
			if pr.CalculatedOnWeight != LabourOnEffectiveWeight && pr.CalculatedOnWeight != LabourOnOriginalWeight {
				errs = append(errs, apperror.FieldError{Field: prefix + ".polish_repair.calculated_on_weight", Message: "must be effective_weight or original_weight"})
			}
		}
	}

	return errs
}

// CategoryRef is the slice of a category echoed back inside every result.
type CategoryRef struct {
	Code         string            `json:"code"`
	Metal        enum.Metal        `json:"metal"`
	Type         enum.CategoryType `json:"type"`
	ItemCategory string            `json:"item_category,omitempty"`
}

func (c *CategoryConfig) ref() CategoryRef {
	return CategoryRef{
		Code:         c.Code,
		Metal:        c.Metal,
		Type:         c.Type,
		ItemCategory: c.ItemCategory,
	}
}
