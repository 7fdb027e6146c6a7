package pricing

import (
	"strings"
	"testing"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func fieldNames(errs []apperror.FieldError) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestCategoryConfig_Validate_AcceptsValidCategories(t *testing.T) {
	assert.Empty(t, newGoldCategory().Validate())
	assert.Empty(t, oldGoldCategory().Validate())
	assert.Empty(t, oldGoldCategoryWithResale().Validate())
}

func TestCategoryConfig_Validate_RequiresCode(t *testing.T) {
	cat := newGoldCategory()
	cat.Code = "   "

	assert.Contains(t, fieldNames(cat.Validate()), "code")
}

func TestCategoryConfig_Validate_RejectsUnknownEnums(t *testing.T) {
	cat := newGoldCategory()
	cat.Metal = enum.Metal(7)
	cat.Type = enum.CategoryType(7)

	fields := fieldNames(cat.Validate())
	assert.Contains(t, fields, "metal")
	assert.Contains(t, fields, "type")
}

func TestCategoryConfig_Validate_BranchExclusivity(t *testing.T) {
	t.Run("new category with old config", func(t *testing.T) {
		cat := newGoldCategory()
		cat.Old = &OldConfig{}
		assert.Contains(t, fieldNames(cat.Validate()), "old_config")
	})

	t.Run("new category missing its config", func(t *testing.T) {
		cat := newGoldCategory()
		cat.New = nil
		assert.Contains(t, fieldNames(cat.Validate()), "new_config")
	})

	t.Run("old category with new config", func(t *testing.T) {
		cat := oldGoldCategory()
		cat.New = &NewConfig{}
		assert.Contains(t, fieldNames(cat.Validate()), "new_config")
	})

	t.Run("old category missing its config", func(t *testing.T) {
		cat := oldGoldCategory()
		cat.Old = nil
		assert.Contains(t, fieldNames(cat.Validate()), "old_config")
	})
}

func TestCategoryConfig_Validate_NewConfigRanges(t *testing.T) {
	cat := newGoldCategory()
	cat.New.PurityPercentage = 101
	cat.New.BuyingFromWholesalerPercentage = 0
	cat.New.WholesalerLabourPerGram = -5
	cat.New.SellingPercentage = 0.5

	fields := fieldNames(cat.Validate())
	assert.Contains(t, fields, "new_config.purity_percentage")
	assert.Contains(t, fields, "new_config.buying_from_wholesaler_percentage")
	assert.Contains(t, fields, "new_config.wholesaler_labour_per_gram")
	assert.Contains(t, fields, "new_config.selling_percentage")
}

func TestCategoryConfig_Validate_OldConfigRanges(t *testing.T) {
	cat := oldGoldCategory()
	cat.Old.TruePurityPercentage = 0
	cat.Old.ScrapBuyOwnPercentage = 0
	cat.Old.ScrapBuyOtherPercentage = 0

	fields := fieldNames(cat.Validate())
	assert.Contains(t, fields, "old_config.true_purity_percentage")
	assert.Contains(t, fields, "old_config.scrap_buy_own_percentage")
	assert.Contains(t, fields, "old_config.scrap_buy_other_percentage")
}

func TestCategoryConfig_Validate_ResaleEnablementConsistency(t *testing.T) {
	t.Run("categories without enablement", func(t *testing.T) {
		cat := oldGoldCategoryWithResale()
		cat.Old.ResaleEnabled = false
		assert.Contains(t, fieldNames(cat.Validate()), "old_config.resale_categories")
	})

	t.Run("enablement without categories", func(t *testing.T) {
		cat := oldGoldCategory()
		cat.Old.ResaleEnabled = true
		assert.Contains(t, fieldNames(cat.Validate()), "old_config.resale_categories")
	})
}

func TestCategoryConfig_Validate_ResaleNamesMustBeUnique(t *testing.T) {
	cat := oldGoldCategoryWithResale()
	dup := cat.Old.ResaleCategories[0]
	dup.ItemCategory = " Chain "
	cat.Old.ResaleCategories = append(cat.Old.ResaleCategories, dup)

	assert.Contains(t, fieldNames(cat.Validate()), "old_config.resale_categories[1].item_category")
}

func TestCategoryConfig_Validate_ResaleCategoryFields(t *testing.T) {
	cat := oldGoldCategoryWithResale()
	rc := &cat.Old.ResaleCategories[0]
	rc.ItemCategory = ""
	rc.DirectResalePercentage = 0
	rc.DirectResaleRateKind = enum.RateKind(7)
	rc.BuyingFromWholesalerPercentage = 0
	rc.WholesalerLabourPerGram = -1

	fields := fieldNames(cat.Validate())
	prefix := "old_config.resale_categories[0]"
	assert.Contains(t, fields, prefix+".item_category")
	assert.Contains(t, fields, prefix+".direct_resale_percentage")
	assert.Contains(t, fields, prefix+".direct_resale_rate_type")
	assert.Contains(t, fields, prefix+".buying_from_wholesaler_percentage")
	assert.Contains(t, fields, prefix+".wholesaler_labour_per_gram")
}

func TestCategoryConfig_Validate_PolishRepairFields(t *testing.T) {
	cat := oldGoldCategoryWithResale()
	pr := cat.Old.ResaleCategories[0].PolishRepair
	pr.ResalePercentage = 0
	pr.RateKind = enum.RateKind(7)
	pr.CostPercentage = 51
	pr.LabourPerGram = -1
	pr.CalculatedOnWeight = "somewhere"

	fields := fieldNames(cat.Validate())
	prefix := "old_config.resale_categories[0].polish_repair"
	assert.Contains(t, fields, prefix+".resale_percentage")
	assert.Contains(t, fields, prefix+".rate_type")
	assert.Contains(t, fields, prefix+".cost_percentage")
	assert.Contains(t, fields, prefix+".labour_per_gram")
	assert.Contains(t, fields, prefix+".calculated_on_weight")
}

func TestCategoryConfig_Validate_DescriptionLength(t *testing.T) {
	cat := newGoldCategory()
	cat.Descriptions.Universal = strings.Repeat("x", 501)

	assert.Contains(t, fieldNames(cat.Validate()), "descriptions.universal")

	cat.Descriptions.Universal = strings.Repeat("x", 500)
	assert.Empty(t, cat.Validate())
}

func TestOldConfig_FindResaleCategory(t *testing.T) {
	cfg := oldGoldCategoryWithResale().Old

	assert.NotNil(t, cfg.FindResaleCategory("chain"))
	assert.NotNil(t, cfg.FindResaleCategory("Chain"))
	assert.Nil(t, cfg.FindResaleCategory("bangle"))
}
