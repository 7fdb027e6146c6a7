package enum

// WeightUnit is the unit a calculator weight was entered in. Gold weights are
// usually keyed in milligrams on the shop floor and converted to grams before
// pricing; silver is entered in grams directly.
type WeightUnit string

const (
	WeightUnitGram      WeightUnit = "g"
	WeightUnitMilligram WeightUnit = "mg"
)

// ParseWeightUnit parses a weight unit, defaulting to grams
func ParseWeightUnit(s string) (WeightUnit, bool) {
	switch WeightUnit(s) {
	case WeightUnitGram, "":
		return WeightUnitGram, true
	case WeightUnitMilligram:
		return WeightUnitMilligram, true
	}
	return WeightUnitGram, false
}
