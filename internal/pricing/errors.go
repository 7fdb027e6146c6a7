package pricing

import "errors"

// Sentinel errors returned by the calculators. The service layer maps these
// onto the HTTP error taxonomy; inside this package they stay plain errors so
// the calculators remain usable as a library.
var (
	// ErrNoCategory is returned when the snapshot carries no category
	ErrNoCategory = errors.New("pricing: snapshot has no category")

	// ErrCategoryTypeMismatch is returned when a NEW category is passed to the
	// old-jewelry calculator or vice versa
	ErrCategoryTypeMismatch = errors.New("pricing: category type does not match calculator")

	// ErrMissingConfig is returned when the branch config for the category's
	// declared type is absent
	ErrMissingConfig = errors.New("pricing: category is missing its pricing configuration")

	// ErrInvalidWeight is returned for zero, negative, NaN or infinite weights
	ErrInvalidWeight = errors.New("pricing: weight must be a positive number of grams")

	// ErrInvalidRates is returned when the snapshot rates fail validation
	ErrInvalidRates = errors.New("pricing: rates are missing or invalid")

	// ErrResaleCategoryNotFound is returned when a resale sub-category was
	// requested but no sub-config with that name exists on the category
	ErrResaleCategoryNotFound = errors.New("pricing: resale category not found")
)
