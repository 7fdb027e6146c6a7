package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CategoryType discriminates the two pricing-configuration branches
type CategoryType int

const (
	CategoryTypeNew CategoryType = 0
	CategoryTypeOld CategoryType = 1
)

func (t CategoryType) String() string {
	names := [...]string{"NEW", "OLD"}
	if int(t) < 0 || int(t) >= len(names) {
		return "NEW"
	}
	return names[t]
}

// IsValid reports whether the value is a known category type
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeNew || t == CategoryTypeOld
}

func (t CategoryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CategoryType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = CategoryType(i)
		return nil
	}
	switch str {
	case "NEW":
		*t = CategoryTypeNew
	case "OLD":
		*t = CategoryTypeOld
	}
	return nil
}

// ParseCategoryType parses a category type name ("NEW" or "OLD")
func ParseCategoryType(s string) (CategoryType, bool) {
	switch s {
	case "NEW", "new":
		return CategoryTypeNew, true
	case "OLD", "old":
		return CategoryTypeOld, true
	}
	return CategoryTypeNew, false
}

func (t CategoryType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *CategoryType) Scan(value interface{}) error {
	if value == nil {
		*t = CategoryTypeNew
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = CategoryType(v)
	case int:
		*t = CategoryType(v)
	}
	return nil
}
