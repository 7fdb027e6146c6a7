package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RateKind selects which side of the metal rate a calculation uses
type RateKind int

const (
	RateKindSelling RateKind = 0
	RateKindBuying  RateKind = 1
)

func (k RateKind) String() string {
	names := [...]string{"SELLING", "BUYING"}
	if int(k) < 0 || int(k) >= len(names) {
		return "SELLING"
	}
	return names[k]
}

// IsValid reports whether the value is a known rate kind
func (k RateKind) IsValid() bool {
	return k == RateKindSelling || k == RateKindBuying
}

func (k RateKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *RateKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = RateKind(i)
		return nil
	}
	switch str {
	case "SELLING":
		*k = RateKindSelling
	case "BUYING":
		*k = RateKindBuying
	}
	return nil
}

// ParseRateKind parses a rate kind name ("SELLING" or "BUYING")
func ParseRateKind(s string) (RateKind, bool) {
	switch s {
	case "SELLING", "selling":
		return RateKindSelling, true
	case "BUYING", "buying":
		return RateKindBuying, true
	}
	return RateKindSelling, false
}

func (k RateKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *RateKind) Scan(value interface{}) error {
	if value == nil {
		*k = RateKindSelling
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = RateKind(v)
	case int:
		*k = RateKind(v)
	}
	return nil
}
