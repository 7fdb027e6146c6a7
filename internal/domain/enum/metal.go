package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Metal represents the metal a category prices
type Metal int

const (
	MetalGold   Metal = 0
	MetalSilver Metal = 1
)

func (m Metal) String() string {
	names := [...]string{"GOLD", "SILVER"}
	if int(m) < 0 || int(m) >= len(names) {
		return "GOLD"
	}
	return names[m]
}

// IsValid reports whether the value is a known metal
func (m Metal) IsValid() bool {
	return m == MetalGold || m == MetalSilver
}

func (m Metal) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Metal) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = Metal(i)
		return nil
	}
	switch str {
	case "GOLD":
		*m = MetalGold
	case "SILVER":
		*m = MetalSilver
	}
	return nil
}

// ParseMetal parses a metal name ("GOLD" or "SILVER")
func ParseMetal(s string) (Metal, bool) {
	switch s {
	case "GOLD", "gold":
		return MetalGold, true
	case "SILVER", "silver":
		return MetalSilver, true
	}
	return MetalGold, false
}

func (m Metal) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *Metal) Scan(value interface{}) error {
	if value == nil {
		*m = MetalGold
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = Metal(v)
	case int:
		*m = Metal(v)
	}
	return nil
}
