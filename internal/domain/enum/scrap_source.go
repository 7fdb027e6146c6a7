package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ScrapSource indicates where old jewelry being valued was originally bought
type ScrapSource int

const (
	// ScrapSourceOwn means the piece was sold by this shop originally
	ScrapSourceOwn ScrapSource = 0
	// ScrapSourceOther means the piece comes from another shop
	ScrapSourceOther ScrapSource = 1
)

func (s ScrapSource) String() string {
	names := [...]string{"own", "other"}
	if int(s) < 0 || int(s) >= len(names) {
		return "own"
	}
	return names[s]
}

// IsValid reports whether the value is a known scrap source
func (s ScrapSource) IsValid() bool {
	return s == ScrapSourceOwn || s == ScrapSourceOther
}

func (s ScrapSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ScrapSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ScrapSource(i)
		return nil
	}
	switch str {
	case "own":
		*s = ScrapSourceOwn
	case "other":
		*s = ScrapSourceOther
	}
	return nil
}

// ParseScrapSource parses a scrap source name ("own" or "other")
func ParseScrapSource(str string) (ScrapSource, bool) {
	switch str {
	case "own":
		return ScrapSourceOwn, true
	case "other":
		return ScrapSourceOther, true
	}
	return ScrapSourceOwn, false
}

func (s ScrapSource) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ScrapSource) Scan(value interface{}) error {
	if value == nil {
		*s = ScrapSourceOwn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ScrapSource(v)
	case int:
		*s = ScrapSource(v)
	}
	return nil
}
