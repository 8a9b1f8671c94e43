package summary

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Percent is an uptime percentage in [0, 100]. The upstream summary writer
// is sloppy about types: the same field shows up as a number, a string, a
// string with a trailing "%", or null depending on the collector version.
// Decoding never fails; anything unusable becomes 0.
type Percent float64

// ParsePercent normalizes a raw percentage string. A trailing "%" is
// stripped, the rest is parsed as a decimal, and anything unparsable is 0.
// Results are clamped to [0, 100].
func ParsePercent(raw string) float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return clampPercent(v)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*p = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*p = 0
			return nil
		}
		*p = Percent(ParsePercent(s))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*p = 0
		return nil
	}
	*p = Percent(clampPercent(v))
	return nil
}

func (p Percent) Float() float64 { return float64(p) }

// DisplayPercent is the all-time uptime string shown on the card verbatim.
// It is never classified, only displayed, so a number in the source is
// formatted back to a "%"-suffixed string and junk becomes empty.
type DisplayPercent string

func (d *DisplayPercent) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*d = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*d = ""
			return nil
		}
		*d = DisplayPercent(strings.TrimSpace(s))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*d = ""
		return nil
	}
	*d = DisplayPercent(strconv.FormatFloat(v, 'f', -1, 64) + "%")
	return nil
}
