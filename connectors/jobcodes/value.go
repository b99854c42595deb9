package jobcodes

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseValue converts a raw export cell into a number. Currency cells drop the
// "$" and thousands separators, percentages become 0-1 fractions. Anything that
// still does not parse is 0.
func ParseValue(raw string) float64 {
	v, _ := parseValue(raw)
	return v
}

// parseValue is ParseValue with the parse failure kept, so the loader can record
// a warning instead of silently accepting the zero.
func parseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "0.00%" || s == "0%" {
		return 0, nil
	}

	percent := false
	switch {
	case strings.Contains(s, "%"):
		s = strings.ReplaceAll(s, "%", "")
		percent = true
	case strings.Contains(s, "$"):
		s = strings.ReplaceAll(s, "$", "")
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, eris.Wrapf(err, "parse value %q", raw)
	}
	if percent {
		d = d.Div(hundred)
	}
	return d.InexactFloat64(), nil
}
