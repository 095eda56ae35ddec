// Package format provides number formatting helpers for user-facing messages.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NeatFigure formats a numeric value with thousands separators, rounded to the
// given number of decimal places (0 or 2 in practice). Rounding goes through
// decimal to avoid float binary-rounding surprises at the boundary digit.
//
//	NeatFigure(1234567.891, 2) == "1,234,567.89"
//	NeatFigure(999, 0)         == "999"
//	NeatFigure(-1500, 0)       == "-1,500"
func NeatFigure(value float64, places int) string {
	d := decimal.NewFromFloat(value).Round(int32(places))
	s := d.StringFixed(int32(places))

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)

	return b.String()
}
