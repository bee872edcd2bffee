// Package money owns the translation between decimal currency units and the
// integer-cent representation stored in the database. No other package may
// multiply or divide by 100.
package money

import (
	"fmt"
	"math"
	"strconv"
)

// ToCents converts a decimal amount to integer cents, rounding to the
// nearest cent.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts stored cents back to decimal currency units.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Format renders cents as a display string with thousands separators,
// e.g. 123456 -> "$1,234.56".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
