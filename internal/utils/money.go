package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a monetary value as plain decimal text with no
// grouping, the machine-parseable path used by exports. Keep it separate
// from FormatAmountDisplay; the two must not be unified.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// FormatAmountDisplay renders an amount with space thousands separators for
// on-screen use only. Rounding to cents happens once, before the split, so a
// fraction that rounds up carries into the integer digits.
func FormatAmountDisplay(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(math.Round(v * 100))
	whole := cents / 100
	frac := ""
	if r := cents % 100; r != 0 {
		frac = "." + fmt.Sprintf("%02d", r)
	}

	str := strconv.FormatInt(whole, 10)
	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(c)
	}
	out.WriteString(frac)
	return out.String()
}
