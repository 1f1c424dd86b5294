package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQty reads a quantity typed into a form. Blank or unparsable text is
// zero, fractions are truncated and negative values are floored at zero.
func ParseQty(raw string) int {
	return max(0, ParseDelta(raw))
}

// ParseDelta reads a signed integer amount. Unparsable text yields zero,
// which callers treat as "no adjustment". Values beyond the int range
// saturate at its bounds.
func ParseDelta(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// ParseAmount reads an optional money amount. It returns nil, never zero, for
// blank, unparsable or negative input.
func ParseAmount(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

// OptionalText trims s and returns nil when nothing is left.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
