package converter

import (
	"math"
	"strconv"
	"strings"

	"medusaseed/internal/config"
)

// floatSlack absorbs binary representation error before truncation:
// 19.99 * 100 evaluates to 1998.999... in float64 and must still land on
// 1999 minor units.
const floatSlack = 1e-6

// NormalizeAmount parses a decimal price field. Missing or non-numeric
// values coerce to zero; a malformed price never aborts the run.
func NormalizeAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// MinorUnits converts a base-currency amount into integer minor units of
// the given currency: amount * rate * multiplier, truncated toward zero
// (never rounded), clamped to zero from below. A zero rate means the base
// currency itself.
func MinorUnits(amount float64, cur config.Currency) int64 {
	rate := cur.Rate
	if rate == 0 {
		rate = 1
	}

	scaled := amount * rate * float64(cur.Multiplier)

	units := int64(math.Trunc(scaled + floatSlack))
	if units < 0 {
		return 0
	}

	return units
}

// NormalizePrices converts a raw price field into minor-unit amounts for
// every configured currency. Single- and multi-currency conversions share
// this per-currency formula; the currency list is purely configuration.
func NormalizePrices(raw string, currencies []config.Currency) map[string]int64 {
	amount := NormalizeAmount(raw)

	amounts := make(map[string]int64, len(currencies))

	for _, cur := range currencies {
		amounts[cur.Code] = MinorUnits(amount, cur)
	}

	return amounts
}
