package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatMinorUnits renders an amount held in minor units with the given exponent.
// Example: 11900 with exponent 2 returns "119.00"
// Example: 500 with exponent 0 returns "500"
func FormatMinorUnits(amount int64, exponent int) string {
	return decimal.New(amount, -int32(exponent)).StringFixed(int32(exponent))
}

// ParseMajorUnits converts a decimal string such as "119.5" into minor units.
// It rejects values with more fractional digits than the exponent allows
// and values whose minor-unit amount does not fit in an int64.
func ParseMajorUnits(value string, exponent int) (int64, bool) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, false
	}
	scaled := d.Shift(int32(exponent))
	if !scaled.IsInteger() {
		return 0, false
	}
	minor := scaled.BigInt()
	if !minor.IsInt64() || minor.Int64() == math.MinInt64 {
		return 0, false
	}
	return minor.Int64(), true
}
