// Package money converts between integer minor-unit amounts (cents) and
// decimal major-unit amounts. All internal arithmetic happens in minor units;
// decimals only exist at the platform boundary.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal digits of the supported currencies.
const Precision = 2

var ErrInvalidAmount = errors.New("invalid amount")

// ToMinorUnits converts a major-unit amount to minor units, rounding half away
// from zero at currency precision.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Round(Precision).Shift(Precision).IntPart()
}

// ToMajorUnits converts minor units to a major-unit decimal.
func ToMajorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -Precision)
}

// FromString parses a major-unit amount such as "10.50".
func FromString(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// RequireNonNegative is used by callers whose domain rule forbids negative amounts.
func RequireNonNegative(cents int64) error {
	if cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}
