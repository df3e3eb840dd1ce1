package split

import (
	"strings"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(MaxAmount)

// ParseRatio reads a ratio typed by a user. Anything that is not a plain
// decimal number between MinRatio and MaxRatio is rejected with
// ErrInvalidRatio.
func ParseRatio(raw string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.LessThan(MinRatio) || d.GreaterThan(MaxRatio) {
		return 0, ErrInvalidRatio
	}

	ratio, _ := d.Float64()
	if !ValidRatio(ratio) {
		return 0, ErrInvalidRatio
	}
	return ratio, nil
}

// ParseAmount reads a total amount typed by a user. Amounts are whole
// currency units, so fractions are rejected along with zero, negatives and
// values above MaxAmount.
func ParseAmount(raw string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidTotal
	}
	if !d.IsPositive() || !d.IsInteger() || d.GreaterThan(maxAmount) {
		return 0, ErrInvalidTotal
	}
	return d.IntPart(), nil
}
