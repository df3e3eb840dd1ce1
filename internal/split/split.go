package split

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest total the allocator accepts. Every integer up to
// 2^53 is exactly representable as a float64.
const MaxAmount int64 = 1 << 53

// Bounds for ratios typed by a user. Compute itself accepts any ratio whose
// arithmetic stays finite.
var (
	MinRatio = decimal.New(1, -6)
	MaxRatio = decimal.New(1, 6)
)

// Input represents a participant handed to the allocator
type Input struct {
	Name  string  `json:"name"`
	Ratio float64 `json:"ratio"`
}

// Result represents the calculated share of a single participant
type Result struct {
	Name   string  `json:"name"`
	Ratio  float64 `json:"ratio"`
	Amount int64   `json:"amount"`
}

var (
	ErrNoParticipants = errors.New("at least one participant is required")
	ErrInvalidRatio   = errors.New("ratio must be a number greater than 0")
	ErrInvalidTotal   = errors.New("total amount must be a whole number greater than 0")
)

// ValidRatio reports whether r can weight a share.
func ValidRatio(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0) && r > 0
}

// Sum adds up the amounts of results.
func Sum(results []Result) int64 {
	var total int64
	for _, r := range results {
		total += r.Amount
	}
	return total
}
