package split

import "math"

// =============================================================================
// RATIO SPLIT
// Divides the total proportionally to each participant's ratio and hands the
// rounding difference to the participant with the highest ratio
// =============================================================================

// Validate checks if the inputs can be split
func Validate(totalAmount int64, inputs []Input) error {
	_, err := unitPerRatio(totalAmount, inputs)
	return err
}

// Compute splits totalAmount across inputs in proportion to their ratios.
// Each share is rounded to the nearest whole unit (halves away from zero) and
// the leftover, positive or negative, goes entirely to the first participant
// holding the highest ratio. The returned amounts always sum to totalAmount.
func Compute(inputs []Input, totalAmount int64) ([]Result, error) {
	baseUnit, err := unitPerRatio(totalAmount, inputs)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(inputs))
	var allocated int64
	for i, in := range inputs {
		amount := int64(math.Round(baseUnit * in.Ratio))
		allocated += amount
		results[i] = Result{
			Name:   in.Name,
			Ratio:  in.Ratio,
			Amount: amount,
		}
	}

	if difference := totalAmount - allocated; difference != 0 {
		results[maxRatioIndex(inputs)].Amount += difference
	}

	return results, nil
}

// unitPerRatio validates the inputs and returns totalAmount / Σratio.
// Ratios whose sum or quotient leaves the finite float64 range are rejected
// as ErrInvalidRatio so no share can overflow int64.
func unitPerRatio(totalAmount int64, inputs []Input) (float64, error) {
	if totalAmount <= 0 || totalAmount > MaxAmount {
		return 0, ErrInvalidTotal
	}
	if len(inputs) == 0 {
		return 0, ErrNoParticipants
	}

	var totalRatio float64
	for _, in := range inputs {
		if !ValidRatio(in.Ratio) {
			return 0, ErrInvalidRatio
		}
		totalRatio += in.Ratio
	}
	if math.IsInf(totalRatio, 0) {
		return 0, ErrInvalidRatio
	}

	baseUnit := float64(totalAmount) / totalRatio
	if math.IsInf(baseUnit, 0) {
		return 0, ErrInvalidRatio
	}
	for _, in := range inputs {
		if math.IsInf(baseUnit*in.Ratio, 0) {
			return 0, ErrInvalidRatio
		}
	}
	return baseUnit, nil
}

// maxRatioIndex returns the index of the first input with the highest ratio
func maxRatioIndex(inputs []Input) int {
	maxIndex := 0
	for i, in := range inputs {
		if in.Ratio > inputs[maxIndex].Ratio {
			maxIndex = i
		}
	}
	return maxIndex
}
