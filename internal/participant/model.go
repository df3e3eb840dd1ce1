package participant

import "github.com/fkhayef/dutreat/internal/split"

// Participant represents a person sharing the bill
type Participant struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Ratio float64 `json:"ratio"`
}

// ToSplitInput converts to the split package's input type
func (p Participant) ToSplitInput() split.Input {
	return split.Input{
		Name:  p.Name,
		Ratio: p.Ratio,
	}
}
