package session

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/fkhayef/dutreat/internal/participant"
)

// Currency every amount is expressed in
const Currency = money.JPY

// RawInput keeps form input exactly as typed. It accepts a JSON string or a
// JSON number so the service, not the decoder, decides what is valid.
type RawInput string

// UnmarshalJSON implements json.Unmarshaler
func (v *RawInput) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = RawInput(s)
		return nil
	}
	if string(b) == "null" {
		*v = ""
		return nil
	}
	*v = RawInput(b)
	return nil
}

// AddParticipantRequest represents the request to add a participant
type AddParticipantRequest struct {
	Name  string   `json:"name" example:"Aiko"`
	Ratio RawInput `json:"ratio" swaggertype:"string" example:"1.5"`
}

// CalculateRequest represents the request to split a total
type CalculateRequest struct {
	TotalAmount RawInput `json:"total_amount" swaggertype:"string" example:"10000"`
}

// SessionResponse represents the response for a session
type SessionResponse struct {
	ID           string                 `json:"id"`
	CreatedAt    string                 `json:"created_at"`
	CanCalculate bool                   `json:"can_calculate"`
	Participants []*ParticipantResponse `json:"participants"`
}

// ParticipantResponse represents the response for a participant
type ParticipantResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Ratio      float64 `json:"ratio"`
	RatioLabel string  `json:"ratio_label"`
}

// ResultResponse represents one participant's share
type ResultResponse struct {
	Name          string  `json:"name"`
	Ratio         float64 `json:"ratio"`
	RatioLabel    string  `json:"ratio_label"`
	Amount        int64   `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
}

// CalculationResponse represents the response for a calculation
type CalculationResponse struct {
	Results      []*ResultResponse `json:"results"`
	Total        int64             `json:"total"`
	TotalDisplay string            `json:"total_display"`
	Currency     string            `json:"currency"`
}

// ToResponse converts a Snapshot to a SessionResponse DTO
func (s *Snapshot) ToResponse() *SessionResponse {
	return &SessionResponse{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		CanCalculate: len(s.Participants) > 0,
		Participants: toParticipantResponses(s.Participants),
	}
}

// ToResponse converts a Calculation to a CalculationResponse DTO
func (c *Calculation) ToResponse() *CalculationResponse {
	results := make([]*ResultResponse, len(c.Results))
	for i, r := range c.Results {
		results[i] = &ResultResponse{
			Name:          r.Name,
			Ratio:         r.Ratio,
			RatioLabel:    ratioLabel(r.Ratio),
			Amount:        r.Amount,
			AmountDisplay: displayAmount(r.Amount),
		}
	}

	return &CalculationResponse{
		Results:      results,
		Total:        c.Total,
		TotalDisplay: displayAmount(c.Total),
		Currency:     Currency,
	}
}

func toParticipantResponse(p participant.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:         p.ID,
		Name:       p.Name,
		Ratio:      p.Ratio,
		RatioLabel: ratioLabel(p.Ratio),
	}
}

func toParticipantResponses(list []participant.Participant) []*ParticipantResponse {
	out := make([]*ParticipantResponse, len(list))
	for i, p := range list {
		out[i] = toParticipantResponse(p)
	}
	return out
}

// ratioLabel renders a ratio the way the calculator shows it, e.g. "×1.5".
// Halves round away from zero, so 1.25 reads "×1.3".
func ratioLabel(ratio float64) string {
	return "×" + decimal.NewFromFloat(ratio).StringFixed(1)
}

func displayAmount(amount int64) string {
	return money.New(amount, Currency).Display()
}
