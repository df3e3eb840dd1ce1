package participant

import (
	"errors"
	"strings"

	"github.com/fkhayef/dutreat/internal/split"
)

// Common errors
var (
	ErrEmptyName    = errors.New("name is required")
	ErrInvalidRatio = split.ErrInvalidRatio
)

// Registry holds the participants of one calculation in insertion order.
// It is not safe for concurrent use; the owner serializes access.
type Registry struct {
	participants []Participant
	lastID       int64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add validates name and ratio and appends a new participant with a fresh ID
func (r *Registry) Add(name string, ratio float64) (Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Participant{}, ErrEmptyName
	}
	if !split.ValidRatio(ratio) {
		return Participant{}, ErrInvalidRatio
	}

	r.lastID++
	p := Participant{
		ID:    r.lastID,
		Name:  name,
		Ratio: ratio,
	}
	r.participants = append(r.participants, p)

	return p, nil
}

// Remove deletes the participant with the given ID. Unknown IDs are ignored.
func (r *Registry) Remove(id int64) {
	for i, p := range r.participants {
		if p.ID == id {
			r.participants = append(r.participants[:i], r.participants[i+1:]...)
			return
		}
	}
}

// Get returns the participant with the given ID
func (r *Registry) Get(id int64) (Participant, bool) {
	for _, p := range r.participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// List returns a copy of the participants in insertion order
func (r *Registry) List() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// Len returns the number of participants
func (r *Registry) Len() int {
	return len(r.participants)
}

// IsEmpty reports whether a split can not be computed yet
func (r *Registry) IsEmpty() bool {
	return len(r.participants) == 0
}

// Inputs converts the participants to allocator inputs
func (r *Registry) Inputs() []split.Input {
	inputs := make([]split.Input, len(r.participants))
	for i, p := range r.participants {
		inputs[i] = p.ToSplitInput()
	}
	return inputs
}
