package session

import (
	"errors"
	"strings"

	"github.com/fkhayef/dutreat/internal/participant"
	"github.com/fkhayef/dutreat/internal/split"
)

// Common errors
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrTooManyParticipants = errors.New("session has reached its participant limit")
)

// Service handles calculator session business logic
type Service struct {
	store           *Store
	maxParticipants int
}

// NewService creates a new session service with the store injected.
// maxParticipants caps each session's registry; 0 means no cap.
func NewService(store *Store, maxParticipants int) *Service {
	return &Service{store: store, maxParticipants: maxParticipants}
}

// CreateSession starts a calculator with no participants
func (s *Service) CreateSession() *Snapshot {
	sess := s.store.Create()
	return &Snapshot{
		ID:           sess.ID,
		CreatedAt:    sess.CreatedAt,
		Participants: []participant.Participant{},
	}
}

// GetSession retrieves a session with its participants
func (s *Service) GetSession(id string) (*Snapshot, error) {
	var snap *Snapshot
	err := s.withRegistry(id, func(sess *Session) error {
		snap = &Snapshot{
			ID:           sess.ID,
			CreatedAt:    sess.CreatedAt,
			Participants: sess.registry.List(),
		}
		return nil
	})
	return snap, err
}

// DeleteSession discards a session and its participants
func (s *Service) DeleteSession(id string) error {
	if !s.store.Delete(id) {
		return ErrSessionNotFound
	}
	return nil
}

// AddParticipant parses the raw ratio and adds a participant to the session
func (s *Service) AddParticipant(id, name, rawRatio string) (participant.Participant, error) {
	var added participant.Participant
	err := s.withRegistry(id, func(sess *Session) error {
		// Name is checked first so an empty form reports the name
		if strings.TrimSpace(name) == "" {
			return participant.ErrEmptyName
		}
		ratio, err := split.ParseRatio(rawRatio)
		if err != nil {
			return err
		}
		if s.maxParticipants > 0 && sess.registry.Len() >= s.maxParticipants {
			return ErrTooManyParticipants
		}
		added, err = sess.registry.Add(name, ratio)
		return err
	})
	return added, err
}

// RemoveParticipant removes a participant and returns the ones left.
// Unknown participants are ignored.
func (s *Service) RemoveParticipant(id string, participantID int64) ([]participant.Participant, error) {
	var remaining []participant.Participant
	err := s.withRegistry(id, func(sess *Session) error {
		sess.registry.Remove(participantID)
		remaining = sess.registry.List()
		return nil
	})
	return remaining, err
}

// ListParticipants returns the session's participants in insertion order
func (s *Service) ListParticipants(id string) ([]participant.Participant, error) {
	var list []participant.Participant
	err := s.withRegistry(id, func(sess *Session) error {
		list = sess.registry.List()
		return nil
	})
	return list, err
}

// Calculate parses the raw total and splits it among the session's participants
func (s *Service) Calculate(id, rawTotal string) (*Calculation, error) {
	var calc *Calculation
	err := s.withRegistry(id, func(sess *Session) error {
		total, err := split.ParseAmount(rawTotal)
		if err != nil {
			return err
		}
		if sess.registry.IsEmpty() {
			return split.ErrNoParticipants
		}

		results, err := split.Compute(sess.registry.Inputs(), total)
		if err != nil {
			return err
		}
		calc = &Calculation{
			Results: results,
			Total:   total,
		}
		return nil
	})
	return calc, err
}

// withRegistry runs fn while holding the session's lock
func (s *Service) withRegistry(id string, fn func(sess *Session) error) error {
	sess := s.store.Get(id)
	if sess == nil {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}
