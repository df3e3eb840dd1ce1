package visitor

import "context"

// Store persists named counters
type Store interface {
	Increment(ctx context.Context, key string) (int64, error)
	Get(ctx context.Context, key string) (int64, error)
}

// Service handles visitor counter business logic
type Service struct {
	store Store
}

// NewService creates a new visitor service backed by store
func NewService(store Store) *Service {
	return &Service{store: store}
}

// RecordVisit counts one more page visit
func (s *Service) RecordVisit(ctx context.Context) (*Count, error) {
	n, err := s.store.Increment(ctx, CounterKey)
	if err != nil {
		return nil, err
	}
	return &Count{Key: CounterKey, Count: n}, nil
}

// Current returns the visit count without changing it
func (s *Service) Current(ctx context.Context) (*Count, error) {
	n, err := s.store.Get(ctx, CounterKey)
	if err != nil {
		return nil, err
	}
	return &Count{Key: CounterKey, Count: n}, nil
}
