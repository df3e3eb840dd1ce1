package visitor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) Increment(context.Context, string) (int64, error) { return 0, f.err }
func (f failingStore) Get(context.Context, string) (int64, error)       { return 0, f.err }

func TestService_RecordVisit(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryStore())

	current, err := s.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), current.Count)

	for want := int64(1); want <= 3; want++ {
		count, err := s.RecordVisit(ctx)
		require.NoError(t, err)
		require.Equal(t, want, count.Count)
		require.Equal(t, CounterKey, count.Key)
	}

	current, err = s.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), current.Count)
}

func TestService_storeError(t *testing.T) {
	boom := errors.New("boom")
	s := NewService(failingStore{err: boom})

	_, err := s.RecordVisit(context.Background())
	require.ErrorIs(t, err, boom)

	_, err = s.Current(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestMemoryStore_concurrentIncrements(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Increment(ctx, CounterKey)
		}()
	}
	wg.Wait()

	n, err := m.Get(ctx, CounterKey)
	require.NoError(t, err)
	require.Equal(t, int64(100), n)

	other, err := m.Get(ctx, "other")
	require.NoError(t, err)
	require.Equal(t, int64(0), other)
}
