package visitor

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/dutreat/internal/database"
)

// newTestRepository connects to DATABASE_URL and migrates the schema.
// Tests using it are skipped when no database is configured.
func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := database.NewPostgresConnection(url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return NewRepository(db), db
}

// testKey returns a counter key no other run shares and removes its row afterwards
func testKey(t *testing.T, db *sql.DB) string {
	t.Helper()

	key := "test_" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM visitor_counters WHERE key = $1`, key)
	})
	return key
}

func TestRepository_IncrementAndGet(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()
	key := testKey(t, db)

	count, err := repo.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	for want := int64(1); want <= 2; want++ {
		count, err = repo.Increment(ctx, key)
		require.NoError(t, err)
		require.Equal(t, want, count)
	}

	count, err = repo.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestRepository_concurrentIncrements(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()
	key := testKey(t, db)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Increment(ctx, key)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	count, err := repo.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, int64(20), count)
}

func TestRepository_closedDatabase(t *testing.T) {
	db, err := sql.Open("postgres", "postgres://localhost/dutreat?sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	repo := NewRepository(db)
	ctx := context.Background()

	_, err = repo.Increment(ctx, CounterKey)
	require.ErrorContains(t, err, "failed to increment counter")
	require.ErrorContains(t, err, "database is closed")

	_, err = repo.Get(ctx, CounterKey)
	require.ErrorContains(t, err, "failed to get counter")
	require.ErrorContains(t, err, "database is closed")
}
