package participant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fkhayef/dutreat/internal/split"
)

func TestRegistry_Add(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		r := NewRegistry()
		require.True(t, r.IsEmpty())

		a, err := r.Add("  Aiko ", 1.5)
		require.NoError(t, err)
		require.Equal(t, Participant{ID: 1, Name: "Aiko", Ratio: 1.5}, a)

		b, err := r.Add("Ben", 1)
		require.NoError(t, err)
		require.NotEqual(t, a.ID, b.ID)

		require.False(t, r.IsEmpty())
		require.Equal(t, 2, r.Len())
		require.Equal(t, []Participant{a, b}, r.List())
	})

	t.Run("empty name", func(t *testing.T) {
		r := NewRegistry()
		for _, name := range []string{"", "   ", "\t\n"} {
			for _, ratio := range []float64{1, 0, -1, math.NaN()} {
				_, err := r.Add(name, ratio)
				require.ErrorIs(t, err, ErrEmptyName)
			}
		}
		require.True(t, r.IsEmpty())
	})

	t.Run("invalid ratio", func(t *testing.T) {
		r := NewRegistry()
		for _, ratio := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := r.Add("Aiko", ratio)
			require.ErrorIs(t, err, ErrInvalidRatio)
			require.ErrorIs(t, err, split.ErrInvalidRatio)
		}
		require.True(t, r.IsEmpty())
	})
}

func TestRegistry_Remove(t *testing.T) {
	t.Run("keeps order of the rest", func(t *testing.T) {
		r := NewRegistry()
		a, _ := r.Add("A", 1)
		b, _ := r.Add("B", 2)
		c, _ := r.Add("C", 3)

		r.Remove(b.ID)

		require.Equal(t, []Participant{a, c}, r.List())
		_, ok := r.Get(b.ID)
		require.False(t, ok)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		r := NewRegistry()
		_, _ = r.Add("A", 1)
		_, _ = r.Add("B", 2)
		before := r.List()

		r.Remove(42)

		require.Equal(t, before, r.List())
	})

	t.Run("ids are never reused", func(t *testing.T) {
		r := NewRegistry()
		a, _ := r.Add("A", 1)
		r.Remove(a.ID)
		require.True(t, r.IsEmpty())

		again, err := r.Add("A", 1)
		require.NoError(t, err)
		require.NotEqual(t, a.ID, again.ID)
	})
}

func TestRegistry_List_isSnapshot(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("A", 1)

	list := r.List()
	list[0].Name = "changed"

	p, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, "A", p.Name)
}

func TestRegistry_Inputs(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("A", 1)
	_, _ = r.Add("B", 1)
	_, _ = r.Add("C", 1)

	results, err := split.Compute(r.Inputs(), 100)
	require.NoError(t, err)
	require.Equal(t, []split.Result{
		{Name: "A", Ratio: 1, Amount: 34},
		{Name: "B", Ratio: 1, Amount: 33},
		{Name: "C", Ratio: 1, Amount: 33},
	}, results)
}
