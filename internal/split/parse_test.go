package split

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRatio(t *testing.T) {
	t.Run("accepts decimal numbers", func(t *testing.T) {
		for raw, want := range map[string]float64{
			"1":     1,
			"1.0":   1,
			" 1.5 ": 1.5,
			"0.25":  0.25,
			"3":     3,
			"1e-6":  0.000001,
			"1e6":   1000000,
		} {
			got, err := ParseRatio(raw)
			require.NoError(t, err, raw)
			require.Equal(t, want, got, raw)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "abc", "1.5x", "NaN", "Inf", "-Inf", "0", "0.0", "-1", "1e-400"} {
			_, err := ParseRatio(raw)
			require.ErrorIs(t, err, ErrInvalidRatio, raw)
		}
	})

	t.Run("rejects ratios outside the supported range", func(t *testing.T) {
		for _, raw := range []string{"1e-320", "0.0000009", "1000000.1", "1e308"} {
			_, err := ParseRatio(raw)
			require.ErrorIs(t, err, ErrInvalidRatio, raw)
		}
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("accepts whole positive amounts", func(t *testing.T) {
		for raw, want := range map[string]int64{
			"1000":    1000,
			" 100 ":   100,
			"1":       1,
			"2500.00": 2500,
		} {
			got, err := ParseAmount(raw)
			require.NoError(t, err, raw)
			require.Equal(t, want, got, raw)
		}

		got, err := ParseAmount("9007199254740992")
		require.NoError(t, err)
		require.Equal(t, MaxAmount, got)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "0", "-5", "10.5", "NaN", "Inf", "9007199254740993"} {
			_, err := ParseAmount(raw)
			require.ErrorIs(t, err, ErrInvalidTotal, raw)
		}
	})
}
