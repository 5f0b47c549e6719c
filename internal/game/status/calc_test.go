package status_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Maru0137/ff11sim/internal/game/status"
)

// halfDown mirrors the engine's per-term truncation for expected values.
func halfDown(x float64) float64 {
	return math.Floor(x*2) / 2
}

// TestCalc_Level1IsBase verifies that level 1 returns the grade's fixed
// base with no formula applied, for both tables.
func TestCalc_Level1IsBase(t *testing.T) {
	for _, g := range status.Grades {
		for _, kind := range status.Kinds {
			v, err := status.Calc(kind, g, 1)
			require.NoError(t, err)

			entry, err := status.Coefficients(kind, g, 1)
			require.NoError(t, err)
			assert.Equal(t, entry.Base, v, "grade %s %s at level 1 must be the base", g, kind)
		}
	}
}

// TestCalc_GoldenHPGradeD pins the HP growth curve for grade D (the Hume
// row) at the band boundaries and bonus threshold.
func TestCalc_GoldenHPGradeD(t *testing.T) {
	golden := map[int]float64{
		1:  14,
		2:  20,
		30: 188,
		31: 194,
		60: 368,
		61: 371,
		75: 413,
		76: 416,
		99: 485,
	}
	for lv, want := range golden {
		v, err := status.Calc(status.KindHP, status.GradeD, lv)
		require.NoError(t, err)
		assert.Equal(t, want, v, "grade D HP at level %d", lv)
	}
}

// TestCalc_GoldenHPGradeA pins the grade A curve, which carries the
// post-30 bonus.
func TestCalc_GoldenHPGradeA(t *testing.T) {
	golden := map[int]float64{
		1:  19,
		30: 280,
		31: 290, // +9 growth, +1 bonus
		60: 580,
		99: 736,
	}
	for lv, want := range golden {
		v, err := status.Calc(status.KindHP, status.GradeA, lv)
		require.NoError(t, err)
		assert.Equal(t, want, v, "grade A HP at level %d", lv)
	}
}

// TestCalc_NonDecreasing verifies monotonic growth for every grade and
// every stat kind over the whole level range.
func TestCalc_NonDecreasing(t *testing.T) {
	for _, g := range status.Grades {
		for _, kind := range status.Kinds {
			prev, err := status.Calc(kind, g, 1)
			require.NoError(t, err)
			for lv := 2; lv <= 99; lv++ {
				v, err := status.Calc(kind, g, lv)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, v, prev, "grade %s %s must not shrink at level %d", g, kind, lv)
				prev = v
			}
		}
	}
}

// TestCalc_BandContinuity verifies that crossing the 60/61 and 75/76
// boundaries adds exactly one level-increment of the new band: the bands
// are cumulative, so no discontinuity jump is possible unless the tables
// disagree with the formula.
func TestCalc_BandContinuity(t *testing.T) {
	boundaries := []struct {
		last, first int
	}{
		{60, 61},
		{75, 76},
	}
	for _, g := range status.Grades {
		for _, kind := range status.Kinds {
			for _, b := range boundaries {
				lo, err := status.Calc(kind, g, b.last)
				require.NoError(t, err)
				hi, err := status.Calc(kind, g, b.first)
				require.NoError(t, err)

				entry, err := status.Coefficients(kind, g, b.first)
				require.NoError(t, err)

				want := halfDown(entry.Slope)
				if kind.IsHPMP() {
					// The post-30 bonus also advances one level here.
					want += entry.Bonus
				}
				assert.Equal(t, want, hi-lo,
					"grade %s %s: level %d -> %d must add one %d-band increment",
					g, kind, b.last, b.first, b.first)
			}
		}
	}
}

// TestCalc_BonusInactiveThrough30 verifies the HP/MP bonus term is exactly
// zero for all levels up to 30: the value must equal the base plus the
// low-band growth alone.
func TestCalc_BonusInactiveThrough30(t *testing.T) {
	for _, g := range status.Grades {
		for _, kind := range []status.Kind{status.KindHP, status.KindMP} {
			entry, err := status.Coefficients(kind, g, 2)
			require.NoError(t, err)
			for lv := 1; lv <= 30; lv++ {
				v, err := status.Calc(kind, g, lv)
				require.NoError(t, err)
				want := entry.Base + halfDown(entry.Slope*float64(lv-1))
				assert.Equal(t, want, v, "grade %s %s at level %d must carry no bonus", g, kind, lv)
			}
		}
	}
}

// TestCalc_BonusNonNegativeAbove30 verifies the bonus term never reduces
// HP/MP once active.
func TestCalc_BonusNonNegativeAbove30(t *testing.T) {
	for _, g := range status.Grades {
		for _, kind := range []status.Kind{status.KindHP, status.KindMP} {
			entry, err := status.Coefficients(kind, g, 2)
			require.NoError(t, err)
			for lv := 31; lv <= 60; lv++ {
				v, err := status.Calc(kind, g, lv)
				require.NoError(t, err)
				withoutBonus := entry.Base + halfDown(entry.Slope*float64(lv-1))
				assert.GreaterOrEqual(t, v, withoutBonus,
					"grade %s %s at level %d: bonus must be non-negative", g, kind, lv)
			}
		}
	}
}

// TestCalc_LevelOutOfRange verifies the InvalidArgument contract.
func TestCalc_LevelOutOfRange(t *testing.T) {
	for _, lv := range []int{-1, 0, 100, 1000} {
		_, err := status.Calc(status.KindHP, status.GradeA, lv)
		require.Error(t, err, "level %d must be rejected", lv)
		assert.ErrorIs(t, err, status.ErrInvalidArgument)
	}
}

// TestCalc_PanicsOnInvalidEnums verifies that closed-domain misuse is a
// programming error, not an error return.
func TestCalc_PanicsOnInvalidEnums(t *testing.T) {
	assert.Panics(t, func() { _, _ = status.Calc(status.Kind(42), status.GradeA, 10) })
	assert.Panics(t, func() { _, _ = status.Calc(status.KindHP, status.Grade(-3), 10) })
}

// TestCalc_Deterministic uses property-based testing to verify that
// repeated evaluations of arbitrary in-range inputs are bit-identical.
func TestCalc_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom(status.Kinds[:]).Draw(rt, "kind")
		grade := rapid.SampledFrom(status.Grades[:]).Draw(rt, "grade")
		lv := rapid.IntRange(1, 99).Draw(rt, "lv")

		a, err := status.Calc(kind, grade, lv)
		require.NoError(rt, err)
		b, err := status.Calc(kind, grade, lv)
		require.NoError(rt, err)
		assert.Equal(rt, a, b, "Calc must be deterministic")
	})
}

// TestCoefficients_TotalOverGradeAndBand verifies every (grade, band)
// pair resolves for both tables, with positive base and non-negative
// slopes.
func TestCoefficients_TotalOverGradeAndBand(t *testing.T) {
	bandLevels := []int{2, 61, 76}
	for _, g := range status.Grades {
		for _, kind := range status.Kinds {
			for _, lv := range bandLevels {
				entry, err := status.Coefficients(kind, g, lv)
				require.NoError(t, err, "grade %s %s level %d", g, kind, lv)
				assert.Greater(t, entry.Base, 0.0)
				assert.Greater(t, entry.Slope, 0.0, "a band with no growth is a data defect")
				assert.GreaterOrEqual(t, entry.Bonus, 0.0)
			}
		}
	}
}

// TestCoefficients_BPHasNoBonus verifies the BP table never exposes a
// post-30 bonus slope.
func TestCoefficients_BPHasNoBonus(t *testing.T) {
	bpKinds := []status.Kind{
		status.KindSTR, status.KindDEX, status.KindVIT, status.KindAGI,
		status.KindINT, status.KindMND, status.KindCHR,
	}
	for _, g := range status.Grades {
		for _, kind := range bpKinds {
			entry, err := status.Coefficients(kind, g, 50)
			require.NoError(t, err)
			assert.Zero(t, entry.Bonus, "grade %s %s must carry no bonus slope", g, kind)
		}
	}
}

// TestCoefficients_LevelOutOfRange verifies the lookup defends its own
// contract even though validated callers never reach this path.
func TestCoefficients_LevelOutOfRange(t *testing.T) {
	_, err := status.Coefficients(status.KindSTR, status.GradeC, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)

	_, err = status.Coefficients(status.KindSTR, status.GradeC, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)
}
