package status

import (
	"fmt"
	"math"
)

// halfDown truncates x down to the nearest half point. The game applies
// this per growth term, so fractional slopes only surface every few levels.
func halfDown(x float64) float64 {
	return math.Floor(x*2) / 2
}

// Calc evaluates the piecewise growth formula for a single stat: the
// grade's level-1 base plus one half-point-truncated term per level band,
// and for HP/MP an additional bonus term covering levels above 30.
//
// The bands are cumulative, so the value is continuous across the 60/61
// and 75/76 boundaries and non-decreasing in level. Arithmetic is float64
// throughout; only the per-term half-point truncation discards precision.
//
// Precondition: kind and grade must be enumerated values (panics otherwise).
// Postcondition: Returns the stat value, or an ErrInvalidArgument-wrapped
// error if level is outside [1,99].
func Calc(kind Kind, grade Grade, level int) (float64, error) {
	if !kind.Valid() {
		panic(fmt.Sprintf("status: Calc: unknown stat kind %d", int(kind)))
	}
	if !grade.Valid() {
		panic(fmt.Sprintf("status: Calc: unknown grade %d", int(grade)))
	}
	if level < MinLevel || level > MaxLevel {
		return 0, fmt.Errorf("%w: level %d outside [%d,%d]", ErrInvalidArgument, level, MinLevel, MaxLevel)
	}

	v := base(kind, grade)
	v += halfDown(slope(kind, grade, 2) * float64(min(level-1, bandLowCap)))
	v += halfDown(slope(kind, grade, 61) * float64(min(max(level-60, 0), bandMidCap)))
	v += halfDown(slope(kind, grade, 76) * float64(max(level-75, 0)))

	if kind.IsHPMP() {
		v += halfDown(bonusSlope(grade) * float64(max(level-bonusLevel, 0)))
	}
	return v, nil
}
