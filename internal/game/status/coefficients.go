package status

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors returned for out-of-range levels.
// Construction-time validation should make this unreachable in normal use,
// but the engine still defends its own contract.
var ErrInvalidArgument = errors.New("invalid argument")

// Level bands for the piecewise growth formula. Level 1 has no band: its
// value is the grade's fixed base, not formula-derived.
const (
	MinLevel = 1
	MaxLevel = 99

	bandLowCap = 59 // levels of growth inside [2,60]
	bandMidCap = 15 // levels of growth inside [61,75]
	bonusLevel = 30 // HP/MP bonus activates strictly above this level

	// MaxMasterLevel caps the master level of a fully leveled job.
	MaxMasterLevel = 50
	// MaxMeritRank caps the merit ranks invested in a single stat.
	MaxMeritRank = 15
)

// gradeCoefHPMP holds, per grade: the level-1 base, the per-level slope in
// each of the bands [2,60], [61,75], [76,99], and the post-30 bonus slope.
// Rows are ordered GradeA..GradeG.
var gradeCoefHPMP = [gradeCount][5]float64{
	{19, 9, 3, 3, 1},
	{17, 8, 3, 3, 1},
	{16, 7, 3, 3, 1},
	{14, 6, 3, 3, 0},
	{13, 5, 2, 2, 0},
	{11, 4, 2, 2, 0},
	{10, 3, 2, 2, 0},
}

// gradeCoefBP holds, per grade: the level-1 base and the per-level slope in
// each band. BP stats have no post-30 bonus term.
var gradeCoefBP = [gradeCount][4]float64{
	{5, 0.5, 0.11, 0.39},
	{4, 0.45, 0.21, 0.39},
	{4, 0.4, 0.29, 0.39},
	{3, 0.35, 0.34, 0.39},
	{3, 0.3, 0.34, 0.39},
	{2, 0.25, 0.39, 0.39},
	{2, 0.2, 0.42, 0.39},
}

// CoefficientEntry is one grade's growth numbers for one level band.
type CoefficientEntry struct {
	// Base is the fixed level-1 value for the grade.
	Base float64
	// Slope is the per-level increment within the band.
	Slope float64
	// Bonus is the post-30 per-level bonus slope; zero for BP stats and
	// for grades whose HP/MP growth carries no bonus.
	Bonus float64
}

// Coefficients resolves level to its band and returns the coefficient
// entry for (kind's table, grade, band). The HP/MP table serves KindHP and
// KindMP; the BP table serves the remaining seven stats.
//
// Precondition: kind and grade must be enumerated values (panics otherwise).
// Postcondition: Returns the entry, or an ErrInvalidArgument-wrapped error
// if level is outside [1,99].
func Coefficients(kind Kind, grade Grade, level int) (CoefficientEntry, error) {
	if !kind.Valid() {
		panic(fmt.Sprintf("status: Coefficients: unknown stat kind %d", int(kind)))
	}
	if !grade.Valid() {
		panic(fmt.Sprintf("status: Coefficients: unknown grade %d", int(grade)))
	}
	if level < MinLevel || level > MaxLevel {
		return CoefficientEntry{}, fmt.Errorf("%w: level %d outside [%d,%d]", ErrInvalidArgument, level, MinLevel, MaxLevel)
	}

	if kind.IsHPMP() {
		row := gradeCoefHPMP[grade]
		return CoefficientEntry{Base: row[0], Slope: row[bandIndex(level)], Bonus: row[4]}, nil
	}
	row := gradeCoefBP[grade]
	return CoefficientEntry{Base: row[0], Slope: row[bandIndex(level)]}, nil
}

// bandIndex maps a level in [1,99] to the coefficient column of its band.
// Level 1 shares the [2,60] column; callers never apply it (zero levels of
// growth at level 1).
func bandIndex(level int) int {
	switch {
	case level <= 60:
		return 1
	case level <= 75:
		return 2
	default:
		return 3
	}
}

func base(kind Kind, grade Grade) float64 {
	if kind.IsHPMP() {
		return gradeCoefHPMP[grade][0]
	}
	return gradeCoefBP[grade][0]
}

func slope(kind Kind, grade Grade, level int) float64 {
	if kind.IsHPMP() {
		return gradeCoefHPMP[grade][bandIndex(level)]
	}
	return gradeCoefBP[grade][bandIndex(level)]
}

func bonusSlope(grade Grade) float64 {
	return gradeCoefHPMP[grade][4]
}
