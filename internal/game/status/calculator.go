package status

import (
	"fmt"
)

// GradeTable resolves a growth grade for each of the nine stats. It must
// be total over the enumerated kinds: implementations never fail for a
// valid kind, because the domain is closed and fully enumerated.
//
// race.Race is the canonical implementation.
type GradeTable interface {
	StatusGrade(kind Kind) Grade
}

// PartialGradeTable resolves an optional growth grade per stat: ok is
// false when the source does not contribute to the stat at all. job.Job
// is the canonical implementation; jobs without an MP pool carry no MP
// grade.
type PartialGradeTable interface {
	StatusGrade(kind Kind) (grade Grade, ok bool)
}

// ComputeRaw evaluates the base values for the given grade table at the
// given level without the final floor, for callers that stack further
// contributions before display.
//
// ComputeRaw is a pure function over immutable constant tables: identical
// inputs always yield identical Values, and concurrent calls need no
// synchronization.
//
// Precondition: grades must be non-nil and total over all nine kinds.
// Postcondition: Returns the accumulated Values, or an
// ErrInvalidArgument-wrapped error if level is outside [1,99].
func ComputeRaw(grades GradeTable, level int) (Values, error) {
	if grades == nil {
		panic("status: ComputeRaw: grades must be non-nil")
	}
	if level < MinLevel || level > MaxLevel {
		return Values{}, fmt.Errorf("%w: level %d outside [%d,%d]", ErrInvalidArgument, level, MinLevel, MaxLevel)
	}

	var out Values
	for _, kind := range Kinds {
		v, err := Calc(kind, grades.StatusGrade(kind), level)
		if err != nil {
			return Values{}, err
		}
		out = out.Add(kind, v)
	}
	return out, nil
}

// Compute evaluates the base status for the given grade table at the given
// level: each stat's grade is resolved through grades, run through the
// piecewise formula, and floored to an integer.
//
// Postcondition: Returns the assembled Status, or an
// ErrInvalidArgument-wrapped error if level is outside [1,99].
func Compute(grades GradeTable, level int) (Status, error) {
	vals, err := ComputeRaw(grades, level)
	if err != nil {
		return Status{}, err
	}
	return vals.Finalize(), nil
}
