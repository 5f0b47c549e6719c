// Package character defines the character domain model: the immutable
// Chara snapshot the status engine consumes, its validating builder, and
// named profiles that track levels across every job.
package character

import (
	"github.com/Maru0137/ff11sim/internal/game/job"
	"github.com/Maru0137/ff11sim/internal/game/race"
	"github.com/Maru0137/ff11sim/internal/game/status"
)

// Chara is a fully validated character snapshot. Build one through
// Builder; once built it is never mutated, so it is safe to share across
// goroutines.
type Chara struct {
	Race    race.Race
	MainJob job.Job
	MainLv  int

	// SupportJob and SupportLv are set together; HasSupport reports
	// whether they are meaningful.
	SupportJob job.Job
	SupportLv  int
	hasSupport bool

	MasterLv int
	Merits   status.MeritPoints
}

// HasSupport reports whether a support job is set.
func (c *Chara) HasSupport() bool {
	return c.hasSupport
}

// BaseStatus computes the race-driven base status at the main job's level,
// before any modifier pipeline runs.
//
// Postcondition: Returns the base Status; never fails, because the builder
// has already bounded MainLv to [1,99].
func (c *Chara) BaseStatus() status.Status {
	s, err := status.Compute(c.Race, c.MainLv)
	if err != nil {
		// Unreachable: the builder validated MainLv.
		panic("character: BaseStatus: " + err.Error())
	}
	return s
}

// Status computes the character's displayed status: the race base plus
// the main job's grade contribution at the main level, half the support
// job's at the support level, then the master-level and merit bonuses,
// floored once at the end so half-point fractions from separate sources
// can still combine. A main job without an MP pool shows 0 MP regardless
// of the race's own MP growth.
func (c *Chara) Status() status.Status {
	vals, err := status.ComputeRaw(c.Race, c.MainLv)
	if err != nil {
		// Unreachable: the builder validated MainLv.
		panic("character: Status: " + err.Error())
	}

	var support status.PartialGradeTable
	if c.hasSupport {
		support = c.SupportJob
	}

	vals = status.ApplyAll(vals,
		status.JobModifier(c.MainJob, c.MainLv, support, c.SupportLv),
		status.MasterLevelModifier(c.MasterLv, c.MainJob.HasMP()),
		status.MeritModifier(c.Merits),
	)

	s := vals.Finalize()
	if !c.MainJob.HasMP() {
		s.MP = 0
	}
	return s
}
