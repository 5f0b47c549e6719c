package character

import (
	"fmt"

	"github.com/Maru0137/ff11sim/internal/game/job"
	"github.com/Maru0137/ff11sim/internal/game/race"
	"github.com/Maru0137/ff11sim/internal/game/status"
)

// ValidationError reports a field that violated a construction constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Builder assembles a Chara, deferring all validation to Build so callers
// can chain setters freely. The zero Builder is not usable; start with
// NewBuilder.
type Builder struct {
	race       race.Race
	hasRace    bool
	mainJob    job.Job
	mainLv     int
	hasMainJob bool
	supportJob job.Job
	supportLv  int
	hasSupport bool
	masterLv   int
	merits     status.MeritPoints
}

// NewBuilder returns a Builder with no fields set and master level 0.
func NewBuilder() *Builder {
	return &Builder{}
}

// Race sets the character's race.
func (b *Builder) Race(r race.Race) *Builder {
	b.race = r
	b.hasRace = true
	return b
}

// MainJob sets the main job and its level.
func (b *Builder) MainJob(j job.Job, lv int) *Builder {
	b.mainJob = j
	b.mainLv = lv
	b.hasMainJob = true
	return b
}

// SupportJob sets the optional support job and its level.
func (b *Builder) SupportJob(j job.Job, lv int) *Builder {
	b.supportJob = j
	b.supportLv = lv
	b.hasSupport = true
	return b
}

// MasterLevel sets the master level; it defaults to 0 when never called.
func (b *Builder) MasterLevel(lv int) *Builder {
	b.masterLv = lv
	return b
}

// MeritPoints sets the invested merit ranks; they default to zero.
func (b *Builder) MeritPoints(m status.MeritPoints) *Builder {
	b.merits = m
	return b
}

// Build validates every field and returns the immutable Chara.
//
// Postcondition: Returns a Chara with all fields within their documented
// ranges, or a *ValidationError naming the first offending field.
func (b *Builder) Build() (*Chara, error) {
	if !b.hasRace {
		return nil, &ValidationError{Field: "race", Reason: "required"}
	}
	if !b.race.Valid() {
		return nil, &ValidationError{Field: "race", Reason: fmt.Sprintf("unknown race %d", int(b.race))}
	}
	if !b.hasMainJob {
		return nil, &ValidationError{Field: "main_job", Reason: "required"}
	}
	if !b.mainJob.Valid() {
		return nil, &ValidationError{Field: "main_job", Reason: fmt.Sprintf("unknown job %d", int(b.mainJob))}
	}
	if b.mainLv < status.MinLevel || b.mainLv > status.MaxLevel {
		return nil, &ValidationError{
			Field:  "main_lv",
			Reason: fmt.Sprintf("must be in [%d,%d], got %d", status.MinLevel, status.MaxLevel, b.mainLv),
		}
	}
	if b.hasSupport {
		if !b.supportJob.Valid() {
			return nil, &ValidationError{Field: "support_job", Reason: fmt.Sprintf("unknown job %d", int(b.supportJob))}
		}
		if b.supportLv < status.MinLevel || b.supportLv > status.MaxLevel {
			return nil, &ValidationError{
				Field:  "support_lv",
				Reason: fmt.Sprintf("must be in [%d,%d], got %d", status.MinLevel, status.MaxLevel, b.supportLv),
			}
		}
	}
	if b.masterLv < 0 || b.masterLv > status.MaxMasterLevel {
		return nil, &ValidationError{
			Field:  "master_lv",
			Reason: fmt.Sprintf("must be in [0,%d], got %d", status.MaxMasterLevel, b.masterLv),
		}
	}
	if err := b.merits.Validate(); err != nil {
		return nil, &ValidationError{Field: "merit_points", Reason: err.Error()}
	}

	return &Chara{
		Race:       b.race,
		MainJob:    b.mainJob,
		MainLv:     b.mainLv,
		SupportJob: b.supportJob,
		SupportLv:  b.supportLv,
		hasSupport: b.hasSupport,
		MasterLv:   b.masterLv,
		Merits:     b.merits,
	}, nil
}
