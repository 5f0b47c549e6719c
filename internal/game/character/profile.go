package character

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Maru0137/ff11sim/internal/game/job"
	"github.com/Maru0137/ff11sim/internal/game/race"
	"github.com/Maru0137/ff11sim/internal/game/status"
)

// JobLevel is the recorded progress on a single job. A zero Level means
// the job has never been leveled.
type JobLevel struct {
	Level    int
	MasterLv int
}

// CharacterProfile is a named, persistent character: its race, progress on
// every job, and invested merit points. Profiles are mutable while being
// edited; ToChara snapshots one job combination into an immutable Chara.
type CharacterProfile struct {
	ID        uuid.UUID
	Name      string
	Race      race.Race
	JobLevels map[job.Job]JobLevel
	Merits    status.MeritPoints

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile creates an empty profile with a fresh ID and no leveled jobs.
//
// Precondition: name must be non-empty; r must be an enumerated race.
func NewProfile(name string, r race.Race) (*CharacterProfile, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if !r.Valid() {
		return nil, &ValidationError{Field: "race", Reason: fmt.Sprintf("unknown race %d", int(r))}
	}
	return &CharacterProfile{
		ID:        uuid.New(),
		Name:      name,
		Race:      r,
		JobLevels: make(map[job.Job]JobLevel),
	}, nil
}

// SetJobLevel records progress on a job. Level 0 with master level 0
// clears the entry.
//
// Postcondition: Returns nil and updates the profile, or a
// *ValidationError for an out-of-range level or master level.
func (p *CharacterProfile) SetJobLevel(j job.Job, level, masterLv int) error {
	if !j.Valid() {
		return &ValidationError{Field: "job", Reason: fmt.Sprintf("unknown job %d", int(j))}
	}
	if level < 0 || level > status.MaxLevel {
		return &ValidationError{
			Field:  "level",
			Reason: fmt.Sprintf("must be in [0,%d], got %d", status.MaxLevel, level),
		}
	}
	if masterLv < 0 || masterLv > status.MaxMasterLevel {
		return &ValidationError{
			Field:  "master_lv",
			Reason: fmt.Sprintf("must be in [0,%d], got %d", status.MaxMasterLevel, masterLv),
		}
	}
	if p.JobLevels == nil {
		p.JobLevels = make(map[job.Job]JobLevel)
	}
	if level == 0 && masterLv == 0 {
		delete(p.JobLevels, j)
		return nil
	}
	p.JobLevels[j] = JobLevel{Level: level, MasterLv: masterLv}
	return nil
}

// SupportLevelCap returns the highest support level usable under the given
// main job progress: mainLv/2 plus masterLv/5, both integer-divided.
func SupportLevelCap(mainLv, masterLv int) int {
	return mainLv/2 + masterLv/5
}

// ToChara builds an immutable Chara for one job combination. The support
// job's effective level is capped at SupportLevelCap of the main job's
// progress; a support job capped to level 0 is dropped entirely.
//
// Postcondition: Returns the built Chara, or an error if either job has no
// recorded levels or the build validation fails.
func (p *CharacterProfile) ToChara(mainJob job.Job, supportJob *job.Job) (*Chara, error) {
	main, ok := p.JobLevels[mainJob]
	if !ok || main.Level == 0 {
		return nil, fmt.Errorf("job %s is not leveled", mainJob)
	}

	b := NewBuilder().
		Race(p.Race).
		MainJob(mainJob, main.Level).
		MasterLevel(main.MasterLv).
		MeritPoints(p.Merits)

	if supportJob != nil {
		sub, ok := p.JobLevels[*supportJob]
		if !ok || sub.Level == 0 {
			return nil, fmt.Errorf("support job %s is not leveled", *supportJob)
		}
		effective := min(sub.Level, SupportLevelCap(main.Level, main.MasterLv))
		if effective > 0 {
			b.SupportJob(*supportJob, effective)
		}
	}

	return b.Build()
}
