package character

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Maru0137/ff11sim/internal/game/job"
	"github.com/Maru0137/ff11sim/internal/game/race"
	"github.com/Maru0137/ff11sim/internal/game/status"
)

// profileFile is the on-disk YAML shape of a CharacterProfile. Races and
// jobs are stored as their short tags so hand-edited files stay readable.
type profileFile struct {
	Name   string                  `yaml:"name"`
	Race   string                  `yaml:"race"`
	Jobs   map[string]jobLevelFile `yaml:"jobs"`
	Merits meritFile               `yaml:"merits,omitempty"`
}

type jobLevelFile struct {
	Level    int `yaml:"level"`
	MasterLv int `yaml:"master_lv,omitempty"`
}

type meritFile struct {
	HP  int `yaml:"hp,omitempty"`
	MP  int `yaml:"mp,omitempty"`
	STR int `yaml:"str,omitempty"`
	DEX int `yaml:"dex,omitempty"`
	VIT int `yaml:"vit,omitempty"`
	AGI int `yaml:"agi,omitempty"`
	INT int `yaml:"int,omitempty"`
	MND int `yaml:"mnd,omitempty"`
	CHR int `yaml:"chr,omitempty"`
}

// LoadProfile reads and validates a profile from a YAML file.
//
// Precondition: path must be a readable file.
// Postcondition: Returns a validated profile with a fresh ID, or a non-nil
// error naming what failed to parse or validate.
func LoadProfile(path string) (*CharacterProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
	}

	r, err := race.Parse(pf.Race)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	p, err := NewProfile(pf.Name, r)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	for tag, jl := range pf.Jobs {
		j, err := job.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", path, err)
		}
		if err := p.SetJobLevel(j, jl.Level, jl.MasterLv); err != nil {
			return nil, fmt.Errorf("profile %s: job %s: %w", path, j, err)
		}
	}

	p.Merits = status.MeritPoints{
		HP: pf.Merits.HP, MP: pf.Merits.MP,
		STR: pf.Merits.STR, DEX: pf.Merits.DEX, VIT: pf.Merits.VIT,
		AGI: pf.Merits.AGI, INT: pf.Merits.INT, MND: pf.Merits.MND,
		CHR: pf.Merits.CHR,
	}
	if err := p.Merits.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// SaveProfile writes the profile to path as YAML, jobs sorted by tag so
// the output is stable.
//
// Postcondition: On success, LoadProfile(path) reproduces an equivalent
// profile (the ID is not persisted).
func SaveProfile(path string, p *CharacterProfile) error {
	pf := profileFile{
		Name: p.Name,
		Race: p.Race.String(),
		Jobs: make(map[string]jobLevelFile, len(p.JobLevels)),
		Merits: meritFile{
			HP: p.Merits.HP, MP: p.Merits.MP,
			STR: p.Merits.STR, DEX: p.Merits.DEX, VIT: p.Merits.VIT,
			AGI: p.Merits.AGI, INT: p.Merits.INT, MND: p.Merits.MND,
			CHR: p.Merits.CHR,
		},
	}
	for j, jl := range p.JobLevels {
		pf.Jobs[j.String()] = jobLevelFile{Level: jl.Level, MasterLv: jl.MasterLv}
	}

	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("encoding profile %s: %w", p.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LeveledJobs returns the profile's leveled jobs in canonical job order.
func (p *CharacterProfile) LeveledJobs() []job.Job {
	jobs := make([]job.Job, 0, len(p.JobLevels))
	for j := range p.JobLevels {
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i] < jobs[k] })
	return jobs
}
