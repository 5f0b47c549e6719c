// Package job defines the twenty-two playable jobs and their per-stat
// growth grades. Unlike the race matrix, job grades are partial: jobs
// without an MP pool have no MP grade at all.
package job

import (
	"fmt"
	"strings"

	"github.com/Maru0137/ff11sim/internal/game/status"
)

// Job is one of the playable jobs.
type Job int

const (
	War Job = iota
	Mnk
	Whm
	Blm
	Rdm
	Thf
	Pld
	Drk
	Bst
	Brd
	Rng
	Sam
	Nin
	Drg
	Smn
	Blu
	Cor
	Pup
	Dnc
	Sch
	Geo
	Run

	jobCount = 22
)

// Jobs lists every job in canonical order.
var Jobs = [jobCount]Job{
	War, Mnk, Whm, Blm, Rdm, Thf, Pld, Drk, Bst, Brd, Rng,
	Sam, Nin, Drg, Smn, Blu, Cor, Pup, Dnc, Sch, Geo, Run,
}

// none marks a stat the job does not contribute to.
const none status.Grade = -1

// statusGrades maps each job to its stat grades in status.Kinds order.
// Data from https://wiki.ffo.jp/html/316.html.
var statusGrades = [jobCount][9]status.Grade{
	War: {status.GradeB, none, status.GradeA, status.GradeC, status.GradeD, status.GradeC, status.GradeF, status.GradeF, status.GradeE},
	Mnk: {status.GradeA, none, status.GradeC, status.GradeB, status.GradeA, status.GradeF, status.GradeG, status.GradeD, status.GradeE},
	Whm: {status.GradeE, status.GradeC, status.GradeD, status.GradeF, status.GradeD, status.GradeE, status.GradeE, status.GradeA, status.GradeC},
	Blm: {status.GradeF, status.GradeB, status.GradeF, status.GradeC, status.GradeF, status.GradeC, status.GradeA, status.GradeE, status.GradeD},
	Rdm: {status.GradeD, status.GradeD, status.GradeD, status.GradeD, status.GradeE, status.GradeE, status.GradeC, status.GradeC, status.GradeD},
	Thf: {status.GradeD, none, status.GradeD, status.GradeA, status.GradeD, status.GradeB, status.GradeC, status.GradeG, status.GradeG},
	Pld: {status.GradeC, status.GradeF, status.GradeB, status.GradeE, status.GradeA, status.GradeG, status.GradeG, status.GradeC, status.GradeC},
	Drk: {status.GradeC, status.GradeF, status.GradeA, status.GradeC, status.GradeC, status.GradeD, status.GradeC, status.GradeG, status.GradeG},
	Bst: {status.GradeC, none, status.GradeD, status.GradeC, status.GradeD, status.GradeF, status.GradeE, status.GradeE, status.GradeA},
	Brd: {status.GradeD, none, status.GradeD, status.GradeD, status.GradeD, status.GradeF, status.GradeD, status.GradeD, status.GradeB},
	Rng: {status.GradeE, none, status.GradeE, status.GradeD, status.GradeD, status.GradeA, status.GradeE, status.GradeD, status.GradeE},
	Sam: {status.GradeB, none, status.GradeC, status.GradeC, status.GradeC, status.GradeD, status.GradeE, status.GradeE, status.GradeD},
	Nin: {status.GradeD, none, status.GradeC, status.GradeB, status.GradeC, status.GradeB, status.GradeD, status.GradeG, status.GradeF},
	Drg: {status.GradeB, none, status.GradeB, status.GradeD, status.GradeC, status.GradeD, status.GradeF, status.GradeE, status.GradeC},
	Smn: {status.GradeG, status.GradeA, status.GradeF, status.GradeE, status.GradeF, status.GradeD, status.GradeB, status.GradeB, status.GradeB},
	Blu: {status.GradeD, status.GradeD, status.GradeE, status.GradeE, status.GradeE, status.GradeE, status.GradeE, status.GradeE, status.GradeE},
	Cor: {status.GradeD, none, status.GradeE, status.GradeC, status.GradeE, status.GradeB, status.GradeC, status.GradeE, status.GradeE},
	Pup: {status.GradeD, none, status.GradeE, status.GradeB, status.GradeD, status.GradeC, status.GradeE, status.GradeF, status.GradeC},
	Dnc: {status.GradeD, none, status.GradeD, status.GradeC, status.GradeE, status.GradeB, status.GradeF, status.GradeF, status.GradeB},
	Sch: {status.GradeE, status.GradeD, status.GradeF, status.GradeD, status.GradeE, status.GradeD, status.GradeB, status.GradeD, status.GradeC},
	Geo: {status.GradeD, status.GradeC, status.GradeF, status.GradeD, status.GradeD, status.GradeE, status.GradeB, status.GradeB, status.GradeE},
	Run: {status.GradeB, status.GradeF, status.GradeC, status.GradeD, status.GradeE, status.GradeB, status.GradeD, status.GradeD, status.GradeF},
}

// Valid reports whether j is one of the enumerated jobs.
func (j Job) Valid() bool {
	return j >= War && j <= Run
}

// StatusGrade returns the job's growth grade for the given stat. ok is
// false when the job does not contribute to that stat (for example, MP on
// melee jobs).
//
// Precondition: j and kind must be enumerated values (panics otherwise).
func (j Job) StatusGrade(kind status.Kind) (grade status.Grade, ok bool) {
	if !j.Valid() {
		panic(fmt.Sprintf("job: StatusGrade: unknown job %d", int(j)))
	}
	if !kind.Valid() {
		panic(fmt.Sprintf("job: StatusGrade: unknown stat kind %d", int(kind)))
	}
	g := statusGrades[j][kind]
	if g == none {
		return 0, false
	}
	return g, true
}

// HasMP reports whether the job has an MP pool at all. Master-level MP
// bonuses only apply to jobs that do.
func (j Job) HasMP() bool {
	_, ok := j.StatusGrade(status.KindMP)
	return ok
}

var jobStrings = [jobCount]string{
	"War", "Mnk", "Whm", "Blm", "Rdm", "Thf", "Pld", "Drk", "Bst", "Brd", "Rng",
	"Sam", "Nin", "Drg", "Smn", "Blu", "Cor", "Pup", "Dnc", "Sch", "Geo", "Run",
}

var jobNames = [jobCount]string{
	"Warrior", "Monk", "White Mage", "Black Mage", "Red Mage", "Thief",
	"Paladin", "Dark Knight", "Beastmaster", "Bard", "Ranger", "Samurai",
	"Ninja", "Dragoon", "Summoner", "Blue Mage", "Corsair", "Puppetmaster",
	"Dancer", "Scholar", "Geomancer", "Rune Fencer",
}

func (j Job) String() string {
	if !j.Valid() {
		return fmt.Sprintf("Job(%d)", int(j))
	}
	return jobStrings[j]
}

// Name returns the full display name of the job.
func (j Job) Name() string {
	if !j.Valid() {
		return fmt.Sprintf("Job(%d)", int(j))
	}
	return jobNames[j]
}

// Parse resolves a job from its three-letter tag or full name,
// case-insensitively.
//
// Postcondition: Returns the job, or a non-nil error for unknown input.
func Parse(s string) (Job, error) {
	want := strings.ToLower(s)
	for _, j := range Jobs {
		if want == strings.ToLower(jobStrings[j]) || want == strings.ToLower(jobNames[j]) {
			return j, nil
		}
	}
	return 0, fmt.Errorf("unknown job %q", s)
}
