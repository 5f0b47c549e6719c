package status

import "fmt"

// Tag names the capability a status modifier derives from. The base
// calculation is race-driven; everything else layers on top as an ordered
// pipeline of pure Values -> Values functions, floored once after the
// whole pipeline has run.
type Tag string

const (
	TagJob         Tag = "job"
	TagMasterLevel Tag = "master_level"
	TagMerit       Tag = "merit"
)

// Modifier is one stage of the post-calculation pipeline. Apply must be a
// pure function: no shared state, no mutation of its argument.
type Modifier struct {
	Tag   Tag
	Apply func(Values) Values
}

// ApplyAll runs base through the modifier pipeline in order and returns
// the accumulated Values. An empty pipeline returns base unchanged.
func ApplyAll(base Values, mods ...Modifier) Values {
	out := base
	for _, m := range mods {
		if m.Apply == nil {
			panic(fmt.Sprintf("status: ApplyAll: modifier %q has nil Apply", m.Tag))
		}
		out = m.Apply(out)
	}
	return out
}

// JobModifier returns the pipeline stage for the job contribution: the
// main job's grades evaluated at the main level, plus half the support
// job's grades at the support level. Stats a job carries no grade for
// contribute nothing. Pass a nil support when no support job is set;
// supportLv is ignored in that case.
//
// Precondition: main must be non-nil and mainLv in [MinLevel, MaxLevel];
// with a non-nil support, supportLv likewise (panics otherwise).
func JobModifier(main PartialGradeTable, mainLv int, support PartialGradeTable, supportLv int) Modifier {
	if main == nil {
		panic("status: JobModifier: main must be non-nil")
	}
	if mainLv < MinLevel || mainLv > MaxLevel {
		panic(fmt.Sprintf("status: JobModifier: main level %d outside [%d,%d]", mainLv, MinLevel, MaxLevel))
	}
	if support != nil && (supportLv < MinLevel || supportLv > MaxLevel) {
		panic(fmt.Sprintf("status: JobModifier: support level %d outside [%d,%d]", supportLv, MinLevel, MaxLevel))
	}
	return Modifier{
		Tag: TagJob,
		Apply: func(v Values) Values {
			for _, kind := range Kinds {
				if g, ok := main.StatusGrade(kind); ok {
					v = v.Add(kind, mustCalc(kind, g, mainLv))
				}
				if support == nil {
					continue
				}
				if g, ok := support.StatusGrade(kind); ok {
					v = v.Add(kind, mustCalc(kind, g, supportLv)/2)
				}
			}
			return v
		},
	}
}

// mustCalc evaluates the growth formula for a level already validated by
// the modifier constructor.
func mustCalc(kind Kind, grade Grade, level int) float64 {
	v, err := Calc(kind, grade, level)
	if err != nil {
		panic("status: mustCalc: " + err.Error())
	}
	return v
}

// masterLevelBonus is the per-master-level stat bonus: +7 HP, +2 MP, +1
// for each BP stat. The MP bonus only applies when the main job has an MP
// grade at all.
var masterLevelBonus = [kindCount]int{7, 2, 1, 1, 1, 1, 1, 1, 1}

// MasterLevelModifier returns the pipeline stage for a character's master
// level. mainJobHasMP gates the MP bonus: jobs without an MP pool gain no
// MP from master levels.
//
// Precondition: masterLv must be in [0, MaxMasterLevel] (panics otherwise;
// validate at construction time).
func MasterLevelModifier(masterLv int, mainJobHasMP bool) Modifier {
	if masterLv < 0 || masterLv > MaxMasterLevel {
		panic(fmt.Sprintf("status: MasterLevelModifier: master level %d outside [0,%d]", masterLv, MaxMasterLevel))
	}
	return Modifier{
		Tag: TagMasterLevel,
		Apply: func(v Values) Values {
			for _, kind := range Kinds {
				if kind == KindMP && !mainJobHasMP {
					continue
				}
				v = v.Add(kind, float64(masterLevelBonus[kind]*masterLv))
			}
			return v
		},
	}
}

// MeritModifier returns the pipeline stage for invested merit points.
//
// Precondition: m must validate (panics otherwise).
func MeritModifier(m MeritPoints) Modifier {
	if err := m.Validate(); err != nil {
		panic("status: MeritModifier: " + err.Error())
	}
	return Modifier{
		Tag: TagMerit,
		Apply: func(v Values) Values {
			for _, kind := range Kinds {
				v = v.Add(kind, float64(m.Bonus(kind)))
			}
			return v
		},
	}
}
