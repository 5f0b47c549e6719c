package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maru0137/ff11sim/internal/game/job"
	"github.com/Maru0137/ff11sim/internal/game/race"
	"github.com/Maru0137/ff11sim/internal/game/status"
)

func rawFor(t *testing.T, r race.Race, lv int) status.Values {
	t.Helper()
	v, err := status.ComputeRaw(r, lv)
	require.NoError(t, err)
	return v
}

// TestApplyAll_EmptyPipelineIsIdentity verifies a bare base passes through
// unchanged.
func TestApplyAll_EmptyPipelineIsIdentity(t *testing.T) {
	base := rawFor(t, race.Hum, 75)
	assert.Equal(t, base, status.ApplyAll(base))
}

// TestApplyAll_RunsInOrder verifies modifiers compose left to right.
func TestApplyAll_RunsInOrder(t *testing.T) {
	double := status.Modifier{
		Tag:   "test_double",
		Apply: func(v status.Values) status.Values { return v.Add(status.KindHP, v.Value(status.KindHP)) },
	}
	addTen := status.Modifier{
		Tag:   "test_add",
		Apply: func(v status.Values) status.Values { return v.Add(status.KindHP, 10) },
	}

	base := status.Values{}.Add(status.KindHP, 100)
	assert.Equal(t, 210.0, status.ApplyAll(base, double, addTen).Value(status.KindHP))
	assert.Equal(t, 220.0, status.ApplyAll(base, addTen, double).Value(status.KindHP))
}

// TestApplyAll_DoesNotMutateBase verifies pipeline purity: the input
// Values is a value and must survive any pipeline untouched.
func TestApplyAll_DoesNotMutateBase(t *testing.T) {
	base := rawFor(t, race.Tar, 99)
	snapshot := base
	_ = status.ApplyAll(base, status.MasterLevelModifier(50, true))
	assert.Equal(t, snapshot, base)
}

func TestApplyAll_PanicsOnNilApply(t *testing.T) {
	assert.Panics(t, func() {
		status.ApplyAll(status.Values{}, status.Modifier{Tag: "broken"})
	})
}

// TestJobModifier_MainContribution verifies the main job's grades are
// evaluated at the main level and added in full, and that stats the job
// carries no grade for contribute nothing.
func TestJobModifier_MainContribution(t *testing.T) {
	got := status.ApplyAll(status.Values{}, status.JobModifier(job.War, 99, nil, 0))

	assert.Equal(t, 675.0, got.Value(status.KindHP), "Warrior HP is grade B")
	assert.Equal(t, 45.0, got.Value(status.KindSTR), "Warrior STR is grade A")
	assert.Equal(t, 40.5, got.Value(status.KindDEX), "Warrior DEX is grade C")
	assert.Zero(t, got.Value(status.KindMP), "Warriors have no MP grade")
}

// TestJobModifier_SupportContributesHalf verifies the support job's
// contribution is evaluated at the support level and halved.
func TestJobModifier_SupportContributesHalf(t *testing.T) {
	mainOnly := status.ApplyAll(status.Values{}, status.JobModifier(job.War, 99, nil, 0))
	withSub := status.ApplyAll(status.Values{}, status.JobModifier(job.War, 99, job.Drg, 59))

	// Dragoon HP and STR are both grade B: 510 and 30 at level 59.
	assert.Equal(t, mainOnly.Value(status.KindHP)+255, withSub.Value(status.KindHP))
	assert.Equal(t, mainOnly.Value(status.KindSTR)+15, withSub.Value(status.KindSTR))
	assert.Zero(t, withSub.Value(status.KindMP), "neither job carries an MP grade")
}

func TestJobModifier_Tag(t *testing.T) {
	assert.Equal(t, status.TagJob, status.JobModifier(job.War, 1, nil, 0).Tag)
}

func TestJobModifier_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { status.JobModifier(nil, 99, nil, 0) })
	assert.Panics(t, func() { status.JobModifier(job.War, 0, nil, 0) })
	assert.Panics(t, func() { status.JobModifier(job.War, 100, nil, 0) })
	assert.Panics(t, func() { status.JobModifier(job.War, 99, job.Nin, 0) })
	assert.Panics(t, func() { status.JobModifier(job.War, 99, job.Nin, 100) })
}

// TestMasterLevelModifier_Bonuses verifies the per-level bonuses: +7 HP,
// +2 MP, +1 each BP stat.
func TestMasterLevelModifier_Bonuses(t *testing.T) {
	base := rawFor(t, race.Hum, 99)
	got := status.ApplyAll(base, status.MasterLevelModifier(20, true))

	assert.Equal(t, base.Value(status.KindHP)+140, got.Value(status.KindHP))
	assert.Equal(t, base.Value(status.KindMP)+40, got.Value(status.KindMP))
	for _, kind := range []status.Kind{
		status.KindSTR, status.KindDEX, status.KindVIT, status.KindAGI,
		status.KindINT, status.KindMND, status.KindCHR,
	} {
		assert.Equal(t, base.Value(kind)+20, got.Value(kind), "%s", kind)
	}
}

// TestMasterLevelModifier_MPGatedByJob verifies jobs without an MP pool
// gain no MP from master levels.
func TestMasterLevelModifier_MPGatedByJob(t *testing.T) {
	base := rawFor(t, race.Hum, 99)
	got := status.ApplyAll(base, status.MasterLevelModifier(50, false))

	assert.Equal(t, base.Value(status.KindMP), got.Value(status.KindMP), "MP must not change without an MP pool")
	assert.Equal(t, base.Value(status.KindHP)+350, got.Value(status.KindHP))
}

// TestMasterLevelModifier_ZeroIsIdentity verifies master level 0 changes
// nothing.
func TestMasterLevelModifier_ZeroIsIdentity(t *testing.T) {
	base := rawFor(t, race.Mit, 50)
	assert.Equal(t, base, status.ApplyAll(base, status.MasterLevelModifier(0, true)))
}

func TestMasterLevelModifier_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { status.MasterLevelModifier(-1, true) })
	assert.Panics(t, func() { status.MasterLevelModifier(51, true) })
}

// TestMeritModifier_Bonuses verifies the per-rank bonuses: +10 HP/MP, +1
// BP stat.
func TestMeritModifier_Bonuses(t *testing.T) {
	base := rawFor(t, race.Elv, 99)
	merits := status.MeritPoints{HP: 15, MP: 10, STR: 5, MND: 1}
	got := status.ApplyAll(base, status.MeritModifier(merits))

	assert.Equal(t, base.Value(status.KindHP)+150, got.Value(status.KindHP))
	assert.Equal(t, base.Value(status.KindMP)+100, got.Value(status.KindMP))
	assert.Equal(t, base.Value(status.KindSTR)+5, got.Value(status.KindSTR))
	assert.Equal(t, base.Value(status.KindMND)+1, got.Value(status.KindMND))
	assert.Equal(t, base.Value(status.KindDEX), got.Value(status.KindDEX))
	assert.Equal(t, base.Value(status.KindCHR), got.Value(status.KindCHR))
}

func TestMeritModifier_PanicsOnInvalidRanks(t *testing.T) {
	assert.Panics(t, func() { status.MeritModifier(status.MeritPoints{HP: 16}) })
	assert.Panics(t, func() { status.MeritModifier(status.MeritPoints{AGI: -1}) })
}

// TestValues_FinalizeFloorsOnce verifies half points from separate
// contributions survive accumulation and combine before the floor.
func TestValues_FinalizeFloorsOnce(t *testing.T) {
	// Flooring each term first would lose a point: 37 + 45 + 13 = 95.
	v := status.Values{}.
		Add(status.KindSTR, 37.5).
		Add(status.KindSTR, 45).
		Add(status.KindSTR, 13.5)
	assert.Equal(t, 96, v.Finalize().STR)

	assert.Panics(t, func() { status.Values{}.Add(status.Kind(-1), 1) })
	assert.Panics(t, func() { status.Values{}.Value(status.Kind(99)) })
}

// TestMeritPoints_Validate verifies the rank bounds.
func TestMeritPoints_Validate(t *testing.T) {
	assert.NoError(t, status.MeritPoints{}.Validate())
	assert.NoError(t, status.MeritPoints{HP: 15, MP: 15, CHR: 15}.Validate())

	err := status.MeritPoints{INT: 16}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INT")

	err = status.MeritPoints{DEX: -2}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEX")
}

// TestMeritPoints_Bonus verifies the bonus table directly.
func TestMeritPoints_Bonus(t *testing.T) {
	m := status.MeritPoints{HP: 3, STR: 4}
	assert.Equal(t, 30, m.Bonus(status.KindHP))
	assert.Equal(t, 4, m.Bonus(status.KindSTR))
	assert.Equal(t, 0, m.Bonus(status.KindMP))

	bad := status.MeritPoints{VIT: 99}
	assert.Panics(t, func() { bad.Bonus(status.KindVIT) })
}
