package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maru0137/ff11sim/internal/game/character"
	"github.com/Maru0137/ff11sim/internal/game/job"
	"github.com/Maru0137/ff11sim/internal/game/race"
	"github.com/Maru0137/ff11sim/internal/game/status"
	"github.com/Maru0137/ff11sim/internal/storage/postgres"
	"github.com/Maru0137/ff11sim/internal/testutil"
)

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func makeTestProfile(t *testing.T, name string) *character.CharacterProfile {
	t.Helper()
	p, err := character.NewProfile(name, race.Tar)
	require.NoError(t, err)
	require.NoError(t, p.SetJobLevel(job.Blm, 99, 25))
	require.NoError(t, p.SetJobLevel(job.Whm, 49, 0))
	p.Merits = status.MeritPoints{HP: 10, INT: 5}
	return p
}

func TestProfileRepository_CreateAndGet(t *testing.T) {
	repo := postgres.NewProfileRepository(testutil.NewPool(t))
	ctx := context.Background()

	p := makeTestProfile(t, uniqueName("maru"))
	require.NoError(t, repo.Create(ctx, p))
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.GetByName(ctx, p.Name)
	require.NoError(t, err)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, race.Tar, got.Race)
	assert.Equal(t, p.JobLevels, got.JobLevels)
	assert.Equal(t, p.Merits, got.Merits)
}

func TestProfileRepository_CreateDuplicateName(t *testing.T) {
	repo := postgres.NewProfileRepository(testutil.NewPool(t))
	ctx := context.Background()

	p := makeTestProfile(t, uniqueName("maru"))
	require.NoError(t, repo.Create(ctx, p))

	dup := makeTestProfile(t, p.Name)
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, postgres.ErrProfileNameTaken)
}

func TestProfileRepository_GetMissing(t *testing.T) {
	repo := postgres.NewProfileRepository(testutil.NewPool(t))

	_, err := repo.GetByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, postgres.ErrProfileNotFound)
}

func TestProfileRepository_Update(t *testing.T) {
	repo := postgres.NewProfileRepository(testutil.NewPool(t))
	ctx := context.Background()

	p := makeTestProfile(t, uniqueName("maru"))
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, p.SetJobLevel(job.Blm, 99, 50))
	require.NoError(t, p.SetJobLevel(job.Whm, 0, 0))
	require.NoError(t, p.SetJobLevel(job.Rdm, 75, 0))
	p.Merits.MP = 8

	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByName(ctx, p.Name)
	require.NoError(t, err)
	assert.Equal(t, p.JobLevels, got.JobLevels)
	assert.Equal(t, 8, got.Merits.MP)
	assert.NotContains(t, got.JobLevels, job.Whm)
}

func TestProfileRepository_UpdateMissing(t *testing.T) {
	repo := postgres.NewProfileRepository(testutil.NewPool(t))

	p := makeTestProfile(t, uniqueName("ghost"))
	err := repo.Update(context.Background(), p)
	assert.ErrorIs(t, err, postgres.ErrProfileNotFound)
}

func TestProfileRepository_ListNames(t *testing.T) {
	repo := postgres.NewProfileRepository(testutil.NewPool(t))
	ctx := context.Background()

	first := makeTestProfile(t, uniqueName("first"))
	require.NoError(t, repo.Create(ctx, first))
	second := makeTestProfile(t, uniqueName("second"))
	require.NoError(t, repo.Create(ctx, second))

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, first.Name)
	assert.Contains(t, names, second.Name)
}

func TestProfileRepository_Delete(t *testing.T) {
	repo := postgres.NewProfileRepository(testutil.NewPool(t))
	ctx := context.Background()

	p := makeTestProfile(t, uniqueName("maru"))
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.Name))

	_, err := repo.GetByName(ctx, p.Name)
	assert.ErrorIs(t, err, postgres.ErrProfileNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.Name), postgres.ErrProfileNotFound)
}

// TestProfileRepository_StoredProfileComputesStatus exercises the whole
// path: a stored profile round-trips into a Chara whose status matches a
// direct calculation.
func TestProfileRepository_StoredProfileComputesStatus(t *testing.T) {
	repo := postgres.NewProfileRepository(testutil.NewPool(t))
	ctx := context.Background()

	p := makeTestProfile(t, uniqueName("maru"))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByName(ctx, p.Name)
	require.NoError(t, err)

	c, err := got.ToChara(job.Blm, nil)
	require.NoError(t, err)

	want, err := status.Compute(race.Tar, 99)
	require.NoError(t, err)
	assert.Equal(t, want, c.BaseStatus())
}
