package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Maru0137/ff11sim/internal/game/character"
	"github.com/Maru0137/ff11sim/internal/game/job"
	"github.com/Maru0137/ff11sim/internal/game/race"
)

// ErrProfileNotFound is returned when a profile lookup yields no results.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileNameTaken is returned when creating a profile with a name that
// already exists.
var ErrProfileNameTaken = errors.New("profile name already taken")

// ProfileRepository persists character profiles and their per-job levels.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a ProfileRepository backed by the given
// pool.
//
// Precondition: db must be a valid, open connection pool.
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile and its job levels in one transaction.
//
// Precondition: p must be a validated profile with a non-nil ID.
// Postcondition: The profile and all job rows are stored, or
// ErrProfileNameTaken is returned on a duplicate name.
func (r *ProfileRepository) Create(ctx context.Context, p *character.CharacterProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO profiles
			(id, name, race,
			 merit_hp, merit_mp, merit_str, merit_dex, merit_vit,
			 merit_agi, merit_int, merit_mnd, merit_chr)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Race.String(),
		p.Merits.HP, p.Merits.MP, p.Merits.STR, p.Merits.DEX, p.Merits.VIT,
		p.Merits.AGI, p.Merits.INT, p.Merits.MND, p.Merits.CHR,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrProfileNameTaken
		}
		return fmt.Errorf("inserting profile: %w", err)
	}

	if err := insertJobLevels(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update rewrites a stored profile's race, merits, and job levels.
//
// Postcondition: Returns ErrProfileNotFound if no profile has p.Name.
func (r *ProfileRepository) Update(ctx context.Context, p *character.CharacterProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		UPDATE profiles SET
			race = $2,
			merit_hp = $3, merit_mp = $4, merit_str = $5, merit_dex = $6,
			merit_vit = $7, merit_agi = $8, merit_int = $9, merit_mnd = $10,
			merit_chr = $11,
			updated_at = now()
		WHERE name = $1
		RETURNING id, updated_at`,
		p.Name, p.Race.String(),
		p.Merits.HP, p.Merits.MP, p.Merits.STR, p.Merits.DEX,
		p.Merits.VIT, p.Merits.AGI, p.Merits.INT, p.Merits.MND,
		p.Merits.CHR,
	).Scan(&p.ID, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM profile_jobs WHERE profile_id = $1`, p.ID); err != nil {
		return fmt.Errorf("clearing job levels: %w", err)
	}
	if err := insertJobLevels(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByName retrieves a profile and its job levels by name.
//
// Postcondition: Returns the profile or ErrProfileNotFound.
func (r *ProfileRepository) GetByName(ctx context.Context, name string) (*character.CharacterProfile, error) {
	var (
		p       character.CharacterProfile
		raceTag string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, race,
		       merit_hp, merit_mp, merit_str, merit_dex, merit_vit,
		       merit_agi, merit_int, merit_mnd, merit_chr,
		       created_at, updated_at
		FROM profiles WHERE name = $1`,
		name,
	).Scan(
		&p.ID, &p.Name, &raceTag,
		&p.Merits.HP, &p.Merits.MP, &p.Merits.STR, &p.Merits.DEX, &p.Merits.VIT,
		&p.Merits.AGI, &p.Merits.INT, &p.Merits.MND, &p.Merits.CHR,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	p.Race, err = race.Parse(raceTag)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}

	p.JobLevels, err = r.jobLevels(ctx, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListNames returns the names of all stored profiles in creation order.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *ProfileRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM profiles ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning profile name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a profile and its job levels.
//
// Postcondition: Returns nil on success or ErrProfileNotFound if no
// profile has the given name.
func (r *ProfileRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) jobLevels(ctx context.Context, p *character.CharacterProfile) (map[job.Job]character.JobLevel, error) {
	rows, err := r.db.Query(ctx, `
		SELECT job, level, master_lv FROM profile_jobs WHERE profile_id = $1`,
		p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying job levels: %w", err)
	}
	defer rows.Close()

	levels := make(map[job.Job]character.JobLevel)
	for rows.Next() {
		var (
			tag string
			jl  character.JobLevel
		)
		if err := rows.Scan(&tag, &jl.Level, &jl.MasterLv); err != nil {
			return nil, fmt.Errorf("scanning job level: %w", err)
		}
		j, err := job.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		levels[j] = jl
	}
	return levels, rows.Err()
}

func insertJobLevels(ctx context.Context, tx pgx.Tx, p *character.CharacterProfile) error {
	for _, j := range p.LeveledJobs() {
		jl := p.JobLevels[j]
		_, err := tx.Exec(ctx, `
			INSERT INTO profile_jobs (profile_id, job, level, master_lv)
			VALUES ($1, $2, $3, $4)`,
			p.ID, j.String(), jl.Level, jl.MasterLv,
		)
		if err != nil {
			return fmt.Errorf("inserting job level %s: %w", j, err)
		}
	}
	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
