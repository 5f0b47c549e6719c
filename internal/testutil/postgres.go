// Package testutil provides integration-test helpers, currently a
// PostgreSQL test container with the profile schema applied.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Maru0137/ff11sim/internal/config"
	"github.com/Maru0137/ff11sim/internal/storage/postgres"
)

// profileSchema mirrors the migrations under migrations/; integration
// tests apply it directly instead of shelling out to the migrate binary.
const profileSchema = `
CREATE TABLE IF NOT EXISTS profiles (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    race       TEXT NOT NULL,
    merit_hp   INTEGER NOT NULL DEFAULT 0,
    merit_mp   INTEGER NOT NULL DEFAULT 0,
    merit_str  INTEGER NOT NULL DEFAULT 0,
    merit_dex  INTEGER NOT NULL DEFAULT 0,
    merit_vit  INTEGER NOT NULL DEFAULT 0,
    merit_agi  INTEGER NOT NULL DEFAULT 0,
    merit_int  INTEGER NOT NULL DEFAULT 0,
    merit_mnd  INTEGER NOT NULL DEFAULT 0,
    merit_chr  INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS profile_jobs (
    profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
    job        TEXT NOT NULL,
    level      INTEGER NOT NULL CHECK (level BETWEEN 1 AND 99),
    master_lv  INTEGER NOT NULL DEFAULT 0 CHECK (master_lv BETWEEN 0 AND 50),
    PRIMARY KEY (profile_id, job)
);
`

// NewPool starts a disposable PostgreSQL container with the profile
// schema applied and returns its connection pool. Tests run with -short
// are skipped.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	return NewPostgresContainer(t).RawPool
}

// PostgresContainer wraps a testcontainers PostgreSQL instance with the
// profile schema applied.
type PostgresContainer struct {
	container testcontainers.Container
	Pool      *postgres.Pool
	RawPool   *pgxpool.Pool
	Config    config.DatabaseConfig
}

// NewPostgresContainer starts a PostgreSQL test container, connects a
// pool, and applies the profile schema.
//
// Precondition: Docker must be available.
// Postcondition: Returns a running container with a connected pool, or
// fails the test.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v [%s]", err, time.Since(start))
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("getting container host: %v", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("getting mapped port: %v", err)
	}

	dbCfg := config.DatabaseConfig{
		Host:            host,
		Port:            mappedPort.Int(),
		User:            "test",
		Password:        "test",
		Name:            "test",
		SSLMode:         "disable",
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
	}

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		t.Fatalf("connecting to test postgres: %v [%s]", err, time.Since(start))
	}

	if _, err := pool.DB().Exec(ctx, profileSchema); err != nil {
		t.Fatalf("applying profile schema: %v", err)
	}

	t.Logf("postgres container started [%s]", time.Since(start))

	pc := &PostgresContainer{
		container: container,
		Pool:      pool,
		RawPool:   pool.DB(),
		Config:    dbCfg,
	}
	t.Cleanup(func() { pc.Terminate(t) })
	return pc
}

// Terminate closes the pool and stops the container.
func (pc *PostgresContainer) Terminate(t *testing.T) {
	t.Helper()
	if pc.Pool != nil {
		pc.Pool.Close()
		pc.Pool = nil
	}
	if pc.container != nil {
		if err := pc.container.Terminate(context.Background()); err != nil {
			t.Logf("terminating postgres container: %v", err)
		}
		pc.container = nil
	}
}
