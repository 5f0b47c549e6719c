// Package main applies the profile registry schema migrations from the
// migrations/ directory to the configured PostgreSQL database.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Maru0137/ff11sim/internal/config"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of steps (0 = all)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if err := run(cfg.Database.DSN(), *direction, *steps); err != nil {
		log.Fatalf("migrating: %v", err)
	}
}

func run(dsn, direction string, steps int) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	switch direction {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	default:
		return fmt.Errorf("unknown direction %q: must be up or down", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		version, dirty, _ := m.Version()
		fmt.Fprintf(os.Stdout, "schema already current (version=%d dirty=%v)\n", version, dirty)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, _ := m.Version()
	fmt.Fprintf(os.Stdout, "schema migrated %s (version=%d dirty=%v)\n", direction, version, dirty)
	return nil
}
