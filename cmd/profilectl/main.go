// Package main provides the profilectl binary: it manages character
// profiles stored in the PostgreSQL registry and computes statuses from
// them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Maru0137/ff11sim/internal/config"
	"github.com/Maru0137/ff11sim/internal/game/character"
	"github.com/Maru0137/ff11sim/internal/game/job"
	"github.com/Maru0137/ff11sim/internal/game/race"
	"github.com/Maru0137/ff11sim/internal/game/status"
	"github.com/Maru0137/ff11sim/internal/observability"
	"github.com/Maru0137/ff11sim/internal/storage/postgres"
)

const usage = `usage: profilectl [-config path] <command> [flags]

commands:
  register  -name NAME -race RACE      create a new profile
  import    -file PROFILE.yaml         create a profile from a YAML file
  list                                 list stored profile names
  show      -name NAME                 print a profile's jobs and merits
  set-job   -name NAME -job JOB -lv N [-master-lv N]
  delete    -name NAME                 remove a profile
  status    -name NAME -job JOB [-support JOB]
`

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()

	repo := postgres.NewProfileRepository(pool.DB())

	cmd := flag.Arg(0)
	args := flag.Args()[1:]
	if err := run(ctx, repo, logger, cmd, args); err != nil {
		logger.Fatal("command failed", zap.String("command", cmd), zap.Error(err))
	}
}

func run(ctx context.Context, repo *postgres.ProfileRepository, logger *zap.Logger, cmd string, args []string) error {
	switch cmd {
	case "register":
		return register(ctx, repo, logger, args)
	case "import":
		return importProfile(ctx, repo, logger, args)
	case "list":
		return list(ctx, repo)
	case "show":
		return show(ctx, repo, args)
	case "set-job":
		return setJob(ctx, repo, logger, args)
	case "delete":
		return deleteProfile(ctx, repo, logger, args)
	case "status":
		return showStatus(ctx, repo, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func register(ctx context.Context, repo *postgres.ProfileRepository, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "profile name")
	raceTag := fs.String("race", "", "race tag or name")
	fs.Parse(args)

	r, err := race.Parse(*raceTag)
	if err != nil {
		return err
	}
	p, err := character.NewProfile(*name, r)
	if err != nil {
		return err
	}
	if err := repo.Create(ctx, p); err != nil {
		return err
	}
	logger.Info("profile registered",
		zap.String("name", p.Name),
		zap.String("race", p.Race.String()),
		zap.String("id", p.ID.String()),
	)
	return nil
}

func importProfile(ctx context.Context, repo *postgres.ProfileRepository, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "profile YAML file")
	fs.Parse(args)

	p, err := character.LoadProfile(*file)
	if err != nil {
		return err
	}
	if err := repo.Create(ctx, p); err != nil {
		return err
	}
	logger.Info("profile imported",
		zap.String("name", p.Name),
		zap.Int("jobs", len(p.JobLevels)),
	)
	return nil
}

func list(ctx context.Context, repo *postgres.ProfileRepository) error {
	names, err := repo.ListNames(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}

func show(ctx context.Context, repo *postgres.ProfileRepository, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	name := fs.String("name", "", "profile name")
	fs.Parse(args)

	p, err := repo.GetByName(ctx, *name)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s (%s)\n", p.Name, p.Race.Name())
	for _, j := range p.LeveledJobs() {
		jl := p.JobLevels[j]
		if jl.MasterLv > 0 {
			fmt.Fprintf(os.Stdout, "  %s %d ML%d\n", j, jl.Level, jl.MasterLv)
		} else {
			fmt.Fprintf(os.Stdout, "  %s %d\n", j, jl.Level)
		}
	}
	return nil
}

func setJob(ctx context.Context, repo *postgres.ProfileRepository, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("set-job", flag.ExitOnError)
	name := fs.String("name", "", "profile name")
	jobTag := fs.String("job", "", "job tag or name")
	lv := fs.Int("lv", 0, "job level [0,99]; 0 clears the entry")
	masterLv := fs.Int("master-lv", 0, "master level [0,50]")
	fs.Parse(args)

	j, err := job.Parse(*jobTag)
	if err != nil {
		return err
	}
	p, err := repo.GetByName(ctx, *name)
	if err != nil {
		return err
	}
	if err := p.SetJobLevel(j, *lv, *masterLv); err != nil {
		return err
	}
	if err := repo.Update(ctx, p); err != nil {
		return err
	}
	logger.Info("job level updated",
		zap.String("name", p.Name),
		zap.String("job", j.String()),
		zap.Int("level", *lv),
		zap.Int("master_lv", *masterLv),
	)
	return nil
}

func deleteProfile(ctx context.Context, repo *postgres.ProfileRepository, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	name := fs.String("name", "", "profile name")
	fs.Parse(args)

	if err := repo.Delete(ctx, *name); err != nil {
		return err
	}
	logger.Info("profile deleted", zap.String("name", *name))
	return nil
}

func showStatus(ctx context.Context, repo *postgres.ProfileRepository, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	name := fs.String("name", "", "profile name")
	jobTag := fs.String("job", "", "main job tag or name")
	supportTag := fs.String("support", "", "support job tag (optional)")
	fs.Parse(args)

	p, err := repo.GetByName(ctx, *name)
	if err != nil {
		return err
	}
	mainJob, err := job.Parse(*jobTag)
	if err != nil {
		return err
	}
	var supportJob *job.Job
	if *supportTag != "" {
		sj, err := job.Parse(*supportTag)
		if err != nil {
			return err
		}
		supportJob = &sj
	}

	c, err := p.ToChara(mainJob, supportJob)
	if err != nil {
		return err
	}

	head := fmt.Sprintf("%s: %s %s%d", p.Name, c.Race.Name(), c.MainJob, c.MainLv)
	if c.HasSupport() {
		head += fmt.Sprintf("/%s%d", c.SupportJob, c.SupportLv)
	}
	if c.MasterLv > 0 {
		head += fmt.Sprintf(" ML%d", c.MasterLv)
	}
	fmt.Fprintln(os.Stdout, head)

	s := c.Status()
	for _, kind := range status.Kinds {
		fmt.Fprintf(os.Stdout, "%-4s %d\n", kind, s.Value(kind))
	}
	return nil
}
