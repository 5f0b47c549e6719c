// Package main provides the ff11calc binary: it computes a character's
// displayed status from race, job, and level, either from flags or from
// a profile YAML file.
package main

import (
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
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	raceFlag := flag.String("race", "", "race tag or name, e.g. Hum or Tarutaru")
	jobFlag := flag.String("job", "", "main job tag or name, e.g. War")
	lvFlag := flag.Int("lv", 99, "main job level [1,99]")
	supportFlag := flag.String("support", "", "support job tag (optional)")
	supportLvFlag := flag.Int("support-lv", 0, "support job level [1,99]")
	masterLvFlag := flag.Int("master-lv", 0, "master level [0,50]")
	profileFlag := flag.String("profile", "", "profile YAML file; replaces -race/-lv with stored levels")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	chara, err := buildChara(*profileFlag, *raceFlag, *jobFlag, *lvFlag, *supportFlag, *supportLvFlag, *masterLvFlag)
	if err != nil {
		logger.Fatal("building character", zap.Error(err))
	}

	logger.Debug("character built",
		zap.String("race", chara.Race.String()),
		zap.String("main_job", chara.MainJob.String()),
		zap.Int("main_lv", chara.MainLv),
		zap.Int("master_lv", chara.MasterLv),
	)

	printStatus(chara)
}

func buildChara(profilePath, raceTag, jobTag string, lv int, supportTag string, supportLv, masterLv int) (*character.Chara, error) {
	if jobTag == "" {
		return nil, fmt.Errorf("-job is required")
	}
	mainJob, err := job.Parse(jobTag)
	if err != nil {
		return nil, err
	}

	var supportJob *job.Job
	if supportTag != "" {
		sj, err := job.Parse(supportTag)
		if err != nil {
			return nil, err
		}
		supportJob = &sj
	}

	if profilePath != "" {
		p, err := character.LoadProfile(profilePath)
		if err != nil {
			return nil, err
		}
		return p.ToChara(mainJob, supportJob)
	}

	if raceTag == "" {
		return nil, fmt.Errorf("-race is required without -profile")
	}
	r, err := race.Parse(raceTag)
	if err != nil {
		return nil, err
	}

	b := character.NewBuilder().
		Race(r).
		MainJob(mainJob, lv).
		MasterLevel(masterLv)
	if supportJob != nil {
		if supportLv < 1 {
			return nil, fmt.Errorf("-support-lv is required with -support")
		}
		b.SupportJob(*supportJob, supportLv)
	}
	return b.Build()
}

func printStatus(c *character.Chara) {
	head := fmt.Sprintf("%s %s%d", c.Race.Name(), c.MainJob, c.MainLv)
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
}
