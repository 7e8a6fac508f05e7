package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/hanabot/internal/history"
	"github.com/lox/hanabot/internal/render"
	"github.com/lox/hanabot/internal/simulator"
)

// SimulateCmd plays a batch of games. Flags override the config file.
type SimulateCmd struct {
	Games   int           `short:"n" help:"Number of games"`
	Seed    int64         `short:"s" help:"Base seed (0 for random)"`
	Workers int           `short:"w" help:"Parallel games (0 for one per CPU)"`
	Timeout time.Duration `help:"Per-game timeout"`
	Ruleset string        `short:"r" help:"Agent ruleset: full or simple"`
	Record  string        `help:"Directory to write a record of every game to"`
}

func (cmd *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Games > 0 {
		cfg.Simulation.Games = cmd.Games
	}
	if cmd.Seed != 0 {
		cfg.Simulation.Seed = cmd.Seed
	}
	if cmd.Workers > 0 {
		cfg.Simulation.Workers = cmd.Workers
	}
	if cmd.Timeout > 0 {
		cfg.Simulation.Timeout = cmd.Timeout.String()
	}
	if cmd.Ruleset != "" {
		cfg.Agent.Ruleset = cmd.Ruleset
	}
	if cmd.Record != "" {
		cfg.Simulation.RecordDir = cmd.Record
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	clock := quartz.NewReal()
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	simCfg := simulator.Config{
		Games:   cfg.Simulation.Games,
		Seed:    seed,
		Workers: cfg.Simulation.Workers,
		Timeout: timeout,
		Rules:   cfg.Rules(),
		Options: opts,
		Logger:  logger,
		Clock:   clock,
	}
	if dir := cfg.Simulation.RecordDir; dir != "" {
		rec, err := history.NewDirRecorder(dir, cfg.Rules(), cfg.Agent.Ruleset, clock)
		if err != nil {
			return err
		}
		simCfg.Recorder = rec
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting simulation",
		"games", simCfg.Games,
		"seed", seed,
		"ruleset", cfg.Agent.Ruleset,
		"workers", simCfg.Workers)

	report, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	title := fmt.Sprintf("%s ruleset, seed %d", cfg.Agent.Ruleset, seed)
	fmt.Println(render.Summary(title, report))
	return nil
}
