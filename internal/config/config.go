// Package config loads hanabot settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/hanabot/internal/bot"
	"github.com/lox/hanabot/internal/game"
)

// Rulesets accepted by the agent block.
const (
	RulesetFull   = "full"
	RulesetSimple = "simple"
)

// Config is the complete configuration
type Config struct {
	Game       GameConfig
	Agent      AgentConfig
	Simulation SimulationConfig
	Log        LogConfig
}

// GameConfig holds the token counts
type GameConfig struct {
	MaxHints int `hcl:"max_hints,optional"`
	Fuses    int `hcl:"fuses,optional"`
}

// AgentConfig selects a ruleset and optionally overrides parts of it
type AgentConfig struct {
	Ruleset            string  `hcl:"ruleset,optional"`
	ExhaustionTracking *bool   `hcl:"exhaustion_tracking,optional"`
	SuitInference      *bool   `hcl:"suit_inference,optional"`
	ProbabilisticPlay  *bool   `hcl:"probabilistic_play,optional"`
	PlayThreshold      float64 `hcl:"play_threshold,optional"`
	MinFusesForGamble  int     `hcl:"min_fuses_for_gamble,optional"`
}

// SimulationConfig holds batch settings
type SimulationConfig struct {
	Games     int    `hcl:"games,optional"`
	Seed      int64  `hcl:"seed,optional"` // 0 picks a seed at startup
	Workers   int    `hcl:"workers,optional"`
	Timeout   string `hcl:"timeout,optional"`
	RecordDir string `hcl:"record_dir,optional"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// fileConfig mirrors the file layout; every block is optional.
type fileConfig struct {
	Game       *GameConfig       `hcl:"game,block"`
	Agent      *AgentConfig      `hcl:"agent,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Log        *LogConfig        `hcl:"log,block"`
}

// Default returns the built-in configuration
func Default() *Config {
	rules := game.DefaultRules()
	opts := bot.DefaultOptions()
	return &Config{
		Game: GameConfig{
			MaxHints: rules.MaxHints,
			Fuses:    rules.Fuses,
		},
		Agent: AgentConfig{
			Ruleset:           RulesetFull,
			PlayThreshold:     opts.PlayThreshold,
			MinFusesForGamble: opts.MinFusesForGamble,
		},
		Simulation: SimulationConfig{
			Games:   1000,
			Timeout: "10s",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, filling anything unset from Default.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", formatDiags(diags))
	}

	cfg := Default()
	if g := fc.Game; g != nil {
		cfg.Game.MaxHints = orDefault(g.MaxHints, cfg.Game.MaxHints)
		cfg.Game.Fuses = orDefault(g.Fuses, cfg.Game.Fuses)
	}
	if a := fc.Agent; a != nil {
		cfg.Agent.Ruleset = orDefault(a.Ruleset, cfg.Agent.Ruleset)
		cfg.Agent.ExhaustionTracking = a.ExhaustionTracking
		cfg.Agent.SuitInference = a.SuitInference
		cfg.Agent.ProbabilisticPlay = a.ProbabilisticPlay
		cfg.Agent.PlayThreshold = orDefault(a.PlayThreshold, cfg.Agent.PlayThreshold)
		cfg.Agent.MinFusesForGamble = orDefault(a.MinFusesForGamble, cfg.Agent.MinFusesForGamble)
	}
	if s := fc.Simulation; s != nil {
		cfg.Simulation.Games = orDefault(s.Games, cfg.Simulation.Games)
		cfg.Simulation.Seed = s.Seed
		cfg.Simulation.Workers = s.Workers
		cfg.Simulation.Timeout = orDefault(s.Timeout, cfg.Simulation.Timeout)
		cfg.Simulation.RecordDir = s.RecordDir
	}
	if l := fc.Log; l != nil {
		cfg.Log.Level = orDefault(l.Level, cfg.Log.Level)
		cfg.Log.File = l.File
	}
	return cfg, nil
}

// Rules returns the game rules
func (c *Config) Rules() game.Rules {
	return game.Rules{MaxHints: c.Game.MaxHints, Fuses: c.Game.Fuses}
}

// Options resolves the ruleset and its overrides into agent options
func (c *Config) Options() (bot.Options, error) {
	var opts bot.Options
	switch c.Agent.Ruleset {
	case RulesetFull:
		opts = bot.DefaultOptions()
	case RulesetSimple:
		opts = bot.SimpleOptions()
	default:
		return bot.Options{}, fmt.Errorf("unknown ruleset %q (want %s or %s)", c.Agent.Ruleset, RulesetFull, RulesetSimple)
	}
	if v := c.Agent.ExhaustionTracking; v != nil {
		opts.ExhaustionTracking = *v
	}
	if v := c.Agent.SuitInference; v != nil {
		opts.SuitInference = *v
	}
	if v := c.Agent.ProbabilisticPlay; v != nil {
		opts.ProbabilisticPlay = *v
	}
	opts.PlayThreshold = c.Agent.PlayThreshold
	opts.MinFusesForGamble = c.Agent.MinFusesForGamble
	return opts, nil
}

// Timeout parses the per-game timeout
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Simulation.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Simulation.Timeout, err)
	}
	return d, nil
}

// LogLevel parses the log level
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	opts, err := c.Options()
	if err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("simulation: games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation: workers cannot be negative, got %d", c.Simulation.Workers)
	}
	if d, err := c.Timeout(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	} else if d < 0 {
		return fmt.Errorf("simulation: timeout cannot be negative")
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func formatDiags(diags hcl.Diagnostics) string {
	if len(diags) == 1 {
		return diags[0].Error()
	}
	return diags.Error()
}
