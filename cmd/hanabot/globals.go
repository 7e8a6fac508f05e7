package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabot/internal/config"
	"github.com/lox/hanabot/internal/render"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"hanabot.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	LogFile  string `help:"Write logs to this file instead of stderr (overrides config)"`
	NoColor  bool   `help:"Disable colored output"`
}

// load reads the config file and applies flag overrides.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	render.SetColor(!g.NoColor)
	return cfg, nil
}

// newLogger builds the root logger. The returned closer releases the log
// file, if any.
func newLogger(cfg *config.Config) (*log.Logger, func() error, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "hanabot",
	})
	return logger, closer, nil
}
