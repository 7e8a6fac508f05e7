// Package simulator plays batches of self-play games.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/hanabot/internal/bot"
	"github.com/lox/hanabot/internal/deck"
	"github.com/lox/hanabot/internal/game"
	"github.com/lox/hanabot/internal/randutil"
	"github.com/lox/hanabot/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrTimeout is returned when a single game exceeds Config.Timeout.
var ErrTimeout = errors.New("game timed out")

// Recorder receives every finished game. Calls are serialised.
type Recorder interface {
	Record(seed int64, res *game.Result) error
}

// AgentFactory creates a fresh agent for one seat of one game.
type AgentFactory func(seat int, logger *log.Logger) game.Agent

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Seed    int64
	Workers int           // Parallel games; defaults to GOMAXPROCS
	Timeout time.Duration // Per game; zero disables
	Rules   game.Rules
	Options bot.Options
	Logger  *log.Logger
	Clock   quartz.Clock

	// Optional
	Recorder Recorder
	NewAgent AgentFactory
}

// Report is the outcome of a batch.
type Report struct {
	Stats   *statistics.Statistics
	Rules   [bot.NumRules]int // Decisions per rule across all players
	Elapsed time.Duration
}

// Simulator runs self-play games
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock

	recordMu sync.Mutex
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.NewAgent == nil {
		opts := config.Options
		config.NewAgent = func(_ int, logger *log.Logger) game.Agent {
			return bot.NewPlayer(opts, logger)
		}
	}
	return &Simulator{
		config: config,
		logger: config.Logger.WithPrefix("simulator"),
		clock:  config.Clock,
	}
}

type outcome struct {
	result statistics.GameResult
	rules  [bot.NumRules]int
}

// Run plays Config.Games games in parallel. Game n is dealt from
// randutil.GameSeed(Config.Seed, n), so a batch is reproducible regardless
// of worker count. The first failing game cancels the rest.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if err := s.config.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	start := s.clock.Now()
	outcomes := make([]outcome, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for n := 0; n < s.config.Games; n++ {
		seed := randutil.GameSeed(s.config.Seed, n)
		g.Go(func() error {
			out, err := s.play(ctx, seed)
			if err != nil {
				return fmt.Errorf("game %d: %w", n, err)
			}
			outcomes[n] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Stats: &statistics.Statistics{}}
	for _, out := range outcomes {
		report.Stats.Add(out.result)
		for r, n := range out.rules {
			report.Rules[r] += n
		}
	}
	if err := report.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	report.Elapsed = s.clock.Since(start)

	s.logger.Debug("batch complete",
		"games", report.Stats.Games,
		"mean", report.Stats.Mean(),
		"elapsed", report.Elapsed)
	return report, nil
}

// PlayGame plays a single game dealt from seed.
func (s *Simulator) PlayGame(ctx context.Context, seed int64) (statistics.GameResult, error) {
	out, err := s.play(ctx, seed)
	return out.result, err
}

func (s *Simulator) play(ctx context.Context, seed int64) (outcome, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	if s.config.Timeout > 0 {
		timer := s.clock.AfterFunc(s.config.Timeout, func() {
			cancel(ErrTimeout)
		}, "simulator", "game")
		defer timer.Stop()
	}

	d := deck.NewDeck(randutil.New(seed))
	d.Shuffle()

	logger := s.config.Logger.With("seed", seed)
	var agents [2]game.Agent
	for seat := range agents {
		agents[seat] = s.config.NewAgent(seat, logger.With("seat", seat))
	}

	res, err := game.NewEngine(s.config.Rules, d, agents, logger).Play(ctx)
	if err != nil {
		if errors.Is(context.Cause(ctx), ErrTimeout) {
			return outcome{}, fmt.Errorf("seed %d after %v: %w", seed, s.config.Timeout, ErrTimeout)
		}
		return outcome{}, fmt.Errorf("seed %d: %w", seed, err)
	}

	if s.config.Recorder != nil {
		s.recordMu.Lock()
		err := s.config.Recorder.Record(seed, res)
		s.recordMu.Unlock()
		if err != nil {
			return outcome{}, fmt.Errorf("record seed %d: %w", seed, err)
		}
	}

	out := outcome{result: statistics.GameResult{
		Score:      res.Score,
		Seed:       seed,
		Turns:      res.Turns,
		Misplays:   res.Misplays,
		HintsGiven: res.HintsGiven,
		Discards:   res.Discards,
		Fused:      res.Fused,
	}}
	for _, a := range agents {
		if p, ok := a.(*bot.Player); ok {
			for r, n := range p.RuleCounts() {
				out.rules[r] += n
			}
		}
	}
	return out, nil
}
