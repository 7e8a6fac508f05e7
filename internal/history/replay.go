package history

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabot/internal/deck"
	"github.com/lox/hanabot/internal/game"
)

// Replay re-runs the recorded actions against the recorded deal and
// returns the engine's result.
func Replay(ctx context.Context, r *Record, logger *log.Logger) (*game.Result, error) {
	cards, err := r.Cards()
	if err != nil {
		return nil, fmt.Errorf("history: deck: %w", err)
	}

	script := &script{actions: r.Actions}
	agents := [2]game.Agent{&scriptSeat{script}, &scriptSeat{script}}
	return game.NewEngine(r.Rules(), deck.NewDeckFrom(cards), agents, logger).Play(ctx)
}

// Verify replays r and checks the outcome matches what was recorded.
func Verify(ctx context.Context, r *Record, logger *log.Logger) error {
	res, err := Replay(ctx, r, logger)
	if err != nil {
		return err
	}
	if res.Score != r.Score || res.Turns != r.Turns || res.Fused != r.Fused {
		return fmt.Errorf("history: replay of %s scored %d in %d turns, recorded %d in %d",
			r.ID, res.Score, res.Turns, r.Score, r.Turns)
	}
	return nil
}

// script is shared by both seats; turns strictly alternate, so one cursor
// serves both.
type script struct {
	actions []string
	next    int
}

type scriptSeat struct {
	*script
}

func (s *scriptSeat) Start(int, game.Hand, game.Board) error   { return nil }
func (s *scriptSeat) OwnPlayed(game.PlayEvent) error           { return nil }
func (s *scriptSeat) PartnerPlayed(game.PlayEvent) error       { return nil }
func (s *scriptSeat) OwnDiscarded(game.DiscardEvent) error     { return nil }
func (s *scriptSeat) PartnerDiscarded(game.DiscardEvent) error { return nil }
func (s *scriptSeat) ColorHint(game.HintEvent) error           { return nil }
func (s *scriptSeat) NumberHint(game.HintEvent) error          { return nil }

func (s *scriptSeat) Decide(int, game.Hand, game.Board) (game.Action, error) {
	if s.next >= len(s.actions) {
		return game.Action{}, fmt.Errorf("history: recording ends after %d actions", len(s.actions))
	}
	a, err := game.ParseAction(s.actions[s.next])
	if err != nil {
		return game.Action{}, fmt.Errorf("history: action %d: %w", s.next, err)
	}
	s.next++
	return a, nil
}
