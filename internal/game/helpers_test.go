package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabot/internal/deck"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// scriptedAgent replays a fixed list of actions and records what it was told.
type scriptedAgent struct {
	script   []string
	next     int
	partner  Hand
	plays    []PlayEvent
	discards []DiscardEvent
	hints    []HintEvent
	own      int
}

func (s *scriptedAgent) Start(handSize int, partnerHand Hand, board Board) error {
	s.partner = partnerHand
	return nil
}

func (s *scriptedAgent) OwnPlayed(e PlayEvent) error {
	s.own++
	return nil
}

func (s *scriptedAgent) PartnerPlayed(e PlayEvent) error {
	s.plays = append(s.plays, e)
	s.partner = e.Hand
	return nil
}

func (s *scriptedAgent) OwnDiscarded(e DiscardEvent) error {
	s.own++
	return nil
}

func (s *scriptedAgent) PartnerDiscarded(e DiscardEvent) error {
	s.discards = append(s.discards, e)
	s.partner = e.Hand
	return nil
}

func (s *scriptedAgent) ColorHint(e HintEvent) error {
	s.hints = append(s.hints, e)
	return nil
}

func (s *scriptedAgent) NumberHint(e HintEvent) error {
	s.hints = append(s.hints, e)
	return nil
}

func (s *scriptedAgent) Decide(handSize int, partnerHand Hand, board Board) (Action, error) {
	if s.next >= len(s.script) {
		return Action{}, fmt.Errorf("script exhausted after %d actions", s.next)
	}
	a, err := ParseAction(s.script[s.next])
	s.next++
	return a, err
}

func scriptedDeck(s string) *deck.Deck {
	return deck.NewDeckFrom(deck.MustParseCards(s))
}

// fixedAgent always returns the same action, bypassing ParseAction.
type fixedAgent struct {
	scriptedAgent
	action Action
}

func (f *fixedAgent) Decide(handSize int, partnerHand Hand, board Board) (Action, error) {
	return f.action, nil
}
