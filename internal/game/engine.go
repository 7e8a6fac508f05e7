package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabot/internal/deck"
)

// HandSize is the number of cards dealt to each player.
const HandSize = 5

// ErrInvalidAction is returned when an agent emits an action the rules do
// not allow.
var ErrInvalidAction = errors.New("invalid action")

// Rules holds the adjustable token counts.
type Rules struct {
	MaxHints int
	Fuses    int
}

// DefaultRules returns the standard eight hints and three fuses.
func DefaultRules() Rules {
	return Rules{MaxHints: 8, Fuses: 3}
}

// Validate checks the token counts are usable.
func (r Rules) Validate() error {
	if r.MaxHints < 1 {
		return fmt.Errorf("max hints must be at least 1, got %d", r.MaxHints)
	}
	if r.Fuses < 1 {
		return fmt.Errorf("fuses must be at least 1, got %d", r.Fuses)
	}
	return nil
}

// Result summarises a finished game.
type Result struct {
	Score      int
	Turns      int
	Misplays   int
	HintsGiven int
	Discards   int
	Fused      bool
	Board      Board
	Deck       []deck.Card // deal order
	Actions    []string    // wire form, alternating players from player 0
}

// Perfect reports whether every pile was completed.
func (r *Result) Perfect() bool {
	return r.Score == NumPiles*int(deck.MaxRank)
}

// NumPiles is the number of suit piles.
const NumPiles = deck.NumSuits

// Engine referees one game between two agents.
type Engine struct {
	rules  Rules
	deck   *deck.Deck
	agents [2]Agent
	logger *log.Logger

	hands [2]Hand
	board Board

	// finalTurns counts the turns left once the deck is empty; -1 until then.
	finalTurns int
	result     Result
}

// NewEngine creates an engine that deals from d in its current order.
func NewEngine(rules Rules, d *deck.Deck, agents [2]Agent, logger *log.Logger) *Engine {
	return &Engine{
		rules:      rules,
		deck:       d,
		agents:     agents,
		logger:     logger.WithPrefix("engine"),
		finalTurns: -1,
	}
}

// Board returns the current board snapshot.
func (e *Engine) Board() Board {
	return e.board
}

// Hand returns a copy of player p's hand.
func (e *Engine) Hand(p int) Hand {
	return e.hands[p].Clone()
}

// Play deals and runs the game to completion. The context is checked
// between turns.
func (e *Engine) Play(ctx context.Context) (*Result, error) {
	if err := e.rules.Validate(); err != nil {
		return nil, err
	}
	e.board = Board{Hints: e.rules.MaxHints, MaxHints: e.rules.MaxHints, Fuses: e.rules.Fuses}
	e.result = Result{Deck: e.deck.Cards()}

	for p := range e.hands {
		e.hands[p] = make(Hand, 0, HandSize)
		for i := 0; i < HandSize; i++ {
			c, ok := e.deck.Draw()
			if !ok {
				return nil, fmt.Errorf("deck too small to deal")
			}
			e.hands[p] = append(e.hands[p], c)
		}
	}
	if e.deck.IsEmpty() {
		e.finalTurns = len(e.agents)
	}
	for p, agent := range e.agents {
		if err := agent.Start(len(e.hands[p]), e.hands[1-p].Clone(), e.board); err != nil {
			return nil, fmt.Errorf("player %d start: %w", p, err)
		}
	}

	for p := 0; !e.over(); p = 1 - p {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("turn %d: %w", e.result.Turns, err)
		}

		action, err := e.agents[p].Decide(len(e.hands[p]), e.hands[1-p].Clone(), e.board)
		if err != nil {
			return nil, fmt.Errorf("player %d decide: %w", p, err)
		}
		if err := e.apply(p, action); err != nil {
			return nil, fmt.Errorf("turn %d player %d: %w", e.result.Turns, p, err)
		}

		e.result.Turns++
		e.result.Actions = append(e.result.Actions, action.String())
		e.logger.Debug("turn",
			"turn", e.result.Turns,
			"player", p,
			"action", action.String(),
			"board", e.board.String())

		if e.finalTurns > 0 {
			e.finalTurns--
		} else if e.finalTurns < 0 && e.deck.IsEmpty() {
			e.finalTurns = len(e.agents)
		}
	}

	e.result.Board = e.board
	e.result.Score = e.board.Score()
	e.result.Fused = e.board.Fuses <= 0
	return &e.result, nil
}

func (e *Engine) over() bool {
	return e.board.Fuses <= 0 || e.board.Complete() || e.finalTurns == 0
}

func (e *Engine) apply(p int, a Action) error {
	switch a.Kind {
	case Play, Discard:
		return e.applyCard(p, a)
	case NumberHint, ColorHint:
		return e.applyHint(p, a)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAction, a)
	}
}

func (e *Engine) applyCard(p int, a Action) error {
	hand := e.hands[p]
	if a.Index < 0 || a.Index >= len(hand) {
		return fmt.Errorf("%w: %s: index outside hand of %d", ErrInvalidAction, a, len(hand))
	}
	if a.DrawIndex < 0 || a.DrawIndex >= len(hand) {
		return fmt.Errorf("%w: %s: draw index outside hand of %d", ErrInvalidAction, a, len(hand))
	}

	card, rest := hand.remove(a.Index)
	legal := false
	if a.Kind == Play {
		legal = e.board.IsLegalPlay(card)
		if legal {
			e.board.Piles[card.Suit]++
			if card.Rank == deck.MaxRank {
				e.refundHint()
			}
		} else {
			e.board.Fuses--
			e.result.Misplays++
		}
	} else {
		e.refundHint()
		e.result.Discards++
	}

	draw, drew := e.deck.Draw()
	if drew {
		rest = rest.insert(a.DrawIndex, draw)
	}
	e.hands[p] = rest

	other := 1 - p
	if a.Kind == Play {
		if err := e.agents[p].OwnPlayed(PlayEvent{
			Card: card, Index: a.Index, DrawIndex: a.DrawIndex, Drew: drew, Legal: legal, Board: e.board,
		}); err != nil {
			return fmt.Errorf("player %d inform: %w", p, err)
		}
		if err := e.agents[other].PartnerPlayed(PlayEvent{
			Card: card, Index: a.Index, Draw: draw, DrawIndex: a.DrawIndex, Drew: drew, Legal: legal,
			Hand: rest.Clone(), Board: e.board,
		}); err != nil {
			return fmt.Errorf("player %d inform: %w", other, err)
		}
		return nil
	}

	if err := e.agents[p].OwnDiscarded(DiscardEvent{
		Card: card, Index: a.Index, DrawIndex: a.DrawIndex, Drew: drew, Board: e.board,
	}); err != nil {
		return fmt.Errorf("player %d inform: %w", p, err)
	}
	if err := e.agents[other].PartnerDiscarded(DiscardEvent{
		Card: card, Index: a.Index, Draw: draw, DrawIndex: a.DrawIndex, Drew: drew,
		Hand: rest.Clone(), Board: e.board,
	}); err != nil {
		return fmt.Errorf("player %d inform: %w", other, err)
	}
	return nil
}

func (e *Engine) applyHint(p int, a Action) error {
	if e.board.Hints <= 0 {
		return fmt.Errorf("%w: %s: no hints remain", ErrInvalidAction, a)
	}

	other := 1 - p
	target := e.hands[other]
	var indices []int
	if a.Kind == NumberHint {
		if !a.Rank.Valid() {
			return fmt.Errorf("%w: %s: invalid rank", ErrInvalidAction, a)
		}
		indices = target.IndicesOfRank(a.Rank)
	} else {
		if !a.Suit.Valid() {
			return fmt.Errorf("%w: %s: invalid suit", ErrInvalidAction, a)
		}
		indices = target.IndicesOfSuit(a.Suit)
	}
	if len(indices) == 0 {
		return fmt.Errorf("%w: %s: matches no card", ErrInvalidAction, a)
	}

	e.board.Hints--
	e.result.HintsGiven++

	ev := HintEvent{
		Suit:        a.Suit,
		Rank:        a.Rank,
		Indices:     indices,
		PartnerHand: e.hands[p].Clone(),
		Board:       e.board,
	}
	var err error
	if a.Kind == NumberHint {
		err = e.agents[other].NumberHint(ev)
	} else {
		err = e.agents[other].ColorHint(ev)
	}
	if err != nil {
		return fmt.Errorf("player %d inform: %w", other, err)
	}
	return nil
}

func (e *Engine) refundHint() {
	if e.board.Hints < e.board.MaxHints {
		e.board.Hints++
	}
}
