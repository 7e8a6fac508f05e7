// Package bot implements a rule-based cooperative player.
//
// A Player keeps two belief states: what it knows about its own hand, built
// from hints it receives, and a model of what its partner knows, built from
// the hints it gives. Hints follow the leftmost-hinted-card-plays
// convention, except for color hints that read as warnings.
package bot

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabot/internal/deck"
	"github.com/lox/hanabot/internal/game"
	"github.com/lox/hanabot/internal/knowledge"
)

const noPlay = -1

// Player is a game.Agent. It is not safe for concurrent use; the engine
// serialises all calls.
type Player struct {
	opts   Options
	logger *log.Logger

	self    knowledge.Slots
	partner knowledge.Slots
	counts  knowledge.Counts

	nextPlay int
	// partnerPlay is the slot our last hint asked the partner to play,
	// pending until a partner card leaves its hand.
	partnerPlay int
	lastRule    Rule
	fired       [NumRules]int
}

var _ game.Agent = (*Player)(nil)

// NewPlayer creates a player with the given ruleset.
func NewPlayer(opts Options, logger *log.Logger) *Player {
	return &Player{
		opts:        opts,
		logger:      logger.WithPrefix("bot"),
		counts:      knowledge.NewCounts(),
		nextPlay:    noPlay,
		partnerPlay: noPlay,
	}
}

// LastRule returns the rule behind the most recent decision.
func (p *Player) LastRule() Rule {
	return p.lastRule
}

// RuleCounts returns how often each rule has fired this game.
func (p *Player) RuleCounts() [NumRules]int {
	return p.fired
}

// Knowledge returns a copy of the player's beliefs about its own hand.
func (p *Player) Knowledge() knowledge.Slots {
	return p.self
}

// PartnerKnowledge returns a copy of the model of the partner's beliefs.
func (p *Player) PartnerKnowledge() knowledge.Slots {
	return p.partner
}

// NextPlay returns the slot a received hint asked this player to play.
func (p *Player) NextPlay() (int, bool) {
	return p.nextPlay, p.nextPlay != noPlay
}

func (p *Player) Start(handSize int, partnerHand game.Hand, board game.Board) error {
	p.self = knowledge.NewSlots(handSize)
	p.partner = knowledge.NewSlots(len(partnerHand))
	p.counts = knowledge.NewCounts()
	p.nextPlay = noPlay
	p.partnerPlay = noPlay
	p.lastRule = RuleNone
	p.fired = [NumRules]int{}

	for _, c := range partnerHand {
		if err := p.see(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) OwnPlayed(e game.PlayEvent) error {
	p.logger.Debug("played", "card", e.Card, "index", e.Index, "legal", e.Legal)
	return p.ownCardLeft(e.Card, e.Index, e.DrawIndex, e.Drew)
}

func (p *Player) OwnDiscarded(e game.DiscardEvent) error {
	p.logger.Debug("discarded", "card", e.Card, "index", e.Index)
	return p.ownCardLeft(e.Card, e.Index, e.DrawIndex, e.Drew)
}

func (p *Player) PartnerPlayed(e game.PlayEvent) error {
	return p.partnerCardLeft(e.Index, e.Draw, e.DrawIndex, e.Drew)
}

func (p *Player) PartnerDiscarded(e game.DiscardEvent) error {
	return p.partnerCardLeft(e.Index, e.Draw, e.DrawIndex, e.Drew)
}

func (p *Player) ColorHint(e game.HintEvent) error {
	opts := p.hintOptions()
	opts.Warning = knowledge.IsWarning(&p.self, e.Suit, e.Indices, e.Board)
	out, err := knowledge.ApplyColorHint(&p.self, e.Suit, e.Indices, e.Board, opts)
	if err != nil {
		return err
	}
	return p.received(out)
}

func (p *Player) NumberHint(e game.HintEvent) error {
	out, err := knowledge.ApplyNumberHint(&p.self, e.Rank, e.Indices, e.Board, p.hintOptions())
	if err != nil {
		return err
	}
	return p.received(out)
}

func (p *Player) received(out knowledge.HintOutcome) error {
	if out.Signal {
		p.nextPlay = out.NextPlay
	} else {
		p.nextPlay = noPlay
	}
	p.applyExhaustion()
	p.logger.Debug("hint received", "knowledge", p.self.String(), "next", p.nextPlay)
	return p.self.Validate()
}

// ownCardLeft records a revealed own card and shifts the hand.
func (p *Player) ownCardLeft(c deck.Card, index, drawIndex int, drew bool) error {
	if err := p.see(c); err != nil {
		return err
	}
	if err := p.self.Replace(index, drawIndex, drew); err != nil {
		return fmt.Errorf("own hand: %w", err)
	}
	// Slots have shifted under any pending pointer.
	p.nextPlay = noPlay
	p.applyExhaustion()
	return p.self.Validate()
}

// partnerCardLeft records the partner's draw. The card that left was
// already counted when it was first seen.
func (p *Player) partnerCardLeft(index int, draw deck.Card, drawIndex int, drew bool) error {
	if drew {
		if err := p.see(draw); err != nil {
			return err
		}
	}
	if err := p.partner.Replace(index, drawIndex, drew); err != nil {
		return fmt.Errorf("partner hand: %w", err)
	}
	p.partnerPlay = noPlay
	return p.self.Validate()
}

// see counts a newly visible card and applies its exhaustion.
func (p *Player) see(c deck.Card) error {
	exhausted, err := p.counts.See(c)
	if err != nil {
		return err
	}
	if exhausted && p.opts.ExhaustionTracking {
		p.self.EliminateCard(c)
	}
	return nil
}

// applyExhaustion reapplies every exhausted card to the own hand. Hints and
// fresh draws can make an exhausted identity excludable after the fact.
func (p *Player) applyExhaustion() {
	if !p.opts.ExhaustionTracking {
		return
	}
	for _, c := range p.counts.Exhausted() {
		p.self.EliminateCard(c)
	}
}

func (p *Player) hintOptions() knowledge.HintOptions {
	return knowledge.HintOptions{Inference: p.opts.SuitInference}
}
