package bot

import (
	"fmt"

	"github.com/lox/hanabot/internal/deck"
	"github.com/lox/hanabot/internal/game"
	"github.com/lox/hanabot/internal/knowledge"
)

// drawSlot is where every replacement card goes.
const drawSlot = 0

// Decide runs the rule cascade and returns the first action that applies.
// Every rule checks its own legality against the live board, so the
// returned action is always accepted by the referee.
func (p *Player) Decide(handSize int, partnerHand game.Hand, board game.Board) (game.Action, error) {
	if handSize != p.self.Len() {
		return game.Action{}, fmt.Errorf("hand size %d does not match %d tracked slots", handSize, p.self.Len())
	}
	if len(partnerHand) != p.partner.Len() {
		return game.Action{}, fmt.Errorf("partner hand size %d does not match %d modelled slots", len(partnerHand), p.partner.Len())
	}
	if handSize == 0 {
		return game.Action{}, fmt.Errorf("no cards to act on")
	}

	rules := []func(game.Hand, game.Board) (game.Action, bool, error){
		p.warn,
		p.consumeNextPlay,
		p.playPlayable,
		p.discardDiscardable,
		p.hintPlayable,
		p.rankOne,
		p.gamble,
	}
	for i, rule := range rules {
		a, ok, err := rule(partnerHand, board)
		if err != nil {
			return game.Action{}, err
		}
		if ok {
			return p.decided(RuleWarn+Rule(i), a), nil
		}
	}
	return p.decided(RuleChop, game.DiscardAction(p.chop(), drawSlot)), nil
}

func (p *Player) decided(r Rule, a game.Action) game.Action {
	p.lastRule = r
	p.fired[r]++
	p.logger.Debug("decide", "rule", r, "action", a, "knowledge", p.self.String())
	return a
}

// warn color-hints a 1 the partner knows by rank but not by suit when it
// can no longer be played. Left alone the partner would play it.
func (p *Player) warn(partnerHand game.Hand, board game.Board) (game.Action, bool, error) {
	if board.Hints <= 0 {
		return game.Action{}, false, nil
	}
	for i, c := range partnerHand {
		k := p.partner.At(i)
		r, rankKnown := k.Rank()
		_, suitKnown := k.Suit()
		if !rankKnown || r != deck.MinRank || suitKnown || board.IsLegalPlay(c) {
			continue
		}
		if err := p.giveColorHint(c.Suit, partnerHand, board); err != nil {
			return game.Action{}, false, err
		}
		return game.ColorHintAction(c.Suit), true, nil
	}
	return game.Action{}, false, nil
}

func (p *Player) consumeNextPlay(_ game.Hand, board game.Board) (game.Action, bool, error) {
	i := p.nextPlay
	if i == noPlay {
		return game.Action{}, false, nil
	}
	p.nextPlay = noPlay
	if i >= p.self.Len() || p.self.At(i).IsDiscardable(board) {
		return game.Action{}, false, nil
	}
	return game.PlayAction(i, drawSlot), true, nil
}

func (p *Player) playPlayable(_ game.Hand, board game.Board) (game.Action, bool, error) {
	for i := 0; i < p.self.Len(); i++ {
		if p.self.At(i).IsDefinitelyPlayable(board) {
			return game.PlayAction(i, drawSlot), true, nil
		}
	}
	return game.Action{}, false, nil
}

func (p *Player) discardDiscardable(_ game.Hand, board game.Board) (game.Action, bool, error) {
	for i := 0; i < p.self.Len(); i++ {
		if p.self.At(i).IsDiscardable(board) {
			return game.DiscardAction(i, drawSlot), true, nil
		}
	}
	return game.Action{}, false, nil
}

// hintPlayable points the partner at its leftmost playable card the partner
// does not already know about and has not already been asked to play. The
// hint must make that card the leftmost target, so its rank or suit cannot
// appear earlier in the hand.
func (p *Player) hintPlayable(partnerHand game.Hand, board game.Board) (game.Action, bool, error) {
	if board.Hints <= 0 {
		return game.Action{}, false, nil
	}
	for i, c := range partnerHand {
		if !board.IsLegalPlay(c) || i == p.partnerPlay || p.partner.At(i).IsDefinitelyPlayable(board) {
			continue
		}
		if partnerHand.IndicesOfRank(c.Rank)[0] == i {
			if err := p.giveNumberHint(c.Rank, partnerHand, board); err != nil {
				return game.Action{}, false, err
			}
			return game.NumberHintAction(c.Rank), true, nil
		}
		targets := partnerHand.IndicesOfSuit(c.Suit)
		if targets[0] == i && !knowledge.IsWarning(&p.partner, c.Suit, targets, board) {
			if err := p.giveColorHint(c.Suit, partnerHand, board); err != nil {
				return game.Action{}, false, err
			}
			return game.ColorHintAction(c.Suit), true, nil
		}
	}
	return game.Action{}, false, nil
}

// rankOne plays a 1 of unknown suit and discards a known 1 whose pile has
// moved on.
func (p *Player) rankOne(_ game.Hand, board game.Board) (game.Action, bool, error) {
	for i := 0; i < p.self.Len(); i++ {
		k := p.self.At(i)
		r, ok := k.Rank()
		if !ok || r != deck.MinRank {
			continue
		}
		s, suitKnown := k.Suit()
		if !suitKnown {
			return game.PlayAction(i, drawSlot), true, nil
		}
		if board.Height(s) >= int(deck.MinRank) {
			return game.DiscardAction(i, drawSlot), true, nil
		}
	}
	return game.Action{}, false, nil
}

func (p *Player) gamble(_ game.Hand, board game.Board) (game.Action, bool, error) {
	if !p.opts.ProbabilisticPlay || board.Fuses < p.opts.MinFusesForGamble {
		return game.Action{}, false, nil
	}
	best, bestP := -1, 0.0
	for i := 0; i < p.self.Len(); i++ {
		prob := p.self.At(i).ProbablyPlayable(&p.counts, board)
		if prob >= p.opts.PlayThreshold && prob > bestP {
			best, bestP = i, prob
		}
	}
	if best < 0 {
		return game.Action{}, false, nil
	}
	p.logger.Debug("gamble", "slot", best, "p", bestP)
	return game.PlayAction(best, drawSlot), true, nil
}

// chop is the highest never-hinted slot, or 0 when every slot was hinted.
func (p *Player) chop() int {
	for i := p.self.Len() - 1; i >= 0; i-- {
		if !p.self.At(i).Hinted() {
			return i
		}
	}
	return 0
}

func (p *Player) giveNumberHint(r deck.Rank, partnerHand game.Hand, board game.Board) error {
	targets := partnerHand.IndicesOfRank(r)
	out, err := knowledge.ApplyNumberHint(&p.partner, r, targets, board, p.hintOptions())
	if err != nil {
		return err
	}
	p.signalled(out)
	return nil
}

// giveColorHint updates the partner model the way the partner will read the
// hint, warning or not.
func (p *Player) giveColorHint(s deck.Suit, partnerHand game.Hand, board game.Board) error {
	targets := partnerHand.IndicesOfSuit(s)
	opts := p.hintOptions()
	opts.Warning = knowledge.IsWarning(&p.partner, s, targets, board)
	out, err := knowledge.ApplyColorHint(&p.partner, s, targets, board, opts)
	if err != nil {
		return err
	}
	p.signalled(out)
	return nil
}

// signalled mirrors the partner's next-play pointer after a hint we gave.
func (p *Player) signalled(out knowledge.HintOutcome) {
	if out.Signal {
		p.partnerPlay = out.NextPlay
	} else {
		p.partnerPlay = noPlay
	}
}
