package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/hanabot/internal/deck"
	"github.com/lox/hanabot/internal/game"
	"github.com/lox/hanabot/internal/knowledge"
)

// Card renders a card in its suit's color, e.g. "R3".
func Card(c deck.Card) string {
	if !c.Valid() {
		return InfoStyle.Render("??")
	}
	return suitStyles[c.Suit].Render(c.String())
}

// Hand renders cards separated by spaces.
func Hand(h game.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// Knowledge renders a player's beliefs slot by slot.
func Knowledge(s knowledge.Slots) string {
	parts := make([]string, s.Len())
	for i := range parts {
		k := s.At(i)
		text := k.String()
		if suit, ok := k.Suit(); ok {
			parts[i] = suitStyles[suit].Render(text)
		} else {
			parts[i] = InfoStyle.Render(text)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Board renders the piles and token counts on one line.
func Board(b game.Board) string {
	piles := make([]string, deck.NumSuits)
	for _, s := range deck.Suits {
		piles[s] = suitStyles[s].Render(fmt.Sprintf("%s%d", s.Letter(), b.Piles[s]))
	}
	tokens := fmt.Sprintf("hints %d/%d  fuses %d", b.Hints, b.MaxHints, b.Fuses)
	return strings.Join(piles, " ") + "  " + InfoStyle.Render(tokens)
}

// Turn renders one line of a game transcript.
func Turn(n, player int, action string, b game.Board) string {
	head := InfoStyle.Render(fmt.Sprintf("%3d", n))
	who := ValueStyle.Render(fmt.Sprintf("P%d", player))
	return fmt.Sprintf("%s %s %-14s %s", head, who, action, Board(b))
}

// Result renders the closing line of a game.
func Result(res *game.Result) string {
	if res.Fused {
		return ErrorStyle.Render(fmt.Sprintf("Fused out after %d turns: score 0", res.Turns))
	}
	line := fmt.Sprintf("Score %d/25 in %d turns (%d misplays, %d hints, %d discards)",
		res.Score, res.Turns, res.Misplays, res.HintsGiven, res.Discards)
	return SuccessStyle.Render(line)
}

// field renders an aligned label/value row.
func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value))
}
