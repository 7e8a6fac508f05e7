package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/hanabot/internal/deck"
)

// ActionKind identifies the four moves a player can make
type ActionKind int

const (
	Play ActionKind = iota
	Discard
	NumberHint
	ColorHint
)

// String returns the wire keyword of the action kind
func (k ActionKind) String() string {
	switch k {
	case Play:
		return "PLAY"
	case Discard:
		return "DISCARD"
	case NumberHint:
		return "NUMBERHINT"
	case ColorHint:
		return "COLORHINT"
	default:
		return "UNKNOWN"
	}
}

// Action is one decision. Index and DrawIndex apply to plays and discards,
// Rank to number hints and Suit to color hints.
type Action struct {
	Kind      ActionKind
	Index     int
	DrawIndex int
	Rank      deck.Rank
	Suit      deck.Suit
}

// PlayAction plays slot i and draws into slot draw.
func PlayAction(i, draw int) Action {
	return Action{Kind: Play, Index: i, DrawIndex: draw}
}

// DiscardAction discards slot i and draws into slot draw.
func DiscardAction(i, draw int) Action {
	return Action{Kind: Discard, Index: i, DrawIndex: draw}
}

// NumberHintAction hints every partner card of rank r.
func NumberHintAction(r deck.Rank) Action {
	return Action{Kind: NumberHint, Rank: r}
}

// ColorHintAction hints every partner card of suit s.
func ColorHintAction(s deck.Suit) Action {
	return Action{Kind: ColorHint, Suit: s}
}

// IsHint reports whether the action spends a hint token.
func (a Action) IsHint() bool {
	return a.Kind == NumberHint || a.Kind == ColorHint
}

// String encodes the action in wire grammar. Color hints carry the numeric
// suit code.
func (a Action) String() string {
	switch a.Kind {
	case Play, Discard:
		return fmt.Sprintf("%s %d %d", a.Kind, a.Index, a.DrawIndex)
	case NumberHint:
		return fmt.Sprintf("%s %d", a.Kind, a.Rank)
	case ColorHint:
		return fmt.Sprintf("%s %d", a.Kind, a.Suit)
	default:
		return a.Kind.String()
	}
}

// ParseAction decodes the wire grammar. Color hints accept the suit code,
// identifier or letter.
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action")
	}

	switch strings.ToUpper(fields[0]) {
	case "PLAY", "DISCARD":
		if len(fields) != 3 {
			return Action{}, fmt.Errorf("%q: want %s <index> <draw index>", s, fields[0])
		}
		x, err := parseSlot(fields[1])
		if err != nil {
			return Action{}, fmt.Errorf("%q: %w", s, err)
		}
		y, err := parseSlot(fields[2])
		if err != nil {
			return Action{}, fmt.Errorf("%q: %w", s, err)
		}
		if strings.EqualFold(fields[0], "PLAY") {
			return PlayAction(x, y), nil
		}
		return DiscardAction(x, y), nil

	case "NUMBERHINT":
		if len(fields) != 2 {
			return Action{}, fmt.Errorf("%q: want NUMBERHINT <rank>", s)
		}
		r, err := deck.ParseRank(fields[1])
		if err != nil {
			return Action{}, fmt.Errorf("%q: %w", s, err)
		}
		return NumberHintAction(r), nil

	case "COLORHINT":
		if len(fields) != 2 {
			return Action{}, fmt.Errorf("%q: want COLORHINT <suit>", s)
		}
		suit, err := deck.ParseSuit(fields[1])
		if err != nil {
			return Action{}, fmt.Errorf("%q: %w", s, err)
		}
		return ColorHintAction(suit), nil

	default:
		return Action{}, fmt.Errorf("unknown action %q", fields[0])
	}
}

func parseSlot(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	if n < 0 || n >= HandSize {
		return 0, fmt.Errorf("index %d out of range 0-%d", n, HandSize-1)
	}
	return n, nil
}
