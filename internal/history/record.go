// Package history stores finished games as TOML records that can be read
// back and replayed.
package history

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/lox/hanabot/internal/deck"
	"github.com/lox/hanabot/internal/game"
)

// Record is one finished game.
type Record struct {
	ID       string    `toml:"id"`
	Time     time.Time `toml:"time"`
	Seed     int64     `toml:"seed"`
	MaxHints int       `toml:"max_hints"`
	Fuses    int       `toml:"fuses"`
	Agent    string    `toml:"agent,omitempty"`

	Score    int  `toml:"score"`
	Fused    bool `toml:"fused"`
	Turns    int  `toml:"turns"`
	Misplays int  `toml:"misplays"`

	Deck    string   `toml:"deck"` // deal order, e.g. "R1 B3 ..."
	Actions []string `toml:"actions"`
	Piles   []int    `toml:"piles"`
}

// NewRecord captures res under a fresh time-ordered ID.
func NewRecord(seed int64, rules game.Rules, res *game.Result, now time.Time) (*Record, error) {
	if res == nil {
		return nil, fmt.Errorf("history: result is nil")
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("history: generate id: %w", err)
	}

	cards := make([]string, len(res.Deck))
	for i, c := range res.Deck {
		cards[i] = c.String()
	}

	return &Record{
		ID:       id.String(),
		Time:     now.UTC().Truncate(time.Second),
		Seed:     seed,
		MaxHints: rules.MaxHints,
		Fuses:    rules.Fuses,
		Score:    res.Score,
		Fused:    res.Fused,
		Turns:    res.Turns,
		Misplays: res.Misplays,
		Deck:     strings.Join(cards, " "),
		Actions:  append([]string(nil), res.Actions...),
		Piles:    append([]int(nil), res.Board.Piles[:]...),
	}, nil
}

// Rules returns the rules the game was played under.
func (r *Record) Rules() game.Rules {
	return game.Rules{MaxHints: r.MaxHints, Fuses: r.Fuses}
}

// Cards parses the recorded deal order.
func (r *Record) Cards() ([]deck.Card, error) {
	return deck.ParseCards(r.Deck)
}

// Encode writes the record as TOML.
func Encode(w io.Writer, r *Record) error {
	if r == nil {
		return fmt.Errorf("history: record is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// Decode reads a TOML record.
func Decode(rd io.Reader) (*Record, error) {
	var r Record
	md, err := toml.NewDecoder(rd).Decode(&r)
	if err != nil {
		return nil, fmt.Errorf("history: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("history: unknown keys %v", undecoded)
	}
	if r.ID == "" {
		return nil, fmt.Errorf("history: record has no id")
	}
	return &r, nil
}
