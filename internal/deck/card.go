package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit represents one of the five card colors
type Suit int

const (
	Red Suit = iota
	Yellow
	Green
	Blue
	White
)

// NumSuits is the number of suits in the deck
const NumSuits = 5

// Suits lists every suit in code order
var Suits = [NumSuits]Suit{Red, Yellow, Green, Blue, White}

// String returns the upper-case identifier of a suit (e.g. "RED")
func (s Suit) String() string {
	switch s {
	case Red:
		return "RED"
	case Yellow:
		return "YELLOW"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case White:
		return "WHITE"
	default:
		return "?"
	}
}

// Letter returns the single-letter abbreviation used in card notation
func (s Suit) Letter() string {
	switch s {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case White:
		return "W"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the five suits
func (s Suit) Valid() bool {
	return s >= Red && s <= White
}

// ParseSuit accepts a numeric suit code, an identifier or a letter.
func ParseSuit(s string) (Suit, error) {
	s = strings.TrimSpace(s)
	if code, err := strconv.Atoi(s); err == nil {
		suit := Suit(code)
		if !suit.Valid() {
			return 0, fmt.Errorf("suit code %d out of range", code)
		}
		return suit, nil
	}
	upper := strings.ToUpper(s)
	for _, suit := range Suits {
		if upper == suit.String() || upper == suit.Letter() {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", s)
}

// Rank is a card value from 1 to 5
type Rank int

const (
	MinRank Rank = 1
	MaxRank Rank = 5
)

// NumRanks is the number of distinct ranks
const NumRanks = 5

// Valid reports whether r is within 1..5
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// String returns the digit of the rank
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return strconv.Itoa(int(r))
}

// Copies returns how many physical cards of a rank each suit holds.
func Copies(r Rank) int {
	switch r {
	case 1:
		return 3
	case 2, 3, 4:
		return 2
	case 5:
		return 1
	default:
		return 0
	}
}

// ParseRank parses a rank digit
func ParseRank(s string) (Rank, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid rank %q: %w", s, err)
	}
	r := Rank(n)
	if !r.Valid() {
		return 0, fmt.Errorf("rank %d out of range", n)
	}
	return r, nil
}

// Card identifies a suit and a rank. Cards compare by value.
type Card struct {
	Suit Suit
	Rank Rank
}

// NumCards is the number of distinct card identities (5 suits x 5 ranks)
const NumCards = NumSuits * NumRanks

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the short notation of a card (e.g. "R3")
func (c Card) String() string {
	return c.Suit.Letter() + c.Rank.String()
}

// Valid reports whether both suit and rank are in range
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// Index maps a card onto 0..24 for fixed-size per-identity tables.
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank-MinRank)
}

// CardAt is the inverse of Index
func CardAt(index int) Card {
	return Card{Suit: Suit(index / NumRanks), Rank: Rank(index%NumRanks) + MinRank}
}

// ParseCard parses a two-character card such as "R3" or "w5"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want suit letter and rank", s)
	}
	suit, err := ParseSuit(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	rank, err := ParseRank(s[1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a run of cards, e.g. "R1 R1 B2" or "R1R1B2".
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}
