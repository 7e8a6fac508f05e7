package deck

import rand "math/rand/v2"

// Size is the number of cards in a full deck
const Size = 50

// Deck is the draw pile of a single game
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates the full 50-card deck in canonical order. Call Shuffle
// before dealing.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{
		cards: FullSet(),
		rng:   rng,
	}
}

// NewDeckFrom creates a deck that deals the given cards in order. Used to
// replay recorded games and to script tests.
func NewDeckFrom(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// FullSet returns every physical card: three 1s, two each of 2-4 and one 5
// per suit.
func FullSet() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			for n := 0; n < Copies(rank); n++ {
				cards = append(cards, NewCard(suit, rank))
			}
		}
	}
	return cards
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Cards returns a copy of the undealt cards in draw order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
