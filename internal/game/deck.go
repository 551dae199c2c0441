package game

import (
	"math/rand"
)

// Deck is the ordered set of cards of one game. The position of a card is its ID.
type Deck []Card

// GenerateDeck deals a new shuffled deck using the global random source.
func GenerateDeck() Deck {
	return dealDeck(rand.Intn)
}

// GenerateDeckWithRand deals a new shuffled deck drawing from rng.
// The same seed yields the same deck.
func GenerateDeckWithRand(rng *rand.Rand) Deck {
	return dealDeck(rng.Intn)
}

// dealDeck duplicates the alphabet, shuffles it and numbers the cards by position.
// intn must return a uniform value in [0, n).
func dealDeck(intn func(n int) int) Deck {
	symbols := make([]string, 0, NumCards)
	symbols = append(symbols, Symbols[:]...)
	symbols = append(symbols, Symbols[:]...)

	// Fisher-Yates shuffle algorithm
	for i := len(symbols) - 1; i > 0; i-- {
		j := intn(i + 1)
		symbols[i], symbols[j] = symbols[j], symbols[i]
	}

	deck := make(Deck, len(symbols))
	for i, symbol := range symbols {
		deck[i] = Card{ID: i, Symbol: symbol}
	}
	return deck
}

// Clone returns a copy of the deck that shares nothing with d.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

// Valid reports whether id addresses a card of the deck.
func (d Deck) Valid(id int) bool {
	return id >= 0 && id < len(d)
}

// PartnerOf returns the ID of the other card holding the same symbol as card id,
// or NoCard if there is none.
func (d Deck) PartnerOf(id int) int {
	if !d.Valid(id) {
		return NoCard
	}
	for _, c := range d {
		if c.ID != id && c.Symbol == d[id].Symbol {
			return c.ID
		}
	}
	return NoCard
}
