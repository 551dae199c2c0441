package game

const (
	// NumSymbols is the size of the alphabet.
	NumSymbols = 8

	// NumCards in a deck: every symbol is dealt twice.
	NumCards = 2 * NumSymbols

	// NoCard marks an unset card reference or a pointer that hit no card.
	NoCard = -1
)

// Symbols is the fixed alphabet the deck is built from.
var Symbols = [NumSymbols]string{"🍎", "🍌", "🍒", "🍓", "🥥", "🍊", "🍋", "🍇"}

// Card is one cell of the board.
//
// Cards are plain values: every transition of a GameState works on a copy of the
// cards, so a Card held by a caller never changes under its feet.
type Card struct {
	ID        int    `json:"id"`         // Position in the deck at deal time.
	Symbol    string `json:"symbol"`     // One of Symbols.
	IsFlipped bool   `json:"is_flipped"` // Face up, either in the current turn or matched.
	IsMatched bool   `json:"is_matched"` // Part of a found pair. Never reverts.
}

// FaceUp returns whether the card's symbol should be shown.
func (c Card) FaceUp() bool {
	return c.IsFlipped || c.IsMatched
}
