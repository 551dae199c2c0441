package frontend

import (
	"github.com/janpfeifer/GoMemory/internal/game"
)

// PickCard translates a click at (x, y), relative to the board's top-left
// corner, into the card to flip. It returns false if the click hit no card or
// a card the engine would refuse to flip anyway.
func PickCard(view *game.View, layout game.Layout, x, y float64) (int, bool) {
	index, ok := layout.Locate(x, y)
	if !ok || !view.CanFlip(index) {
		return game.NoCard, false
	}
	return index, true
}
