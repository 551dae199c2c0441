package frontend

import (
	"testing"

	"github.com/janpfeifer/GoMemory/internal/game"
)

func TestPickCard(t *testing.T) {
	v := testView()
	v.Cards[1].IsFlipped = true
	v.FlippedCount = 1

	tests := []struct {
		name string
		x, y float64
		card int
		ok   bool
	}{
		{"first card", 10, 10, 0, true},
		{"flipped card", 95, 10, game.NoCard, false},
		{"padding of card 2", 265, 105, 2, true},
		{"outside board", 400, 10, game.NoCard, false},
		{"negative", -3, 10, game.NoCard, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			card, ok := PickCard(v, game.DefaultLayout, test.x, test.y)
			if card != test.card || ok != test.ok {
				t.Errorf("PickCard(%g, %g) = (%d, %v), want (%d, %v)", test.x, test.y, card, ok, test.card, test.ok)
			}
		})
	}
}

func TestPickCardWhilePending(t *testing.T) {
	v := testView()
	v.FlippedCount = 2
	if _, ok := PickCard(v, game.DefaultLayout, 10, 10); ok {
		t.Errorf("Expected clicks to be ignored while two cards are pending")
	}
	if _, ok := PickCard(nil, game.DefaultLayout, 10, 10); ok {
		t.Errorf("Expected clicks to be ignored before the first state arrives")
	}
}
