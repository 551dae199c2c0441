package game

import (
	"math/rand"
	"reflect"
	"testing"
)

func newTestState(seed int64) GameState {
	return NewGameState(GenerateDeckWithRand(rand.New(rand.NewSource(seed))))
}

// mismatchOf returns a card with a different symbol than card id.
func mismatchOf(deck Deck, id int) int {
	for _, c := range deck {
		if c.Symbol != deck[id].Symbol {
			return c.ID
		}
	}
	return NoCard
}

func countFlipped(s GameState) int {
	n := 0
	for _, c := range s.Cards {
		if c.IsFlipped && !c.IsMatched {
			n++
		}
	}
	return n
}

func TestTurnRule(t *testing.T) {
	s := newTestState(1)
	if s.Phase() != Idle || s.FirstCard != NoCard || s.SecondCard != NoCard {
		t.Fatalf("Unexpected initial state: %s", s)
	}

	s1, ok := s.Flip(3)
	if !ok {
		t.Fatalf("First flip refused")
	}
	if s1.FlippedCount != 1 || countFlipped(s1) != 1 || s1.FirstCard != 3 || s1.SecondCard != NoCard {
		t.Fatalf("Unexpected state after first flip: %s", s1)
	}
	if s.Cards[3].IsFlipped || s.FlippedCount != 0 {
		t.Errorf("Flip mutated the previous state: %s", s)
	}

	s2, ok := s1.Flip(7)
	if !ok {
		t.Fatalf("Second flip refused")
	}
	if s2.Phase() != TwoFlipped || countFlipped(s2) != 2 || s2.FirstCard != 3 || s2.SecondCard != 7 {
		t.Fatalf("Unexpected state after second flip: %s", s2)
	}

	s3, ok := s2.Flip(8)
	if ok {
		t.Errorf("Third flip accepted while two cards are pending")
	}
	if !reflect.DeepEqual(s2, s3) {
		t.Errorf("Refused flip changed the state:\n%s\n%s", s2, s3)
	}
}

func TestFlipIgnored(t *testing.T) {
	s := newTestState(2)
	s, _ = s.Flip(0)

	for _, id := range []int{0, -1, NumCards, 1000} {
		next, ok := s.Flip(id)
		if ok {
			t.Errorf("Flip of card %d accepted", id)
		}
		if !reflect.DeepEqual(s, next) {
			t.Errorf("Flip of card %d changed the state", id)
		}
	}
}

func TestResolveMatch(t *testing.T) {
	s := newTestState(3)
	partner := s.Cards.PartnerOf(0)
	s, _ = s.Flip(0)
	s, _ = s.Flip(partner)

	next, matched, ok := s.Resolve()
	if !ok || !matched {
		t.Fatalf("Expected a match between 0 and %d: ok=%v matched=%v", partner, ok, matched)
	}
	for _, id := range []int{0, partner} {
		c := next.Cards[id]
		if !c.IsMatched || !c.IsFlipped {
			t.Errorf("Card %d should be matched and face up: %+v", id, c)
		}
	}
	if next.FlippedCount != 0 || next.FirstCard != NoCard || next.SecondCard != NoCard {
		t.Errorf("Turn not reset: %s", next)
	}
	if s.Cards[0].IsMatched {
		t.Errorf("Resolve mutated the previous state")
	}

	// Matched cards can't be flipped again.
	if _, ok := next.Flip(0); ok {
		t.Errorf("Matched card flipped again")
	}
}

func TestResolveMismatch(t *testing.T) {
	s := newTestState(4)
	other := mismatchOf(s.Cards, 0)
	s, _ = s.Flip(0)
	s, _ = s.Flip(other)

	next, matched, ok := s.Resolve()
	if !ok || matched {
		t.Fatalf("Expected a mismatch between 0 and %d: ok=%v matched=%v", other, ok, matched)
	}
	for _, id := range []int{0, other} {
		c := next.Cards[id]
		if c.IsMatched || c.IsFlipped {
			t.Errorf("Card %d should be face down: %+v", id, c)
		}
	}
	if next.FlippedCount != 0 || next.FirstCard != NoCard || next.SecondCard != NoCard {
		t.Errorf("Turn not reset: %s", next)
	}
}

func TestResolveWithoutTurn(t *testing.T) {
	s := newTestState(5)
	if _, _, ok := s.Resolve(); ok {
		t.Errorf("Resolve accepted with no card flipped")
	}
	s, _ = s.Flip(0)
	if next, _, ok := s.Resolve(); ok || !reflect.DeepEqual(s, next) {
		t.Errorf("Resolve accepted with a single card flipped")
	}
}

func TestPlayToCompletion(t *testing.T) {
	s := newTestState(6)
	done := make(map[int]bool)
	for id := range s.Cards {
		if done[id] {
			continue
		}
		partner := s.Cards.PartnerOf(id)
		var ok bool
		if s, ok = s.Flip(id); !ok {
			t.Fatalf("Flip of %d refused", id)
		}
		if s, ok = s.Flip(partner); !ok {
			t.Fatalf("Flip of %d refused", partner)
		}
		if s.IsComplete() {
			t.Fatalf("Game complete before the last match-check")
		}
		s, _, _ = s.Resolve()
		done[id], done[partner] = true, true
	}
	if !s.IsComplete() {
		t.Errorf("Expected game to be complete: %s", s)
	}
	if s.MatchedPairs() != NumSymbols {
		t.Errorf("Expected %d pairs, got %d", NumSymbols, s.MatchedPairs())
	}
}

func TestViewHidesFaceDownSymbols(t *testing.T) {
	s := newTestState(7)
	s, _ = s.Flip(2)
	v := s.View()
	if len(v.Cards) != NumCards {
		t.Fatalf("Expected %d card views, got %d", NumCards, len(v.Cards))
	}
	for i, cv := range v.Cards {
		if i == 2 {
			if cv.Symbol != s.Cards[2].Symbol || !cv.IsFlipped {
				t.Errorf("Flipped card view should show its symbol: %+v", cv)
			}
			continue
		}
		if cv.Symbol != "" {
			t.Errorf("Face-down card %d exposes symbol %q", i, cv.Symbol)
		}
	}
	if v.CanFlip(2) || !v.CanFlip(3) {
		t.Errorf("View.CanFlip disagrees with the state")
	}
	var nilView *View
	if nilView.CanFlip(0) {
		t.Errorf("nil view should refuse flips")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{Idle, "idle"},
		{OneFlipped, "one_flipped"},
		{TwoFlipped, "two_flipped"},
		{Phase(9), "unknown"},
	}
	for _, test := range tests {
		if got := test.phase.String(); got != test.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", test.phase, got, test.expected)
		}
	}
}
