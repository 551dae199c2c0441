package game

import (
	"fmt"
	"strings"
)

// Phase of the current turn, keyed by GameState.FlippedCount.
type Phase int

const (
	Idle        Phase = iota // No card selected this turn.
	OneFlipped               // First card of the turn is showing.
	TwoFlipped               // Both cards showing, waiting for the match-check.
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case OneFlipped:
		return "one_flipped"
	case TwoFlipped:
		return "two_flipped"
	default:
		return "unknown"
	}
}

// GameState is the state of one game.
//
// GameState is treated as an immutable value: Flip and Resolve return a new
// GameState with its own copy of the cards and leave the receiver untouched.
type GameState struct {
	Cards        Deck `json:"cards"`
	FlippedCount int  `json:"flipped_count"` // Unresolved cards flipped this turn: 0, 1 or 2.
	FirstCard    int  `json:"first_card"`    // ID of the first card of the turn, or NoCard.
	SecondCard   int  `json:"second_card"`   // ID of the second card of the turn, or NoCard.
}

// NewGameState starts a game on the given deck. The deck is copied.
func NewGameState(deck Deck) GameState {
	return GameState{
		Cards:      deck.Clone(),
		FirstCard:  NoCard,
		SecondCard: NoCard,
	}
}

// Phase returns the turn phase of the state.
func (s GameState) Phase() Phase {
	return Phase(s.FlippedCount)
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	s.Cards = s.Cards.Clone()
	return s
}

// CanFlip returns whether a flip request on card id would be accepted.
func (s GameState) CanFlip(id int) bool {
	if s.FlippedCount >= 2 || !s.Cards.Valid(id) {
		return false
	}
	c := s.Cards[id]
	return !c.IsFlipped && !c.IsMatched
}

// Flip turns card id face up as part of the current turn.
// It returns the new state and true, or the unchanged state and false if the
// request is not allowed (see CanFlip).
func (s GameState) Flip(id int) (GameState, bool) {
	if !s.CanFlip(id) {
		return s, false
	}
	next := s.Clone()
	next.Cards[id].IsFlipped = true
	switch next.FlippedCount {
	case 0:
		next.FirstCard = id
	case 1:
		next.SecondCard = id
	}
	next.FlippedCount++
	return next, true
}

// Resolve runs the match-check of a turn with two flipped cards: a pair stays
// up as matched, anything else flips back down. Either way the turn is over.
// It returns false, with the state unchanged, if there is no turn to resolve.
func (s GameState) Resolve() (next GameState, matched bool, ok bool) {
	if s.FlippedCount != 2 || !s.Cards.Valid(s.FirstCard) || !s.Cards.Valid(s.SecondCard) {
		return s, false, false
	}
	next = s.Clone()
	first, second := &next.Cards[s.FirstCard], &next.Cards[s.SecondCard]
	matched = first.Symbol == second.Symbol
	if matched {
		first.IsMatched = true
		second.IsMatched = true
	} else {
		first.IsFlipped = false
		second.IsFlipped = false
	}
	next.FlippedCount = 0
	next.FirstCard = NoCard
	next.SecondCard = NoCard
	return next, matched, true
}

// IsComplete returns whether every card has been matched.
func (s GameState) IsComplete() bool {
	if len(s.Cards) == 0 {
		return false
	}
	for _, c := range s.Cards {
		if !c.IsMatched {
			return false
		}
	}
	return true
}

// MatchedPairs returns the number of pairs found so far.
func (s GameState) MatchedPairs() int {
	n := 0
	for _, c := range s.Cards {
		if c.IsMatched {
			n++
		}
	}
	return n / 2
}

func (s GameState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GameState: phase=%s, first=%d, second=%d, pairs=%d/%d, cards: ",
		s.Phase(), s.FirstCard, s.SecondCard, s.MatchedPairs(), len(s.Cards)/2)
	for _, c := range s.Cards {
		switch {
		case c.IsMatched:
			fmt.Fprintf(&sb, "[%s]", c.Symbol)
		case c.IsFlipped:
			fmt.Fprintf(&sb, "(%s)", c.Symbol)
		default:
			sb.WriteString("(?)")
		}
	}
	return sb.String()
}
