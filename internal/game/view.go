package game

// CardView is the client-facing representation of a card.
// Symbol is only included when the card is face up.
type CardView struct {
	ID        int    `json:"id"`
	Symbol    string `json:"symbol,omitempty"`
	IsFlipped bool   `json:"is_flipped"`
	IsMatched bool   `json:"is_matched"`
}

// View is the client-facing representation of a GameState, enough to draw the
// board and to pre-filter clicks.
type View struct {
	Cards        []CardView `json:"cards"`
	FlippedCount int        `json:"flipped_count"`
	Complete     bool       `json:"complete"`
}

// View builds the client-facing view of the state. Face-down cards don't
// expose their symbol.
func (s GameState) View() View {
	v := View{
		Cards:        make([]CardView, len(s.Cards)),
		FlippedCount: s.FlippedCount,
		Complete:     s.IsComplete(),
	}
	for i, c := range s.Cards {
		cv := CardView{
			ID:        c.ID,
			IsFlipped: c.IsFlipped,
			IsMatched: c.IsMatched,
		}
		if c.FaceUp() {
			cv.Symbol = c.Symbol
		}
		v.Cards[i] = cv
	}
	return v
}

// CanFlip mirrors GameState.CanFlip on the client side, so clicks that the
// engine would ignore are not sent.
func (v *View) CanFlip(id int) bool {
	if v == nil || v.FlippedCount >= 2 || id < 0 || id >= len(v.Cards) {
		return false
	}
	c := v.Cards[id]
	return !c.IsFlipped && !c.IsMatched
}
