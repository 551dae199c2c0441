package frontend

import (
	"fmt"
	"html"
	"strings"

	"github.com/janpfeifer/GoMemory/internal/game"
)

const (
	faceDownColor = "#007bff"
	faceUpColor   = "#fff"
	symbolColor   = "#000"
)

// RenderBoard draws the board as an SVG document of the layout's size.
// Cards are drawn face down unless the view says otherwise; symbols are only
// drawn for face-up cards. A nil view draws an empty board.
func RenderBoard(view *game.View, layout game.Layout) string {
	width, height := layout.BoardSize()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%[1]g" height="%[2]g" viewBox="0 0 %[1]g %[2]g" class="board-svg" style="display: block;">`,
		width, height))

	if view != nil {
		for i, card := range view.Cards {
			if i >= layout.NumCells() {
				break
			}
			renderCard(&sb, card, layout.CardRect(i))
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func renderCard(sb *strings.Builder, card game.CardView, r game.Rect) {
	fill := faceDownColor
	class := "card"
	if card.IsFlipped {
		fill = faceUpColor
		class += " flipped"
	}
	if card.IsMatched {
		class += " matched"
	}
	sb.WriteString(fmt.Sprintf(
		`<rect class="%s" data-id="%d" x="%g" y="%g" width="%g" height="%g" fill="%s" />`,
		class, card.ID, r.X, r.Y, r.W, r.H, fill))

	if (card.IsFlipped || card.IsMatched) && card.Symbol != "" {
		cx, cy := r.Center()
		sb.WriteString(fmt.Sprintf(
			`<text x="%g" y="%g" fill="%s" font-size="24px" font-family="sans-serif" text-anchor="middle" dominant-baseline="middle">%s</text>`,
			cx, cy, symbolColor, html.EscapeString(card.Symbol)))
	}
}
