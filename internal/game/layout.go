package game

import (
	"math"
)

// Geometry of the classic board, in pixels.
const (
	CardWidth   = 80
	CardHeight  = 100
	CardPadding = 10
	NumCols     = 4
	NumRows     = 4
)

// Layout describes the grid the cards are drawn on. The cell of a card spans
// its rectangle plus the padding to its right and below it, so clicks on the
// padding strip still belong to the card.
type Layout struct {
	CardWidth, CardHeight, Padding float64
	Cols, Rows                     int
}

// DefaultLayout is the 4x4 board of 80x100 cards spaced by 10 pixels.
var DefaultLayout = Layout{
	CardWidth:  CardWidth,
	CardHeight: CardHeight,
	Padding:    CardPadding,
	Cols:       NumCols,
	Rows:       NumRows,
}

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Contains returns true if the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// NumCells returns the number of cards the layout holds.
func (l Layout) NumCells() int {
	return l.Cols * l.Rows
}

// Locate maps a point, relative to the top-left corner of the board, to the
// index of the card under it. It returns NoCard and false for points outside
// the grid.
func (l Layout) Locate(x, y float64) (int, bool) {
	pitchX, pitchY := l.CardWidth+l.Padding, l.CardHeight+l.Padding
	if pitchX <= 0 || pitchY <= 0 {
		return NoCard, false
	}
	colF, rowF := math.Floor(x/pitchX), math.Floor(y/pitchY)
	if math.IsNaN(colF) || math.IsNaN(rowF) {
		return NoCard, false
	}
	if colF < 0 || colF >= float64(l.Cols) || rowF < 0 || rowF >= float64(l.Rows) {
		return NoCard, false
	}
	index := int(rowF)*l.Cols + int(colF)
	if index < 0 || index >= l.NumCells() {
		return NoCard, false
	}
	return index, true
}

// Locate maps a point to a card index on the DefaultLayout.
func Locate(x, y float64) (int, bool) {
	return DefaultLayout.Locate(x, y)
}

// CardRect returns where card index is drawn. The padding is not included.
func (l Layout) CardRect(index int) Rect {
	row, col := index/l.Cols, index%l.Cols
	return Rect{
		X: float64(col) * (l.CardWidth + l.Padding),
		Y: float64(row) * (l.CardHeight + l.Padding),
		W: l.CardWidth,
		H: l.CardHeight,
	}
}

// BoardSize returns the width and height taken by the drawn cards: the
// padding after the last column and row is not part of it.
func (l Layout) BoardSize() (float64, float64) {
	w := float64(l.Cols)*(l.CardWidth+l.Padding) - l.Padding
	h := float64(l.Rows)*(l.CardHeight+l.Padding) - l.Padding
	return w, h
}
