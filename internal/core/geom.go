// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Viewport maps percentage-of-arena coordinates onto a block of cells.
// 0% lands on the first cell of the area and 100% on the last one.
type Viewport struct {
	Area Rect
}

// ToCell converts an arena position in [0,100] to a screen cell inside Area.
func (v Viewport) ToCell(px, py float64) (int, int) {
	col := v.Area.X + scale(px, v.Area.W)
	row := v.Area.Y + scale(py, v.Area.H)
	return col, row
}

// ToPercent converts a screen cell back to arena coordinates.
// Cells outside Area map outside [0,100].
func (v Viewport) ToPercent(col, row int) (float64, float64) {
	return unscale(col-v.Area.X, v.Area.W), unscale(row-v.Area.Y, v.Area.H)
}

// CellsPerPercent returns how many columns and rows one percent spans.
func (v Viewport) CellsPerPercent() (float64, float64) {
	return span(v.Area.W) / 100, span(v.Area.H) / 100
}

func scale(p float64, cells int) int {
	if cells <= 1 {
		return 0
	}
	return Clamp(int(math.Round(p/100*span(cells))), 0, cells-1)
}

func unscale(offset, cells int) float64 {
	if cells <= 1 {
		return 0
	}
	return float64(offset) / span(cells) * 100
}

func span(cells int) float64 {
	if cells <= 1 {
		return 1
	}
	return float64(cells - 1)
}
