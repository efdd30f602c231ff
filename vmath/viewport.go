package vmath

import "math"

// Viewport maps a terminal cell grid onto a fixed play area
// Cells are sampled at their centers
type Viewport struct {
	Cols, Rows    int
	Width, Height float64
}

// NewViewport creates a mapping of cols×rows cells onto width×height
func NewViewport(cols, rows int, width, height float64) Viewport {
	return Viewport{Cols: max(cols, 1), Rows: max(rows, 1), Width: width, Height: height}
}

// CellW returns the play-space width of one cell
func (v Viewport) CellW() float64 { return v.Width / float64(v.Cols) }

// CellH returns the play-space height of one cell
func (v Viewport) CellH() float64 { return v.Height / float64(v.Rows) }

// ToPlay returns the play-space center of a cell
func (v Viewport) ToPlay(col, row int) Vec2 {
	return Vec2{
		X: (float64(col) + 0.5) * v.CellW(),
		Y: (float64(row) + 0.5) * v.CellH(),
	}
}

// ToCell returns the cell containing p and whether it lies on the grid
func (v Viewport) ToCell(p Vec2) (col, row int, ok bool) {
	col = int(math.Floor(p.X / v.CellW()))
	row = int(math.Floor(p.Y / v.CellH()))
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}
