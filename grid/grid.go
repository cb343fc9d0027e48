/*
Package grid computes the geometry of a uniform grid laid over an image.

A grid of Rows by Cols cells is laid over the source rectangle starting at its
top-left corner. Every cell has the same size, the source width and height
divided by the number of columns and rows respectively, rounded down. Any
pixels left over on the right or bottom edge are not part of any cell.

Cells are numbered from 1 in row-major order, so all the cells in the first
row come before any cell in the second row.
*/
package grid

import (
	"errors"
	"fmt"
	"image"
)

var errBadSize = errors.New("grid: rows and cols must be at least 1")

// Grid describes the number of rows and columns in a grid.
type Grid struct {
	Rows int
	Cols int
}

// Cell is a single partition of the source rectangle.
type Cell struct {
	// Index is the 1-based position of the cell in row-major order
	Index int
	Row   int
	Col   int
	Rect  image.Rectangle
}

// New returns a Grid of rows by cols cells.
func New(rows, cols int) (Grid, error) {
	g := Grid{Rows: rows, Cols: cols}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate checks both dimensions are positive.
func (g Grid) Validate() error {
	if g.Rows < 1 || g.Cols < 1 {
		return errBadSize
	}
	return nil
}

// Len returns the number of cells in the grid.
func (g Grid) Len() int {
	return g.Rows * g.Cols
}

// Size returns the width and height of each cell when the grid is laid over
// b.
func (g Grid) Size(b image.Rectangle) (int, int) {
	return b.Dx() / g.Cols, b.Dy() / g.Rows
}

// Remainder returns the number of columns and rows of pixels in b that fall
// outside of every cell.
func (g Grid) Remainder(b image.Rectangle) (int, int) {
	return b.Dx() % g.Cols, b.Dy() % g.Rows
}

// Cells returns every cell of the grid laid over b in row-major order.
func (g Grid) Cells(b image.Rectangle) []Cell {
	cw, ch := g.Size(b)
	cells := make([]Cell, 0, g.Len())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cells = append(cells, Cell{
				Index: r*g.Cols + c + 1,
				Row:   r,
				Col:   c,
				Rect:  image.Rect(c*cw, r*ch, (c+1)*cw, (r+1)*ch).Add(b.Min),
			})
		}
	}
	return cells
}

// Name returns the filename for the cell with the given index, for example
// "lulu_05.png".
func Name(prefix string, index int, ext string) string {
	return fmt.Sprintf("%s_%02d%s", prefix, index, ext)
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Cols)
}
