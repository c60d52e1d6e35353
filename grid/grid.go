// Package grid defines the discrete board coordinate space
package grid

import "fmt"

// Cell is an integer board coordinate, column X and row Y
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is shorthand for Cell{X: x, Y: y}
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns the cell offset by one step in direction d
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a fixed-size board of Cols x Rows cells
type Grid struct {
	Cols int
	Rows int
}

// New creates a grid with the given dimensions
func New(cols, rows int) Grid {
	return Grid{Cols: cols, Rows: rows}
}

// InBounds reports whether c lies within [0,Cols) x [0,Rows)
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Size returns the total number of cells
func (g Grid) Size() int {
	return g.Cols * g.Rows
}

// Center returns the cell at (Cols/2, Rows/2)
func (g Grid) Center() Cell {
	return Cell{X: g.Cols / 2, Y: g.Rows / 2}
}

// Index converts a cell to its row-major index; caller ensures InBounds
func (g Grid) Index(c Cell) int {
	return c.Y*g.Cols + c.X
}

// At converts a row-major index back to a cell
func (g Grid) At(index int) Cell {
	return Cell{X: index % g.Cols, Y: index / g.Cols}
}
