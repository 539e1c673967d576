package model

import (
	"github.com/sheikhrachel/gol-sim/rules"
)

// Grid is a fixed-size board of alive/dead cells, stored column-major so that
// cells[x][y] is the cell at (x, y).
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions, reusing storage when it fits
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != width {
		g.cells = make([][]bool, width)
	}
	for i := range g.cells {
		if len(g.cells[i]) != height {
			g.cells[i] = make([]bool, height)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for x := range g.cells {
		clear(g.cells[x])
	}
}

// InBounds reports whether (x, y) is a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false). Off-grid coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if g.InBounds(x, y) {
		g.cells[x][y] = alive
	}
}

// Get returns the state of a cell; off-grid coordinates are dead
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[x][y]
}

// CountNeighbors counts the living cells at Chebyshev distance 1 from (x, y).
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}
			if g.Get(nx, ny) {
				count++
			}
		}
	}
	return count
}

// NextGeneration writes the successor of g into next, which must have the same
// dimensions and start out all dead. g itself is only read.
func (g *Grid) NextGeneration(next *Grid) {
	for x := range g.width {
		for y := range g.height {
			if rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[x][y]) {
				next.cells[x][y] = true
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for x := range g.width {
		for y := range g.height {
			if g.cells[x][y] {
				count++
			}
		}
	}
	return
}

// Snapshot returns a deep copy of the cells, indexed [x][y]
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.width)
	for x := range out {
		out[x] = make([]bool, g.height)
		copy(out[x], g.cells[x])
	}
	return out
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for x := range g.width {
		for y := range g.height {
			if g.cells[x][y] != other.cells[x][y] {
				return false
			}
		}
	}
	return true
}
