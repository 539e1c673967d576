package model

import "strings"

const (
	cellAlive = '#'
	cellDead  = '.'
)

// String renders the grid one row per line, top row first
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[x][y] {
				b.WriteByte(cellAlive)
			} else {
				b.WriteByte(cellDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatWorld renders a World snapshot the same way Grid.String does
func FormatWorld(world [][]bool) string {
	g := &Grid{width: len(world), cells: world}
	if g.width > 0 {
		g.height = len(world[0])
	}
	return g.String()
}
