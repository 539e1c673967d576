package patterns

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-sim/model"
)

// ErrUnknownPattern is returned by Lookup for a name with no pattern.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a set of live cells relative to its own top-left corner.
type Pattern []model.Coord

var (
	// Blinker is the period-2 horizontal oscillator.
	Blinker = Pattern{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	// Block is the 2x2 still life.
	Block = Pattern{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	// Beacon is two blocks touching at a corner, oscillating with period 2.
	Beacon = Pattern{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3},
	}
)

var byName = map[string]Pattern{
	"blinker": Blinker,
	"block":   Block,
	"glider":  Glider,
	"beacon":  Beacon,
}

// Names lists the known pattern names in sorted order
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the pattern registered under name, case-insensitively
func Lookup(name string) (Pattern, error) {
	p, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Offset returns the pattern translated so its origin sits at (x, y)
func (p Pattern) Offset(x, y int) []model.Coord {
	out := make([]model.Coord, len(p))
	for i, c := range p {
		out[i] = model.Coord{X: c.X + x, Y: c.Y + y}
	}
	return out
}

// Place populates the pattern with its origin at (x, y)
func (p Pattern) Place(sim *model.Simulation, x, y int) error {
	if err := sim.PopulateCells(p.Offset(x, y)); err != nil {
		return errors.Wrapf(err, "[Place] pattern at (%d,%d)", x, y)
	}
	return nil
}

// Random picks each cell of a width x height grid with probability density.
// Cells are listed column by column.
func Random(width, height int, density float64, rng *rand.Rand) []model.Coord {
	var out []model.Coord
	for x := range width {
		for y := range height {
			if rng.Float64() < density {
				out = append(out, model.Coord{X: x, Y: y})
			}
		}
	}
	return out
}
