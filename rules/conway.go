package rules

// Transition names the rule that decided a cell's next state.
type Transition int

const (
	// StaysDead covers every dead cell that does not have exactly three neighbours.
	StaysDead Transition = iota
	// Underpopulation kills any cell with fewer than two live neighbours.
	Underpopulation
	// Survival keeps a live cell with two or three live neighbours.
	Survival
	// Overcrowding kills a live cell with more than three live neighbours.
	Overcrowding
	// Reproduction brings a dead cell with exactly three live neighbours to life.
	Reproduction
)

func (t Transition) String() string {
	switch t {
	case Underpopulation:
		return "underpopulation"
	case Survival:
		return "survival"
	case Overcrowding:
		return "overcrowding"
	case Reproduction:
		return "reproduction"
	default:
		return "stays-dead"
	}
}

// Alive reports whether the transition leaves the cell alive.
func (t Transition) Alive() bool {
	return t == Survival || t == Reproduction
}

// Classify returns the transition for a cell with the given live neighbour count.
func Classify(neighbors int, alive bool) Transition {
	switch {
	case neighbors < 2:
		return Underpopulation
	case alive && (neighbors == 2 || neighbors == 3):
		return Survival
	case alive && neighbors > 3:
		return Overcrowding
	case !alive && neighbors == 3:
		return Reproduction
	default:
		return StaysDead
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Classify(neighbors, alive).Alive()
}
