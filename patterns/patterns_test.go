package patterns

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-sim/model"
)

func TestLookup(t *testing.T) {
	p, err := Lookup(" Glider ")
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != len(Glider) {
		t.Fatalf("Lookup returned %d cells, expected %d", len(p), len(Glider))
	}

	if _, err := Lookup("spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Lookup(spaceship) err = %v, expected ErrUnknownPattern", err)
	}
}

func TestOffset(t *testing.T) {
	got := Blinker.Offset(1, 1)
	want := []model.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Offset(1, 1)[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestStillLifeAndOscillators(t *testing.T) {
	tests := []struct {
		name   string
		p      Pattern
		period int
	}{
		{"block", Block, 1},
		{"blinker", Blinker, 2},
		{"beacon", Beacon, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := model.NewSimulation(8, 8)
			if err != nil {
				t.Fatal(err)
			}
			if err := tt.p.Place(sim, 2, 2); err != nil {
				t.Fatal(err)
			}
			before := sim.String()
			for range tt.period {
				sim.Step()
			}
			if after := sim.String(); after != before {
				t.Fatalf("pattern did not return after %d steps:\n%s\nexpected:\n%s", tt.period, after, before)
			}
		})
	}
}

func TestGliderMovesDiagonally(t *testing.T) {
	sim, err := model.NewSimulation(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := Glider.Place(sim, 1, 1); err != nil {
		t.Fatal(err)
	}
	for range 4 {
		sim.Step()
	}

	want, err := model.NewSimulation(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := Glider.Place(want, 2, 2); err != nil {
		t.Fatal(err)
	}
	if sim.String() != want.String() {
		t.Fatalf("glider after 4 steps:\n%s\nexpected:\n%s", sim, want)
	}
}

func TestPlaceOffGrid(t *testing.T) {
	sim, err := model.NewSimulation(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := Glider.Place(sim, 3, 3); !model.IsOutOfBounds(err) {
		t.Fatalf("Place err = %v, expected out of bounds", err)
	}
}

func TestRandomDensityBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	if got := Random(5, 5, 0, rng); len(got) != 0 {
		t.Fatalf("density 0 produced %d cells", len(got))
	}
	if got := Random(5, 5, 1, rng); len(got) != 25 {
		t.Fatalf("density 1 produced %d cells, expected 25", len(got))
	}

	a := Random(20, 20, 0.3, rand.New(rand.NewPCG(42, 0)))
	b := Random(20, 20, 0.3, rand.New(rand.NewPCG(42, 0)))
	if len(a) != len(b) {
		t.Fatal("Random is not deterministic for a fixed seed")
	}
}
