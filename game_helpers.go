package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-sim/model"
	"github.com/sheikhrachel/gol-sim/patterns"
	"github.com/sheikhrachel/gol-sim/utils"
)

// initializeGame builds the simulation, seeds it and wires the stats observer
func initializeGame(config utils.Config) (*model.Simulation, *utils.Stats, error) {
	var opts []model.Option
	if config.UseMemoryPool {
		opts = append(opts, model.WithGridPool(model.NewGridPool()))
	}

	sim, err := model.NewSimulation(config.Width, config.Height, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}

	if err = seedGrid(sim, config); err != nil {
		return nil, nil, err
	}

	stats := utils.NewStats()
	sim.OnStep(func() {
		stats.Record(sim.Generation(), sim.LivingCells())
	})

	return sim, stats, nil
}

// seedGrid places the configured pattern and sprinkles random life over the grid
func seedGrid(sim *model.Simulation, config utils.Config) error {
	if config.Pattern != "" {
		pattern, err := patterns.Lookup(config.Pattern)
		if err != nil {
			return errors.Wrap(err, "[seedGrid] failed to look up pattern")
		}
		if err = pattern.Place(sim, config.PatternX, config.PatternY); err != nil {
			return errors.Wrapf(err, "[seedGrid] failed to place %s", config.Pattern)
		}
	}

	if config.RandomDensity > 0 {
		rng := rand.New(rand.NewPCG(uint64(config.Seed), 0))
		cells := patterns.Random(sim.Width(), sim.Height(), config.RandomDensity, rng)
		if err := sim.PopulateCells(cells); err != nil {
			return errors.Wrap(err, "[seedGrid] failed to populate random cells")
		}
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *model.Simulation) {
	iterations := fmt.Sprint(config.Iterations)
	if config.Iterations == model.Forever {
		iterations = "until interrupted"
	}
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Memory Pool: %v\n",
		sim.Width(), sim.Height(), sim.LivingCells(), config.UseMemoryPool)
	fmt.Printf("Delay: %v | Iterations: %s\n", config.Delay, iterations)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// reportStatus prints a status line every interval until the run finishes or ctx is done
func reportStatus(
	ctx context.Context,
	finished <-chan struct{},
	sim *model.Simulation,
	stats *utils.Stats,
	interval time.Duration,
) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-finished:
			return
		case <-ticker.C:
			displayGameStatus(sim, stats)
		}
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(sim *model.Simulation, stats *utils.Stats) {
	var (
		livingCells = sim.LivingCells()
		density     = float64(livingCells) / float64(sim.Width()*sim.Height()) * 100
		snap        = stats.Snapshot()
		status      = "Active"
	)
	if livingCells == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		sim.Generation(), livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		snap.GenerationsPerSecond, snap.AveragePopulation, snap.Runtime.Seconds())
}

// displaySummary prints the final stats and, if configured, the final grid
func displaySummary(config utils.Config, sim *model.Simulation, stats *utils.Stats) {
	snap := stats.Snapshot()
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		snap.TotalGenerations, snap.Runtime.Seconds())
	fmt.Printf("Average population: %.1f | Peak population: %d\n",
		snap.AveragePopulation, snap.PeakPopulation)

	if config.ShowGrid {
		fmt.Println()
		fmt.Print(sim.String())
	}
}
