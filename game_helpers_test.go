package main

import (
	"context"
	"testing"
	"time"

	"github.com/sheikhrachel/gol-sim/model"
	"github.com/sheikhrachel/gol-sim/patterns"
	"github.com/sheikhrachel/gol-sim/utils"
)

func smallConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width = 6
	config.Height = 6
	config.Pattern = "blinker"
	config.PatternX = 1
	config.PatternY = 2
	config.RandomDensity = 0
	config.Delay = 0
	config.Iterations = 4
	return config
}

func TestInitializeGameSeedsPattern(t *testing.T) {
	sim, stats, err := initializeGame(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if stats == nil {
		t.Fatal("initializeGame returned nil stats")
	}
	for _, c := range patterns.Blinker.Offset(1, 2) {
		if !sim.IsLiving(c.X, c.Y) {
			t.Fatalf("cell (%d,%d) not seeded", c.X, c.Y)
		}
	}
	if sim.LivingCells() != 3 {
		t.Fatalf("LivingCells = %d, expected 3", sim.LivingCells())
	}
}

func TestInitializeGameRejectsBadPattern(t *testing.T) {
	config := smallConfig()
	config.Pattern = "no-such-thing"
	if _, _, err := initializeGame(config); err == nil {
		t.Fatal("expected an unknown pattern error")
	}

	config = smallConfig()
	config.PatternX = 5
	if _, _, err := initializeGame(config); !model.IsOutOfBounds(err) {
		t.Fatalf("err = %v, expected out of bounds", err)
	}
}

func TestInitializeGameFeedsStats(t *testing.T) {
	config := smallConfig()
	sim, stats, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if err := sim.Run(context.Background(), config.Delay, config.Iterations); err != nil {
		t.Fatal(err)
	}

	snap := stats.Snapshot()
	if snap.TotalGenerations != 4 || snap.PeakPopulation != 3 {
		t.Fatalf("stats = %+v, expected 4 generations with a peak of 3", snap)
	}
}

func TestReportStatusStopsWhenFinished(t *testing.T) {
	sim, stats, err := initializeGame(smallConfig())
	if err != nil {
		t.Fatal(err)
	}

	finished := make(chan struct{})
	returned := make(chan struct{})
	go func() {
		reportStatus(context.Background(), finished, sim, stats, time.Millisecond)
		close(returned)
	}()
	close(finished)

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("reportStatus did not return after the run finished")
	}
}
