package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsRecord(t *testing.T) {
	s := NewStats()
	start := s.StartTime

	s.RecordAt(1, 10, start.Add(500*time.Millisecond))
	s.RecordAt(2, 20, start.Add(time.Second))

	snap := s.Snapshot()
	if snap.TotalGenerations != 2 {
		t.Fatalf("TotalGenerations = %d, expected 2", snap.TotalGenerations)
	}
	if snap.GenerationsPerSecond != 2 {
		t.Fatalf("GenerationsPerSecond = %v, expected 2", snap.GenerationsPerSecond)
	}
	if snap.PeakPopulation != 20 {
		t.Fatalf("PeakPopulation = %d, expected 20", snap.PeakPopulation)
	}
	if math.Abs(snap.AveragePopulation-11) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, expected 11", snap.AveragePopulation)
	}
}
