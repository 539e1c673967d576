package utils

import (
	"sync"
	"time"
)

// Stats for performance monitoring, fed from the simulation's step observer
type Stats struct {
	mu sync.Mutex

	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
	lastStep             time.Time
}

// Snapshot is a copy of Stats safe to read without locking
type Snapshot struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	Runtime              time.Duration
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastStep: now}
}

// Record notes one generation with the given population, timed against the previous call
func (s *Stats) Record(generation int, population int) {
	s.RecordAt(generation, population, time.Now())
}

// RecordAt is Record with an explicit clock reading
func (s *Stats) RecordAt(generation int, population int, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.update(generation, population, now.Sub(s.lastStep))
	s.lastStep = now
}

func (s *Stats) update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Snapshot copies the current figures
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		GenerationsPerSecond: s.GenerationsPerSecond,
		AveragePopulation:    s.AveragePopulation,
		PeakPopulation:       s.PeakPopulation,
		TotalGenerations:     s.TotalGenerations,
		Runtime:              time.Since(s.StartTime),
	}
}
