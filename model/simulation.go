package model

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Forever is the iteration count for a run that never ends on its own.
const Forever = -1

// Coord is an (x, y) cell coordinate.
type Coord struct {
	X, Y int
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithScheduler replaces the timer-based scheduler used between delayed steps.
func WithScheduler(s Scheduler) Option {
	return func(sim *Simulation) {
		if s != nil {
			sim.scheduler = s
		}
	}
}

// WithGridPool recycles next-generation grids through pool.
func WithGridPool(pool *GridPool) Option {
	return func(sim *Simulation) {
		sim.pool = pool
	}
}

// run is the bookkeeping of one Start call. A run ends when its budget is
// spent, when Stop is called or when a later Start supersedes it.
type run struct {
	token     uint64
	remaining int
	delay     time.Duration
	done      chan struct{}
}

// closedDone is handed out by Done while no run is active.
var closedDone = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// Simulation is a Game of Life board with observer hooks and a paced run loop.
//
// All methods are safe for concurrent use. Observers are called without any
// internal lock held, so they may call back into the Simulation; with a
// non-zero run delay they are called from the scheduler's goroutine.
type Simulation struct {
	mu sync.RWMutex

	width, height int

	grid       *Grid
	pool       *GridPool
	scheduler  Scheduler
	generation int

	run       *run
	lastToken uint64

	onStep          func()
	onCellPopulated func(x, y int)
	onCellKilled    func(x, y int)
}

// NewSimulation creates a width x height simulation with every cell dead.
func NewSimulation(width, height int, opts ...Option) (*Simulation, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewSimulation] %dx%d", width, height)
	}

	s := &Simulation{width: width, height: height, scheduler: TimerScheduler{}}
	for _, opt := range opts {
		opt(s)
	}
	s.grid = newGrid(s.pool, width, height)
	return s, nil
}

// Width returns the number of columns
func (s *Simulation) Width() int {
	return s.width
}

// Height returns the number of rows
func (s *Simulation) Height() int {
	return s.height
}

// Generation returns the number of steps since creation or the last Start
func (s *Simulation) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// World returns a copy of the current grid indexed [x][y].
func (s *Simulation) World() [][]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Snapshot()
}

// String renders the current grid
func (s *Simulation) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.String()
}

// LivingCells returns the current population
func (s *Simulation) LivingCells() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.CountLivingCells()
}

// IsLiving reports whether (x, y) is alive. It never fails: any coordinate
// outside the grid is dead.
func (s *Simulation) IsLiving(x, y int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Get(x, y)
}

// CountLivingNeighbours returns how many of the eight cells around (x, y) are
// alive, counting off-grid cells as dead.
func (s *Simulation) CountLivingNeighbours(x, y int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.CountNeighbors(x, y)
}

// OnStep registers the callback fired after every generation, replacing any previous one.
func (s *Simulation) OnStep(fn func()) {
	s.mu.Lock()
	s.onStep = fn
	s.mu.Unlock()
}

// OnCellPopulated registers the callback fired when a cell is populated.
func (s *Simulation) OnCellPopulated(fn func(x, y int)) {
	s.mu.Lock()
	s.onCellPopulated = fn
	s.mu.Unlock()
}

// OnCellKilled registers the callback fired when a toggle kills a cell.
func (s *Simulation) OnCellKilled(fn func(x, y int)) {
	s.mu.Lock()
	s.onCellKilled = fn
	s.mu.Unlock()
}

// checkBounds is the validating access path used by every mutator. Unlike
// Grid.Get it rejects negative coordinates as well as ones past the edge.
func (s *Simulation) checkBounds(x, y int) error {
	if !s.grid.InBounds(x, y) {
		return errors.WithStack(&OutOfBoundsError{X: x, Y: y, Width: s.width, Height: s.height})
	}
	return nil
}

// PopulateCell brings (x, y) to life and notifies the population observer.
// Populating a living cell is allowed and still notifies.
func (s *Simulation) PopulateCell(x, y int) error {
	s.mu.Lock()
	if err := s.checkBounds(x, y); err != nil {
		s.mu.Unlock()
		return err
	}
	s.grid.cells[x][y] = true
	notify := s.onCellPopulated
	s.mu.Unlock()

	if notify != nil {
		notify(x, y)
	}
	return nil
}

// PopulateCells populates coords in order. It stops at the first coordinate
// outside the grid; cells populated before it stay alive.
func (s *Simulation) PopulateCells(coords []Coord) error {
	for i, c := range coords {
		if err := s.PopulateCell(c.X, c.Y); err != nil {
			return errors.Wrapf(err, "[PopulateCells] entry %d", i)
		}
	}
	return nil
}

// ToggleCell kills a living cell, notifying the kill observer, or populates a
// dead one exactly as PopulateCell does.
func (s *Simulation) ToggleCell(x, y int) error {
	s.mu.Lock()
	if err := s.checkBounds(x, y); err != nil {
		s.mu.Unlock()
		return err
	}

	alive := !s.grid.cells[x][y]
	s.grid.cells[x][y] = alive
	notify := s.onCellKilled
	if alive {
		notify = s.onCellPopulated
	}
	s.mu.Unlock()

	if notify != nil {
		notify(x, y)
	}
	return nil
}

// advanceLocked computes the next generation from the current grid and swaps it in.
func (s *Simulation) advanceLocked() {
	next := newGrid(s.pool, s.width, s.height)
	s.grid.NextGeneration(next)

	prev := s.grid
	s.grid = next
	GridToPool(prev, s.pool)

	s.generation++
}

// consumeLocked charges one step to r and reports whether r wants another.
func (s *Simulation) consumeLocked(r *run) bool {
	if r.remaining > 0 {
		r.remaining--
	}
	if r.remaining == 0 {
		s.finishLocked()
		return false
	}
	return true
}

func (s *Simulation) finishLocked() {
	if s.run == nil {
		return
	}
	close(s.run.done)
	s.run = nil
}

// Step advances the grid by one generation and fires the step observer. During
// a bounded run a manual Step counts against the remaining iterations; it never
// schedules steps of its own.
func (s *Simulation) Step() {
	s.mu.Lock()
	s.advanceLocked()
	if s.run != nil {
		s.consumeLocked(s.run)
	}
	notify := s.onStep
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Start resets the generation counter and runs iterations steps, or keeps
// stepping until stopped when iterations is Forever. The first step happens
// before Start returns. With a zero delay the whole run completes inside
// Start; otherwise later steps are handed to the scheduler, delay apart.
//
// Calling Start while a run is active supersedes it: the old run is finished
// and any step it still has pending is discarded.
func (s *Simulation) Start(delay time.Duration, iterations int) error {
	_, err := s.start(delay, iterations, nil)
	return err
}

// start registers a new run and executes it. hook, when set, receives the
// run's done channel before the first step.
func (s *Simulation) start(delay time.Duration, iterations int, hook func(<-chan struct{})) (<-chan struct{}, error) {
	if delay < 0 || (iterations < 0 && iterations != Forever) {
		return nil, errors.Wrapf(ErrInvalidRun, "[Start] delay=%v iterations=%d", delay, iterations)
	}

	s.mu.Lock()
	s.finishLocked()
	s.lastToken++
	r := &run{
		token:     s.lastToken,
		remaining: iterations,
		delay:     delay,
		done:      make(chan struct{}),
	}
	s.run = r
	s.generation = 0
	s.mu.Unlock()

	if hook != nil {
		hook(r.done)
	}
	s.runSteps(r.token)
	return r.done, nil
}

// runSteps executes the steps of the run identified by token until it ends or
// has to wait for the scheduler. Zero-delay runs loop here instead of recursing.
func (s *Simulation) runSteps(token uint64) {
	for {
		s.mu.Lock()
		r := s.run
		if r == nil || r.token != token {
			s.mu.Unlock()
			return
		}
		s.advanceLocked()
		more := s.consumeLocked(r)
		notify := s.onStep
		s.mu.Unlock()

		if notify != nil {
			notify()
		}
		if !more {
			return
		}
		if r.delay > 0 {
			s.scheduler.After(r.delay, func() { s.runSteps(token) })
			return
		}
	}
}

// Stop ends the active run, if any. A step already in progress completes.
func (s *Simulation) Stop() {
	s.mu.Lock()
	s.finishLocked()
	s.mu.Unlock()
}

// Running reports whether a run is active
func (s *Simulation) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.run != nil
}

// Done returns a channel closed when the active run ends. With no active run
// the returned channel is already closed.
func (s *Simulation) Done() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.run == nil {
		return closedDone
	}
	return s.run.done
}

// Run starts a run and blocks until it ends. Cancelling ctx stops the run and
// Run returns ctx.Err().
func (s *Simulation) Run(ctx context.Context, delay time.Duration, iterations int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		done    <-chan struct{}
		stopped bool
	)
	// A zero-delay run executes inside start, so the stop hook has to be in
	// place before it begins; it only stops the run this call started.
	stopHook := context.AfterFunc(ctx, func() {
		mu.Lock()
		defer mu.Unlock()
		stopped = true
		if done != nil {
			s.stopRun(done)
		}
	})
	defer stopHook()

	d, err := s.start(delay, iterations, func(c <-chan struct{}) {
		mu.Lock()
		defer mu.Unlock()
		done = c
		if stopped {
			s.stopRun(c)
		}
	})
	if err != nil {
		return err
	}

	select {
	case <-d:
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return ctx.Err()
		}
		return nil
	case <-ctx.Done():
		s.stopRun(d)
		return ctx.Err()
	}
}

// stopRun finishes the active run only if it is the one owning done.
func (s *Simulation) stopRun(done <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run != nil && (<-chan struct{})(s.run.done) == done {
		s.finishLocked()
	}
}
