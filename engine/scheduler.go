package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler drives the world on a fixed tick without busy-waiting.
// One goroutine, one World.Update per tick; stopping is idempotent
type Scheduler struct {
	world        *World
	tickInterval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	paused atomic.Bool
}

func NewScheduler(world *World, tickInterval time.Duration) *Scheduler {
	return &Scheduler{
		world:        world,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the tick loop. Calling Start twice is a no-op
func (s *Scheduler) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.run()
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			if s.paused.Load() {
				continue
			}
			s.world.Update()
		}
	}
}

// Stop halts the loop and waits for the in-flight tick to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
	s.running.Store(false)
}

// SetPaused freezes or resumes the simulation; ticks are skipped,
// not queued, so resuming never fast-forwards
func (s *Scheduler) SetPaused(paused bool) {
	s.paused.Store(paused)
}

// IsPaused reports the pause state
func (s *Scheduler) IsPaused() bool {
	return s.paused.Load()
}
