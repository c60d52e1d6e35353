package engine

import (
	"sync"
	"time"
)

// PausableClock derives game time from a real TimeProvider, minus time spent paused
// Game time is frozen while paused and continues from the frozen point on resume
type PausableClock struct {
	mu sync.RWMutex

	real      TimeProvider
	realStart time.Time
	gameStart time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a running clock; nil provider uses the monotonic system clock
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	now := real.Now()
	return &PausableClock{
		real:      real,
		realStart: now,
		gameStart: now,
	}
}

// Now returns current game time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.gameStart.Add(pc.pauseStart.Sub(pc.realStart) - pc.totalPaused)
	}
	return pc.gameStart.Add(pc.real.Now().Sub(pc.realStart) - pc.totalPaused)
}

// RealTime returns the provider time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause freezes game time, no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.real.Now()
}

// Resume continues game time, no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += pc.real.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.real.Now().Sub(pc.pauseStart)
	}
	return total
}
