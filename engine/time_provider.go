package engine

import (
	"sync"
	"time"
)

// TimeProvider is the source of real time for a PausableClock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually advanced time source for tests and replays
type MockTimeProvider struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockTimeProvider creates a mock provider frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime jumps to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	m.mu.Unlock()
}
