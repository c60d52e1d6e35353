// Package status holds process-wide counters shown in the debug HUD
package status

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Metric keys
const (
	MetricTicks           = "engine.ticks"
	MetricFrames          = "engine.frames"
	MetricFoodEaten       = "engine.food_eaten"
	MetricPhase           = "engine.phase"
	MetricSaveFailed      = "persistence.save_failed"
	MetricSpectateClients = "spectate.clients"
)

// MaxTextLen bounds text metrics so the HUD footer stays one line per metric
const MaxTextLen = 24

// Text is a lock-free string metric, zero value is empty
type Text struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to MaxTextLen bytes
func (t *Text) Store(val string) {
	if len(val) > MaxTextLen {
		val = val[:MaxTextLen]
	}
	t.ptr.Store(&val)
}

// Load returns the current value
func (t *Text) Load() string {
	if p := t.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Registry maps metric keys to shared atomics
// Components look metrics up once during init and write the cached pointers
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	texts    map[string]*Text
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		texts:    make(map[string]*Text),
	}
}

// lookup returns items[key], allocating it under the write lock on first use
func lookup[T any](mu *sync.RWMutex, items map[string]*T, key string) *T {
	mu.RLock()
	ptr, ok := items[key]
	mu.RUnlock()
	if ok {
		return ptr
	}

	mu.Lock()
	defer mu.Unlock()
	if ptr, ok := items[key]; ok {
		return ptr
	}
	ptr = new(T)
	items[key] = ptr
	return ptr
}

// Counter returns the integer metric for key, creating it if absent
func (r *Registry) Counter(key string) *atomic.Int64 {
	return lookup(&r.mu, r.counters, key)
}

// Label returns the text metric for key, creating it if absent
func (r *Registry) Label(key string) *Text {
	return lookup(&r.mu, r.texts, key)
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters) + len(r.texts)
}

// Lines formats every metric as "key=value", counters first, each group sorted by key
func (r *Registry) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]string, 0, len(r.counters)+len(r.texts))
	for _, key := range sortedKeys(r.counters) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, r.counters[key].Load()))
	}
	for _, key := range sortedKeys(r.texts) {
		lines = append(lines, fmt.Sprintf("%s=%s", key, r.texts[key].Load()))
	}
	return lines
}

func sortedKeys[T any](items map[string]*T) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
