package persistence

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-snake/constant"
)

// MemoryStore keeps everything in process memory, lost on exit
type MemoryStore struct {
	mu          sync.RWMutex
	highScore   int
	stats       Stats
	leaderboard []LeaderboardEntry
	now         func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		stats: DefaultStats(),
		now:   time.Now,
	}
}

func (m *MemoryStore) LoadHighScore() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.highScore, nil
}

func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	m.highScore = score
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) LoadStats() (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats.Clone(), nil
}

func (m *MemoryStore) SaveStats(stats Stats) error {
	m.mu.Lock()
	m.stats = stats.Clone()
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) AddLeaderboardEntry(score int, difficulty string, level int) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.leaderboard = InsertEntry(m.leaderboard, LeaderboardEntry{
		Score:      score,
		Difficulty: difficulty,
		Level:      level,
		Date:       m.now().UTC(),
	}, constant.LeaderboardSize)
	return copyEntries(m.leaderboard), nil
}

func (m *MemoryStore) Leaderboard() ([]LeaderboardEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyEntries(m.leaderboard), nil
}

func (m *MemoryStore) ClearLeaderboard() error {
	m.mu.Lock()
	m.leaderboard = nil
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) ClearStats() error {
	m.mu.Lock()
	m.stats = DefaultStats()
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func copyEntries(in []LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(in))
	copy(out, in)
	return out
}
