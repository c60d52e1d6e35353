package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lixenwraith/vi-snake/constant"
)

// JSONStore handles persistence using a local JSON file
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	// Serializes snapshot, temp write and rename so saves land in order
	saveMu sync.Mutex
	data   *JSONData
	now    func() time.Time
}

// JSONData represents the structure of the JSON file
type JSONData struct {
	HighScore   int                `json:"highScore"`
	Stats       Stats              `json:"stats"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// NewJSONStore opens or creates the JSON store at filePath
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data: &JSONData{
			Stats:       DefaultStats(),
			Leaderboard: []LeaderboardEntry{},
		},
		now: time.Now,
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	}

	return store, nil
}

// loadFromFile loads data from the JSON file
func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(file, js.data); err != nil {
		return err
	}
	if js.data.Stats.HighScores == nil {
		js.data.Stats.HighScores = DefaultStats().HighScores
	}
	if js.data.Stats.MaxLevel < 1 {
		js.data.Stats.MaxLevel = 1
	}
	return nil
}

// saveToFile writes the data through a temp file and rename
func (js *JSONStore) saveToFile() error {
	js.saveMu.Lock()
	defer js.saveMu.Unlock()

	js.mutex.RLock()
	data, err := json.MarshalIndent(js.data, "", "  ")
	js.mutex.RUnlock()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(js.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := js.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, js.filePath)
}

// LoadHighScore returns the stored high score
func (js *JSONStore) LoadHighScore() (int, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	return js.data.HighScore, nil
}

// SaveHighScore replaces the stored high score
func (js *JSONStore) SaveHighScore(score int) error {
	js.mutex.Lock()
	js.data.HighScore = score
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadStats returns a copy of the stored stats
func (js *JSONStore) LoadStats() (Stats, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	return js.data.Stats.Clone(), nil
}

// SaveStats replaces the stored stats
func (js *JSONStore) SaveStats(stats Stats) error {
	js.mutex.Lock()
	js.data.Stats = stats.Clone()
	js.mutex.Unlock()

	return js.saveToFile()
}

// AddLeaderboardEntry records a finished session and returns the retained top list
func (js *JSONStore) AddLeaderboardEntry(score int, difficulty string, level int) ([]LeaderboardEntry, error) {
	js.mutex.Lock()
	js.data.Leaderboard = InsertEntry(js.data.Leaderboard, LeaderboardEntry{
		Score:      score,
		Difficulty: difficulty,
		Level:      level,
		Date:       js.now().UTC(),
	}, constant.LeaderboardSize)
	top := copyEntries(js.data.Leaderboard)
	js.mutex.Unlock()

	if err := js.saveToFile(); err != nil {
		return top, fmt.Errorf("failed to save leaderboard: %w", err)
	}
	return top, nil
}

// Leaderboard returns the retained entries, best first
func (js *JSONStore) Leaderboard() ([]LeaderboardEntry, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	return copyEntries(js.data.Leaderboard), nil
}

// ClearLeaderboard removes all entries
func (js *JSONStore) ClearLeaderboard() error {
	js.mutex.Lock()
	js.data.Leaderboard = []LeaderboardEntry{}
	js.mutex.Unlock()

	return js.saveToFile()
}

// ClearStats resets stats to defaults
func (js *JSONStore) ClearStats() error {
	js.mutex.Lock()
	js.data.Stats = DefaultStats()
	js.mutex.Unlock()

	return js.saveToFile()
}

// Close closes the store (no-op for JSON store)
func (js *JSONStore) Close() error {
	return nil
}
