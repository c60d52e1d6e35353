// Package persistence stores high score, stats and the leaderboard outside the session
package persistence

import (
	"errors"
	"time"
)

// ErrNotFound is returned by stores for absent records
var ErrNotFound = errors.New("record not found")

// Store defines the interface for score persistence
// Implementations must be safe for use from the game loop and background savers
type Store interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	LoadStats() (Stats, error)
	SaveStats(stats Stats) error
	AddLeaderboardEntry(score int, difficulty string, level int) ([]LeaderboardEntry, error)
	Leaderboard() ([]LeaderboardEntry, error)
	ClearLeaderboard() error
	ClearStats() error
	Close() error
}

// LeaderboardEntry is one finished session
type LeaderboardEntry struct {
	Score      int       `json:"score"`
	Difficulty string    `json:"difficulty"`
	Level      int       `json:"level"`
	Date       time.Time `json:"date"`
}

// Stats aggregates all finished sessions
type Stats struct {
	TotalGames     int            `json:"totalGames"`
	TotalScore     int            `json:"totalScore"`
	TotalFoodEaten int            `json:"totalFoodEaten"`
	MaxLevel       int            `json:"maxLevel"`
	HighScores     map[string]int `json:"highScores"`
}

// DefaultStats returns zeroed stats with level 1 and per-difficulty slots
func DefaultStats() Stats {
	return Stats{
		MaxLevel: 1,
		HighScores: map[string]int{
			"EASY":   0,
			"NORMAL": 0,
			"HARD":   0,
		},
	}
}

// AverageScore returns TotalScore/TotalGames, zero with no games
func (s Stats) AverageScore() int {
	if s.TotalGames == 0 {
		return 0
	}
	return s.TotalScore / s.TotalGames
}

// Clone returns a copy that shares no map with s
func (s Stats) Clone() Stats {
	out := s
	out.HighScores = make(map[string]int, len(s.HighScores))
	for k, v := range s.HighScores {
		out.HighScores[k] = v
	}
	return out
}
