package persistence

import (
	"sort"

	"github.com/lixenwraith/vi-snake/constant"
)

// InsertEntry appends e, sorts by score descending and truncates to max
// The sort is stable: equal scores keep insertion order, so e ranks after earlier ties
func InsertEntry(entries []LeaderboardEntry, e LeaderboardEntry, max int) []LeaderboardEntry {
	if max <= 0 {
		max = constant.LeaderboardSize
	}

	out := make([]LeaderboardEntry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > max {
		out = out[:max]
	}
	return out
}

// GameResult is the summary of one finished session
type GameResult struct {
	Score      int
	Difficulty string
	Level      int
	FoodEaten  int
}

// ApplyGame folds a finished session into stats and returns the updated copy
func ApplyGame(stats Stats, r GameResult) Stats {
	out := stats.Clone()

	out.TotalGames++
	out.TotalScore += r.Score
	out.TotalFoodEaten += r.FoodEaten

	if r.Score > out.HighScores[r.Difficulty] {
		out.HighScores[r.Difficulty] = r.Score
	}
	if r.Level > out.MaxLevel {
		out.MaxLevel = r.Level
	}
	return out
}
