package engine

import (
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/persistence"
	"github.com/lixenwraith/vi-snake/score"
)

// Phase returns the current phase
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Overlay returns the menu overlay shown
func (g *Game) Overlay() Overlay {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.overlay
}

// Difficulty returns the difficulty of the current or last session
func (g *Game) Difficulty() score.Difficulty {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.difficulty
}

// Score returns the session score
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.Score()
}

// Level returns the session level
func (g *Game) Level() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.Level()
}

// HighScore returns the best score known to this process
func (g *Game) HighScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.highScore
}

// Ticks returns the number of steps in the session
func (g *Game) Ticks() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks
}

// Body returns a copy of the snake body, head first
func (g *Game) Body() []grid.Cell {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snake.Body()
}

// Snapshot returns the frame state without advancing anything
func (g *Game) Snapshot() FrameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() FrameState {
	now := g.clock.Now()
	fs := FrameState{
		Phase:          g.phase,
		Overlay:        g.overlay,
		Cols:           g.grid.Cols,
		Rows:           g.grid.Rows,
		Direction:      g.snake.Direction(),
		Score:          g.tracker.Score(),
		Level:          g.tracker.Level(),
		HighScore:      g.highScore,
		NewHighScore:   g.newHighScore,
		FoodEaten:      g.foodEaten,
		Difficulty:     g.difficulty.Key,
		Reason:         g.reason,
		Tick:           g.ticks,
		Interval:       g.effectiveIntervalLocked(now),
		BoostRemaining: g.boost.Remaining(now),
		Muted:          g.Muted(),
		Particles:      g.particles.Snapshot(),
	}

	if g.phase != PhaseMenu {
		fs.Body = g.snake.Body()
		fs.Food = g.spawner.Current()
		fs.HasFood = true
	}
	if g.notice != "" && g.clock.RealTime().Before(g.noticeUntil) {
		fs.Notice = g.notice
	}

	switch g.overlay {
	case OverlayLeaderboard:
		fs.Leaderboard = append([]persistence.LeaderboardEntry(nil), g.leaderboard...)
	case OverlayStats:
		fs.Stats = g.stats.Clone()
	}
	return fs
}

// ShowLeaderboard opens the leaderboard overlay on the menu, reloading it from the store
func (g *Game) ShowLeaderboard() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseMenu {
		return false
	}
	if g.store != nil {
		if lb, err := g.store.Leaderboard(); err == nil {
			g.leaderboard = lb
		} else {
			g.saveFailedLocked("leaderboard load", err)
		}
	}
	g.overlay = OverlayLeaderboard
	return true
}

// ShowStats opens the stats overlay on the menu, reloading stats from the store
func (g *Game) ShowStats() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseMenu {
		return false
	}
	if g.store != nil {
		if stats, err := g.store.LoadStats(); err == nil {
			g.stats = stats
			g.statsLoaded = true
		} else {
			g.saveFailedLocked("stats load", err)
		}
	}
	g.overlay = OverlayStats
	return true
}

// ClearOverlay erases the data behind the open overlay
func (g *Game) ClearOverlay() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.overlay {
	case OverlayLeaderboard:
		g.leaderboard = nil
		if g.store != nil {
			if err := g.store.ClearLeaderboard(); err != nil {
				g.saveFailedLocked("leaderboard clear", err)
			}
		}
	case OverlayStats:
		g.stats = persistence.DefaultStats()
		if g.store != nil {
			if err := g.store.ClearStats(); err != nil {
				g.saveFailedLocked("stats clear", err)
			} else {
				g.statsLoaded = true
			}
		}
	}
}

// CloseOverlay returns to the plain menu
func (g *Game) CloseOverlay() {
	g.mu.Lock()
	g.overlay = OverlayNone
	g.mu.Unlock()
}
