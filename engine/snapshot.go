package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/food"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/particle"
	"github.com/lixenwraith/vi-snake/persistence"
)

// FrameState is an immutable copy of everything a frame needs
// Renderers and spectators own it; mutating it never affects the session
type FrameState struct {
	Phase   Phase   `json:"phase"`
	Overlay Overlay `json:"-"`

	Cols      int            `json:"cols"`
	Rows      int            `json:"rows"`
	Body      []grid.Cell    `json:"body"`
	Direction grid.Direction `json:"-"`
	Food      food.Food      `json:"food"`
	HasFood   bool           `json:"has_food"`

	Score        int    `json:"score"`
	Level        int    `json:"level"`
	HighScore    int    `json:"high_score"`
	NewHighScore bool   `json:"new_high_score"`
	FoodEaten    int    `json:"food_eaten"`
	Difficulty   string `json:"difficulty"`
	Reason       string `json:"reason,omitempty"`
	Tick         uint64 `json:"tick"`

	Interval       time.Duration `json:"interval"`
	BoostRemaining time.Duration `json:"boost_remaining"`

	Notice string `json:"notice,omitempty"`
	Muted  bool   `json:"-"`

	Particles   []particle.Particle            `json:"-"`
	Leaderboard []persistence.LeaderboardEntry `json:"-"`
	Stats       persistence.Stats              `json:"-"`
}
