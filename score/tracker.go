// Package score implements score accumulation, level derivation, the speed curve and the boost effect
package score

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-snake/constant"
)

// LevelFor returns floor(score/levelUpScore) + 1
func LevelFor(score, levelUpScore int) int {
	if levelUpScore <= 0 || score < 0 {
		return 1
	}
	return score/levelUpScore + 1
}

// Tracker accumulates the session score; level is always derived
type Tracker struct {
	score        int
	levelUpScore int
}

// NewTracker creates a tracker; non-positive thresholds use constant.LevelUpScore
func NewTracker(levelUpScore int) *Tracker {
	if levelUpScore <= 0 {
		levelUpScore = constant.LevelUpScore
	}
	return &Tracker{levelUpScore: levelUpScore}
}

// Add awards points and reports whether the level increased
// Negative points are ignored, the score never decreases within a session
func (t *Tracker) Add(points int) (leveledUp bool) {
	if points <= 0 {
		return false
	}
	before := t.Level()
	t.score += points
	return t.Level() > before
}

// Score returns the accumulated score
func (t *Tracker) Score() int {
	return t.score
}

// Level returns the level derived from the score
func (t *Tracker) Level() int {
	return LevelFor(t.score, t.levelUpScore)
}

// Reset zeroes the score
func (t *Tracker) Reset() {
	t.score = 0
}

// Boost is the time-boxed tick interval reduction from SPEED food
// Re-activation replaces the expiry, it never stacks
type Boost struct {
	expiry     time.Time
	multiplier float64
}

// NewBoost creates an inactive boost with the given interval multiplier
func NewBoost(multiplier float64) *Boost {
	if multiplier <= 0 || multiplier > 1 {
		multiplier = constant.BoostMultiplier
	}
	return &Boost{multiplier: multiplier}
}

// Activate sets the expiry to now+d
func (b *Boost) Activate(now time.Time, d time.Duration) {
	b.expiry = now.Add(d)
}

// Active reports now < expiry
func (b *Boost) Active(now time.Time) bool {
	return !b.expiry.IsZero() && now.Before(b.expiry)
}

// Remaining returns the time left, zero when inactive
func (b *Boost) Remaining(now time.Time) time.Duration {
	if !b.Active(now) {
		return 0
	}
	return b.expiry.Sub(now)
}

// Expiry returns the current expiry, zero if never activated
func (b *Boost) Expiry() time.Time {
	return b.expiry
}

// Apply scales interval by the multiplier while active
func (b *Boost) Apply(interval time.Duration, now time.Time) time.Duration {
	if !b.Active(now) {
		return interval
	}
	return time.Duration(math.Round(float64(interval) * b.multiplier))
}

// Clear deactivates the boost
func (b *Boost) Clear() {
	b.expiry = time.Time{}
}
