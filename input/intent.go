// Package input translates terminal key events into game intents and applies them
package input

import (
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/score"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentEscape     // ESC (context-dependent)
	IntentToggleMute // m

	// Session control
	IntentDirection   // arrows, wasd, hjkl
	IntentTogglePause // Space
	IntentReset       // r
	IntentConfirm     // Enter

	// Menu
	IntentSelectDifficulty // 1/2/3, e/n/h
	IntentShowLeaderboard  // l
	IntentShowStats        // s
	IntentClear            // c on an overlay
)

var intentNames = [...]string{
	IntentNone:             "none",
	IntentQuit:             "quit",
	IntentEscape:           "escape",
	IntentToggleMute:       "toggle_mute",
	IntentDirection:        "direction",
	IntentTogglePause:      "toggle_pause",
	IntentReset:            "reset",
	IntentConfirm:          "confirm",
	IntentSelectDifficulty: "select_difficulty",
	IntentShowLeaderboard:  "show_leaderboard",
	IntentShowStats:        "show_stats",
	IntentClear:            "clear",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a key resolved against the current context
// Direction and Difficulty are set only for their intent types
type Intent struct {
	Type       IntentType
	Direction  grid.Direction
	Difficulty score.Difficulty
}
