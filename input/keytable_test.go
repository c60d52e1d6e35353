package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslate(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name  string
		ev    *tcell.EventKey
		phase engine.Phase
		want  IntentType
		dir   grid.Direction
		diff  string
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.PhasePlaying, IntentDirection, grid.Up, ""},
		{"arrow left in menu", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.PhaseMenu, IntentDirection, grid.Left, ""},
		{"wasd", runeKey('s'), engine.PhasePlaying, IntentDirection, grid.Down, ""},
		{"uppercase", runeKey('D'), engine.PhasePaused, IntentDirection, grid.Right, ""},
		{"vi left", runeKey('h'), engine.PhasePlaying, IntentDirection, grid.Left, ""},
		{"vi up", runeKey('k'), engine.PhaseGameOver, IntentDirection, grid.Up, ""},
		{"h in menu picks hard", runeKey('h'), engine.PhaseMenu, IntentSelectDifficulty, 0, "HARD"},
		{"digit", runeKey('1'), engine.PhaseMenu, IntentSelectDifficulty, 0, "EASY"},
		{"digit ignored in game", runeKey('2'), engine.PhasePlaying, IntentNone, 0, ""},
		{"s in menu", runeKey('s'), engine.PhaseMenu, IntentShowStats, 0, ""},
		{"l in menu", runeKey('l'), engine.PhaseMenu, IntentShowLeaderboard, 0, ""},
		{"space", runeKey(' '), engine.PhasePlaying, IntentTogglePause, 0, ""},
		{"reset", runeKey('r'), engine.PhaseGameOver, IntentReset, 0, ""},
		{"mute", runeKey('m'), engine.PhaseMenu, IntentToggleMute, 0, ""},
		{"quit", runeKey('q'), engine.PhasePlaying, IntentQuit, 0, ""},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), engine.PhasePlaying, IntentQuit, 0, ""},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), engine.PhasePaused, IntentEscape, 0, ""},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), engine.PhaseGameOver, IntentConfirm, 0, ""},
		{"unbound", runeKey('z'), engine.PhasePlaying, IntentNone, 0, ""},
		{"unbound special", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), engine.PhasePlaying, IntentNone, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kt.Translate(tt.ev, tt.phase)
			if got.Type != tt.want {
				t.Fatalf("Type = %v, want %v", got.Type, tt.want)
			}
			if tt.want == IntentDirection && got.Direction != tt.dir {
				t.Errorf("Direction = %v, want %v", got.Direction, tt.dir)
			}
			if tt.want == IntentSelectDifficulty && got.Difficulty.Key != tt.diff {
				t.Errorf("Difficulty = %s, want %s", got.Difficulty.Key, tt.diff)
			}
		})
	}
}

func TestIntentTypeString(t *testing.T) {
	if IntentReset.String() != "reset" {
		t.Errorf("IntentReset = %q", IntentReset.String())
	}
	if IntentType(200).String() != "unknown" {
		t.Errorf("out of range = %q", IntentType(200).String())
	}
}
