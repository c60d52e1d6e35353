package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/score"
)

// KeyTable maps keys to intents, split by context
type KeyTable struct {
	// Non-rune keys, valid in every phase
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings on the menu and its overlays
	MenuRunes map[rune]Intent

	// Rune bindings while a session is shown (Playing, Paused, GameOver)
	GameRunes map[rune]Intent
}

func dir(d grid.Direction) Intent {
	return Intent{Type: IntentDirection, Direction: d}
}

func difficulty(d score.Difficulty) Intent {
	return Intent{Type: IntentSelectDifficulty, Difficulty: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentEscape},
			tcell.KeyEnter:  {Type: IntentConfirm},
			tcell.KeyUp:     dir(grid.Up),
			tcell.KeyDown:   dir(grid.Down),
			tcell.KeyLeft:   dir(grid.Left),
			tcell.KeyRight:  dir(grid.Right),
		},
		MenuRunes: map[rune]Intent{
			'1': difficulty(score.Easy),
			'2': difficulty(score.Normal),
			'3': difficulty(score.Hard),
			'e': difficulty(score.Easy),
			'n': difficulty(score.Normal),
			'h': difficulty(score.Hard),
			'l': {Type: IntentShowLeaderboard},
			's': {Type: IntentShowStats},
			'c': {Type: IntentClear},
			'm': {Type: IntentToggleMute},
			'q': {Type: IntentQuit},
		},
		GameRunes: map[rune]Intent{
			'w': dir(grid.Up),
			'a': dir(grid.Left),
			's': dir(grid.Down),
			'd': dir(grid.Right),
			'k': dir(grid.Up),
			'h': dir(grid.Left),
			'j': dir(grid.Down),
			'l': dir(grid.Right),
			' ': {Type: IntentTogglePause},
			'p': {Type: IntentTogglePause},
			'r': {Type: IntentReset},
			'm': {Type: IntentToggleMute},
			'q': {Type: IntentQuit},
		},
	}
}

// Translate resolves a key event in the given phase, IntentNone when unbound
func (kt *KeyTable) Translate(ev *tcell.EventKey, phase engine.Phase) Intent {
	if ev.Key() != tcell.KeyRune {
		if in, ok := kt.SpecialKeys[ev.Key()]; ok {
			return in
		}
		return Intent{}
	}

	runes := kt.GameRunes
	if phase == engine.PhaseMenu {
		runes = kt.MenuRunes
	}
	if in, ok := runes[unicode.ToLower(ev.Rune())]; ok {
		return in
	}
	return Intent{}
}
