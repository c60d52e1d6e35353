package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/score"
)

// Controller is the game surface driven by input, satisfied by *engine.Game
type Controller interface {
	Phase() engine.Phase
	Overlay() engine.Overlay
	Difficulty() score.Difficulty

	Start(d score.Difficulty) bool
	Restart()
	TogglePause()
	ReturnToMenu() bool
	SubmitDirection(d grid.Direction)
	ToggleMute() bool

	ShowLeaderboard() bool
	ShowStats() bool
	ClearOverlay()
	CloseOverlay()
}

// Handler applies key events to a Controller
type Handler struct {
	table *KeyTable
	ctl   Controller
}

// NewHandler creates a handler; nil table uses DefaultKeyTable
func NewHandler(ctl Controller, table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table, ctl: ctl}
}

// HandleEvent processes a tcell event, returns false when the program should quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in := h.table.Translate(ev, h.ctl.Phase())
		return h.Apply(in)
	}
	return true
}

// Apply executes an intent in the current phase, returns false on quit
func (h *Handler) Apply(in Intent) bool {
	phase := h.ctl.Phase()

	switch in.Type {
	case IntentQuit:
		return false

	case IntentToggleMute:
		h.ctl.ToggleMute()

	case IntentDirection:
		// Engine drops directions outside Playing and Paused
		h.ctl.SubmitDirection(in.Direction)

	case IntentTogglePause:
		h.ctl.TogglePause()

	case IntentReset:
		if phase != engine.PhaseMenu {
			h.ctl.Restart()
		}

	case IntentEscape:
		switch phase {
		case engine.PhasePlaying:
			h.ctl.TogglePause()
		case engine.PhasePaused, engine.PhaseGameOver:
			h.ctl.ReturnToMenu()
		case engine.PhaseMenu:
			h.ctl.CloseOverlay()
		}

	case IntentConfirm:
		switch phase {
		case engine.PhaseGameOver:
			h.ctl.Restart()
		case engine.PhaseMenu:
			if h.ctl.Overlay() == engine.OverlayNone {
				h.ctl.Start(h.ctl.Difficulty())
			}
		}

	case IntentSelectDifficulty:
		if phase == engine.PhaseMenu && h.ctl.Overlay() == engine.OverlayNone {
			h.ctl.Start(in.Difficulty)
		}

	case IntentShowLeaderboard:
		h.ctl.ShowLeaderboard()

	case IntentShowStats:
		h.ctl.ShowStats()

	case IntentClear:
		if phase == engine.PhaseMenu && h.ctl.Overlay() != engine.OverlayNone {
			h.ctl.ClearOverlay()
		}
	}
	return true
}
