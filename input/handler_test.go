package input

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/score"
)

type fakeController struct {
	phase   engine.Phase
	overlay engine.Overlay
	diff    score.Difficulty
	calls   []string
	dirs    []grid.Direction
	started []string
}

func (f *fakeController) Phase() engine.Phase          { return f.phase }
func (f *fakeController) Overlay() engine.Overlay       { return f.overlay }
func (f *fakeController) Difficulty() score.Difficulty { return f.diff }

func (f *fakeController) Start(d score.Difficulty) bool {
	f.calls = append(f.calls, "start")
	f.started = append(f.started, d.Key)
	return true
}
func (f *fakeController) Restart()      { f.calls = append(f.calls, "restart") }
func (f *fakeController) TogglePause()  { f.calls = append(f.calls, "pause") }
func (f *fakeController) ClearOverlay() { f.calls = append(f.calls, "clear") }
func (f *fakeController) CloseOverlay() { f.calls = append(f.calls, "close") }

func (f *fakeController) ReturnToMenu() bool {
	f.calls = append(f.calls, "menu")
	return true
}
func (f *fakeController) SubmitDirection(d grid.Direction) {
	f.calls = append(f.calls, "direction")
	f.dirs = append(f.dirs, d)
}
func (f *fakeController) ToggleMute() bool {
	f.calls = append(f.calls, "mute")
	return true
}
func (f *fakeController) ShowLeaderboard() bool {
	f.calls = append(f.calls, "leaderboard")
	return true
}
func (f *fakeController) ShowStats() bool {
	f.calls = append(f.calls, "stats")
	return true
}

var _ Controller = (*engine.Game)(nil)

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		phase   engine.Phase
		overlay engine.Overlay
		intent  Intent
		want    []string
	}{
		{"escape pauses", engine.PhasePlaying, engine.OverlayNone, Intent{Type: IntentEscape}, []string{"pause"}},
		{"escape from pause goes to menu", engine.PhasePaused, engine.OverlayNone, Intent{Type: IntentEscape}, []string{"menu"}},
		{"escape from game over goes to menu", engine.PhaseGameOver, engine.OverlayNone, Intent{Type: IntentEscape}, []string{"menu"}},
		{"escape closes overlay", engine.PhaseMenu, engine.OverlayStats, Intent{Type: IntentEscape}, []string{"close"}},
		{"enter restarts after game over", engine.PhaseGameOver, engine.OverlayNone, Intent{Type: IntentConfirm}, []string{"restart"}},
		{"enter starts from menu", engine.PhaseMenu, engine.OverlayNone, Intent{Type: IntentConfirm}, []string{"start"}},
		{"enter ignored on overlay", engine.PhaseMenu, engine.OverlayLeaderboard, Intent{Type: IntentConfirm}, nil},
		{"enter ignored while playing", engine.PhasePlaying, engine.OverlayNone, Intent{Type: IntentConfirm}, nil},
		{"reset while playing", engine.PhasePlaying, engine.OverlayNone, Intent{Type: IntentReset}, []string{"restart"}},
		{"reset ignored in menu", engine.PhaseMenu, engine.OverlayNone, Intent{Type: IntentReset}, nil},
		{"difficulty on menu", engine.PhaseMenu, engine.OverlayNone, difficulty(score.Hard), []string{"start"}},
		{"difficulty ignored on overlay", engine.PhaseMenu, engine.OverlayStats, difficulty(score.Hard), nil},
		{"clear on overlay", engine.PhaseMenu, engine.OverlayLeaderboard, Intent{Type: IntentClear}, []string{"clear"}},
		{"clear ignored without overlay", engine.PhaseMenu, engine.OverlayNone, Intent{Type: IntentClear}, nil},
		{"direction", engine.PhasePlaying, engine.OverlayNone, dir(grid.Left), []string{"direction"}},
		{"mute", engine.PhasePaused, engine.OverlayNone, Intent{Type: IntentToggleMute}, []string{"mute"}},
		{"none", engine.PhasePlaying, engine.OverlayNone, Intent{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := &fakeController{phase: tt.phase, overlay: tt.overlay, diff: score.Normal}
			h := NewHandler(ctl, nil)
			if !h.Apply(tt.intent) {
				t.Fatal("Apply returned quit")
			}
			if !reflect.DeepEqual(ctl.calls, tt.want) {
				t.Errorf("calls = %v, want %v", ctl.calls, tt.want)
			}
		})
	}
}

func TestApplyQuit(t *testing.T) {
	ctl := &fakeController{phase: engine.PhasePlaying}
	h := NewHandler(ctl, nil)
	if h.Apply(Intent{Type: IntentQuit}) {
		t.Error("quit intent should stop the loop")
	}
	if len(ctl.calls) != 0 {
		t.Errorf("quit touched controller: %v", ctl.calls)
	}
}

func TestHandleEvent(t *testing.T) {
	ctl := &fakeController{phase: engine.PhaseMenu, diff: score.Normal}
	h := NewHandler(ctl, nil)

	if !h.HandleEvent(runeKey('3')) {
		t.Fatal("unexpected quit")
	}
	if !reflect.DeepEqual(ctl.started, []string{"HARD"}) {
		t.Errorf("started = %v, want [HARD]", ctl.started)
	}

	ctl.phase = engine.PhasePlaying
	h.HandleEvent(runeKey('k'))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if !reflect.DeepEqual(ctl.dirs, []grid.Direction{grid.Up, grid.Right}) {
		t.Errorf("dirs = %v", ctl.dirs)
	}

	if !h.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize should not quit")
	}
	if h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl+C should quit")
	}
}
