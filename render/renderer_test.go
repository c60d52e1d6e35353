package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/food"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/particle"
	"github.com/lixenwraith/vi-snake/persistence"
	"github.com/lixenwraith/vi-snake/status"
)

const (
	testWidth  = 100
	testHeight = 40
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(testWidth, testHeight)
	t.Cleanup(screen.Fini)
	return screen
}

// screenText returns every row joined by newlines
func screenText(screen tcell.Screen) string {
	var sb strings.Builder
	for y := 0; y < testHeight; y++ {
		for x := 0; x < testWidth; x++ {
			ch, _, _, _ := screen.GetContent(x, y)
			if ch == 0 {
				ch = ' '
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func playingFrame() engine.FrameState {
	return engine.FrameState{
		Phase:      engine.PhasePlaying,
		Cols:       40,
		Rows:       30,
		Body:       []grid.Cell{grid.C(5, 5), grid.C(4, 5), grid.C(3, 5)},
		Direction:  grid.Right,
		Food:       food.Food{Position: grid.C(10, 7), Type: food.Double},
		HasFood:    true,
		Score:      120,
		Level:      2,
		HighScore:  300,
		Difficulty: "NORMAL",
		Interval:   95 * time.Millisecond,
	}
}

func TestDrawPlayingFrame(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, false)

	fs := playingFrame()
	fs.BoostRemaining = 1500 * time.Millisecond
	r.DrawFrame(fs)

	text := screenText(screen)
	if !strings.Contains(text, "SCORE 120  LEVEL 2  HIGH 300  NORMAL") {
		t.Errorf("HUD missing:\n%s", text)
	}
	if !strings.Contains(text, "BOOST 1.5s") {
		t.Error("boost indicator missing")
	}

	x, y := cellOrigin(grid.C(5, 5))
	ch, _, style, _ := screen.GetContent(x, y)
	if ch != glyphBody || style != styleHead {
		t.Errorf("head cell = %q, want body glyph in head style", ch)
	}
	ch, _, _, _ = screen.GetContent(x+1, y)
	if ch != glyphBody {
		t.Errorf("head second column = %q, want %q", ch, glyphBody)
	}

	x, y = cellOrigin(grid.C(10, 7))
	if ch, _, _, _ := screen.GetContent(x, y); ch != glyphDouble {
		t.Errorf("food = %q, want %q", ch, glyphDouble)
	}

	if ch, _, _, _ := screen.GetContent(boardLeft, boardTop); ch != glyphCornerTL {
		t.Errorf("corner = %q, want %q", ch, glyphCornerTL)
	}
	if ch, _, _, _ := screen.GetContent(boardLeft+1+40*cellWidth, boardTop+1+30); ch != glyphCornerBR {
		t.Errorf("bottom right corner = %q, want %q", ch, glyphCornerBR)
	}
}

func TestDrawMenu(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, false)

	r.DrawFrame(engine.FrameState{Phase: engine.PhaseMenu, Cols: 40, Rows: 30, HighScore: 42})

	text := screenText(screen)
	for _, want := range []string{titleText, "HIGH SCORE 42", "[1] Easy", "[2] Normal", "[3] Hard", "[l] leaderboard"} {
		if !strings.Contains(text, want) {
			t.Errorf("menu missing %q", want)
		}
	}
	if strings.Contains(text, "spectate:") {
		t.Error("spectate line shown without a server")
	}
}

func TestDrawMenuWithSpectateQR(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, false)
	r.SetSpectate("ws://host:8080/ws", [][]bool{
		{true, false},
		{false, true},
	})

	r.DrawFrame(engine.FrameState{Phase: engine.PhaseMenu, Cols: 40, Rows: 30})

	text := screenText(screen)
	if !strings.Contains(text, "spectate: ws://host:8080/ws") {
		t.Fatal("spectate URL missing")
	}
	if !strings.ContainsRune(text, glyphQRTop) {
		t.Error("QR code not drawn")
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name  string
		frame func() engine.FrameState
		want  []string
	}{
		{
			name: "paused",
			frame: func() engine.FrameState {
				fs := playingFrame()
				fs.Phase = engine.PhasePaused
				fs.Muted = true
				return fs
			},
			want: []string{pausedText, "space resume", "MUTED"},
		},
		{
			name: "game over",
			frame: func() engine.FrameState {
				fs := playingFrame()
				fs.Phase = engine.PhaseGameOver
				fs.Reason = engine.ReasonWall
				fs.NewHighScore = true
				return fs
			},
			want: []string{gameOverText, "hit the wall", newHighText, "enter restart"},
		},
		{
			name: "notice",
			frame: func() engine.FrameState {
				fs := playingFrame()
				fs.Notice = "Level Up!"
				return fs
			},
			want: []string{" Level Up! "},
		},
		{
			name: "leaderboard",
			frame: func() engine.FrameState {
				return engine.FrameState{
					Phase:   engine.PhaseMenu,
					Overlay: engine.OverlayLeaderboard,
					Cols:    40,
					Rows:    30,
					Leaderboard: []persistence.LeaderboardEntry{
						{Score: 250, Difficulty: "HARD", Level: 3, Date: time.Date(2026, 5, 4, 12, 0, 0, 0, time.Local)},
					},
				}
			},
			want: []string{leaderboardText, "250  HARD", "2026-05-04"},
		},
		{
			name: "empty leaderboard",
			frame: func() engine.FrameState {
				return engine.FrameState{Phase: engine.PhaseMenu, Overlay: engine.OverlayLeaderboard, Cols: 40, Rows: 30}
			},
			want: []string{"no games yet"},
		},
		{
			name: "stats",
			frame: func() engine.FrameState {
				st := persistence.ApplyGame(persistence.DefaultStats(), persistence.GameResult{
					Score: 80, Difficulty: "EASY", Level: 1, FoodEaten: 8,
				})
				return engine.FrameState{Phase: engine.PhaseMenu, Overlay: engine.OverlayStats, Cols: 40, Rows: 30, Stats: st}
			},
			want: []string{statsText, "games played          1", "food eaten            8", "best Easy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			r := NewTerminalRenderer(screen, nil, false)
			r.DrawFrame(tt.frame())

			text := screenText(screen)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("missing %q in:\n%s", want, text)
				}
			}
		})
	}
}

func TestDrawParticlesAndClipping(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, false)

	fs := playingFrame()
	fs.Body = append(fs.Body, grid.C(-1, 5)) // off board, skipped
	fs.Particles = []particle.Particle{
		{X: 20.2, Y: 10.5, Life: 0.9, Kind: particle.KindSpeed},
		{X: 20.7, Y: 11.5, Life: 0.1},
		{X: -3, Y: 2, Life: 1},
	}
	r.DrawFrame(fs)

	x, y := cellOrigin(grid.C(20, 10))
	if ch, _, _, _ := screen.GetContent(x, y); ch != glyphSpark {
		t.Errorf("live particle = %q, want %q", ch, glyphSpark)
	}
	x, y = cellOrigin(grid.C(20, 11))
	if ch, _, _, _ := screen.GetContent(x+1, y); ch != glyphFade {
		t.Errorf("fading particle = %q, want %q", ch, glyphFade)
	}
}

func TestDrawMetricsFooter(t *testing.T) {
	screen := newTestScreen(t)
	reg := status.NewRegistry()
	reg.Counter(status.MetricTicks).Store(12)
	r := NewTerminalRenderer(screen, reg, true)

	r.DrawFrame(playingFrame())

	text := screenText(screen)
	if !strings.Contains(text, "interval=95ms") || !strings.Contains(text, "engine.ticks=12") {
		t.Errorf("metrics footer missing:\n%s", text)
	}
}
