// Package render draws frames onto a tcell screen
package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

// Layout rows
const (
	hudRow    = 0
	boardTop  = 1 // top border row
	boardLeft = 0 // left border column
)

// TerminalRenderer implements engine.Renderer on a tcell screen
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen

	status      *status.Registry
	showMetrics bool

	spectateURL string
	qr          [][]bool
}

// NewTerminalRenderer creates a renderer drawing to screen
// A non-nil registry with showMetrics adds the metrics footer
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry, showMetrics bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen:      screen,
		status:      reg,
		showMetrics: showMetrics && reg != nil,
	}
}

// SetSpectate shows the spectator URL and its QR bitmap on the menu
func (r *TerminalRenderer) SetSpectate(url string, bitmap [][]bool) {
	r.mu.Lock()
	r.spectateURL = url
	r.qr = bitmap
	r.mu.Unlock()
}

// DrawFrame renders one frame and shows it
func (r *TerminalRenderer) DrawFrame(fs engine.FrameState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()

	switch fs.Phase {
	case engine.PhaseMenu:
		switch fs.Overlay {
		case engine.OverlayLeaderboard:
			r.drawLeaderboard(fs)
		case engine.OverlayStats:
			r.drawStats(fs)
		default:
			r.drawMenu(fs)
		}
	default:
		r.drawHUD(fs)
		r.drawBoard(fs)
		switch fs.Phase {
		case engine.PhasePaused:
			r.drawPaused(fs)
		case engine.PhaseGameOver:
			r.drawGameOver(fs)
		}
		if fs.Notice != "" {
			r.drawNotice(fs)
		}
	}

	if r.showMetrics {
		r.drawMetrics(fs)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawHUD(fs engine.FrameState) {
	x := r.drawText(boardLeft, hudRow, styleHUD, fmt.Sprintf("SCORE %d  LEVEL %d  HIGH %d  %s", fs.Score, fs.Level, fs.HighScore, fs.Difficulty))
	if fs.BoostRemaining > 0 {
		x = r.drawText(x+2, hudRow, styleBoost, fmt.Sprintf("BOOST %.1fs", fs.BoostRemaining.Seconds()))
	}
	if fs.Muted {
		r.drawText(x+2, hudRow, styleDim, "MUTED")
	}
}

func (r *TerminalRenderer) drawMetrics(fs engine.FrameState) {
	_, h := r.screen.Size()
	line := fmt.Sprintf("interval=%s", fs.Interval.Round(time.Millisecond))
	for _, l := range r.status.Lines() {
		line += " " + l
	}
	r.drawText(0, h-1, styleDim, line)
}

// drawText writes s from (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, style tcell.Style, s string) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// drawCentered writes s centered on column cx
func (r *TerminalRenderer) drawCentered(cx, y int, style tcell.Style, s string) {
	r.drawText(cx-len([]rune(s))/2, y, style, s)
}

// boardCenter returns the terminal column and row at the middle of the board
func boardCenter(fs engine.FrameState) (int, int) {
	return boardLeft + 1 + fs.Cols*cellWidth/2, boardTop + 1 + fs.Rows/2
}
