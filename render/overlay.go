package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/score"
)

// Overlay texts
const (
	titleText       = "V I - S N A K E"
	pausedText      = "PAUSED"
	gameOverText    = "GAME OVER"
	newHighText     = "NEW HIGH SCORE!"
	leaderboardText = "LEADERBOARD"
	statsText       = "STATISTICS"
)

func (r *TerminalRenderer) drawMenu(fs engine.FrameState) {
	cx, _ := boardCenter(fs)
	y := 2

	r.drawCentered(cx, y, styleTitle, titleText)
	y += 2
	r.drawCentered(cx, y, styleHUD, fmt.Sprintf("HIGH SCORE %d", fs.HighScore))
	y += 2

	for i, d := range score.Difficulties() {
		line := fmt.Sprintf("[%d] %-6s  %3dms -> %3dms", i+1, d.Name, d.InitialSpeed.Milliseconds(), d.MinSpeed.Milliseconds())
		r.drawCentered(cx, y, styleDefault, line)
		y++
	}
	y++
	r.drawCentered(cx, y, styleDim, "[l] leaderboard  [s] stats  [m] mute  [q] quit")
	y++
	r.drawCentered(cx, y, styleDim, "arrows / wasd / hjkl move   space pause   r restart")
	y += 2

	if r.spectateURL != "" {
		r.drawCentered(cx, y, styleDim, "spectate: "+r.spectateURL)
		y += 2
		r.drawQR(cx, y)
	}
}

// drawQR draws the bitmap with half blocks, two bitmap rows per terminal row
func (r *TerminalRenderer) drawQR(cx, y int) {
	if len(r.qr) == 0 {
		return
	}
	width := len(r.qr[0])
	left := cx - width/2
	for row := 0; row < len(r.qr); row += 2 {
		for col := 0; col < width; col++ {
			top := r.qr[row][col]
			bottom := false
			if row+1 < len(r.qr) {
				bottom = r.qr[row+1][col]
			}
			// Foreground paints the upper half, background the lower; set bits are dark
			style := styleQR.Foreground(qrColor(top)).Background(qrColor(bottom))
			r.screen.SetContent(left+col, y+row/2, glyphQRTop, nil, style)
		}
	}
}

func qrColor(set bool) tcell.Color {
	if set {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

func (r *TerminalRenderer) drawPaused(fs engine.FrameState) {
	cx, cy := boardCenter(fs)
	r.drawCentered(cx, cy-1, styleHUD, pausedText)
	r.drawCentered(cx, cy+1, styleDim, "space resume  esc menu  r restart")
}

func (r *TerminalRenderer) drawGameOver(fs engine.FrameState) {
	cx, cy := boardCenter(fs)
	r.drawCentered(cx, cy-2, styleAlert, gameOverText)
	r.drawCentered(cx, cy, styleHUD, fmt.Sprintf("SCORE %d  LEVEL %d  (%s)", fs.Score, fs.Level, reasonText(fs.Reason)))
	if fs.NewHighScore {
		r.drawCentered(cx, cy+1, styleTitle, newHighText)
	}
	r.drawCentered(cx, cy+3, styleDim, "enter restart  esc menu  q quit")
}

func reasonText(reason string) string {
	switch reason {
	case engine.ReasonWall:
		return "hit the wall"
	case engine.ReasonSelf:
		return "bit yourself"
	case engine.ReasonBoardFull:
		return "board full"
	default:
		return reason
	}
}

func (r *TerminalRenderer) drawNotice(fs engine.FrameState) {
	cx, _ := boardCenter(fs)
	r.drawCentered(cx, boardTop+2, styleNotice, " "+fs.Notice+" ")
}

func (r *TerminalRenderer) drawLeaderboard(fs engine.FrameState) {
	cx, _ := boardCenter(fs)
	y := 2
	r.drawCentered(cx, y, styleTitle, leaderboardText)
	y += 2

	if len(fs.Leaderboard) == 0 {
		r.drawCentered(cx, y, styleDim, "no games yet")
		y += 2
	}
	for i, e := range fs.Leaderboard {
		line := fmt.Sprintf("%2d. %6d  %-6s  L%-2d  %s", i+1, e.Score, e.Difficulty, e.Level, e.Date.Local().Format("2006-01-02"))
		r.drawCentered(cx, y, styleDefault, line)
		y++
	}
	y++
	r.drawCentered(cx, y, styleDim, "[c] clear  [esc] back")
}

func (r *TerminalRenderer) drawStats(fs engine.FrameState) {
	cx, _ := boardCenter(fs)
	y := 2
	r.drawCentered(cx, y, styleTitle, statsText)
	y += 2

	st := fs.Stats
	lines := []string{
		fmt.Sprintf("games played   %8d", st.TotalGames),
		fmt.Sprintf("total score    %8d", st.TotalScore),
		fmt.Sprintf("average score  %8d", st.AverageScore()),
		fmt.Sprintf("food eaten     %8d", st.TotalFoodEaten),
		fmt.Sprintf("max level      %8d", st.MaxLevel),
	}
	for _, d := range score.Difficulties() {
		lines = append(lines, fmt.Sprintf("best %-9s %8d", d.Name, st.HighScores[d.Key]))
	}
	for _, l := range lines {
		r.drawCentered(cx, y, styleDefault, l)
		y++
	}
	y++
	r.drawCentered(cx, y, styleDim, "[c] clear  [esc] back")
}
