package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/food"
	"github.com/lixenwraith/vi-snake/particle"
)

// Glyphs, each board cell is two terminal columns wide
const (
	cellWidth = 2

	glyphBody   = '█'
	glyphFood   = '●'
	glyphDouble = '◆'
	glyphSpeed  = '▲'
	glyphSpark  = '•'
	glyphFade   = '·'

	glyphBorderH  = '─'
	glyphBorderV  = '│'
	glyphCornerTL = '┌'
	glyphCornerTR = '┐'
	glyphCornerBL = '└'
	glyphCornerBR = '┘'

	glyphQRTop = '▀'
)

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDead    = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBoost   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleAlert   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleQR      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

func foodGlyph(t food.Type) (rune, tcell.Style) {
	switch t {
	case food.Double:
		return glyphDouble, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case food.Speed:
		return glyphSpeed, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	default:
		return glyphFood, tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

func particleStyle(p particle.Particle) (rune, tcell.Style) {
	var color tcell.Color
	switch p.Kind {
	case particle.KindDouble:
		color = tcell.ColorYellow
	case particle.KindSpeed:
		color = tcell.ColorAqua
	default:
		color = tcell.ColorRed
	}
	if p.Life < 0.4 {
		return glyphFade, tcell.StyleDefault.Foreground(color).Dim(true)
	}
	return glyphSpark, tcell.StyleDefault.Foreground(color)
}
