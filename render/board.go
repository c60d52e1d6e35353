package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
)

// cellOrigin maps a board cell to its first terminal column and row
func cellOrigin(c grid.Cell) (int, int) {
	return boardLeft + 1 + c.X*cellWidth, boardTop + 1 + c.Y
}

func (r *TerminalRenderer) drawBoard(fs engine.FrameState) {
	r.drawBorder(fs.Cols, fs.Rows)

	if fs.HasFood {
		ch, style := foodGlyph(fs.Food.Type)
		x, y := cellOrigin(fs.Food.Position)
		r.screen.SetContent(x, y, ch, nil, style)
		r.screen.SetContent(x+1, y, ' ', nil, styleDefault)
	}

	body, head := styleBody, styleHead
	if fs.Phase == engine.PhaseGameOver {
		body, head = styleDead, styleDead
	}
	// Tail first so the head wins on a self collision
	for i := len(fs.Body) - 1; i >= 0; i-- {
		c := fs.Body[i]
		if c.X < 0 || c.Y < 0 || c.X >= fs.Cols || c.Y >= fs.Rows {
			continue
		}
		style := body
		if i == 0 {
			style = head
		}
		r.fillCell(c, glyphBody, style)
	}

	for _, p := range fs.Particles {
		cx, cy := int(math.Floor(p.X)), int(math.Floor(p.Y))
		if cx < 0 || cy < 0 || cx >= fs.Cols || cy >= fs.Rows {
			continue
		}
		ch, style := particleStyle(p)
		x, y := cellOrigin(grid.C(cx, cy))
		// Left or right half of the cell by sub-cell position
		if p.X-float64(cx) >= 0.5 {
			x++
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) fillCell(c grid.Cell, ch rune, style tcell.Style) {
	x, y := cellOrigin(c)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawBorder(cols, rows int) {
	left := boardLeft
	right := boardLeft + 1 + cols*cellWidth
	top := boardTop
	bottom := boardTop + 1 + rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, glyphBorderH, nil, styleBorder)
		r.screen.SetContent(x, bottom, glyphBorderH, nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, glyphBorderV, nil, styleBorder)
		r.screen.SetContent(right, y, glyphBorderV, nil, styleBorder)
	}
	r.screen.SetContent(left, top, glyphCornerTL, nil, styleBorder)
	r.screen.SetContent(right, top, glyphCornerTR, nil, styleBorder)
	r.screen.SetContent(left, bottom, glyphCornerBL, nil, styleBorder)
	r.screen.SetContent(right, bottom, glyphCornerBR, nil, styleBorder)
}
