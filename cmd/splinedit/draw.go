package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/spline-toolkit/pkg/spline"
)

// Styles
var (
	styleCurve      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleKnot       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleKnotActive = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleHandle     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleHandleLine = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHelpTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// curveDrawSteps is the per-segment sampling used to plot the curve
// onto terminal cells.
const curveDrawSteps = 120

func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	ed.drawCanvas(w, h)
	if ed.mode == ModeHelp {
		ed.drawHelpOverlay(w, h)
	}
	ed.drawStatusBar(w, h)
}

func (ed *Editor) drawCanvas(w, h int) {
	s := ed.engine.Spline()

	// Handle lines and handle markers under everything else
	for _, k := range s.Knots() {
		ed.drawHandle(k, k.Handle1, w, h)
		if k.Handle2 != nil {
			ed.drawHandle(k, k.Handle2, w, h)
		}
	}

	if ed.showCurve {
		for i := 0; i < s.SegmentCount(); i++ {
			seg := s.Segment(i)
			for step := 0; step <= curveDrawSteps; step++ {
				p := seg.Eval(float64(step) / curveDrawSteps)
				ed.plot(int(p.X), int(p.Y), '·', styleCurve, w, h)
			}
		}
	}

	for _, k := range s.Knots() {
		style := styleKnot
		if k.Active {
			style = styleKnotActive
		}
		ed.plot(k.X, k.Y, '●', style, w, h)
	}
}

func (ed *Editor) drawHandle(k *spline.Knot, hp *spline.Point, w, h int) {
	ed.drawDottedLine(k.X, k.Y, hp.X, hp.Y, w, h)
	style := styleHandle
	if hp.Active {
		style = styleHandle.Bold(true)
	}
	ed.plot(hp.X, hp.Y, '□', style, w, h)
}

// drawDottedLine steps along the line plotting every other cell.
func (ed *Editor) drawDottedLine(x1, y1, x2, y2, w, h int) {
	dx := x2 - x1
	dy := y2 - y1
	steps := absInt(dx)
	if absInt(dy) > steps {
		steps = absInt(dy)
	}
	if steps == 0 {
		return
	}
	for i := 0; i <= steps; i += 2 {
		t := float64(i) / float64(steps)
		x := x1 + int(float64(dx)*t)
		y := y1 + int(float64(dy)*t)
		ed.plot(x, y, '┄', styleHandleLine, w, h)
	}
}

// plot writes a rune if it falls inside the canvas area.
func (ed *Editor) plot(x, y int, r rune, style tcell.Style, w, h int) {
	if x < 0 || x >= w || y < 0 || y >= h-1 {
		return
	}
	ed.screen.SetContent(x, y, r, nil, style)
}

func (ed *Editor) drawStatusBar(w, h int) {
	y := h - 1
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	s := ed.engine.Spline()
	modeStr := "natural"
	if s.Mode() == spline.ModeClassical {
		modeStr = "classical"
	}
	mod := ""
	if ed.modified {
		mod = " [+]"
	}
	left := fmt.Sprintf(" %d knots | %s | export: %s%s", s.Len(), modeStr, ed.config.ExportType, mod)
	ed.drawString(0, y, left, styleStatus)

	if ed.message != "" {
		style := styleStatus
		switch ed.messageType {
		case MsgError:
			style = styleMsgError
		case MsgSuccess:
			style = styleMsgSuccess
		}
		msg := truncate(ed.message, w-len(left)-3)
		ed.drawString(w-len(msg)-1, y, msg, style)
	}
}

func (ed *Editor) drawHelpOverlay(w, h int) {
	lines := []string{
		"Left click      add knot / drag point",
		"Click on curve  insert knot on curve",
		"Right click     remove knot",
		"Del             remove active knot",
		"Ctrl+Z / Ctrl+Y undo / redo",
		"Ctrl+S          save JSON",
		"e / t           export / cycle format",
		"w               show/hide curve",
		"r               clear spline",
		"q / Esc         quit",
	}

	boxW := 44
	boxH := len(lines) + 4
	x := (w - boxW) / 2
	y := (h - boxH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	ed.drawTitledBox(x, y, boxW, boxH, "splinedit")
	for i, line := range lines {
		ed.drawString(x+2, y+2+i, line, tcell.StyleDefault)
	}
}

// drawTitledBox draws a bordered box with optional title
func (ed *Editor) drawTitledBox(x, y, w, h int, title string) {
	ed.screen.SetContent(x, y, '┌', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)

	if title != "" {
		titleX := x + (w-len(title)-2)/2
		ed.screen.SetContent(titleX, y, ' ', nil, styleBorder)
		ed.drawString(titleX+1, y, title, styleHelpTitle)
		ed.screen.SetContent(titleX+1+len(title), y, ' ', nil, styleBorder)
	}

	for row := 1; row < h-1; row++ {
		ed.screen.SetContent(x, y+row, '│', nil, styleBorder)
		for col := 1; col < w-1; col++ {
			ed.screen.SetContent(x+col, y+row, ' ', nil, tcell.StyleDefault)
		}
		ed.screen.SetContent(x+w-1, y+row, '│', nil, styleBorder)
	}

	ed.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y+h-1, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)
}

func (ed *Editor) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		ed.screen.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
