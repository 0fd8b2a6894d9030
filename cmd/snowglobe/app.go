package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snowglobe/control"
	"github.com/lixenwraith/snowglobe/engine"
	"github.com/lixenwraith/snowglobe/snow"
	"github.com/lixenwraith/snowglobe/surface/termsurface"
)

// app owns the screen, the frame loop and the effect for one terminal session
type app struct {
	screen    tcell.Screen
	loop      *engine.FrameLoop
	container *termsurface.Container
	effect    *snow.Effect
	ctrl      *control.Controller

	statusStyle tcell.Style
}

// snowRect leaves the bottom row for the status line
func snowRect(w, h int) termsurface.Rect {
	if h > 1 {
		h--
	}
	return termsurface.Rect{X: 0, Y: 0, W: w, H: h}
}

// handleEvent applies one terminal event, returning false on quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.container.HandleEvent(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.container.SetRect(snowRect(a.screen.Size()))
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return false
	case ' ':
		a.ctrl.TogglePause()
	case '+', '=':
		a.ctrl.More()
	case '-', '_':
		a.ctrl.Fewer()
	case 'w':
		a.ctrl.ToggleWind()
	case 't':
		a.ctrl.ToggleTwinkle()
	case 's':
		a.ctrl.CycleShape()
	default:
		if r >= '1' && r <= '9' {
			a.ctrl.Preset(int(r - '0'))
		}
	}
	return true
}

// frame advances the loop one step and redraws
func (a *app) frame() {
	a.loop.RunFrame()
	a.container.Draw()
	a.drawStatus()
	a.screen.Show()
}

func (a *app) drawStatus() {
	w, h := a.screen.Size()
	if h < 2 || w < 1 {
		return
	}
	y := h - 1
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, a.statusStyle)
	}

	line := " " + a.ctrl.Status() + "   " + control.Help
	line = runewidth.Truncate(line, w, "…")
	x := 0
	for _, r := range line {
		a.screen.SetContent(x, y, r, nil, a.statusStyle)
		x += runewidth.RuneWidth(r)
	}
}
