package main

import (
	"bytes"
	"log"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowglobe/control"
	"github.com/lixenwraith/snowglobe/engine"
	"github.com/lixenwraith/snowglobe/snow"
	"github.com/lixenwraith/snowglobe/surface/termsurface"
)

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	container, err := termsurface.New(screen, snowRect(screen.Size()), "#000000")
	if err != nil {
		t.Fatalf("termsurface.New failed: %v", err)
	}
	loop := engine.NewFrameLoop(engine.NewMockTimeProvider(time.Unix(0, 0)))
	effect, err := snow.New(container, loop, nil,
		snow.WithRand(rand.New(rand.NewSource(3))),
		snow.WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	if err != nil {
		t.Fatalf("snow.New failed: %v", err)
	}
	t.Cleanup(effect.Destroy)

	return &app{
		screen:    screen,
		loop:      loop,
		container: container,
		effect:    effect,
		ctrl:      control.New(effect, nil, ""),
	}, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestSnowRect verifies the status row is reserved
func TestSnowRect(t *testing.T) {
	if r := snowRect(80, 24); r.W != 80 || r.H != 23 {
		t.Errorf("Expected 80x23, got %dx%d", r.W, r.H)
	}
	if r := snowRect(10, 1); r.H != 1 {
		t.Errorf("Expected single row kept, got %d", r.H)
	}
}

// TestHandleKeyQuit verifies quit bindings
func TestHandleKeyQuit(t *testing.T) {
	a, _ := newTestApp(t)

	quits := []tcell.Event{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	}
	for _, ev := range quits {
		if a.handleEvent(ev) {
			t.Errorf("Expected quit on %v", ev)
		}
	}
	if !a.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Error("Expected arrow key to be ignored")
	}
}

// TestHandleKeyControls verifies key bindings reach the effect
func TestHandleKeyControls(t *testing.T) {
	a, _ := newTestApp(t)
	start := a.effect.Len()

	a.handleEvent(key('+'))
	if a.effect.Len() != start+control.FlakeStep {
		t.Errorf("Expected %d flakes, got %d", start+control.FlakeStep, a.effect.Len())
	}
	a.handleEvent(key('-'))
	if a.effect.Len() != start {
		t.Errorf("Expected %d flakes, got %d", start, a.effect.Len())
	}

	a.handleEvent(key(' '))
	if a.effect.Running() {
		t.Error("Expected paused after space")
	}
	a.handleEvent(key(' '))
	if !a.effect.Running() {
		t.Error("Expected running after second space")
	}

	a.handleEvent(key('w'))
	if !a.effect.Settings().Wind {
		t.Error("Expected wind on")
	}

	a.handleEvent(key('2'))
	blizzard, _ := snow.LookupPreset("blizzard")
	if a.effect.Settings() != blizzard {
		t.Errorf("Expected blizzard settings, got %+v", a.effect.Settings())
	}
}

// TestFrameDrawsStatus verifies the status line lands on the bottom row
func TestFrameDrawsStatus(t *testing.T) {
	a, screen := newTestApp(t)

	a.frame()
	if a.effect.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", a.effect.Ticks())
	}

	var row strings.Builder
	for x := 0; x < 80; x++ {
		mainc, _, _, _ := screen.GetContent(x, 23)
		row.WriteRune(mainc)
	}
	if !strings.Contains(row.String(), "flakes:50") {
		t.Errorf("Expected flake count in status row, got %q", row.String())
	}
}

// TestResize verifies the container follows the screen
func TestResize(t *testing.T) {
	a, screen := newTestApp(t)

	screen.SetSize(40, 10)
	a.handleEvent(tcell.NewEventResize(40, 10))
	if r := a.container.Rect(); r.W != 40 || r.H != 9 {
		t.Errorf("Expected 40x9 region, got %dx%d", r.W, r.H)
	}
}
