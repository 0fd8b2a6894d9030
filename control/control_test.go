package control

import (
	"bytes"
	"log"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/snowglobe/engine"
	"github.com/lixenwraith/snowglobe/snow"
	"github.com/lixenwraith/snowglobe/surface/surfacetest"
)

type fakeAmbience struct {
	wind   bool
	speed  float64
	paused bool
	calls  int
}

func (f *fakeAmbience) SetWind(enabled bool, speed float64) {
	f.wind, f.speed = enabled, speed
	f.calls++
}

func (f *fakeAmbience) SetPaused(paused bool) {
	f.paused = paused
}

func newController(t *testing.T, preset string) (*Controller, *snow.Effect, *fakeAmbience) {
	t.Helper()
	loop := engine.NewFrameLoop(engine.NewMockTimeProvider(time.Unix(0, 0)))
	var in snow.Input
	if preset != "" {
		in = snow.PresetName(preset)
	}
	effect, err := snow.New(surfacetest.NewContainer(640, 480), loop, in,
		snow.WithRand(rand.New(rand.NewSource(1))),
		snow.WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	if err != nil {
		t.Fatalf("snow.New failed: %v", err)
	}
	t.Cleanup(effect.Destroy)

	amb := &fakeAmbience{}
	return New(effect, amb, preset), effect, amb
}

// TestTogglePause verifies pause state and ambience follow the toggle
func TestTogglePause(t *testing.T) {
	c, effect, amb := newController(t, "")

	c.TogglePause()
	if effect.Running() || !amb.paused {
		t.Fatal("Expected paused effect and ambience")
	}
	if !strings.Contains(c.Status(), "[paused]") {
		t.Errorf("Expected paused marker in %q", c.Status())
	}

	c.TogglePause()
	if !effect.Running() || amb.paused {
		t.Fatal("Expected running effect and ambience")
	}
}

// TestMoreFewer verifies flake count steps
func TestMoreFewer(t *testing.T) {
	c, effect, _ := newController(t, "")
	start := effect.Len()

	c.More()
	if effect.Len() != start+FlakeStep {
		t.Errorf("Expected %d flakes, got %d", start+FlakeStep, effect.Len())
	}
	for i := 0; i < 20; i++ {
		c.Fewer()
	}
	if effect.Len() != 0 {
		t.Errorf("Expected clamp at 0, got %d", effect.Len())
	}
}

// TestPresetSelection verifies number keys map to preset order
func TestPresetSelection(t *testing.T) {
	c, effect, amb := newController(t, "")

	if !c.Preset(2) {
		t.Fatal("Expected preset 2 to apply")
	}
	want, _ := snow.LookupPreset(snow.PresetNames()[1])
	if got := effect.Settings(); got.Shape != want.Shape || got.Wind != want.Wind {
		t.Errorf("Expected %s settings, got %+v", snow.PresetNames()[1], got)
	}
	if amb.wind != want.Wind || amb.speed != want.WindSpeed {
		t.Errorf("Ambience not synced: %+v", amb)
	}
	if !strings.HasPrefix(c.Status(), snow.PresetNames()[1]+"  ") {
		t.Errorf("Expected preset name in status, got %q", c.Status())
	}

	if c.Preset(0) || c.Preset(len(snow.PresetNames())+1) {
		t.Error("Expected out-of-range presets to be rejected")
	}
}

// TestToggles verifies wind, twinkle and shape toggles mark the preset modified
func TestToggles(t *testing.T) {
	c, effect, amb := newController(t, "winter")

	if c.Status()[:len("winter ")] != "winter " {
		t.Fatalf("Unexpected status %q", c.Status())
	}

	// winter has no wind and zero wind speed
	c.ToggleWind()
	s := effect.Settings()
	if !s.Wind || s.WindSpeed != snow.DefaultSettings().WindSpeed {
		t.Errorf("Expected wind on at default speed, got %+v", s)
	}
	if !amb.wind {
		t.Error("Expected ambience wind on")
	}

	twinkle := s.Twinkle
	c.ToggleTwinkle()
	if effect.Settings().Twinkle == twinkle {
		t.Error("Expected twinkle flipped")
	}

	c.CycleShape()
	if got := effect.Settings().Shape; got != Shapes[1] {
		t.Errorf("Expected shape %q after %q, got %q", Shapes[1], Shapes[0], got)
	}

	if !strings.HasPrefix(c.Status(), "winter*") {
		t.Errorf("Expected modified marker, got %q", c.Status())
	}
}

// TestCycleShapeUnknown verifies a shape outside the cycle restarts it
func TestCycleShapeUnknown(t *testing.T) {
	c, effect, _ := newController(t, "")
	effect.UpdateOptions(snow.Options{Shape: snow.Ptr("o")})

	c.CycleShape()
	if got := effect.Settings().Shape; got != Shapes[0] {
		t.Errorf("Expected %q, got %q", Shapes[0], got)
	}
	if !strings.HasPrefix(c.Status(), "custom*") {
		t.Errorf("Expected custom*, got %q", c.Status())
	}
}
