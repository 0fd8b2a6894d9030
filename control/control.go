// Package control maps driver key bindings onto a running snow effect and renders its status line.
package control

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/snowglobe/snow"
)

// FlakeStep is the number of flakes added or removed per key press
const FlakeStep = 10

// Shapes is the glyph cycle for CycleShape
var Shapes = []string{"•", "❄", "❅", "❆", "✦", "❉", "·", "*"}

// Ambience follows effect state changes; audio.Ambience satisfies it
type Ambience interface {
	SetWind(enabled bool, speed float64)
	SetPaused(paused bool)
}

// Controller applies user actions to an effect
type Controller struct {
	effect   *snow.Effect
	ambience Ambience

	preset   string
	modified bool
}

// New wraps effect; ambience may be nil
func New(effect *snow.Effect, ambience Ambience, preset string) *Controller {
	c := &Controller{
		effect:   effect,
		ambience: ambience,
		preset:   strings.ToLower(preset),
	}
	c.syncAmbience()
	return c
}

// TogglePause pauses a running effect or resumes a paused one
func (c *Controller) TogglePause() {
	if c.effect.Running() {
		c.effect.Pause()
	} else {
		c.effect.Resume()
	}
	if c.ambience != nil {
		c.ambience.SetPaused(!c.effect.Running())
	}
}

// More adds FlakeStep flakes
func (c *Controller) More() {
	c.effect.AddFlakes(FlakeStep)
}

// Fewer removes up to FlakeStep flakes
func (c *Controller) Fewer() {
	c.effect.RemoveFlakes(FlakeStep)
}

// Preset selects the i-th preset (1-based, as on the number row)
func (c *Controller) Preset(i int) bool {
	names := snow.PresetNames()
	if i < 1 || i > len(names) {
		return false
	}
	if !c.effect.UsePreset(names[i-1]) {
		return false
	}
	c.preset = names[i-1]
	c.modified = false
	c.syncAmbience()
	return true
}

// ToggleWind flips wind, keeping the current wind speed
func (c *Controller) ToggleWind() {
	s := c.effect.Settings()
	opts := snow.Options{Wind: snow.Ptr(!s.Wind)}
	if !s.Wind && s.WindSpeed == 0 {
		opts.WindSpeed = snow.Ptr(snow.DefaultSettings().WindSpeed)
	}
	c.update(opts)
	c.syncAmbience()
}

// ToggleTwinkle flips twinkling
func (c *Controller) ToggleTwinkle() {
	c.update(snow.Options{Twinkle: snow.Ptr(!c.effect.Settings().Twinkle)})
}

// CycleShape advances to the next glyph in Shapes
func (c *Controller) CycleShape() {
	current := c.effect.Settings().Shape
	next := Shapes[0]
	for i, s := range Shapes {
		if s == current {
			next = Shapes[(i+1)%len(Shapes)]
			break
		}
	}
	c.update(snow.Options{Shape: snow.Ptr(next)})
}

func (c *Controller) update(opts snow.Options) {
	c.effect.UpdateOptions(opts)
	c.modified = true
}

func (c *Controller) syncAmbience() {
	if c.ambience == nil {
		return
	}
	s := c.effect.Settings()
	c.ambience.SetWind(s.Wind, s.WindSpeed)
}

// Status renders a one-line summary
func (c *Controller) Status() string {
	s := c.effect.Settings()
	name := c.preset
	if name == "" {
		name = "custom"
	}
	if c.modified {
		name += "*"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  flakes:%d  wind:%s  twinkle:%s  shape:%s",
		name, c.effect.Len(), onOff(s.Wind), onOff(s.Twinkle), s.Shape)
	if !c.effect.Running() {
		b.WriteString("  [paused]")
	}
	return b.String()
}

// Help is the key reference shown beside the status
const Help = "space pause  +/- flakes  1-8 preset  w wind  t twinkle  s shape  q quit"

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
