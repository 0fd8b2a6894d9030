package snow

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/snowglobe/engine"
	"github.com/lixenwraith/snowglobe/parameter"
	"github.com/lixenwraith/snowglobe/surface"
)

// Particle is one falling flake and the visual it owns
type Particle struct {
	X, Y  float64 // Simulation position (pixels)
	BaseX float64 // Drifting horizontal anchor for spring-back

	Drift   float64 // Horizontal bias per tick
	Speed   float64 // Sampled fall speed
	Opacity float64 // Sampled nominal opacity
	Size    float64 // Sampled glyph scale

	left float64 // Element's static left style
	el   surface.Element

	twinkle   engine.TimerID
	twinkling bool
}

// Element returns the visual owned by the particle
func (p *Particle) Element() surface.Element {
	return p.el
}

// Twinkling reports whether the particle owns an active twinkle timer
func (p *Particle) Twinkling() bool {
	return p.twinkling
}

// sampleBand draws rand*nominal*spread + nominal*floor
func sampleBand(rng *rand.Rand, nominal, spread, floor float64) float64 {
	return rng.Float64()*nominal*spread + nominal*floor
}

func sampleSize(rng *rand.Rand, s *Settings) float64 {
	return sampleBand(rng, s.Size, parameter.SizeSpread, parameter.SizeFloor)
}

func sampleSpeed(rng *rand.Rand, s *Settings) float64 {
	return sampleBand(rng, s.Speed, parameter.SpeedSpread, parameter.SpeedFloor)
}

func sampleOpacity(rng *rand.Rand, s *Settings) float64 {
	return sampleBand(rng, s.Opacity, parameter.OpacitySpread, parameter.OpacityFloor)
}

// sampleDrift returns a one-directional wind drift, or a small symmetric drift in calm air
func sampleDrift(rng *rand.Rand, s *Settings) float64 {
	if s.Wind {
		return sampleBand(rng, s.WindSpeed, parameter.WindDriftSpread, parameter.WindDriftFloor)
	}
	return rng.Float64()*parameter.CalmDriftRange - parameter.CalmDriftRange/2
}

// sampleTwinklePeriod draws a period in [TwinkleMinPeriod, TwinkleMaxPeriod)
func sampleTwinklePeriod(rng *rand.Rand) time.Duration {
	span := float64(parameter.TwinkleMaxPeriod - parameter.TwinkleMinPeriod)
	return parameter.TwinkleMinPeriod + time.Duration(rng.Float64()*span)
}

// twinkleOpacity re-samples a rendered opacity in [0.5, 1.0) of the nominal
func twinkleOpacity(rng *rand.Rand, nominal float64) float64 {
	return sampleBand(rng, nominal, parameter.TwinkleSpread, parameter.TwinkleFloor)
}
