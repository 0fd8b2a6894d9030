package snow

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/snowglobe/parameter"
)

// Pointer is the last observed pointer position relative to the container
type Pointer struct {
	X, Y float64
}

// Bounds is the container size at the time of a tick
type Bounds struct {
	Width, Height float64
}

// Repulsion returns the push magnitude applied at distance from the pointer
// Linear from interaction*InteractionScale*InteractionGain at 0 down to 0 at the influence radius
func Repulsion(distance, interaction float64) float64 {
	if distance >= parameter.InfluenceRadius {
		return 0
	}
	force := (parameter.InfluenceRadius - distance) / parameter.InfluenceRadius
	return force * interaction * parameter.InteractionScale * parameter.InteractionGain
}

// Step advances one particle by one tick and mirrors the result into its element
// Recycling happens after the element write, so an exiting flake is drawn once below the edge
func Step(p *Particle, ptr Pointer, interaction float64, b Bounds, rng *rand.Rand) {
	// Fall and drift, anchor drifts with the flake
	p.Y += p.Speed * parameter.FlakeFallScale
	drift := p.Drift * parameter.FlakeDriftScale
	p.X += drift
	p.BaseX += drift

	if interaction > 0 {
		dx := ptr.X - p.X
		dy := ptr.Y - p.Y
		distance := math.Sqrt(dx*dx + dy*dy)

		if distance < parameter.InfluenceRadius {
			push := Repulsion(distance, interaction)
			angle := math.Atan2(dy, dx)
			p.X -= math.Cos(angle) * push
			p.Y -= math.Sin(angle) * push
		} else {
			p.X += (p.BaseX - p.X) * parameter.FlakeSpringBack
		}
	}

	if p.el != nil {
		p.el.Move(p.X-p.left, p.Y)
	}

	if p.Y > b.Height {
		p.Y = parameter.FlakeRespawnY
		p.X = rng.Float64() * b.Width
		p.BaseX = p.X
	}
}
