package snow

import (
	"github.com/lixenwraith/snowglobe/parameter"
	"github.com/lixenwraith/snowglobe/surface"
)

// spawn creates a particle, attaches its element and appends it to the pool
func (e *Effect) spawn(initial bool) *Particle {
	s := &e.settings
	w, h := e.container.Size()

	p := &Particle{
		Size:    sampleSize(e.rng, s),
		Speed:   sampleSpeed(e.rng, s),
		Opacity: sampleOpacity(e.rng, s),
		X:       e.rng.Float64() * w,
		Drift:   sampleDrift(e.rng, s),
	}
	if initial {
		p.Y = e.rng.Float64() * h
	} else {
		p.Y = parameter.FlakeRespawnY
	}
	p.BaseX = p.X
	p.left = p.X

	p.el = e.container.Attach(surface.Style{
		Glyph:   s.Shape,
		Color:   s.Color,
		Size:    p.Size,
		Opacity: p.Opacity,
		Left:    p.left,
		Top:     p.Y,
	})

	e.pool = append(e.pool, p)

	if s.Twinkle {
		e.startTwinkle(p)
	}
	return p
}

// startTwinkle attaches a twinkle timer if the particle has none
func (e *Effect) startTwinkle(p *Particle) {
	if p.twinkling {
		return
	}
	p.twinkle = e.host.SetInterval(sampleTwinklePeriod(e.rng), func() {
		p.el.SetOpacity(twinkleOpacity(e.rng, p.Opacity))
	})
	p.twinkling = true
}

// stopTwinkle cancels the particle's timer if present
func (e *Effect) stopTwinkle(p *Particle) {
	if !p.twinkling {
		return
	}
	e.host.ClearInterval(p.twinkle)
	p.twinkling = false
}

// release frees both resources owned by p
func (e *Effect) release(p *Particle) {
	e.stopTwinkle(p)
	if p.el != nil {
		p.el.Remove()
		p.el = nil
	}
}

// AddFlakes grows the pool by n flakes entering just above the top edge
func (e *Effect) AddFlakes(n int) {
	if e.destroyed {
		return
	}
	for i := 0; i < n; i++ {
		e.spawn(false)
	}
}

// RemoveFlakes shrinks the pool by up to n, newest first
func (e *Effect) RemoveFlakes(n int) {
	if e.destroyed || n <= 0 {
		return
	}
	if n > len(e.pool) {
		n = len(e.pool)
	}
	for i := 0; i < n; i++ {
		last := len(e.pool) - 1
		p := e.pool[last]
		e.pool[last] = nil
		e.pool = e.pool[:last]
		e.release(p)
	}
}

// Len returns the pool size
func (e *Effect) Len() int {
	return len(e.pool)
}

// Particles returns a snapshot of the pool in creation order
func (e *Effect) Particles() []*Particle {
	out := make([]*Particle, len(e.pool))
	copy(out, e.pool)
	return out
}
