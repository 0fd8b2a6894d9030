package audio

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// Wind gain bounds, linear amplitude
const (
	windCalmGain  = 0.02
	windBaseGain  = 0.08
	windSpeedGain = 0.04
	windMaxGain   = 0.35

	gustPeriod = 5 * time.Second
)

// WindGenerator streams low-passed noise with a slow gust envelope
// Gain is read per sample and may be changed from any goroutine
type WindGenerator struct {
	sr   beep.SampleRate
	rng  *rand.Rand
	pos  int
	gust int

	lowL, lowR float64
	gain       atomic.Uint64 // math.Float64bits
}

// NewWindGenerator creates a wind noise source at calm gain
func NewWindGenerator(sr beep.SampleRate, seed int64) *WindGenerator {
	g := &WindGenerator{
		sr:   sr,
		rng:  rand.New(rand.NewSource(seed)),
		gust: sr.N(gustPeriod),
	}
	g.SetGain(windCalmGain)
	return g
}

// SetGain stores the target amplitude, clamped to [0, windMaxGain]
func (g *WindGenerator) SetGain(gain float64) {
	gain = math.Max(0, math.Min(gain, windMaxGain))
	g.gain.Store(math.Float64bits(gain))
}

// Gain returns the current amplitude
func (g *WindGenerator) Gain() float64 {
	return math.Float64frombits(g.gain.Load())
}

func (g *WindGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	gain := g.Gain()
	for i := range samples {
		cycle := float64(g.pos%g.gust) / float64(g.gust)
		env := 0.6 + 0.4*math.Sin(2*math.Pi*cycle)

		// One-pole low-pass, separate state per channel for width
		g.lowL += 0.02 * ((g.rng.Float64()*2 - 1) - g.lowL)
		g.lowR += 0.02 * ((g.rng.Float64()*2 - 1) - g.lowR)

		samples[i][0] = gain * env * g.lowL * 4
		samples[i][1] = gain * env * g.lowR * 4
		g.pos++
	}
	return len(samples), true
}

func (g *WindGenerator) Err() error {
	return nil
}

// WindGain maps wind settings to amplitude
func WindGain(enabled bool, speed float64) float64 {
	if !enabled {
		return windCalmGain
	}
	return math.Min(windBaseGain+windSpeedGain*math.Max(speed, 0), windMaxGain)
}
