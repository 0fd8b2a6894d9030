package snow

import (
	"errors"
	"log"
	"math/rand"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/snowglobe/engine"
	"github.com/lixenwraith/snowglobe/surface"
)

// Sentinel errors
var (
	ErrInvalidContainer = errors.New("invalid container element")
	ErrNilHost          = errors.New("nil frame host")
)

// Host runs frame callbacks and periodic timers on the effect's goroutine
// *engine.FrameLoop satisfies it
type Host interface {
	RequestFrame(fn func()) engine.FrameID
	CancelFrame(id engine.FrameID)
	SetInterval(period time.Duration, fn func()) engine.TimerID
	ClearInterval(id engine.TimerID)
}

// Option configures an Effect at construction
type Option func(*Effect)

// WithLogger routes construction errors and preset warnings to logger
func WithLogger(logger *log.Logger) Option {
	return func(e *Effect) {
		if logger != nil {
			e.log = logger
		}
	}
}

// WithRand sets the random source used for sampling and recycling
func WithRand(rng *rand.Rand) Option {
	return func(e *Effect) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// Effect is a running snow animation bound to one container
// Every method must be called from the goroutine driving the Host
type Effect struct {
	container surface.Container
	host      Host
	log       *log.Logger
	rng       *rand.Rand

	settings Settings
	pool     []*Particle
	pointer  Pointer

	running   bool
	destroyed bool

	frame        engine.FrameID
	framePending bool
	frameFn      func()

	detachPointer func()

	ticks uint64
}

// New resolves in against the defaults, fills the pool and starts the frame chain
// The first tick runs on the host's next frame
func New(container surface.Container, host Host, in Input, opts ...Option) (*Effect, error) {
	e := &Effect{
		log: log.Default(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}

	if isNil(container) {
		e.log.Printf("snow: %v", ErrInvalidContainer)
		return nil, ErrInvalidContainer
	}
	if isNil(host) {
		e.log.Printf("snow: %v", ErrNilHost)
		return nil, ErrNilHost
	}

	e.container = container
	e.host = host
	e.settings = Resolve(in)
	e.frameFn = e.animate

	container.SetOverflowHidden(true)

	w, h := container.Size()
	e.pointer = Pointer{X: w / 2, Y: h / 2}
	e.detachPointer = container.ObservePointer(func(x, y float64) {
		e.pointer = Pointer{X: x, Y: y}
	})

	for i := 0; i < e.settings.Count; i++ {
		e.spawn(true)
	}

	e.running = true
	e.requestFrame()

	return e, nil
}

// isNil treats typed nil pointers inside an interface as nil
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// ===== SCHEDULER =====

func (e *Effect) requestFrame() {
	e.frame = e.host.RequestFrame(e.frameFn)
	e.framePending = true
}

// animate is the self-rescheduling frame callback
func (e *Effect) animate() {
	e.framePending = false
	if !e.running {
		return
	}
	e.tick()
	e.requestFrame()
}

// tick steps every particle once against the current container bounds
func (e *Effect) tick() {
	w, h := e.container.Size()
	b := Bounds{Width: w, Height: h}
	for _, p := range e.pool {
		Step(p, e.pointer, e.settings.Interaction, b, e.rng)
	}
	e.ticks++
}

// Pause stops ticking, the pending frame callback exits without stepping
func (e *Effect) Pause() {
	e.running = false
}

// Resume restarts ticking if paused; calling it while running does nothing
func (e *Effect) Resume() {
	if e.destroyed || e.running {
		return
	}
	// Drop the previous chain's callback so only one chain exists
	if e.framePending {
		e.host.CancelFrame(e.frame)
		e.framePending = false
	}
	e.running = true
	e.requestFrame()
}

// Running reports whether the effect is ticking
func (e *Effect) Running() bool {
	return e.running
}

// Ticks returns the number of completed ticks
func (e *Effect) Ticks() uint64 {
	return e.ticks
}

// ===== CONTROL =====

// UpdateOptions overlays in onto the current settings and refreshes live flakes for the fields it sets
func (e *Effect) UpdateOptions(in Input) {
	if e.destroyed || in == nil {
		return
	}
	o := in.overrides()
	e.settings.apply(o)
	s := &e.settings

	if o.Wind != nil || o.WindSpeed != nil {
		for _, p := range e.pool {
			p.Drift = sampleDrift(e.rng, s)
		}
	}

	if o.Twinkle != nil {
		for _, p := range e.pool {
			if s.Twinkle {
				e.startTwinkle(p)
			} else if p.twinkling {
				e.stopTwinkle(p)
				p.el.SetOpacity(p.Opacity)
			}
		}
	}

	if o.Shape != nil {
		for _, p := range e.pool {
			p.el.SetGlyph(s.Shape)
		}
	}

	if o.Color != nil {
		for _, p := range e.pool {
			p.el.SetColor(s.Color)
		}
	}

	if o.Size != nil {
		for _, p := range e.pool {
			p.Size = sampleSize(e.rng, s)
			p.el.SetSize(p.Size)
		}
	}

	if o.Opacity != nil {
		for _, p := range e.pool {
			p.Opacity = sampleOpacity(e.rng, s)
			p.el.SetOpacity(p.Opacity)
		}
	}

	if o.Speed != nil {
		for _, p := range e.pool {
			p.Speed = sampleSpeed(e.rng, s)
		}
	}
}

// UsePreset applies the named preset, case-insensitive
// Unknown names log a warning with the valid names and leave settings untouched
func (e *Effect) UsePreset(name string) bool {
	if e.destroyed {
		return false
	}
	preset, ok := LookupPreset(name)
	if !ok {
		e.log.Printf("snow: warning: preset %q not found. Available presets: %s",
			name, strings.Join(PresetNames(), ", "))
		return false
	}
	e.UpdateOptions(preset.Options())
	return true
}

// PresetNames returns the available preset names
func (e *Effect) PresetNames() []string {
	return PresetNames()
}

// Settings returns a copy of the settings in force
func (e *Effect) Settings() Settings {
	return e.settings
}

// Destroy stops the effect and releases everything it owns; later calls do nothing
func (e *Effect) Destroy() {
	if e.destroyed {
		return
	}
	e.Pause()
	if e.framePending {
		e.host.CancelFrame(e.frame)
		e.framePending = false
	}
	if e.detachPointer != nil {
		e.detachPointer()
		e.detachPointer = nil
	}

	for i, p := range e.pool {
		e.release(p)
		e.pool[i] = nil
	}
	e.pool = e.pool[:0]

	e.container.SetOverflowHidden(false)
	e.destroyed = true
}
