package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snowglobe/parameter"
)

// FrameID identifies a pending frame callback
type FrameID uint64

// TimerID identifies a registered interval timer
type TimerID uint64

// interval is a periodic callback owned by the loop
type interval struct {
	period time.Duration
	next   time.Time
	fn     func()
}

// FrameLoop is a single-goroutine host for frame callbacks and periodic timers
// All callbacks run inside RunFrame on the caller's goroutine; none of the methods are safe for concurrent use
// Frame requests are one-shot: a callback wanting another frame must request it again
type FrameLoop struct {
	clock TimeProvider

	nextID uint64

	// Pending frame callbacks, keyed by id with insertion order kept separately
	frames     map[FrameID]func()
	frameOrder []FrameID

	timers map[TimerID]*interval

	// Frame counter for status display and tests
	frameCount atomic.Uint64
}

// NewFrameLoop creates a loop reading time from clock
func NewFrameLoop(clock TimeProvider) *FrameLoop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &FrameLoop{
		clock:  clock,
		frames: make(map[FrameID]func()),
		timers: make(map[TimerID]*interval),
	}
}

// RequestFrame schedules fn to run on the next RunFrame
func (l *FrameLoop) RequestFrame(fn func()) FrameID {
	l.nextID++
	id := FrameID(l.nextID)
	l.frames[id] = fn
	l.frameOrder = append(l.frameOrder, id)
	return id
}

// CancelFrame drops a pending frame callback, unknown or already-run ids are ignored
func (l *FrameLoop) CancelFrame(id FrameID) {
	delete(l.frames, id)
}

// SetInterval registers fn to run every period, first firing one period from now
func (l *FrameLoop) SetInterval(period time.Duration, fn func()) TimerID {
	if period <= 0 {
		period = parameter.FrameInterval
	}
	l.nextID++
	id := TimerID(l.nextID)
	l.timers[id] = &interval{
		period: period,
		next:   l.clock.Now().Add(period),
		fn:     fn,
	}
	return id
}

// ClearInterval stops a timer, unknown ids are ignored
func (l *FrameLoop) ClearInterval(id TimerID) {
	delete(l.timers, id)
}

// PendingFrames returns the number of frame callbacks waiting for the next RunFrame
func (l *FrameLoop) PendingFrames() int {
	return len(l.frames)
}

// ActiveTimers returns the number of registered interval timers
func (l *FrameLoop) ActiveTimers() int {
	return len(l.timers)
}

// Frames returns the number of completed RunFrame calls
func (l *FrameLoop) Frames() uint64 {
	return l.frameCount.Load()
}

// RunFrame fires due timers, then runs the frame callbacks pending at entry
// Callbacks requested during this frame run on the next one
// Returns the number of frame callbacks executed
func (l *FrameLoop) RunFrame() int {
	now := l.clock.Now()
	l.fireTimers(now)

	order := l.frameOrder
	l.frameOrder = nil

	executed := 0
	for _, id := range order {
		fn, ok := l.frames[id]
		if !ok {
			continue
		}
		delete(l.frames, id)
		fn()
		executed++
	}

	l.frameCount.Add(1)
	return executed
}

// fireTimers runs each due timer once per frame, in registration order
func (l *FrameLoop) fireTimers(now time.Time) {
	if len(l.timers) == 0 {
		return
	}

	ids := make([]TimerID, 0, len(l.timers))
	for id, t := range l.timers {
		if !now.Before(t.next) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		// A previous callback in this batch may have cleared it
		t, ok := l.timers[id]
		if !ok {
			continue
		}

		t.next = t.next.Add(t.period)
		// Drift correction: re-anchor timers that fell too far behind instead of bursting
		if now.Sub(t.next) > t.period*parameter.MaxTimerCatchUp {
			t.next = now.Add(t.period)
		}

		t.fn()
	}
}
