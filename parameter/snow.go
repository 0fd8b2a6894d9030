package parameter

import "time"

// Flake physics, expressed in container pixels per tick
const (
	// FlakeFallScale converts a flake's sampled speed into vertical pixels per tick
	FlakeFallScale = 0.1
	// FlakeDriftScale converts a flake's drift into horizontal pixels per tick (applied to anchor too)
	FlakeDriftScale = 0.5
	// FlakeSpringBack is the fraction of the gap to the drifting anchor closed per tick outside the influence radius
	FlakeSpringBack = 0.01
	// FlakeRespawnY is the vertical position of a recycled or late-spawned flake, just above the top edge
	FlakeRespawnY = -10.0
)

// Pointer repulsion
const (
	// InfluenceRadius is the pointer distance (pixels) inside which flakes are pushed away
	InfluenceRadius = 100.0
	// InteractionScale maps the interaction setting to a per-tick push strength
	InteractionScale = 0.02
	// InteractionGain multiplies the scaled push at full proximity
	InteractionGain = 5.0
)

// Sampling bands: value = rand*nominal*Spread + nominal*Floor
const (
	SizeSpread    = 0.8
	SizeFloor     = 0.4
	SpeedSpread   = 0.3
	SpeedFloor    = 0.7
	OpacitySpread = 0.4
	OpacityFloor  = 0.6

	// WindDriftSpread/Floor sample a one-directional drift from the wind speed
	WindDriftSpread = 0.5
	WindDriftFloor  = 0.5
	// CalmDriftRange is the width of the symmetric drift band used without wind
	CalmDriftRange = 0.2

	// TwinkleSpread/Floor re-sample opacity on each twinkle firing
	TwinkleSpread = 0.5
	TwinkleFloor  = 0.5
)

// Twinkle timer period bounds
const (
	TwinkleMinPeriod = 1000 * time.Millisecond
	TwinkleMaxPeriod = 4000 * time.Millisecond
)

// Host frame pacing
const (
	// FrameInterval is the default driver frame period (~60 FPS)
	FrameInterval = 16 * time.Millisecond
	// MaxTimerCatchUp bounds how far an interval timer may fall behind before it is re-anchored to now
	MaxTimerCatchUp = 2
)

// Terminal surface geometry: each cell maps to a virtual pixel box so pixel-scaled physics keep their feel
const (
	CellWidth  = 8
	CellHeight = 16
)
