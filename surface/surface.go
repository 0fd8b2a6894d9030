// Package surface defines the rendering contract between the snow effect and a host display.
//
// A Container is a rectangular positioning context measured in pixels. Elements are the
// per-flake visuals it owns: each has a static style set at creation and a mutable
// position expressed as a horizontal translation from its static left plus an absolute top.
package surface

// Style is the static presentation of an element at creation time
type Style struct {
	Glyph   string
	Color   string  // Color value, e.g. "#ffffff"
	Size    float64 // Relative glyph scale (1.0 = container's base size)
	Opacity float64 // 0..1
	Left    float64 // Static horizontal anchor (pixels)
	Top     float64 // Initial vertical position (pixels)
}

// Element is one visual owned by a container
type Element interface {
	// Move places the element at left+translateX, top
	Move(translateX, top float64)
	SetOpacity(opacity float64)
	SetGlyph(glyph string)
	SetColor(color string)
	SetSize(size float64)
	// Remove detaches the element from its container, further calls are no-ops
	Remove()
}

// PointerFunc receives pointer coordinates relative to the container
type PointerFunc func(x, y float64)

// Container is a renderable surface that hosts elements
type Container interface {
	// Size returns the current width and height in pixels
	Size() (width, height float64)
	// Attach creates an absolutely positioned, non-interactive element
	Attach(style Style) Element
	// ObservePointer registers a passive pointer observer and returns its detach function
	ObservePointer(fn PointerFunc) (detach func())
	// SetOverflowHidden toggles clipping of elements outside the container bounds
	SetOverflowHidden(hidden bool)
}
