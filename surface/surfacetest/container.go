// Package surfacetest provides an in-memory surface.Container that records every call for tests.
package surfacetest

import (
	"github.com/lixenwraith/snowglobe/surface"
)

// Container is an in-memory container with a fixed size
type Container struct {
	Width, Height float64

	OverflowHidden bool

	elements  []*Element
	observers map[int]surface.PointerFunc
	nextObs   int

	// Removed counts elements detached over the container's lifetime
	Removed int
}

// NewContainer creates a container of the given pixel size
func NewContainer(width, height float64) *Container {
	return &Container{
		Width:     width,
		Height:    height,
		observers: make(map[int]surface.PointerFunc),
	}
}

// Size returns the configured dimensions
func (c *Container) Size() (float64, float64) {
	return c.Width, c.Height
}

// Attach records a new element
func (c *Container) Attach(style surface.Style) surface.Element {
	e := &Element{
		container: c,
		Style:     style,
		Top:       style.Top,
		Opacity:   style.Opacity,
	}
	c.elements = append(c.elements, e)
	return e
}

// ObservePointer registers fn until the returned detach is called
func (c *Container) ObservePointer(fn surface.PointerFunc) func() {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

// SetOverflowHidden records the overflow state
func (c *Container) SetOverflowHidden(hidden bool) {
	c.OverflowHidden = hidden
}

// MovePointer delivers pointer coordinates to every observer
func (c *Container) MovePointer(x, y float64) {
	for _, fn := range c.observers {
		fn(x, y)
	}
}

// Observers returns the number of attached pointer observers
func (c *Container) Observers() int {
	return len(c.observers)
}

// Elements returns the attached elements in attach order
func (c *Container) Elements() []*Element {
	out := make([]*Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// Len returns the number of attached elements
func (c *Container) Len() int {
	return len(c.elements)
}

func (c *Container) remove(e *Element) {
	for i, el := range c.elements {
		if el == e {
			c.elements = append(c.elements[:i], c.elements[i+1:]...)
			c.Removed++
			return
		}
	}
}

// Element records the latest state written by the effect
type Element struct {
	container *Container

	Style      surface.Style
	TranslateX float64
	Top        float64
	Opacity    float64
	Detached   bool

	// Removals counts Remove calls, a correctly released element sees exactly one
	Removals int
}

// X returns the rendered horizontal position
func (e *Element) X() float64 {
	return e.Style.Left + e.TranslateX
}

func (e *Element) Move(translateX, top float64) {
	e.TranslateX = translateX
	e.Top = top
}

func (e *Element) SetOpacity(opacity float64) { e.Opacity = opacity }
func (e *Element) SetGlyph(glyph string)      { e.Style.Glyph = glyph }
func (e *Element) SetColor(color string)      { e.Style.Color = color }
func (e *Element) SetSize(size float64)       { e.Style.Size = size }

func (e *Element) Remove() {
	e.Removals++
	if e.Detached {
		return
	}
	e.Detached = true
	e.container.remove(e)
}
