// Package winsurface hosts snow elements in an ebiten window.
//
// Flakes are drawn as anti-aliased discs whose radius follows the element size, since the
// debug font carries no snowflake glyphs. The glyph is still tracked so ASCII shapes can be
// labelled by the driver if it wants to.
package winsurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snowglobe/surface"
)

// BaseRadius is the disc radius in pixels for a size-1.0 flake
const BaseRadius = 3.0

// Container is a window-sized snow container
type Container struct {
	width, height int
	background    color.Color

	overflowHidden bool

	elements  []*element
	observers map[int]surface.PointerFunc
	nextObs   int

	lastX, lastY int
	hasPointer   bool
}

// New creates a container of width x height pixels
func New(width, height int, background string) *Container {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{}
	}
	return &Container{
		width:      width,
		height:     height,
		background: bg,
		observers:  make(map[int]surface.PointerFunc),
	}
}

// Resize updates the container dimensions from the window layout
func (c *Container) Resize(width, height int) {
	c.width, c.height = width, height
}

func (c *Container) Size() (float64, float64) {
	return float64(c.width), float64(c.height)
}

func (c *Container) Attach(style surface.Style) surface.Element {
	e := &element{
		container: c,
		glyph:     style.Glyph,
		size:      style.Size,
		opacity:   style.Opacity,
		left:      style.Left,
		x:         style.Left,
		y:         style.Top,
	}
	e.SetColor(style.Color)
	c.elements = append(c.elements, e)
	return e
}

func (c *Container) ObservePointer(fn surface.PointerFunc) func() {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Container) SetOverflowHidden(hidden bool) {
	c.overflowHidden = hidden
}

// Len returns the number of attached elements
func (c *Container) Len() int {
	return len(c.elements)
}

// UpdatePointer feeds a polled cursor position; observers fire only on movement inside the window
func (c *Container) UpdatePointer(x, y int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	if c.hasPointer && x == c.lastX && y == c.lastY {
		return
	}
	c.lastX, c.lastY, c.hasPointer = x, y, true
	for _, fn := range c.observers {
		fn(float64(x), float64(y))
	}
}

// Draw fills the background and paints every element as a disc
func (c *Container) Draw(dst *ebiten.Image) {
	dst.Fill(c.background)
	for _, e := range c.elements {
		r := float32(e.size * BaseRadius)
		if r <= 0 {
			continue
		}
		if c.overflowHidden && !e.visible(float64(c.width), float64(c.height), float64(r)) {
			continue
		}
		vector.DrawFilledCircle(dst, float32(e.x), float32(e.y), r, e.rgba(), true)
	}
}

type element struct {
	container *Container

	glyph   string
	color   colorful.Color
	size    float64
	opacity float64

	left float64
	x, y float64

	removed bool
}

func (e *element) Move(translateX, top float64) {
	e.x = e.left + translateX
	e.y = top
}

func (e *element) SetOpacity(opacity float64) { e.opacity = opacity }
func (e *element) SetGlyph(glyph string)      { e.glyph = glyph }
func (e *element) SetSize(size float64)       { e.size = size }

func (e *element) SetColor(hex string) {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	e.color = c
}

func (e *element) Remove() {
	if e.removed {
		return
	}
	e.removed = true
	els := e.container.elements
	for i, el := range els {
		if el == e {
			e.container.elements = append(els[:i], els[i+1:]...)
			return
		}
	}
}

// visible reports whether the disc intersects the container
func (e *element) visible(w, h, r float64) bool {
	return e.x+r >= 0 && e.x-r < w && e.y+r >= 0 && e.y-r < h
}

func (e *element) rgba() color.NRGBA {
	alpha := e.opacity
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	r, g, b := e.color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}
