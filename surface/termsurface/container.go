// Package termsurface hosts snow elements in a rectangular region of a tcell screen.
//
// Positions are kept in virtual pixels (parameter.CellWidth x parameter.CellHeight per cell) so the
// pixel-scaled physics behave the same as in a window. Opacity is rendered by blending the element
// color toward the region background; size selects dim/normal/bold weight.
package termsurface

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snowglobe/parameter"
	"github.com/lixenwraith/snowglobe/surface"
)

// Size thresholds for glyph weight
const (
	dimBelowSize  = 0.6
	boldFromSize  = 1.2
	fallbackColor = "#ffffff"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Container is a tcell screen region acting as a snow container
type Container struct {
	screen     tcell.Screen
	rect       Rect
	background colorful.Color

	overflowHidden bool

	elements  []*element
	observers map[int]surface.PointerFunc
	nextObs   int
}

// New creates a container over rect with the given background color
func New(screen tcell.Screen, rect Rect, background string) (*Container, error) {
	if screen == nil {
		return nil, fmt.Errorf("termsurface: nil screen")
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return nil, fmt.Errorf("termsurface: background %q: %w", background, err)
	}
	return &Container{
		screen:     screen,
		rect:       rect,
		background: bg,
		observers:  make(map[int]surface.PointerFunc),
	}, nil
}

// Rect returns the region in cells
func (c *Container) Rect() Rect {
	return c.rect
}

// SetRect moves or resizes the region, used on terminal resize
func (c *Container) SetRect(r Rect) {
	c.rect = r
}

// Size returns the region size in virtual pixels
func (c *Container) Size() (float64, float64) {
	return float64(c.rect.W * parameter.CellWidth), float64(c.rect.H * parameter.CellHeight)
}

// Attach adds an element drawn on subsequent Draw calls
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

// ObservePointer registers fn for mouse motion inside the region
func (c *Container) ObservePointer(fn surface.PointerFunc) func() {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

// SetOverflowHidden toggles clipping to the region
func (c *Container) SetOverflowHidden(hidden bool) {
	c.overflowHidden = hidden
}

// Len returns the number of attached elements
func (c *Container) Len() int {
	return len(c.elements)
}

// HandleEvent forwards mouse positions inside the region to observers
// Returns true if the event was a mouse event inside the region
func (c *Container) HandleEvent(ev tcell.Event) bool {
	m, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	x, y := m.Position()
	if !c.rect.Contains(x, y) {
		return false
	}

	// Cell centre in region-relative pixels
	px := float64((x-c.rect.X)*parameter.CellWidth) + parameter.CellWidth/2
	py := float64((y-c.rect.Y)*parameter.CellHeight) + parameter.CellHeight/2
	for _, fn := range c.observers {
		fn(px, py)
	}
	return true
}

// Draw clears the region and paints every element; the caller shows the screen
func (c *Container) Draw() {
	bgStyle := tcell.StyleDefault.Background(toTcell(c.background))
	for y := c.rect.Y; y < c.rect.Y+c.rect.H; y++ {
		for x := c.rect.X; x < c.rect.X+c.rect.W; x++ {
			c.screen.SetContent(x, y, ' ', nil, bgStyle)
		}
	}

	sw, sh := c.screen.Size()
	for _, e := range c.elements {
		runes := []rune(e.glyph)
		if len(runes) == 0 {
			continue
		}

		col := c.rect.X + int(math.Floor(e.x/parameter.CellWidth))
		row := c.rect.Y + int(math.Floor(e.y/parameter.CellHeight))
		width := runewidth.StringWidth(e.glyph)
		if width < 1 {
			width = 1
		}

		if c.overflowHidden {
			if !c.rect.Contains(col, row) || !c.rect.Contains(col+width-1, row) {
				continue
			}
		} else if col < 0 || row < 0 || col+width > sw || row >= sh {
			continue
		}

		c.screen.SetContent(col, row, runes[0], runes[1:], e.style(bgStyle))
	}
}

// element is one flake glyph on the terminal
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

func (e *element) SetOpacity(opacity float64) {
	e.opacity = opacity
}

func (e *element) SetGlyph(glyph string) {
	e.glyph = glyph
}

// SetColor parses a hex color, unparseable values fall back to white
func (e *element) SetColor(color string) {
	c, err := colorful.Hex(color)
	if err != nil {
		c, _ = colorful.Hex(fallbackColor)
	}
	e.color = c
}

func (e *element) SetSize(size float64) {
	e.size = size
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

// style blends the glyph color toward the background by opacity and picks weight by size
func (e *element) style(base tcell.Style) tcell.Style {
	alpha := e.opacity
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	fg := e.container.background.BlendRgb(e.color, alpha)
	st := base.Foreground(toTcell(fg))
	switch {
	case e.size < dimBelowSize:
		st = st.Dim(true)
	case e.size >= boldFromSize:
		st = st.Bold(true)
	}
	return st
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
