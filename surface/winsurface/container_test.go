package winsurface

import (
	"testing"

	"github.com/lixenwraith/snowglobe/surface"
)

// TestUpdatePointer verifies only in-window movement reaches observers
func TestUpdatePointer(t *testing.T) {
	c := New(320, 240, "#101820")

	calls := 0
	var lastX, lastY float64
	detach := c.ObservePointer(func(x, y float64) {
		calls++
		lastX, lastY = x, y
	})

	c.UpdatePointer(10, 20)
	c.UpdatePointer(10, 20) // unchanged
	c.UpdatePointer(-1, 5)  // outside
	c.UpdatePointer(400, 5) // outside
	c.UpdatePointer(11, 20)

	if calls != 2 {
		t.Errorf("Expected 2 observer calls, got %d", calls)
	}
	if lastX != 11 || lastY != 20 {
		t.Errorf("Expected last pointer (11,20), got (%v,%v)", lastX, lastY)
	}

	detach()
	c.UpdatePointer(50, 50)
	if calls != 2 {
		t.Error("Detached observer still called")
	}
}

// TestElementLifecycle verifies attach, move and removal bookkeeping
func TestElementLifecycle(t *testing.T) {
	c := New(320, 240, "#000000")
	el := c.Attach(surface.Style{Glyph: "*", Color: "#ff0000", Size: 1, Opacity: 0.5, Left: 100, Top: 10}).(*element)

	el.Move(-20, 50)
	if el.x != 80 || el.y != 50 {
		t.Errorf("Expected (80,50), got (%v,%v)", el.x, el.y)
	}

	col := el.rgba()
	if col.R != 255 || col.G != 0 || col.A != 128 {
		t.Errorf("Unexpected color %+v", col)
	}

	if !el.visible(320, 240, BaseRadius) {
		t.Error("Expected element visible")
	}
	el.Move(-200, 50)
	if el.visible(320, 240, BaseRadius) {
		t.Error("Expected element off-screen")
	}

	el.Remove()
	el.Remove()
	if c.Len() != 0 {
		t.Errorf("Expected empty container, got %d", c.Len())
	}

	w, h := c.Size()
	c.Resize(640, 480)
	if w2, h2 := c.Size(); w2 != 640 || h2 != 480 || w != 320 || h != 240 {
		t.Errorf("Unexpected sizes %vx%v -> %vx%v", w, h, w2, h2)
	}
}
