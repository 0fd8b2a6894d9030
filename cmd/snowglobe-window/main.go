package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/snowglobe/audio"
	"github.com/lixenwraith/snowglobe/config"
	"github.com/lixenwraith/snowglobe/control"
	"github.com/lixenwraith/snowglobe/engine"
	"github.com/lixenwraith/snowglobe/snow"
	"github.com/lixenwraith/snowglobe/surface/winsurface"
)

const statusHeight = 20

var statusColor = color.NRGBA{R: 200, G: 210, B: 230, A: 255}

type game struct {
	loop      *engine.FrameLoop
	container *winsurface.Container
	effect    *snow.Effect
	ctrl      *control.Controller
}

// presetKeys maps the number row to preset positions
var presetKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

func (g *game) Update() error {
	justPressed := inpututil.IsKeyJustPressed

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if justPressed(ebiten.KeyEqual) || justPressed(ebiten.KeyKPAdd) {
		g.ctrl.More()
	}
	if justPressed(ebiten.KeyMinus) || justPressed(ebiten.KeyKPSubtract) {
		g.ctrl.Fewer()
	}
	if justPressed(ebiten.KeyW) {
		g.ctrl.ToggleWind()
	}
	if justPressed(ebiten.KeyT) {
		g.ctrl.ToggleTwinkle()
	}
	if justPressed(ebiten.KeyS) {
		g.ctrl.CycleShape()
	}
	for i, k := range presetKeys {
		if justPressed(k) {
			g.ctrl.Preset(i + 1)
		}
	}

	g.container.UpdatePointer(ebiten.CursorPosition())
	g.loop.RunFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.container.Draw(screen)

	h := screen.Bounds().Dy()
	text.Draw(screen, g.ctrl.Status()+"   "+control.Help, basicfont.Face7x13, 8, h-statusHeight/2+4, statusColor)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.container.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	cfg, err := config.Load("snowglobe-window", config.Window, config.Source{Args: os.Args[1:]})
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "snowglobe-window: %v\n", err)
		os.Exit(1)
	}
	if cfg.List {
		fmt.Println(strings.Join(snow.PresetNames(), "\n"))
		return
	}
	// The window leaves the terminal free, so debug output goes straight to stderr
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	container := winsurface.New(cfg.Width, cfg.Height, cfg.Background)
	// Ebiten paces Update at the TPS, one FrameLoop step per tick
	loop := engine.NewFrameLoop(nil)
	effect, err := snow.New(container, loop, cfg.Input(), snow.WithLogger(log.Default()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "snowglobe-window: %v\n", err)
		os.Exit(1)
	}
	defer effect.Destroy()

	var ambience control.Ambience
	if cfg.Sound {
		amb := audio.NewAmbience()
		if err := amb.Initialize(); err != nil {
			log.Printf("snowglobe-window: audio init failed: %v (continuing without sound)", err)
		} else {
			defer amb.Cleanup()
			ambience = amb
		}
	}

	g := &game{
		loop:      loop,
		container: container,
		effect:    effect,
		ctrl:      control.New(effect, ambience, cfg.Preset),
	}

	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("snowglobe - space: pause, 1-8: presets, q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "snowglobe-window: %v\n", err)
		os.Exit(1)
	}
}
