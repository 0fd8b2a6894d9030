package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowglobe/audio"
	"github.com/lixenwraith/snowglobe/config"
	"github.com/lixenwraith/snowglobe/control"
	"github.com/lixenwraith/snowglobe/engine"
	"github.com/lixenwraith/snowglobe/snow"
	"github.com/lixenwraith/snowglobe/surface/termsurface"
)

func main() {
	cfg, err := config.Load("snowglobe", config.Terminal, config.Source{Args: os.Args[1:]})
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "snowglobe: %v\n", err)
		os.Exit(1)
	}

	if cfg.List {
		fmt.Println(strings.Join(snow.PresetNames(), "\n"))
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snowglobe: %v\n", err)
		os.Exit(1)
	}
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

func run(cfg *config.Config) error {
	applyColorMode(cfg.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before printing anything on a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNOWGLOBE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	container, err := termsurface.New(screen, snowRect(screen.Size()), cfg.Background)
	if err != nil {
		return err
	}

	loop := engine.NewFrameLoop(nil)
	effect, err := snow.New(container, loop, cfg.Input(), snow.WithLogger(log.Default()))
	if err != nil {
		return err
	}
	defer effect.Destroy()

	var ambience control.Ambience
	if cfg.Sound {
		amb := audio.NewAmbience()
		if err := amb.Initialize(); err != nil {
			log.Printf("snowglobe: audio init failed: %v (continuing without sound)", err)
		} else {
			defer amb.Cleanup()
			ambience = amb
		}
	}

	a := &app{
		screen:      screen,
		loop:        loop,
		container:   container,
		effect:      effect,
		ctrl:        control.New(effect, ambience, cfg.Preset),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	}

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	log.Printf("snowglobe: started preset=%q fps=%d flakes=%d", cfg.Preset, cfg.FPS, effect.Len())
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				log.Printf("snowglobe: quit after %d ticks", effect.Ticks())
				return nil
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
