package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/persistence"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/spectate"
	"github.com/lixenwraith/vi-snake/status"
)

// Overridden in tests
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before exit
func realMain(args []string) int {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if !isTerminal() {
		fmt.Fprintln(os.Stderr, "vi-snake needs an interactive terminal")
		return 1
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 1
	}
	return 0
}

func run(opts options) error {
	store, err := openStore(opts)
	if err != nil {
		return fmt.Errorf("open %s store: %w", opts.store, err)
	}
	defer store.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	screen.HideCursor()

	reg := status.NewRegistry()

	// Audio failure is non-fatal, the game runs silent
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	if opts.mute {
		sound.SetMuted(true)
	}

	terminal := render.NewTerminalRenderer(screen, reg, opts.debug)
	var renderer engine.Renderer = terminal

	var hub *spectate.Hub
	if opts.spectate != "" {
		hub = spectate.NewHub(reg)
		srv := spectate.NewServer(hub)
		if err := srv.Start(opts.spectate); err != nil {
			return err
		}
		defer closeSpectate(srv)

		url := srv.URL()
		bitmap, err := spectate.QRBitmap(url)
		if err != nil {
			log.Printf("spectate: %v", err)
		}
		terminal.SetSpectate(url, bitmap)
		log.Printf("spectate: serving on %s", url)

		renderer = engine.RendererFunc(func(fs engine.FrameState) {
			terminal.DrawFrame(fs)
			hub.DrawFrame(fs)
		})
	}

	game := newGame(renderer, sound, store, reg)
	if hub != nil {
		game.RegisterEventHandler(hub)
	}
	if opts.difficulty != nil {
		game.Start(*opts.difficulty)
	}

	scheduler := engine.NewFrameScheduler(game.Frame, constant.FrameUpdateInterval)
	scheduler.Start()
	defer scheduler.Stop()

	handler := input.NewHandler(game, nil)

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for ev := range eventChan {
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		if !handler.HandleEvent(ev) {
			break
		}
	}

	log.Printf("vi-snake exiting after %d frames", scheduler.Frames())
	return nil
}

func newGame(renderer engine.Renderer, sound *audio.SoundManager, store persistence.Store, reg *status.Registry) *engine.Game {
	return engine.NewGame(engine.Config{
		Renderer: renderer,
		Audio:    sound,
		Store:    store,
		Status:   reg,
	})
}

func closeSpectate(srv *spectate.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Close(ctx); err != nil {
		log.Printf("spectate: close: %v", err)
	}
}
