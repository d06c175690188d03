package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-defense/audio"
	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/game"
	"github.com/lixenwraith/orbit-defense/network"
	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/render"
)

func main() {
	if err := loadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
	}
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	cfg := loadConfig(opts, logger)

	var src content.Source
	if opts.templatesPath != "" {
		src = content.FileSource{Path: opts.templatesPath}
	}
	sim := game.NewSimulation(cfg, src, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal before any crash report, main and helper goroutines alike
	core.SetCrashHandler(func(r any) {
		screen.Fini()
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	player := audio.NewSoundPlayer(parameter.AudioMasterVolume)
	if !opts.mute {
		if err := player.Init(); err != nil {
			logger.Printf("audio init failed: %v (continuing without audio)", err)
		}
	}
	defer player.Close()

	var hub *network.Hub
	if opts.wsAddr != "" {
		hub = startFeed(opts.wsAddr, logger)
		defer hub.Close()
	}

	a := &app{
		sim:      sim,
		renderer: render.NewTerminalRenderer(screen, cfg.MaxDistance),
		player:   player,
		hub:      hub,
		logger:   logger,
	}
	a.run(screen)
}

// loadConfig applies the config file and seed override, falling back to defaults on error
func loadConfig(opts options, logger *log.Logger) game.Config {
	cfg := game.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := game.LoadConfig(opts.configPath)
		if err != nil {
			logger.Printf("config: %v, using defaults", err)
		} else {
			cfg = loaded
		}
	}
	if opts.seedSet {
		cfg.Seed = opts.seed
	}
	return cfg
}

// startFeed serves the spectator websocket on addr
func startFeed(addr string, logger *log.Logger) *network.Hub {
	netCfg := network.DefaultConfig()
	netCfg.Address = addr
	hub := network.NewHub(netCfg, logger)

	mux := http.NewServeMux()
	mux.Handle(netCfg.Path, hub)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	core.Go(func() {
		logger.Printf("spectator feed on ws://%s%s", addr, netCfg.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("spectator feed: %v", err)
		}
	})
	return hub
}

// app owns the host loop: input, ticking and the sinks
type app struct {
	sim      *game.Simulation
	renderer *render.TerminalRenderer
	player   *audio.SoundPlayer
	hub      *network.Hub
	logger   *log.Logger

	buttons tcell.ButtonMask
}

func (a *app) run(screen tcell.Screen) {
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		screen.ChannelEvents(events, quit)
	})

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(screen, ev) {
				return
			}
		case <-ticker.C:
			a.step()
		}
	}
}

// handleEvent returns false when the host should exit
func (a *app) handleEvent(screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		// Fire on press only, drags repeat the button mask
		if buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			a.click(x, y)
		}
		a.buttons = buttons
	case *tcell.EventResize:
		screen.Sync()
		a.renderer.Resize()
	}
	return true
}

func (a *app) handleKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.sim.AcknowledgeCutscene()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ch {
	case 'q':
		return false
	case 's':
		a.sim.Start()
	case 'p':
		a.sim.TogglePause()
	case 'r':
		a.sim.Reset()
	case 'm':
		a.player.SetMuted(!a.player.Muted())
	}
	return true
}

func (a *app) click(x, y int) {
	if in, ok := a.renderer.AimAt(x, y); ok {
		a.sim.Aim(in)
	}
}

// step advances one tick and feeds every sink
func (a *app) step() {
	a.sim.Tick()
	evs := a.sim.Events()

	a.player.HandleEvents(evs)
	if a.hub != nil {
		if err := a.hub.Broadcast(network.NewFrame(a.sim, evs)); err != nil {
			a.logger.Printf("spectator feed: %v", err)
		}
	}
	a.renderer.Draw(a.sim.Entities(), a.sim.HUD(), a.sim.DefendedRadius())
}
