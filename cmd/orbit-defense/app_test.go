package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-defense/audio"
	"github.com/lixenwraith/orbit-defense/game"
	"github.com/lixenwraith/orbit-defense/render"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)

	cfg := game.DefaultConfig()
	cfg.Seed = 3
	return &app{
		sim:      game.NewSimulation(cfg, nil, nil),
		renderer: render.NewTerminalRenderer(screen, cfg.MaxDistance),
		player:   audio.NewSoundPlayer(0),
		logger:   log.New(io.Discard, "", 0),
	}
}

func TestKeyCommands(t *testing.T) {
	a := newTestApp(t)

	if !a.handleKey(tcell.KeyRune, 's') {
		t.Fatal("Expected start to keep running")
	}
	if !a.sim.HUD().Started {
		t.Error("Expected session started")
	}

	a.handleKey(tcell.KeyRune, 'p')
	if !a.sim.HUD().Paused {
		t.Error("Expected paused")
	}
	a.handleKey(tcell.KeyRune, 'p')
	if a.sim.HUD().Paused {
		t.Error("Expected resumed")
	}

	session := a.sim.Session()
	a.handleKey(tcell.KeyRune, 'r')
	if a.sim.Session() == session || a.sim.HUD().Started {
		t.Error("Expected reset to a fresh pre-start session")
	}

	a.handleKey(tcell.KeyRune, 'm')
	if !a.player.Muted() {
		t.Error("Expected muted")
	}
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		key tcell.Key
		ch  rune
	}{
		{tcell.KeyRune, 'q'},
		{tcell.KeyEscape, 0},
		{tcell.KeyCtrlC, 0},
	}
	for _, tt := range tests {
		if a.handleKey(tt.key, tt.ch) {
			t.Errorf("Expected key %v %q to quit", tt.key, tt.ch)
		}
	}
}

func TestStepAdvancesAndDraws(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(tcell.KeyRune, 's')

	for range 5 {
		a.step()
	}
	if a.sim.HUD().Tick != 5 {
		t.Errorf("Expected tick 5, got %d", a.sim.HUD().Tick)
	}
	if len(a.sim.Events()) != 0 {
		t.Error("Expected step to drain events")
	}
}

func TestClickOnStatusBarIgnored(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(tcell.KeyRune, 's')
	a.click(10, 39)
	a.step()
	for _, v := range a.sim.Entities() {
		if v.Kind == game.KindProjectile {
			t.Error("Expected no projectile from a status bar click")
		}
	}
}

func TestLoadConfigFallsBack(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	cfg := loadConfig(options{configPath: filepath.Join(t.TempDir(), "missing.yaml")}, logger)
	if cfg.BossWave != game.DefaultConfig().BossWave {
		t.Error("Expected defaults for missing config")
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("boss_wave: 4\nseed: 11\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg = loadConfig(options{configPath: path, seed: 5, seedSet: true}, logger)
	if cfg.BossWave != 4 {
		t.Errorf("Expected boss wave 4, got %d", cfg.BossWave)
	}
	if cfg.Seed != 5 {
		t.Errorf("Expected seed flag to win, got %d", cfg.Seed)
	}
}
