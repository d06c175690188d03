package system

import (
	"testing"

	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// harness wires every system around one world in pipeline order
type harness struct {
	w         *engine.World
	spawner   *Spawner
	boss      *BossSystem
	proj      *ProjectileSystem
	targeting *TargetingSystem
	physics   *PhysicsSystem
	lifecycle *LifecycleSystem
	wave      *WaveSystem
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := engine.DefaultConfig()
	pool := content.NewPool(content.StaticSource(content.FallbackTemplates()), vmath.NewFastRand(7), nil)
	w := engine.NewWorld(cfg, pool, nil)
	w.State.Started = true

	h := &harness{w: w}
	h.spawner = NewSpawner(w)
	h.boss = NewBossSystem(w, h.spawner)
	h.proj = NewProjectileSystem(w, h.boss)
	h.targeting = NewTargetingSystem(w, h.proj)
	h.physics = NewPhysicsSystem(w)
	h.lifecycle = NewLifecycleSystem(w, h.boss)
	h.wave = NewWaveSystem(w, h.spawner, h.boss)
	return h
}

func (h *harness) tick() {
	if !h.w.Clock.Advance() {
		return
	}
	for _, s := range []engine.System{h.targeting, h.proj, h.physics, h.lifecycle} {
		s.Update()
	}
	h.w.Scheduler.RunDue(h.w.Now())
	h.wave.Update()
	h.w.Compact()
}

func (h *harness) run(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}

// idle spawns a stationary benign threat at pos
func (h *harness) idle(pos vmath.Vec3, radius float64) *component.Threat {
	t := &component.Threat{
		Name:     "idle",
		Template: content.Template{ID: "idle", Name: "idle", SizeClass: content.SizeMedium},
		Radius:   radius,
		Hazard:   component.Benign,
		Orbit:    component.Orbit{Stationary: true, TargetRadius: vmath.V3Mag(pos)},
		MaxHits:  1,
		Points:   PointsFor(content.Template{SizeClass: content.SizeMedium}),
		Variant:  component.Standard{},
	}
	t.Position = pos
	h.spawner.Spawn(t)
	return t
}

// killShots fires enough projectiles at e to destroy it and lets them land
func (h *harness) killShots(t *testing.T, e core.Entity) {
	t.Helper()
	th, ok := h.w.Threats.Get(e)
	if !ok {
		t.Fatalf("Threat %d not live", e)
	}
	for th.HitCount < th.MaxHits {
		h.proj.Fire(th, VolumeVisual)
		h.run(projectileTicks(h.w))
	}
}

func projectileTicks(w *engine.World) int {
	return int(1/w.Config.ProjectileStep) + 1
}

// downRay looks straight down onto (x, z)
func downRay(x, z float64) vmath.Ray {
	return vmath.Ray{Origin: vmath.Vec3{X: x, Y: 100, Z: z}, Dir: vmath.Vec3{Y: -1}}
}

func countEvents(evs []event.GameEvent, typ event.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
