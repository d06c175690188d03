package game

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/status"
	"github.com/lixenwraith/orbit-defense/system"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// AimInput re-exports the targeting input for hosts
type AimInput = system.AimInput

// Simulation is the facade hosts drive: lifecycle commands, aim input, ticks and sinks
// Not safe for concurrent use; only Registry may be read from other goroutines
type Simulation struct {
	world    *engine.World
	registry *status.Registry
	session  uuid.UUID

	spawner   *system.Spawner
	boss      *system.BossSystem
	wave      *system.WaveSystem
	targeting *system.TargetingSystem

	// Fixed tick order ahead of deferred events
	pipeline []engine.System
}

// NewSimulation validates cfg, builds the template pool from src and wires the systems
// A nil logger discards output
func NewSimulation(cfg Config, src content.Source, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	for _, fix := range cfg.Validate() {
		logger.Printf("config: %s", fix)
	}

	pool := content.NewPool(src, vmath.NewFastRand(cfg.Seed^0x9e3779b97f4a7c15), logger)
	w := engine.NewWorld(cfg, pool, logger)

	s := &Simulation{
		world:    w,
		registry: status.NewRegistry(),
		session:  uuid.New(),
	}
	s.spawner = system.NewSpawner(w)
	s.boss = system.NewBossSystem(w, s.spawner)
	projectiles := system.NewProjectileSystem(w, s.boss)
	s.targeting = system.NewTargetingSystem(w, projectiles)
	s.wave = system.NewWaveSystem(w, s.spawner, s.boss)

	s.pipeline = []engine.System{
		s.targeting,
		projectiles,
		system.NewPhysicsSystem(w),
		system.NewLifecycleSystem(w, s.boss),
	}

	s.publish()
	return s
}

// Start begins wave 1, no-op once started
func (s *Simulation) Start() {
	st := &s.world.State
	if st.Started {
		return
	}
	st.Started = true
	s.world.Log.Printf("session %s started", s.session)
	s.wave.Start()
	s.publish()
}

// Reset discards the session and returns to the pre-start state under a new session id
func (s *Simulation) Reset() {
	s.world.Reset()
	s.wave.Reset()
	s.targeting.Reset()
	s.session = uuid.New()
	s.world.Log.Printf("session reset, new session %s", s.session)
	s.publish()
}

// Pause freezes the whole pipeline including deferred events
func (s *Simulation) Pause() {
	st := &s.world.State
	if !st.Started || st.Paused || st.Terminal() {
		return
	}
	st.Paused = true
	s.world.Clock.Pause()
	s.publish()
}

// Resume continues from the frozen tick
func (s *Simulation) Resume() {
	st := &s.world.State
	if !st.Paused {
		return
	}
	st.Paused = false
	s.world.Clock.Resume()
	s.publish()
}

// TogglePause flips between Pause and Resume
func (s *Simulation) TogglePause() {
	if s.world.State.Paused {
		s.Resume()
		return
	}
	s.Pause()
}

// AcknowledgeCutscene opens the gated boss wave
func (s *Simulation) AcknowledgeCutscene() {
	if s.wave.AcknowledgeCutscene() {
		s.publish()
	}
}

// Aim buffers input for the next tick, ignored unless running
func (s *Simulation) Aim(in AimInput) {
	if !s.world.State.Running() {
		return
	}
	s.targeting.Queue(in)
}

// Tick runs one pipeline pass, no-op while not started, paused or terminal
func (s *Simulation) Tick() {
	w := s.world
	if !w.State.Running() || !w.Clock.Advance() {
		return
	}

	for _, sys := range s.pipeline {
		sys.Update()
	}
	w.Scheduler.RunDue(w.Now())
	s.wave.Update()

	w.Compact()
	s.publish()
}

// HUD returns the current HUD snapshot
func (s *Simulation) HUD() status.HUD {
	st := &s.world.State
	return status.HUD{
		Score:              st.Score,
		Wave:               st.Wave,
		DestroyedCount:     st.DestroyedCount,
		LiveThreats:        s.world.LiveThreats(),
		Health:             st.Health,
		BossActive:         st.BossActive,
		BossPartsDestroyed: st.BossPartsDestroyed,
		BossPartsTotal:     st.BossPartsTotal,
		Tick:               s.world.Now(),
		Paused:             st.Paused,
		Started:            st.Started,
		CutscenePending:    st.CutscenePending,
		Outcome:            st.Outcome.String(),
		Session:            s.session.String(),
	}
}

// Registry returns the HUD metrics registry for concurrent readers
func (s *Simulation) Registry() *status.Registry {
	return s.registry
}

// Session returns the current session id
func (s *Simulation) Session() string {
	return s.session.String()
}

// Outcome returns the terminal result, OutcomeNone while in progress
func (s *Simulation) Outcome() engine.Outcome {
	return s.world.State.Outcome
}

// Events drains visual sink events raised since the last call
func (s *Simulation) Events() []event.GameEvent {
	return s.world.Events.Consume()
}

// Entities returns render views of every live threat and projectile
func (s *Simulation) Entities() []EntityView {
	w := s.world
	threats := w.Threats.All()
	projectiles := w.Projectiles.All()
	views := make([]EntityView, 0, len(threats)+len(projectiles))

	for _, t := range threats {
		v := EntityView{
			ID:         t.ID,
			Kind:       KindThreat,
			Name:       t.Name,
			Position:   t.Position,
			Rotation:   t.Rotation,
			Radius:     t.Radius,
			SizeClass:  string(t.Template.SizeClass),
			Hazardous:  t.Hazard == component.Hazardous,
			Destroyed:  t.Destroyed,
			Impacting:  t.Impacting,
			Generation: t.Generation(),
			HitCount:   t.HitCount,
			MaxHits:    t.MaxHits,
		}
		if tr, ok := w.Trails.Get(t.ID); ok {
			v.TrailHandle = tr.Handle
			v.TrailAge = tr.Age
		}
		views = append(views, v)
	}

	for _, p := range projectiles {
		views = append(views, EntityView{
			ID:         p.ID,
			Kind:       KindProjectile,
			Position:   p.Position,
			Radius:     parameter.ProjectileRadius,
			Generation: -1,
			Progress:   p.Progress,
			Target:     p.Target,
		})
	}
	return views
}

// DefendedRadius returns the radius of the defended body for renderers
func (s *Simulation) DefendedRadius() float64 {
	return s.world.Config.DefendedRadius
}

func (s *Simulation) publish() {
	s.registry.Publish(s.HUD(), parameter.MaxHealth)
}
