package system

import (
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
)

// WaveSystem drives wave progression: staggered spawns, delayed advance, cutscene gate and watchdog
type WaveSystem struct {
	world   *engine.World
	spawner *Spawner
	boss    *BossSystem

	// Wave whose advance is already scheduled
	advanceFor int
}

func NewWaveSystem(world *engine.World, spawner *Spawner, boss *BossSystem) *WaveSystem {
	return &WaveSystem{world: world, spawner: spawner, boss: boss}
}

func (s *WaveSystem) Name() string { return "wave" }

// Start begins wave 1 and arms the watchdog
func (s *WaveSystem) Start() {
	s.advanceFor = 0
	s.beginWave(1)
	s.armWatchdog()
}

// Reset forgets progression bookkeeping, the scheduler is cleared by the world
func (s *WaveSystem) Reset() {
	s.advanceFor = 0
}

// Cleared reports no live threats and no pending staggered spawns
func (s *WaveSystem) Cleared() bool {
	return s.world.LiveThreats() == 0 && s.world.Scheduler.Pending(labelSpawn) == 0
}

// Update schedules the advance once the current wave is cleared
func (s *WaveSystem) Update() {
	w := s.world
	st := &w.State
	if !s.progressing() || s.advanceFor == st.Wave || !s.Cleared() {
		return
	}

	wave := st.Wave
	s.advanceFor = wave
	w.After(w.Config.WaveDelayTicks, labelAdvance, func() {
		s.advance(wave)
	})
}

// AcknowledgeCutscene opens the boss wave after the gate
func (s *WaveSystem) AcknowledgeCutscene() bool {
	st := &s.world.State
	if !st.CutscenePending || st.Terminal() {
		return false
	}
	st.CutscenePending = false
	s.beginWave(s.world.Config.BossWave)
	return true
}

// progressing reports whether ordinary wave progression is active
func (s *WaveSystem) progressing() bool {
	st := &s.world.State
	return st.Wave > 0 && st.Wave < s.world.Config.BossWave && !st.CutscenePending && !st.Terminal()
}

// advance moves past wave, a no-op unless wave is still current and cleared
func (s *WaveSystem) advance(wave int) bool {
	w := s.world
	st := &w.State
	if st.Wave != wave || !s.progressing() || !s.Cleared() {
		return false
	}

	next := wave + 1
	if next == w.Config.BossWave {
		st.CutscenePending = true
		w.Log.Printf("wave: boss wave %d gated on cutscene", next)
		w.Emit(event.EventCutsceneGate, &event.WavePayload{Wave: next, Count: 1})
		return true
	}
	s.beginWave(next)
	return true
}

func (s *WaveSystem) beginWave(wave int) {
	w := s.world
	w.State.Wave = wave

	if wave == w.Config.BossWave {
		s.boss.SpawnRoot()
		w.Log.Printf("wave: boss wave %d started", wave)
		w.Emit(event.EventWaveStarted, &event.WavePayload{Wave: wave, Count: 1})
		return
	}

	n := w.Config.SpawnCount(wave)
	for i := 0; i < n; i++ {
		w.After(uint64(i)*w.Config.SpawnStaggerTicks, labelSpawn, func() {
			if w.State.Wave != wave {
				return
			}
			s.spawner.Spawn(s.spawner.StandardThreat(wave))
		})
	}
	w.Log.Printf("wave: wave %d started with %d threats", wave, n)
	w.Emit(event.EventWaveStarted, &event.WavePayload{Wave: wave, Count: n})
}

// armWatchdog recovers progression when a cleared wave has no advance pending
func (s *WaveSystem) armWatchdog() {
	w := s.world
	w.After(w.Config.WatchdogIntervalTicks, labelWatchdog, func() {
		if w.State.Wave >= w.Config.BossWave || w.State.Terminal() {
			return
		}
		if s.progressing() && s.Cleared() && w.Scheduler.Pending(labelAdvance) == 0 {
			if s.advance(w.State.Wave) {
				w.Log.Printf("wave: watchdog advanced to %d", w.State.Wave)
			}
		}
		s.armWatchdog()
	})
}
