package game

import (
	"testing"

	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/vmath"
)

func newTestSimulation(t *testing.T, cfg Config) *Simulation {
	t.Helper()
	return NewSimulation(cfg, content.StaticSource(content.FallbackTemplates()), nil)
}

func downRay(x, z float64) vmath.Ray {
	return vmath.Ray{Origin: vmath.Vec3{X: x, Y: 100, Z: z}, Dir: vmath.Vec3{Y: -1}}
}

// placeIdle inserts a stationary benign threat at pos
func placeIdle(s *Simulation, pos vmath.Vec3) *component.Threat {
	tpl := content.Template{ID: "idle", Name: "Idle", SizeClass: content.SizeMedium}
	th := &component.Threat{
		Name:     tpl.Name,
		Template: tpl,
		Radius:   parameter.RadiusMedium,
		Hazard:   component.Benign,
		Orbit:    component.Orbit{Stationary: true},
		MaxHits:  1,
		Points:   parameter.PointsBenign,
		Variant:  component.Standard{},
	}
	th.Position = pos
	s.spawner.Spawn(th)
	return th
}

func ticks(s *Simulation, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestLifecycleBeforeStart(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig())
	s.Tick()
	s.Pause()

	h := s.HUD()
	if h.Started || h.Paused || h.Tick != 0 || h.Wave != 0 {
		t.Errorf("Expected inert pre-start state, got %+v", h)
	}
	if h.Health != parameter.MaxHealth {
		t.Errorf("Expected full health, got %d", h.Health)
	}
}

func TestStartIdempotent(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig())
	s.Start()
	s.Start()

	if got := s.world.Scheduler.Pending("spawn"); got != s.world.Config.SpawnCount(1) {
		t.Errorf("Expected one wave of %d spawns, got %d", s.world.Config.SpawnCount(1), got)
	}
	if s.Registry().Snapshot().Wave != 1 {
		t.Errorf("Expected published wave 1, got %d", s.Registry().Snapshot().Wave)
	}
	evs := s.Events()
	n := 0
	for _, ev := range evs {
		if ev.Type == event.EventWaveStarted {
			n++
		}
	}
	if n != 1 {
		t.Errorf("Expected one wave started event, got %d", n)
	}
}

func TestPauseFreezesTime(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig())
	s.Start()
	ticks(s, 10)

	before := s.HUD()
	views := s.Entities()
	s.Pause()
	ticks(s, 500)
	s.Aim(AimInput{Ray: downRay(0, 0)})

	after := s.HUD()
	if after.Tick != before.Tick || after.Score != before.Score || after.LiveThreats != before.LiveThreats {
		t.Errorf("Expected frozen HUD, before %+v after %+v", before, after)
	}
	for i, v := range s.Entities() {
		if v.Position != views[i].Position || v.Rotation != views[i].Rotation {
			t.Errorf("Entity %d moved while paused", v.ID)
		}
	}
	if !after.Paused {
		t.Error("Expected paused flag")
	}

	s.Resume()
	ticks(s, 10)
	// Second staggered spawn is due 20 ticks after start, the third is not yet due
	if got := s.HUD().LiveThreats; got != 2 {
		t.Errorf("Expected 2 threats after resume, got %d", got)
	}
	if s.world.Projectiles.Count() != 0 {
		t.Error("Expected aim while paused ignored")
	}
}

func TestStandardKillScenario(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig())
	s.Start()
	// Raised above the orbital plane so no wave threat sits nearer along the ray
	th := placeIdle(s, vmath.Vec3{X: 30, Y: 20, Z: 30})

	s.Aim(AimInput{X: 0.6, Y: 0.4, Ray: downRay(30, 30)})
	ticks(s, int(1/parameter.ProjectileStep)+1)

	h := s.HUD()
	if h.Score != parameter.PointsBenign {
		t.Errorf("Expected score %d, got %d", parameter.PointsBenign, h.Score)
	}
	if h.DestroyedCount != 1 {
		t.Errorf("Expected destroyed count 1, got %d", h.DestroyedCount)
	}
	for _, v := range s.Entities() {
		if v.ID == th.ID {
			t.Error("Expected destroyed threat absent from views")
		}
	}
}

func TestOutOfBoundsScenario(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig())
	s.Start()
	placeIdle(s, vmath.Vec3{X: parameter.MaxDistance + 1})
	s.Tick()

	h := s.HUD()
	if h.Score != 0 || h.DestroyedCount != 0 {
		t.Errorf("Expected no score or count, got %+v", h)
	}
}

func TestBossLethalHitScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BossWave = 1
	s := newTestSimulation(t, cfg)
	s.Start()

	views := s.Entities()
	if len(views) != 1 || views[0].Generation != 0 {
		t.Fatalf("Expected a lone root boss, got %d views", len(views))
	}
	root := views[0]

	// One click per hit in the budget, all in the same tick
	for i := 0; i < cfg.BossHits[0]; i++ {
		s.Aim(AimInput{Ray: downRay(root.Position.X, root.Position.Z)})
	}
	ticks(s, int(1/parameter.ProjectileStep)+1)

	h := s.HUD()
	if h.BossPartsDestroyed != 1 {
		t.Errorf("Expected 1 boss part destroyed, got %d", h.BossPartsDestroyed)
	}
	wantScore := (cfg.BossHits[0]-1)*parameter.PartialHitScore + cfg.BossPoints[0]
	if h.Score != wantScore {
		t.Errorf("Expected score %d, got %d", wantScore, h.Score)
	}
	if h.LiveThreats != 0 {
		t.Errorf("Expected split still pending, got %d live", h.LiveThreats)
	}

	ticks(s, int(cfg.BossSplitDelayTicks))
	if h := s.HUD(); h.LiveThreats != cfg.BossSplitCounts[0] {
		t.Errorf("Expected %d children, got %d", cfg.BossSplitCounts[0], h.LiveThreats)
	}
	for _, v := range s.Entities() {
		if v.Generation != 1 || v.MaxHits != cfg.BossHits[1] {
			t.Errorf("Expected generation 1 fragment with %d hits, got gen %d hits %d", cfg.BossHits[1], v.Generation, v.MaxHits)
		}
	}
}

func TestCampaignReachesBossGate(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig())
	s.Start()

	var counts []int
	for i := 0; i < 20000 && !s.HUD().CutscenePending; i++ {
		for _, e := range s.world.Threats.Entities() {
			s.world.DestroyThreat(e)
		}
		s.Tick()
		for _, ev := range s.Events() {
			if p, ok := ev.Payload.(*event.WavePayload); ok && ev.Type == event.EventWaveStarted {
				counts = append(counts, p.Count)
			}
		}
	}

	cfg := s.world.Config
	if !s.HUD().CutscenePending {
		t.Fatal("Expected cutscene gate before boss wave")
	}
	if len(counts) != cfg.BossWave-1 {
		t.Fatalf("Expected %d ordinary waves, got %d", cfg.BossWave-1, len(counts))
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] < counts[i-1] {
			t.Errorf("Wave %d spawned %d, fewer than %d", i+1, counts[i], counts[i-1])
		}
	}

	// Gate holds until acknowledged
	ticks(s, int(cfg.WatchdogIntervalTicks)*2)
	if s.HUD().Wave != cfg.BossWave-1 {
		t.Errorf("Expected gate to hold wave %d, got %d", cfg.BossWave-1, s.HUD().Wave)
	}

	s.AcknowledgeCutscene()
	s.Tick()
	h := s.HUD()
	if h.Wave != cfg.BossWave || !h.BossActive || h.LiveThreats != 1 {
		t.Errorf("Expected boss wave with one root, got %+v", h)
	}
	if h.BossPartsTotal != 1+cfg.BossSplitCounts[0]+cfg.BossSplitCounts[0]*cfg.BossSplitCounts[1] {
		t.Errorf("Unexpected boss part total %d", h.BossPartsTotal)
	}
}

func TestDefeatStopsPipeline(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig())
	s.Start()

	for i := 0; i < 50 && s.Outcome() == engine.OutcomeNone; i++ {
		th := placeIdle(s, vmath.Vec3{X: 3, Z: float64(i) * 0.01})
		th.Hazard = component.Hazardous
		s.Tick()
	}
	if s.Outcome() != engine.OutcomeDefeat {
		t.Fatalf("Expected defeat, got %s", s.Outcome())
	}

	h := s.HUD()
	ticks(s, 100)
	if s.HUD().Tick != h.Tick {
		t.Error("Expected ticks ignored after defeat")
	}
	if s.HUD().Health != 0 {
		t.Errorf("Expected zero health, got %d", s.HUD().Health)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig())
	first := s.Session()
	s.Start()
	ticks(s, 50)
	s.Reset()

	if s.Session() == first {
		t.Error("Expected a new session id")
	}
	h := s.HUD()
	if h.Started || h.Wave != 0 || h.Tick != 0 || h.LiveThreats != 0 || h.Health != parameter.MaxHealth {
		t.Errorf("Expected initial state, got %+v", h)
	}
	if len(s.Entities()) != 0 || len(s.Events()) != 0 {
		t.Error("Expected empty sinks after reset")
	}
	if s.world.Scheduler.Len() != 0 {
		t.Error("Expected no deferred events after reset")
	}

	s.Start()
	if s.HUD().Wave != 1 {
		t.Errorf("Expected restart at wave 1, got %d", s.HUD().Wave)
	}
}

func TestBadSourceFallsBack(t *testing.T) {
	s := NewSimulation(DefaultConfig(), content.StaticSource(nil), nil)
	s.Start()
	s.Tick()
	if s.HUD().LiveThreats != 1 {
		t.Errorf("Expected spawn from fallback templates, got %d", s.HUD().LiveThreats)
	}
}
