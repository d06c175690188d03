package system

import (
	"testing"

	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/vmath"
)

func TestLineageCounts(t *testing.T) {
	cfg := engine.DefaultConfig()
	l := NewLineage(&cfg)

	g1, g2 := cfg.BossSplitCounts[0], cfg.BossSplitCounts[1]
	if want := 1 + g1 + g1*g2; l.Total() != want {
		t.Errorf("Expected total %d, got %d", want, l.Total())
	}
	if l.SubtreeSize(1) != 1+g2 {
		t.Errorf("Expected generation 1 subtree %d, got %d", 1+g2, l.SubtreeSize(1))
	}
	if l.SubtreeSize(l.Terminal()) != 1 {
		t.Errorf("Expected terminal subtree 1, got %d", l.SubtreeSize(l.Terminal()))
	}
	if l.Radius(1) >= l.Radius(0) {
		t.Error("Expected children smaller than parent")
	}
}

func TestBossLethalHitSplits(t *testing.T) {
	h := newHarness(t)
	h.w.Config.GravityStrength = 0
	root := h.boss.SpawnRoot()

	h.killShots(t, root)
	if h.w.State.BossPartsDestroyed != 1 {
		t.Errorf("Expected 1 part destroyed, got %d", h.w.State.BossPartsDestroyed)
	}
	if h.w.LiveThreats() != 0 {
		t.Fatalf("Expected children delayed, got %d live", h.w.LiveThreats())
	}

	h.run(int(h.w.Config.BossSplitDelayTicks))

	children := h.w.Threats.All()
	if len(children) != h.w.Config.BossSplitCounts[0] {
		t.Fatalf("Expected %d children, got %d", h.w.Config.BossSplitCounts[0], len(children))
	}
	for _, c := range children {
		if c.Generation() != 1 {
			t.Errorf("Expected generation 1, got %d", c.Generation())
		}
		if c.MaxHits != h.w.Config.BossHits[1] || c.HitCount != 0 {
			t.Errorf("Expected fresh budget %d, got %d/%d", h.w.Config.BossHits[1], c.HitCount, c.MaxHits)
		}
	}
	if countEvents(h.w.Events.Consume(), event.EventBossSplit) != 1 {
		t.Error("Expected one split event")
	}
}

func TestBossFragmentConservation(t *testing.T) {
	h := newHarness(t)
	h.w.Config.GravityStrength = 0
	h.boss.SpawnRoot()

	victories := 0
	for i := 0; i < 3000 && !h.w.State.Terminal(); i++ {
		for _, th := range h.w.Threats.All() {
			if th.Targetable() && th.HitCount+h.w.InFlight(th.ID) < th.MaxHits {
				h.proj.Fire(th, VolumeVisual)
			}
		}
		h.tick()
		victories += countEvents(h.w.Events.Consume(), event.EventVictory)
	}

	total := h.boss.Lineage().Total()
	if h.w.State.BossPartsDestroyed != total {
		t.Errorf("Expected %d parts destroyed, got %d", total, h.w.State.BossPartsDestroyed)
	}
	if h.w.State.DestroyedCount != total {
		t.Errorf("Expected %d fragments shot down, got %d", total, h.w.State.DestroyedCount)
	}
	if h.w.State.Outcome != engine.OutcomeVictory || victories != 1 {
		t.Errorf("Expected exactly one victory, outcome %s events %d", h.w.State.Outcome, victories)
	}
}

func TestBossImpactIsFatal(t *testing.T) {
	h := newHarness(t)
	h.w.Config.GravityStrength = 0
	root := h.boss.SpawnRoot()
	h.killShots(t, root)
	h.run(int(h.w.Config.BossSplitDelayTicks))

	child := h.w.Threats.All()[0]
	child.Position = vmath.Vec3{X: 2}
	child.Velocity = vmath.Vec3{}
	h.tick()

	if !child.Impacting {
		t.Error("Expected fragment impacting")
	}
	if h.w.State.Health != 0 || h.w.State.Outcome != engine.OutcomeDefeat {
		t.Errorf("Expected defeat at health 0, got %s at %d", h.w.State.Outcome, h.w.State.Health)
	}
	if h.w.State.BossPartsDestroyed != 1 {
		t.Errorf("Expected only the shot-down root counted, got %d", h.w.State.BossPartsDestroyed)
	}
}

func TestUnansweredBossCannotWin(t *testing.T) {
	h := newHarness(t)
	h.boss.SpawnRoot()

	for i := 0; i < 20000 && !h.w.State.Terminal(); i++ {
		h.tick()
	}

	if h.w.State.Outcome != engine.OutcomeDefeat {
		t.Errorf("Expected defeat without any shots, got %s", h.w.State.Outcome)
	}
	if h.w.State.BossPartsDestroyed != 0 || h.w.State.Score != 0 {
		t.Errorf("Expected no parts or score, got %d parts score %d", h.w.State.BossPartsDestroyed, h.w.State.Score)
	}
}

func TestBossRecalledAtBoundary(t *testing.T) {
	h := newHarness(t)
	h.w.Config.GravityStrength = 0
	root := h.boss.SpawnRoot()
	th, _ := h.w.Threats.Get(root)
	th.Position = vmath.Vec3{X: h.w.Config.MaxDistance + 10}
	th.Velocity = vmath.Vec3{X: 0.5}
	h.tick()

	if th.Destroyed || !h.w.Threats.Has(root) {
		t.Fatal("Expected boss kept in play")
	}
	if d := vmath.V3Mag(th.Position); d > h.w.Config.MaxDistance {
		t.Errorf("Expected boss inside %f, got %f", h.w.Config.MaxDistance, d)
	}
	if th.Velocity.X != -0.5 {
		t.Errorf("Expected outbound velocity reversed, got %+v", th.Velocity)
	}
	if h.w.State.BossPartsDestroyed != 0 || h.w.State.Outcome != engine.OutcomeNone {
		t.Errorf("Expected encounter unchanged, got %d parts outcome %s", h.w.State.BossPartsDestroyed, h.w.State.Outcome)
	}
}

func TestDefeatBlocksVictory(t *testing.T) {
	h := newHarness(t)
	root := h.boss.SpawnRoot()
	h.w.State.BossPartsDestroyed = h.w.State.BossPartsTotal - 1
	h.w.State.ApplyDamage(h.w.State.Health)

	th, _ := h.w.Threats.Get(root)
	h.boss.OnDestroyed(th)

	if h.w.State.Outcome != engine.OutcomeDefeat {
		t.Errorf("Expected defeat to stand, got %s", h.w.State.Outcome)
	}
	if countEvents(h.w.Events.Consume(), event.EventVictory) != 0 {
		t.Error("Expected no victory event after defeat")
	}
}
