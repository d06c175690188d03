package system

import (
	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/physics"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// LifecycleSystem applies boundary rules and ages trails
type LifecycleSystem struct {
	world *engine.World
	boss  *BossSystem
}

func NewLifecycleSystem(world *engine.World, boss *BossSystem) *LifecycleSystem {
	return &LifecycleSystem{world: world, boss: boss}
}

func (s *LifecycleSystem) Name() string { return "lifecycle" }

func (s *LifecycleSystem) Update() {
	w := s.world
	cfg := &w.Config

	for _, t := range w.Threats.All() {
		if t.Impacting {
			continue
		}

		switch physics.Classify(t.Position, vmath.Vec3{}, cfg.CollisionRadius, cfg.MaxDistance) {
		case physics.ZoneOutOfPlay:
			if t.IsBoss() {
				s.boss.Recall(t)
				break
			}
			s.remove(t, event.RemovalOutOfPlay)
			continue
		case physics.ZoneCollision:
			if t.Hazard == component.Hazardous {
				s.beginImpact(t)
			} else {
				s.remove(t, event.RemovalPassThrough)
			}
			continue
		case physics.ZoneInPlay:
		}

		if tr, ok := w.Trails.Get(t.ID); ok && !tr.Frozen {
			tr.Age++
		}
	}
}

// remove destroys t without score or count
func (s *LifecycleSystem) remove(t *component.Threat, reason event.RemovalReason) {
	w := s.world
	if !w.DestroyThreat(t.ID) {
		return
	}
	w.Log.Printf("lifecycle: removed %d (%s)", t.ID, reason)
	w.Emit(event.EventThreatRemoved, &event.ThreatRemovedPayload{Entity: t.ID, Reason: reason})
}

// beginImpact freezes t, damages the defended body and schedules removal
func (s *LifecycleSystem) beginImpact(t *component.Threat) {
	w := s.world
	t.Impacting = true
	if tr, ok := w.Trails.Get(t.ID); ok {
		tr.Frozen = true
	}

	damage := w.Config.DamagePerImpact
	if t.IsBoss() {
		// Any boss fragment reaching the body is fatal
		damage = w.State.Health
	}

	defeated := w.State.ApplyDamage(damage)
	w.Emit(event.EventImpact, &event.ImpactPayload{
		Entity:   t.ID,
		Damage:   damage,
		Health:   w.State.Health,
		Position: t.Position,
	})
	w.Log.Printf("lifecycle: impact by %d, health %d", t.ID, w.State.Health)

	if defeated {
		w.Log.Printf("lifecycle: defended body destroyed at wave %d, score %d", w.State.Wave, w.State.Score)
		w.Emit(event.EventDefeat, &event.OutcomePayload{
			Score:          w.State.Score,
			Wave:           w.State.Wave,
			DestroyedCount: w.State.DestroyedCount,
		})
	}

	id := t.ID
	w.After(w.Config.ImpactAnimationTicks, labelImpactRemoval, func() {
		s.finishImpact(id)
	})
}

func (s *LifecycleSystem) finishImpact(id core.Entity) {
	w := s.world
	if w.DestroyThreat(id) {
		w.Emit(event.EventThreatRemoved, &event.ThreatRemovedPayload{Entity: id, Reason: event.RemovalImpact})
	}
}
