package system

import (
	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// LaunchPoint returns where a shot at target leaves the defended body
func LaunchPoint(target vmath.Vec3, defendedRadius float64) vmath.Vec3 {
	dir := vmath.V3Normalize(target)
	if dir == (vmath.Vec3{}) {
		dir = vmath.Vec3{Y: 1}
	}
	return vmath.V3Scale(dir, defendedRadius+parameter.LaunchOffset)
}

// ProjectileSystem advances projectiles and applies their delayed damage
type ProjectileSystem struct {
	world *engine.World
	boss  *BossSystem
}

func NewProjectileSystem(world *engine.World, boss *BossSystem) *ProjectileSystem {
	return &ProjectileSystem{world: world, boss: boss}
}

func (s *ProjectileSystem) Name() string { return "projectile" }

// Fire launches a projectile at target's current position
func (s *ProjectileSystem) Fire(target *component.Threat, vol Volume) core.Entity {
	w := s.world
	start := LaunchPoint(target.Position, w.Config.DefendedRadius)
	p := &component.Projectile{
		Target:      target.ID,
		Start:       start,
		TargetPos:   target.Position,
		Position:    start,
		CreatedTick: w.Now(),
	}
	e := w.Projectiles.Insert(p)
	p.ID = e

	w.Emit(event.EventProjectileFired, &event.ProjectileFiredPayload{
		Projectile: e,
		Target:     target.ID,
		Volume:     vol.String(),
		Start:      start,
		TargetPos:  p.TargetPos,
	})
	return e
}

func (s *ProjectileSystem) Update() {
	w := s.world
	for _, p := range w.Projectiles.All() {
		if p.Resolved {
			continue
		}
		p.Progress = vmath.Clamp(p.Progress+w.Config.ProjectileStep, 0, 1)
		p.Position = vmath.V3Lerp(p.Start, p.TargetPos, p.Progress)

		if p.Progress >= 1 {
			p.Resolved = true
			s.resolve(p)
			w.Projectiles.MarkDestroyed(p.ID)
		}
	}
}

// resolve applies one hit, stale and impacting targets absorb nothing
func (s *ProjectileSystem) resolve(p *component.Projectile) {
	w := s.world
	t, ok := w.Threats.Get(p.Target)
	if !ok || t.Destroyed || t.Impacting {
		w.Log.Printf("projectile: %d target %d gone, discarding", p.ID, p.Target)
		return
	}

	t.HitCount++
	if t.HitCount > t.MaxHits {
		w.Log.Printf("projectile: hit count of %d clamped to %d", t.ID, t.MaxHits)
		t.HitCount = t.MaxHits
	}

	if t.HitCount < t.MaxHits {
		w.State.Score += parameter.PartialHitScore
		w.Emit(event.EventPartialHit, &event.PartialHitPayload{
			Entity:   t.ID,
			HitCount: t.HitCount,
			MaxHits:  t.MaxHits,
			Points:   parameter.PartialHitScore,
		})
		return
	}

	w.DestroyThreat(t.ID)
	w.State.RecordKill(t.Points)
	w.Emit(event.EventExplosion, &event.ExplosionPayload{
		Entity:     t.ID,
		SizeClass:  string(t.Template.SizeClass),
		Radius:     t.Radius,
		Generation: t.Generation(),
		Position:   t.Position,
	})
	w.Emit(event.EventThreatDestroyed, &event.ThreatDestroyedPayload{
		Entity:     t.ID,
		Points:     t.Points,
		Generation: t.Generation(),
	})

	switch t.Variant.(type) {
	case component.Boss:
		s.boss.OnDestroyed(t)
	case component.Standard:
	}
}
