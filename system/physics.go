package system

import (
	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/physics"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// PhysicsSystem integrates every live, non-impacting threat once per tick
type PhysicsSystem struct {
	world *engine.World
}

func NewPhysicsSystem(world *engine.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (s *PhysicsSystem) Name() string { return "physics" }

func (s *PhysicsSystem) Update() {
	cfg := &s.world.Config
	center := vmath.Vec3{}

	for _, t := range s.world.Threats.All() {
		if t.Impacting {
			continue
		}
		physics.Spin(&t.Kinetic)

		var accel vmath.Vec3
		switch t.Hazard {
		case component.Hazardous:
			accel = physics.GravityPull(t.Position, center, cfg.GravityStrength)
		case component.Benign:
			if t.Orbit.Stationary {
				continue
			}
			accel = physics.StabilizeOrbit(t.Position, center, t.Orbit.TargetRadius, cfg.StabilizeTolerance, cfg.StabilizeStrength)
		}
		physics.Integrate(&t.Kinetic, accel, cfg.MaxSpeed)
	}
}
