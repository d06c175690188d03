package component

import (
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// Projectile is a travel-time shot toward a captured target position
// Target is an id, never an owning reference; liveness is re-validated on resolution
type Projectile struct {
	ID        core.Entity
	Target    core.Entity
	Start     vmath.Vec3
	TargetPos vmath.Vec3
	Position  vmath.Vec3

	Progress    float64 // Monotone in [0, 1]
	CreatedTick uint64
	Resolved    bool
}
