package physics

import (
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// Integrate performs one semi-implicit Euler step: v = clamp(v + a); p = p + v
// One call per tick, no sub-stepping
func Integrate(k *core.Kinetic, accel vmath.Vec3, maxSpeed float64) {
	k.Velocity = vmath.V3ClampMagnitude(vmath.V3Add(k.Velocity, accel), maxSpeed)
	k.Position = vmath.V3Add(k.Position, k.Velocity)
}

// Spin advances cosmetic rotation
func Spin(k *core.Kinetic) {
	k.Rotation = vmath.V3Add(k.Rotation, k.Spin)
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(k *core.Kinetic, dv vmath.Vec3) {
	k.Velocity = vmath.V3Add(k.Velocity, dv)
}
