package physics

import (
	"math"

	"github.com/lixenwraith/orbit-defense/vmath"
)

// StabilizeOrbit returns a radial correction keeping a body near targetRadius from center
// Inside the tolerance band no force is applied; outside, the sign of the error picks the direction
func StabilizeOrbit(pos, center vmath.Vec3, targetRadius, tolerance, strength float64) vmath.Vec3 {
	radial := vmath.V3Sub(pos, center)
	dist := vmath.V3Mag(radial)
	if dist == 0 {
		return vmath.Vec3{}
	}

	diff := dist - targetRadius
	if math.Abs(diff) <= tolerance {
		return vmath.Vec3{}
	}

	outward := vmath.V3Scale(radial, 1/dist)
	if diff > 0 {
		return vmath.V3Scale(outward, -strength)
	}
	return vmath.V3Scale(outward, strength)
}

// OrbitalInsert returns a tangential velocity in the XZ plane for orbit insertion
func OrbitalInsert(pos, center vmath.Vec3, speed float64, clockwise bool) vmath.Vec3 {
	dx := pos.X - center.X
	dz := pos.Z - center.Z
	r := math.Hypot(dx, dz)
	if r == 0 {
		return vmath.Vec3{}
	}

	// Perpendicular to the radius
	tx, tz := -dz/r, dx/r
	if clockwise {
		tx, tz = -tx, -tz
	}
	return vmath.Vec3{X: tx * speed, Z: tz * speed}
}
