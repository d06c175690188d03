package physics

import (
	"github.com/lixenwraith/orbit-defense/vmath"
)

// GravityPull returns the per-tick acceleration toward center
// Linear attraction: constant magnitude along the unit direction, independent of mass and distance
func GravityPull(pos, center vmath.Vec3, strength float64) vmath.Vec3 {
	dir := vmath.V3Sub(center, pos)
	if vmath.V3MagSq(dir) == 0 {
		return vmath.Vec3{}
	}
	return vmath.V3Scale(vmath.V3Normalize(dir), strength)
}
