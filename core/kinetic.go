package core

import "github.com/lixenwraith/orbit-defense/vmath"

// Kinetic holds the integrated motion state of a simulated body
// Units are world units and world units per tick; the tick duration is uniform
type Kinetic struct {
	Position vmath.Vec3
	Velocity vmath.Vec3

	// Rotation is cosmetic orientation in radians per axis, advanced by Spin every tick
	Rotation vmath.Vec3
	Spin     vmath.Vec3
}
