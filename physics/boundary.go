package physics

import (
	"github.com/lixenwraith/orbit-defense/vmath"
)

// Zone is the boundary classification of a position
type Zone uint8

const (
	ZoneInPlay Zone = iota
	ZoneCollision
	ZoneOutOfPlay
)

func (z Zone) String() string {
	switch z {
	case ZoneCollision:
		return "collision"
	case ZoneOutOfPlay:
		return "out_of_play"
	default:
		return "in_play"
	}
}

// Classify reports whether pos is in play, inside the collision radius, or beyond max distance
func Classify(pos, center vmath.Vec3, collisionRadius, maxDistance float64) Zone {
	d := vmath.V3Dist(pos, center)
	switch {
	case d > maxDistance:
		return ZoneOutOfPlay
	case d < collisionRadius:
		return ZoneCollision
	default:
		return ZoneInPlay
	}
}
