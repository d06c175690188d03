package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector in world units
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

// V3Normalize returns the unit vector, or zero for a zero vector
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3Dist returns the euclidean distance between two points
func V3Dist(a, b Vec3) float64 {
	return V3Mag(V3Sub(a, b))
}

// V3Lerp interpolates from a to b, t is not clamped
func V3Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3ClampMagnitude limits vector magnitude
func V3ClampMagnitude(v Vec3, maxMag float64) Vec3 {
	magSq := V3MagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	return V3Scale(V3Normalize(v), maxMag)
}

// V3FromPolarXZ returns a point on the XZ plane at the given angle and radius, with height y
func V3FromPolarXZ(angle, radius, y float64) Vec3 {
	return Vec3{radius * math.Cos(angle), y, radius * math.Sin(angle)}
}
