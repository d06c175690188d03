package vmath

import "math"

// Ray is a half-line from Origin along Dir
// Dir need not be normalized; parameters returned by intersection helpers are in units of Dir
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t
func (r Ray) At(t float64) Vec3 {
	return V3Add(r.Origin, V3Scale(r.Dir, t))
}

// RaySphere intersects a ray with a sphere
// Returns the entry parameter t >= 0 and true on a hit; t is 0 when the origin is inside the sphere
func RaySphere(r Ray, center Vec3, radius float64) (float64, bool) {
	if radius <= 0 {
		return 0, false
	}
	a := V3MagSq(r.Dir)
	if a == 0 {
		return 0, false
	}

	oc := V3Sub(r.Origin, center)
	c := V3MagSq(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}

	halfB := V3Dot(oc, r.Dir)
	if halfB >= 0 {
		// Origin outside and pointing away
		return 0, false
	}

	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, false
	}

	t := (-halfB - math.Sqrt(disc)) / a
	if t < 0 {
		return 0, false
	}
	return t, true
}
