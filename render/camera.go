package render

import (
	"math"

	"github.com/lixenwraith/orbit-defense/vmath"
)

// CellAspect is terminal cell height over width
const CellAspect = 2.0

// cameraAltitude is the height aim rays start from, above any threat
const cameraAltitude = 500.0

// Camera is a top-down orthographic view of the XZ plane centered on the defended body
// Columns follow +X, rows follow +Z
type Camera struct {
	Width, Height int
	// Scale is world units per column
	Scale      float64
	viewRadius float64
}

// NewCamera fits a circle of viewRadius world units into a width x height grid
func NewCamera(width, height int, viewRadius float64) Camera {
	c := Camera{viewRadius: viewRadius}
	c.Resize(width, height)
	return c
}

// Resize refits the view to a new grid
func (c *Camera) Resize(width, height int) {
	c.Width = max(width, 1)
	c.Height = max(height, 1)
	halfCols := float64(c.Width) / 2
	halfRowsAsCols := float64(c.Height) * CellAspect / 2
	c.Scale = c.viewRadius / math.Min(halfCols, halfRowsAsCols)
}

// Project returns the cell showing p, ok is false off screen
func (c Camera) Project(p vmath.Vec3) (x, y int, ok bool) {
	x = int(math.Floor(float64(c.Width)/2 + p.X/c.Scale))
	y = int(math.Floor(float64(c.Height)/2 + p.Z/(c.Scale*CellAspect)))
	ok = x >= 0 && x < c.Width && y >= 0 && y < c.Height
	return x, y, ok
}

// NormalizedFromCell returns the [0,1] screen coordinate of a cell center
func (c Camera) NormalizedFromCell(x, y int) (nx, ny float64) {
	return (float64(x) + 0.5) / float64(c.Width), (float64(y) + 0.5) / float64(c.Height)
}

// Ray returns the downward view ray through a normalized screen coordinate
func (c Camera) Ray(nx, ny float64) vmath.Ray {
	wx := (nx*float64(c.Width) - float64(c.Width)/2) * c.Scale
	wz := (ny*float64(c.Height) - float64(c.Height)/2) * c.Scale * CellAspect
	return vmath.Ray{
		Origin: vmath.Vec3{X: wx, Y: cameraAltitude, Z: wz},
		Dir:    vmath.Vec3{Y: -1},
	}
}

// Columns converts a world length to columns, at least one
func (c Camera) Columns(r float64) int {
	return max(int(math.Round(r/c.Scale)), 1)
}
