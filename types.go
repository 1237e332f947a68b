package cursor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WindowID identifies a window. IDs are assigned by the host; the engine only
// compares them for equality and ordering.
type WindowID uint64

// CameraID identifies a camera.
type CameraID uint64

// Vec2 is a 2D vector used for pointer positions and world points.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Width > 0 && r.Height > 0)
}

// scaled divides every component by f.
func (r Rect) scaled(f float64) Rect {
	return Rect{X: r.X / f, Y: r.Y / f, Width: r.Width / f, Height: r.Height / f}
}

// Ray is a half-line in world space. Direction is normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlane returns the distance along the ray at which it crosses the
// plane through point with the given normal. ok is false when the ray is
// parallel to the plane or the plane is behind the origin.
func (r Ray) IntersectPlane(point, normal mgl64.Vec3) (t float64, ok bool) {
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	t = point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
