package cursor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{110, 70, true},
		{60, 45, true},
		{9.99, 45, false},
		{60, 70.01, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{Width: 0, Height: 10}).Empty() {
		t.Error("zero width should be empty")
	}
	if !(Rect{Width: 10, Height: -1}).Empty() {
		t.Error("negative height should be empty")
	}
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 should not be empty")
	}
}

func TestRayIntersectPlane(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 10, 0}, Direction: mgl64.Vec3{0, -1, 0}}
	d, ok := r.IntersectPlane(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	if !ok || !approxEqual(d, 10, epsilon) {
		t.Fatalf("IntersectPlane = (%v, %v), want (10, true)", d, ok)
	}
	p := r.At(d)
	if !p.ApproxEqual(mgl64.Vec3{}) {
		t.Errorf("At(%v) = %v, want origin", d, p)
	}
}

func TestRayIntersectPlaneMiss(t *testing.T) {
	up := Ray{Origin: mgl64.Vec3{0, 10, 0}, Direction: mgl64.Vec3{0, 1, 0}}
	if _, ok := up.IntersectPlane(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}); ok {
		t.Error("plane behind the ray should not intersect")
	}
	parallel := Ray{Origin: mgl64.Vec3{0, 10, 0}, Direction: mgl64.Vec3{1, 0, 0}}
	if _, ok := parallel.IntersectPlane(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}); ok {
		t.Error("parallel ray should not intersect")
	}
}
