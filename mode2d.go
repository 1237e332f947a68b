//go:build !nocursor2d

package cursor

import "github.com/go-gl/mathgl/mgl64"

// Enabled2D reports whether 2D world positions are compiled in.
const Enabled2D = true

type world2D struct {
	// Position is the pointer position in world space, taken on the camera's
	// near plane.
	Position Vec2
	// HasPosition is false when the camera's projection could not be
	// inverted at the pointer.
	HasPosition bool
}

func (w *world2D) project2D(ndcToWorld mgl64.Mat4, ndc mgl64.Vec2) {
	p, ok := nearPoint(ndcToWorld, ndc)
	if !ok {
		return
	}
	w.Position = Vec2{X: p[0], Y: p[1]}
	w.HasPosition = true
}

// Position returns the pointer position in world space.
//
// ok is false if the pointer is in no window, no camera covers it, or the
// camera's projection is degenerate at the pointer.
func (i *Info) Position() (Vec2, bool) {
	if !i.ok || !i.data.HasPosition {
		return Vec2{}, false
	}
	return i.data.Position, true
}
