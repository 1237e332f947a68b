//go:build !nocursor3d

package cursor

import "github.com/go-gl/mathgl/mgl64"

// Enabled3D reports whether 3D cursor rays are compiled in.
const Enabled3D = true

type world3D struct {
	// Ray starts on the camera's near plane and passes through the pointer.
	Ray Ray
	// HasRay is false when the camera's projection could not be inverted at
	// the pointer.
	HasRay bool
}

func (w *world3D) project3D(ndcToWorld mgl64.Mat4, ndc mgl64.Vec2) {
	r, ok := castRay(ndcToWorld, ndc)
	if !ok {
		return
	}
	w.Ray = r
	w.HasRay = true
}

// Ray returns the world-space ray from the camera through the pointer.
//
// ok is false if the pointer is in no window, no camera covers it, or the
// camera's projection is degenerate at the pointer.
func (i *Info) Ray() (Ray, bool) {
	if !i.ok || !i.data.HasRay {
		return Ray{}, false
	}
	return i.data.Ray, true
}
