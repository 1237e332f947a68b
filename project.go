package cursor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// wEpsilon bounds the homogeneous w below which an unprojected point is
// treated as being at infinity.
const wEpsilon = 1e-12

// Data is the resolved cursor state for one frame.
//
// Besides the fields below, Data has these fields promoted from the
// embedded mode structs:
//
//	Position    Vec2 // pointer on the camera's near plane, in world space
//	HasPosition bool // false when the projection failed this frame
//	Ray         Ray  // world-space ray from the near plane through the pointer
//	HasRay      bool // false when the projection failed this frame
//
// Position and HasPosition exist only when 2D mode is compiled in (build tag
// nocursor2d removes them); Ray and HasRay exist only when 3D mode is
// compiled in (build tag nocursor3d removes them).
type Data struct {
	world2D
	world3D

	// Window is the window that contains the pointer.
	Window WindowID
	// WindowPosition is the pointer position in the window, in logical
	// pixels, origin top-left, Y down.
	WindowPosition Vec2
	// Camera is the camera used for the world-space projection. Only
	// meaningful when HasCamera is true.
	Camera    CameraID
	HasCamera bool
}

// Project converts a resolution into cursor data. ok is false when the
// pointer is in no window, in which case Data is the zero value.
//
// Projection failures (degenerate viewport, non-invertible matrices) leave
// the projected fields unset; the window and camera are still reported.
func Project(res Resolution) (d Data, ok bool) {
	if !res.InWindow {
		return Data{}, false
	}
	d.Window = res.Window.ID
	d.WindowPosition = res.Window.Pointer
	if !res.HasCamera {
		return d, true
	}
	d.Camera = res.Camera.ID
	d.HasCamera = true

	ndc, ok := pointerNDC(&res.Window, &res.Camera, res.Window.Pointer)
	if !ok {
		return d, true
	}
	m, ok := ndcToWorld(&res.Camera)
	if !ok {
		return d, true
	}
	d.project2D(m, ndc)
	d.project3D(m, ndc)
	return d, true
}

// pointerNDC maps a logical window position into the camera's normalized
// device coordinates. ok is false for an empty viewport.
func pointerNDC(win *Window, cam *Camera, p Vec2) (mgl64.Vec2, bool) {
	vp := cam.LogicalViewport(*win)
	if vp.Empty() || !finite(vp.X, vp.Y, vp.Width, vp.Height) {
		return mgl64.Vec2{}, false
	}
	lx := p.X - vp.X
	ly := p.Y - vp.Y
	return mgl64.Vec2{
		2*lx/vp.Width - 1,
		1 - 2*ly/vp.Height,
	}, true
}

// ndcToWorld returns Transform * Projection⁻¹. ok is false when either matrix
// is singular or not finite.
func ndcToWorld(cam *Camera) (mgl64.Mat4, bool) {
	if !invertible(cam.Projection) || !invertible(cam.Transform) {
		return mgl64.Mat4{}, false
	}
	m := cam.Transform.Mul4(cam.Projection.Inv())
	if !finite(m[:]...) {
		return mgl64.Mat4{}, false
	}
	return m, true
}

// invertible reports whether m has a finite, non-zero determinant. Wide
// orthographic projections have very small determinants, so there is no
// threshold.
func invertible(m mgl64.Mat4) bool {
	det := m.Det()
	return det != 0 && finite(det)
}

// unproject maps an NDC point through m and divides by w.
func unproject(m mgl64.Mat4, ndc mgl64.Vec3) (mgl64.Vec3, bool) {
	v := m.Mul4x1(ndc.Vec4(1))
	if math.Abs(v[3]) < wEpsilon {
		return mgl64.Vec3{}, false
	}
	p := v.Vec3().Mul(1 / v[3])
	if !finite(p[0], p[1], p[2]) {
		return mgl64.Vec3{}, false
	}
	return p, true
}

// nearPoint unprojects ndc onto the near plane.
func nearPoint(m mgl64.Mat4, ndc mgl64.Vec2) (mgl64.Vec3, bool) {
	return unproject(m, mgl64.Vec3{ndc[0], ndc[1], -1})
}

// castRay builds a ray from the near plane through the far plane at ndc.
func castRay(m mgl64.Mat4, ndc mgl64.Vec2) (Ray, bool) {
	near, ok := nearPoint(m, ndc)
	if !ok {
		return Ray{}, false
	}
	far, ok := unproject(m, mgl64.Vec3{ndc[0], ndc[1], 1})
	if !ok {
		return Ray{}, false
	}
	dir := far.Sub(near)
	l := dir.Len()
	if !(l > 0) || !finite(l) {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Mul(1 / l)}, true
}
