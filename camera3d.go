package cursor

import "github.com/go-gl/mathgl/mgl64"

// Camera3D is a perspective camera. It implements CameraSource.
type Camera3D struct {
	ID CameraID
	// Window is the window this camera renders into.
	Window WindowID

	// Eye is the camera position in world space.
	Eye mgl64.Vec3
	// Target is the world point the camera looks at.
	Target mgl64.Vec3
	// Up is the world up direction.
	Up mgl64.Vec3
	// FovY is the vertical field of view in radians.
	FovY float64
	// Near and Far are the clip plane distances. Both must be positive.
	Near, Far float64
	// Viewport is the region of the window this camera renders into, in
	// physical pixels. The zero Rect covers the whole window.
	Viewport Rect

	Order  int
	Active bool
}

// NewCamera3D creates an active camera at the origin looking down -Z.
func NewCamera3D(id CameraID, window WindowID) *Camera3D {
	return &Camera3D{
		ID:     id,
		Window: window,
		Target: mgl64.Vec3{0, 0, -1},
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   mgl64.DegToRad(45),
		Near:   0.1,
		Far:    1000,
		Active: true,
	}
}

// LookAt places the camera at eye looking at target.
func (c *Camera3D) LookAt(eye, target mgl64.Vec3) {
	c.Eye = eye
	c.Target = target
}

// TargetWindow implements CameraSource.
func (c *Camera3D) TargetWindow() WindowID {
	return c.Window
}

// CameraState implements CameraSource. The aspect ratio follows the logical
// viewport, so an empty viewport produces a singular projection.
func (c *Camera3D) CameraState(win Window) Camera {
	cam := Camera{
		ID:     c.ID,
		Window: c.Window,
		Order:  c.Order,
		Active: c.Active,
	}
	if c.Viewport != (Rect{}) {
		vp := c.Viewport
		cam.Viewport = &vp
	}

	vp := cam.LogicalViewport(win)
	var aspect float64
	if vp.Height > 0 {
		aspect = vp.Width / vp.Height
	}

	// A view matrix from coincident eye and target is NaN; leave Transform
	// zero so the projection is reported as degenerate.
	if c.Eye != c.Target {
		cam.Transform = mgl64.LookAtV(c.Eye, c.Target, c.Up).Inv()
	}
	cam.Projection = mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
	return cam
}
