package cursor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pan moves the camera toward a target. Each axis finishes on its own.
type pan struct {
	axes [2]*gween.Tween
}

// step advances both axes by dt and writes them to x and y. Finished axes
// are dropped; it returns true once both are.
func (p *pan) step(dt float32, x, y *float64) bool {
	dst := [2]*float64{x, y}
	for i, tw := range p.axes {
		if tw == nil {
			continue
		}
		v, finished := tw.Update(dt)
		*dst[i] = float64(v)
		if finished {
			p.axes[i] = nil
		}
	}
	return p.axes[0] == nil && p.axes[1] == nil
}

// Camera2D is an orthographic camera looking at the XY plane. It implements
// CameraSource.
type Camera2D struct {
	ID CameraID
	// Window is the window this camera renders into.
	Window WindowID

	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = one world unit per logical pixel).
	Zoom float64
	// Rotation is the camera rotation in radians, counter-clockwise in a
	// Y-up world (clockwise on screen when YDown is set).
	Rotation float64
	// Viewport is the region of the window this camera renders into, in
	// physical pixels. The zero Rect covers the whole window.
	Viewport Rect
	// YDown makes world Y grow downward, like screen space.
	YDown bool
	// Near and Far bound the depth range of the projection.
	Near, Far float64

	// Order is the render order; higher draws on top.
	Order int
	// Active cameras take part in cursor resolution.
	Active bool

	// Bounds, when BoundsEnabled is set, is the world rectangle the visible
	// area is kept inside.
	BoundsEnabled bool
	Bounds        Rect

	pan *pan
}

// NewCamera2D creates an active camera covering the whole of window.
func NewCamera2D(id CameraID, window WindowID) *Camera2D {
	return &Camera2D{
		ID:     id,
		Window: window,
		Zoom:   1.0,
		Near:   -1000,
		Far:    1000,
		Active: true,
	}
}

// ScrollTo pans the camera to (x, y) over duration seconds, advanced by
// Update. A new call replaces any pan in progress.
func (c *Camera2D) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.pan = &pan{axes: [2]*gween.Tween{
		gween.New(float32(c.X), float32(x), duration, easeFn),
		gween.New(float32(c.Y), float32(y), duration, easeFn),
	}}
}

// ScrollToTile pans to the center of cell (col, row) of a grid of w by h
// cells anchored at the world origin.
func (c *Camera2D) ScrollToTile(col, row int, w, h float64, duration float32, easeFn ease.TweenFunc) {
	c.ScrollTo((float64(col)+0.5)*w, (float64(row)+0.5)*h, duration, easeFn)
}

// Scrolling reports whether a pan is in progress.
func (c *Camera2D) Scrolling() bool {
	return c.pan != nil
}

// SetBounds keeps the visible area inside bounds from the next Update on.
func (c *Camera2D) SetBounds(bounds Rect) {
	c.Bounds, c.BoundsEnabled = bounds, true
}

// ClearBounds lets the camera move freely.
func (c *Camera2D) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the area visible
// in win stays within Bounds. No-op if BoundsEnabled is false.
func (c *Camera2D) ClampToBounds(win Window) {
	if c.BoundsEnabled {
		c.clampToBounds(win)
	}
}

// Update advances scrolling and bounds clamping by dt seconds. win is the
// window the camera renders into.
func (c *Camera2D) Update(win Window, dt float32) {
	if c.pan != nil && c.pan.step(dt, &c.X, &c.Y) {
		c.pan = nil
	}

	if c.BoundsEnabled {
		c.clampToBounds(win)
	}
}

func (c *Camera2D) clampToBounds(win Window) {
	cam := c.CameraState(win)
	vp := cam.LogicalViewport(win)
	c.X = clampAxis(c.X, c.Bounds.X, c.Bounds.Width, vp.Width/(2*c.Zoom))
	c.Y = clampAxis(c.Y, c.Bounds.Y, c.Bounds.Height, vp.Height/(2*c.Zoom))
}

// clampAxis keeps [pos-half, pos+half] inside [lo, lo+size]. A span wider
// than size is centered on it.
func clampAxis(pos, lo, size, half float64) float64 {
	if 2*half >= size {
		return lo + size/2
	}
	return math.Min(math.Max(pos, lo+half), lo+size-half)
}

// TargetWindow implements CameraSource.
func (c *Camera2D) TargetWindow() WindowID {
	return c.Window
}

// CameraState implements CameraSource.
//
//	Transform  = Translate(X, Y, 0) * RotateZ(Rotation)
//	Projection = Ortho(±w/2zoom, ±h/2zoom, Near, Far), top and bottom
//	             swapped when YDown
//
// where w, h is the logical viewport size.
func (c *Camera2D) CameraState(win Window) Camera {
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
	halfW := vp.Width / (2 * c.Zoom)
	halfH := vp.Height / (2 * c.Zoom)

	cam.Transform = mgl64.Translate3D(c.X, c.Y, 0).Mul4(mgl64.HomogRotate3DZ(c.Rotation))
	if c.YDown {
		cam.Projection = mgl64.Ortho(-halfW, halfW, halfH, -halfH, c.Near, c.Far)
	} else {
		cam.Projection = mgl64.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
	}
	return cam
}

// ScreenToWorld converts a logical window position in win to world
// coordinates. ok is false if the camera is degenerate.
func (c *Camera2D) ScreenToWorld(win Window, sx, sy float64) (Vec2, bool) {
	cam := c.CameraState(win)
	ndc, ok := pointerNDC(&win, &cam, Vec2{X: sx, Y: sy})
	if !ok {
		return Vec2{}, false
	}
	m, ok := ndcToWorld(&cam)
	if !ok {
		return Vec2{}, false
	}
	p, ok := nearPoint(m, ndc)
	if !ok {
		return Vec2{}, false
	}
	return Vec2{X: p[0], Y: p[1]}, true
}

// WorldToScreen converts world coordinates to a logical window position in
// win. ok is false if the camera is degenerate.
func (c *Camera2D) WorldToScreen(win Window, wx, wy float64) (Vec2, bool) {
	cam := c.CameraState(win)
	vp := cam.LogicalViewport(win)
	if vp.Empty() || !invertible(cam.Transform) {
		return Vec2{}, false
	}
	clip := cam.Projection.Mul4(cam.Transform.Inv()).Mul4x1(mgl64.Vec4{wx, wy, 0, 1})
	if math.Abs(clip[3]) < wEpsilon {
		return Vec2{}, false
	}
	nx, ny := clip[0]/clip[3], clip[1]/clip[3]
	s := Vec2{
		X: vp.X + (nx+1)/2*vp.Width,
		Y: vp.Y + (1-ny)/2*vp.Height,
	}
	if !finite(s.X, s.Y) {
		return Vec2{}, false
	}
	return s, true
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera2D) VisibleBounds(win Window) (Rect, bool) {
	cam := c.CameraState(win)
	vp := cam.LogicalViewport(win)

	vx := vp.X
	vy := vp.Y
	vr := vx + vp.Width
	vb := vy + vp.Height

	// Transform the four viewport corners to world space.
	corners := [4]Vec2{{vx, vy}, {vr, vy}, {vr, vb}, {vx, vb}}
	var pts [4]Vec2
	for i, p := range corners {
		w, ok := c.ScreenToWorld(win, p.X, p.Y)
		if !ok {
			return Rect{}, false
		}
		pts[i] = w
	}

	minX := math.Min(math.Min(pts[0].X, pts[1].X), math.Min(pts[2].X, pts[3].X))
	minY := math.Min(math.Min(pts[0].Y, pts[1].Y), math.Min(pts[2].Y, pts[3].Y))
	maxX := math.Max(math.Max(pts[0].X, pts[1].X), math.Max(pts[2].X, pts[3].X))
	maxY := math.Max(math.Max(pts[0].Y, pts[1].Y), math.Max(pts[2].Y, pts[3].Y))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
