package cursor

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Window is one frame's view of a host window.
type Window struct {
	ID WindowID
	// Width and Height are the client area size in logical pixels.
	Width, Height float64
	// ScaleFactor is the number of physical pixels per logical pixel.
	// Zero is treated as 1.
	ScaleFactor float64
	// PointerInside reports whether the pointer is over the client area.
	PointerInside bool
	// Pointer is the pointer position in logical pixels, origin top-left,
	// Y down. Only meaningful when PointerInside is true.
	Pointer Vec2
}

func (w Window) scale() float64 {
	if w.ScaleFactor > 0 {
		return w.ScaleFactor
	}
	return 1
}

// PhysicalPointer returns the pointer position in physical pixels.
func (w Window) PhysicalPointer() Vec2 {
	s := w.scale()
	return Vec2{X: w.Pointer.X * s, Y: w.Pointer.Y * s}
}

// Camera is one frame's view of a host camera.
type Camera struct {
	ID CameraID
	// Window is the window this camera renders into.
	Window WindowID
	// Viewport is the region of the window the camera renders into, in
	// physical pixels. nil covers the whole window.
	Viewport *Rect
	// Order is the render order. Higher values are drawn later, on top.
	Order int
	// Active cameras take part in resolution; inactive ones are skipped.
	Active bool
	// Transform maps camera space to world space.
	Transform mgl64.Mat4
	// Projection maps camera space to clip space (OpenGL NDC conventions).
	Projection mgl64.Mat4
}

// TargetWindow implements CameraSource.
func (c Camera) TargetWindow() WindowID { return c.Window }

// CameraState implements CameraSource. A Camera is its own snapshot.
func (c Camera) CameraState(Window) Camera { return c }

// Covers reports whether the viewport contains the physical pixel p.
func (c *Camera) Covers(p Vec2) bool {
	if c.Viewport == nil {
		return true
	}
	return c.Viewport.Contains(p.X, p.Y)
}

// LogicalViewport returns the viewport in logical pixels of win.
func (c *Camera) LogicalViewport(win Window) Rect {
	if c.Viewport == nil {
		return Rect{Width: win.Width, Height: win.Height}
	}
	return c.Viewport.scaled(win.scale())
}

// CameraSource produces a fresh Camera snapshot each frame.
type CameraSource interface {
	// TargetWindow returns the window the camera renders into.
	TargetWindow() WindowID
	// CameraState returns the camera as seen this frame. win is the target
	// window, or a zero Window carrying only the ID if the host has no such
	// window.
	CameraState(win Window) Camera
}

// Host is the windowing and camera environment the tracker reads from.
type Host interface {
	// Snapshot appends the current windows and cameras to dst.
	Snapshot(dst *Snapshot)
}

// Snapshot is the per-frame enumeration of windows and cameras. Buffers are
// reused across frames by BuildSnapshot.
type Snapshot struct {
	Windows []Window
	Cameras []Camera
}

// Reset empties the snapshot, keeping its buffers.
func (s *Snapshot) Reset() {
	s.Windows = s.Windows[:0]
	s.Cameras = s.Cameras[:0]
}

// Window returns the window with the given id.
func (s *Snapshot) Window(id WindowID) (Window, bool) {
	for i := range s.Windows {
		if s.Windows[i].ID == id {
			return s.Windows[i], true
		}
	}
	return Window{ID: id}, false
}

// AddCamera appends the state of src, resolving its target window against
// the windows already in the snapshot. Hosts add windows first.
func (s *Snapshot) AddCamera(src CameraSource) {
	win, _ := s.Window(src.TargetWindow())
	s.Cameras = append(s.Cameras, src.CameraState(win))
}

// BuildSnapshot fills dst from h. Windows and cameras are sorted by id so
// results never depend on host enumeration order. A nil host yields an empty
// snapshot.
func BuildSnapshot(h Host, dst *Snapshot) {
	dst.Reset()
	if h == nil {
		return
	}
	h.Snapshot(dst)

	for i := range dst.Windows {
		if !(dst.Windows[i].ScaleFactor > 0) {
			dst.Windows[i].ScaleFactor = 1
		}
	}
	slices.SortStableFunc(dst.Windows, func(a, b Window) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(dst.Cameras, func(a, b Camera) int { return cmp.Compare(a.ID, b.ID) })
}
