package cursor

// Info is the cursor state for the current frame. It is written only by
// Tracker.Update; every other holder reads it through the accessors below.
//
// All accessors return ok == false when the pointer is in no window.
type Info struct {
	data    Data
	ok      bool
	changed bool
	frame   uint64
}

// Get returns the full cursor data.
func (i *Info) Get() (Data, bool) {
	return i.data, i.ok
}

// InWindow reports whether the pointer is inside any window. A window is
// reported even when no active camera covers the pointer; Camera, Position
// and Ray then return ok == false while Window and WindowPosition succeed.
func (i *Info) InWindow() bool {
	return i.ok
}

// Window returns the window that contains the pointer.
func (i *Info) Window() (WindowID, bool) {
	return i.data.Window, i.ok
}

// Camera returns the camera used to project the pointer. ok is also false
// when the pointer is in a window but outside every active camera viewport.
func (i *Info) Camera() (CameraID, bool) {
	if !i.ok || !i.data.HasCamera {
		return 0, false
	}
	return i.data.Camera, true
}

// WindowPosition returns the pointer position in the window in logical pixels.
func (i *Info) WindowPosition() (Vec2, bool) {
	return i.data.WindowPosition, i.ok
}

// Changed reports whether the latest update produced a different state than
// the one before it.
func (i *Info) Changed() bool {
	return i.changed
}

// Frame returns the number of updates applied so far.
func (i *Info) Frame() uint64 {
	return i.frame
}
