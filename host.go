package cursor

// StaticHost is an in-memory Host. It is useful for tests, scripted input and
// tools that feed window state from their own event source.
type StaticHost struct {
	windows []Window
	cameras []CameraSource
}

// NewStaticHost creates an empty host.
func NewStaticHost() *StaticHost {
	return &StaticHost{}
}

// SetWindow adds w, or replaces the window with the same ID.
func (h *StaticHost) SetWindow(w Window) {
	for i := range h.windows {
		if h.windows[i].ID == w.ID {
			h.windows[i] = w
			return
		}
	}
	h.windows = append(h.windows, w)
}

// RemoveWindow removes the window with the given id. Cameras targeting it are
// kept and simply never match.
func (h *StaticHost) RemoveWindow(id WindowID) {
	for i := range h.windows {
		if h.windows[i].ID == id {
			h.windows = append(h.windows[:i], h.windows[i+1:]...)
			return
		}
	}
}

// Windows returns the host's windows. The returned slice MUST NOT be mutated.
func (h *StaticHost) Windows() []Window {
	return h.windows
}

// MovePointer places the pointer at (x, y) in window id and marks every other
// window as not containing it. Returns false if the window does not exist.
func (h *StaticHost) MovePointer(id WindowID, x, y float64) bool {
	found := false
	for i := range h.windows {
		w := &h.windows[i]
		if w.ID == id {
			w.PointerInside = true
			w.Pointer = Vec2{X: x, Y: y}
			found = true
		} else {
			w.PointerInside = false
		}
	}
	return found
}

// LeavePointer marks every window as not containing the pointer.
func (h *StaticHost) LeavePointer() {
	for i := range h.windows {
		h.windows[i].PointerInside = false
	}
}

// AddCamera registers a camera source.
func (h *StaticHost) AddCamera(src CameraSource) {
	h.cameras = append(h.cameras, src)
}

// RemoveCamera unregisters a camera source previously passed to AddCamera.
func (h *StaticHost) RemoveCamera(src CameraSource) {
	for i, c := range h.cameras {
		if c == src {
			h.cameras = append(h.cameras[:i], h.cameras[i+1:]...)
			return
		}
	}
}

// Snapshot implements Host.
func (h *StaticHost) Snapshot(dst *Snapshot) {
	dst.Windows = append(dst.Windows, h.windows...)
	for _, src := range h.cameras {
		dst.AddCamera(src)
	}
}
