// Package glfwhost feeds GLFW windows to a cursor.Tracker.
//
// The host installs cursor enter and cursor position callbacks on each
// registered window and chains to any callbacks already set. Call
// glfw.PollEvents before Tracker.Update each frame. All methods must be
// called from the main thread, like the rest of GLFW.
package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/phanxgames/cursor"
)

// sizer is the part of *glfw.Window the snapshot reads.
type sizer interface {
	GetSize() (width, height int)
	GetFramebufferSize() (width, height int)
}

// windowState is the pointer state of one window as reported by its
// callbacks.
type windowState struct {
	id      cursor.WindowID
	win     sizer
	hovered bool
	x, y    float64

	glfwWin   *glfw.Window
	prevEnter glfw.CursorEnterCallback
	prevPos   glfw.CursorPosCallback
}

func (s *windowState) enter(entered bool) {
	s.hovered = entered
}

func (s *windowState) move(x, y float64) {
	s.x, s.y = x, y
}

// snapshot returns the window as the tracker sees it. A pointer reported
// outside the client area (GLFW keeps reporting while a button is held) is
// treated as outside.
func (s *windowState) snapshot() cursor.Window {
	w, h := s.win.GetSize()
	win := cursor.Window{
		ID:          s.id,
		Width:       float64(w),
		Height:      float64(h),
		ScaleFactor: framebufferScale(s.win, w),
	}
	if s.hovered && s.x >= 0 && s.y >= 0 && s.x <= win.Width && s.y <= win.Height {
		win.PointerInside = true
		win.Pointer = cursor.Vec2{X: s.x, Y: s.y}
	}
	return win
}

// framebufferScale returns framebuffer pixels per window coordinate. This is
// not the content scale: on X11 and Windows the window size is already in
// pixels while the content scale still reports the monitor DPI ratio.
func framebufferScale(win sizer, width int) float64 {
	fw, _ := win.GetFramebufferSize()
	if width <= 0 || fw <= 0 {
		return 1
	}
	return float64(fw) / float64(width)
}

// Host is a cursor.Host over any number of GLFW windows.
type Host struct {
	windows []*windowState
	cameras []cursor.CameraSource
	nextID  cursor.WindowID
}

// New creates a host with no windows.
func New() *Host {
	return &Host{nextID: 1}
}

// AddWindow registers w and returns the id it is reported under. Ids are
// assigned in registration order starting at 1.
func (h *Host) AddWindow(w *glfw.Window) cursor.WindowID {
	st := h.add(w, w.GetAttrib(glfw.Hovered) == glfw.True)
	st.glfwWin = w
	st.move(w.GetCursorPos())

	st.prevEnter = w.SetCursorEnterCallback(func(win *glfw.Window, entered bool) {
		st.enter(entered)
		if st.prevEnter != nil {
			st.prevEnter(win, entered)
		}
	})
	st.prevPos = w.SetCursorPosCallback(func(win *glfw.Window, x, y float64) {
		st.move(x, y)
		if st.prevPos != nil {
			st.prevPos(win, x, y)
		}
	})
	return st.id
}

func (h *Host) add(w sizer, hovered bool) *windowState {
	st := &windowState{id: h.nextID, win: w, hovered: hovered}
	h.nextID++
	h.windows = append(h.windows, st)
	return st
}

// RemoveWindow unregisters the window and restores the callbacks it had
// before AddWindow. Call it before destroying the window.
func (h *Host) RemoveWindow(id cursor.WindowID) {
	for i, st := range h.windows {
		if st.id != id {
			continue
		}
		if st.glfwWin != nil {
			st.glfwWin.SetCursorEnterCallback(st.prevEnter)
			st.glfwWin.SetCursorPosCallback(st.prevPos)
		}
		h.windows = append(h.windows[:i], h.windows[i+1:]...)
		return
	}
}

// AddCamera registers a camera source.
func (h *Host) AddCamera(src cursor.CameraSource) {
	h.cameras = append(h.cameras, src)
}

// RemoveCamera unregisters a camera source.
func (h *Host) RemoveCamera(src cursor.CameraSource) {
	for i, c := range h.cameras {
		if c == src {
			h.cameras = append(h.cameras[:i], h.cameras[i+1:]...)
			return
		}
	}
}

// Snapshot implements cursor.Host.
func (h *Host) Snapshot(dst *cursor.Snapshot) {
	for _, st := range h.windows {
		dst.Windows = append(dst.Windows, st.snapshot())
	}
	for _, src := range h.cameras {
		dst.AddCamera(src)
	}
}
