// Package termhost treats a tcell terminal as a single cursor window
// measured in cells.
//
// Feed every event from the screen's event loop to HandleEvent, then call
// Tracker.Update. The screen must have mouse reporting enabled
// (Screen.EnableMouse) and, for leave detection, focus reporting
// (Screen.EnableFocus).
package termhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/cursor"
)

// Host is a cursor.Host for one terminal screen.
type Host struct {
	id      cursor.WindowID
	cols    int
	rows    int
	focused bool
	seen    bool
	col     int
	row     int

	cameras []cursor.CameraSource
}

// New creates a host that reports the terminal as window id. The terminal
// starts focused, since many terminals never send focus events.
func New(id cursor.WindowID) *Host {
	return &Host{id: id, focused: true}
}

// ID returns the window id reported for the terminal.
func (h *Host) ID() cursor.WindowID {
	return h.id
}

// Size returns the terminal size in cells.
func (h *Host) Size() (cols, rows int) {
	return h.cols, h.rows
}

// HandleEvent updates the host from ev. It returns true if the event was
// one the host uses.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		h.col, h.row = ev.Position()
		h.seen = true
		return true
	case *tcell.EventResize:
		h.cols, h.rows = ev.Size()
		return true
	case *tcell.EventFocus:
		h.focused = ev.Focused
		return true
	}
	return false
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

// Snapshot implements cursor.Host. The pointer is reported at the center of
// the hovered cell.
func (h *Host) Snapshot(dst *cursor.Snapshot) {
	win := cursor.Window{
		ID:          h.id,
		Width:       float64(h.cols),
		Height:      float64(h.rows),
		ScaleFactor: 1,
	}
	if h.seen && h.focused && h.col >= 0 && h.row >= 0 && h.col < h.cols && h.row < h.rows {
		win.PointerInside = true
		win.Pointer = cursor.Vec2{X: float64(h.col) + 0.5, Y: float64(h.row) + 0.5}
	}
	dst.Windows = append(dst.Windows, win)

	for _, src := range h.cameras {
		dst.AddCamera(src)
	}
}

// Cell converts a window position back to the cell that contains it.
func Cell(p cursor.Vec2) (col, row int) {
	return int(p.X), int(p.Y)
}
