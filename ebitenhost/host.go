// Package ebitenhost feeds an Ebitengine game's screen and cursor to a
// cursor.Tracker.
//
//	func (g *Game) Update() error {
//		g.tracker.Update(g.host)
//		...
//	}
//
//	func (g *Game) Layout(w, h int) (int, int) {
//		return g.host.Layout(w, h)
//	}
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/cursor"
)

// Config holds the optional settings for New. The zero value is usable.
type Config struct {
	// Window is the id reported for the game screen. Zero means 1.
	Window cursor.WindowID
	// ScaleFactor is the number of physical pixels per screen pixel, used to
	// interpret camera viewports. Zero means 1.
	ScaleFactor float64
}

// syntheticPointerEvent is a queued cursor position that replaces the real
// cursor for one frame.
type syntheticPointerEvent struct {
	x, y  float64
	leave bool
}

// Host is a cursor.Host for a single Ebitengine screen.
type Host struct {
	id     cursor.WindowID
	scale  float64
	width  float64
	height float64

	cameras []cursor.CameraSource

	injectQueue []syntheticPointerEvent

	// pointer reads the real cursor. Replaced in tests.
	pointer func() (x, y float64, ok bool)
	touches []ebiten.TouchID
}

// New creates a host for the game screen.
func New(cfg Config) *Host {
	if cfg.Window == 0 {
		cfg.Window = 1
	}
	h := &Host{id: cfg.Window, scale: cfg.ScaleFactor}
	h.pointer = h.readPointer
	return h
}

// ID returns the window id reported for the screen.
func (h *Host) ID() cursor.WindowID {
	return h.id
}

// Layout records the screen size and returns it unchanged. Call it from the
// game's Layout method.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.SetScreenSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// SetScreenSize sets the screen size for games that use a fixed layout.
func (h *Host) SetScreenSize(w, hgt float64) {
	h.width, h.height = w, hgt
}

// AddCamera registers a camera source. Sources that target another window
// never match.
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

// InjectCursor queues a cursor position in screen pixels. Each Snapshot
// consumes one queued event in place of the real cursor.
func (h *Host) InjectCursor(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues a frame in which the cursor is outside the screen.
func (h *Host) InjectLeave() {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{leave: true})
}

// ClearInjected drops all queued events.
func (h *Host) ClearInjected() {
	h.injectQueue = h.injectQueue[:0]
}

// Pending returns the number of queued events.
func (h *Host) Pending() int {
	return len(h.injectQueue)
}

// Snapshot implements cursor.Host.
func (h *Host) Snapshot(dst *cursor.Snapshot) {
	win := cursor.Window{
		ID:          h.id,
		Width:       h.width,
		Height:      h.height,
		ScaleFactor: h.scale,
	}

	x, y, ok := h.nextPointer()
	if ok && x >= 0 && y >= 0 && x <= h.width && y <= h.height && h.width > 0 && h.height > 0 {
		win.PointerInside = true
		win.Pointer = cursor.Vec2{X: x, Y: y}
	}
	dst.Windows = append(dst.Windows, win)

	for _, src := range h.cameras {
		dst.AddCamera(src)
	}
}

// nextPointer pops one injected event, or reads the real cursor when the
// queue is empty.
func (h *Host) nextPointer() (x, y float64, ok bool) {
	if len(h.injectQueue) == 0 {
		return h.pointer()
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]
	if evt.leave {
		return 0, 0, false
	}
	return evt.x, evt.y, true
}

// readPointer returns the first active touch, or the mouse cursor.
func (h *Host) readPointer() (x, y float64, ok bool) {
	h.touches = ebiten.AppendTouchIDs(h.touches[:0])
	if len(h.touches) > 0 {
		tx, ty := ebiten.TouchPosition(h.touches[0])
		return float64(tx), float64(ty), true
	}
	if !ebiten.IsFocused() {
		return 0, 0, false
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), true
}
