package cursor

import "testing"

func TestStaticHostSetWindowReplaces(t *testing.T) {
	h := NewStaticHost()
	h.SetWindow(Window{ID: 1, Width: 100})
	h.SetWindow(Window{ID: 1, Width: 200})
	if len(h.Windows()) != 1 || h.Windows()[0].Width != 200 {
		t.Errorf("windows = %+v, want one window of width 200", h.Windows())
	}
}

func TestStaticHostMovePointerIsExclusive(t *testing.T) {
	h := NewStaticHost()
	h.SetWindow(Window{ID: 1})
	h.SetWindow(Window{ID: 2})

	h.MovePointer(1, 10, 20)
	h.MovePointer(2, 30, 40)

	w := h.Windows()
	if w[0].PointerInside {
		t.Error("window 1 should have lost the pointer")
	}
	if !w[1].PointerInside || w[1].Pointer != (Vec2{X: 30, Y: 40}) {
		t.Errorf("window 2 = %+v, want pointer at (30,40)", w[1])
	}
	if h.MovePointer(7, 0, 0) {
		t.Error("MovePointer on unknown window should return false")
	}
}

func TestStaticHostLeavePointer(t *testing.T) {
	h := oneWindow()
	h.MovePointer(1, 1, 1)
	h.LeavePointer()
	if h.Windows()[0].PointerInside {
		t.Error("LeavePointer should clear PointerInside")
	}
}

func TestStaticHostRemove(t *testing.T) {
	cam := NewCamera2D(5, 1)
	h := oneWindow(cam)
	h.RemoveCamera(cam)
	if s := snapshotOf(h); len(s.Cameras) != 0 {
		t.Errorf("cameras = %d after RemoveCamera, want 0", len(s.Cameras))
	}
	h.RemoveWindow(1)
	if len(h.Windows()) != 0 {
		t.Error("RemoveWindow should drop the window")
	}
}

func TestStaticHostRemoveValueCamera(t *testing.T) {
	c := Camera{ID: 3, Window: 1, Active: true}
	h := oneWindow(c)
	h.RemoveCamera(c)
	if s := snapshotOf(h); len(s.Cameras) != 0 {
		t.Errorf("cameras = %d after RemoveCamera, want 0", len(s.Cameras))
	}
}
