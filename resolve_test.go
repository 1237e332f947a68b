package cursor

import "testing"

func rect(x, y, w, h float64) *Rect {
	return &Rect{X: x, Y: y, Width: w, Height: h}
}

func TestResolveNoWindowInside(t *testing.T) {
	h := oneWindow(Camera{ID: 1, Window: 1, Active: true})
	res := Resolve(snapshotOf(h))
	if res.InWindow || res.HasCamera {
		t.Errorf("Resolve = %+v, want empty", res)
	}
}

func TestResolveEmptySnapshot(t *testing.T) {
	if res := Resolve(&Snapshot{}); res != (Resolution{}) {
		t.Errorf("Resolve(empty) = %+v, want zero", res)
	}
	if res := Resolve(nil); res != (Resolution{}) {
		t.Errorf("Resolve(nil) = %+v, want zero", res)
	}
}

func TestResolveSingleCamera(t *testing.T) {
	h := oneWindow(Camera{ID: 7, Window: 1, Active: true, Viewport: rect(0, 0, 800, 600)})
	h.MovePointer(1, 120, 80)
	res := Resolve(snapshotOf(h))
	if !res.InWindow || res.Window.ID != 1 {
		t.Fatalf("window = %+v, want 1", res.Window)
	}
	if !res.HasCamera || res.Camera.ID != 7 {
		t.Fatalf("camera = %+v, want 7", res.Camera)
	}
	if res.Window.Pointer != (Vec2{X: 120, Y: 80}) {
		t.Errorf("pointer = %+v, want (120,80)", res.Window.Pointer)
	}
}

func TestResolveWindowWithoutCamera(t *testing.T) {
	h := oneWindow()
	h.MovePointer(1, 5, 5)
	res := Resolve(snapshotOf(h))
	if !res.InWindow || res.HasCamera {
		t.Errorf("Resolve = %+v, want window known and camera none", res)
	}
}

func TestResolveSkipsInactiveAndUncovering(t *testing.T) {
	h := oneWindow(
		Camera{ID: 1, Window: 1, Active: false, Order: 10},
		Camera{ID: 2, Window: 1, Active: true, Order: 5, Viewport: rect(400, 0, 400, 600)},
		Camera{ID: 3, Window: 2, Active: true, Order: 20},
	)
	h.MovePointer(1, 100, 100)
	res := Resolve(snapshotOf(h))
	if !res.InWindow || res.HasCamera {
		t.Errorf("Resolve = %+v, want no camera", res)
	}
}

func TestResolveHigherOrderWins(t *testing.T) {
	// Order-1 camera wins regardless of which id is lower.
	for _, ids := range [][2]CameraID{{1, 2}, {2, 1}} {
		h := oneWindow(
			Camera{ID: ids[0], Window: 1, Active: true, Order: 0},
			Camera{ID: ids[1], Window: 1, Active: true, Order: 1},
		)
		h.MovePointer(1, 300, 300)
		res := Resolve(snapshotOf(h))
		if res.Camera.ID != ids[1] {
			t.Errorf("ids %v: camera = %d, want %d", ids, res.Camera.ID, ids[1])
		}
	}
}

func TestResolveEqualOrderLowestID(t *testing.T) {
	s := &Snapshot{
		Windows: []Window{{ID: 1, Width: 800, Height: 600, ScaleFactor: 1, PointerInside: true}},
		// Unsorted on purpose; Resolve must not depend on enumeration order.
		Cameras: []Camera{
			{ID: 9, Window: 1, Active: true, Order: 3},
			{ID: 4, Window: 1, Active: true, Order: 3},
			{ID: 6, Window: 1, Active: true, Order: 3},
		},
	}
	if res := Resolve(s); res.Camera.ID != 4 {
		t.Errorf("camera = %d, want 4", res.Camera.ID)
	}
}

func TestResolveContestedWindows(t *testing.T) {
	s := &Snapshot{
		Windows: []Window{
			{ID: 5, PointerInside: true, Pointer: Vec2{X: 1, Y: 1}},
			{ID: 2, PointerInside: true, Pointer: Vec2{X: 2, Y: 2}},
			{ID: 3, PointerInside: false},
		},
	}
	res := Resolve(s)
	if res.Window.ID != 2 {
		t.Errorf("window = %d, want lowest id 2", res.Window.ID)
	}
	if res.Contested != 2 {
		t.Errorf("Contested = %d, want 2", res.Contested)
	}
}

func TestResolveUsesPhysicalPointer(t *testing.T) {
	// Logical (150, 10) is physical (300, 20) at scale 2.
	h := NewStaticHost()
	h.SetWindow(Window{ID: 1, Width: 400, Height: 300, ScaleFactor: 2})
	h.AddCamera(Camera{ID: 1, Window: 1, Active: true, Viewport: rect(0, 0, 200, 600)})
	h.AddCamera(Camera{ID: 2, Window: 1, Active: true, Viewport: rect(200, 0, 600, 600)})
	h.MovePointer(1, 150, 10)
	if res := Resolve(snapshotOf(h)); res.Camera.ID != 2 {
		t.Errorf("camera = %d, want 2", res.Camera.ID)
	}
}

func TestResolveIdempotent(t *testing.T) {
	h := oneWindow(
		Camera{ID: 1, Window: 1, Active: true, Order: 2},
		Camera{ID: 2, Window: 1, Active: true, Order: 2},
	)
	h.MovePointer(1, 10, 10)
	s := snapshotOf(h)
	a := Resolve(s)
	b := Resolve(s)
	if a.Window != b.Window || a.Camera.ID != b.Camera.ID || a.HasCamera != b.HasCamera {
		t.Errorf("Resolve not idempotent: %+v vs %+v", a, b)
	}
}
