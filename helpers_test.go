package cursor

import "math"

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// oneWindow returns a host with an 800x600 window 1 and the given cameras.
func oneWindow(cams ...CameraSource) *StaticHost {
	h := NewStaticHost()
	h.SetWindow(Window{ID: 1, Width: 800, Height: 600, ScaleFactor: 1})
	for _, c := range cams {
		h.AddCamera(c)
	}
	return h
}

func snapshotOf(h Host) *Snapshot {
	var s Snapshot
	BuildSnapshot(h, &s)
	return &s
}
