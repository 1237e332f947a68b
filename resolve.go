package cursor

// Resolution is the outcome of Resolve: the window holding the pointer and the
// camera responsible for it, if any.
type Resolution struct {
	// InWindow reports whether some window contains the pointer.
	InWindow bool
	// Window is the chosen window. Zero unless InWindow.
	Window Window
	// HasCamera reports whether an active camera covers the pointer.
	HasCamera bool
	// Camera is the chosen camera. Zero unless HasCamera.
	Camera Camera
	// Contested is the number of windows that reported the pointer inside.
	// Anything above 1 is a host anomaly.
	Contested int
}

// Resolve picks the window and camera that own the pointer this frame.
//
// The window is the one reporting the pointer inside; if several do, the
// lowest id wins. The camera is the active camera of that window whose
// viewport contains the pointer, preferring the highest Order (drawn on top)
// and then the lowest id. Enumeration order never affects the result.
func Resolve(s *Snapshot) Resolution {
	var res Resolution
	if s == nil {
		return res
	}

	for i := range s.Windows {
		w := &s.Windows[i]
		if !w.PointerInside {
			continue
		}
		res.Contested++
		if !res.InWindow || w.ID < res.Window.ID {
			res.InWindow = true
			res.Window = *w
		}
	}
	if !res.InWindow {
		return res
	}

	p := res.Window.PhysicalPointer()
	for i := range s.Cameras {
		c := &s.Cameras[i]
		if c.Window != res.Window.ID || !c.Active || !c.Covers(p) {
			continue
		}
		if !res.HasCamera || above(c, &res.Camera) {
			res.HasCamera = true
			res.Camera = *c
		}
	}
	return res
}

// above reports whether a is drawn on top of b for resolution purposes.
func above(a, b *Camera) bool {
	if a.Order != b.Order {
		return a.Order > b.Order
	}
	return a.ID < b.ID
}
