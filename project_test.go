package cursor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// centeredOrtho is an 800x600 camera centered on the world origin with one
// world unit per pixel and Y up.
func centeredOrtho(id CameraID) Camera {
	return Camera{
		ID:         id,
		Window:     1,
		Active:     true,
		Viewport:   rect(0, 0, 800, 600),
		Transform:  mgl64.Ident4(),
		Projection: mgl64.Ortho(-400, 400, -300, 300, -1000, 1000),
	}
}

func TestProjectNoWindow(t *testing.T) {
	d, ok := Project(Resolution{})
	if ok || d != (Data{}) {
		t.Errorf("Project(empty) = (%+v, %v), want zero", d, ok)
	}
}

func TestProjectWindowOnly(t *testing.T) {
	res := Resolution{InWindow: true, Window: Window{ID: 3, Pointer: Vec2{X: 4, Y: 5}}}
	d, ok := Project(res)
	if !ok {
		t.Fatal("expected ok")
	}
	if d.Window != 3 || d.WindowPosition != (Vec2{X: 4, Y: 5}) {
		t.Errorf("data = %+v", d)
	}
	if d.HasCamera {
		t.Error("HasCamera should be false without a camera")
	}
}

func TestProjectDegenerateKeepsCamera(t *testing.T) {
	tests := []struct {
		name string
		cam  Camera
	}{
		{"zero projection", Camera{ID: 2, Window: 1, Active: true, Transform: mgl64.Ident4()}},
		{"zero transform", Camera{ID: 2, Window: 1, Active: true, Projection: mgl64.Ident4()}},
		{"empty viewport", Camera{ID: 2, Window: 1, Active: true, Viewport: rect(0, 0, 0, 0),
			Transform: mgl64.Ident4(), Projection: mgl64.Ident4()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolution{
				InWindow:  true,
				Window:    Window{ID: 1, Width: 800, Height: 600, ScaleFactor: 1, PointerInside: true},
				HasCamera: true,
				Camera:    tt.cam,
			}
			d, ok := Project(res)
			if !ok || !d.HasCamera || d.Camera != 2 {
				t.Fatalf("Project = (%+v, %v), want window and camera 2", d, ok)
			}
			if _, ok := pointerNDC(&res.Window, &res.Camera, res.Window.Pointer); ok {
				if _, ok := ndcToWorld(&res.Camera); ok {
					t.Error("degenerate camera should not produce an ndc-to-world matrix")
				}
			}
		})
	}
}

func TestPointerNDCCorners(t *testing.T) {
	win := Window{Width: 800, Height: 600, ScaleFactor: 1}
	cam := Camera{Viewport: rect(0, 0, 800, 600)}
	tests := []struct {
		p    Vec2
		want mgl64.Vec2
	}{
		{Vec2{0, 0}, mgl64.Vec2{-1, 1}},
		{Vec2{800, 600}, mgl64.Vec2{1, -1}},
		{Vec2{400, 300}, mgl64.Vec2{0, 0}},
	}
	for _, tt := range tests {
		got, ok := pointerNDC(&win, &cam, tt.p)
		if !ok || !got.ApproxEqual(tt.want) {
			t.Errorf("pointerNDC(%v) = (%v, %v), want %v", tt.p, got, ok, tt.want)
		}
	}
}

func TestPointerNDCOffsetViewport(t *testing.T) {
	// Physical viewport (800,0)-(1600,1200) at scale 2 is logical (400,0)-(800,600).
	win := Window{Width: 800, Height: 600, ScaleFactor: 2}
	cam := Camera{Viewport: rect(800, 0, 800, 1200)}
	got, ok := pointerNDC(&win, &cam, Vec2{X: 600, Y: 300})
	if !ok || !got.ApproxEqual(mgl64.Vec2{0, 0}) {
		t.Errorf("pointerNDC = (%v, %v), want center", got, ok)
	}
}

func TestProjectIdempotent(t *testing.T) {
	h := oneWindow(centeredOrtho(1))
	h.MovePointer(1, 33, 44)
	s := snapshotOf(h)
	a, aok := Project(Resolve(s))
	b, bok := Project(Resolve(s))
	if a != b || aok != bok {
		t.Errorf("Project not idempotent: %+v vs %+v", a, b)
	}
}

func TestInvertible(t *testing.T) {
	nan := mgl64.Ident4()
	nan[5] = math.NaN()
	inf := mgl64.Ident4()
	inf[0] = math.Inf(1)

	tests := []struct {
		name string
		m    mgl64.Mat4
		want bool
	}{
		{"identity", mgl64.Ident4(), true},
		{"wide ortho", mgl64.Ortho(-1e4, 1e4, -1e4, 1e4, -1e4, 1e4), true},
		{"zero", mgl64.Mat4{}, false},
		{"flat scale", mgl64.Scale3D(1, 0, 1), false},
		{"nan", nan, false},
		{"inf", inf, false},
	}
	for _, tt := range tests {
		if got := invertible(tt.m); got != tt.want {
			t.Errorf("%s: invertible = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestProjectWideOrthoIsNotDegenerate(t *testing.T) {
	cam := centeredOrtho(1)
	cam.Projection = mgl64.Ortho(-1e4, 1e4, -1e4, 1e4, -1e4, 1e4)
	h := oneWindow(cam)
	h.MovePointer(1, 400, 300)

	if _, ok := ndcToWorld(&cam); !ok {
		t.Fatal("wide ortho should be invertible")
	}
	d, ok := Project(Resolve(snapshotOf(h)))
	if !ok || !d.HasCamera {
		t.Fatalf("Project = (%+v, %v)", d, ok)
	}
}
