package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/cursor"
)

// WindowData is a window as the window system last reported it. Field
// meanings match cursor.Window.
type WindowData struct {
	Width, Height float64
	ScaleFactor   float64
	PointerInside bool
	Pointer       cursor.Vec2
}

// CameraData is a camera described by raw matrices.
type CameraData struct {
	// Window is the window entity the camera renders into.
	Window     donburi.Entity
	Viewport   *cursor.Rect
	Order      int
	Active     bool
	Transform  mgl64.Mat4
	Projection mgl64.Mat4
}

// CursorState is the value stored on the cursor singleton entity.
type CursorState struct {
	Data     cursor.Data
	InWindow bool
}

var (
	WindowComponent = donburi.NewComponentType[WindowData]()
	CameraComponent = donburi.NewComponentType[CameraData]()

	// Camera2DComponent and Camera3DComponent hold ready-made cameras. Their
	// ID field is overwritten with the entity id every frame; set Window with
	// WindowID.
	Camera2DComponent = donburi.NewComponentType[cursor.Camera2D]()
	Camera3DComponent = donburi.NewComponentType[cursor.Camera3D]()

	CursorComponent = donburi.NewComponentType[CursorState]()
)

// WindowID returns the id a window entity is reported under.
func WindowID(e donburi.Entity) cursor.WindowID {
	return cursor.WindowID(e)
}

// CameraID returns the id a camera entity is reported under.
func CameraID(e donburi.Entity) cursor.CameraID {
	return cursor.CameraID(e)
}
