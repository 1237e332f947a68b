package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/cursor"
)

// Host is a cursor.Host that reads windows and cameras from a world.
type Host struct {
	world donburi.World

	windows   *donburi.Query
	cameras   *donburi.Query
	cameras2D *donburi.Query
	cameras3D *donburi.Query
}

// NewHost creates a host over world.
func NewHost(world donburi.World) *Host {
	return &Host{
		world:     world,
		windows:   donburi.NewQuery(filter.Contains(WindowComponent)),
		cameras:   donburi.NewQuery(filter.Contains(CameraComponent)),
		cameras2D: donburi.NewQuery(filter.Contains(Camera2DComponent)),
		cameras3D: donburi.NewQuery(filter.Contains(Camera3DComponent)),
	}
}

// Snapshot implements cursor.Host.
func (h *Host) Snapshot(dst *cursor.Snapshot) {
	h.windows.Each(h.world, func(e *donburi.Entry) {
		w := WindowComponent.Get(e)
		dst.Windows = append(dst.Windows, cursor.Window{
			ID:            WindowID(e.Entity()),
			Width:         w.Width,
			Height:        w.Height,
			ScaleFactor:   w.ScaleFactor,
			PointerInside: w.PointerInside,
			Pointer:       w.Pointer,
		})
	})

	h.cameras.Each(h.world, func(e *donburi.Entry) {
		c := CameraComponent.Get(e)
		cam := cursor.Camera{
			ID:         CameraID(e.Entity()),
			Window:     WindowID(c.Window),
			Order:      c.Order,
			Active:     c.Active,
			Transform:  c.Transform,
			Projection: c.Projection,
		}
		if c.Viewport != nil {
			vp := *c.Viewport
			cam.Viewport = &vp
		}
		dst.AddCamera(cam)
	})

	h.cameras2D.Each(h.world, func(e *donburi.Entry) {
		c := Camera2DComponent.Get(e)
		c.ID = CameraID(e.Entity())
		dst.AddCamera(c)
	})

	h.cameras3D.Each(h.world, func(e *donburi.Entry) {
		c := Camera3DComponent.Get(e)
		c.ID = CameraID(e.Entity())
		dst.AddCamera(c)
	})
}
