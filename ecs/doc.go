// Package ecs runs cursor tracking inside a [Donburi] world.
//
// Windows and cameras are entities. A window entity carries
// [WindowComponent]; a camera entity carries one of [CameraComponent],
// [Camera2DComponent] or [Camera3DComponent]. Entity ids are used as window
// and camera ids, so a camera targets a window by storing its entity.
//
// Usage:
//
//	sys := ecs.NewSystem(world, cursor.Config{})
//	ecs.CursorChangedEvent.Subscribe(world, onCursorChanged)
//
//	// each frame, after updating window components from the window system
//	sys.Update()
//	events.ProcessAllEvents(world)
//
// The current state is also stored on a singleton entity carrying
// [CursorComponent].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
