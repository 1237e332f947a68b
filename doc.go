// Package cursor tracks, every frame, which window and which camera the
// pointer is over, and projects the pointer into world space.
//
// A host (a window system, a game loop, an ECS world) describes its windows
// and cameras through the [Host] interface. Once per frame, after the host
// has processed its window events, call [Tracker.Update]. Application code
// then reads the result through [Info]:
//
//	tracker := cursor.NewTracker(cursor.Config{})
//	host := cursor.NewStaticHost()
//	host.SetWindow(cursor.Window{ID: 1, Width: 800, Height: 600})
//	host.AddCamera(cursor.NewCamera2D(1, 1))
//
//	// each frame
//	host.MovePointer(1, 120, 80)
//	tracker.Update(host)
//	if p, ok := tracker.Info().Position(); ok {
//		fmt.Println("world", p)
//	}
//
// # Resolution
//
// The window is the one reporting the pointer inside (lowest id if the host
// reports several). The camera is the active camera rendering into that
// window whose viewport contains the pointer; the highest render order wins,
// then the lowest id.
//
// # Projection modes
//
// 2D world positions ([Info.Position], [Data.Position]) and 3D rays
// ([Info.Ray], [Data.Ray]) are both compiled in by default. Build with
// -tags nocursor2d or -tags nocursor3d to remove them; code that uses a
// removed mode fails to compile.
//
// # Hosts
//
// [StaticHost] is an in-memory host. Adapters for Ebitengine, GLFW and tcell
// live in the ebitenhost, glfwhost and termhost packages, and a Donburi
// adapter lives in the separate cursor/ecs module.
package cursor
