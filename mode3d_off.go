//go:build nocursor3d

package cursor

import "github.com/go-gl/mathgl/mgl64"

// Enabled3D reports whether 3D cursor rays are compiled in.
const Enabled3D = false

type world3D struct{}

func (*world3D) project3D(mgl64.Mat4, mgl64.Vec2) {}
