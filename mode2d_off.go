//go:build nocursor2d

package cursor

import "github.com/go-gl/mathgl/mgl64"

// Enabled2D reports whether 2D world positions are compiled in.
const Enabled2D = false

type world2D struct{}

func (*world2D) project2D(mgl64.Mat4, mgl64.Vec2) {}
