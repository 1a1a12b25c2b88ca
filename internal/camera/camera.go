package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fixed is a stationary perspective camera looking at a target.
type Fixed struct {
	Position rl.Vector3
	Target   rl.Vector3
	Up       rl.Vector3
	Fovy     float32
}

func NewFixed(pos, target rl.Vector3) *Fixed {
	return &Fixed{
		Position: pos,
		Target:   target,
		Up:       rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:     45,
	}
}

// Forward returns the unit view direction.
func (c *Fixed) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position))
}

func (c *Fixed) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
