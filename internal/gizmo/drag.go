package gizmo

import rl "github.com/gen2brain/raylib-go/raylib"

// RotSpeed converts mouse motion in pixels to radians.
const RotSpeed float32 = 0.01

var (
	worldX = rl.Vector3{X: 1, Y: 0, Z: 0}
	worldY = rl.Vector3{X: 0, Y: 1, Z: 0}
)

// DragInput is the mouse state gathered for one frame.
type DragInput struct {
	Held        bool
	Motions     []rl.Vector2
	Cursor      func() (rl.Vector2, bool)
	WindowWidth float32
}

// ApplyDrag rotates the gizmo under the cursor once per motion sample and
// returns how many samples were applied. A cursor that cannot be located
// ends the frame early; samples already applied are kept.
func ApplyDrag(s *Store, in DragInput) int {
	if !in.Held {
		return 0
	}

	applied := 0
	for _, motion := range in.Motions {
		if in.Cursor == nil {
			return applied
		}
		cursor, ok := in.Cursor()
		if !ok {
			return applied
		}

		isLeft := cursor.X < in.WindowWidth/2
		for _, g := range s.Gizmos() {
			if isLeft != (g.Category == Right) {
				g.Rotation = rl.QuaternionMultiply(g.Rotation, Increment(g.Rotation, motion))
			}
		}
		applied++
	}
	return applied
}

// Increment builds the local-frame rotation for one motion sample. The axes
// are world X and Y brought into the gizmo's own frame, so a horizontal drag
// always spins it around the screen's vertical axis.
func Increment(q rl.Quaternion, motion rl.Vector2) rl.Quaternion {
	rot := rl.Vector2Scale(motion, RotSpeed)
	inv := rl.QuaternionInvert(q)
	xAxis := rl.Vector3RotateByQuaternion(worldX, inv)
	yAxis := rl.Vector3RotateByQuaternion(worldY, inv)

	return rl.QuaternionMultiply(
		rl.QuaternionFromAxisAngle(xAxis, rot.Y),
		rl.QuaternionFromAxisAngle(yAxis, rot.X),
	)
}
