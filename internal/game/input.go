package game

import (
	"gizmoview/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// sampleFrame reads this frame's timing and mouse state from raylib.
// raylib reports one accumulated mouse delta per frame, so there is at most
// one motion sample.
func sampleFrame() FrameInput {
	var motions []rl.Vector2
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		motions = append(motions, d)
	}

	return FrameInput{
		Delta:   float64(rl.GetFrameTime()),
		Elapsed: rl.GetTime(),
		Reset:   rl.IsKeyPressed(rl.KeyR),
		Drag: gizmo.DragInput{
			Held:        rl.IsMouseButtonDown(rl.MouseLeftButton),
			Motions:     motions,
			Cursor:      cursorPosition,
			WindowWidth: float32(rl.GetScreenWidth()),
		},
	}
}

func cursorPosition() (rl.Vector2, bool) {
	if !rl.IsCursorOnScreen() {
		return rl.Vector2{}, false
	}
	return rl.GetMousePosition(), true
}
