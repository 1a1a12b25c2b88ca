package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (g *Game) DrawUI() {
	rl.DrawText("Drag on the left half to turn the left-handed gizmo, right half for the right-handed one", 10, 10, 20, rl.DarkGray)
	rl.DrawText("R or Reset to restore, F1 for debug", 10, 35, 20, rl.DarkGray)

	if gui.Button(rl.Rectangle{X: 10, Y: 62, Width: 90, Height: 28}, "Reset") {
		g.resetRequested = true
	}

	screenW := int32(rl.GetScreenWidth())
	rl.DrawFPS(screenW-100, 10)

	if !g.DebugMode {
		return
	}

	y := int32(100)
	for _, gz := range g.Store.Gizmos() {
		q := gz.Rotation
		line := fmt.Sprintf("%-5s (%.4f, %.4f, %.4f, %.4f) |q| = %.7f",
			gz.Category, q.X, q.Y, q.Z, q.W, rl.QuaternionLength(q))
		rl.DrawText(line, 10, y, 16, rl.DarkBlue)
		y += 20
	}
	rl.DrawText(fmt.Sprintf("Drag samples: %d", g.dragSamples), 10, y, 16, rl.DarkGreen)
	rl.DrawText(fmt.Sprintf("Renormalizations: %d", g.corrections), 10, y+20, 16, rl.DarkGreen)
	if g.Telemetry != nil {
		rl.DrawText(fmt.Sprintf("Telemetry pending: %d", g.Telemetry.Pending()), 10, y+40, 16, rl.DarkGreen)
	}
}
