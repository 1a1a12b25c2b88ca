package world

import (
	"fmt"
	"math"

	"gizmoview/internal/assets"
	"gizmoview/internal/camera"
	"gizmoview/internal/components"
	"gizmoview/internal/engine"
	"gizmoview/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Gizmo geometry.
const (
	HandleLength    float32 = 5.5
	HandleThickness float32 = 0.5
	HandleOffset    float32 = 2.5
	BallOffset      float32 = 5.0
	BallRadius      float32 = 1.0
	GizmoSpacing    float32 = 6.5
)

var Background = rl.White

type World struct {
	Scene  *engine.Scene
	Store  *gizmo.Store
	Camera *camera.Fixed
	Gizmos map[gizmo.Category]*engine.GameObject
}

func New(store *gizmo.Store) *World {
	return &World{
		Scene:  engine.NewScene("Main"),
		Store:  store,
		Camera: camera.NewFixed(rl.Vector3{X: 0, Y: 5, Z: 20}, rl.Vector3Zero()),
		Gizmos: make(map[gizmo.Category]*engine.GameObject),
	}
}

// Initialize loads the shared meshes and builds the scene. Needs an open window.
func (w *World) Initialize() {
	handle := assets.LoadMeshModel("handle", func() rl.Mesh {
		return rl.GenMeshCube(HandleLength, HandleThickness, HandleThickness)
	})
	ball := assets.LoadMeshModel("ball", func() rl.Mesh {
		return rl.GenMeshSphere(BallRadius, 16, 16)
	})
	w.Build(handle, ball)
}

// Build places the left-handed gizmo left of the origin and the
// right-handed one to the right, each bound to its stored orientation.
func (w *World) Build(handle, ball rl.Model) {
	left := BuildGizmo(w.Store, gizmo.Left, handle, ball)
	left.Transform.Position = rl.Vector3{X: -GizmoSpacing}
	right := BuildGizmo(w.Store, gizmo.Right, handle, ball)
	right.Transform.Position = rl.Vector3{X: GizmoSpacing}

	w.Gizmos[gizmo.Left] = left
	w.Gizmos[gizmo.Right] = right
	w.Scene.AddGameObject(left)
	w.Scene.AddGameObject(right)
	w.Scene.Start()
}

// BuildGizmo creates the three axis handles with their end balls. The Left
// gizmo is left-handed, so its Z axis points away from the camera.
func BuildGizmo(store *gizmo.Store, category gizmo.Category, handle, ball rl.Model) *engine.GameObject {
	root := engine.NewGameObject(fmt.Sprintf("Gizmo_%s", category))
	root.AddComponent(components.NewGizmoBinding(store, category))

	quarter := float32(math.Pi / 2)
	zDir := float32(1)
	if category == gizmo.Left {
		zDir = -1
	}

	axes := []struct {
		name     string
		dir      rl.Vector3
		rotation rl.Quaternion
		material *assets.Material
	}{
		{"X", rl.Vector3{X: 1}, rl.QuaternionIdentity(), assets.Red},
		{"Y", rl.Vector3{Y: 1}, rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, quarter), assets.Green},
		{"Z", rl.Vector3{Z: zDir}, rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, quarter*zDir), assets.Blue},
	}

	for _, axis := range axes {
		h := engine.NewGameObject("Handle_" + axis.name)
		h.Transform.Position = rl.Vector3Scale(axis.dir, HandleOffset)
		h.Transform.Rotation = axis.rotation
		h.AddComponent(components.NewModelRenderer(handle, assets.Grey))
		root.AddChild(h)

		b := engine.NewGameObject("Ball_" + axis.name)
		b.Transform.Position = rl.Vector3Scale(axis.dir, BallOffset)
		b.AddComponent(components.NewModelRenderer(ball, axis.material))
		root.AddChild(b)
	}

	return root
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func (w *World) Draw() {
	rl.BeginMode3D(w.Camera.Raylib())
	w.Scene.Draw()
	rl.EndMode3D()
}

func (w *World) Unload() {
	assets.Unload()
}
