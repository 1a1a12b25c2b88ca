package components

import (
	"gizmoview/internal/assets"
	"gizmoview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model    rl.Model
	Material *assets.Material
}

func NewModelRenderer(model rl.Model, material *assets.Material) *ModelRenderer {
	return &ModelRenderer{
		Model:    model,
		Material: material,
	}
}

// Draw renders the model with its owner's world transform. The model is
// shared between parts, so the transform is overwritten on every draw.
func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	m.Model.Transform = g.WorldMatrix()
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Material.Color)
}
