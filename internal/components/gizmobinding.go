package components

import (
	"gizmoview/internal/engine"
	"gizmoview/internal/gizmo"
)

// GizmoBinding copies one stored orientation onto its owner every frame.
type GizmoBinding struct {
	engine.BaseComponent
	Store    *gizmo.Store
	Category gizmo.Category
}

func NewGizmoBinding(store *gizmo.Store, category gizmo.Category) *GizmoBinding {
	return &GizmoBinding{
		Store:    store,
		Category: category,
	}
}

func (b *GizmoBinding) Start() {
	b.sync()
}

func (b *GizmoBinding) Update(deltaTime float32) {
	b.sync()
}

func (b *GizmoBinding) sync() {
	g := b.GetGameObject()
	if g == nil || b.Store == nil {
		return
	}
	g.Transform.Rotation = b.Store.Get(b.Category)
}
