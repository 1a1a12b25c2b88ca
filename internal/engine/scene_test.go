package engine

import "testing"

type drawCounter struct {
	BaseComponent
	draws int
}

func (d *drawCounter) Draw() { d.draws++ }

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Gizmo")
	child := NewGameObject("Handle")
	obj.AddChild(child)

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene || child.Scene != scene {
		t.Error("GameObject.Scene not set on the whole hierarchy")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Left")
	obj2 := NewGameObject("Right")
	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}
	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}
	if obj1.Scene != nil {
		t.Error("Removed GameObject should not keep its scene")
	}
}

func TestSceneFindByNameSearchesChildren(t *testing.T) {
	scene := NewScene("Test")
	root := NewGameObject("Gizmo")
	ball := NewGameObject("Ball")
	root.AddChild(ball)
	scene.AddGameObject(root)

	if scene.FindByName("Ball") != ball {
		t.Error("FindByName should find nested objects")
	}
	if scene.FindByName("Missing") != nil {
		t.Error("FindByName should return nil for unknown names")
	}
}

func TestSceneDrawSkipsInactive(t *testing.T) {
	scene := NewScene("Test")
	visible := NewGameObject("Visible")
	hidden := NewGameObject("Hidden")
	dv, dh := &drawCounter{}, &drawCounter{}
	visible.AddComponent(dv)
	hidden.AddComponent(dh)
	hidden.Active = false
	scene.AddGameObject(visible)
	scene.AddGameObject(hidden)

	scene.Draw()

	if dv.draws != 1 {
		t.Errorf("Expected 1 draw, got %d", dv.draws)
	}
	if dh.draws != 0 {
		t.Errorf("Expected inactive object not drawn, got %d", dh.draws)
	}
}
