package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Walk(func(o *GameObject) { o.Scene = s })
	s.GameObjects = append(s.GameObjects, g)
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			g.Walk(func(o *GameObject) { o.Scene = nil })
			return
		}
	}
}

// FindByName searches root objects and their descendants.
func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	for _, g := range s.GameObjects {
		g.Walk(func(o *GameObject) {
			if found == nil && o.Name == name {
				found = o
			}
		})
		if found != nil {
			return found
		}
	}
	return nil
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// Draw calls every Drawable component in the scene.
func (s *Scene) Draw() {
	for _, g := range s.GameObjects {
		g.Walk(func(o *GameObject) {
			if !o.Active {
				return
			}
			for _, c := range o.components {
				if d, ok := c.(Drawable); ok {
					d.Draw()
				}
			}
		})
	}
}
