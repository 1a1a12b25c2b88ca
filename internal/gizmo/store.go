package gizmo

import rl "github.com/gen2brain/raylib-go/raylib"

// Category decides which half of the window drives a gizmo.
type Category int

const (
	Left  Category = 0
	Right Category = 1
)

func (c Category) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Gizmo is one orientation indicator tagged with its routing category.
type Gizmo struct {
	Category Category
	Rotation rl.Quaternion
}

// Store holds the orientation of both gizmos. Writes are not validated or
// normalized; CorrectDrift takes care of unit norm.
type Store struct {
	gizmos [2]Gizmo
}

func NewStore() *Store {
	return &Store{
		gizmos: [2]Gizmo{
			{Category: Left, Rotation: rl.QuaternionIdentity()},
			{Category: Right, Rotation: rl.QuaternionIdentity()},
		},
	}
}

func (s *Store) Get(c Category) rl.Quaternion {
	return s.gizmos[c].Rotation
}

func (s *Store) Set(c Category, q rl.Quaternion) {
	s.gizmos[c].Rotation = q
}

// Gizmos returns both gizmos in a fixed order, Left first.
func (s *Store) Gizmos() []*Gizmo {
	return []*Gizmo{&s.gizmos[Left], &s.gizmos[Right]}
}

// Reset puts every gizmo back to the identity orientation.
func (s *Store) Reset() {
	for _, g := range s.Gizmos() {
		g.Rotation = rl.QuaternionIdentity()
	}
}
