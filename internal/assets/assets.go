package assets

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material defines surface properties for rendering
type Material struct {
	Name        string
	Color       rl.Color
	Roughness   float32
	Reflectance float32
}

// Gizmo palette. All parts share the same matte finish.
var (
	Green = mustMaterial("green", "66cc33")
	Red   = mustMaterial("red", "ff3300")
	Blue  = mustMaterial("blue", "0066cc")
	Grey  = mustMaterial("grey", "999999")
)

func mustMaterial(name, hex string) *Material {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return &Material{
		Name:        name,
		Color:       c,
		Roughness:   0.9,
		Reflectance: 0.1,
	}
}

// ParseHexColor parses "rrggbb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (rl.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return rl.Color{}, fmt.Errorf("invalid hex color %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
}

var manager *Manager

type Manager struct {
	models map[string]rl.Model
}

func Init() {
	manager = &Manager{
		models: make(map[string]rl.Model),
	}
}

// LoadMeshModel returns the model cached under name, generating its mesh on
// first use. Needs an open window.
func LoadMeshModel(name string, gen func() rl.Mesh) rl.Model {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[name]; exists {
		return model
	}

	model := rl.LoadModelFromMesh(gen())
	manager.models[name] = model
	return model
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	manager.models = make(map[string]rl.Model)
}
