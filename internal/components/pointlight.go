package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func init() {
	engine.RegisterComponent("PointLight", func() engine.Serializable {
		return NewPointLight()
	})
}

type PointLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Radius    float32 // falloff distance
}

func NewPointLight() *PointLight {
	return &PointLight{
		Color:     rl.White,
		Intensity: 1.0,
		Radius:    10.0,
	}
}

// TypeName implements engine.Serializable
func (p *PointLight) TypeName() string {
	return "PointLight"
}

// Serialize implements engine.Serializable
func (p *PointLight) Serialize() map[string]any {
	return map[string]any{
		"type":      "PointLight",
		"color":     colorList(p.Color),
		"intensity": p.Intensity,
		"radius":    p.Radius,
	}
}

// Deserialize implements engine.Serializable
func (p *PointLight) Deserialize(data map[string]any) {
	propColor(data, "color", &p.Color)
	propFloat(data, "intensity", &p.Intensity)
	propFloat(data, "radius", &p.Radius)
}

func (p *PointLight) GetPosition() rl.Vector3 {
	if g := p.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3Zero()
}
