package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func init() {
	engine.RegisterComponent("DirectionalLight", func() engine.Serializable {
		return NewDirectionalLight()
	})
}

type DirectionalLight struct {
	engine.BaseComponent
	Direction    rl.Vector3
	Color        rl.Color
	Intensity    float32
	AmbientColor rl.Color
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction:    rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35}),
		Color:        rl.White,
		Intensity:    1.0,
		AmbientColor: rl.NewColor(25, 25, 25, 255),
	}
}

// TypeName implements engine.Serializable
func (l *DirectionalLight) TypeName() string {
	return "DirectionalLight"
}

// Serialize implements engine.Serializable
func (l *DirectionalLight) Serialize() map[string]any {
	return map[string]any{
		"type":      "DirectionalLight",
		"direction": vec3List(l.Direction),
		"color":     colorList(l.Color),
		"intensity": l.Intensity,
		"ambient":   colorList(l.AmbientColor),
	}
}

// Deserialize implements engine.Serializable
func (l *DirectionalLight) Deserialize(data map[string]any) {
	propVec3(data, "direction", &l.Direction)
	l.Direction = rl.Vector3Normalize(l.Direction)
	propColor(data, "color", &l.Color)
	propFloat(data, "intensity", &l.Intensity)
	propColor(data, "ambient", &l.AmbientColor)
}

// Shade tints a surface color by this light against an upward-facing
// normal, plus ambient. Cheap per-object lighting for the forward
// pipeline; no shadowing.
func (l *DirectionalLight) Shade(base rl.Color) rl.Color {
	// How much the light faces down onto the surface.
	facing := -l.Direction.Y
	if facing < 0 {
		facing = 0
	}
	lit := facing * l.Intensity

	shadeChannel := func(surface, light, ambient uint8) uint8 {
		v := float32(surface) * (float32(light) / 255 * lit)
		v += float32(surface) * float32(ambient) / 255
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	return rl.NewColor(
		shadeChannel(base.R, l.Color.R, l.AmbientColor.R),
		shadeChannel(base.G, l.Color.G, l.AmbientColor.G),
		shadeChannel(base.B, l.Color.B, l.AmbientColor.B),
		base.A,
	)
}
