package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func init() {
	engine.RegisterComponent("Rotator", func() engine.Serializable {
		return NewRotator()
	})
}

// Rotator spins an object at a fixed rate. It deliberately has no custom
// inspector; the generic one handles it.
type Rotator struct {
	engine.BaseComponent
	Speed float32    // degrees per second
	Axis  rl.Vector3 // rotation axis weights
}

func NewRotator() *Rotator {
	return &Rotator{
		Speed: 90,
		Axis:  rl.Vector3{Y: 1},
	}
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	step := r.Speed * deltaTime
	g.Transform.Rotation.X = wrapDegrees(g.Transform.Rotation.X + step*r.Axis.X)
	g.Transform.Rotation.Y = wrapDegrees(g.Transform.Rotation.Y + step*r.Axis.Y)
	g.Transform.Rotation.Z = wrapDegrees(g.Transform.Rotation.Z + step*r.Axis.Z)
}

func wrapDegrees(deg float32) float32 {
	for deg > 360 {
		deg -= 360
	}
	for deg < -360 {
		deg += 360
	}
	return deg
}

// TypeName implements engine.Serializable
func (r *Rotator) TypeName() string {
	return "Rotator"
}

// Serialize implements engine.Serializable
func (r *Rotator) Serialize() map[string]any {
	return map[string]any{
		"type":  "Rotator",
		"speed": r.Speed,
		"axis":  vec3List(r.Axis),
	}
}

// Deserialize implements engine.Serializable
func (r *Rotator) Deserialize(data map[string]any) {
	propFloat(data, "speed", &r.Speed)
	propVec3(data, "axis", &r.Axis)
}
