package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func init() {
	engine.RegisterComponent("Rigidbody", func() engine.Serializable {
		return NewRigidbody()
	})
}

const gravity = 9.81

type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	Mass        float32
	UseGravity  bool
	IsKinematic bool // moves but isn't integrated
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		UseGravity: true,
	}
}

// Update integrates velocity. There is no solver; bodies fall and rest on
// the ground plane, which is all the sample scenes need.
func (r *Rigidbody) Update(deltaTime float32) {
	if r.IsKinematic {
		return
	}
	g := r.GetGameObject()
	if g == nil {
		return
	}

	if r.UseGravity {
		r.Velocity.Y -= gravity * deltaTime
	}

	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(r.Velocity, deltaTime))

	// Rest on the ground plane.
	half := g.Transform.Scale.Y * 0.5
	if g.Transform.Position.Y < half {
		g.Transform.Position.Y = half
		if r.Velocity.Y < 0 {
			r.Velocity.Y = 0
		}
	}
}

// TypeName implements engine.Serializable
func (r *Rigidbody) TypeName() string {
	return "Rigidbody"
}

// Serialize implements engine.Serializable
func (r *Rigidbody) Serialize() map[string]any {
	return map[string]any{
		"type":        "Rigidbody",
		"mass":        r.Mass,
		"useGravity":  r.UseGravity,
		"isKinematic": r.IsKinematic,
	}
}

// Deserialize implements engine.Serializable
func (r *Rigidbody) Deserialize(data map[string]any) {
	propFloat(data, "mass", &r.Mass)
	propBool(data, "useGravity", &r.UseGravity)
	propBool(data, "isKinematic", &r.IsKinematic)
}
