package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
	engine.RegisterComponent("SphereCollider", func() engine.Serializable {
		return NewSphereCollider(0.5)
	})
}

// Collider is the shared base for collision shapes. Concrete colliders
// embed it on top of BaseComponent, so an inspector registered for
// Collider with ForChildClasses serves all of them.
type Collider struct {
	engine.BaseComponent
	IsTrigger bool
	Offset    rl.Vector3
}

// ColliderBase returns the embedded Collider. Code holding a Component can
// reach the shared fields through an interface assertion on this method.
func (c *Collider) ColliderBase() *Collider {
	return c
}

func (c *Collider) center() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return c.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), c.Offset)
}

type BoxCollider struct {
	Collider
	Size rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// TypeName implements engine.Serializable
func (b *BoxCollider) TypeName() string {
	return "BoxCollider"
}

// Serialize implements engine.Serializable
func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"type":      "BoxCollider",
		"size":      vec3List(b.Size),
		"offset":    vec3List(b.Offset),
		"isTrigger": b.IsTrigger,
	}
}

// Deserialize implements engine.Serializable
func (b *BoxCollider) Deserialize(data map[string]any) {
	propVec3(data, "size", &b.Size)
	propVec3(data, "offset", &b.Offset)
	propBool(data, "isTrigger", &b.IsTrigger)
}

// Bounds returns the world-space box as (min, max).
func (b *BoxCollider) Bounds() (rl.Vector3, rl.Vector3) {
	center := b.center()
	half := rl.Vector3Scale(b.Size, 0.5)
	return rl.Vector3Subtract(center, half), rl.Vector3Add(center, half)
}

// DrawGizmo outlines the collider for the editor.
func (b *BoxCollider) DrawGizmo(tint rl.Color) {
	rl.DrawCubeWiresV(b.center(), b.Size, tint)
}

type SphereCollider struct {
	Collider
	Radius float32
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

// TypeName implements engine.Serializable
func (s *SphereCollider) TypeName() string {
	return "SphereCollider"
}

// Serialize implements engine.Serializable
func (s *SphereCollider) Serialize() map[string]any {
	return map[string]any{
		"type":      "SphereCollider",
		"radius":    s.Radius,
		"offset":    vec3List(s.Offset),
		"isTrigger": s.IsTrigger,
	}
}

// Deserialize implements engine.Serializable
func (s *SphereCollider) Deserialize(data map[string]any) {
	propFloat(data, "radius", &s.Radius)
	propVec3(data, "offset", &s.Offset)
	propBool(data, "isTrigger", &s.IsTrigger)
}

// DrawGizmo outlines the collider for the editor.
func (s *SphereCollider) DrawGizmo(tint rl.Color) {
	rl.DrawSphereWires(s.center(), s.Radius, 12, 12, tint)
}
