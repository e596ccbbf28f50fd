package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func init() {
	engine.RegisterComponent("ShapeRenderer", func() engine.Serializable {
		return NewShapeRenderer(ShapeCube, rl.LightGray)
	})
}

type ShapeType int

const (
	ShapeCube ShapeType = iota
	ShapeSphere
	ShapePlane
)

func (s ShapeType) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	case ShapePlane:
		return "plane"
	}
	return "cube"
}

// ParseShape maps a shape name back to its type. Unknown names fall back
// to cube, matching String's default.
func ParseShape(name string) ShapeType {
	switch name {
	case "sphere":
		return ShapeSphere
	case "plane":
		return ShapePlane
	}
	return ShapeCube
}

// ShapeRenderer draws a primitive at the object's world transform. The
// render pipeline decides how (solid, shaded, wireframe).
type ShapeRenderer struct {
	engine.BaseComponent
	Shape ShapeType
	Color rl.Color
}

func NewShapeRenderer(shape ShapeType, color rl.Color) *ShapeRenderer {
	return &ShapeRenderer{
		Shape: shape,
		Color: color,
	}
}

// TypeName implements engine.Serializable
func (s *ShapeRenderer) TypeName() string {
	return "ShapeRenderer"
}

// Serialize implements engine.Serializable
func (s *ShapeRenderer) Serialize() map[string]any {
	return map[string]any{
		"type":  "ShapeRenderer",
		"shape": s.Shape.String(),
		"color": colorList(s.Color),
	}
}

// Deserialize implements engine.Serializable
func (s *ShapeRenderer) Deserialize(data map[string]any) {
	var shape string
	propString(data, "shape", &shape)
	if shape != "" {
		s.Shape = ParseShape(shape)
	}
	propColor(data, "color", &s.Color)
}

// Draw renders the shape solid with the given tint, scaled by the world
// transform.
func (s *ShapeRenderer) Draw(tint rl.Color) {
	g := s.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()

	switch s.Shape {
	case ShapeCube:
		rl.DrawCubeV(pos, scale, tint)
	case ShapeSphere:
		rl.DrawSphere(pos, scale.X*0.5, tint)
	case ShapePlane:
		rl.DrawPlane(pos, rl.Vector2{X: scale.X, Y: scale.Z}, tint)
	}
}

// DrawWires renders the shape as wireframe, for the flat pipeline and
// selection highlights.
func (s *ShapeRenderer) DrawWires(tint rl.Color) {
	g := s.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()

	switch s.Shape {
	case ShapeCube:
		rl.DrawCubeWiresV(pos, scale, tint)
	case ShapeSphere:
		rl.DrawSphereWires(pos, scale.X*0.5, 12, 12, tint)
	case ShapePlane:
		rl.DrawCubeWiresV(pos, rl.Vector3{X: scale.X, Y: 0.01, Z: scale.Z}, tint)
	}
}
