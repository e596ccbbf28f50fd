package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

type Camera struct {
	engine.BaseComponent
	FOV    float32
	Near   float32
	Far    float32
	IsMain bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:    45.0,
		Near:   0.1,
		Far:    1000.0,
		IsMain: false,
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type":   "Camera",
		"fov":    c.FOV,
		"near":   c.Near,
		"far":    c.Far,
		"isMain": c.IsMain,
	}
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	propFloat(data, "fov", &c.FOV)
	propFloat(data, "near", &c.Near)
	propFloat(data, "far", &c.Far)
	propBool(data, "isMain", &c.IsMain)
}

// GetRaylibCamera builds the rl camera from the object's world transform.
// Pitch and yaw come from the transform rotation; roll is ignored.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	rot := g.WorldRotation()

	pitch := float64(rot.X) * math.Pi / 180
	yaw := float64(rot.Y) * math.Pi / 180
	forward := rl.Vector3{
		X: float32(-math.Sin(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: float32(-math.Cos(yaw) * math.Cos(pitch)),
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
