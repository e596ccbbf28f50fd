// Package camera provides the free-fly camera the editor moves through
// the scene with.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32 // degrees, 0 looks down +X
	Pitch     float32 // degrees, clamped to avoid gimbal flip
	MoveSpeed float32
	LookSpeed float32
}

func New(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       -135.0,
		Pitch:     -30.0,
		MoveSpeed: 10.0, // Units per second
		LookSpeed: 0.1,
	}
}

// Look applies a mouse delta to yaw and pitch.
func (c *FlyCamera) Look(delta rl.Vector2) {
	c.Yaw += delta.X * c.LookSpeed
	c.Pitch -= delta.Y * c.LookSpeed

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Directions returns the view-aligned forward vector and the horizontal
// right vector for fly movement.
func (c *FlyCamera) Directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// LookAt turns the camera toward a world point without moving it.
func (c *FlyCamera) LookAt(target rl.Vector3) {
	dir := rl.Vector3Subtract(target, c.Position)
	length := rl.Vector3Length(dir)
	if length < 0.001 {
		return
	}
	dir = rl.Vector3Scale(dir, 1/length)

	c.Yaw = float32(math.Atan2(float64(dir.Z), float64(dir.X)) * 180 / math.Pi)
	c.Pitch = float32(math.Asin(float64(dir.Y)) * 180 / math.Pi)
}

// Raylib builds the rl.Camera3D for BeginMode3D.
func (c *FlyCamera) Raylib() rl.Camera3D {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	target := rl.Vector3{
		X: c.Position.X + float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: c.Position.Y + float32(math.Sin(pitchRad)),
		Z: c.Position.Z + float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}

	return rl.Camera3D{
		Position:   c.Position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
