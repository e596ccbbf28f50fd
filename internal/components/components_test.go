package components

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestCameraSerializeRoundTrip(t *testing.T) {
	cam := NewCamera()
	cam.FOV = 60
	cam.Near = 0.5
	cam.IsMain = true

	props := cam.Serialize()

	// Scene JSON hands numbers back as float64.
	restored := NewCamera()
	restored.Deserialize(map[string]any{
		"fov":    float64(props["fov"].(float32)),
		"near":   float64(props["near"].(float32)),
		"far":    float64(props["far"].(float32)),
		"isMain": props["isMain"],
	})

	if restored.FOV != 60 {
		t.Errorf("Expected FOV 60, got %f", restored.FOV)
	}
	if restored.Near != 0.5 {
		t.Errorf("Expected Near 0.5, got %f", restored.Near)
	}
	if !restored.IsMain {
		t.Error("IsMain not restored")
	}
}

func TestCameraIgnoresUnknownProps(t *testing.T) {
	cam := NewCamera()
	cam.Deserialize(map[string]any{
		"fov":     "not a number",
		"unknown": true,
	})

	if cam.FOV != 45 {
		t.Errorf("Mistyped prop should leave default, got %f", cam.FOV)
	}
}

func TestBoxColliderRoundTrip(t *testing.T) {
	box := NewBoxCollider(rl.Vector3{X: 2, Y: 4, Z: 6})
	box.IsTrigger = true
	box.Offset = rl.Vector3{Y: 1}

	restored := NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	restored.Deserialize(map[string]any{
		"size":      []any{float64(2), float64(4), float64(6)},
		"offset":    []any{float64(0), float64(1), float64(0)},
		"isTrigger": true,
	})

	if restored.Size != box.Size {
		t.Errorf("Size not restored: %v", restored.Size)
	}
	if restored.Offset != box.Offset {
		t.Errorf("Offset not restored: %v", restored.Offset)
	}
	if !restored.IsTrigger {
		t.Error("IsTrigger not restored")
	}
}

func TestBoxColliderBounds(t *testing.T) {
	obj := engine.NewGameObject("Crate")
	obj.Transform.Position = rl.Vector3{X: 10, Y: 5, Z: 0}

	box := NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 2})
	obj.AddComponent(box)

	min, max := box.Bounds()

	if min.X != 9 || min.Y != 4 || min.Z != -1 {
		t.Errorf("Wrong min bound: %v", min)
	}
	if max.X != 11 || max.Y != 6 || max.Z != 1 {
		t.Errorf("Wrong max bound: %v", max)
	}
}

func TestRotatorUpdate(t *testing.T) {
	obj := engine.NewGameObject("Spinner")
	rot := NewRotator()
	rot.Speed = 90
	obj.AddComponent(rot)

	rot.Update(1.0)

	if obj.Transform.Rotation.Y != 90 {
		t.Errorf("Expected Y rotation 90, got %f", obj.Transform.Rotation.Y)
	}
	if obj.Transform.Rotation.X != 0 {
		t.Errorf("X axis should not rotate, got %f", obj.Transform.Rotation.X)
	}
}

func TestRotatorWraps(t *testing.T) {
	obj := engine.NewGameObject("Spinner")
	rot := NewRotator()
	rot.Speed = 300
	obj.AddComponent(rot)

	rot.Update(1.0)
	rot.Update(1.0)

	y := obj.Transform.Rotation.Y
	if y > 360 || y < -360 {
		t.Errorf("Rotation should stay wrapped, got %f", y)
	}
}

func TestRigidbodyGravity(t *testing.T) {
	obj := engine.NewGameObject("Ball")
	obj.Transform.Position = rl.Vector3{Y: 10}
	rb := NewRigidbody()
	obj.AddComponent(rb)

	rb.Update(0.5)

	if rb.Velocity.Y >= 0 {
		t.Error("Gravity should pull velocity down")
	}
	if obj.Transform.Position.Y >= 10 {
		t.Error("Object should fall")
	}
}

func TestRigidbodyRestsOnGround(t *testing.T) {
	obj := engine.NewGameObject("Ball")
	obj.Transform.Position = rl.Vector3{Y: 0.6}
	rb := NewRigidbody()
	obj.AddComponent(rb)

	for i := 0; i < 100; i++ {
		rb.Update(0.1)
	}

	if obj.Transform.Position.Y != 0.5 {
		t.Errorf("Object should rest at half its height, got %f", obj.Transform.Position.Y)
	}
	if rb.Velocity.Y != 0 {
		t.Errorf("Resting velocity should be zero, got %f", rb.Velocity.Y)
	}
}

func TestRigidbodyKinematicSkipsIntegration(t *testing.T) {
	obj := engine.NewGameObject("Platform")
	obj.Transform.Position = rl.Vector3{Y: 10}
	rb := NewRigidbody()
	rb.IsKinematic = true
	obj.AddComponent(rb)

	rb.Update(1.0)

	if obj.Transform.Position.Y != 10 {
		t.Error("Kinematic bodies should not move")
	}
}

func TestFollowMovesTowardTarget(t *testing.T) {
	scene := engine.NewScene("Test")

	target := engine.NewGameObject("Target")
	target.Transform.Position = rl.Vector3{X: 10}
	scene.AddGameObject(target)

	chaser := engine.NewGameObject("Chaser")
	follow := NewFollow()
	follow.Speed = 2
	chaser.AddComponent(follow)
	scene.AddGameObject(chaser)

	follow.SetTarget(target)
	follow.Update(1.0)

	if !almostEqual(chaser.Transform.Position.X, 2) {
		t.Errorf("Expected X 2 after one second at speed 2, got %f", chaser.Transform.Position.X)
	}
}

func TestFollowStopsAtDistance(t *testing.T) {
	scene := engine.NewScene("Test")

	target := engine.NewGameObject("Target")
	target.Transform.Position = rl.Vector3{X: 3}
	scene.AddGameObject(target)

	chaser := engine.NewGameObject("Chaser")
	follow := NewFollow()
	follow.Speed = 100
	follow.StopDistance = 1
	chaser.AddComponent(follow)
	scene.AddGameObject(chaser)

	follow.SetTarget(target)
	follow.Update(1.0)

	if !almostEqual(chaser.Transform.Position.X, 2) {
		t.Errorf("Should stop one unit short, got %f", chaser.Transform.Position.X)
	}

	// Another update must not overshoot.
	follow.Update(1.0)
	if !almostEqual(chaser.Transform.Position.X, 2) {
		t.Errorf("Should hold position at stop distance, got %f", chaser.Transform.Position.X)
	}
}

func TestFollowResolvesByGUIDAfterLoad(t *testing.T) {
	scene := engine.NewScene("Test")

	target := engine.NewGameObject("Target")
	target.Transform.Position = rl.Vector3{X: 5}
	scene.AddGameObject(target)

	chaser := engine.NewGameObject("Chaser")
	follow := NewFollow()
	chaser.AddComponent(follow)
	scene.AddGameObject(chaser)

	// Simulate deserialization: only the GUID is known, no live UID.
	follow.Deserialize(map[string]any{
		"target":       target.GUID,
		"speed":        float64(1),
		"stopDistance": float64(1),
	})

	follow.Update(1.0)

	if !almostEqual(chaser.Transform.Position.X, 1) {
		t.Errorf("Ref should re-resolve via GUID, got X %f", chaser.Transform.Position.X)
	}
	if !follow.Target.IsValid() {
		t.Error("Resolved ref should be cached in the UID ref")
	}
}

func TestDirectionalLightShade(t *testing.T) {
	light := NewDirectionalLight()
	light.Direction = rl.Vector3{Y: -1} // straight down
	light.Intensity = 1
	light.Color = rl.White
	light.AmbientColor = rl.NewColor(0, 0, 0, 255)

	shaded := light.Shade(rl.NewColor(100, 200, 50, 255))

	if shaded.R != 100 || shaded.G != 200 || shaded.B != 50 {
		t.Errorf("Full white light from above should keep the base color, got %v", shaded)
	}

	// Light pointing up means no direct contribution.
	light.Direction = rl.Vector3{Y: 1}
	dark := light.Shade(rl.NewColor(100, 200, 50, 255))
	if dark.R != 0 || dark.G != 0 || dark.B != 0 {
		t.Errorf("Upward light with black ambient should shade to black, got %v", dark)
	}
}

func TestShapeRendererRoundTrip(t *testing.T) {
	s := NewShapeRenderer(ShapeSphere, rl.Red)

	restored := NewShapeRenderer(ShapeCube, rl.White)
	restored.Deserialize(map[string]any{
		"shape": "sphere",
		"color": []any{float64(230), float64(41), float64(55)},
	})

	if restored.Shape != ShapeSphere {
		t.Errorf("Shape not restored: %v", restored.Shape)
	}
	if restored.Color.R != s.Color.R {
		t.Errorf("Color not restored: %v", restored.Color)
	}
}
