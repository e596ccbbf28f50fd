package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

func init() {
	engine.RegisterComponent("Follow", func() engine.Serializable {
		return NewFollow()
	})
}

// Follow moves its object toward a referenced target at a fixed speed,
// stopping at StopDistance.
type Follow struct {
	engine.BaseComponent
	Target       engine.GameObjectRef
	Speed        float32
	StopDistance float32

	// UIDs don't survive a save/load, so scene files carry the target's
	// GUID and the ref re-resolves on first use.
	targetGUID string
}

func NewFollow() *Follow {
	return &Follow{
		Speed:        3,
		StopDistance: 1,
	}
}

func (f *Follow) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	target := f.resolveTarget(g.Scene)
	if target == nil {
		return
	}

	toTarget := rl.Vector3Subtract(target.WorldPosition(), g.Transform.Position)
	dist := rl.Vector3Length(toTarget)
	if dist <= f.StopDistance {
		return
	}

	step := f.Speed * deltaTime
	if step > dist-f.StopDistance {
		step = dist - f.StopDistance
	}
	dir := rl.Vector3Scale(toTarget, 1/dist)
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(dir, step))
}

func (f *Follow) resolveTarget(scene *engine.Scene) *engine.GameObject {
	if target := f.Target.Get(scene); target != nil {
		return target
	}
	if f.targetGUID == "" || scene == nil {
		return nil
	}
	target := scene.FindByGUID(f.targetGUID)
	if target != nil {
		f.Target.Set(target)
	}
	return target
}

// SetTarget points the follow at another object.
func (f *Follow) SetTarget(target *engine.GameObject) {
	f.Target.Set(target)
	if target != nil {
		f.targetGUID = target.GUID
	} else {
		f.targetGUID = ""
	}
}

// TypeName implements engine.Serializable
func (f *Follow) TypeName() string {
	return "Follow"
}

// Serialize implements engine.Serializable
func (f *Follow) Serialize() map[string]any {
	return map[string]any{
		"type":         "Follow",
		"target":       f.targetGUID,
		"speed":        f.Speed,
		"stopDistance": f.StopDistance,
	}
}

// Deserialize implements engine.Serializable
func (f *Follow) Deserialize(data map[string]any) {
	propString(data, "target", &f.targetGUID)
	propFloat(data, "speed", &f.Speed)
	propFloat(data, "stopDistance", &f.StopDistance)
}
