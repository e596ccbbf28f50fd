package anim

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Float animates a float32.
type Float struct {
	BaseValue[float32]
}

func NewFloat(ticks *Ticks, value float32) *Float {
	return &Float{newBaseValue(ticks, value, rl.Lerp)}
}

// Vector3 animates an rl.Vector3 componentwise.
type Vector3 struct {
	BaseValue[rl.Vector3]
}

func NewVector3(ticks *Ticks, value rl.Vector3) *Vector3 {
	return &Vector3{newBaseValue(ticks, value, rl.Vector3Lerp)}
}

// Quaternion animates a rotation along the short arc.
type Quaternion struct {
	BaseValue[rl.Quaternion]
}

func NewQuaternion(ticks *Ticks, value rl.Quaternion) *Quaternion {
	return &Quaternion{newBaseValue(ticks, value, slerp)}
}

func slerp(from, to rl.Quaternion, t float32) rl.Quaternion {
	return rl.QuaternionSlerp(from, to, t)
}

// Bool animates a bool as a fade between 0 and 1. Value reads as bool with
// a midpoint threshold; Faded exposes the raw fade for layouts that shrink
// or dim instead of popping.
type Bool struct {
	BaseValue[float32]
}

func NewBool(ticks *Ticks, value bool) *Bool {
	return &Bool{newBaseValue(ticks, boolAnchor(value), rl.Lerp)}
}

func boolAnchor(v bool) float32 {
	if v {
		return 1
	}
	return 0
}

func (b *Bool) Value() bool {
	return b.Faded() > 0.5
}

func (b *Bool) Target() bool {
	return b.BaseValue.Target() != 0
}

func (b *Bool) SetTarget(value bool) {
	b.BaseValue.SetTarget(boolAnchor(value))
}

func (b *Bool) SetValue(value bool) {
	b.BaseValue.SetValue(boolAnchor(value))
}

// Faded returns the raw fade position, 0 when settled false, 1 when
// settled true.
func (b *Bool) Faded() float32 {
	return b.BaseValue.Value()
}

// Fade lerps between from and to by the current fade. Handy for animating
// heights and alphas off one Bool.
func (b *Bool) Fade(from, to float32) float32 {
	return rl.Lerp(from, to, b.Faded())
}
