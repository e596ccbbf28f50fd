package anim

import "tinker3d/internal/engine"

// Lerp interpolates between two values; t runs 0..1.
type Lerp[T any] func(from, to T, t float32) T

// DefaultSpeed is the progress rate in units per second. At 2 an animation
// settles in half a second of real time.
const DefaultSpeed float32 = 2

// easeOutQuart starts fast and lands softly. Maps 0 to 0 and 1 to 1,
// strictly increasing in between.
func easeOutQuart(p float32) float32 {
	inv := 1 - p
	return 1 - inv*inv*inv*inv
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BaseValue drives one animated value toward a target over time. Concrete
// types (Float, Bool, Vector3, Quaternion) embed it with a matching lerp,
// the way components embed BaseComponent.
//
// A value is settled (progress 1) until SetTarget gives it somewhere to go;
// while in flight it keeps a tick callback registered on its Ticks and
// fires Changed on every frame that moves it. All methods run on the main
// loop; there is no locking.
type BaseValue[T comparable] struct {
	// Speed scales how fast progress advances, in units per second.
	Speed float32
	// Changed fires whenever the resolved value moves, including the
	// final tick and immediate sets that change the value.
	Changed engine.Event

	start     T
	target    T
	lerp      Lerp[T]
	progress  float32
	lastTick  float64
	animating bool
	ticks     *Ticks
	tickID    uint64
}

func newBaseValue[T comparable](ticks *Ticks, value T, lerp Lerp[T]) BaseValue[T] {
	return BaseValue[T]{
		Speed:    DefaultSpeed,
		start:    value,
		target:   value,
		lerp:     lerp,
		progress: 1,
		ticks:    ticks,
	}
}

// Value returns the current interpolated value.
func (v *BaseValue[T]) Value() T {
	return v.lerp(v.start, v.target, easeOutQuart(v.progress))
}

// Target returns the value being animated toward.
func (v *BaseValue[T]) Target() T {
	return v.target
}

// Animating reports whether the value is mid-flight.
func (v *BaseValue[T]) Animating() bool {
	return v.animating
}

// SetTarget starts animating toward target from the current interpolated
// value. Setting the current target again is a no-op, also mid-flight.
// Without a Ticks the value snaps to the target immediately.
func (v *BaseValue[T]) SetTarget(target T) {
	if target == v.target {
		return
	}
	if v.ticks == nil {
		v.SetValue(target)
		return
	}
	v.start = v.Value()
	v.target = target
	v.progress = 0
	v.lastTick = v.ticks.Now()
	if !v.animating {
		v.animating = true
		v.tickID = v.ticks.Add(v.tick)
	}
}

// SetValue snaps to a value immediately, cancelling any animation in
// flight. Changed fires only if the resolved value actually moved or an
// animation was cancelled.
func (v *BaseValue[T]) SetValue(value T) {
	changed := v.animating || v.Value() != value
	v.start = value
	v.target = value
	v.progress = 1
	if v.animating {
		v.animating = false
		v.ticks.Remove(v.tickID)
		v.tickID = 0
	}
	if changed {
		v.Changed.Invoke()
	}
}

func (v *BaseValue[T]) tick(now float64) {
	if !v.animating {
		return
	}
	dt := float32(now - v.lastTick)
	v.lastTick = now
	speed := v.Speed
	if speed == 0 {
		speed = DefaultSpeed
	}
	v.progress = clamp01(v.progress + dt*speed)
	v.Changed.Invoke()
	if v.progress >= 1 {
		v.animating = false
		v.ticks.Remove(v.tickID)
		v.tickID = 0
	}
}
