// Package inspect resolves which custom inspector edits which component.
//
// Inspectors register themselves from init() against the component type
// they draw, the way components register their factories with the engine.
// The editor then asks the registry for an inspector matching the current
// selection; the lookup walks the component's embedding chain, so an
// inspector registered for a base type can serve everything built on it.
package inspect

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

// Inspector draws the properties of one or more components. Implementations
// must embed BaseInspector; that's what carries the edited targets.
type Inspector interface {
	OnInspectorGUI(gui GUI)

	setTargets(targets []engine.Component)
}

// MultiObjectEditor is a marker implemented by inspectors that can edit
// several components at once. Without it an inspector is only consulted
// for single selections.
type MultiObjectEditor interface {
	CanEditMultipleObjects()
}

// BaseInspector holds the components an inspector is editing. Target is
// the first (and for single-edit the only) one; multi-capable inspectors
// iterate Targets.
type BaseInspector struct {
	targets []engine.Component
}

func (b *BaseInspector) setTargets(targets []engine.Component) {
	b.targets = targets
}

func (b *BaseInspector) Target() engine.Component {
	if len(b.targets) == 0 {
		return nil
	}
	return b.targets[0]
}

func (b *BaseInspector) Targets() []engine.Component {
	return b.targets
}

// GUI is the widget surface the host editor hands to OnInspectorGUI.
// Field calls return the (possibly edited) value; the inspector writes it
// back to its targets.
type GUI interface {
	Label(text string)
	FloatField(label string, value float32) float32
	Vector3Field(label string, value rl.Vector3) rl.Vector3
	Checkbox(label string, value bool) bool
	Slider(label string, value, min, max float32) float32
	TextField(label string, value string) string
	ColorField(label string, value rl.Color) rl.Color
}
