package engine

import (
	"fmt"
	"sort"
)

// Serializable is implemented by components that can round-trip through
// scene files. Serialize returns a props map including a "type" key;
// Deserialize applies a props map, ignoring keys it doesn't know.
type Serializable interface {
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// ComponentFactory creates a fresh component with default values.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory. Components call
// this from init(), so a duplicate name is a programming error and panics.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// NewSerializable creates a registered component by type name.
// Returns nil for unknown names.
func NewSerializable(name string) Serializable {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil
	}
	return factory()
}

// SerializeComponent converts a component to (typeName, props) if it is
// serializable. Non-serializable components return ok=false and are skipped
// by scene saving.
func SerializeComponent(c Component) (string, map[string]any, bool) {
	s, ok := c.(Serializable)
	if !ok {
		return "", nil, false
	}
	return s.TypeName(), s.Serialize(), true
}

// RegisteredComponents returns all registered component names, sorted for
// consistent ordering in UI.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
