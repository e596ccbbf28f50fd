package engine

import "testing"

// Mock component for testing
type MockComponent struct {
	BaseComponent
	Speed  float32
	Health int
}

func (m *MockComponent) TypeName() string {
	return "MockComponent"
}

func (m *MockComponent) Serialize() map[string]any {
	return map[string]any{
		"type":   "MockComponent",
		"speed":  m.Speed,
		"health": m.Health,
	}
}

func (m *MockComponent) Deserialize(data map[string]any) {
	if v, ok := data["speed"].(float64); ok {
		m.Speed = float32(v)
	}
	if v, ok := data["health"].(float64); ok {
		m.Health = int(v)
	}
}

func TestRegisterComponent(t *testing.T) {
	// Clear registry for clean test
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("MockComponent", func() Serializable { return &MockComponent{} })

	if _, exists := componentRegistry["MockComponent"]; !exists {
		t.Error("Component not registered")
	}
}

func TestRegisterComponentDuplicate(t *testing.T) {
	// Clear registry for clean test
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("Duplicate", func() Serializable { return &MockComponent{} })

	// Should panic on duplicate registration
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()

	RegisterComponent("Duplicate", func() Serializable { return &MockComponent{} })
}

func TestNewSerializable(t *testing.T) {
	// Clear registry for clean test
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("MockComponent", func() Serializable { return &MockComponent{} })

	created := NewSerializable("MockComponent")
	if created == nil {
		t.Fatal("NewSerializable returned nil")
	}

	created.Deserialize(map[string]any{
		"speed":  float64(10.5),
		"health": float64(100),
	})

	mock, ok := created.(*MockComponent)
	if !ok {
		t.Fatal("NewSerializable didn't return MockComponent")
	}

	if mock.Speed != 10.5 {
		t.Errorf("Expected Speed 10.5, got %f", mock.Speed)
	}

	if mock.Health != 100 {
		t.Errorf("Expected Health 100, got %d", mock.Health)
	}
}

func TestNewSerializableNotFound(t *testing.T) {
	// Clear registry for clean test
	componentRegistry = map[string]ComponentFactory{}

	created := NewSerializable("DoesNotExist")
	if created != nil {
		t.Error("NewSerializable should return nil for unknown names")
	}
}

func TestSerializeComponent(t *testing.T) {
	mock := &MockComponent{Speed: 15.0, Health: 200}

	name, props, ok := SerializeComponent(mock)
	if !ok {
		t.Fatal("SerializeComponent failed")
	}

	if name != "MockComponent" {
		t.Errorf("Expected name 'MockComponent', got '%s'", name)
	}

	if props["speed"] != float32(15.0) {
		t.Errorf("Expected speed 15.0, got %v", props["speed"])
	}

	if props["health"] != 200 {
		t.Errorf("Expected health 200, got %v", props["health"])
	}
}

func TestSerializeComponentNotSerializable(t *testing.T) {
	plain := &BaseComponent{}

	_, _, ok := SerializeComponent(plain)
	if ok {
		t.Error("SerializeComponent should return false for non-serializable components")
	}
}

func TestRegisteredComponents(t *testing.T) {
	// Clear registry for clean test
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("ComponentC", func() Serializable { return &MockComponent{} })
	RegisterComponent("ComponentA", func() Serializable { return &MockComponent{} })
	RegisterComponent("ComponentB", func() Serializable { return &MockComponent{} })

	names := RegisteredComponents()

	if len(names) != 3 {
		t.Errorf("Expected 3 components, got %d", len(names))
	}

	// Verify sorted order
	if names[0] != "ComponentA" || names[1] != "ComponentB" || names[2] != "ComponentC" {
		t.Errorf("Components not in sorted order: %v", names)
	}
}
