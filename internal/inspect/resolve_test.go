package inspect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tinker3d/internal/engine"
)

// Component fixtures. The embedding chain is gauge -> dial -> widget ->
// engine.BaseComponent, mirroring how concrete components build on
// intermediate bases.
type widget struct {
	engine.BaseComponent
}

type dial struct {
	widget
	Value float32
}

type gauge struct {
	dial
}

type meter[T any] struct {
	engine.BaseComponent
	reading T
}

// Fake pipeline types for pipeline-pinned registrations.
type pipeA struct{}
type pipeB struct{}

// Inspector fixtures.
type widgetInspector struct{ BaseInspector }

func (i *widgetInspector) OnInspectorGUI(gui GUI) {}

type dialInspector struct{ BaseInspector }

func (i *dialInspector) OnInspectorGUI(gui GUI) {}

type multiDialInspector struct{ BaseInspector }

func (i *multiDialInspector) OnInspectorGUI(gui GUI) {}
func (i *multiDialInspector) CanEditMultipleObjects() {}

type fallbackInspector struct{ BaseInspector }

func (i *fallbackInspector) OnInspectorGUI(gui GUI) {}

type pipeAInspector struct{ BaseInspector }

func (i *pipeAInspector) OnInspectorGUI(gui GUI) {}

type anyPipeInspector struct{ BaseInspector }

func (i *anyPipeInspector) OnInspectorGUI(gui GUI) {}

type meterInspector struct{ BaseInspector }

func (i *meterInspector) OnInspectorGUI(gui GUI) {}

type intMeterInspector struct{ BaseInspector }

func (i *intMeterInspector) OnInspectorGUI(gui GUI) {}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func newTestRegistry() *Registry {
	return NewRegistry(zap.NewNop().Sugar())
}

func TestResolveExactType(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{})

	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found)
}

func TestResolvePointerTypeNormalized(t *testing.T) {
	r := newTestRegistry()
	r.Register(reflect.TypeOf(&dial{}), reflect.TypeOf(&dialInspector{}), Options{})

	found, ok := r.FindInspectorType(reflect.TypeOf(&dial{}), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found)
}

func TestResolveUnknownType(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{})

	_, ok := r.FindInspectorType(typeOf[widget](), false)
	assert.False(t, ok, "a child registration must not serve its base type")
}

func TestResolveChildClasses(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{ForChildClasses: true})

	for _, target := range []reflect.Type{typeOf[widget](), typeOf[dial](), typeOf[gauge]()} {
		found, ok := r.FindInspectorType(target, false)
		require.True(t, ok, "lookup for %v", target)
		assert.Equal(t, typeOf[widgetInspector](), found)
	}
}

func TestResolveWithoutChildClasses(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{})

	_, ok := r.FindInspectorType(typeOf[dial](), false)
	assert.False(t, ok, "without ForChildClasses the inspector only serves its exact type")

	found, ok := r.FindInspectorType(typeOf[widget](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[widgetInspector](), found)
}

func TestResolveNearestAncestorWins(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{ForChildClasses: true})
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{ForChildClasses: true})

	found, ok := r.FindInspectorType(typeOf[gauge](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found, "dial is closer to gauge than widget")
}

func TestResolveFallbackLosesToAncestor(t *testing.T) {
	r := newTestRegistry()
	// A fallback directly on the type vs a regular inspector further up.
	r.Register(typeOf[dial](), typeOf[fallbackInspector](), Options{Fallback: true})
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{ForChildClasses: true})

	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[widgetInspector](), found,
		"the whole chain of regular inspectors is searched before any fallback")
}

func TestResolveFallbackWhenNothingElse(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[widget](), typeOf[fallbackInspector](), Options{Fallback: true, ForChildClasses: true})

	found, ok := r.FindInspectorType(typeOf[gauge](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[fallbackInspector](), found)
}

func TestResolvePipelinePreference(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[anyPipeInspector](), Options{})
	r.Register(typeOf[dial](), typeOf[pipeAInspector](), Options{Pipeline: typeOf[pipeA]()})

	// No active pipeline: the unconstrained inspector wins.
	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[anyPipeInspector](), found)

	// Matching pipeline active: the pinned inspector wins even though it
	// registered second.
	r.SetActivePipeline(func() reflect.Type { return typeOf[pipeA]() })
	found, ok = r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[pipeAInspector](), found)

	// Different pipeline active: back to the unconstrained one.
	r.SetActivePipeline(func() reflect.Type { return typeOf[pipeB]() })
	found, ok = r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[anyPipeInspector](), found)
}

func TestResolvePipelineMismatchContinuesUpward(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[pipeAInspector](), Options{Pipeline: typeOf[pipeA]()})
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{ForChildClasses: true})
	r.SetActivePipeline(func() reflect.Type { return typeOf[pipeB]() })

	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[widgetInspector](), found,
		"a level whose only inspectors are pinned to other pipelines is skipped")

	r.SetActivePipeline(func() reflect.Type { return typeOf[pipeA]() })
	found, ok = r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[pipeAInspector](), found)
}

func TestResolveFirstRegisteredWins(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{})
	r.Register(typeOf[dial](), typeOf[anyPipeInspector](), Options{})

	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found)
}

func TestResolveGenericFamily(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[meter[float32]](), typeOf[meterInspector](), Options{GenericFamily: true})

	// Any instantiation resolves through the family key.
	found, ok := r.FindInspectorType(typeOf[meter[int]](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[meterInspector](), found)

	found, ok = r.FindInspectorType(typeOf[meter[string]](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[meterInspector](), found)
}

func TestResolveExactBeatsFamily(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[meter[float32]](), typeOf[meterInspector](), Options{GenericFamily: true})
	r.Register(typeOf[meter[int]](), typeOf[intMeterInspector](), Options{})

	found, ok := r.FindInspectorType(typeOf[meter[int]](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[intMeterInspector](), found, "an exact registration shadows the family")

	found, ok = r.FindInspectorType(typeOf[meter[float32]](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[meterInspector](), found)
}

func TestResolveMultiEditPartition(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{})

	_, ok := r.FindInspectorType(typeOf[dial](), true)
	assert.False(t, ok, "single-edit inspectors are invisible to multi-edit lookups")

	r.Register(typeOf[dial](), typeOf[multiDialInspector](), Options{})

	found, ok := r.FindInspectorType(typeOf[dial](), true)
	require.True(t, ok)
	assert.Equal(t, typeOf[multiDialInspector](), found)

	// Single-edit still prefers the first registered inspector.
	found, ok = r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found)
}

func TestNewInspectorForSingle(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{})

	target := &dial{Value: 4}
	inspector, ok := r.NewInspectorFor([]engine.Component{target})
	require.True(t, ok)

	di, isDial := inspector.(*dialInspector)
	require.True(t, isDial)
	assert.Equal(t, engine.Component(target), di.Target())
	assert.Len(t, di.Targets(), 1)
}

func TestNewInspectorForMulti(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[multiDialInspector](), Options{})

	targets := []engine.Component{&dial{}, &dial{}, &dial{}}
	inspector, ok := r.NewInspectorFor(targets)
	require.True(t, ok)

	_, isMulti := inspector.(*multiDialInspector)
	assert.True(t, isMulti)
	assert.Len(t, inspector.(*multiDialInspector).Targets(), 3)
}

func TestNewInspectorForMixedTypes(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[multiDialInspector](), Options{})
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{})

	_, ok := r.NewInspectorFor([]engine.Component{&dial{}, &widget{}})
	assert.False(t, ok, "multi-edit requires one shared concrete type")
}

func TestNewInspectorForEmpty(t *testing.T) {
	r := newTestRegistry()

	_, ok := r.NewInspectorFor(nil)
	assert.False(t, ok)

	_, ok = r.NewInspectorFor([]engine.Component{})
	assert.False(t, ok)
}
