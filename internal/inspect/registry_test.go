package inspect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// noEmbedInspector defines the GUI hook but doesn't embed BaseInspector,
// so it can't satisfy Inspector.
type noEmbedInspector struct{}

func (i *noEmbedInspector) OnInspectorGUI(gui GUI) {}

func newObservedRegistry() (*Registry, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return NewRegistry(zap.New(core).Sugar()), logs
}

func TestInvalidRegistrationsLoggedAndSkipped(t *testing.T) {
	r, logs := newObservedRegistry()

	r.Register(nil, typeOf[dialInspector](), Options{})
	r.Register(typeOf[dial](), nil, Options{})
	r.Register(typeOf[widget](), typeOf[noEmbedInspector](), Options{})
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{GenericFamily: true})
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{})

	// The valid registration still resolves.
	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found)

	// The broken ones were skipped, one warning each.
	_, ok = r.FindInspectorType(typeOf[widget](), false)
	assert.False(t, ok)
	assert.Equal(t, 4, logs.Len())
}

func TestValidationDeferredUntilFirstLookup(t *testing.T) {
	r, logs := newObservedRegistry()

	r.Register(typeOf[widget](), typeOf[noEmbedInspector](), Options{})
	assert.Zero(t, logs.Len(), "registration itself must not validate")

	r.FindInspectorType(typeOf[widget](), false)
	assert.Equal(t, 1, logs.Len())
}

func TestRegistrationWarningNamesSource(t *testing.T) {
	r, logs := newObservedRegistry()

	r.Register(typeOf[widget](), typeOf[noEmbedInspector](), Options{})
	r.FindInspectorType(typeOf[widget](), false)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "tinker3d/internal/inspect", fields["source"],
		"source defaults to the inspector type's package path")
}

func TestRegisterAfterBuild(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{})

	_, ok := r.FindInspectorType(typeOf[widget](), false)
	require.False(t, ok)

	// The registry is built now; late registrations must land immediately.
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{})

	found, ok := r.FindInspectorType(typeOf[widget](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[widgetInspector](), found)
}

func TestRebuildKeepsOtherSources(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{Source: "mod-a"})
	r.Register(typeOf[widget](), typeOf[widgetInspector](), Options{Source: "mod-b"})
	r.FindInspectorType(typeOf[dial](), false)

	r.Rebuild("mod-a")

	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found, "rebuilt source resolves again")

	found, ok = r.FindInspectorType(typeOf[widget](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[widgetInspector](), found, "other sources untouched")
}

func TestRebuildUnknownSource(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{Source: "mod-a"})
	r.FindInspectorType(typeOf[dial](), false)

	r.Rebuild("never-registered")

	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found)
}

func TestRebuildBeforeFirstLookup(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[dialInspector](), Options{Source: "mod-a"})

	r.Rebuild("mod-a") // Builds lazily later; must not panic or drop anything.

	found, ok := r.FindInspectorType(typeOf[dial](), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found)
}

func TestMultiIndexFollowsRebuild(t *testing.T) {
	r := newTestRegistry()
	r.Register(typeOf[dial](), typeOf[multiDialInspector](), Options{Source: "mod-a"})
	r.FindInspectorType(typeOf[dial](), true)

	r.Rebuild("mod-a")

	found, ok := r.FindInspectorType(typeOf[dial](), true)
	require.True(t, ok)
	assert.Equal(t, typeOf[multiDialInspector](), found)
}

func TestDefaultRegistryRegisterFor(t *testing.T) {
	RegisterFor[gauge, dialInspector](Options{})

	found, ok := FindInspectorType(reflect.TypeOf(gauge{}), false)
	require.True(t, ok)
	assert.Equal(t, typeOf[dialInspector](), found)
}
