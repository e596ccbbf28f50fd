package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinker3d/internal/components"
	"tinker3d/internal/engine"
)

func TestDuplicate(t *testing.T) {
	w := newTestWorld()

	root := engine.NewGameObject("Root")
	w.Scene.AddGameObject(root)

	src := engine.NewGameObject("Crate")
	src.Tags = []string{"prop"}
	src.Transform.Position = rl.Vector3{X: 3, Y: 1, Z: 0}
	sr := components.NewShapeRenderer(components.ShapeCube, rl.Orange)
	src.AddComponent(sr)
	rb := components.NewRigidbody()
	rb.Mass = 4
	src.AddComponent(rb)
	w.Scene.AddGameObject(src)
	root.AddChild(src)

	clone := w.Duplicate(src)
	require.NotNil(t, clone)

	assert.Equal(t, "Crate Copy", clone.Name)
	assert.NotEqual(t, src.GUID, clone.GUID)
	assert.Equal(t, src.Transform.Position, clone.Transform.Position)
	assert.Equal(t, []string{"prop"}, clone.Tags)
	assert.Same(t, root, clone.Parent)
	assert.Contains(t, root.Children, clone)
	assert.Same(t, clone, w.Scene.FindByUID(clone.UID))

	// Components come back as fresh instances carrying the same values
	cloneSr := engine.GetComponent[*components.ShapeRenderer](clone)
	require.NotNil(t, cloneSr)
	assert.NotSame(t, sr, cloneSr)
	assert.Equal(t, components.ShapeCube, cloneSr.Shape)
	assert.Equal(t, rl.Orange, cloneSr.Color)

	cloneRb := engine.GetComponent[*components.Rigidbody](clone)
	require.NotNil(t, cloneRb)
	assert.InDelta(t, 4, cloneRb.Mass, 1e-6)

	// Mutating the clone leaves the source alone
	cloneSr.Color = rl.Blue
	assert.Equal(t, rl.Orange, sr.Color)
}

func TestDuplicateNil(t *testing.T) {
	w := newTestWorld()
	assert.Nil(t, w.Duplicate(nil))
}

func TestDuplicateMarksDirty(t *testing.T) {
	w := newTestWorld()
	obj := engine.NewGameObject("Lamp")
	obj.AddComponent(components.NewPointLight())
	w.Scene.AddGameObject(obj)
	w.MarkSaved()

	w.Duplicate(obj)
	assert.True(t, w.Dirty())
}
