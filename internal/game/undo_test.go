//go:build !game

package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tinker3d/internal/engine"
	"tinker3d/internal/world"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	return NewEditor(world.New(zaptest.NewLogger(t).Sugar()))
}

func TestUndoTransformRestoresAllMoved(t *testing.T) {
	e := newTestEditor(t)

	a := engine.NewGameObject("A")
	a.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	b := engine.NewGameObject("B")
	b.Transform.Rotation = rl.Vector3{Y: 45}
	e.world.Scene.AddGameObject(a)
	e.world.Scene.AddGameObject(b)

	e.pushTransformUndo([]*engine.GameObject{a, b})

	// Simulate a gizmo drag moving both
	a.Transform.Position = rl.Vector3{X: 9, Y: 9, Z: 9}
	b.Transform.Rotation = rl.Vector3{Y: 180}
	b.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	e.undo()

	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, a.Transform.Position)
	assert.Equal(t, rl.Vector3{Y: 45}, b.Transform.Rotation)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, b.Transform.Scale)

	// One drag, one undo: both objects end up selected again
	assert.Equal(t, []*engine.GameObject{a, b}, e.selection)
	assert.Empty(t, e.undoStack)
}

func TestUndoDeleteRestoresObjectUnderParent(t *testing.T) {
	e := newTestEditor(t)

	parent := engine.NewGameObject("Parent")
	child := engine.NewGameObject("Child")
	e.world.Scene.AddGameObject(parent)
	e.world.Scene.AddGameObject(child)
	parent.AddChild(child)

	e.pushDeleteUndo(child)
	e.world.Scene.RemoveGameObject(child)
	require.Nil(t, e.world.Scene.FindByUID(child.UID))

	msg := e.undo()

	assert.Equal(t, "Restored Child", msg)
	assert.Same(t, child, e.world.Scene.FindByUID(child.UID))
	assert.Same(t, parent, child.Parent)
	assert.Contains(t, parent.Children, child)
	assert.Equal(t, []*engine.GameObject{child}, e.selection)
}

func TestUndoEmptyStack(t *testing.T) {
	e := newTestEditor(t)
	assert.Equal(t, "", e.undo())
}

func TestUndoStackCapped(t *testing.T) {
	e := newTestEditor(t)
	obj := engine.NewGameObject("Crate")
	e.world.Scene.AddGameObject(obj)

	for i := 0; i < maxUndoStack+10; i++ {
		e.pushTransformUndo([]*engine.GameObject{obj})
	}

	assert.Len(t, e.undoStack, maxUndoStack)
}

func TestUndoSkipsVanishedObjects(t *testing.T) {
	e := newTestEditor(t)

	obj := engine.NewGameObject("Survivor")
	obj.Transform.Position = rl.Vector3{X: 5}
	e.world.Scene.AddGameObject(obj)

	e.addUndoState(UndoState{
		Type: UndoTransform,
		Moved: []TransformSnapshot{
			{Object: nil, Position: rl.Vector3{X: 1}},
			{Object: obj, Position: rl.Vector3{X: 5}},
		},
	})
	obj.Transform.Position = rl.Vector3{X: 7}

	e.undo()

	assert.Equal(t, float32(5), obj.Transform.Position.X)
	assert.Equal(t, []*engine.GameObject{obj}, e.selection)
}
