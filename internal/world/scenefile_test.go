package world

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tinker3d/internal/components"
	"tinker3d/internal/engine"
)

func newTestWorld() *World {
	return New(zap.NewNop().Sugar())
}

func newObservedWorld() (*World, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return New(zap.New(core).Sugar()), logs
}

func scenePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "scene.json")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	w := newTestWorld()

	rig := engine.NewGameObject("Rig")
	rig.Tags = []string{"player"}
	rig.Transform.Position = rl.Vector3{X: 1.5, Y: 2, Z: -3.25}
	rig.Transform.Rotation = rl.Vector3{Y: 90}
	cam := components.NewCamera()
	cam.FOV = 72
	cam.IsMain = true
	rig.AddComponent(cam)
	w.Scene.AddGameObject(rig)

	eye := engine.NewGameObject("Eye")
	eye.Transform.Position = rl.Vector3{Y: 0.5}
	eye.AddComponent(components.NewShapeRenderer(components.ShapeSphere, rl.Red))
	box := components.NewBoxCollider(rl.Vector3{X: 2, Y: 1, Z: 2})
	box.IsTrigger = true
	eye.AddComponent(box)
	w.Scene.AddGameObject(eye)
	rig.AddChild(eye)

	hidden := engine.NewGameObject("Hidden")
	hidden.Active = false
	w.Scene.AddGameObject(hidden)

	path := scenePath(t)
	require.NoError(t, w.Save(path))

	w2 := newTestWorld()
	require.NoError(t, w2.Load(path))

	require.Len(t, w2.Scene.GameObjects, 3)

	rig2 := w2.Scene.FindByName("Rig")
	require.NotNil(t, rig2)
	assert.Equal(t, rig.GUID, rig2.GUID)
	assert.Equal(t, []string{"player"}, rig2.Tags)
	assert.Equal(t, float32(1.5), rig2.Transform.Position.X)
	assert.Equal(t, float32(90), rig2.Transform.Rotation.Y)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, rig2.Transform.Scale)

	cam2 := engine.GetComponent[*components.Camera](rig2)
	require.NotNil(t, cam2)
	assert.Equal(t, float32(72), cam2.FOV)
	assert.True(t, cam2.IsMain)

	eye2 := w2.Scene.FindByName("Eye")
	require.NotNil(t, eye2)
	require.NotNil(t, eye2.Parent)
	assert.Equal(t, rig.GUID, eye2.Parent.GUID)
	assert.Contains(t, rig2.Children, eye2)

	shape2 := engine.GetComponent[*components.ShapeRenderer](eye2)
	require.NotNil(t, shape2)
	assert.Equal(t, components.ShapeSphere, shape2.Shape)
	assert.Equal(t, rl.Red, shape2.Color)

	box2 := engine.GetComponent[*components.BoxCollider](eye2)
	require.NotNil(t, box2)
	assert.Equal(t, float32(2), box2.Size.X)
	assert.True(t, box2.IsTrigger)

	hidden2 := w2.Scene.FindByName("Hidden")
	require.NotNil(t, hidden2)
	assert.False(t, hidden2.Active)
}

func TestLoadUnknownComponentSkipped(t *testing.T) {
	src := `{
  "name": "Main",
  "objects": [
    {
      "guid": "g-1",
      "name": "Thing",
      "components": [
        {"type": "Teleporter", "range": 5},
        {"type": "Camera", "fov": 60}
      ]
    }
  ]
}`
	path := scenePath(t)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	w, logs := newObservedWorld()
	require.NoError(t, w.Load(path))

	thing := w.Scene.FindByName("Thing")
	require.NotNil(t, thing)
	require.Len(t, thing.Components(), 1, "unknown component should be skipped")
	assert.NotNil(t, engine.GetComponent[*components.Camera](thing))

	warns := logs.FilterMessage("unknown component type, skipping")
	require.Equal(t, 1, warns.Len())
	assert.Equal(t, "Teleporter", warns.All()[0].ContextMap()["component"])
}

func TestLoadDefaultsScaleToOne(t *testing.T) {
	src := `{"objects": [{"guid": "g-1", "name": "Bare"}]}`
	path := scenePath(t)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	w := newTestWorld()
	require.NoError(t, w.Load(path))

	bare := w.Scene.FindByName("Bare")
	require.NotNil(t, bare)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, bare.Transform.Scale)
	assert.True(t, bare.Active)
	assert.Equal(t, "Untitled", w.Scene.Name)
}

func TestLoadMissingParentWarns(t *testing.T) {
	src := `{
  "objects": [
    {"guid": "g-1", "name": "Orphan", "parent": "g-missing"}
  ]
}`
	path := scenePath(t)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	w, logs := newObservedWorld()
	require.NoError(t, w.Load(path))

	orphan := w.Scene.FindByName("Orphan")
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.Parent)
	assert.Equal(t, 1, logs.FilterMessage("parent guid not found").Len())
}

func TestLoadErrors(t *testing.T) {
	w := newTestWorld()

	err := w.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scene")

	path := scenePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	err = w.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scene")
}

func TestDirtyTracking(t *testing.T) {
	w := newTestWorld()
	assert.False(t, w.Dirty(), "fresh world starts clean")

	g := engine.NewGameObject("Crate")
	g.AddComponent(components.NewShapeRenderer(components.ShapeCube, rl.Orange))
	w.Scene.AddGameObject(g)
	assert.True(t, w.Dirty())

	path := scenePath(t)
	require.NoError(t, w.Save(path))
	assert.False(t, w.Dirty(), "saving marks the world clean")

	g.Transform.Position.X = 4
	assert.True(t, w.Dirty())

	w.MarkSaved()
	assert.False(t, w.Dirty())
}

func TestReloadDiscardsChanges(t *testing.T) {
	w := newTestWorld()
	g := engine.NewGameObject("Crate")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	w.Scene.AddGameObject(g)

	path := scenePath(t)
	require.NoError(t, w.Save(path))

	g.Transform.Position.X = 99
	w.Scene.AddGameObject(engine.NewGameObject("Extra"))
	require.True(t, w.Dirty())

	require.NoError(t, w.Reload())
	assert.False(t, w.Dirty())
	require.Len(t, w.Scene.GameObjects, 1)
	assert.Equal(t, float32(1), w.Scene.GameObjects[0].Transform.Position.X)
}

func TestReloadWithoutPath(t *testing.T) {
	w := newTestWorld()
	require.Error(t, w.Reload())
}
