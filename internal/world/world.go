// Package world owns the loaded scene and its on-disk identity: the
// file it came from and whether it has unsaved changes.
package world

import (
	"encoding/json"
	"errors"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"tinker3d/internal/engine"
)

type World struct {
	Scene *engine.Scene
	Path  string

	log       *zap.SugaredLogger
	savedHash uint64
}

func New(log *zap.SugaredLogger) *World {
	w := &World{
		Scene: engine.NewScene("Untitled"),
		log:   log,
	}
	w.savedHash = w.hash()
	return w
}

func (w *World) logger() *zap.SugaredLogger {
	if w.log != nil {
		return w.log
	}
	return zap.S()
}

// Reload re-reads the scene from its current path, discarding unsaved
// changes.
func (w *World) Reload() error {
	if w.Path == "" {
		return errors.New("no scene path to reload from")
	}
	return w.Load(w.Path)
}

// Dirty reports whether the scene differs from its last saved state.
func (w *World) Dirty() bool {
	return w.hash() != w.savedHash
}

// MarkSaved records the current state as clean without writing anything.
func (w *World) MarkSaved() {
	w.savedHash = w.hash()
}

// hash fingerprints the serialized form of the scene. Struct field order
// and sorted map keys make the encoding deterministic, so equal scenes
// hash equal.
func (w *World) hash() uint64 {
	data, err := json.Marshal(buildSceneFile(w.Scene))
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// Duplicate deep-copies an object into the scene next to the original.
// Components are cloned through their serialized form, so the copy gets
// fresh instances with the same values. The clone gets its own GUID.
func (w *World) Duplicate(src *engine.GameObject) *engine.GameObject {
	if src == nil {
		return nil
	}

	clone := engine.NewGameObject(src.Name + " Copy")
	clone.Transform = src.Transform
	clone.Tags = append([]string(nil), src.Tags...)
	clone.Active = src.Active

	for _, c := range src.Components() {
		name, props, ok := engine.SerializeComponent(c)
		if !ok {
			continue
		}
		fresh := engine.NewSerializable(name)
		if fresh == nil {
			w.logger().Warnw("cannot duplicate unregistered component", "component", name, "object", src.Name)
			continue
		}
		fresh.Deserialize(props)
		comp, ok := fresh.(engine.Component)
		if !ok {
			continue
		}
		clone.AddComponent(comp)
	}

	w.Scene.AddGameObject(clone)
	if src.Parent != nil {
		src.Parent.AddChild(clone)
	}
	return clone
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
