// Package render draws scenes through swappable pipelines. Which pipeline
// is active is global state, like a project-wide graphics setting; the
// editor also keys pipeline-specific inspectors off it.
package render

import (
	"reflect"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

// Pipeline renders a scene. Draw runs inside BeginMode3D/EndMode3D with
// the same camera it receives; the caller clears with Background first.
type Pipeline interface {
	Name() string
	Background() rl.Color
	Draw(scene *engine.Scene, camera rl.Camera3D)
}

// Settings is the shared, asset-configurable part of a pipeline.
type Settings struct {
	Sky      rl.Color
	Ambient  rl.Color
	Grid     bool
	GridSize int32
}

func defaultSettings() Settings {
	return Settings{
		Sky:      rl.NewColor(18, 18, 24, 255),
		Ambient:  rl.NewColor(25, 25, 25, 255),
		Grid:     true,
		GridSize: 20,
	}
}

var active Pipeline

// SetActive swaps the active pipeline. Nil is allowed and means
// "nothing draws".
func SetActive(p Pipeline) {
	active = p
}

// Active returns the active pipeline, nil when none is set.
func Active() Pipeline {
	return active
}

// ActiveType returns the reflect type of the active pipeline, nil when
// none is set. Inspector registrations pin against this.
func ActiveType() reflect.Type {
	if active == nil {
		return nil
	}
	return reflect.TypeOf(active)
}

func screenAspect() float32 {
	h := rl.GetScreenHeight()
	if h == 0 {
		return 1
	}
	return float32(rl.GetScreenWidth()) / float32(h)
}

// boundingRadius is a conservative sphere around an object's shape:
// half the diagonal of its scaled unit cube.
func boundingRadius(g *engine.GameObject) float32 {
	return 0.5 * rl.Vector3Length(g.WorldScale())
}
