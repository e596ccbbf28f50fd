package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/components"
	"tinker3d/internal/engine"
)

// FlatPipeline is the unlit path: shapes draw in their raw color, or as
// wireframes when Wireframe is set. Handy for debugging scene layout
// without any lighting in the way.
type FlatPipeline struct {
	Settings  Settings
	Wireframe bool
}

func NewFlatPipeline() *FlatPipeline {
	return &FlatPipeline{Settings: defaultSettings()}
}

func (p *FlatPipeline) Name() string {
	return "flat"
}

func (p *FlatPipeline) Background() rl.Color {
	return p.Settings.Sky
}

func (p *FlatPipeline) Draw(scene *engine.Scene, camera rl.Camera3D) {
	if scene == nil {
		return
	}

	frustum := ExtractFrustum(camera, screenAspect())

	for _, obj := range scene.GameObjects {
		if !obj.Active {
			continue
		}
		shape := engine.GetComponent[*components.ShapeRenderer](obj)
		if shape == nil {
			continue
		}
		if !frustum.ContainsSphere(obj.WorldPosition(), boundingRadius(obj)) {
			continue
		}
		if p.Wireframe {
			shape.DrawWires(shape.Color)
		} else {
			shape.Draw(shape.Color)
		}
	}

	if p.Settings.Grid {
		rl.DrawGrid(p.Settings.GridSize, 1)
	}
}
