package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/components"
	"tinker3d/internal/engine"
)

// ForwardPipeline is the lit path: shapes are tinted by the first
// directional light in the scene plus its ambient term.
type ForwardPipeline struct {
	Settings Settings
}

func NewForwardPipeline() *ForwardPipeline {
	return &ForwardPipeline{Settings: defaultSettings()}
}

func (p *ForwardPipeline) Name() string {
	return "forward"
}

func (p *ForwardPipeline) Background() rl.Color {
	return p.Settings.Sky
}

func (p *ForwardPipeline) Draw(scene *engine.Scene, camera rl.Camera3D) {
	if scene == nil {
		return
	}

	light := findDirectionalLight(scene)
	pointLights := findPointLights(scene)
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
		tint := shape.Color
		if light != nil {
			tint = light.Shade(tint)
		} else {
			// No light in the scene: only the pipeline ambient term.
			tint = ambientTint(tint, p.Settings.Ambient)
		}
		tint = addPointLights(tint, shape.Color, obj.WorldPosition(), pointLights)
		shape.Draw(tint)
	}

	if p.Settings.Grid {
		rl.DrawGrid(p.Settings.GridSize, 1)
	}
}

// addPointLights adds each in-range point light's contribution on top of the
// already-shaded color. Linear falloff from the light position out to its
// radius; surface is the unshaded material color the light reflects off.
func addPointLights(shaded, surface rl.Color, pos rl.Vector3, lights []*components.PointLight) rl.Color {
	if len(lights) == 0 {
		return shaded
	}

	r := float32(shaded.R)
	g := float32(shaded.G)
	b := float32(shaded.B)
	for _, l := range lights {
		if l.Radius <= 0 {
			continue
		}
		dist := rl.Vector3Distance(pos, l.GetPosition())
		if dist >= l.Radius {
			continue
		}
		falloff := (1 - dist/l.Radius) * l.Intensity
		r += float32(surface.R) * float32(l.Color.R) / 255 * falloff
		g += float32(surface.G) * float32(l.Color.G) / 255 * falloff
		b += float32(surface.B) * float32(l.Color.B) / 255 * falloff
	}
	return rl.NewColor(clampChannel(r), clampChannel(g), clampChannel(b), shaded.A)
}

func clampChannel(v float32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func ambientTint(surface, ambient rl.Color) rl.Color {
	return rl.NewColor(
		uint8(uint16(surface.R)*uint16(ambient.R)/255),
		uint8(uint16(surface.G)*uint16(ambient.G)/255),
		uint8(uint16(surface.B)*uint16(ambient.B)/255),
		surface.A,
	)
}

func findDirectionalLight(scene *engine.Scene) *components.DirectionalLight {
	for _, obj := range scene.GameObjects {
		if !obj.Active {
			continue
		}
		if light := engine.GetComponent[*components.DirectionalLight](obj); light != nil {
			return light
		}
	}
	return nil
}

func findPointLights(scene *engine.Scene) []*components.PointLight {
	var lights []*components.PointLight
	for _, obj := range scene.GameObjects {
		if !obj.Active {
			continue
		}
		if light := engine.GetComponent[*components.PointLight](obj); light != nil {
			lights = append(lights, light)
		}
	}
	return lights
}
