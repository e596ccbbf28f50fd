//go:build !game

package game

import (
	"fmt"
	"reflect"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/components"
	"tinker3d/internal/engine"
	"tinker3d/internal/inspect"
	"tinker3d/internal/render"
)

// Built-in inspector registrations. Registration order is priority order
// when several candidates match at the same embedding level.
func init() {
	inspect.RegisterFor[components.Camera, CameraInspector](inspect.Options{})
	inspect.RegisterFor[components.ShapeRenderer, ShapeRendererInspector](inspect.Options{})
	inspect.RegisterFor[components.Collider, ColliderInspector](inspect.Options{ForChildClasses: true})
	inspect.RegisterFor[components.Rigidbody, RigidbodyInspector](inspect.Options{})
	inspect.RegisterFor[components.DirectionalLight, DirectionalLightInspector](inspect.Options{})
	inspect.RegisterFor[components.PointLight, PointLightInspector](inspect.Options{})
	inspect.RegisterFor[components.PointLight, ForwardPointLightInspector](inspect.Options{
		Pipeline: reflect.TypeOf(render.ForwardPipeline{}),
	})
	inspect.RegisterFor[engine.BaseComponent, GenericInspector](inspect.Options{
		ForChildClasses: true,
		Fallback:        true,
	})
}

// CameraInspector edits Camera components, several at once.
type CameraInspector struct {
	inspect.BaseInspector
}

func (ci *CameraInspector) CanEditMultipleObjects() {}

func (ci *CameraInspector) OnInspectorGUI(ui inspect.GUI) {
	cam := ci.Target().(*components.Camera)

	// Edits fan out to every target; untouched fields keep their
	// per-object values.
	if v := ui.Slider("FOV", cam.FOV, 10, 120); v != cam.FOV {
		for _, t := range ci.Targets() {
			t.(*components.Camera).FOV = v
		}
	}
	if v := ui.FloatField("Near", cam.Near); v != cam.Near {
		for _, t := range ci.Targets() {
			t.(*components.Camera).Near = v
		}
	}
	if v := ui.FloatField("Far", cam.Far); v != cam.Far {
		for _, t := range ci.Targets() {
			t.(*components.Camera).Far = v
		}
	}
	if v := ui.Checkbox("Main Camera", cam.IsMain); v != cam.IsMain {
		for _, t := range ci.Targets() {
			t.(*components.Camera).IsMain = v
		}
	}
}

// ShapeRendererInspector edits the primitive shape and its color.
type ShapeRendererInspector struct {
	inspect.BaseInspector
}

func (si *ShapeRendererInspector) CanEditMultipleObjects() {}

func (si *ShapeRendererInspector) OnInspectorGUI(ui inspect.GUI) {
	shape := si.Target().(*components.ShapeRenderer)

	name := shape.Shape.String()
	if v := ui.TextField("Shape", name); v != name {
		parsed := components.ParseShape(v)
		for _, t := range si.Targets() {
			t.(*components.ShapeRenderer).Shape = parsed
		}
	}
	if v := ui.ColorField("Color", shape.Color); v != shape.Color {
		for _, t := range si.Targets() {
			t.(*components.ShapeRenderer).Color = v
		}
	}
}

// ColliderInspector serves every collider through the shared Collider base,
// then adds the concrete shape's own fields.
type ColliderInspector struct {
	inspect.BaseInspector
}

func (ci *ColliderInspector) OnInspectorGUI(ui inspect.GUI) {
	base := colliderOf(ci.Target())
	if base == nil {
		ui.Label("Not a collider.")
		return
	}

	base.IsTrigger = ui.Checkbox("Is Trigger", base.IsTrigger)
	base.Offset = ui.Vector3Field("Offset", base.Offset)

	switch c := ci.Target().(type) {
	case *components.BoxCollider:
		c.Size = ui.Vector3Field("Size", c.Size)
	case *components.SphereCollider:
		c.Radius = ui.FloatField("Radius", c.Radius)
	}
}

func colliderOf(c engine.Component) *components.Collider {
	if withBase, ok := c.(interface{ ColliderBase() *components.Collider }); ok {
		return withBase.ColliderBase()
	}
	return nil
}

// RigidbodyInspector edits mass and the integration flags.
type RigidbodyInspector struct {
	inspect.BaseInspector
}

func (ri *RigidbodyInspector) CanEditMultipleObjects() {}

func (ri *RigidbodyInspector) OnInspectorGUI(ui inspect.GUI) {
	body := ri.Target().(*components.Rigidbody)

	if v := ui.FloatField("Mass", body.Mass); v != body.Mass {
		for _, t := range ri.Targets() {
			t.(*components.Rigidbody).Mass = v
		}
	}
	if v := ui.Checkbox("Use Gravity", body.UseGravity); v != body.UseGravity {
		for _, t := range ri.Targets() {
			t.(*components.Rigidbody).UseGravity = v
		}
	}
	if v := ui.Checkbox("Is Kinematic", body.IsKinematic); v != body.IsKinematic {
		for _, t := range ri.Targets() {
			t.(*components.Rigidbody).IsKinematic = v
		}
	}
	if len(ri.Targets()) == 1 {
		vel := body.Velocity
		ui.Label(fmt.Sprintf("Velocity %.1f, %.1f, %.1f", vel.X, vel.Y, vel.Z))
	}
}

// DirectionalLightInspector keeps the direction normalized on edit.
type DirectionalLightInspector struct {
	inspect.BaseInspector
}

func (di *DirectionalLightInspector) CanEditMultipleObjects() {}

func (di *DirectionalLightInspector) OnInspectorGUI(ui inspect.GUI) {
	light := di.Target().(*components.DirectionalLight)

	if v := ui.Vector3Field("Direction", light.Direction); v != light.Direction {
		v = rl.Vector3Normalize(v)
		for _, t := range di.Targets() {
			t.(*components.DirectionalLight).Direction = v
		}
	}
	if v := ui.ColorField("Color", light.Color); v != light.Color {
		for _, t := range di.Targets() {
			t.(*components.DirectionalLight).Color = v
		}
	}
	if v := ui.Slider("Intensity", light.Intensity, 0, 4); v != light.Intensity {
		for _, t := range di.Targets() {
			t.(*components.DirectionalLight).Intensity = v
		}
	}
	if v := ui.ColorField("Ambient", light.AmbientColor); v != light.AmbientColor {
		for _, t := range di.Targets() {
			t.(*components.DirectionalLight).AmbientColor = v
		}
	}
}

// PointLightInspector is the pipeline-agnostic point light editor.
type PointLightInspector struct {
	inspect.BaseInspector
}

func (pi *PointLightInspector) OnInspectorGUI(ui inspect.GUI) {
	light := pi.Target().(*components.PointLight)

	light.Color = ui.ColorField("Color", light.Color)
	light.Intensity = ui.FloatField("Intensity", light.Intensity)
	light.Radius = ui.FloatField("Radius", light.Radius)
}

// ForwardPointLightInspector replaces PointLightInspector while the forward
// pipeline is active, where radius and intensity actually shade objects.
type ForwardPointLightInspector struct {
	inspect.BaseInspector
}

func (fi *ForwardPointLightInspector) OnInspectorGUI(ui inspect.GUI) {
	light := fi.Target().(*components.PointLight)

	light.Color = ui.ColorField("Color", light.Color)
	light.Intensity = ui.Slider("Intensity", light.Intensity, 0, 4)
	light.Radius = ui.FloatField("Radius", light.Radius)
	ui.Label(fmt.Sprintf("Lights objects within %.1f units.", light.Radius))
}

// GenericInspector is the fallback for components without a custom
// inspector: it surfaces every exported field of a supported type through
// reflection. Edits fan out to all targets by field name.
type GenericInspector struct {
	inspect.BaseInspector
}

func (gi *GenericInspector) CanEditMultipleObjects() {}

var (
	vector3Type = reflect.TypeOf(rl.Vector3{})
	colorType   = reflect.TypeOf(rl.Color{})
)

func (gi *GenericInspector) OnInspectorGUI(ui inspect.GUI) {
	v := reflect.ValueOf(gi.Target())
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	t := v.Type()

	drawn := 0
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous || !field.IsExported() {
			continue
		}
		fv := v.Field(i)

		switch {
		case field.Type.Kind() == reflect.Float32:
			cur := float32(fv.Float())
			if out := ui.FloatField(field.Name, cur); out != cur {
				gi.setField(field.Name, reflect.ValueOf(out))
			}
		case field.Type.Kind() == reflect.Bool:
			cur := fv.Bool()
			if out := ui.Checkbox(field.Name, cur); out != cur {
				gi.setField(field.Name, reflect.ValueOf(out))
			}
		case field.Type.Kind() == reflect.String:
			cur := fv.String()
			if out := ui.TextField(field.Name, cur); out != cur {
				gi.setField(field.Name, reflect.ValueOf(out))
			}
		case field.Type == vector3Type:
			cur := fv.Interface().(rl.Vector3)
			if out := ui.Vector3Field(field.Name, cur); out != cur {
				gi.setField(field.Name, reflect.ValueOf(out))
			}
		case field.Type == colorType:
			cur := fv.Interface().(rl.Color)
			if out := ui.ColorField(field.Name, cur); out != cur {
				gi.setField(field.Name, reflect.ValueOf(out))
			}
		default:
			continue
		}
		drawn++
	}

	if drawn == 0 {
		ui.Label("No editable fields.")
	}
}

func (gi *GenericInspector) setField(name string, val reflect.Value) {
	for _, target := range gi.Targets() {
		tv := reflect.ValueOf(target)
		if tv.Kind() != reflect.Pointer || tv.IsNil() {
			continue
		}
		f := tv.Elem().FieldByName(name)
		if f.IsValid() && f.CanSet() && f.Type() == val.Type() {
			f.Set(val)
		}
	}
}
