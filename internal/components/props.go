package components

import rl "github.com/gen2brain/raylib-go/raylib"

// Prop readers shared by the Deserialize implementations. Scene JSON comes
// back with float64 numbers and []any lists; missing or mistyped keys
// leave the field at its default.

func propFloat(data map[string]any, key string, out *float32) {
	if v, ok := data[key].(float64); ok {
		*out = float32(v)
	}
}

func propBool(data map[string]any, key string, out *bool) {
	if v, ok := data[key].(bool); ok {
		*out = v
	}
}

func propString(data map[string]any, key string, out *string) {
	if v, ok := data[key].(string); ok {
		*out = v
	}
}

func propVec3(data map[string]any, key string, out *rl.Vector3) {
	v, ok := data[key].([]any)
	if !ok || len(v) != 3 {
		return
	}
	x, okX := v[0].(float64)
	y, okY := v[1].(float64)
	z, okZ := v[2].(float64)
	if okX && okY && okZ {
		*out = rl.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}
	}
}

func vec3List(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func propColor(data map[string]any, key string, out *rl.Color) {
	v, ok := data[key].([]any)
	if !ok || len(v) != 3 {
		return
	}
	r, okR := v[0].(float64)
	g, okG := v[1].(float64)
	b, okB := v[2].(float64)
	if okR && okG && okB {
		*out = rl.NewColor(uint8(r), uint8(g), uint8(b), 255)
	}
}

func colorList(c rl.Color) [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}
