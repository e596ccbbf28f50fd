package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the six planes of a view volume, used by pipelines to skip
// objects that cannot be on screen.
type Frustum struct {
	planes [6]plane
}

// plane in the form ax + by + cz + d = 0.
type plane struct {
	normal   rl.Vector3
	distance float32
}

const (
	nearPlane float32 = 0.1
	farPlane  float32 = 1000
)

// ExtractFrustum builds the frustum for a camera. Aspect is passed in so
// the math stays independent of the window system.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, nearPlane, farPlane)
	}

	return frustumFromVP(rl.MatrixMultiply(view, proj))
}

// frustumFromVP extracts clip planes with the Gribb/Hartmann method:
// each plane is the fourth row of the view-projection matrix plus or
// minus one of the first three.
func frustumFromVP(m rl.Matrix) Frustum {
	rows := [4][4]float32{
		{m.M0, m.M4, m.M8, m.M12},
		{m.M1, m.M5, m.M9, m.M13},
		{m.M2, m.M6, m.M10, m.M14},
		{m.M3, m.M7, m.M11, m.M15},
	}

	combine := func(i int, sign float32) plane {
		p := plane{
			normal: rl.Vector3{
				X: rows[3][0] + sign*rows[i][0],
				Y: rows[3][1] + sign*rows[i][1],
				Z: rows[3][2] + sign*rows[i][2],
			},
			distance: rows[3][3] + sign*rows[i][3],
		}
		return p.normalized()
	}

	return Frustum{planes: [6]plane{
		combine(0, 1),  // left
		combine(0, -1), // right
		combine(1, 1),  // bottom
		combine(1, -1), // top
		combine(2, 1),  // near
		combine(2, -1), // far
	}}
}

func (p plane) normalized() plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return plane{
		normal:   rl.Vector3Scale(p.normal, 1/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether a sphere touches the view volume.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether a point is inside the view volume.
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
