//go:build !game

package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/components"
	"tinker3d/internal/engine"
)

type GizmoMode int

const (
	GizmoMove   GizmoMode = 0
	GizmoRotate GizmoMode = 1
	GizmoScale  GizmoMode = 2
)

const (
	gizmoLength    float32 = 2.0
	gizmoTipSize   float32 = 0.2
	gizmoHitDist   float32 = 0.3
	gizmoThickness float32 = 0.06
)

var gizmoAxes = [3]rl.Vector3{
	{X: 1, Y: 0, Z: 0}, // X - red
	{X: 0, Y: 1, Z: 0}, // Y - green
	{X: 0, Y: 0, Z: 1}, // Z - blue
}

var gizmoColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// pickGizmoAxis returns the index of the gizmo axis closest to the mouse ray, or -1.
func (e *Editor) pickGizmoAxis(ray rl.Ray) int {
	primary := e.primary()
	if primary == nil {
		return -1
	}

	center := primary.WorldPosition()
	bestDist := float32(999.0)
	bestAxis := -1

	if e.gizmoMode == GizmoRotate {
		// For rotation gizmo, check distance to each ring
		radius := gizmoLength * 0.8
		ringHitDist := float32(0.4) // More forgiving hit distance for rings

		for i := range gizmoAxes {
			// The ring for axis i lies in the plane whose normal is that axis
			if pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, center, gizmoAxes[i]); ok {
				distFromCenter := rl.Vector3Length(rl.Vector3Subtract(pt, center))
				distFromRing := float32(math.Abs(float64(distFromCenter - radius)))

				if distFromRing < ringHitDist && distFromRing < bestDist {
					bestDist = distFromRing
					bestAxis = i
				}
			}
		}
	} else {
		// For move/scale gizmos, use line-ray intersection
		for i, axis := range gizmoAxes {
			_, t2, dist := closestPointBetweenRays(ray.Position, ray.Direction, center, axis)
			if t2 > 0 && t2 < gizmoLength && dist < gizmoHitDist {
				if dist < bestDist {
					bestDist = dist
					bestAxis = i
				}
			}
		}
	}
	return bestAxis
}

func (e *Editor) startDrag(axisIdx int, ray rl.Ray) {
	primary := e.primary()
	if primary == nil {
		return
	}

	// Save undo state before modifying
	e.pushTransformUndo(e.selection)

	e.dragging = true
	e.dragAxisIdx = axisIdx
	e.dragAxis = gizmoAxes[axisIdx]
	e.dragAnchorPos = primary.WorldPosition()

	// Snapshot every selected object so the drag applies the same delta to
	// each from its own starting transform
	e.dragInit = e.dragInit[:0]
	for _, obj := range e.selection {
		e.dragInit = append(e.dragInit, TransformSnapshot{
			Object:   obj,
			Position: obj.Transform.Position,
			Rotation: obj.Transform.Rotation,
			Scale:    obj.Transform.Scale,
		})
	}

	// Build a drag plane through the anchor, containing the drag axis and
	// facing the camera as much as possible
	viewDir := rl.Vector3Normalize(rl.Vector3Subtract(e.dragAnchorPos, e.camera.Position))
	cross1 := rl.Vector3CrossProduct(viewDir, e.dragAxis)
	e.dragPlaneNormal = rl.Vector3Normalize(rl.Vector3CrossProduct(e.dragAxis, cross1))

	if pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, e.dragAnchorPos, e.dragPlaneNormal); ok {
		e.dragStart = rl.Vector3DotProduct(rl.Vector3Subtract(pt, e.dragAnchorPos), e.dragAxis)
	}
}

func (e *Editor) updateDrag(ray rl.Ray) {
	if len(e.dragInit) == 0 {
		e.dragging = false
		return
	}

	pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, e.dragAnchorPos, e.dragPlaneNormal)
	if !ok {
		return
	}

	currentT := rl.Vector3DotProduct(rl.Vector3Subtract(pt, e.dragAnchorPos), e.dragAxis)
	delta := currentT - e.dragStart

	for _, snap := range e.dragInit {
		obj := snap.Object
		if obj == nil || obj.Scene == nil {
			continue
		}

		switch e.gizmoMode {
		case GizmoMove:
			worldDelta := rl.Vector3Scale(e.dragAxis, delta)
			if obj.Parent != nil {
				// Rotate the world delta into the parent's local space, then
				// compensate for parent scale
				localDelta := rl.Vector3Transform(worldDelta, inverseRotationMatrix(obj.Parent.WorldRotation()))
				parentScale := obj.Parent.WorldScale()
				localDelta.X /= parentScale.X
				localDelta.Y /= parentScale.Y
				localDelta.Z /= parentScale.Z
				obj.Transform.Position = rl.Vector3Add(snap.Position, localDelta)
			} else {
				obj.Transform.Position = rl.Vector3Add(snap.Position, worldDelta)
			}

		case GizmoRotate:
			// Map drag distance to degrees (1 unit = 45 degrees)
			degrees := delta * 45.0
			rot := snap.Rotation
			switch e.dragAxisIdx {
			case 0:
				rot.X += degrees
			case 1:
				rot.Y += degrees
			case 2:
				rot.Z += degrees
			}
			obj.Transform.Rotation = rot

		case GizmoScale:
			// Map drag distance to scale factor (drag right = bigger)
			factor := float32(1.0) + delta*0.5
			if factor < 0.1 {
				factor = 0.1
			}
			s := snap.Scale
			switch e.dragAxisIdx {
			case 0:
				s.X = snap.Scale.X * factor
			case 1:
				s.Y = snap.Scale.Y * factor
			case 2:
				s.Z = snap.Scale.Z * factor
			}
			obj.Transform.Scale = s
		}
	}
}

// inverseRotationMatrix builds the inverse of the renderer's X-Y-Z euler
// rotation, applying the negated angles in Z-Y-X order.
func inverseRotationMatrix(rotation rl.Vector3) rl.Matrix {
	rx := float64(-rotation.X) * math.Pi / 180
	ry := float64(-rotation.Y) * math.Pi / 180
	rz := float64(-rotation.Z) * math.Pi / 180
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotY := rl.MatrixRotateY(float32(ry))
	rotX := rl.MatrixRotateX(float32(rx))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotZ, rotY), rotX)
}

// Draw3D draws selection wireframes and gizmo. Call inside BeginMode3D/EndMode3D.
func (e *Editor) Draw3D() {
	if !e.Active {
		return
	}

	// Draw point light gizmos for all point lights (not just selected)
	for _, g := range e.world.Scene.GameObjects {
		if pl := engine.GetComponent[*components.PointLight](g); pl != nil {
			pos := pl.GetPosition()
			rl.DrawSphere(pos, 0.15, pl.Color)
			rl.DrawSphereWires(pos, pl.Radius, 8, 8, rl.Fade(pl.Color, 0.3))
		}
	}

	primary := e.primary()
	if primary == nil {
		return
	}

	// Disable depth testing so gizmos always draw on top
	rl.DrawRenderBatchActive() // Force flush of previous draw calls
	rl.DisableDepthTest()

	// Selection wireframes, primary in yellow and the rest dimmer
	for _, obj := range e.selection {
		tint := rl.Orange
		if obj == primary {
			tint = rl.Yellow
		}
		e.drawSelectionWires(obj, tint)
	}

	// Transform gizmo on the primary selection
	center := primary.WorldPosition()

	for i, axis := range gizmoAxes {
		color := gizmoColors[i]
		if e.dragging && e.dragAxisIdx == i {
			color = rl.Yellow
		} else if !e.dragging && e.hoveredAxis == i {
			color = rl.Yellow
		}

		end := rl.Vector3Add(center, rl.Vector3Scale(axis, gizmoLength))

		switch e.gizmoMode {
		case GizmoMove:
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			tip := rl.Vector3{X: gizmoTipSize, Y: gizmoTipSize, Z: gizmoTipSize}
			rl.DrawCubeV(end, tip, color)
		case GizmoRotate:
			// Draw arc segments as thick cylinders to suggest rotation
			segments := 16
			radius := gizmoLength * 0.8
			for s := range segments {
				t0 := float64(s) / float64(segments) * math.Pi * 2
				t1 := float64(s+1) / float64(segments) * math.Pi * 2
				var p0, p1 rl.Vector3
				switch i {
				case 0: // X - rotate in YZ plane
					p0 = rl.Vector3{X: center.X, Y: center.Y + radius*float32(math.Cos(t0)), Z: center.Z + radius*float32(math.Sin(t0))}
					p1 = rl.Vector3{X: center.X, Y: center.Y + radius*float32(math.Cos(t1)), Z: center.Z + radius*float32(math.Sin(t1))}
				case 1: // Y - rotate in XZ plane
					p0 = rl.Vector3{X: center.X + radius*float32(math.Cos(t0)), Y: center.Y, Z: center.Z + radius*float32(math.Sin(t0))}
					p1 = rl.Vector3{X: center.X + radius*float32(math.Cos(t1)), Y: center.Y, Z: center.Z + radius*float32(math.Sin(t1))}
				case 2: // Z - rotate in XY plane
					p0 = rl.Vector3{X: center.X + radius*float32(math.Cos(t0)), Y: center.Y + radius*float32(math.Sin(t0)), Z: center.Z}
					p1 = rl.Vector3{X: center.X + radius*float32(math.Cos(t1)), Y: center.Y + radius*float32(math.Sin(t1)), Z: center.Z}
				}
				rl.DrawCylinderEx(p0, p1, gizmoThickness*0.7, gizmoThickness*0.7, 6, color)
			}
		case GizmoScale:
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			// Cube at the end instead of small tip
			cubeSize := rl.Vector3{X: 0.25, Y: 0.25, Z: 0.25}
			rl.DrawCubeV(end, cubeSize, color)
			rl.DrawCubeWiresV(end, cubeSize, color)
		}
	}

	// Re-enable depth testing
	rl.DrawRenderBatchActive() // Force flush of gizmo draw calls
	rl.EnableDepthTest()
}

// drawSelectionWires outlines one object using the best shape it carries:
// collider first, then light radius, then the rendered shape itself.
func (e *Editor) drawSelectionWires(obj *engine.GameObject, tint rl.Color) {
	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		scale := obj.WorldScale()
		size := rl.Vector3{X: box.Size.X * scale.X, Y: box.Size.Y * scale.Y, Z: box.Size.Z * scale.Z}
		center := rl.Vector3Add(obj.WorldPosition(), box.Offset)
		drawRotatedBoxWires(center, size, obj.WorldRotation(), tint)
		return
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		sphere.DrawGizmo(tint)
		return
	}
	if pl := engine.GetComponent[*components.PointLight](obj); pl != nil {
		rl.DrawSphereWires(pl.GetPosition(), pl.Radius, 12, 12, tint)
		return
	}
	if sr := engine.GetComponent[*components.ShapeRenderer](obj); sr != nil {
		sr.DrawWires(tint)
		return
	}
	// Nothing visual on the object - mark the position itself
	rl.DrawCubeWiresV(obj.WorldPosition(), rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, tint)
}

// --- math helpers ---

// closestPointBetweenRays finds the closest approach between two rays.
// Returns (t1, t2, distance) where t1/t2 are parameters along each ray.
func closestPointBetweenRays(a, u, b, v rl.Vector3) (t1, t2, dist float32) {
	w := rl.Vector3Subtract(a, b)
	uu := rl.Vector3DotProduct(u, u)
	uv := rl.Vector3DotProduct(u, v)
	vv := rl.Vector3DotProduct(v, v)
	uw := rl.Vector3DotProduct(u, w)
	vw := rl.Vector3DotProduct(v, w)

	denom := uu*vv - uv*uv
	if denom < 1e-6 {
		return 0, 0, 999
	}

	t1 = (uv*vw - vv*uw) / denom
	t2 = (uu*vw - uv*uw) / denom

	p1 := rl.Vector3Add(a, rl.Vector3Scale(u, t1))
	p2 := rl.Vector3Add(b, rl.Vector3Scale(v, t2))
	dist = rl.Vector3Length(rl.Vector3Subtract(p1, p2))
	return
}

// rayPlaneIntersect returns where a ray hits a plane (defined by point + normal).
func rayPlaneIntersect(rayOrigin, rayDir, planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(rayDir, planeNormal)
	if math.Abs(float64(denom)) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, rayOrigin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(rayOrigin, rl.Vector3Scale(rayDir, t)), true
}

// drawRotatedBoxWires draws a wireframe box with rotation applied
func drawRotatedBoxWires(center, size, rotation rl.Vector3, color rl.Color) {
	// Build rotation matrix
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	// Half extents
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2

	// 8 corners in local space
	corners := [8]rl.Vector3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}

	// Transform corners to world space
	for i := range corners {
		corners[i] = rl.Vector3Transform(corners[i], rotMatrix)
		corners[i] = rl.Vector3Add(corners[i], center)
	}

	// Draw 12 edges
	// Bottom face
	rl.DrawLine3D(corners[0], corners[1], color)
	rl.DrawLine3D(corners[1], corners[2], color)
	rl.DrawLine3D(corners[2], corners[3], color)
	rl.DrawLine3D(corners[3], corners[0], color)
	// Top face
	rl.DrawLine3D(corners[4], corners[5], color)
	rl.DrawLine3D(corners[5], corners[6], color)
	rl.DrawLine3D(corners[6], corners[7], color)
	rl.DrawLine3D(corners[7], corners[4], color)
	// Vertical edges
	rl.DrawLine3D(corners[0], corners[4], color)
	rl.DrawLine3D(corners[1], corners[5], color)
	rl.DrawLine3D(corners[2], corners[6], color)
	rl.DrawLine3D(corners[3], corners[7], color)
}

func absF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
