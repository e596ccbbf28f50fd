//go:build !game

package game

import (
	"fmt"

	"github.com/gen2brain/raylib-go/easings"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"tinker3d/internal/anim"
	"tinker3d/internal/camera"
	"tinker3d/internal/components"
	"tinker3d/internal/engine"
	"tinker3d/internal/render"
	"tinker3d/internal/world"
)

const editorEnabled = true

const zoomDuration = 0.3

type Editor struct {
	Active bool

	world  *world.World
	camera *camera.FlyCamera

	// Clock for UI animations (foldouts), pumped once per frame
	ticks    *anim.Ticks
	foldouts map[string]*anim.Bool
	foldH    map[string]int32

	// Selection; the last element is the primary object the gizmo anchors to
	selection []*engine.GameObject

	// Gizmo state
	gizmoMode       GizmoMode
	dragging        bool
	dragAxisIdx     int
	dragAxis        rl.Vector3
	dragPlaneNormal rl.Vector3
	dragStart       float32
	dragAnchorPos   rl.Vector3
	dragInit        []TransformSnapshot
	hoveredAxis     int // -1 = none, 0=X, 1=Y, 2=Z

	// Hierarchy panel
	hierarchyScroll int32

	// Inspector panel
	inspectorScroll      int32
	showAddComponentMenu bool
	addComponentScroll   int32

	// Float field editing state
	activeInputID     string  // e.g., "pos.x", "rot.y"
	inputTextValue    string  // current text being edited
	fieldDragging     bool    // true if drag-scrubbing a field
	fieldDragID       string  // which field is being dragged
	fieldDragStartX   float32 // mouse X when drag started
	fieldDragStartVal float32 // value when drag started
	fieldHoveredAny   bool    // true if any float field is hovered this frame

	// Save feedback
	saveMsg     string
	saveMsgTime float64

	// Undo stack
	undoStack []UndoState

	// Hierarchy interaction
	lastHierarchyClick  float64
	lastClickedObject   *engine.GameObject
	draggingHierarchy   bool
	draggedObject       *engine.GameObject
	hierarchyDropTarget *engine.GameObject
	hierarchyDropIndex  int

	// Name editing state
	editingName    bool
	nameEditBuffer string

	// Tags editing state
	editingTags    bool
	tagsEditBuffer string

	// Panel sizing
	hierarchyWidth int32 // Width of hierarchy panel (default 210)
	inspectorWidth int32 // Width of inspector panel (default 310)
	resizingPanel  int   // 0=none, 1=hierarchy, 2=inspector
	resizeStartX   float32
	resizeStartW   int32

	// Camera zoom animation
	zooming       bool
	zoomStartPos  rl.Vector3
	zoomTargetPos rl.Vector3
	zoomElapsed   float32
}

func NewEditor(w *world.World) *Editor {
	return &Editor{
		world:          w,
		camera:         camera.New(rl.Vector3{X: 12, Y: 10, Z: 12}),
		ticks:          anim.NewTicks(),
		foldouts:       make(map[string]*anim.Bool),
		foldH:          make(map[string]int32),
		hoveredAxis:    -1,
		undoStack:      make([]UndoState, 0, maxUndoStack),
		hierarchyWidth: 210,
		inspectorWidth: 310,
	}
}

// Start activates the editor at boot, keeping whatever camera state
// ApplyPrefs already set.
func (e *Editor) Start() {
	e.Active = true
	rl.EnableCursor()
	initRayguiStyle()
}

// Enter switches back from play mode, aligning the editor camera with the
// play camera and discarding play-mode scene changes.
func (e *Editor) Enter(currentCam rl.Camera3D) {
	e.Active = true
	rl.EnableCursor()

	if e.world.Path != "" {
		if err := e.world.Reload(); err != nil {
			zap.S().Warnw("failed to reload scene on editor enter", "error", err)
		}
	}
	e.clearSelection()

	e.camera.Position = currentCam.Position
	e.camera.LookAt(currentCam.Target)

	initRayguiStyle()
}

// Exit saves the scene and hands control to play mode.
func (e *Editor) Exit() {
	if e.world.Path != "" {
		if err := e.world.Save(e.world.Path); err != nil {
			zap.S().Warnw("failed to save scene before play mode", "error", err)
		}
	}

	e.Active = false
	e.clearSelection()
	e.dragging = false
	e.hoveredAxis = -1
}

// primary returns the object the gizmo and inspector header follow: the
// most recently selected one.
func (e *Editor) primary() *engine.GameObject {
	if len(e.selection) == 0 {
		return nil
	}
	return e.selection[len(e.selection)-1]
}

func (e *Editor) isSelected(g *engine.GameObject) bool {
	for _, s := range e.selection {
		if s == g {
			return true
		}
	}
	return false
}

func (e *Editor) selectOnly(g *engine.GameObject) {
	e.selection = append(e.selection[:0], g)
	e.stopEditingFields()
}

func (e *Editor) toggleSelect(g *engine.GameObject) {
	for i, s := range e.selection {
		if s == g {
			e.selection = append(e.selection[:i], e.selection[i+1:]...)
			e.stopEditingFields()
			return
		}
	}
	e.selection = append(e.selection, g)
	e.stopEditingFields()
}

func (e *Editor) clearSelection() {
	e.selection = e.selection[:0]
	e.stopEditingFields()
}

// stopEditingFields drops any in-progress text edit when the selection
// changes under it.
func (e *Editor) stopEditingFields() {
	e.activeInputID = ""
	e.inputTextValue = ""
	e.editingName = false
	e.editingTags = false
	e.showAddComponentMenu = false
}

func (e *Editor) setMsg(format string, args ...any) {
	e.saveMsg = fmt.Sprintf(format, args...)
	e.saveMsgTime = rl.GetTime()
}

func (e *Editor) saveScene() {
	if e.world.Path == "" {
		e.setMsg("No scene path set")
		return
	}
	if err := e.world.Save(e.world.Path); err != nil {
		e.setMsg("Save failed: %v", err)
	} else {
		e.setMsg("Scene saved!")
	}
}

func (e *Editor) Update(deltaTime float32) {
	// Pump the UI animation clock first so foldouts advance before drawing
	e.ticks.Advance(rl.GetTime())

	// Update camera zoom animation
	e.updateCameraZoom(deltaTime)

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)

	// Ctrl+Z or Cmd+Z: undo
	if ctrl && rl.IsKeyPressed(rl.KeyZ) {
		if msg := e.undo(); msg != "" {
			e.setMsg("%s", msg)
		}
	}

	// Ctrl+S: save scene
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		e.saveScene()
	}

	// Ctrl+D: duplicate selection
	if ctrl && rl.IsKeyPressed(rl.KeyD) {
		e.duplicateSelection()
	}

	// Cmd+Delete (Mac) or Ctrl+Delete: delete selection
	if ctrl && rl.IsKeyPressed(rl.KeyBackspace) {
		e.deleteSelectedObjects()
	}

	// Camera: right-click + drag to look, right-click + WASD to fly
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		// Cancel any zoom animation when user takes manual control
		e.zooming = false

		e.camera.Look(rl.GetMouseDelta())

		forward, right := e.camera.Directions()
		speed := e.camera.MoveSpeed * deltaTime

		if rl.IsKeyDown(rl.KeyW) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, speed))
		}
		if rl.IsKeyDown(rl.KeyS) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, -speed))
		}
		if rl.IsKeyDown(rl.KeyA) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, speed))
		}
		if rl.IsKeyDown(rl.KeyD) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, -speed))
		}
		if rl.IsKeyDown(rl.KeyE) {
			e.camera.Position.Y += speed
		}
		if rl.IsKeyDown(rl.KeyQ) {
			e.camera.Position.Y -= speed
		}
	}

	// Scroll wheel + Shift adjusts fly speed
	scroll := rl.GetMouseWheelMove()
	if scroll != 0 && (rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)) {
		e.camera.MoveSpeed += scroll * 2.0
		if e.camera.MoveSpeed < 1.0 {
			e.camera.MoveSpeed = 1.0
		}
		if e.camera.MoveSpeed > 100.0 {
			e.camera.MoveSpeed = 100.0
		}
	}

	// Gizmo mode hotkeys (only when not holding RMB for camera and not editing text)
	isEditingText := e.editingName || e.editingTags || e.activeInputID != ""
	if !rl.IsMouseButtonDown(rl.MouseRightButton) && !isEditingText {
		if rl.IsKeyPressed(rl.KeyW) {
			e.gizmoMode = GizmoMove
		}
		if rl.IsKeyPressed(rl.KeyE) {
			e.gizmoMode = GizmoRotate
		}
		if rl.IsKeyPressed(rl.KeyR) {
			e.gizmoMode = GizmoScale
		}
	}

	cam := e.GetRaylibCamera()
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)

	// Handle active drag
	if e.dragging {
		if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
			e.dragging = false
		} else {
			e.updateDrag(ray)
		}
		return
	}

	// Update hovered axis for visual feedback
	e.hoveredAxis = -1
	if len(e.selection) > 0 {
		e.hoveredAxis = e.pickGizmoAxis(ray)
	}

	// Left-click: skip 3D interaction if mouse is over a UI panel
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !e.mouseInPanel() {
		if len(e.selection) > 0 {
			axisIdx := e.pickGizmoAxis(ray)
			if axisIdx >= 0 {
				e.startDrag(axisIdx, ray)
				return
			}
		}

		hit := e.pickObject(ray)
		switch {
		case hit == nil:
			if !ctrl {
				e.clearSelection()
			}
		case ctrl:
			e.toggleSelect(hit)
		default:
			e.selectOnly(hit)
		}
	}
}

// pickObject returns the scene object whose shape the ray hits first.
func (e *Editor) pickObject(ray rl.Ray) *engine.GameObject {
	var best *engine.GameObject
	bestDist := float32(1e30)

	for _, g := range e.world.Scene.GameObjects {
		if !g.Active {
			continue
		}
		hit := rayHitObject(ray, g)
		if hit.Hit && hit.Distance < bestDist {
			bestDist = hit.Distance
			best = g
		}
	}
	return best
}

// rayHitObject tests the ray against the best pickable shape the object
// carries: collider first, then the rendered shape, then the light bulb.
func rayHitObject(ray rl.Ray, g *engine.GameObject) rl.RayCollision {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		min, max := box.Bounds()
		return rl.GetRayCollisionBox(ray, rl.BoundingBox{Min: min, Max: max})
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		center := rl.Vector3Add(g.WorldPosition(), sphere.Offset)
		return rl.GetRayCollisionSphere(ray, center, sphere.Radius)
	}
	if sr := engine.GetComponent[*components.ShapeRenderer](g); sr != nil {
		pos := g.WorldPosition()
		scale := g.WorldScale()
		switch sr.Shape {
		case components.ShapeSphere:
			return rl.GetRayCollisionSphere(ray, pos, scale.X*0.5)
		case components.ShapePlane:
			half := rl.Vector3{X: scale.X / 2, Y: 0.05, Z: scale.Z / 2}
			return rl.GetRayCollisionBox(ray, rl.BoundingBox{
				Min: rl.Vector3Subtract(pos, half),
				Max: rl.Vector3Add(pos, half),
			})
		default:
			half := rl.Vector3Scale(scale, 0.5)
			return rl.GetRayCollisionBox(ray, rl.BoundingBox{
				Min: rl.Vector3Subtract(pos, half),
				Max: rl.Vector3Add(pos, half),
			})
		}
	}
	if pl := engine.GetComponent[*components.PointLight](g); pl != nil {
		return rl.GetRayCollisionSphere(ray, pl.GetPosition(), 0.3)
	}
	return rl.RayCollision{}
}

func (e *Editor) duplicateSelection() {
	if len(e.selection) == 0 {
		return
	}
	clones := make([]*engine.GameObject, 0, len(e.selection))
	for _, src := range e.selection {
		if clone := e.world.Duplicate(src); clone != nil {
			clones = append(clones, clone)
		}
	}
	if len(clones) == 0 {
		return
	}
	e.selection = clones
	if len(clones) == 1 {
		e.setMsg("Duplicated %s", clones[0].Name)
	} else {
		e.setMsg("Duplicated %d objects", len(clones))
	}
}

func (e *Editor) getDirections() (forward, right rl.Vector3) {
	return e.camera.Directions()
}

func (e *Editor) GetRaylibCamera() rl.Camera3D {
	return e.camera.Raylib()
}

// focusOnObject starts a smooth camera zoom to look at the given object.
func (e *Editor) focusOnObject(obj *engine.GameObject) {
	if obj == nil {
		return
	}

	targetPos := obj.WorldPosition()

	// Use the scaled shape extent to pick a framing distance
	scale := obj.WorldScale()
	objectRadius := absF(scale.X)
	if absF(scale.Y) > objectRadius {
		objectRadius = absF(scale.Y)
	}
	if absF(scale.Z) > objectRadius {
		objectRadius = absF(scale.Z)
	}
	objectRadius /= 2

	// Position camera at a nice distance (3x object radius, minimum 3 units)
	distance := objectRadius * 3
	if distance < 3 {
		distance = 3
	}

	// Back away from the target along the current look direction
	forward, _ := e.camera.Directions()
	e.zooming = true
	e.zoomStartPos = e.camera.Position
	e.zoomTargetPos = rl.Vector3Subtract(targetPos, rl.Vector3Scale(forward, distance))
	e.zoomElapsed = 0
}

// updateCameraZoom advances the smooth camera zoom animation.
func (e *Editor) updateCameraZoom(deltaTime float32) {
	if !e.zooming {
		return
	}

	e.zoomElapsed += deltaTime
	if e.zoomElapsed >= zoomDuration {
		e.zooming = false
		e.camera.Position = e.zoomTargetPos
		return
	}

	e.camera.Position = rl.Vector3{
		X: easings.CubicOut(e.zoomElapsed, e.zoomStartPos.X, e.zoomTargetPos.X-e.zoomStartPos.X, zoomDuration),
		Y: easings.CubicOut(e.zoomElapsed, e.zoomStartPos.Y, e.zoomTargetPos.Y-e.zoomStartPos.Y, zoomDuration),
		Z: easings.CubicOut(e.zoomElapsed, e.zoomStartPos.Z, e.zoomTargetPos.Z-e.zoomStartPos.Z, zoomDuration),
	}
}

// DrawUI draws the editor overlay: top bar, hierarchy panel (left), inspector panel (right).
func (e *Editor) DrawUI() {
	// Top bar - dark with subtle border
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), 36, colorBgDark)
	rl.DrawRectangle(0, 35, int32(rl.GetScreenWidth()), 1, colorBorder)

	// Mode indicator with accent color
	drawTextEx(editorFontBold, "EDITOR", 12, 7, 22, colorAccent)

	// Gizmo mode indicator
	modeNames := [3]string{"[W] Move", "[E] Rotate", "[R] Scale"}
	for i, name := range modeNames {
		x := int32(115 + i*100)
		color := colorTextMuted
		if GizmoMode(i) == e.gizmoMode {
			color = colorAccentLight
		}
		drawTextEx(editorFont, name, x, 9, 18, color)
	}
	drawTextEx(editorFont, "F1: Play  |  F2: Pipeline  |  Ctrl+S: Save  |  Ctrl+Z: Undo", 430, 9, 18, colorTextMuted)

	// Active pipeline and fly speed on the right
	pipelineName := "none"
	if p := render.Active(); p != nil {
		pipelineName = p.Name()
	}
	drawTextEx(editorFontMono, pipelineName, int32(rl.GetScreenWidth())-230, 9, 18, colorAccentLight)
	drawTextEx(editorFontMono, fmt.Sprintf("Speed: %.0f", e.camera.MoveSpeed), int32(rl.GetScreenWidth())-130, 9, 18, colorTextMuted)

	// Save message flash (below top bar)
	if e.saveMsg != "" && rl.GetTime()-e.saveMsgTime < 2.0 {
		color := rl.NewColor(100, 220, 100, 255) // Soft green
		if e.saveMsg != "Scene saved!" {
			color = rl.NewColor(255, 120, 120, 255) // Soft red
		}
		drawTextEx(editorFontBold, e.saveMsg, int32(rl.GetScreenWidth()/2)-50, 47, 16, color)
	}

	// Unsaved changes dot next to the mode indicator
	if e.world.Dirty() {
		rl.DrawCircle(98, 18, 4, rl.Orange)
	}

	// Reset field hover tracking for this frame
	e.fieldHoveredAny = false

	e.drawHierarchy()
	e.drawInspector()

	// Handle panel resize
	e.handlePanelResize()

	// Set cursor based on state
	if e.resizingPanel > 0 || e.isOverPanelEdge() {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else if e.fieldHoveredAny || e.fieldDragging {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// isOverPanelEdge checks if mouse is over a resizable panel edge
func (e *Editor) isOverPanelEdge() bool {
	mousePos := rl.GetMousePosition()
	screenH := float32(rl.GetScreenHeight())
	screenW := float32(rl.GetScreenWidth())

	// Hierarchy right edge (4px hit zone)
	hierEdge := float32(e.hierarchyWidth)
	if mousePos.X >= hierEdge-2 && mousePos.X <= hierEdge+2 && mousePos.Y > 36 && mousePos.Y < screenH {
		return true
	}

	// Inspector left edge
	inspEdge := screenW - float32(e.inspectorWidth)
	if mousePos.X >= inspEdge-2 && mousePos.X <= inspEdge+2 && mousePos.Y > 36 && mousePos.Y < screenH {
		return true
	}

	return false
}

// handlePanelResize handles drag-to-resize for panels
func (e *Editor) handlePanelResize() {
	mousePos := rl.GetMousePosition()
	screenW := int32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	// Start resize on mouse down
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && e.resizingPanel == 0 {
		hierEdge := float32(e.hierarchyWidth)
		inspEdge := float32(screenW) - float32(e.inspectorWidth)

		if mousePos.X >= hierEdge-2 && mousePos.X <= hierEdge+2 && mousePos.Y > 36 && mousePos.Y < screenH {
			e.resizingPanel = 1
			e.resizeStartX = mousePos.X
			e.resizeStartW = e.hierarchyWidth
		} else if mousePos.X >= inspEdge-2 && mousePos.X <= inspEdge+2 && mousePos.Y > 36 && mousePos.Y < screenH {
			e.resizingPanel = 2
			e.resizeStartX = mousePos.X
			e.resizeStartW = e.inspectorWidth
		}
	}

	// Update while dragging
	if e.resizingPanel > 0 && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := int32(mousePos.X - e.resizeStartX)

		if e.resizingPanel == 1 {
			// Hierarchy - drag right edge
			newW := e.resizeStartW + delta
			if newW < 150 {
				newW = 150
			} else if newW > 400 {
				newW = 400
			}
			e.hierarchyWidth = newW
		} else if e.resizingPanel == 2 {
			// Inspector - drag left edge (inverted)
			newW := e.resizeStartW - delta
			if newW < 250 {
				newW = 250
			} else if newW > 500 {
				newW = 500
			}
			e.inspectorWidth = newW
		}
	}

	// End resize
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		e.resizingPanel = 0
	}
}

// mouseInPanel returns true if the mouse is over the hierarchy or inspector panel.
func (e *Editor) mouseInPanel() bool {
	m := rl.GetMousePosition()
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	hierW := float32(e.hierarchyWidth)
	inspW := float32(e.inspectorWidth)

	// Hierarchy panel
	if m.X <= hierW && m.Y >= 36 && m.Y <= screenH {
		return true
	}
	// Inspector panel
	if m.X >= screenW-inspW && m.Y >= 36 && m.Y <= screenH {
		return true
	}
	// Top bar
	if m.Y <= 36 {
		return true
	}
	return false
}
