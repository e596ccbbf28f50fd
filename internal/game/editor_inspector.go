//go:build !game

package game

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/anim"
	"tinker3d/internal/engine"
	"tinker3d/internal/inspect"
)

// Property row layout shared by the inspector widgets
const (
	propLabelW = int32(80)
	propFieldW = int32(75)
	propFieldH = int32(22)
)

// inspectorButtonAreaH is the fixed Add Component strip at the panel bottom.
const inspectorButtonAreaH = int32(46)

// drawInspector draws the selection's inspector on the right. A single
// object gets the full header (name, tags, transform); a multi-selection
// shows the components every selected object has in common.
func (e *Editor) drawInspector() {
	if len(e.selection) == 0 {
		return
	}
	primary := e.primary()

	panelW := e.inspectorWidth
	panelX := int32(rl.GetScreenWidth()) - panelW
	panelY := int32(36)
	panelH := int32(rl.GetScreenHeight()) - panelY
	scrollableH := panelH - inspectorButtonAreaH

	// Panel background with subtle border
	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	// Resize handle - slightly thicker border on left edge
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	// Check for scroll input when mouse is in inspector (only in scrollable area)
	mousePos := rl.GetMousePosition()
	mouseInPanel := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+panelH)
	mouseInScrollArea := mouseInPanel && mousePos.Y <= float32(panelY+scrollableH)

	if mouseInScrollArea && !rl.IsMouseButtonDown(rl.MouseRightButton) && !e.showAddComponentMenu {
		scroll := rl.GetMouseWheelMove()
		e.inspectorScroll -= int32(scroll * 20)
		if e.inspectorScroll < 0 {
			e.inspectorScroll = 0
		}
	}

	// Begin scissor mode for scrolling (only for scrollable content area)
	rl.BeginScissorMode(panelX, panelY, panelW, scrollableH)

	y := panelY + 8 - e.inspectorScroll

	if len(e.selection) == 1 {
		// Name (editable)
		y = e.drawNameField(panelX, y, panelW, mousePos)

		// Tags (editable)
		y = e.drawTagsField(panelX, y, panelW, mousePos)

		// Separator
		rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, rl.NewColor(40, 40, 55, 255))
		y += 10

		// Transform section
		y = e.drawTransformSection(panelX, y, panelW)
	} else {
		drawTextEx(editorFontBold, fmt.Sprintf("%d objects", len(e.selection)), panelX+12, y+4, 18, colorAccentLight)
		y += 28
		names := make([]string, 0, len(e.selection))
		for _, obj := range e.selection {
			names = append(names, obj.Name)
		}
		label := strings.Join(names, ", ")
		if len(label) > 38 {
			label = label[:37] + "..."
		}
		drawTextEx(editorFont, label, panelX+12, y, 14, colorTextMuted)
		y += 20
	}

	// Separator
	rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, rl.NewColor(40, 40, 55, 255))
	y += 10

	// Components section header
	drawTextEx(editorFontBold, "Components", panelX+12, y, 18, colorTextSecondary)
	y += 26

	if len(e.selection) == 1 {
		y = e.drawSingleComponents(panelX, y, panelW, primary, mouseInPanel)
	} else {
		y = e.drawSharedComponents(panelX, y, panelW, mouseInPanel)
	}

	// Clamp scroll to content (before ending scissor mode)
	totalHeight := y + e.inspectorScroll - panelY + 50
	maxScroll := totalHeight - scrollableH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.inspectorScroll > maxScroll {
		e.inspectorScroll = maxScroll
	}

	rl.EndScissorMode()

	// Fixed Add Component button at bottom (outside scissor mode)
	btnH := int32(26)
	btnW := panelW - 40
	btnX := panelX + 20
	btnY := panelY + scrollableH + 10

	// Draw background for button area to cover any scrolled content
	rl.DrawRectangle(panelX, panelY+scrollableH, panelW, inspectorButtonAreaH, colorBgPanel)
	// Separator line above button
	rl.DrawLine(panelX+12, panelY+scrollableH+2, panelX+panelW-12, panelY+scrollableH+2, rl.NewColor(40, 40, 55, 255))

	btnHovered := mouseInPanel && mousePos.X >= float32(btnX) && mousePos.X <= float32(btnX+btnW) &&
		mousePos.Y >= float32(btnY) && mousePos.Y <= float32(btnY+btnH)

	btnColor := colorBgElement
	txtColor := colorTextSecondary
	if btnHovered {
		btnColor = colorAccent
		txtColor = colorTextPrimary
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(btnX), Y: float32(btnY), Width: float32(btnW), Height: float32(btnH)}, 0.3, 6, btnColor)
	textW := rl.MeasureText("+ Add Component", 16)
	drawTextEx(editorFont, "+ Add Component", btnX+(btnW-textW)/2, btnY+5, 16, txtColor)

	clickedAddButton := false
	if btnHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		e.showAddComponentMenu = !e.showAddComponentMenu
		if e.showAddComponentMenu {
			e.addComponentScroll = 0 // Reset scroll when opening menu
		}
		clickedAddButton = true
	}

	// Draw add component dropdown menu (shows upward from button)
	if e.showAddComponentMenu {
		e.drawAddComponentMenu(btnX, btnY, btnW, clickedAddButton)
	}
}

// drawSingleComponents draws one foldout per component of the object,
// resolving each component's inspector through the registry.
func (e *Editor) drawSingleComponents(panelX, y, panelW int32, obj *engine.GameObject, mouseInPanel bool) int32 {
	comps := obj.Components()
	removeIdx := -1
	for i, c := range comps {
		key := fmt.Sprintf("%d.%d", obj.UID, i)
		title := reflect.TypeOf(c).Elem().Name()

		var content foldContent
		if insp, ok := inspect.NewInspectorFor([]engine.Component{c}); ok {
			content = e.inspectorContent(key, insp)
		} else {
			content = messageContent("No inspector registered.")
		}

		newY, removed := e.drawFoldSection(panelX, y, panelW, key, title, mouseInPanel, content)
		if removed {
			removeIdx = i
		}
		y = newY + 8 // spacing between components
	}

	// Handle removal (deferred to avoid modifying slice during iteration)
	if removeIdx >= 0 {
		e.removeComponentAtIndex(obj, removeIdx)
	}
	return y
}

// drawSharedComponents draws the multi-edit inspector for every component
// type all selected objects share. Types without a multi-edit capable
// inspector still show up, with a note instead of fields.
func (e *Editor) drawSharedComponents(panelX, y, panelW int32, mouseInPanel bool) int32 {
	groups := e.sharedComponentGroups()
	var removeType reflect.Type
	for _, group := range groups {
		key := "multi." + group.title

		var content foldContent
		if insp, ok := inspect.NewInspectorFor(group.targets); ok {
			content = e.inspectorContent(key, insp)
		} else {
			content = messageContent("Multi-object editing not supported.")
		}

		newY, removed := e.drawFoldSection(panelX, y, panelW, key, group.title, mouseInPanel, content)
		if removed {
			removeType = group.concrete
		}
		y = newY + 8
	}

	if removeType != nil {
		e.removeComponentTypeFromSelection(removeType)
	}
	return y
}

type componentGroup struct {
	title    string
	concrete reflect.Type
	targets  []engine.Component
}

// sharedComponentGroups collects, in the primary object's component order,
// the concrete component types present on every selected object.
func (e *Editor) sharedComponentGroups() []componentGroup {
	primary := e.primary()
	if primary == nil {
		return nil
	}

	var groups []componentGroup
	seen := make(map[reflect.Type]bool)
	for _, c := range primary.Components() {
		t := reflect.TypeOf(c)
		if seen[t] {
			continue
		}
		seen[t] = true

		targets := []engine.Component{c}
		onAll := true
		for _, obj := range e.selection {
			if obj == primary {
				continue
			}
			match := componentOfType(obj, t)
			if match == nil {
				onAll = false
				break
			}
			targets = append(targets, match)
		}
		if !onAll {
			continue
		}
		groups = append(groups, componentGroup{
			title:    t.Elem().Name(),
			concrete: t,
			targets:  targets,
		})
	}
	return groups
}

func componentOfType(g *engine.GameObject, t reflect.Type) engine.Component {
	for _, c := range g.Components() {
		if reflect.TypeOf(c) == t {
			return c
		}
	}
	return nil
}

// foldContent draws a section body starting at contentY and returns the y
// it ended on.
type foldContent func(x, w, contentY int32) int32

func (e *Editor) inspectorContent(key string, insp inspect.Inspector) foldContent {
	return func(x, w, contentY int32) int32 {
		ui := &guiAdapter{e: e, x: x, y: contentY, w: w, id: key}
		insp.OnInspectorGUI(ui)
		return ui.y
	}
}

func messageContent(msg string) foldContent {
	return func(x, w, contentY int32) int32 {
		drawTextEx(editorFont, msg, x, contentY+2, 14, colorTextMuted)
		return contentY + 22
	}
}

// foldoutFor returns the fold state for a section, creating it open.
func (e *Editor) foldoutFor(key string) *anim.Bool {
	if f, ok := e.foldouts[key]; ok {
		return f
	}
	f := anim.NewBool(e.ticks, true)
	e.foldouts[key] = f
	return f
}

// drawFoldSection draws a collapsible component section: header with fold
// triangle and remove button, then the animated body. Returns the new Y and
// whether the remove button was clicked.
func (e *Editor) drawFoldSection(panelX, y, panelW int32, key, title string, mouseInPanel bool, content foldContent) (int32, bool) {
	headerH := int32(24)
	xBtnSize := int32(18)
	xBtnX := panelX + panelW - 32
	xBtnY := y + 3

	fold := e.foldoutFor(key)

	// Header background - rounded
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(panelX + 10), Y: float32(y), Width: float32(panelW - 20), Height: float32(headerH)}, 0.15, 4, colorBgElement)

	// Fold triangle
	tx := float32(panelX + 18)
	ty := float32(y + headerH/2)
	if fold.Value() {
		rl.DrawTriangle(
			rl.Vector2{X: tx - 4, Y: ty - 3},
			rl.Vector2{X: tx, Y: ty + 4},
			rl.Vector2{X: tx + 4, Y: ty - 3},
			colorTextMuted,
		)
	} else {
		rl.DrawTriangle(
			rl.Vector2{X: tx - 3, Y: ty - 4},
			rl.Vector2{X: tx - 3, Y: ty + 4},
			rl.Vector2{X: tx + 4, Y: ty},
			colorTextMuted,
		)
	}

	drawTextEx(editorFontBold, title, panelX+30, y+4, 16, colorTextSecondary)

	mousePos := rl.GetMousePosition()
	xHovered := mouseInPanel &&
		mousePos.X >= float32(xBtnX) && mousePos.X <= float32(xBtnX+xBtnSize) &&
		mousePos.Y >= float32(xBtnY) && mousePos.Y <= float32(xBtnY+xBtnSize)

	xBtnColor := rl.NewColor(100, 50, 50, 200)
	if xHovered {
		xBtnColor = rl.NewColor(180, 60, 60, 230)
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(xBtnX), Y: float32(xBtnY), Width: float32(xBtnSize), Height: float32(xBtnSize)}, 0.3, 4, xBtnColor)
	drawTextEx(editorFontBold, "x", xBtnX+5, xBtnY+2, 14, colorTextPrimary)

	removed := xHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton)

	// Click anywhere else on the header toggles the foldout
	headerHovered := mouseInPanel && !xHovered &&
		mousePos.X >= float32(panelX+10) && mousePos.X <= float32(panelX+panelW-20) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+headerH)
	if headerHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		fold.SetTarget(!fold.Target())
	}

	y += headerH + 4

	faded := fold.Faded()
	fullH := e.foldH[key]

	switch {
	case faded >= 0.999:
		endY := content(panelX+16, panelW-32, y)
		e.foldH[key] = endY - y
		y = endY
	case faded <= 0.001:
		// Collapsed, body skipped entirely
	default:
		// Mid-animation: clip the body to the eased height. The height comes
		// from the last fully-open frame, so a section never measured yet
		// just pops open.
		visibleH := int32(float32(fullH) * faded)
		panelY := int32(36)
		scrollableBottom := int32(rl.GetScreenHeight()) - inspectorButtonAreaH
		clipTop := y
		if clipTop < panelY {
			clipTop = panelY
		}
		clipBottom := y + visibleH
		if clipBottom > scrollableBottom {
			clipBottom = scrollableBottom
		}
		if clipBottom > clipTop {
			rl.BeginScissorMode(panelX, clipTop, panelW, clipBottom-clipTop)
			content(panelX+16, panelW-32, y)
			rl.EndScissorMode()
			// Restore the panel clip the caller had active
			rl.BeginScissorMode(panelX, panelY, panelW, scrollableBottom-panelY)
		}
		y += visibleH
	}

	return y, removed
}

// drawNameField draws the editable name field and returns the new Y position.
func (e *Editor) drawNameField(panelX, y, panelW int32, mousePos rl.Vector2) int32 {
	obj := e.primary()
	nameFieldW := panelW - 20
	nameFieldH := int32(24)
	nameFieldX := panelX + 10
	nameFieldY := y

	nameHovered := mousePos.X >= float32(nameFieldX) && mousePos.X <= float32(nameFieldX+nameFieldW) &&
		mousePos.Y >= float32(nameFieldY) && mousePos.Y <= float32(nameFieldY+nameFieldH)

	// Background for name field - rounded
	nameBgColor := colorBgElement
	if e.editingName {
		nameBgColor = colorBgActive
	} else if nameHovered {
		nameBgColor = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(nameFieldX), Y: float32(nameFieldY), Width: float32(nameFieldW), Height: float32(nameFieldH)}, 0.2, 6, nameBgColor)
	if e.editingName {
		rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(nameFieldX), Y: float32(nameFieldY), Width: float32(nameFieldW), Height: float32(nameFieldH)}, 0.2, 6, 1, colorAccent)
	}

	if e.editingName {
		// Draw editing text with cursor
		drawTextEx(editorFont, e.nameEditBuffer+"_", nameFieldX+8, nameFieldY+4, 18, colorTextPrimary)

		// Handle typing
		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			e.nameEditBuffer += string(rune(key))
		}

		// Backspace
		if rl.IsKeyPressed(rl.KeyBackspace) && len(e.nameEditBuffer) > 0 {
			e.nameEditBuffer = e.nameEditBuffer[:len(e.nameEditBuffer)-1]
		}

		// Enter to confirm
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
			if e.nameEditBuffer != "" {
				obj.Name = e.nameEditBuffer
			}
			e.editingName = false
			e.nameEditBuffer = ""
		}

		// Escape to cancel
		if rl.IsKeyPressed(rl.KeyEscape) {
			e.editingName = false
			e.nameEditBuffer = ""
		}

		// Click outside to confirm
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !nameHovered {
			if e.nameEditBuffer != "" {
				obj.Name = e.nameEditBuffer
			}
			e.editingName = false
			e.nameEditBuffer = ""
		}
	} else {
		// Display name with accent color
		drawTextEx(editorFontBold, obj.Name, nameFieldX+8, nameFieldY+4, 18, colorAccentLight)

		// Click to edit
		if nameHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.editingName = true
			e.nameEditBuffer = obj.Name
		}
	}

	return y + nameFieldH + 4
}

// drawTagsField draws the editable tags field and returns the new Y position.
func (e *Editor) drawTagsField(panelX, y, panelW int32, mousePos rl.Vector2) int32 {
	obj := e.primary()
	drawTextEx(editorFont, "Tags", panelX+12, y, 14, colorTextMuted)
	y += 18

	tagsFieldW := panelW - 20
	tagsFieldH := int32(22)
	tagsFieldX := panelX + 10
	tagsFieldY := y

	tagsHovered := mousePos.X >= float32(tagsFieldX) && mousePos.X <= float32(tagsFieldX+tagsFieldW) &&
		mousePos.Y >= float32(tagsFieldY) && mousePos.Y <= float32(tagsFieldY+tagsFieldH)

	// Background for tags field
	tagsBgColor := colorBgElement
	if e.editingTags {
		tagsBgColor = colorBgActive
	} else if tagsHovered {
		tagsBgColor = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(tagsFieldX), Y: float32(tagsFieldY), Width: float32(tagsFieldW), Height: float32(tagsFieldH)}, 0.2, 6, tagsBgColor)
	if e.editingTags {
		rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(tagsFieldX), Y: float32(tagsFieldY), Width: float32(tagsFieldW), Height: float32(tagsFieldH)}, 0.2, 6, 1, colorAccent)
	}

	if e.editingTags {
		// Draw editing text with cursor
		drawTextEx(editorFont, e.tagsEditBuffer+"_", tagsFieldX+6, tagsFieldY+4, 14, colorTextPrimary)

		// Handle typing
		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			e.tagsEditBuffer += string(rune(key))
		}

		// Backspace
		if rl.IsKeyPressed(rl.KeyBackspace) && len(e.tagsEditBuffer) > 0 {
			e.tagsEditBuffer = e.tagsEditBuffer[:len(e.tagsEditBuffer)-1]
		}

		// Enter to confirm
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
			e.applyTagsFromBuffer()
		}

		// Escape to cancel
		if rl.IsKeyPressed(rl.KeyEscape) {
			e.editingTags = false
			e.tagsEditBuffer = ""
		}

		// Click outside to confirm
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !tagsHovered {
			e.applyTagsFromBuffer()
		}
	} else {
		// Display tags
		tagStr := strings.Join(obj.Tags, ", ")
		if tagStr == "" {
			drawTextEx(editorFont, "(none)", tagsFieldX+6, tagsFieldY+4, 14, colorTextMuted)
		} else {
			drawTextEx(editorFont, tagStr, tagsFieldX+6, tagsFieldY+4, 14, colorTextSecondary)
		}

		// Click to edit
		if tagsHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.editingTags = true
			e.tagsEditBuffer = strings.Join(obj.Tags, ", ")
		}
	}

	return y + tagsFieldH + 6
}

// applyTagsFromBuffer parses the tags edit buffer and applies it to the selected object.
func (e *Editor) applyTagsFromBuffer() {
	obj := e.primary()
	if obj == nil {
		e.editingTags = false
		e.tagsEditBuffer = ""
		return
	}

	// Parse comma-separated tags
	parts := strings.Split(e.tagsEditBuffer, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	obj.Tags = tags
	e.editingTags = false
	e.tagsEditBuffer = ""
}

// drawTransformSection draws the transform properties and returns the new Y position.
func (e *Editor) drawTransformSection(panelX, y, panelW int32) int32 {
	obj := e.primary()
	drawTextEx(editorFontBold, "Transform", panelX+12, y, 18, colorTextSecondary)
	y += 28

	labelW := int32(45)
	fieldW := (panelW - 38 - labelW) / 3
	fieldH := int32(24)
	startX := panelX + 12 + labelW

	// Position
	drawTextEx(editorFont, "Pos", panelX+14, y+4, 16, colorTextMuted)
	obj.Transform.Position.X = e.drawFloatField(startX, y, fieldW, fieldH, "pos.x", obj.Transform.Position.X)
	obj.Transform.Position.Y = e.drawFloatField(startX+fieldW+2, y, fieldW, fieldH, "pos.y", obj.Transform.Position.Y)
	obj.Transform.Position.Z = e.drawFloatField(startX+2*(fieldW+2), y, fieldW, fieldH, "pos.z", obj.Transform.Position.Z)
	y += fieldH + 4

	if obj.Parent != nil {
		wPos := obj.WorldPosition()
		drawTextEx(editorFontMono, fmt.Sprintf("World %.1f, %.1f, %.1f", wPos.X, wPos.Y, wPos.Z), panelX+16, y, 14, colorTextMuted)
		y += 18
	}

	// Rotation
	drawTextEx(editorFont, "Rot", panelX+14, y+4, 16, colorTextMuted)
	obj.Transform.Rotation.X = e.drawFloatField(startX, y, fieldW, fieldH, "rot.x", obj.Transform.Rotation.X)
	obj.Transform.Rotation.Y = e.drawFloatField(startX+fieldW+2, y, fieldW, fieldH, "rot.y", obj.Transform.Rotation.Y)
	obj.Transform.Rotation.Z = e.drawFloatField(startX+2*(fieldW+2), y, fieldW, fieldH, "rot.z", obj.Transform.Rotation.Z)
	y += fieldH + 4

	// Scale
	drawTextEx(editorFont, "Scale", panelX+14, y+4, 16, colorTextMuted)
	obj.Transform.Scale.X = e.drawFloatField(startX, y, fieldW, fieldH, "scale.x", obj.Transform.Scale.X)
	obj.Transform.Scale.Y = e.drawFloatField(startX+fieldW+2, y, fieldW, fieldH, "scale.y", obj.Transform.Scale.Y)
	obj.Transform.Scale.Z = e.drawFloatField(startX+2*(fieldW+2), y, fieldW, fieldH, "scale.z", obj.Transform.Scale.Z)
	y += fieldH + 8

	return y
}

// drawFloatField draws an editable float input field with drag-to-scrub support.
func (e *Editor) drawFloatField(x, y, w, h int32, id string, value float32) float32 {
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	editMode := e.activeInputID == id
	isDragging := e.fieldDragging && e.fieldDragID == id

	// Track if any field is hovered (for cursor management)
	if hovered && !editMode {
		e.fieldHoveredAny = true
	}

	// Background color - indigo themed
	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hovered || isDragging {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.2, 4, 1, colorAccent)
	}

	// Handle drag-to-scrub (when not in edit mode)
	if !editMode {
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			// Start drag
			e.fieldDragging = true
			e.fieldDragID = id
			e.fieldDragStartX = mousePos.X
			e.fieldDragStartVal = value
		}

		if isDragging {
			if rl.IsMouseButtonDown(rl.MouseLeftButton) {
				// Update value based on drag distance
				deltaX := mousePos.X - e.fieldDragStartX
				// Sensitivity: 100 pixels = 1.0 change, hold shift for fine control
				sensitivity := float32(0.01)
				if rl.IsKeyDown(rl.KeyLeftShift) {
					sensitivity = 0.001
				}
				value = e.fieldDragStartVal + deltaX*sensitivity
			} else {
				// End drag
				dragDist := mousePos.X - e.fieldDragStartX
				if dragDist > -2 && dragDist < 2 {
					// Was a click, not a drag - enter edit mode
					e.activeInputID = id
					e.inputTextValue = strconv.FormatFloat(float64(value), 'f', 2, 32)
				}
				e.fieldDragging = false
				e.fieldDragID = ""
			}
		}
	}

	// Text display/editing
	if editMode {
		// Draw text input
		drawTextEx(editorFontMono, e.inputTextValue+"_", x+6, y+5, 15, colorTextPrimary)

		// Handle typing
		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			ch := rune(key)
			// Allow digits, minus, dot
			if (ch >= '0' && ch <= '9') || ch == '-' || ch == '.' {
				e.inputTextValue += string(ch)
			}
		}

		// Backspace
		if rl.IsKeyPressed(rl.KeyBackspace) && len(e.inputTextValue) > 0 {
			e.inputTextValue = e.inputTextValue[:len(e.inputTextValue)-1]
		}

		// Enter or click outside to confirm
		clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || clickedOutside || rl.IsKeyPressed(rl.KeyTab) {
			if e.inputTextValue != "" {
				if parsed, err := strconv.ParseFloat(e.inputTextValue, 32); err == nil {
					value = float32(parsed)
				}
			}
			e.activeInputID = ""
			e.inputTextValue = ""
		}

		// Escape to cancel
		if rl.IsKeyPressed(rl.KeyEscape) {
			e.activeInputID = ""
			e.inputTextValue = ""
		}
	} else {
		// Display current value - monospace for numbers
		text := strconv.FormatFloat(float64(value), 'f', 2, 32)
		drawTextEx(editorFontMono, text, x+6, y+5, 15, colorTextSecondary)
	}

	return value
}

// drawTextField draws an editable single-line text field.
func (e *Editor) drawTextField(x, y, w, h int32, id string, value string) string {
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	editMode := e.activeInputID == id

	// Background color - indigo themed
	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hovered {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.2, 4, 1, colorAccent)
	}

	// Click to edit
	if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) && !editMode {
		e.activeInputID = id
		e.inputTextValue = value
	}

	// Text display/editing
	if editMode {
		// Draw text input with cursor
		displayText := e.inputTextValue
		if len(displayText) > 14 {
			displayText = "..." + displayText[len(displayText)-11:]
		}
		drawTextEx(editorFontMono, displayText+"_", x+6, y+4, 14, colorTextPrimary)

		// Handle typing
		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			e.inputTextValue += string(rune(key))
		}

		// Backspace
		if rl.IsKeyPressed(rl.KeyBackspace) && len(e.inputTextValue) > 0 {
			e.inputTextValue = e.inputTextValue[:len(e.inputTextValue)-1]
		}

		// Enter or click outside to confirm
		clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || clickedOutside || rl.IsKeyPressed(rl.KeyTab) {
			value = e.inputTextValue
			e.activeInputID = ""
			e.inputTextValue = ""
		}

		// Escape to cancel
		if rl.IsKeyPressed(rl.KeyEscape) {
			e.activeInputID = ""
			e.inputTextValue = ""
		}
	} else {
		// Display current value (truncated)
		displayText := value
		if displayText == "" {
			displayText = "(none)"
		}
		if len(displayText) > 15 {
			displayText = displayText[:14] + "..."
		}
		txtColor := colorTextSecondary
		if value == "" {
			txtColor = colorTextMuted
		}
		drawTextEx(editorFontMono, displayText, x+6, y+4, 14, txtColor)
	}

	return value
}

// drawAddComponentMenu draws the dropdown menu for adding components.
// justOpened prevents the menu from closing on the same frame it was opened.
// The menu appears ABOVE the button (btnY is the button's top position).
func (e *Editor) drawAddComponentMenu(x, btnY, w int32, justOpened bool) {
	itemH := int32(26)
	maxVisibleItems := int32(12) // Max items visible before scrolling

	names := engine.RegisteredComponents()
	totalItems := int32(len(names))

	contentH := totalItems * itemH
	menuH := contentH
	needsScroll := totalItems > maxVisibleItems
	if needsScroll {
		menuH = maxVisibleItems * itemH
	}

	// Menu appears above the button
	menuY := btnY - menuH - 4

	mousePos := rl.GetMousePosition()
	mouseInMenu := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(menuY) && mousePos.Y <= float32(menuY+menuH)

	// Handle scroll wheel when hovering menu
	if mouseInMenu {
		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			e.addComponentScroll -= int32(wheel * 26 * 2) // Scroll 2 items per wheel tick
			maxScroll := contentH - menuH
			if maxScroll < 0 {
				maxScroll = 0
			}
			if e.addComponentScroll < 0 {
				e.addComponentScroll = 0
			}
			if e.addComponentScroll > maxScroll {
				e.addComponentScroll = maxScroll
			}
		}
	}

	// Draw menu background - rounded with border
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(menuY), Width: float32(w), Height: float32(menuH)}, 0.1, 4, colorBgPanel)
	rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(x), Y: float32(menuY), Width: float32(w), Height: float32(menuH)}, 0.1, 4, 1, colorBorder)

	// Begin scissor mode to clip items outside menu area
	rl.BeginScissorMode(x, menuY, w, menuH)

	for i, name := range names {
		itemY := menuY + int32(i)*itemH - e.addComponentScroll

		// Skip if completely outside visible area
		if itemY+itemH < menuY || itemY > menuY+menuH {
			continue
		}

		hovered := mouseInMenu && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)

		if hovered {
			rl.DrawRectangle(x+2, itemY, w-4, itemH, colorAccent)
		}

		txtColor := colorTextSecondary
		if hovered {
			txtColor = colorTextPrimary
		}
		drawTextEx(editorFont, name, x+12, itemY+5, 16, txtColor)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.addComponentToSelection(name)
			e.showAddComponentMenu = false
		}
	}

	rl.EndScissorMode()

	// Draw scroll indicator if needed
	if needsScroll {
		scrollBarW := int32(4)
		scrollBarX := x + w - scrollBarW - 4
		scrollTrackH := menuH - 8
		maxScroll := contentH - menuH
		scrollThumbH := int32(float32(scrollTrackH) * float32(menuH) / float32(contentH))
		if scrollThumbH < 20 {
			scrollThumbH = 20
		}
		scrollThumbY := menuY + 4 + int32(float32(scrollTrackH-scrollThumbH)*float32(e.addComponentScroll)/float32(maxScroll))

		// Draw scroll track
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(scrollBarX), Y: float32(menuY + 4), Width: float32(scrollBarW), Height: float32(scrollTrackH)}, 0.5, 4, colorBgDark)
		// Draw scroll thumb
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(scrollBarX), Y: float32(scrollThumbY), Width: float32(scrollBarW), Height: float32(scrollThumbH)}, 0.5, 4, colorAccent)
	}

	// Close menu if clicking outside (but not on the frame we just opened it)
	if !justOpened && rl.IsMouseButtonPressed(rl.MouseLeftButton) && !mouseInMenu {
		e.showAddComponentMenu = false
	}
}

// addComponentToSelection adds a fresh component of the named type to every
// selected object.
func (e *Editor) addComponentToSelection(typeName string) {
	added := 0
	for _, obj := range e.selection {
		fresh := engine.NewSerializable(typeName)
		if fresh == nil {
			continue
		}
		comp, ok := fresh.(engine.Component)
		if !ok {
			continue
		}
		obj.AddComponent(comp)
		added++
	}
	if added > 0 {
		e.setMsg("Added %s", typeName)
	}
}

// removeComponentAtIndex removes the component at the given index from the object.
func (e *Editor) removeComponentAtIndex(obj *engine.GameObject, index int) {
	comps := obj.Components()
	if index < 0 || index >= len(comps) {
		return
	}

	comp := comps[index]
	typeName := reflect.TypeOf(comp).Elem().Name()
	obj.RemoveComponent(comp)

	e.setMsg("Removed %s", typeName)
}

// removeComponentTypeFromSelection removes the first component of the given
// concrete type from every selected object.
func (e *Editor) removeComponentTypeFromSelection(t reflect.Type) {
	for _, obj := range e.selection {
		if c := componentOfType(obj, t); c != nil {
			obj.RemoveComponent(c)
		}
	}
	e.setMsg("Removed %s", t.Elem().Name())
}

// guiAdapter renders inspector fields with the editor's widgets. Field IDs
// derive from the section key plus the draw order, so edit state carries
// across frames as long as an inspector draws its fields in a stable order.
type guiAdapter struct {
	e   *Editor
	x   int32
	y   int32
	w   int32
	id  string
	row int
}

func (ui *guiAdapter) fieldID(label string) string {
	ui.row++
	return fmt.Sprintf("%s.%d.%s", ui.id, ui.row, label)
}

func (ui *guiAdapter) Label(text string) {
	drawTextEx(editorFont, text, ui.x, ui.y+2, 14, colorTextMuted)
	ui.y += 20
}

func (ui *guiAdapter) FloatField(label string, value float32) float32 {
	drawTextEx(editorFont, label, ui.x, ui.y+4, 16, colorTextMuted)
	out := ui.e.drawFloatField(ui.x+propLabelW, ui.y, propFieldW, propFieldH, ui.fieldID(label), value)
	ui.y += propFieldH + 4
	return out
}

func (ui *guiAdapter) Vector3Field(label string, value rl.Vector3) rl.Vector3 {
	drawTextEx(editorFont, label, ui.x, ui.y+4, 16, colorTextMuted)
	id := ui.fieldID(label)
	fieldW := (ui.w - propLabelW - 4) / 3
	startX := ui.x + propLabelW
	value.X = ui.e.drawFloatField(startX, ui.y, fieldW, propFieldH, id+".x", value.X)
	value.Y = ui.e.drawFloatField(startX+fieldW+2, ui.y, fieldW, propFieldH, id+".y", value.Y)
	value.Z = ui.e.drawFloatField(startX+2*(fieldW+2), ui.y, fieldW, propFieldH, id+".z", value.Z)
	ui.y += propFieldH + 4
	return value
}

func (ui *guiAdapter) Checkbox(label string, value bool) bool {
	out := gui.CheckBox(rl.Rectangle{X: float32(ui.x), Y: float32(ui.y), Width: 22, Height: 22}, label, value)
	ui.y += propFieldH + 4
	return out
}

func (ui *guiAdapter) Slider(label string, value, min, max float32) float32 {
	drawTextEx(editorFont, label, ui.x, ui.y+4, 16, colorTextMuted)
	bounds := rl.Rectangle{X: float32(ui.x + propLabelW), Y: float32(ui.y + 2), Width: float32(ui.w - propLabelW - 44), Height: 18}
	out := gui.Slider(bounds, "", fmt.Sprintf("%.1f", value), value, min, max)
	ui.y += propFieldH + 4
	return out
}

func (ui *guiAdapter) TextField(label string, value string) string {
	drawTextEx(editorFont, label, ui.x, ui.y+4, 16, colorTextMuted)
	out := ui.e.drawTextField(ui.x+propLabelW, ui.y, ui.w-propLabelW, propFieldH, ui.fieldID(label), value)
	ui.y += propFieldH + 4
	return out
}

func (ui *guiAdapter) ColorField(label string, value rl.Color) rl.Color {
	drawTextEx(editorFont, label, ui.x, ui.y+4, 16, colorTextMuted)
	rl.DrawRectangle(ui.x+propLabelW, ui.y+2, 40, 18, value)
	rl.DrawRectangleLines(ui.x+propLabelW, ui.y+2, 40, 18, colorBorder)
	ui.y += propFieldH + 2

	id := ui.fieldID(label)
	fieldW := (ui.w - propLabelW - 4) / 3
	startX := ui.x + propLabelW
	r := ui.e.drawFloatField(startX, ui.y, fieldW, propFieldH, id+".r", float32(value.R))
	g := ui.e.drawFloatField(startX+fieldW+2, ui.y, fieldW, propFieldH, id+".g", float32(value.G))
	b := ui.e.drawFloatField(startX+2*(fieldW+2), ui.y, fieldW, propFieldH, id+".b", float32(value.B))
	value.R = clamp255(r)
	value.G = clamp255(g)
	value.B = clamp255(b)
	ui.y += propFieldH + 4
	return value
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
