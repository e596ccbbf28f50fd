//go:build !game

package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/engine"
)

const maxUndoStack = 50

// UndoActionType represents the type of action that can be undone
type UndoActionType int

const (
	UndoTransform UndoActionType = iota
	UndoDelete
)

// TransformSnapshot remembers one object's transform before an edit.
type TransformSnapshot struct {
	Object   *engine.GameObject
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// UndoState captures state for undo operations
type UndoState struct {
	Type UndoActionType

	// Transform undo - one snapshot per object the action moved
	Moved []TransformSnapshot

	// Delete undo - enough to restore the object where it was
	Object        *engine.GameObject
	DeletedParent *engine.GameObject
}

// pushTransformUndo saves the current transforms of the given objects
func (e *Editor) pushTransformUndo(objects []*engine.GameObject) {
	if len(objects) == 0 {
		return
	}
	state := UndoState{Type: UndoTransform}
	for _, obj := range objects {
		state.Moved = append(state.Moved, TransformSnapshot{
			Object:   obj,
			Position: obj.Transform.Position,
			Rotation: obj.Transform.Rotation,
			Scale:    obj.Transform.Scale,
		})
	}
	e.addUndoState(state)
}

// pushDeleteUndo saves the deleted object so it can be restored
func (e *Editor) pushDeleteUndo(obj *engine.GameObject) {
	e.addUndoState(UndoState{
		Type:          UndoDelete,
		Object:        obj,
		DeletedParent: obj.Parent,
	})
}

func (e *Editor) addUndoState(state UndoState) {
	// Cap stack size
	if len(e.undoStack) >= maxUndoStack {
		e.undoStack = e.undoStack[1:]
	}
	e.undoStack = append(e.undoStack, state)
}

// undo restores the last saved state. It returns a status message for the
// top bar, or "" when there was nothing to report.
func (e *Editor) undo() string {
	if len(e.undoStack) == 0 {
		return ""
	}
	// Pop last state
	state := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]

	switch state.Type {
	case UndoTransform:
		e.selection = e.selection[:0]
		for _, snap := range state.Moved {
			if snap.Object == nil {
				continue
			}
			snap.Object.Transform.Position = snap.Position
			snap.Object.Transform.Rotation = snap.Rotation
			snap.Object.Transform.Scale = snap.Scale
			e.selection = append(e.selection, snap.Object)
		}

	case UndoDelete:
		if state.Object != nil {
			e.world.Scene.AddGameObject(state.Object)
			if state.DeletedParent != nil {
				state.DeletedParent.AddChild(state.Object)
			}
			e.selection = append(e.selection[:0], state.Object)
			return fmt.Sprintf("Restored %s", state.Object.Name)
		}
	}
	return ""
}
