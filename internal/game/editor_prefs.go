//go:build !game

package game

import (
	"encoding/json"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// EditorPrefs holds persistent editor preferences saved between sessions
type EditorPrefs struct {
	WindowWidth     int        `json:"windowWidth"`
	WindowHeight    int        `json:"windowHeight"`
	WindowX         int        `json:"windowX"`
	WindowY         int        `json:"windowY"`
	CameraPosition  rl.Vector3 `json:"cameraPosition"`
	CameraYaw       float32    `json:"cameraYaw"`
	CameraPitch     float32    `json:"cameraPitch"`
	CameraMoveSpeed float32    `json:"cameraMoveSpeed"`
	ScenePath       string     `json:"scenePath"`
	PipelinePath    string     `json:"pipelinePath"`
	HierarchyWidth  int32      `json:"hierarchyWidth"`
	InspectorWidth  int32      `json:"inspectorWidth"`
}

const editorPrefsFile = ".editor_prefs.json"

// LoadEditorPrefs loads editor preferences from disk
func LoadEditorPrefs() *EditorPrefs {
	data, err := os.ReadFile(editorPrefsFile)
	if err != nil {
		return nil
	}

	var prefs EditorPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		zap.S().Warnw("failed to parse editor prefs", "error", err)
		return nil
	}

	return &prefs
}

// SavePrefs saves the current editor state to disk
func (e *Editor) SavePrefs(scenePath, pipelinePath string) {
	prefs := EditorPrefs{
		WindowWidth:     rl.GetScreenWidth(),
		WindowHeight:    rl.GetScreenHeight(),
		WindowX:         int(rl.GetWindowPosition().X),
		WindowY:         int(rl.GetWindowPosition().Y),
		CameraPosition:  e.camera.Position,
		CameraYaw:       e.camera.Yaw,
		CameraPitch:     e.camera.Pitch,
		CameraMoveSpeed: e.camera.MoveSpeed,
		ScenePath:       scenePath,
		PipelinePath:    pipelinePath,
		HierarchyWidth:  e.hierarchyWidth,
		InspectorWidth:  e.inspectorWidth,
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		zap.S().Warnw("failed to marshal editor prefs", "error", err)
		return
	}

	if err := os.WriteFile(editorPrefsFile, data, 0644); err != nil {
		zap.S().Warnw("failed to save editor prefs", "error", err)
	}
}

// ApplyPrefs applies loaded preferences to the editor
func (e *Editor) ApplyPrefs(prefs *EditorPrefs) {
	if prefs == nil {
		return
	}

	e.camera.Position = prefs.CameraPosition
	e.camera.Yaw = prefs.CameraYaw
	e.camera.Pitch = prefs.CameraPitch
	if prefs.CameraMoveSpeed > 0 {
		e.camera.MoveSpeed = prefs.CameraMoveSpeed
	}
	if prefs.HierarchyWidth > 0 {
		e.hierarchyWidth = prefs.HierarchyWidth
	}
	if prefs.InspectorWidth > 0 {
		e.inspectorWidth = prefs.InspectorWidth
	}
}
