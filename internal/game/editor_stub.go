//go:build game

package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tinker3d/internal/world"
)

const editorEnabled = false

// Editor is compiled out of game builds; this stub keeps the game loop
// free of build tags. Active never becomes true, so every editor branch
// is dead code the compiler can drop.
type Editor struct {
	Active bool
}

type EditorPrefs struct {
	WindowWidth  int
	WindowHeight int
	WindowX      int
	WindowY      int
	ScenePath    string
	PipelinePath string
}

func NewEditor(_ *world.World) *Editor           { return &Editor{} }
func (e *Editor) Start()                         {}
func (e *Editor) Enter(_ rl.Camera3D)            {}
func (e *Editor) Exit()                          {}
func (e *Editor) Update(_ float32)               {}
func (e *Editor) Draw3D()                        {}
func (e *Editor) DrawUI()                        {}
func (e *Editor) GetRaylibCamera() rl.Camera3D   { return rl.Camera3D{} }
func (e *Editor) SavePrefs(_, _ string)          {}
func (e *Editor) ApplyPrefs(_ *EditorPrefs)      {}
func LoadEditorPrefs() *EditorPrefs              { return nil }
