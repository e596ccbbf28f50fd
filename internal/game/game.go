// Package game hosts the run loop: a raylib window that flips between the
// in-process editor and play mode. Editor builds carry the full editor;
// `-tags game` builds compile it out and boot straight into play mode.
package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"tinker3d/internal/components"
	"tinker3d/internal/engine"
	"tinker3d/internal/render"
	"tinker3d/internal/world"
)

const defaultScenePath = "assets/scenes/main.json"

var defaultPipelinePaths = []string{
	"assets/pipelines/forward.yaml",
	"assets/pipelines/flat.yaml",
}

// Config selects what the game boots with. Zero values fall back to the
// saved editor prefs, then to the defaults.
type Config struct {
	ScenePath     string
	PipelinePaths []string
	Logger        *zap.SugaredLogger
}

type Game struct {
	cfg    Config
	world  *world.World
	editor *Editor
	log    *zap.SugaredLogger

	pipelines     []render.Pipeline
	pipelinePaths []string
	pipelineIdx   int
}

func New(cfg Config) *Game {
	if cfg.Logger == nil {
		cfg.Logger = zap.S()
	}
	return &Game{
		cfg:   cfg,
		world: world.New(cfg.Logger),
		log:   cfg.Logger,
	}
}

func (g *Game) Run() {
	prefs := LoadEditorPrefs()

	width, height := 1280, 720
	if prefs != nil && prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		width, height = prefs.WindowWidth, prefs.WindowHeight
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(int32(width), int32(height), "tinker3d")
	defer rl.CloseWindow()

	if prefs != nil && (prefs.WindowX != 0 || prefs.WindowY != 0) {
		rl.SetWindowPosition(prefs.WindowX, prefs.WindowY)
	}
	rl.SetTargetFPS(120)
	// Escape cancels field edits in the editor; it must not close the window.
	rl.SetExitKey(0)

	g.setupPipelines(prefs)
	g.loadScene(prefs)

	g.editor = NewEditor(g.world)
	g.editor.ApplyPrefs(prefs)
	g.editor.Start()

	if !g.editor.Active {
		// Game build: straight into play mode.
		g.world.Scene.Start()
	}

	for !rl.WindowShouldClose() {
		g.update()
		g.draw()
	}

	g.editor.SavePrefs(g.world.Path, g.activePipelinePath())
}

// setupPipelines loads the pipeline assets and activates the one the last
// session used. With no loadable assets the built-in defaults keep the
// window from being a black rectangle.
func (g *Game) setupPipelines(prefs *EditorPrefs) {
	paths := g.cfg.PipelinePaths
	if len(paths) == 0 {
		paths = defaultPipelinePaths
	}
	for _, path := range paths {
		p, err := render.LoadAsset(path)
		if err != nil {
			g.log.Warnw("could not load pipeline asset", "path", path, "error", err)
			continue
		}
		g.pipelines = append(g.pipelines, p)
		g.pipelinePaths = append(g.pipelinePaths, path)
	}
	if len(g.pipelines) == 0 {
		g.pipelines = []render.Pipeline{render.NewForwardPipeline(), render.NewFlatPipeline()}
		g.pipelinePaths = []string{"", ""}
	}

	if prefs != nil && prefs.PipelinePath != "" {
		for i, path := range g.pipelinePaths {
			if path == prefs.PipelinePath {
				g.pipelineIdx = i
				break
			}
		}
	}
	render.SetActive(g.pipelines[g.pipelineIdx])
}

func (g *Game) loadScene(prefs *EditorPrefs) {
	path := g.cfg.ScenePath
	if path == "" && prefs != nil {
		path = prefs.ScenePath
	}
	if path == "" {
		path = defaultScenePath
	}
	if err := g.world.Load(path); err != nil {
		g.log.Warnw("could not load scene, starting empty", "path", path, "error", err)
		// Keep the path so Save lands where the user asked.
		g.world.Path = path
	}
}

func (g *Game) update() {
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.togglePlayMode()
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.cyclePipeline()
	}

	if g.editor.Active {
		g.editor.Update(deltaTime)
	} else {
		g.world.Update(deltaTime)
	}
}

func (g *Game) togglePlayMode() {
	if g.editor.Active {
		g.editor.Exit()
		g.world.Scene.Start()
		g.log.Infow("entering play mode", "scene", g.world.Scene.Name)
	} else {
		// Enter reloads the scene, so play-mode changes are discarded.
		g.editor.Enter(g.activeCamera())
	}
}

func (g *Game) cyclePipeline() {
	if len(g.pipelines) < 2 {
		return
	}
	g.pipelineIdx = (g.pipelineIdx + 1) % len(g.pipelines)
	render.SetActive(g.pipelines[g.pipelineIdx])
	g.log.Infow("pipeline switched", "pipeline", g.pipelines[g.pipelineIdx].Name())
}

// activeCamera is the editor camera in edit mode, else the scene's main
// camera, else a fixed overview so an empty scene still shows the grid.
func (g *Game) activeCamera() rl.Camera3D {
	if g.editor.Active {
		return g.editor.GetRaylibCamera()
	}
	for _, obj := range g.world.Scene.GameObjects {
		if !obj.Active {
			continue
		}
		if cam := engine.GetComponent[*components.Camera](obj); cam != nil && cam.IsMain {
			return cam.GetRaylibCamera()
		}
	}
	return rl.Camera3D{
		Position:   rl.Vector3{X: 12, Y: 10, Z: 12},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) draw() {
	camera := g.activeCamera()
	pipeline := render.Active()

	rl.BeginDrawing()
	if pipeline != nil {
		rl.ClearBackground(pipeline.Background())
	} else {
		rl.ClearBackground(rl.Black)
	}

	rl.BeginMode3D(camera)
	if pipeline != nil {
		pipeline.Draw(g.world.Scene, camera)
	}
	g.editor.Draw3D()
	rl.EndMode3D()

	if g.editor.Active {
		g.editor.DrawUI()
	} else {
		g.drawPlayHUD()
	}
	rl.EndDrawing()
}

func (g *Game) drawPlayHUD() {
	rl.DrawFPS(10, 10)
	if editorEnabled {
		rl.DrawText("F1: Editor  |  F2: Pipeline", 10, 34, 16, rl.DarkGray)
	}
}

func (g *Game) activePipelinePath() string {
	if g.pipelineIdx < len(g.pipelinePaths) {
		return g.pipelinePaths[g.pipelineIdx]
	}
	return ""
}
