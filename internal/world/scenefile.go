package world

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"tinker3d/internal/engine"
)

// SceneFile is the on-disk scene format. Objects are stored flat and
// hierarchy is encoded through parent GUIDs, so files diff cleanly and
// load order doesn't matter.
type SceneFile struct {
	Name    string      `json:"name"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	GUID       string           `json:"guid"`
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Active     *bool            `json:"active,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Parent     string           `json:"parent,omitempty"`
	Components []map[string]any `json:"components,omitempty"`
}

// Load replaces the current scene with the one stored at path.
func (w *World) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene %s: %w", path, err)
	}

	w.Scene = buildScene(&sf, w.logger())
	w.Path = path
	w.MarkSaved()
	return nil
}

// Save writes the scene to path and marks the world clean.
func (w *World) Save(path string) error {
	data, err := json.MarshalIndent(buildSceneFile(w.Scene), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	w.Path = path
	w.MarkSaved()
	return nil
}

// buildScene instantiates a scene from its file form. Unknown component
// types are logged and skipped, never fatal: a scene saved by a newer
// build should still open.
func buildScene(sf *SceneFile, log *zap.SugaredLogger) *engine.Scene {
	name := sf.Name
	if name == "" {
		name = "Untitled"
	}
	scene := engine.NewScene(name)

	byGUID := make(map[string]*engine.GameObject, len(sf.Objects))
	for i := range sf.Objects {
		def := &sf.Objects[i]

		g := engine.NewGameObject(def.Name)
		if def.GUID != "" {
			g.GUID = def.GUID
		}
		g.Tags = def.Tags
		if def.Active != nil {
			g.Active = *def.Active
		}
		g.Transform.Position = vec3(def.Position)
		g.Transform.Rotation = vec3(def.Rotation)
		// Older files omitted scale; zero means "default".
		if def.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec3(def.Scale)
		}

		for _, props := range def.Components {
			typeName, _ := props["type"].(string)
			if typeName == "" {
				log.Warnw("component without type, skipping", "object", def.Name)
				continue
			}
			s := engine.NewSerializable(typeName)
			if s == nil {
				log.Warnw("unknown component type, skipping",
					"object", def.Name, "component", typeName)
				continue
			}
			s.Deserialize(props)
			comp, ok := s.(engine.Component)
			if !ok {
				log.Warnw("registered type is not a component, skipping",
					"object", def.Name, "component", typeName)
				continue
			}
			g.AddComponent(comp)
		}

		if byGUID[g.GUID] != nil {
			log.Warnw("duplicate guid in scene file", "guid", g.GUID, "object", def.Name)
		}
		byGUID[g.GUID] = g
		scene.AddGameObject(g)
	}

	// Hierarchy pass, once every object exists.
	for i := range sf.Objects {
		def := &sf.Objects[i]
		if def.Parent == "" {
			continue
		}
		parent := byGUID[def.Parent]
		if parent == nil {
			log.Warnw("parent guid not found", "object", def.Name, "parent", def.Parent)
			continue
		}
		parent.AddChild(byGUID[def.GUID])
	}

	return scene
}

func buildSceneFile(scene *engine.Scene) *SceneFile {
	sf := &SceneFile{Name: scene.Name}
	for _, g := range scene.GameObjects {
		def := ObjectDef{
			GUID:     g.GUID,
			Name:     g.Name,
			Tags:     g.Tags,
			Position: list3(g.Transform.Position),
			Rotation: list3(g.Transform.Rotation),
			Scale:    list3(g.Transform.Scale),
		}
		if !g.Active {
			inactive := false
			def.Active = &inactive
		}
		if g.Parent != nil {
			def.Parent = g.Parent.GUID
		}
		for _, c := range g.Components() {
			if _, props, ok := engine.SerializeComponent(c); ok {
				def.Components = append(def.Components, props)
			}
		}
		sf.Objects = append(sf.Objects, def)
	}
	return sf
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func list3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
