package render

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// assetFile is the on-disk shape of a pipeline asset. Colors are RGB
// triples; alpha is always opaque.
type assetFile struct {
	Pipeline  string   `yaml:"pipeline"`
	Sky       [3]uint8 `yaml:"sky"`
	Ambient   [3]uint8 `yaml:"ambient"`
	Grid      *bool    `yaml:"grid"`
	GridSize  int32    `yaml:"gridSize"`
	Wireframe bool     `yaml:"wireframe"`
}

// LoadAsset reads a pipeline asset and builds the pipeline it names.
// Fields missing from the file keep their defaults.
func LoadAsset(path string) (Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline asset: %w", err)
	}
	return parseAsset(path, data)
}

func parseAsset(path string, data []byte) (Pipeline, error) {
	def := defaultSettings()
	a := assetFile{
		Sky:      [3]uint8{def.Sky.R, def.Sky.G, def.Sky.B},
		Ambient:  [3]uint8{def.Ambient.R, def.Ambient.G, def.Ambient.B},
		GridSize: def.GridSize,
	}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse pipeline asset %s: %w", path, err)
	}

	settings := Settings{
		Sky:      rl.NewColor(a.Sky[0], a.Sky[1], a.Sky[2], 255),
		Ambient:  rl.NewColor(a.Ambient[0], a.Ambient[1], a.Ambient[2], 255),
		Grid:     def.Grid,
		GridSize: a.GridSize,
	}
	if a.Grid != nil {
		settings.Grid = *a.Grid
	}

	switch a.Pipeline {
	case "forward":
		return &ForwardPipeline{Settings: settings}, nil
	case "flat":
		return &FlatPipeline{Settings: settings, Wireframe: a.Wireframe}, nil
	case "":
		return nil, fmt.Errorf("pipeline asset %s: missing pipeline name", path)
	default:
		return nil, fmt.Errorf("pipeline asset %s: unknown pipeline %q", path, a.Pipeline)
	}
}
