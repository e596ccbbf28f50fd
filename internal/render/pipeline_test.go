package render

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForwardAsset(t *testing.T) {
	src := []byte(`
pipeline: forward
sky: [10, 20, 30]
ambient: [40, 40, 40]
grid: true
gridSize: 40
`)
	p, err := parseAsset("forward.yaml", src)
	require.NoError(t, err)

	forward, ok := p.(*ForwardPipeline)
	require.True(t, ok, "expected a forward pipeline, got %T", p)
	assert.Equal(t, "forward", forward.Name())
	assert.Equal(t, uint8(10), forward.Settings.Sky.R)
	assert.Equal(t, uint8(30), forward.Settings.Sky.B)
	assert.Equal(t, uint8(40), forward.Settings.Ambient.G)
	assert.True(t, forward.Settings.Grid)
	assert.Equal(t, int32(40), forward.Settings.GridSize)
	assert.Equal(t, forward.Settings.Sky, forward.Background())
}

func TestParseFlatAsset(t *testing.T) {
	src := []byte(`
pipeline: flat
wireframe: true
`)
	p, err := parseAsset("flat.yaml", src)
	require.NoError(t, err)

	flat, ok := p.(*FlatPipeline)
	require.True(t, ok, "expected a flat pipeline, got %T", p)
	assert.Equal(t, "flat", flat.Name())
	assert.True(t, flat.Wireframe)
}

func TestParseAssetDefaults(t *testing.T) {
	p, err := parseAsset("min.yaml", []byte("pipeline: forward\n"))
	require.NoError(t, err)

	forward := p.(*ForwardPipeline)
	def := defaultSettings()
	assert.Equal(t, def.Sky, forward.Settings.Sky)
	assert.Equal(t, def.Ambient, forward.Settings.Ambient)
	assert.True(t, forward.Settings.Grid)
	assert.Equal(t, def.GridSize, forward.Settings.GridSize)
}

func TestParseAssetGridOff(t *testing.T) {
	p, err := parseAsset("nogrid.yaml", []byte("pipeline: flat\ngrid: false\n"))
	require.NoError(t, err)
	assert.False(t, p.(*FlatPipeline).Settings.Grid)
}

func TestParseAssetUnknownPipeline(t *testing.T) {
	_, err := parseAsset("bad.yaml", []byte("pipeline: deferred\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown pipeline "deferred"`)
}

func TestParseAssetMissingPipeline(t *testing.T) {
	_, err := parseAsset("empty.yaml", []byte("grid: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing pipeline name")
}

func TestParseAssetBadYAML(t *testing.T) {
	_, err := parseAsset("broken.yaml", []byte("pipeline: [unclosed\n"))
	require.Error(t, err)
}

func TestLoadAssetFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forward.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: forward\nsky: [1, 2, 3]\n"), 0644))

	p, err := LoadAsset(path)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), p.(*ForwardPipeline).Settings.Sky.G)
}

func TestLoadAssetMissingFile(t *testing.T) {
	_, err := LoadAsset(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestActivePipeline(t *testing.T) {
	defer SetActive(nil)

	SetActive(nil)
	assert.Nil(t, Active())
	assert.Nil(t, ActiveType())

	p := NewForwardPipeline()
	SetActive(p)
	assert.Same(t, p, Active())
	assert.Equal(t, reflect.TypeOf(p), ActiveType())

	SetActive(NewFlatPipeline())
	assert.Equal(t, reflect.TypeOf(&FlatPipeline{}), ActiveType())
}
