package scene_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/adapters/scene"
	"go.trai.ch/framegraph/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeScene(t, `
version: "1"
frames:
  - name: world
  - name: table
    parent: world
    translation: {x: 1.0}
  - name: cup
    parent: table
    translation: {y: 1.0}
    rotation: {yaw: 1.5707963267948966}
`)

	store, err := scene.NewLoader(nopLogger{}).Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())

	world, ok := store.GetNode("world")
	require.True(t, ok)
	assert.Equal(t, 0, world.Level)

	cup, ok := store.GetNode("cup")
	require.True(t, ok)
	assert.Equal(t, 2, cup.Level)

	table, ok := store.GetParent(cup)
	require.True(t, ok)
	rt, ok := store.GetEdgeRT(table, cup.ID)
	require.True(t, ok)
	assert.True(t, rt.ApproxEqual(domain.FromPose(domain.Pose6{Y: 1, Yaw: 1.5707963267948966}), 1e-12))
}

func TestLoader_ResolvesOutOfOrderParents(t *testing.T) {
	// Children may precede their parents in the file.
	path := writeScene(t, `
frames:
  - name: cup
    parent: table
  - name: table
    parent: world
  - name: world
`)

	store, err := scene.NewLoader(nopLogger{}).Load(path)
	require.NoError(t, err)

	cup, ok := store.GetNode("cup")
	require.True(t, ok)
	assert.Equal(t, 2, cup.Level)
}

func TestLoader_AppliesLinks(t *testing.T) {
	path := writeScene(t, `
frames:
  - name: world
  - name: table
    parent: world
  - name: cup
    parent: table
    links:
      - to: table
        type: on_top_of
`)

	store, err := scene.NewLoader(nopLogger{}).Load(path)
	require.NoError(t, err)

	cup, ok := store.GetNode("cup")
	require.True(t, ok)
	table, ok := store.GetNode("table")
	require.True(t, ok)

	// The RT edge from the parent declaration is untouched by the link.
	_, hasRT := store.GetEdgeRT(table, cup.ID)
	assert.True(t, hasRT)

	// The semantic link exists as its own typed edge; deleting it proves
	// it was created, and deleting it twice proves it is gone.
	require.NoError(t, store.DeleteEdge("cup", "table", "on_top_of"))
	require.Error(t, store.DeleteEdge("cup", "table", "on_top_of"))
}

func TestLoader_RejectsMissingFrameName(t *testing.T) {
	path := writeScene(t, `
frames:
  - name: world
  - parent: world
    translation: {x: 1.0}
`)

	_, err := scene.NewLoader(nopLogger{}).Load(path)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrMissingFrameName.Error())
}

func TestLoader_RejectsUnknownParent(t *testing.T) {
	path := writeScene(t, `
frames:
  - name: world
  - name: cup
    parent: shelf
`)

	_, err := scene.NewLoader(nopLogger{}).Load(path)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrUnknownParent.Error())
}

func TestLoader_RejectsParentCycle(t *testing.T) {
	// Two frames referencing each other never make progress.
	path := writeScene(t, `
frames:
  - name: a
    parent: b
  - name: b
    parent: a
`)

	_, err := scene.NewLoader(nopLogger{}).Load(path)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrUnknownParent.Error())
}

func TestLoader_ReadFailure(t *testing.T) {
	_, err := scene.NewLoader(nopLogger{}).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrSceneReadFailed.Error())
}

func TestLoader_ParseFailure(t *testing.T) {
	path := writeScene(t, "frames: [not: {valid")

	_, err := scene.NewLoader(nopLogger{}).Load(path)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrSceneParseFailed.Error())
}

func TestBuild_EmptyFile(t *testing.T) {
	g, err := scene.Build(&scene.File{})
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}
