// Package scene provides the YAML scene file loader.
package scene

import (
	"fmt"
	"os"

	"go.trai.ch/framegraph/internal/adapters/memgraph"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SceneLoader = (*Loader)(nil)

// Loader implements ports.SceneLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the scene file at path and returns a populated graph store.
// Frames may be declared in any order; parents are resolved over
// multiple passes so a child can precede its parent in the file.
func (l *Loader) Load(path string) (ports.GraphStore, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSceneReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSceneParseFailed.Error()), "path", path)
	}

	g, err := Build(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Info(fmt.Sprintf("loaded scene with %d frames from %s", g.Len(), path))
	return g, nil
}

// Build constructs a graph from a parsed scene file.
func Build(file *File) (*memgraph.Graph, error) {
	for _, f := range file.Frames {
		if f.Name == "" {
			return nil, domain.ErrMissingFrameName
		}
	}

	g := memgraph.NewGraph()

	// Insert frames until a full pass makes no progress. Whatever is
	// left references a parent that is missing or part of a cycle.
	pending := make([]*FrameDTO, len(file.Frames))
	copy(pending, file.Frames)

	for len(pending) > 0 {
		var stuck []*FrameDTO
		for _, f := range pending {
			if f.Parent != "" {
				if _, ok := g.GetNode(f.Parent); !ok {
					stuck = append(stuck, f)
					continue
				}
			}
			if err := g.AddFrame(f.Name, f.Parent, edgeMatrix(f)); err != nil {
				return nil, err
			}
		}
		if len(stuck) == len(pending) {
			return nil, zerr.With(zerr.With(domain.ErrUnknownParent, "frame", stuck[0].Name), "parent", stuck[0].Parent)
		}
		pending = stuck
	}

	// Non-RT links are applied once every frame exists.
	for _, f := range file.Frames {
		for _, link := range f.Links {
			if err := g.UpsertEdge(f.Name, link.To, domain.EdgeType(link.Type), domain.Identity()); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// edgeMatrix builds the parent->child RT matrix from a frame's
// translation and rotation.
func edgeMatrix(f *FrameDTO) domain.Mat4 {
	return domain.FromPose(domain.Pose6{
		X: f.Translation.X, Y: f.Translation.Y, Z: f.Translation.Z,
		Roll: f.Rotation.Roll, Pitch: f.Rotation.Pitch, Yaw: f.Rotation.Yaw,
	})
}
