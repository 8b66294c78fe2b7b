// Package ports defines the interfaces between the transform engine and
// its collaborators.
package ports

import (
	"iter"

	"go.trai.ch/framegraph/internal/core/domain"
)

// GraphReader is the read-only view of the scene graph that the resolver
// walks. Lookups report absence with a false second return; the resolver
// maps absence to its error taxonomy.
//
//go:generate mockgen -source=graph_reader.go -destination=mocks/mock_graph_reader.go -package=mocks
type GraphReader interface {
	// GetNode looks up a node by its frame name.
	GetNode(name string) (domain.Node, bool)

	// GetNodeByID looks up a node by its id.
	GetNodeByID(id domain.NodeID) (domain.Node, bool)

	// GetParent returns the parent of the given node, if any.
	GetParent(node domain.Node) (domain.Node, bool)

	// GetEdgeRT returns the rigid transform attached to the RT edge from
	// parent to the child with the given id.
	GetEdgeRT(parent domain.Node, child domain.NodeID) (domain.Mat4, bool)
}

// MutationHandler receives one applied graph mutation. Handlers are
// called synchronously after the mutation is visible to readers.
type MutationHandler func(ev domain.MutationEvent)

// GraphNotifier delivers mutation notifications to subscribers. The
// transform cache registers its invalidation hooks here at construction.
type GraphNotifier interface {
	Subscribe(fn MutationHandler)
}

// GraphStore is the full surface of a scene graph collaborator: reads,
// mutation notifications, and the mutations themselves.
type GraphStore interface {
	GraphReader
	GraphNotifier

	// AddFrame creates a new frame under parent with the given RT edge
	// payload. An empty parent name creates a root frame at level 0.
	AddFrame(name, parent string, rt domain.Mat4) error

	// UpsertEdge creates or replaces the payload of a typed edge.
	UpsertEdge(parent, child string, t domain.EdgeType, rt domain.Mat4) error

	// DeleteEdge removes a typed edge between two frames.
	DeleteEdge(parent, child string, t domain.EdgeType) error

	// DeleteNode removes a frame. Children are left in place and become
	// unreachable until reattached; queries through them report a broken
	// chain, which callers treat as a normal outcome.
	DeleteNode(name string) error

	// Frames returns an iterator over all frames in the store.
	Frames() iter.Seq[domain.Node]

	// Len returns the number of frames in the store.
	Len() int
}
