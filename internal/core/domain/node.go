package domain

// NodeID is the opaque, stable identifier of a graph node.
type NodeID uint64

// EdgeType discriminates the payload attached to a parent->child edge.
// Only RT edges matter for transform resolution; the graph may carry
// other edge types that the resolver and cache ignore.
type EdgeType string

// EdgeTypeRT marks an edge carrying a rigid transform from the parent
// frame to the child frame.
const EdgeTypeRT EdgeType = "RT"

// Node is a frame in the scene tree. Level is the node's depth, with
// the root at level 0.
type Node struct {
	ID    NodeID
	Name  InternedString
	Level int
}

// MutationKind identifies the kind of graph change delivered on the
// mutation feed.
type MutationKind uint8

const (
	// MutationEdgeUpserted indicates an edge was created or its payload replaced.
	MutationEdgeUpserted MutationKind = iota
	// MutationEdgeDeleted indicates an edge was removed.
	MutationEdgeDeleted
	// MutationNodeDeleted indicates a node was removed.
	MutationNodeDeleted
)

// MutationEvent describes one applied graph mutation. From and To are
// set for edge events; Node is set for node deletion.
type MutationEvent struct {
	Kind MutationKind
	From NodeID
	To   NodeID
	Node NodeID
	Type EdgeType
}
