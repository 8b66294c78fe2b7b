// Package memgraph implements an in-memory scene tree satisfying the
// graph store port. It is the reference collaborator for the transform
// engine; a distributed graph would plug in behind the same port.
package memgraph

import (
	"iter"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GraphStore = (*Graph)(nil)

// frame is the internal node record. Parent is the parent's id; roots
// have no parent entry at all.
type frame struct {
	node      domain.Node
	parent    domain.NodeID
	hasParent bool
}

// edgeRef identifies a typed directed edge.
type edgeRef struct {
	from, to domain.NodeID
	typ      domain.EdgeType
}

// Graph is an in-memory forest of named frames with typed edges.
// Mutations notify subscribers synchronously after they are applied and
// after the internal lock is released, so handlers may read the graph.
type Graph struct {
	mu     sync.RWMutex
	byName map[domain.InternedString]*frame
	byID   map[domain.NodeID]*frame
	edges  map[edgeRef]domain.Mat4

	subMu sync.RWMutex
	subs  []ports.MutationHandler
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		byName: make(map[domain.InternedString]*frame),
		byID:   make(map[domain.NodeID]*frame),
		edges:  make(map[edgeRef]domain.Mat4),
	}
}

// FrameID derives the stable node id for a frame name. Ids survive
// reloads because they are content-derived rather than sequential.
func FrameID(name string) domain.NodeID {
	return domain.NodeID(xxhash.Sum64String(name))
}

// Subscribe registers a mutation handler. Handlers run on the mutating
// goroutine in registration order.
func (g *Graph) Subscribe(fn ports.MutationHandler) {
	g.subMu.Lock()
	defer g.subMu.Unlock()
	g.subs = append(g.subs, fn)
}

func (g *Graph) notify(ev domain.MutationEvent) {
	g.subMu.RLock()
	subs := make([]ports.MutationHandler, len(g.subs))
	copy(subs, g.subs)
	g.subMu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// GetNode looks up a node by its frame name.
func (g *Graph) GetNode(name string) (domain.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	f, ok := g.byName[domain.NewInternedString(name)]
	if !ok {
		return domain.Node{}, false
	}
	return f.node, true
}

// GetNodeByID looks up a node by its id.
func (g *Graph) GetNodeByID(id domain.NodeID) (domain.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	f, ok := g.byID[id]
	if !ok {
		return domain.Node{}, false
	}
	return f.node, true
}

// GetParent returns the parent of the given node, if any. A dangling
// parent reference (the parent was deleted) reads as absent.
func (g *Graph) GetParent(node domain.Node) (domain.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	f, ok := g.byID[node.ID]
	if !ok || !f.hasParent {
		return domain.Node{}, false
	}
	p, ok := g.byID[f.parent]
	if !ok {
		return domain.Node{}, false
	}
	return p.node, true
}

// GetEdgeRT returns the rigid transform on the RT edge from parent to
// the child with the given id.
func (g *Graph) GetEdgeRT(parent domain.Node, child domain.NodeID) (domain.Mat4, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.edges[edgeRef{from: parent.ID, to: child, typ: domain.EdgeTypeRT}]
	return m, ok
}

// Frames returns an iterator over all frames in the store.
func (g *Graph) Frames() iter.Seq[domain.Node] {
	return func(yield func(domain.Node) bool) {
		g.mu.RLock()
		nodes := make([]domain.Node, 0, len(g.byID))
		for _, f := range g.byID {
			nodes = append(nodes, f.node)
		}
		g.mu.RUnlock()

		for _, n := range nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// AddFrame creates a new frame under parent with the given RT edge
// payload. An empty parent name creates a root frame at level 0. The
// RT edge to a non-root frame is announced as an edge upsert.
func (g *Graph) AddFrame(name, parent string, rt domain.Mat4) error {
	if name == "" {
		return domain.ErrMissingFrameName
	}

	g.mu.Lock()
	interned := domain.NewInternedString(name)
	if _, exists := g.byName[interned]; exists {
		g.mu.Unlock()
		return zerr.With(domain.ErrFrameExists, "frame", name)
	}

	f := &frame{node: domain.Node{ID: FrameID(name), Name: interned}}
	var ev *domain.MutationEvent

	if parent == "" {
		f.node.Level = 0
	} else {
		p, ok := g.byName[domain.NewInternedString(parent)]
		if !ok {
			g.mu.Unlock()
			return zerr.With(zerr.With(domain.ErrUnknownParent, "frame", name), "parent", parent)
		}
		f.node.Level = p.node.Level + 1
		f.parent = p.node.ID
		f.hasParent = true
		g.edges[edgeRef{from: p.node.ID, to: f.node.ID, typ: domain.EdgeTypeRT}] = rt
		ev = &domain.MutationEvent{
			Kind: domain.MutationEdgeUpserted,
			From: p.node.ID,
			To:   f.node.ID,
			Type: domain.EdgeTypeRT,
		}
	}

	g.byName[interned] = f
	g.byID[f.node.ID] = f
	g.mu.Unlock()

	if ev != nil {
		g.notify(*ev)
	}
	return nil
}

// UpsertEdge creates or replaces the payload of a typed edge between two
// existing frames and announces the change.
func (g *Graph) UpsertEdge(parent, child string, t domain.EdgeType, rt domain.Mat4) error {
	g.mu.Lock()
	p, ok := g.byName[domain.NewInternedString(parent)]
	if !ok {
		g.mu.Unlock()
		return zerr.With(domain.ErrNodeNotFound, "frame", parent)
	}
	c, ok := g.byName[domain.NewInternedString(child)]
	if !ok {
		g.mu.Unlock()
		return zerr.With(domain.ErrNodeNotFound, "frame", child)
	}
	g.edges[edgeRef{from: p.node.ID, to: c.node.ID, typ: t}] = rt
	g.mu.Unlock()

	g.notify(domain.MutationEvent{
		Kind: domain.MutationEdgeUpserted,
		From: p.node.ID,
		To:   c.node.ID,
		Type: t,
	})
	return nil
}

// DeleteEdge removes a typed edge between two frames and announces the
// deletion. Removing an absent edge is an error so callers notice diff
// bugs early.
func (g *Graph) DeleteEdge(parent, child string, t domain.EdgeType) error {
	g.mu.Lock()
	p, ok := g.byName[domain.NewInternedString(parent)]
	if !ok {
		g.mu.Unlock()
		return zerr.With(domain.ErrNodeNotFound, "frame", parent)
	}
	c, ok := g.byName[domain.NewInternedString(child)]
	if !ok {
		g.mu.Unlock()
		return zerr.With(domain.ErrNodeNotFound, "frame", child)
	}
	ref := edgeRef{from: p.node.ID, to: c.node.ID, typ: t}
	if _, ok := g.edges[ref]; !ok {
		g.mu.Unlock()
		err := zerr.With(domain.ErrEdgeNotFound, "parent", parent)
		err = zerr.With(err, "child", child)
		return zerr.With(err, "type", string(t))
	}
	delete(g.edges, ref)
	g.mu.Unlock()

	g.notify(domain.MutationEvent{
		Kind: domain.MutationEdgeDeleted,
		From: p.node.ID,
		To:   c.node.ID,
		Type: t,
	})
	return nil
}

// DeleteNode removes a frame and every edge touching it. Children keep
// their parent reference and read as broken chains until reattached.
func (g *Graph) DeleteNode(name string) error {
	g.mu.Lock()
	f, ok := g.byName[domain.NewInternedString(name)]
	if !ok {
		g.mu.Unlock()
		return zerr.With(domain.ErrNodeNotFound, "frame", name)
	}
	id := f.node.ID
	delete(g.byName, f.node.Name)
	delete(g.byID, id)
	for ref := range g.edges {
		if ref.from == id || ref.to == id {
			delete(g.edges, ref)
		}
	}
	g.mu.Unlock()

	g.notify(domain.MutationEvent{
		Kind: domain.MutationNodeDeleted,
		Node: id,
	})
	return nil
}

// Len returns the number of frames in the store.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.byID)
}
