// Package transform computes rigid transforms between frames of the
// scene tree and caches them with per-node dependency tracking.
package transform

import (
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// DependencySet is the set of node ids whose data contributed to a
// resolved transform.
type DependencySet map[domain.NodeID]struct{}

// Resolver walks the scene tree and composes the rigid transform between
// two frames. It is stateless beyond the graph it reads.
type Resolver struct {
	graph ports.GraphReader
}

// NewResolver creates a resolver over the given graph.
func NewResolver(graph ports.GraphReader) *Resolver {
	return &Resolver{graph: graph}
}

// Resolve computes the matrix mapping a point in orig's frame to dest's
// frame by walking both parent chains to their common ancestor. It
// returns the matrix together with every node id visited, so a cache can
// register the result against each of them.
func (r *Resolver) Resolve(dest, orig string) (domain.Mat4, DependencySet, error) {
	a, ok := r.graph.GetNode(orig)
	if !ok {
		return domain.Mat4{}, nil, zerr.With(domain.ErrNodeNotFound, "frame", orig)
	}
	b, ok := r.graph.GetNode(dest)
	if !ok {
		return domain.Mat4{}, nil, zerr.With(domain.ErrNodeNotFound, "frame", dest)
	}

	deps := DependencySet{a.ID: {}, b.ID: {}}
	if a.ID == b.ID {
		return domain.Identity(), deps, nil
	}

	minLevel := min(a.Level, b.Level)
	if minLevel < 0 {
		return domain.Mat4{}, nil, zerr.With(zerr.With(domain.ErrGraphInconsistent, "dest", dest), "orig", orig)
	}

	// Walk each endpoint up to the common level. atotal accumulates the
	// downward RT links applied to orig, btotal the ones applied to dest.
	atotal := domain.Identity()
	btotal := domain.Identity()

	var err error
	if a, atotal, err = r.climb(a, minLevel, atotal, deps); err != nil {
		return domain.Mat4{}, nil, err
	}
	if b, btotal, err = r.climb(b, minLevel, btotal, deps); err != nil {
		return domain.Mat4{}, nil, err
	}

	// From the common level upward, step both chains in lockstep until
	// they meet. Disconnected components run out of parents first.
	for a.ID != b.ID {
		pa, okA := r.graph.GetParent(a)
		pb, okB := r.graph.GetParent(b)
		if !okA || !okB {
			return domain.Mat4{}, nil, zerr.With(zerr.With(domain.ErrNoCommonAncestor, "dest", dest), "orig", orig)
		}
		ea, ok := r.graph.GetEdgeRT(pa, a.ID)
		if !ok {
			return domain.Mat4{}, nil, zerr.With(zerr.With(domain.ErrBrokenChain, "parent", pa.Name.String()), "child", a.Name.String())
		}
		eb, ok := r.graph.GetEdgeRT(pb, b.ID)
		if !ok {
			return domain.Mat4{}, nil, zerr.With(zerr.With(domain.ErrBrokenChain, "parent", pb.Name.String()), "child", b.Name.String())
		}
		atotal = ea.Mul(atotal)
		btotal = eb.Mul(btotal)
		deps[pa.ID] = struct{}{}
		deps[pb.ID] = struct{}{}
		a, b = pa, pb
	}

	// atotal maps orig up to the ancestor, btotal maps dest up to the
	// same ancestor, so the ancestor-to-dest leg is inverted.
	return atotal.Mul(btotal.Inverse()), deps, nil
}

// climb walks node upward while its level is at least minLevel,
// pre-multiplying each parent->child RT edge into total and recording
// every parent visited. A missing parent above minLevel is a broken
// chain; at minLevel it just means the walk reached a root.
func (r *Resolver) climb(node domain.Node, minLevel int, total domain.Mat4, deps DependencySet) (domain.Node, domain.Mat4, error) {
	for node.Level >= minLevel {
		parent, ok := r.graph.GetParent(node)
		if !ok {
			if node.Level > minLevel {
				return domain.Node{}, domain.Mat4{}, zerr.With(zerr.With(domain.ErrBrokenChain, "frame", node.Name.String()), "level", node.Level)
			}
			break
		}
		rt, ok := r.graph.GetEdgeRT(parent, node.ID)
		if !ok {
			return domain.Node{}, domain.Mat4{}, zerr.With(zerr.With(domain.ErrBrokenChain, "parent", parent.Name.String()), "child", node.Name.String())
		}
		total = rt.Mul(total)
		deps[parent.ID] = struct{}{}
		node = parent
	}
	return node, total, nil
}
