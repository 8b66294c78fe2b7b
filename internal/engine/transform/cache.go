package transform

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
)

// key is the ordered (dest, orig) pair identifying one cached transform.
// (A,B) and (B,A) are distinct entries; the inverse direction is
// computed and cached independently on first request.
type key struct {
	dest, orig domain.InternedString
}

// Cache memoizes resolved transforms and invalidates exactly the entries
// that depend on a mutated node. The memo table and the dependency index
// are owned together and guarded by one mutex, so an entry can never
// exist in one structure without the other.
type Cache struct {
	mu       sync.Mutex
	resolver *Resolver
	entries  map[key]domain.Mat4
	byNode   map[domain.NodeID][]key

	logger ports.Logger
	tracer ports.Tracer
}

// NewCache creates a cache over the given graph. Pass
// telemetry.NewNoOpTracer() when tracing is not wanted.
func NewCache(graph ports.GraphReader, logger ports.Logger, tracer ports.Tracer) *Cache {
	return &Cache{
		resolver: NewResolver(graph),
		entries:  make(map[key]domain.Mat4),
		byNode:   make(map[domain.NodeID][]key),
		logger:   logger,
		tracer:   tracer,
	}
}

// SubscribeTo registers the cache's invalidation hooks with the graph's
// mutation feed. The notifier calls the hooks directly after applying
// each mutation.
func (c *Cache) SubscribeTo(n ports.GraphNotifier) {
	n.Subscribe(c.OnMutation)
}

// Transform returns the matrix mapping orig's frame to dest's frame,
// serving from the memo table when possible. A miss resolves through the
// graph and registers the new entry against every node id it depended
// on. Resolver failures are returned as-is and nothing is cached.
func (c *Cache) Transform(ctx context.Context, dest, orig string) (domain.Mat4, error) {
	_, span := c.tracer.Start(ctx, "transform.resolve")
	defer span.End()
	span.SetAttribute("dest", dest)
	span.SetAttribute("orig", orig)

	k := key{dest: domain.NewInternedString(dest), orig: domain.NewInternedString(orig)}

	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.entries[k]; ok {
		span.SetAttribute("cache_hit", true)
		return m, nil
	}
	span.SetAttribute("cache_hit", false)

	m, deps, err := c.resolver.Resolve(dest, orig)
	if err != nil {
		span.RecordError(err)
		return domain.Mat4{}, err
	}

	c.entries[k] = m
	for id := range deps {
		c.byNode[id] = append(c.byNode[id], k)
	}
	span.SetAttribute("dependencies", len(deps))
	return m, nil
}

// Invalidate drops every cache entry that depended on the given node and
// flushes the node's dependency-index slot. Unknown ids are a no-op, so
// redundant invalidation is always safe.
func (c *Cache) Invalidate(id domain.NodeID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(id)
}

func (c *Cache) invalidateLocked(id domain.NodeID) {
	keys, ok := c.byNode[id]
	if !ok {
		return
	}
	for _, k := range keys {
		delete(c.entries, k)
	}
	delete(c.byNode, id)
	c.logger.Info(fmt.Sprintf("invalidated %d cached transforms for node %d", len(keys), id))
}

// OnMutation dispatches one graph mutation to the matching hook.
func (c *Cache) OnMutation(ev domain.MutationEvent) {
	switch ev.Kind {
	case domain.MutationEdgeUpserted:
		c.OnEdgeUpserted(ev.From, ev.To, ev.Type)
	case domain.MutationEdgeDeleted:
		c.OnEdgeDeleted(ev.From, ev.To, ev.Type)
	case domain.MutationNodeDeleted:
		c.OnNodeDeleted(ev.Node)
	}
}

// OnEdgeUpserted invalidates both endpoints of a created or replaced
// edge, but only for RT edges. Other edge types carry no spatial data
// and must not flush cached transforms.
func (c *Cache) OnEdgeUpserted(from, to domain.NodeID, t domain.EdgeType) {
	if t != domain.EdgeTypeRT {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(from)
	c.invalidateLocked(to)
}

// OnEdgeDeleted invalidates both endpoints of a deleted RT edge.
func (c *Cache) OnEdgeDeleted(from, to domain.NodeID, t domain.EdgeType) {
	if t != domain.EdgeTypeRT {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(from)
	c.invalidateLocked(to)
}

// OnNodeDeleted invalidates a deleted node unconditionally.
func (c *Cache) OnNodeDeleted(id domain.NodeID) {
	c.Invalidate(id)
}

// Clear empties the memo table and the dependency index. The index is
// otherwise only pruned per-node on invalidation, matching the source
// system's policy of unbounded growth between invalidations.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[key]domain.Mat4)
	c.byNode = make(map[domain.NodeID][]key)
}

// Len returns the number of memoized transforms.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
