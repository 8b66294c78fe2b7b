package watcher

import (
	"fmt"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reloader re-reads the scene file and applies the difference to the
// live graph store as individual mutations. Going through the store's
// mutation feed keeps downstream caches precise: an untouched subtree
// keeps its cached transforms across a reload.
type Reloader struct {
	loader ports.SceneLoader
	store  ports.GraphStore
	logger ports.Logger
	path   string

	lastHash uint64
}

// NewReloader creates a reloader for the given scene file and live store.
func NewReloader(loader ports.SceneLoader, store ports.GraphStore, logger ports.Logger, path string) *Reloader {
	return &Reloader{
		loader: loader,
		store:  store,
		logger: logger,
		path:   path,
	}
}

// Reload re-reads the scene file and applies the changes to the live
// store. A rewrite with identical content is detected by fingerprint
// and skipped entirely.
func (r *Reloader) Reload() error {
	raw, err := os.ReadFile(r.path) //nolint:gosec // Path was chosen at startup
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSceneReadFailed.Error()), "path", r.path)
	}

	sum := xxhash.Sum64(raw)
	if sum == r.lastHash {
		r.logger.Info("scene file unchanged, skipping reload")
		return nil
	}

	next, err := r.loader.Load(r.path)
	if err != nil {
		return err
	}

	changed, err := r.apply(next)
	if err != nil {
		return err
	}

	r.lastHash = sum
	r.logger.Info(fmt.Sprintf("reloaded scene: %d changes applied", changed))
	return nil
}

// apply diffs the freshly loaded store against the live one and replays
// the difference as mutations on the live store.
func (r *Reloader) apply(next ports.GraphStore) (int, error) {
	changed := 0

	// Added and reparented frames are applied parents-first so every
	// AddFrame finds its parent already present. A moved frame drags its
	// whole subtree through the rebuild: tearing down the parent removed
	// each child's RT edge and may have changed its depth, neither of
	// which an edge comparison alone can detect.
	rebuilt := make(map[string]bool)
	for _, node := range framesByLevel(next) {
		name := node.Name.String()
		parent, rt := edgeFromParent(next, node)

		live, ok := r.store.GetNode(name)
		if !ok {
			if err := r.store.AddFrame(name, parent, rt); err != nil {
				return changed, err
			}
			changed++
			continue
		}

		liveParent, liveRT := edgeFromParent(r.store, live)
		if liveParent != parent || rebuilt[parent] {
			if err := r.store.DeleteNode(name); err != nil {
				return changed, err
			}
			if err := r.store.AddFrame(name, parent, rt); err != nil {
				return changed, err
			}
			rebuilt[name] = true
			changed++
			continue
		}

		if parent != "" && rt != liveRT {
			if err := r.store.UpsertEdge(parent, name, domain.EdgeTypeRT, rt); err != nil {
				return changed, err
			}
			changed++
		}
	}

	// Frames no longer in the file are removed children-first.
	stale := framesByLevel(r.store)
	slices.Reverse(stale)
	for _, node := range stale {
		name := node.Name.String()
		if _, ok := next.GetNode(name); ok {
			continue
		}
		if err := r.store.DeleteNode(name); err != nil {
			return changed, err
		}
		changed++
	}

	return changed, nil
}

// framesByLevel snapshots a store's frames sorted by tree depth.
func framesByLevel(s ports.GraphStore) []domain.Node {
	var nodes []domain.Node
	for node := range s.Frames() {
		nodes = append(nodes, node)
	}
	slices.SortFunc(nodes, func(a, b domain.Node) int {
		if a.Level != b.Level {
			return a.Level - b.Level
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return nodes
}

// edgeFromParent returns a node's parent name and the RT payload of the
// edge from that parent. Roots return an empty name and the identity.
func edgeFromParent(s ports.GraphReader, node domain.Node) (string, domain.Mat4) {
	parent, ok := s.GetParent(node)
	if !ok {
		return "", domain.Identity()
	}
	rt, ok := s.GetEdgeRT(parent, node.ID)
	if !ok {
		return parent.Name.String(), domain.Identity()
	}
	return parent.Name.String(), rt
}
