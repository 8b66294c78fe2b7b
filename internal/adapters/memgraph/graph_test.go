package memgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/adapters/memgraph"
	"go.trai.ch/framegraph/internal/core/domain"
)

func labGraph(t *testing.T) *memgraph.Graph {
	t.Helper()
	g := memgraph.NewGraph()
	require.NoError(t, g.AddFrame("world", "", domain.Identity()))
	require.NoError(t, g.AddFrame("table", "world", domain.Translation(1, 0, 0)))
	require.NoError(t, g.AddFrame("cup", "table", domain.Translation(0, 1, 0)))
	return g
}

func TestGraph_AddFrame(t *testing.T) {
	g := labGraph(t)

	world, ok := g.GetNode("world")
	require.True(t, ok)
	assert.Equal(t, 0, world.Level)
	assert.Equal(t, memgraph.FrameID("world"), world.ID)

	cup, ok := g.GetNode("cup")
	require.True(t, ok)
	assert.Equal(t, 2, cup.Level)

	table, ok := g.GetParent(cup)
	require.True(t, ok)
	assert.Equal(t, "table", table.Name.String())

	rt, ok := g.GetEdgeRT(table, cup.ID)
	require.True(t, ok)
	assert.Equal(t, domain.Translation(0, 1, 0), rt)

	assert.Equal(t, 3, g.Len())
}

func TestGraph_AddFrameRejectsDuplicates(t *testing.T) {
	g := labGraph(t)

	err := g.AddFrame("cup", "world", domain.Identity())
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrFrameExists.Error())
	assert.Equal(t, 3, g.Len())
}

func TestGraph_AddFrameRejectsUnknownParent(t *testing.T) {
	g := labGraph(t)

	err := g.AddFrame("saucer", "shelf", domain.Identity())
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrUnknownParent.Error())
	_, ok := g.GetNode("saucer")
	assert.False(t, ok)
}

func TestGraph_AddFrameRejectsEmptyName(t *testing.T) {
	g := memgraph.NewGraph()

	err := g.AddFrame("", "", domain.Identity())
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrMissingFrameName.Error())
}

func TestFrameID_Stable(t *testing.T) {
	// Ids are derived from the name, so a frame deleted and re-added
	// keeps the same id across reloads.
	id := memgraph.FrameID("cup")
	assert.Equal(t, id, memgraph.FrameID("cup"))
	assert.NotEqual(t, id, memgraph.FrameID("table"))

	g := labGraph(t)
	require.NoError(t, g.DeleteNode("cup"))
	require.NoError(t, g.AddFrame("cup", "world", domain.Identity()))
	cup, ok := g.GetNode("cup")
	require.True(t, ok)
	assert.Equal(t, id, cup.ID)
}

func TestGraph_DeleteNode(t *testing.T) {
	g := labGraph(t)
	cup, ok := g.GetNode("cup")
	require.True(t, ok)
	table, ok := g.GetNode("table")
	require.True(t, ok)

	require.NoError(t, g.DeleteNode("table"))
	assert.Equal(t, 2, g.Len())

	_, ok = g.GetNode("table")
	assert.False(t, ok)

	// cup's parent reference now dangles and reads as absent.
	_, ok = g.GetParent(cup)
	assert.False(t, ok)

	// Edges touching the deleted node are gone too.
	_, ok = g.GetEdgeRT(table, cup.ID)
	assert.False(t, ok)

	err := g.DeleteNode("table")
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrNodeNotFound.Error())
}

func TestGraph_UpsertEdge(t *testing.T) {
	g := labGraph(t)
	world, _ := g.GetNode("world")
	table, _ := g.GetNode("table")

	require.NoError(t, g.UpsertEdge("world", "table", domain.EdgeTypeRT, domain.Translation(2, 0, 0)))
	rt, ok := g.GetEdgeRT(world, table.ID)
	require.True(t, ok)
	assert.Equal(t, domain.Translation(2, 0, 0), rt)

	err := g.UpsertEdge("world", "shelf", domain.EdgeTypeRT, domain.Identity())
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrNodeNotFound.Error())
}

func TestGraph_DeleteEdge(t *testing.T) {
	g := labGraph(t)
	table, _ := g.GetNode("table")
	cup, _ := g.GetNode("cup")

	require.NoError(t, g.DeleteEdge("table", "cup", domain.EdgeTypeRT))
	_, ok := g.GetEdgeRT(table, cup.ID)
	assert.False(t, ok)

	// Double delete is a diff bug and surfaces as an error.
	err := g.DeleteEdge("table", "cup", domain.EdgeTypeRT)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrEdgeNotFound.Error())
}

func TestGraph_Frames(t *testing.T) {
	g := labGraph(t)

	seen := make(map[string]int)
	for n := range g.Frames() {
		seen[n.Name.String()] = n.Level
	}

	assert.Equal(t, map[string]int{"world": 0, "table": 1, "cup": 2}, seen)
}

func TestGraph_NotifiesAfterApplying(t *testing.T) {
	g := labGraph(t)

	// Handlers run after the lock is released, so they may read the graph
	// and must observe the mutation already applied.
	var events []domain.MutationEvent
	g.Subscribe(func(ev domain.MutationEvent) {
		events = append(events, ev)
		if ev.Kind == domain.MutationNodeDeleted {
			_, ok := g.GetNode("cup")
			assert.False(t, ok, "handler must see the node already gone")
		}
	})

	require.NoError(t, g.UpsertEdge("table", "cup", domain.EdgeTypeRT, domain.Translation(0, 2, 0)))
	require.NoError(t, g.DeleteEdge("table", "cup", domain.EdgeTypeRT))
	require.NoError(t, g.DeleteNode("cup"))

	require.Len(t, events, 3)
	assert.Equal(t, domain.MutationEvent{
		Kind: domain.MutationEdgeUpserted,
		From: memgraph.FrameID("table"),
		To:   memgraph.FrameID("cup"),
		Type: domain.EdgeTypeRT,
	}, events[0])
	assert.Equal(t, domain.MutationEdgeDeleted, events[1].Kind)
	assert.Equal(t, domain.MutationEvent{
		Kind: domain.MutationNodeDeleted,
		Node: memgraph.FrameID("cup"),
	}, events[2])
}

func TestGraph_AddFrameAnnouncesRTEdge(t *testing.T) {
	g := labGraph(t)

	var events []domain.MutationEvent
	g.Subscribe(func(ev domain.MutationEvent) { events = append(events, ev) })

	// Roots have no incoming edge and announce nothing.
	require.NoError(t, g.AddFrame("annex", "", domain.Identity()))
	require.Len(t, events, 0)

	require.NoError(t, g.AddFrame("lamp", "table", domain.Translation(0, 0, 1)))
	require.Len(t, events, 1)
	assert.Equal(t, domain.MutationEdgeUpserted, events[0].Kind)
	assert.Equal(t, memgraph.FrameID("table"), events[0].From)
	assert.Equal(t, memgraph.FrameID("lamp"), events[0].To)
}
