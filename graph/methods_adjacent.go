// File: methods_adjacent.go
// Role: Adjacency queries derived from the edge set: Degree/Neighbors,
//       plus the Stats snapshot.
// Determinism:
//   - Neighbors() sorts its output by model.Point's row-major order, so
//     the extractor's angular selection runs over a stable input slice.
// Concurrency:
//   - Read-only; all three methods take mu's read lock.
package graph

import (
	"sort"

	"github.com/sketchgraph/sketchgraph/model"
)

// Degree returns the number of distinct neighbors of v, or 0 if v is not
// in the graph (per spec §7: "a graph vertex lacking adjacency is handled
// by returning an empty-degree default"). O(1).
func (g *Graph) Degree(v model.Point) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[v]
	if !ok {
		return 0
	}
	return len(adj.neighbors)
}

// Neighbors returns v's adjacent vertices in deterministic (row-major)
// order.
//
// Steps:
//  1. Copy the neighbor set into a slice.
//  2. Sort it by Point.Less so callers never observe map order.
//
// Complexity: O(degree(v) log degree(v)).
func (g *Graph) Neighbors(v model.Point) []model.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[v]
	if !ok {
		return nil
	}
	out := make([]model.Point, 0, len(adj.neighbors))
	for n := range adj.neighbors {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Stats is a read-only O(V+E) summary of the graph's size, grounded on the
// teacher's core.Stats()/GraphStats snapshot convention.
type Stats struct {
	VertexCount int
	EdgeCount   int
}

// Stats produces a snapshot of the graph's current size.
func (g *Graph) Stats() Stats {
	return Stats{VertexCount: g.VertexCount(), EdgeCount: g.EdgeCount()}
}
