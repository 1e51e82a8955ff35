// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/RemoveEdge/EdgeCount.
// Determinism:
//   - Every edge is stored under its canonical (min, max) key pair
//     (edgeKey), so a and b in either order resolve to the same slot.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
// AI-HINT (file):
//   - A self-edge (a == b) is rejected silently. A one-cell segment has
//     Start == End, but FromSegments and FromParseResult check for that
//     and add a vertex instead, so this is a defensive no-op, not a
//     validated error path.
package graph

import "github.com/sketchgraph/sketchgraph/model"

// AddEdge connects a and b, auto-adding either endpoint if missing, and
// updates both endpoints' adjacency entries.
//
// Steps:
//  1. Reject self-edges as a no-op.
//  2. Ensure both endpoints exist.
//  3. Canonicalize the pair and store under edges[ka][kb], skipping if
//     the edge already exists (AddEdge is idempotent).
//  4. Mirror the connection into both endpoints' adjacency entries.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b model.Point) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if a == b {
		return
	}
	g.addVertexLocked(a)
	g.addVertexLocked(b)

	ka, kb := edgeKey(a, b)
	inner, ok := g.edges[ka]
	if !ok {
		inner = make(map[model.Point]Edge)
		g.edges[ka] = inner
	}
	if _, exists := inner[kb]; exists {
		return
	}
	inner[kb] = Edge{A: ka, B: kb}

	g.adjacency[a].neighbors[b] = struct{}{}
	g.adjacency[b].neighbors[a] = struct{}{}
}

// HasEdge reports whether a and b are directly connected. O(1).
func (g *Graph) HasEdge(a, b model.Point) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ka, kb := edgeKey(a, b)
	inner, ok := g.edges[ka]
	if !ok {
		return false
	}
	_, ok = inner[kb]
	return ok
}

// RemoveEdge deletes the edge between a and b, if present, updating both
// endpoints' adjacency entries.
//
// Steps:
//  1. Canonicalize (a, b) and delete the stored Edge, pruning the bucket
//     if it is now empty.
//  2. Drop b from a's neighbor set and a from b's, if those entries exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b model.Point) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ka, kb := edgeKey(a, b)
	if inner, ok := g.edges[ka]; ok {
		delete(inner, kb)
		if len(inner) == 0 {
			delete(g.edges, ka)
		}
	}
	if adj, ok := g.adjacency[a]; ok {
		delete(adj.neighbors, b)
	}
	if adj, ok := g.adjacency[b]; ok {
		delete(adj.neighbors, a)
	}
}

// EdgeCount returns the total number of edges in the graph. O(V) in the
// number of canonical buckets.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, inner := range g.edges {
		n += len(inner)
	}
	return n
}
