// File: extractor.go
// Role: The planar primitive extractor's driver loop and its three
//       walking subroutines: extractFilament, extractFilamentFromMiddle,
//       extractCycle (plus closeCycle, its face-closing helper).
// Determinism:
//   - run() always picks the row-major minimum remaining vertex, so the
//     order cycles/filaments are discovered in is a pure function of the
//     graph's vertex positions, never of map iteration order.
// Concurrency:
//   - A state owns one *graph.Graph exclusively for the run's duration;
//     ExtractAll is not safe to call concurrently on the same graph.
// AI-HINT (file):
//   - Every subroutine here only ever removes vertices/edges, never adds
//     any back — the graph shrinks monotonically to empty (see graph's
//     own AI-HINT on RemoveVertex/RemoveEdge being shrink-only).
package extractor

import (
	"github.com/sketchgraph/sketchgraph/graph"
	"github.com/sketchgraph/sketchgraph/model"
)

// ExtractAll partitions g into minimal cycles and filaments, per spec
// §4.5. It mutates g: every edge and vertex visited is removed, so the
// graph is empty once ExtractAll returns.
func ExtractAll(g *graph.Graph) Result {
	st := &state{
		g:       g,
		visited: make(map[model.Point]struct{}),
	}
	st.run()
	return st.result
}

// run is the driver loop of spec §4.5.
//
// Steps:
//  1. Pick the minimum remaining vertex; stop once the graph is empty.
//  2. Degree 0: an isolated vertex contributes nothing; drop it.
//  3. Degree 1: peel it as a filament from its own leaf.
//  4. Degree ≥2: trace the minimal face starting there.
func (st *state) run() {
	for {
		v, ok := st.g.MinVertex()
		if !ok {
			return
		}
		d := st.g.Degree(v)
		switch {
		case d == 0:
			st.g.RemoveVertex(v)
		case d == 1:
			f := st.extractFilament(v, v)
			st.result.Filaments = append(st.result.Filaments, f)
		default:
			// Each trace starts with an empty visited set.
			st.visited = make(map[model.Point]struct{})
			st.extractCycle(v)
		}
	}
}

// extractFilament peels a chain off the graph starting at `from`, toward
// `to`, per spec §4.5. By the time this runs, any edge that belongs to an
// already-recorded cycle has already been removed from the graph (see
// closeCycle), so a chain peeled here can never re-cross cycle territory.
//
// Steps:
//  1. If `from` is a true branch point (degree ≥3) and distinct from `to`,
//     detach the (from, to) edge first and restart the walk from `to` (or
//     `to`'s sole remaining neighbor, if removing that edge left it a leaf).
//  2. Otherwise walk outward from `from` directly.
//  3. Follow the degree-1 chain, removing each edge and vertex as it is
//     consumed, until a dead end (degree 0) or a rejoined branch (degree
//     ≥2) is reached.
func (st *state) extractFilament(from, to model.Point) Filament {
	var history Filament
	var current model.Point

	if from != to && st.g.Degree(from) >= 3 {
		st.g.RemoveEdge(from, to)
		start := to
		if st.g.Degree(to) == 1 {
			nbrs := st.g.Neighbors(to)
			if len(nbrs) == 1 {
				start = nbrs[0]
			}
		}
		history = append(history, from)
		current = start
	} else {
		current = from
	}

	for {
		d := st.g.Degree(current)
		switch {
		case d == 0:
			st.g.RemoveVertex(current)
			history = append(history, current)
			return history
		case d == 1:
			nbrs := st.g.Neighbors(current)
			next := nbrs[0]
			st.g.RemoveEdge(current, next)
			st.g.RemoveVertex(current)
			history = append(history, current)
			current = next
		default:
			history = append(history, current)
			return history
		}
	}
}

// extractFilamentFromMiddle advances along a degree-2 chain (avoiding the
// vertex just come from) until a branch point is reached, then delegates
// to extractFilament, per spec §4.5.
//
// Steps:
//  1. While the current vertex still has degree 2, step to its minimum
//     neighbor, falling back to the other one if that neighbor is where
//     the walk just came from.
//  2. Once degree ≠ 2 (leaf or branch), hand off to extractFilament.
func (st *state) extractFilamentFromMiddle(prev, curr model.Point) Filament {
	for st.g.Degree(curr) == 2 {
		nbrs := st.g.Neighbors(curr)
		next := nbrs[0]
		if next == prev {
			next = nbrs[1]
		}
		prev, curr = curr, next
	}
	return st.extractFilament(curr, prev)
}

// extractCycle traces a minimal face starting at root, per spec §4.5.
// Only called when degree(root) >= 2, so root always has at least one
// neighbor to start from; the "no neighbors" fallback below only guards
// against a degenerate call.
//
// Steps:
//  1. Pick the clockwise-most neighbor of root (no incoming direction
//     yet) as the walk's first step.
//  2. Walk forward, at each vertex taking the counter-clockwise-most
//     turn relative to the direction just arrived from:
//     - back at root: the face has closed; record it and remove its ring.
//     - a dead end (no next neighbor): the walk ran off the face onto an
//       attached filament instead; peel that filament and stop.
//     - a vertex visited earlier in this same walk: the walk re-entered
//       itself without closing; hand off to extractFilamentFromMiddle.
//     - otherwise: mark the vertex visited and continue.
func (st *state) extractCycle(root model.Point) {
	start, ok := ClockwiseMost(st.g.Neighbors(root), model.Point{}, false, root)
	if !ok {
		start = root
	}

	history := []model.Point{root}
	prev := root
	curr := start
	st.visited[root] = struct{}{}

	for {
		if curr == root {
			st.closeCycle(history)
			return
		}

		if _, seen := st.visited[curr]; seen {
			f := st.extractFilamentFromMiddle(start, root)
			st.result.Filaments = append(st.result.Filaments, f)
			return
		}

		nbrs := st.g.Neighbors(curr)
		next, hasNext := CounterClockwiseMost(nbrs, prev, true, curr)
		if !hasNext {
			f := st.extractFilament(prev, prev)
			st.result.Filaments = append(st.result.Filaments, f)
			return
		}

		st.visited[curr] = struct{}{}
		history = append(history, curr)
		prev = curr
		curr = next
	}
}

// closeCycle records the closed walk and removes every edge of the traced
// face from the graph, root and start included. Removing the full ring
// (not just the closing edge) is what makes the partition exhaustive: a
// vertex on the ring that also carries an attached tail keeps exactly that
// tail's degree once its two ring edges are gone, and the driver loop picks
// it back up on a later iteration as an ordinary degree-1 or degree-0
// vertex — no separate bookkeeping of "cycle edges" is needed to keep a
// later filament walk from re-crossing ring territory.
func (st *state) closeCycle(history []model.Point) {
	cyc := make(Cycle, len(history))
	copy(cyc, history)
	st.result.Cycles = append(st.result.Cycles, cyc)

	for i := 0; i+1 < len(history); i++ {
		st.g.RemoveEdge(history[i], history[i+1])
	}
	st.g.RemoveEdge(history[len(history)-1], history[0])
}
