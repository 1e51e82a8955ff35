// Package extractor partitions the planar graph built from parsed
// segments into minimal interior cycles (faces) and filaments (dangling
// chains), per spec §4.5.
//
// What:
//
//   - ExtractAll repeatedly picks the minimum remaining vertex, and either
//     discards an isolated vertex, peels a filament from a degree-1
//     vertex, or traces a minimal cycle from a branching (degree >= 2)
//     vertex using clockwise-most / counter-clockwise-most angular
//     selection.
//   - The graph is consumed: ExtractAll mutates (shrinks) the *graph.Graph
//     it is given, removing every edge and vertex it visits.
//
// Why:
//
//   - Once segments are wired into a planar adjacency graph, the
//     interesting geometric shapes (closed regions vs. dangling lines) can
//     only be recovered by tracing faces with an angular ordering — a
//     generic DFS/BFS has no notion of "the tightest right turn" and
//     cannot distinguish a face from an arbitrary cycle in a non-simple
//     planar graph.
//
// Determinism:
//
//   - Every "pick the minimum" is a genuine minimum under model.Point's
//     row-major order; clockwise/counter-clockwise selection is a pure
//     function of local geometry with ties broken by that same order.
//
// Complexity:
//
//   - Each driver iteration removes at least one vertex or edge, so there
//     are at most V + E iterations; each one starts with an O(V) scan for
//     the minimum remaining vertex, so the whole run is O(V·(V + E)) plus
//     the cost of the walks themselves.
package extractor
