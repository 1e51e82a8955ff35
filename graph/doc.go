// Package graph is the undirected planar graph model used by the
// extractor package: vertices are lattice points (model.Point), edges are
// keyed by a canonical (min, max) pair so each undirected connection has
// exactly one storage slot, and an adjacency index (degree + neighbor set)
// is maintained in lockstep with every edge mutation.
//
// What:
//
//   - Graph holds vertices and edges; its per-vertex adjacency index
//     answers degree/neighbor queries and is updated in O(1) amortized
//     per mutation.
//   - RemoveEdge/RemoveVertex shrink the graph monotonically — the
//     extractor relies on this: it only ever deletes, never re-adds.
//
// Why:
//
//   - The planar extractor (spec §4.5) repeatedly peels edges and vertices
//     off the graph while tracing cycles and filaments; a plain adjacency
//     list with a canonical edge key is the simplest structure that
//     supports that without double-bookkeeping per direction.
//
// Concurrency:
//
//   - Mutations are guarded by a single sync.RWMutex, mirroring the
//     teacher's per-file locking convention (see core/types.go), though
//     in practice each extraction run owns its Graph exclusively.
//
// Complexity:
//
//   - AddVertex/AddEdge/RemoveEdge/RemoveVertex: O(1) amortized. RemoveVertex
//     assumes its caller already brought degree(v) to 0 via RemoveEdge; it
//     does not itself scan for incident edges.
package graph
