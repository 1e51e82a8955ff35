package extractor

import (
	"github.com/sketchgraph/sketchgraph/graph"
	"github.com/sketchgraph/sketchgraph/model"
)

// Cycle is an ordered sequence of vertices forming a minimal interior face;
// the walk returns to its own first vertex logically, though the slice
// itself lists each vertex once (it does not repeat the root at the end).
type Cycle []model.Point

// Filament is an ordered sequence of vertices forming a maximal open
// chain not part of any cycle, listed in the order extract_filament peels
// them off the graph: the walk's starting vertex first, and last the
// vertex where it stops (a dead end, or the branch vertex it rejoins).
type Filament []model.Point

// Result is the output of ExtractAll: every discovered cycle and filament.
type Result struct {
	Cycles    []Cycle
	Filaments []Filament
}

// state is the mutable bookkeeping threaded through one extraction run.
// Vertex visitation within the current trace is the only bookkeeping
// needed: closeCycle removes a found face's edges from g outright, so a
// later filament walk can never re-cross territory a cycle already
// claimed (see closeCycle's doc comment in extractor.go).
type state struct {
	g       *graph.Graph
	visited map[model.Point]struct{}
	result  Result
}
