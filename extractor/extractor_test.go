package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sketchgraph/sketchgraph/extractor"
	"github.com/sketchgraph/sketchgraph/graph"
	"github.com/sketchgraph/sketchgraph/model"
)

func pt(col, row int) model.Point { return model.Point{Col: col, Row: row} }

// TestSingleSquare covers spec §8's S6: a bare four-vertex square yields
// exactly one cycle containing all four vertices and zero filaments.
func TestSingleSquare(t *testing.T) {
	a, b, c, d := pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)
	g := graph.New()
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(c, d)
	g.AddEdge(d, a)

	res := extractor.ExtractAll(g)

	require.Len(t, res.Cycles, 1)
	require.Empty(t, res.Filaments)
	require.ElementsMatch(t, []model.Point{a, b, c, d}, res.Cycles[0])
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
}

// TestSquareWithTail covers spec §8's S7: the same square plus a single
// edge hanging off one corner yields one cycle (the square) and one
// filament running from that corner to the dangling leaf.
func TestSquareWithTail(t *testing.T) {
	a, b, c, d := pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)
	tail := pt(4, 2)
	g := graph.New()
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(c, d)
	g.AddEdge(d, a)
	g.AddEdge(c, tail)

	res := extractor.ExtractAll(g)

	require.Len(t, res.Cycles, 1)
	require.ElementsMatch(t, []model.Point{a, b, c, d}, res.Cycles[0])

	require.Len(t, res.Filaments, 1)
	require.ElementsMatch(t, []model.Point{c, tail}, res.Filaments[0])

	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
}

// TestBareFilament covers a graph with no cycle at all: a straight
// three-vertex chain reduces to a single filament spanning every vertex.
func TestBareFilament(t *testing.T) {
	a, b, c := pt(0, 0), pt(2, 0), pt(4, 0)
	g := graph.New()
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	res := extractor.ExtractAll(g)

	require.Empty(t, res.Cycles)
	require.Len(t, res.Filaments, 1)
	require.ElementsMatch(t, []model.Point{a, b, c}, res.Filaments[0])
}

// TestIsolatedVertexYieldsNothing covers a graph containing only a single
// unconnected vertex: no cycle, no filament, the vertex is simply dropped.
func TestIsolatedVertexYieldsNothing(t *testing.T) {
	g := graph.New()
	g.AddVertex(pt(1, 1))

	res := extractor.ExtractAll(g)

	require.Empty(t, res.Cycles)
	require.Empty(t, res.Filaments)
	require.Equal(t, 0, g.VertexCount())
}

// TestTwoSquaresSharingCorner covers a graph with two distinct interior
// faces meeting at a single cut vertex (two unit squares touching
// corner-to-corner, like a pair of adjacent diagram boxes). The driver
// loop must trace the first square to completion, then pick the cut
// vertex back up as an ordinary degree-2 vertex and trace the second
// square, rather than confusing the two faces.
func TestTwoSquaresSharingCorner(t *testing.T) {
	a, b, d := pt(0, 0), pt(2, 0), pt(0, 2)
	m := pt(2, 2)
	e, f, g2 := pt(4, 2), pt(4, 4), pt(2, 4)
	g := graph.New()
	g.AddEdge(a, b)
	g.AddEdge(b, m)
	g.AddEdge(m, d)
	g.AddEdge(d, a)
	g.AddEdge(m, e)
	g.AddEdge(e, f)
	g.AddEdge(f, g2)
	g.AddEdge(g2, m)

	res := extractor.ExtractAll(g)

	require.Len(t, res.Cycles, 2)
	require.Empty(t, res.Filaments)
	require.ElementsMatch(t, []model.Point{a, b, m, d}, res.Cycles[0])
	require.ElementsMatch(t, []model.Point{m, e, f, g2}, res.Cycles[1])
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
}

// TestConservation exercises invariant 8 from spec §8: every edge of the
// input graph appears in exactly one of a reported cycle or filament (this
// fixture has no isolated vertices, so "neither" never applies). It builds
// a square with two tails hanging off opposite corners.
func TestConservation(t *testing.T) {
	a, b, c, d := pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)
	tail1, tail2 := pt(4, 2), pt(-2, 0)
	g := graph.New()
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(c, d)
	g.AddEdge(d, a)
	g.AddEdge(c, tail1)
	g.AddEdge(a, tail2)

	const totalEdges = 6
	res := extractor.ExtractAll(g)

	seen := make(map[model.Point]map[model.Point]bool)
	mark := func(u, v model.Point) {
		if seen[u] == nil {
			seen[u] = make(map[model.Point]bool)
		}
		require.False(t, seen[u][v], "edge %v-%v reported twice", u, v)
		seen[u][v] = true
		if seen[v] == nil {
			seen[v] = make(map[model.Point]bool)
		}
		seen[v][u] = true
	}
	count := 0
	for _, cyc := range res.Cycles {
		for i := range cyc {
			mark(cyc[i], cyc[(i+1)%len(cyc)])
			count++
		}
	}
	for _, f := range res.Filaments {
		for i := 0; i+1 < len(f); i++ {
			mark(f[i], f[i+1])
			count++
		}
	}
	require.Equal(t, totalEdges, count)
}
