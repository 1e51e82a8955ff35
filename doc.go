// Package sketchgraph turns a two-dimensional ASCII picture of lines,
// corners, dashes and bullets into a structured geometric description: line
// segments with drawing style, the anchors where they meet or bend, bullet
// points, and the closed cycles and open filaments formed by the induced
// planar graph.
//
// What is sketchgraph?
//
//	A pure-Go pipeline that brings together:
//
//	  - A single-pass grid parser with open/close segment accumulation
//	  - A model-keyed undirected planar graph with a canonical edge index
//	  - A planar minimal-cycle extractor driven by clockwise/counter-
//	    clockwise angular ordering over progressively shrinking adjacency
//
// Why choose sketchgraph?
//
//   - Deterministic    — every "pick the minimum" is a genuine total-order
//     minimum, so re-running on the same input always yields the same
//     cycles and filaments
//   - Total            — no error returns from the core; unrecognized
//     input characters are simply blank
//   - Pure Go           — no cgo, no hidden dependencies
//
// Everything is organized under five subpackages plus a CLI:
//
//	model/      — Point, Anchor, Segment, ParseResult: the shared data model
//	classify/   — character classification (blank/horizontal/vertical/anchor/bullet)
//	parser/     — the grid parser: text lines in, a ParseResult out
//	graph/      — the undirected planar graph the parser's output implies
//	extractor/  — partitions that graph into minimal cycles and filaments
//	cmd/sketchgrid/ — a CLI that wires the pipeline end to end
//
// Quick ASCII example:
//
//	+--+
//	|  |
//	+--+
//
//	parses to four segments and four anchors, and the induced graph
//	reduces to a single four-vertex cycle with zero filaments.
//
//	go get github.com/sketchgraph/sketchgraph
package sketchgraph
