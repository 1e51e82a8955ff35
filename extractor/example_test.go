package extractor_test

import (
	"fmt"

	"github.com/sketchgraph/sketchgraph/extractor"
	"github.com/sketchgraph/sketchgraph/graph"
	"github.com/sketchgraph/sketchgraph/parser"
)

func ExampleExtractAll() {
	res := parser.ParseLines([]string{
		"+--+",
		"|  |",
		"+--+",
	})
	g := graph.FromParseResult(res)

	out := extractor.ExtractAll(g)

	fmt.Println("cycles:", len(out.Cycles))
	fmt.Println("filaments:", len(out.Filaments))
	fmt.Println("cycle length:", len(out.Cycles[0]))

	// Output:
	// cycles: 1
	// filaments: 0
	// cycle length: 4
}
