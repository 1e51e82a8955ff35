// Command sketchgrid loads an ASCII diagram from disk and prints the
// parsed primitives and extracted planar structure it reduces to.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sketchgraph/sketchgraph/extractor"
	"github.com/sketchgraph/sketchgraph/graph"
	"github.com/sketchgraph/sketchgraph/model"
	"github.com/sketchgraph/sketchgraph/parser"
)

func main() {
	path := flag.String("file", "", "path to the ASCII diagram to parse (required)")
	cyclesOnly := flag.Bool("cycles-only", false, "omit filaments from the output")
	asJSON := flag.Bool("json", false, "print the structured result as JSON instead of a summary line")
	flag.Parse()

	if *path == "" {
		log.Fatal(ErrMissingFile)
	}

	lines, err := readLines(*path)
	if err != nil {
		log.Fatalf("sketchgrid: reading %s: %v", *path, err)
	}
	if len(lines) == 0 {
		log.Fatal(ErrEmptyDiagram)
	}

	res := parser.ParseLines(lines)
	g := graph.FromParseResult(res)
	stats := g.Stats()
	out := extractor.ExtractAll(g)

	if *asJSON {
		printJSON(res, stats, out, *cyclesOnly)
		return
	}
	printSummary(res, stats, out, *cyclesOnly)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func printSummary(res *model.ParseResult, stats graph.Stats, out extractor.Result, cyclesOnly bool) {
	fmt.Printf("anchors=%d bullets=%d segments=%d vertices=%d edges=%d\n",
		len(res.Anchors), len(res.Bullets), len(res.Segments), stats.VertexCount, stats.EdgeCount)
	fmt.Printf("cycles=%d", len(out.Cycles))
	if !cyclesOnly {
		fmt.Printf(" filaments=%d", len(out.Filaments))
	}
	fmt.Println()
}

// jsonResult is the -json output shape; it is deliberately flat rather
// than reusing model.ParseResult directly, since that type's maps are
// keyed by model.Point, which encoding/json cannot encode as an object key.
type jsonResult struct {
	Anchors   int        `json:"anchors"`
	Bullets   int        `json:"bullets"`
	Segments  int        `json:"segments"`
	Vertices  int        `json:"vertices"`
	Edges     int        `json:"edges"`
	Cycles    [][]string `json:"cycles"`
	Filaments [][]string `json:"filaments,omitempty"`
}

func printJSON(res *model.ParseResult, stats graph.Stats, out extractor.Result, cyclesOnly bool) {
	jr := jsonResult{
		Anchors:  len(res.Anchors),
		Bullets:  len(res.Bullets),
		Segments: len(res.Segments),
		Vertices: stats.VertexCount,
		Edges:    stats.EdgeCount,
		Cycles:   pointSeqs(out.Cycles),
	}
	if !cyclesOnly {
		for _, f := range out.Filaments {
			jr.Filaments = append(jr.Filaments, pointStrings(f))
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jr); err != nil {
		log.Fatalf("sketchgrid: encoding result: %v", err)
	}
}

func pointSeqs(cycles []extractor.Cycle) [][]string {
	out := make([][]string, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, pointStrings(c))
	}
	return out
}

func pointStrings(pts []model.Point) []string {
	out := make([]string, len(pts))
	for i, p := range pts {
		out[i] = p.String()
	}
	return out
}
