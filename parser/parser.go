// File: parser.go
// Role: The grid-parser driving loop: ParseLines walks every cell of the
//       input exactly once and dispatch() applies one cell's effect to
//       the row's horizontal accumulator, the column's vertical
//       accumulator, and the result's anchors/bullets.
// Determinism:
//   - Column iteration is strictly left-to-right within a row; row
//     iteration is strictly top-to-bottom (spec §4.3).
// AI-HINT (file):
//   - Every row is walked out to the widest line's width, not its own
//     length — short lines are padded with implicit blanks so every
//     column's vertical accumulator sees one cell per row.
package parser

import (
	"github.com/sketchgraph/sketchgraph/classify"
	"github.com/sketchgraph/sketchgraph/model"
)

// ParseLines walks lines (already split on newlines by the caller — spec
// §6 keeps that split external to the core) and returns the resulting
// model.ParseResult.
//
// Steps:
//  1. Compute width as the longest line's rune count.
//  2. Allocate one vertical accumulator per column, carried across rows.
//  3. For each row, walk every column and dispatch() the cell there,
//     then close the row's horizontal accumulator (it cannot carry
//     across rows).
//  4. Close every still-open vertical accumulator once input ends.
//
// Complexity: O(W×H) where W = max(len(line)) and H = len(lines).
func ParseLines(lines []string) *model.ParseResult {
	res := model.NewParseResult()

	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}

	verticals := make([]verticalAccumulator, width)

	for row, line := range lines {
		runes := []rune(line)
		var horiz horizontalAccumulator

		for col := 0; col < width; col++ {
			var ch rune
			if col < len(runes) {
				ch = runes[col]
			}
			p := model.Point{Col: col, Row: row}
			dispatch(res, &horiz, &verticals[col], p, ch)
		}

		// End of row: the horizontal accumulator cannot carry across rows.
		horiz.close(res)
	}

	// End of input: close every still-open vertical accumulator.
	for col := range verticals {
		verticals[col].close(res)
	}

	return res
}

// dispatch applies the effect of one character on the row's horizontal
// accumulator, the column's vertical accumulator, and the result's
// anchors/bullets, per the table in spec §4.3.
func dispatch(res *model.ParseResult, horiz *horizontalAccumulator, vert *verticalAccumulator, p model.Point, ch rune) {
	switch classify.Of(ch) {
	case classify.BulletChar:
		horiz.close(res)
		vert.close(res)
		res.Anchors[p] = model.Anchor{Kind: model.Multi}
		res.Bullets[p] = struct{}{}

	case classify.HorizontalLine:
		horiz.extend(p)
		if classify.IsDashed(ch) {
			horiz.markDashed()
		}
		vert.close(res)

	case classify.VerticalLine:
		horiz.close(res)
		vert.extend(p)
		if classify.IsDashed(ch) {
			vert.markDashed()
		}

	case classify.AnchorChar:
		horiz.close(res)
		vert.close(res)
		res.Anchors[p] = model.Anchor{Kind: classify.AnchorKindOf(ch)}

	default: // Blank
		horiz.close(res)
		vert.close(res)
	}
}
