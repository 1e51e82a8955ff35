package parser

import "github.com/sketchgraph/sketchgraph/model"

// Render reconstructs a grid of text lines from a ParseResult: every cell
// covered by a segment gets that segment's representative character, every
// anchor and bullet gets its own character, and every other cell is blank.
// It exists to support the idempotence property (spec §8, invariant 6):
// Render(ParseLines(lines)) fed back into ParseLines must reproduce the
// same ParseResult.
//
// Render is not a rendering engine in the Non-goals sense (spec §1) — it
// emits plain ASCII text, never rasterizes or applies typography.
func Render(res *model.ParseResult) []string {
	maxCol, maxRow := 0, 0
	grow := func(p model.Point) {
		if p.Col > maxCol {
			maxCol = p.Col
		}
		if p.Row > maxRow {
			maxRow = p.Row
		}
	}
	for s := range res.Segments {
		grow(s.Start)
		grow(s.End)
	}
	for p := range res.Anchors {
		grow(p)
	}
	for p := range res.Bullets {
		grow(p)
	}

	grid := make([][]rune, maxRow+1)
	for r := range grid {
		grid[r] = make([]rune, maxCol+1)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	for s := range res.Segments {
		ch := segmentChar(s)
		if s.Kind == model.Horizontal {
			for c := s.Start.Col; c <= s.End.Col; c++ {
				grid[s.Start.Row][c] = ch
			}
		} else {
			for r := s.Start.Row; r <= s.End.Row; r++ {
				grid[r][s.Start.Col] = ch
			}
		}
	}
	for p, a := range res.Anchors {
		if res.IsBullet(p) {
			continue // bullets take precedence below
		}
		grid[p.Row][p.Col] = anchorChar(a.Kind)
	}
	for p := range res.Bullets {
		grid[p.Row][p.Col] = '*'
	}

	lines := make([]string, len(grid))
	for r, row := range grid {
		lines[r] = string(row)
	}
	return lines
}

func segmentChar(s model.Segment) rune {
	if s.Kind == model.Horizontal {
		if s.Draw == model.Dashed {
			return '='
		}
		return '-'
	}
	if s.Draw == model.Dashed {
		return ':'
	}
	return '|'
}

func anchorChar(k model.AnchorKind) rune {
	switch k {
	case model.FirstDiagonal:
		return '/'
	case model.SecondDiagonal:
		return '\\'
	default:
		return '+'
	}
}
