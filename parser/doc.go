// Package parser walks a 2D grid of text lines and produces a
// model.ParseResult: horizontal and vertical line segments with their draw
// style, anchor points, and bullet points.
//
// What:
//
//   - ParseLines drives a single left-to-right, top-to-bottom pass over the
//     input, maintaining one in-progress horizontal run and one
//     in-progress vertical run per column (carried across rows).
//   - Every recognized character (spec §6: '-' '=' '|' ':' '+' '/' '\' '*')
//     extends, closes, or starts an accumulator; every other character is
//     blank and closes whatever was open in its row/column.
//
// Why:
//
//   - ASCII diagram tools need a single-pass, allocation-light way to turn
//     a text grid into geometric primitives before any graph analysis runs.
//
// Complexity:
//
//   - ParseLines: O(W×H) time, O(W×H + |segments|) memory, where W is the
//     longest line length and H is the number of lines.
//
// See: model.ParseResult for the output shape.
package parser
