// Package classify categorizes a single input rune into the character
// classes the grid parser dispatches on: blank, horizontal line, vertical
// line, anchor, or bullet, plus whether that character is a dashed variant.
//
// No rune belongs to more than one of {Horizontal, Vertical, Anchor,
// Bullet}; every rune outside the recognized set (spec §6) classifies as
// Blank.
package classify

import "github.com/sketchgraph/sketchgraph/model"

// Class is the character category a single grid cell falls into.
type Class int

const (
	// Blank is any unrecognized rune; it terminates in-progress segments.
	Blank Class = iota
	// HorizontalLine is '-' or '='.
	HorizontalLine
	// VerticalLine is '|' or ':'.
	VerticalLine
	// AnchorChar is '+', '/', or '\'.
	AnchorChar
	// BulletChar is '*'.
	BulletChar
)

// Of returns the character class of ch.
func Of(ch rune) Class {
	switch ch {
	case '-', '=':
		return HorizontalLine
	case '|', ':':
		return VerticalLine
	case '+', '/', '\\':
		return AnchorChar
	case '*':
		return BulletChar
	default:
		return Blank
	}
}

// IsDashed reports whether ch is a dashed-variant character ('=' or ':').
func IsDashed(ch rune) bool {
	return ch == '=' || ch == ':'
}

// AnchorKindOf maps an anchor-class rune to its model.AnchorKind. Callers
// must only invoke this for runes where Of(ch) == AnchorChar or
// Of(ch) == BulletChar; any other rune returns model.Multi as a harmless
// default since it is never consulted.
func AnchorKindOf(ch rune) model.AnchorKind {
	switch ch {
	case '/':
		return model.FirstDiagonal
	case '\\':
		return model.SecondDiagonal
	default:
		return model.Multi
	}
}
