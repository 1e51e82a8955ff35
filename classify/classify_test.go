package classify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sketchgraph/sketchgraph/classify"
	"github.com/sketchgraph/sketchgraph/model"
)

func TestOf(t *testing.T) {
	cases := map[rune]classify.Class{
		'-':  classify.HorizontalLine,
		'=':  classify.HorizontalLine,
		'|':  classify.VerticalLine,
		':':  classify.VerticalLine,
		'+':  classify.AnchorChar,
		'/':  classify.AnchorChar,
		'\\': classify.AnchorChar,
		'*':  classify.BulletChar,
		' ':  classify.Blank,
		'x':  classify.Blank,
		'#':  classify.Blank,
	}
	for ch, want := range cases {
		require.Equal(t, want, classify.Of(ch), "rune %q", ch)
	}
}

func TestIsDashed(t *testing.T) {
	require.True(t, classify.IsDashed('='))
	require.True(t, classify.IsDashed(':'))
	require.False(t, classify.IsDashed('-'))
	require.False(t, classify.IsDashed('|'))
}

func TestAnchorKindOf(t *testing.T) {
	require.Equal(t, model.Multi, classify.AnchorKindOf('+'))
	require.Equal(t, model.FirstDiagonal, classify.AnchorKindOf('/'))
	require.Equal(t, model.SecondDiagonal, classify.AnchorKindOf('\\'))
}

func TestDisjointClasses(t *testing.T) {
	recognized := "-=|:+/\\*"
	// Each recognized rune maps to exactly one non-Blank class by construction;
	// verify none collide across classes.
	seen := make(map[classify.Class]map[rune]bool)
	for _, ch := range recognized {
		c := classify.Of(ch)
		if seen[c] == nil {
			seen[c] = make(map[rune]bool)
		}
		seen[c][ch] = true
	}
	require.Len(t, seen, 4) // HorizontalLine, VerticalLine, AnchorChar, BulletChar
}
