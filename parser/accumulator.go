package parser

import "github.com/sketchgraph/sketchgraph/model"

// horizontalAccumulator holds at most one in-progress horizontal segment.
// Its lifetime is a single row; the grid parser allocates a fresh one per row.
type horizontalAccumulator struct {
	open  bool
	start model.Point
	end   model.Point
	draw  model.DrawStyle
}

// extend starts the accumulator at p if empty, otherwise moves its end to p.
func (h *horizontalAccumulator) extend(p model.Point) {
	if !h.open {
		h.open = true
		h.start = p
		h.draw = model.Solid
	}
	h.end = p
}

// markDashed flips the in-progress segment to Dashed. Idempotent, and a
// no-op when nothing is open.
func (h *horizontalAccumulator) markDashed() {
	if h.open {
		h.draw = model.Dashed
	}
}

// close emits the in-progress segment into res, if any, and clears the slot.
func (h *horizontalAccumulator) close(res *model.ParseResult) {
	if !h.open {
		return
	}
	res.Segments[model.Segment{
		Start: h.start,
		End:   h.end,
		Kind:  model.Horizontal,
		Draw:  h.draw,
	}] = struct{}{}
	h.open = false
}

// verticalAccumulator holds at most one in-progress vertical segment for a
// single column, carried across row boundaries by the grid parser.
type verticalAccumulator struct {
	open  bool
	start model.Point
	end   model.Point
	draw  model.DrawStyle
}

func (v *verticalAccumulator) extend(p model.Point) {
	if !v.open {
		v.open = true
		v.start = p
		v.draw = model.Solid
	}
	v.end = p
}

func (v *verticalAccumulator) markDashed() {
	if v.open {
		v.draw = model.Dashed
	}
}

func (v *verticalAccumulator) close(res *model.ParseResult) {
	if !v.open {
		return
	}
	res.Segments[model.Segment{
		Start: v.start,
		End:   v.end,
		Kind:  model.Vertical,
		Draw:  v.draw,
	}] = struct{}{}
	v.open = false
}
