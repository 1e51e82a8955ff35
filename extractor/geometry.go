package extractor

import "github.com/sketchgraph/sketchgraph/model"

// direction is a 2D integer displacement, used only for the angular
// comparisons in ClockwiseMost/CounterClockwiseMost.
type direction struct{ dx, dy int }

func sub(a, b model.Point) direction {
	return direction{dx: a.Col - b.Col, dy: a.Row - b.Row}
}

// dotPerp computes the 2D perpendicular dot product (a.k.a. the z
// component of the 3D cross product) of u and v: u.x*v.y - u.y*v.x.
// Positive means v is counter-clockwise from u; negative means clockwise;
// zero means collinear.
func dotPerp(u, v direction) int {
	return u.dx*v.dy - u.dy*v.dx
}

// ClockwiseMost returns the neighbor of current that makes the tightest
// right turn relative to the incoming direction current-previous (or, if
// hasPrevious is false, relative to no direction). Returns false if
// neighbors is empty. Ties are broken by model.Point's total order.
func ClockwiseMost(neighbors []model.Point, previous model.Point, hasPrevious bool, current model.Point) (model.Point, bool) {
	return angularMost(neighbors, previous, hasPrevious, current, true)
}

// CounterClockwiseMost is the symmetric counterpart of ClockwiseMost,
// selecting the tightest left turn.
func CounterClockwiseMost(neighbors []model.Point, previous model.Point, hasPrevious bool, current model.Point) (model.Point, bool) {
	return angularMost(neighbors, previous, hasPrevious, current, false)
}

// angularMost implements the reference geometric rule of spec §4.5: start
// with an arbitrary candidate, classify current as convex or reflex with
// respect to it, and sweep every other neighbor in, replacing the
// candidate whenever it is strictly more clockwise (or counter-clockwise)
// than the current best. Re-evaluate convexity after every replacement.
func angularMost(neighbors []model.Point, previous model.Point, hasPrevious bool, current model.Point, clockwise bool) (model.Point, bool) {
	if len(neighbors) == 0 {
		var zero model.Point
		return zero, false
	}

	dCurr := direction{dx: 0, dy: 0}
	if hasPrevious {
		dCurr = sub(current, previous)
	}

	// Seed with any neighbor other than previous; fall back to the first
	// neighbor if previous is the only one present.
	next := neighbors[0]
	for _, c := range neighbors {
		if !hasPrevious || c != previous {
			next = c
			break
		}
	}
	dNext := sub(next, current)

	for _, cand := range neighbors {
		if cand == next {
			continue
		}
		dCand := sub(cand, current)

		convex := dotPerp(dNext, dCurr) <= 0
		var replace bool
		if clockwise {
			if convex {
				replace = dotPerp(dCurr, dCand) < 0 && dotPerp(dNext, dCand) < 0
			} else {
				replace = dotPerp(dCurr, dCand) < 0 || dotPerp(dNext, dCand) < 0
			}
		} else {
			if convex {
				replace = dotPerp(dCurr, dCand) > 0 && dotPerp(dNext, dCand) > 0
			} else {
				replace = dotPerp(dCurr, dCand) > 0 || dotPerp(dNext, dCand) > 0
			}
		}

		if !replace && dotPerp(dNext, dCand) == 0 && dotPerp(dCurr, dCand) == 0 {
			// Collinear tie against both reference directions: break by
			// the vertex total order, per spec §9's open question. The
			// vertex just come from is never taken back this way.
			replace = !(hasPrevious && cand == previous) && cand.Less(next)
		}

		if replace {
			next = cand
			dNext = dCand
		}
	}

	return next, true
}
