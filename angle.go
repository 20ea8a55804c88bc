package simplify

import "sort"

// angle records the departure direction of a directed sub-edge at a
// junction: the first, second and third differences of the sub-edge's
// control polygon after subdivision to [startT, endT]. Sorting angles
// around a junction puts edges heading toward negative Y first and sweeps
// counterclockwise (as drawn with Y increasing down) from the positive X
// axis.
//
// When the tangent lines from endpoint to control point of two curves
// coincide, the derivative differences alone cannot always decide the
// curve ordering; the comparison below is best-effort for that case.
type angle struct {
	dx, dy       float64
	ddx, ddy     float64
	dddx, dddy   float64
	segment      *segment
	start, end   int
}

// set fills the angle from a sub-edge's control points. pts[0] must be the
// junction point.
func (a *angle) set(pts *[4]Point, v curveVerb, seg *segment, start, end int) {
	assert(start != end)
	a.segment = seg
	a.start = start
	a.end = end
	a.dx = pts[1].X - pts[0].X // b - a
	a.dy = pts[1].Y - pts[0].Y
	if v == verbLine {
		a.ddx, a.ddy, a.dddx, a.dddy = 0, 0, 0, 0
		return
	}
	a.ddx = pts[2].X - pts[1].X - a.dx // a - 2b + c
	a.ddy = pts[2].Y - pts[1].Y - a.dy
	if v == verbQuad {
		a.dddx, a.dddy = 0, 0
		return
	}
	a.dddx = pts[3].X + 3*(pts[1].X-pts[2].X) - pts[0].X
	a.dddy = pts[3].Y + 3*(pts[1].Y-pts[2].Y) - pts[0].Y
}

// less orders angles counterclockwise (Y increasing down) from the positive
// X axis: edges with negative dy first, then the rest. Ties between the
// first differences are broken by the second, then third differences, so
// curves sharing a tangent still sort deterministically.
func (a *angle) less(rh *angle) bool {
	if (a.dy < 0) != (rh.dy < 0) {
		return a.dy < 0
	}
	if a.dy == 0 && rh.dy == 0 && a.dx != rh.dx {
		return a.dx < rh.dx
	}
	cmp := a.dx*rh.dy - rh.dx*a.dy
	if cmp != 0 {
		return cmp < 0
	}
	if (a.ddy < 0) != (rh.ddy < 0) {
		return a.ddy < 0
	}
	if a.ddy == 0 && rh.ddy == 0 && a.ddx != rh.ddx {
		return a.ddx < rh.ddx
	}
	cmp = a.ddx*rh.ddy - rh.ddx*a.ddy
	if cmp != 0 {
		return cmp < 0
	}
	if (a.dddy < 0) != (rh.dddy < 0) {
		return a.dddy < 0
	}
	if a.dddy == 0 && rh.dddy == 0 {
		return a.dddx < rh.dddx
	}
	return a.dddx*rh.dddy < rh.dddx*a.dddy
}

// cancels reports whether two angles depart in opposing directions, the
// signature of a coincident pair traversed both ways.
func (a *angle) cancels(rh *angle) bool {
	return a.dx*rh.dx < 0 || a.dy*rh.dy < 0
}

// sign is +1 when the sub-edge runs against ascending T, -1 otherwise.
func (a *angle) sign() int {
	return sign32(a.start - a.end)
}

// sortAngles returns the angles ordered by less. The returned pointers
// alias the input slice, which must not grow afterwards.
func sortAngles(angles []angle) []*angle {
	sorted := make([]*angle, len(angles))
	for i := range angles {
		sorted[i] = &angles[i]
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].less(sorted[j])
	})
	return sorted
}

// sign32 returns -1, 0 or +1 matching the sign of x.
func sign32(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
