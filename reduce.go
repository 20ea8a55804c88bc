package simplify

import "math"

// Order reduction of input curves. No degenerate curve survives ingestion:
// coincident control points collapse to nothing, collinear quadratics and
// cubics become lines, and cubics whose third difference vanishes become
// quadratics.

// verbNone marks a curve that reduced to a point and should be dropped.
const verbNone curveVerb = 0

// collinearEpsilon bounds the relative deviation of a control point from
// the chord before a curve stops counting as a line.
const collinearEpsilon = 1e-9

// collinear reports whether c lies on the line through a and b, relative to
// the magnitude of the spanned vectors.
func collinear(a, b, c Point) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	cross := ab.Cross(ac)
	scale := math.Max(ab.LengthSquared(), ac.LengthSquared())
	return math.Abs(cross) <= collinearEpsilon*scale
}

// reduceQuad returns the lowest-order curve equivalent to the quadratic.
// The result verb is verbNone (drop), verbLine, or verbQuad; for verbLine
// the returned slice holds the two endpoints.
func reduceQuad(pts []Point) ([]Point, curveVerb) {
	degenerate := pts[0] == pts[2]
	if degenerate && pts[0] == pts[1] {
		return nil, verbNone
	}
	if collinear(pts[0], pts[2], pts[1]) {
		if degenerate {
			// The control point pulls the curve out and straight back;
			// the retrace spans zero area and contributes no outline.
			return nil, verbNone
		}
		return []Point{pts[0], pts[2]}, verbLine
	}
	return pts, verbQuad
}

// reduceCubic returns the lowest-order curve equivalent to the cubic,
// allowing collapse to a quadratic when the third difference vanishes.
func reduceCubic(pts []Point) ([]Point, curveVerb) {
	if pts[0] == pts[1] && pts[0] == pts[2] && pts[0] == pts[3] {
		return nil, verbNone
	}
	if collinear(pts[0], pts[3], pts[1]) && collinear(pts[0], pts[3], pts[2]) &&
		pts[0] != pts[3] {
		return []Point{pts[0], pts[3]}, verbLine
	}
	dddx := pts[3].X + 3*(pts[1].X-pts[2].X) - pts[0].X
	dddy := pts[3].Y + 3*(pts[1].Y-pts[2].Y) - pts[0].Y
	if approxZeroAgainst(dddx, pts) && approxZeroAgainst(dddy, pts) {
		control := Point{
			X: (3*pts[1].X + 3*pts[2].X - pts[0].X - pts[3].X) / 4,
			Y: (3*pts[1].Y + 3*pts[2].Y - pts[0].Y - pts[3].Y) / 4,
		}
		q, verb := reduceQuad([]Point{pts[0], control, pts[3]})
		if verb == verbQuad {
			return []Point{pts[0], control, pts[3]}, verbQuad
		}
		return q, verb
	}
	return pts, verbCubic
}

// approxZeroAgainst reports whether v is negligible relative to the spread
// of the control points.
func approxZeroAgainst(v float64, pts []Point) bool {
	scale := 0.0
	for _, p := range pts[1:] {
		scale = math.Max(scale, math.Max(math.Abs(p.X-pts[0].X), math.Abs(p.Y-pts[0].Y)))
	}
	return math.Abs(v) <= collinearEpsilon*scale
}
