package simplify

// Curve evaluation, subdivision and bounds for the three supported verbs.
// Segments store 2, 3 or 4 control points and dispatch on curveVerb, so the
// kernel operates on point slices rather than distinct curve types.

// curveVerb identifies a curve flavor. The numeric value is one less than
// the number of control points.
type curveVerb uint8

const (
	verbLine  curveVerb = 1
	verbQuad  curveVerb = 2
	verbCubic curveVerb = 3
)

// ptCount returns how many control points the verb carries.
func (v curveVerb) ptCount() int {
	return int(v) + 1
}

func (v curveVerb) String() string {
	switch v {
	case verbLine:
		return "line"
	case verbQuad:
		return "quad"
	case verbCubic:
		return "cubic"
	}
	return "unknown"
}

// quadBlossom evaluates the polar form of a quadratic. quadBlossom(p,t,t)
// is the curve point at t; mixed arguments give sub-curve control points.
func quadBlossom(p []Point, t0, t1 float64) Point {
	a0 := p[0].Lerp(p[1], t0)
	a1 := p[1].Lerp(p[2], t0)
	return a0.Lerp(a1, t1)
}

// cubicBlossom evaluates the polar form of a cubic.
func cubicBlossom(p []Point, t0, t1, t2 float64) Point {
	a0 := p[0].Lerp(p[1], t0)
	a1 := p[1].Lerp(p[2], t0)
	a2 := p[2].Lerp(p[3], t0)
	b0 := a0.Lerp(a1, t1)
	b1 := a1.Lerp(a2, t1)
	return b0.Lerp(b1, t2)
}

// curveXYAtT evaluates the curve position at parameter t.
func curveXYAtT(pts []Point, v curveVerb, t float64) Point {
	switch v {
	case verbLine:
		return pts[0].Lerp(pts[1], t)
	case verbQuad:
		return quadBlossom(pts, t, t)
	default:
		return cubicBlossom(pts, t, t, t)
	}
}

// curveDXDYAtT evaluates the curve derivative at parameter t.
func curveDXDYAtT(pts []Point, v curveVerb, t float64) Point {
	switch v {
	case verbLine:
		return pts[1].Sub(pts[0])
	case verbQuad:
		d0 := pts[1].Sub(pts[0])
		d1 := pts[2].Sub(pts[1])
		return d0.Lerp(d1, t).Mul(2)
	default:
		d0 := pts[1].Sub(pts[0])
		d1 := pts[2].Sub(pts[1])
		d2 := pts[3].Sub(pts[2])
		e0 := d0.Lerp(d1, t)
		e1 := d1.Lerp(d2, t)
		return e0.Lerp(e1, t).Mul(3)
	}
}

// curveDXAtT evaluates the X component of the derivative at parameter t.
func curveDXAtT(pts []Point, v curveVerb, t float64) float64 {
	return curveDXDYAtT(pts, v, t).X
}

// subCurve writes the control points of the curve restricted to [t0,t1]
// into out. Endpoints are exact when t0 is 0 or t1 is 1, so walking a chain
// of sub-curves reproduces shared junction points bit for bit.
func subCurve(pts []Point, v curveVerb, t0, t1 float64, out *[4]Point) {
	switch v {
	case verbLine:
		out[0] = pts[0].Lerp(pts[1], t0)
		out[1] = pts[0].Lerp(pts[1], t1)
	case verbQuad:
		out[0] = quadBlossom(pts, t0, t0)
		out[1] = quadBlossom(pts, t0, t1)
		out[2] = quadBlossom(pts, t1, t1)
	default:
		out[0] = cubicBlossom(pts, t0, t0, t0)
		out[1] = cubicBlossom(pts, t0, t0, t1)
		out[2] = cubicBlossom(pts, t0, t1, t1)
		out[3] = cubicBlossom(pts, t1, t1, t1)
	}
}

// curveBounds computes the tight axis-aligned bounds of the curve,
// including interior extrema.
func curveBounds(pts []Point, v curveVerb) Bounds {
	b := emptyBounds()
	b.addPoint(pts[0])
	b.addPoint(pts[v.ptCount()-1])
	if v == verbLine {
		return b
	}
	var roots [6]float64
	for _, t := range curveExtrema(pts, v, roots[:0]) {
		b.addPoint(curveXYAtT(pts, v, t))
	}
	return b
}

// curveExtrema appends the interior parameters where the derivative of
// either coordinate vanishes.
func curveExtrema(pts []Point, v curveVerb, dst []float64) []float64 {
	if v == verbQuad {
		for _, axis := range [2]func(Point) float64{pointX, pointY} {
			d0 := axis(pts[1]) - axis(pts[0])
			dd := axis(pts[2]) - 2*axis(pts[1]) + axis(pts[0])
			if dd != 0 {
				if t := -d0 / dd; t > 0 && t < 1 {
					dst = append(dst, t)
				}
			}
		}
		return dst
	}
	var roots [2]float64
	for _, axis := range [2]func(Point) float64{pointX, pointY} {
		d0 := axis(pts[1]) - axis(pts[0])
		d1 := axis(pts[2]) - axis(pts[1])
		d2 := axis(pts[3]) - axis(pts[2])
		for _, t := range unitRoots(solveQuadratic(roots[:0], d0-2*d1+d2, 2*(d1-d0), d0)) {
			if t > 0 && t < 1 {
				dst = append(dst, t)
			}
		}
	}
	return dst
}

func pointX(p Point) float64 { return p.X }
func pointY(p Point) float64 { return p.Y }

// curveLeftMostX returns the smallest X reached by the curve on [t0,t1].
func curveLeftMostX(pts []Point, v curveVerb, t0, t1 float64) float64 {
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	left := curveXYAtT(pts, v, t0).X
	if x := curveXYAtT(pts, v, t1).X; x < left {
		left = x
	}
	if v == verbLine {
		return left
	}
	var roots [6]float64
	for _, t := range curveExtrema(pts, v, roots[:0]) {
		if t <= t0 || t >= t1 {
			continue
		}
		if x := curveXYAtT(pts, v, t).X; x < left {
			left = x
		}
	}
	return left
}

// promoteQuadToCubic raises a quadratic to its exact cubic form so that the
// cubic/cubic intersector can handle mixed quad/cubic pairs.
func promoteQuadToCubic(q []Point) [4]Point {
	const twoThirds = 2.0 / 3.0
	return [4]Point{
		q[0],
		q[0].Add(q[1].Sub(q[0]).Mul(twoThirds)),
		q[2].Add(q[1].Sub(q[2]).Mul(twoThirds)),
		q[2],
	}
}
