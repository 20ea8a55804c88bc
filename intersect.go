package simplify

import "math"

// Primitive pairwise intersection. Every routine reports parameter pairs
// through an intersections record: side 0 holds T values on the first
// operand, side 1 on the second. A cubic pair can meet in at most nine
// points, which bounds the record size.

// intersectDedupe merges parameter pairs closer than this on both sides;
// recursive subdivision otherwise reports clusters of hits around a single
// crossing.
const intersectDedupe = 1e-5

// maxCurveDepth bounds curve/curve subdivision. 2^-26 is finer than the
// span cluster epsilon, so deeper recursion cannot separate hits anyway.
const maxCurveDepth = 26

type intersections struct {
	t    [2][9]float64
	used int
}

// add records one parameter pair, folding near-duplicates together.
func (i *intersections) add(t0, t1 float64) {
	for j := 0; j < i.used; j++ {
		if math.Abs(i.t[0][j]-t0) < intersectDedupe &&
			math.Abs(i.t[1][j]-t1) < intersectDedupe {
			return
		}
	}
	if i.used == len(i.t[0]) {
		return
	}
	i.t[0][i.used] = t0
	i.t[1][i.used] = t1
	i.used++
}

// side maps the caller's swap flag to a T array index.
func (i *intersections) side(swapped bool) int {
	if swapped {
		return 1
	}
	return 0
}

// validUnitT clamps a parameter onto [0,1], rejecting values that miss the
// interval by more than rootEpsilon or are not finite.
func validUnitT(t float64) (float64, bool) {
	if math.IsNaN(t) || t < -rootEpsilon || t > 1+rootEpsilon {
		return 0, false
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t, true
}

// lineLineIntersect intersects two line segments. Collinear overlapping
// segments report exactly the two endpoints of the shared run, which the
// intersection pass turns into a coincidence record.
func lineLineIntersect(a0, a1, b0, b1 Point, ts *intersections) int {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	if collinear(a0, a1, b0) && collinear(a0, a1, b1) {
		return lineLineOverlap(a0, da, b0, db, ts)
	}
	denom := da.Cross(db)
	if denom == 0 {
		return 0
	}
	ab := b0.Sub(a0)
	t, tok := validUnitT(ab.Cross(db) / denom)
	s, sok := validUnitT(ab.Cross(da) / denom)
	if tok && sok {
		ts.add(t, s)
	}
	return ts.used
}

// lineLineOverlap handles the collinear case of lineLineIntersect.
func lineLineOverlap(a0, da, b0, db Point, ts *intersections) int {
	lenSq := da.LengthSquared()
	if lenSq == 0 {
		return 0
	}
	tb0 := b0.Sub(a0).Dot(da) / lenSq
	tb1 := b0.Add(db).Sub(a0).Dot(da) / lenSq
	lo := math.Min(tb0, tb1)
	hi := math.Max(tb0, tb1)
	start := math.Max(0, lo)
	end := math.Min(1, hi)
	if start > end {
		return 0
	}
	bLenSq := db.LengthSquared()
	onB := func(t float64) float64 {
		p := a0.Add(da.Mul(t))
		s, _ := validUnitT(p.Sub(b0).Dot(db) / bLenSq)
		return s
	}
	if end-start < rootEpsilon {
		ts.add(start, onB(start))
		return ts.used
	}
	ts.add(start, onB(start))
	ts.add(end, onB(end))
	return ts.used
}

// curveLineIntersect intersects a quadratic or cubic with a line segment by
// solving the curve against the line's implicit form. The curve is side 0.
func curveLineIntersect(pts []Point, v curveVerb, l0, l1 Point, ts *intersections) int {
	d := l1.Sub(l0)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return 0
	}
	// The implicit distance functional is affine, so its value along the
	// curve is the Bernstein combination of its values at the control
	// points.
	var e [4]float64
	n := v.ptCount()
	for i := 0; i < n; i++ {
		e[i] = pts[i].Sub(l0).Cross(d)
	}
	var rootBuf [3]float64
	var roots []float64
	if v == verbQuad {
		roots = solveQuadratic(rootBuf[:0], e[0]-2*e[1]+e[2], 2*(e[1]-e[0]), e[0])
	} else {
		roots = solveCubic(rootBuf[:0],
			-e[0]+3*e[1]-3*e[2]+e[3],
			3*e[0]-6*e[1]+3*e[2],
			-3*e[0]+3*e[1],
			e[0])
	}
	for _, r := range unitRoots(roots) {
		p := curveXYAtT(pts, v, r)
		lineT, ok := validUnitT(p.Sub(l0).Dot(d) / lenSq)
		if !ok {
			continue
		}
		ts.add(r, lineT)
	}
	return ts.used
}

// controlBounds is the control-point hull box: cheaper than tight bounds
// and still guaranteed to contain the curve.
func controlBounds(pts []Point) Bounds {
	b := emptyBounds()
	for _, p := range pts {
		b.addPoint(p)
	}
	return b
}

// curveCurveIntersect intersects two curves of order two or higher by
// recursive subdivision with bounding-box pruning.
func curveCurveIntersect(a []Point, va curveVerb, b []Point, vb curveVerb, ts *intersections) int {
	recurseCurveCurve(a, va, b, vb, 0, 1, 0, 1, 0, ts)
	return ts.used
}

func recurseCurveCurve(a []Point, va curveVerb, b []Point, vb curveVerb,
	ta0, ta1, tb0, tb1 float64, depth int, ts *intersections) {
	var subA, subB [4]Point
	subCurve(a, va, ta0, ta1, &subA)
	subCurve(b, vb, tb0, tb1, &subB)
	boxA := controlBounds(subA[:va.ptCount()])
	boxB := controlBounds(subB[:vb.ptCount()])
	if !boundsIntersect(boxA, boxB) {
		return
	}
	const flatLimit = 1e-7
	aSmall := boxA.Width() <= flatLimit && boxA.Height() <= flatLimit
	bSmall := boxB.Width() <= flatLimit && boxB.Height() <= flatLimit
	if (aSmall && bSmall) || depth >= maxCurveDepth {
		ts.add((ta0+ta1)/2, (tb0+tb1)/2)
		return
	}
	am := (ta0 + ta1) / 2
	bm := (tb0 + tb1) / 2
	switch {
	case aSmall:
		recurseCurveCurve(a, va, b, vb, ta0, ta1, tb0, bm, depth+1, ts)
		recurseCurveCurve(a, va, b, vb, ta0, ta1, bm, tb1, depth+1, ts)
	case bSmall:
		recurseCurveCurve(a, va, b, vb, ta0, am, tb0, tb1, depth+1, ts)
		recurseCurveCurve(a, va, b, vb, am, ta1, tb0, tb1, depth+1, ts)
	default:
		recurseCurveCurve(a, va, b, vb, ta0, am, tb0, bm, depth+1, ts)
		recurseCurveCurve(a, va, b, vb, ta0, am, bm, tb1, depth+1, ts)
		recurseCurveCurve(a, va, b, vb, am, ta1, tb0, bm, depth+1, ts)
		recurseCurveCurve(a, va, b, vb, am, ta1, bm, tb1, depth+1, ts)
	}
}

// axisFraction maps a coordinate on an axis-aligned run to a parameter,
// honoring the run's stored direction.
func axisFraction(v, lo, hi float64, flipped bool) float64 {
	if hi == lo {
		return 0
	}
	f := (v - lo) / (hi - lo)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	if flipped {
		f = 1 - f
	}
	return f
}

// horizontalIntersect intersects a curve with the horizontal run
// [left,right] at height y. The curve is side 0; side 1 carries the
// parameter along the run, reversed when flipped. A line collinear with
// the run reports the two endpoints of the overlap.
func horizontalIntersect(pts []Point, v curveVerb, left, right, y float64, flipped bool, ts *intersections) int {
	if v == verbLine {
		return horizontalLineIntersect(pts, left, right, y, flipped, ts)
	}
	var e [4]float64
	n := v.ptCount()
	for i := 0; i < n; i++ {
		e[i] = pts[i].Y - y
	}
	var rootBuf [3]float64
	var roots []float64
	if v == verbQuad {
		roots = solveQuadratic(rootBuf[:0], e[0]-2*e[1]+e[2], 2*(e[1]-e[0]), e[0])
	} else {
		roots = solveCubic(rootBuf[:0],
			-e[0]+3*e[1]-3*e[2]+e[3],
			3*e[0]-6*e[1]+3*e[2],
			-3*e[0]+3*e[1],
			e[0])
	}
	for _, r := range unitRoots(roots) {
		x := curveXYAtT(pts, v, r).X
		if !withinRun(x, left, right) {
			continue
		}
		ts.add(r, axisFraction(x, left, right, flipped))
	}
	return ts.used
}

func horizontalLineIntersect(pts []Point, left, right, y float64, flipped bool, ts *intersections) int {
	dy := pts[1].Y - pts[0].Y
	if dy == 0 {
		if pts[0].Y != y {
			return 0
		}
		lo := math.Max(left, math.Min(pts[0].X, pts[1].X))
		hi := math.Min(right, math.Max(pts[0].X, pts[1].X))
		if lo > hi {
			return 0
		}
		onLine := func(x float64) float64 {
			t, _ := validUnitT((x - pts[0].X) / (pts[1].X - pts[0].X))
			return t
		}
		ts.add(onLine(lo), axisFraction(lo, left, right, flipped))
		if hi > lo {
			ts.add(onLine(hi), axisFraction(hi, left, right, flipped))
		}
		return ts.used
	}
	t, ok := validUnitT((y - pts[0].Y) / dy)
	if !ok {
		return 0
	}
	x := pts[0].Lerp(pts[1], t).X
	if !withinRun(x, left, right) {
		return 0
	}
	ts.add(t, axisFraction(x, left, right, flipped))
	return ts.used
}

// verticalIntersect intersects a curve with the vertical run [top,bottom]
// at position x; the mirror image of horizontalIntersect.
func verticalIntersect(pts []Point, v curveVerb, top, bottom, x float64, flipped bool, ts *intersections) int {
	if v == verbLine {
		return verticalLineIntersect(pts, top, bottom, x, flipped, ts)
	}
	var e [4]float64
	n := v.ptCount()
	for i := 0; i < n; i++ {
		e[i] = pts[i].X - x
	}
	var rootBuf [3]float64
	var roots []float64
	if v == verbQuad {
		roots = solveQuadratic(rootBuf[:0], e[0]-2*e[1]+e[2], 2*(e[1]-e[0]), e[0])
	} else {
		roots = solveCubic(rootBuf[:0],
			-e[0]+3*e[1]-3*e[2]+e[3],
			3*e[0]-6*e[1]+3*e[2],
			-3*e[0]+3*e[1],
			e[0])
	}
	for _, r := range unitRoots(roots) {
		y := curveXYAtT(pts, v, r).Y
		if !withinRun(y, top, bottom) {
			continue
		}
		ts.add(r, axisFraction(y, top, bottom, flipped))
	}
	return ts.used
}

func verticalLineIntersect(pts []Point, top, bottom, x float64, flipped bool, ts *intersections) int {
	dx := pts[1].X - pts[0].X
	if dx == 0 {
		if pts[0].X != x {
			return 0
		}
		lo := math.Max(top, math.Min(pts[0].Y, pts[1].Y))
		hi := math.Min(bottom, math.Max(pts[0].Y, pts[1].Y))
		if lo > hi {
			return 0
		}
		onLine := func(y float64) float64 {
			t, _ := validUnitT((y - pts[0].Y) / (pts[1].Y - pts[0].Y))
			return t
		}
		ts.add(onLine(lo), axisFraction(lo, top, bottom, flipped))
		if hi > lo {
			ts.add(onLine(hi), axisFraction(hi, top, bottom, flipped))
		}
		return ts.used
	}
	t, ok := validUnitT((x - pts[0].X) / dx)
	if !ok {
		return 0
	}
	y := pts[0].Lerp(pts[1], t).Y
	if !withinRun(y, top, bottom) {
		return 0
	}
	ts.add(t, axisFraction(y, top, bottom, flipped))
	return ts.used
}

// withinRun tests membership of the closed run [lo,hi] with a whisker of
// slack for endpoint contact computed in single precision upstream.
func withinRun(v, lo, hi float64) bool {
	const slack = 1e-9
	return v >= lo-slack && v <= hi+slack
}
