package simplify

// Path operations for winding, containment, signed area and bounding box.
// Sub-paths are treated as closed for region queries, matching how the
// simplifier and rasterizers interpret fills.

// windingTolerance is the flattening tolerance for curve winding queries.
const windingTolerance = 0.05

// Winding returns the signed crossing count of a rightward horizontal ray
// from pt against the path's outline.
func (p *Path) Winding(pt Point) int {
	wind, _ := p.windCross(pt)
	return wind
}

// Contains reports whether pt lies inside the path under its fill rule.
func (p *Path) Contains(pt Point) bool {
	wind, cross := p.windCross(pt)
	var in bool
	if p.fill.IsEvenOdd() {
		in = cross&1 == 1
	} else {
		in = wind != 0
	}
	if p.fill.IsInverse() {
		in = !in
	}
	return in
}

// windCross walks the path once and accumulates both the signed winding
// and the raw crossing count of a rightward ray from pt.
func (p *Path) windCross(pt Point) (wind, cross int) {
	var cur, start Point
	started := false
	visit := func(a, b Point) {
		w, c := edgeCross(a, b, pt)
		wind += w
		cross += c
	}
	closeEdge := func() {
		if started && cur != start {
			visit(cur, start)
		}
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			closeEdge()
			start = pt64(e.Point)
			cur = start
			started = true
		case LineTo:
			q := pt64(e.Point)
			visit(cur, q)
			cur = q
		case QuadTo:
			q := []Point{cur, pt64(e.Control), pt64(e.Point)}
			flattenEdges(q, verbQuad, visit)
			cur = q[2]
		case CubicTo:
			c := []Point{cur, pt64(e.Control1), pt64(e.Control2), pt64(e.Point)}
			flattenEdges(c, verbCubic, visit)
			cur = c[3]
		case Close:
			closeEdge()
			cur = start
		}
	}
	closeEdge()
	return wind, cross
}

// edgeCross returns the winding contribution and crossing count of one
// edge against a rightward ray from pt. The half-open rule keeps shared
// vertices from counting twice.
func edgeCross(p0, p1, pt Point) (int, int) {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1, 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1, 1
		}
	}
	return 0, 0
}

// isLeft is positive when pt lies left of the directed line p0->p1.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// flattenEdges subdivides a curve until flat and feeds the resulting line
// chain to visit.
func flattenEdges(pts []Point, v curveVerb, visit func(a, b Point)) {
	const tolSq = windingTolerance * windingTolerance
	var recurse func(t0, t1 float64, depth int)
	recurse = func(t0, t1 float64, depth int) {
		var edge [4]Point
		subCurve(pts, v, t0, t1, &edge)
		last := edge[int(v)]
		if depth >= 12 || flatEnough(&edge, v, tolSq) {
			visit(edge[0], last)
			return
		}
		mid := (t0 + t1) / 2
		recurse(t0, mid, depth+1)
		recurse(mid, t1, depth+1)
	}
	recurse(0, 1, 0)
}

func flatEnough(edge *[4]Point, v curveVerb, tolSq float64) bool {
	if v == verbQuad {
		mid := edge[0].Lerp(edge[2], 0.5)
		return edge[1].Sub(mid).LengthSquared() <= tolSq
	}
	ux := 3*edge[1].X - 2*edge[0].X - edge[3].X
	uy := 3*edge[1].Y - 2*edge[0].Y - edge[3].Y
	vx := 3*edge[2].X - edge[0].X - 2*edge[3].X
	vy := 3*edge[2].Y - edge[0].Y - 2*edge[3].Y
	flat := ux*ux + uy*uy
	if f := vx*vx + vy*vy; f > flat {
		flat = f
	}
	return flat <= 16*tolSq
}

// Area returns the signed area enclosed by the path, computed by Green's
// theorem with exact per-verb contributions. Sub-paths are treated as
// closed. Positive for clockwise outlines in this coordinate system.
func (p *Path) Area() float64 {
	var area float64
	var cur, start Point
	started := false
	closeEdge := func() {
		if started {
			area += lineArea(cur, start)
		}
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			closeEdge()
			start = pt64(e.Point)
			cur = start
			started = true
		case LineTo:
			q := pt64(e.Point)
			area += lineArea(cur, q)
			cur = q
		case QuadTo:
			c, q := pt64(e.Control), pt64(e.Point)
			area += quadArea(cur, c, q)
			cur = q
		case CubicTo:
			c1, c2, q := pt64(e.Control1), pt64(e.Control2), pt64(e.Point)
			area += cubicArea(cur, c1, c2, q)
			cur = q
		case Close:
			closeEdge()
			cur = start
		}
	}
	closeEdge()
	return area
}

// lineArea is the shoelace contribution of one edge.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// quadArea integrates (x dy - y dx)/2 along a quadratic in closed form.
func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + 2*p1.X*(p2.Y-p0.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6
}

// cubicArea integrates (x dy - y dx)/2 along a cubic in closed form.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20
}

// BoundingBox returns the tight axis-aligned bounds of the path, using
// curve extrema rather than control hulls.
func (p *Path) BoundingBox() Bounds {
	b := emptyBounds()
	var cur Point
	seen := false
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			cur = pt64(e.Point)
			b.addPoint(cur)
			seen = true
		case LineTo:
			q := pt64(e.Point)
			b.addPoint(cur)
			b.addPoint(q)
			cur = q
			seen = true
		case QuadTo:
			pts := []Point{cur, pt64(e.Control), pt64(e.Point)}
			b.add(curveBounds(pts, verbQuad))
			cur = pts[2]
			seen = true
		case CubicTo:
			pts := []Point{cur, pt64(e.Control1), pt64(e.Control2), pt64(e.Point)}
			b.add(curveBounds(pts, verbCubic))
			cur = pts[3]
			seen = true
		}
	}
	if !seen {
		return Bounds{}
	}
	return b
}
