package simplify

// The intersection pass visits every segment pair of every contour pair,
// pruned by bounds, and records T values on both sides. Horizontal and
// vertical lines take the axis-aligned fast path; the operands swap as
// needed so the curve is always the intersector's primary side.

// segType refines the curve verb for dispatch: axis-aligned lines sort
// below generic ones.
type segType int

const (
	segTypeHorizontal segType = iota - 1
	segTypeVertical
	segTypeLine
	segTypeQuad
	segTypeCubic
)

// work is a cursor over one contour's segments during the intersection
// pass.
type work struct {
	c     *contour
	index int
	last  int
	cubic [4]Point // scratch for quads promoted to cubic
}

func (w *work) init(c *contour) {
	w.c = c
	w.index = 0
	w.last = len(c.segments)
}

func (w *work) advance() bool {
	w.index++
	return w.index < w.last
}

// startAfter positions this cursor just past another cursor on the same
// contour, so same-contour pairs are visited once.
func (w *work) startAfter(after *work) bool {
	w.index = after.index
	return w.advance()
}

func (w *work) seg() *segment {
	return w.c.segments[w.index]
}

func (w *work) pts() []Point {
	return w.seg().pts
}

func (w *work) verb() curveVerb {
	return w.seg().verb
}

func (w *work) bounds() Bounds {
	return w.seg().bounds
}

func (w *work) left() float64   { return w.bounds().Left }
func (w *work) right() float64  { return w.bounds().Right }
func (w *work) top() float64    { return w.bounds().Top }
func (w *work) bottom() float64 { return w.bounds().Bottom }
func (w *work) x() float64      { return w.bounds().Left }
func (w *work) y() float64      { return w.bounds().Top }

// xFlipped reports that the segment runs right to left, so the fraction
// along its bounds must be reversed to line up with its parameter.
func (w *work) xFlipped() bool {
	return w.x() != w.pts()[0].X
}

func (w *work) yFlipped() bool {
	return w.y() != w.pts()[0].Y
}

func (w *work) segmentType() segType {
	s := w.seg()
	if s.verb != verbLine {
		return segType(s.verb)
	}
	if s.isHorizontal() {
		return segTypeHorizontal
	}
	if s.isVertical() {
		return segTypeVertical
	}
	return segTypeLine
}

func (w *work) promoteToCubic() {
	w.cubic = promoteQuadToCubic(w.pts())
}

func (w *work) isAdjacent(next *work) bool {
	return w.c == next.c && w.index+1 == next.index
}

func (w *work) isFirstLast(next *work) bool {
	return w.c == next.c && w.index == 0 && next.index == w.last-1
}

func (w *work) addT(t float64, other *work) int {
	return w.seg().addT(t, other.seg())
}

func (w *work) addOtherT(index int, otherT float64, otherIndex int) {
	w.seg().addOtherT(index, otherT, otherIndex)
}

func (w *work) addCoincident(other *work, ts *intersections, swap bool) {
	w.c.addCoincident(w.index, other.c, other.index, ts, swap)
}

// addIntersectTs intersects every segment pair between two contours (which
// may be the same contour). Returns false when the pair, and every later
// pair against a contour sorted below next, is vertically separated.
func addIntersectTs(test, next *contour) bool {
	if test != next {
		if test.bounds.Bottom < next.bounds.Top {
			return false
		}
		if !boundsIntersect(test.bounds, next.bounds) {
			return true
		}
	}
	var wt work
	wt.init(test)
	foundCommonContour := test == next
	for {
		var wn work
		wn.init(next)
		if test == next && !wn.startAfter(&wt) {
			if !wt.advance() {
				break
			}
			continue
		}
		for {
			if boundsIntersect(wt.bounds(), wn.bounds()) {
				intersectPair(&wt, &wn, test, next, &foundCommonContour)
			}
			if !wn.advance() {
				break
			}
		}
		if !wt.advance() {
			break
		}
	}
	return true
}

// intersectPair dispatches one segment pair to the primitive intersector
// and records the resulting spans or coincidence.
func intersectPair(wt, wn *work, test, next *contour, foundCommonContour *bool) {
	var ts intersections
	var pts int
	swap := false
	wtType := wt.segmentType()
	wnType := wn.segmentType()
	switch wtType {
	case segTypeHorizontal:
		swap = true
		pts = horizontalIntersect(wn.pts(), wn.verb(), wt.left(), wt.right(),
			wt.y(), wt.xFlipped(), &ts)
	case segTypeVertical:
		swap = true
		pts = verticalIntersect(wn.pts(), wn.verb(), wt.top(), wt.bottom(),
			wt.x(), wt.yFlipped(), &ts)
	case segTypeLine:
		switch wnType {
		case segTypeHorizontal:
			pts = horizontalIntersect(wt.pts(), verbLine, wn.left(), wn.right(),
				wn.y(), wn.xFlipped(), &ts)
		case segTypeVertical:
			pts = verticalIntersect(wt.pts(), verbLine, wn.top(), wn.bottom(),
				wn.x(), wn.yFlipped(), &ts)
		case segTypeLine:
			pts = lineLineIntersect(wt.pts()[0], wt.pts()[1],
				wn.pts()[0], wn.pts()[1], &ts)
		default:
			swap = true
			pts = curveLineIntersect(wn.pts(), wn.verb(),
				wt.pts()[0], wt.pts()[1], &ts)
		}
	case segTypeQuad:
		switch wnType {
		case segTypeHorizontal:
			pts = horizontalIntersect(wt.pts(), verbQuad, wn.left(), wn.right(),
				wn.y(), wn.xFlipped(), &ts)
		case segTypeVertical:
			pts = verticalIntersect(wt.pts(), verbQuad, wn.top(), wn.bottom(),
				wn.x(), wn.yFlipped(), &ts)
		case segTypeLine:
			pts = curveLineIntersect(wt.pts(), verbQuad,
				wn.pts()[0], wn.pts()[1], &ts)
		case segTypeQuad:
			pts = curveCurveIntersect(wt.pts(), verbQuad, wn.pts(), verbQuad, &ts)
		case segTypeCubic:
			wt.promoteToCubic()
			pts = curveCurveIntersect(wt.cubic[:], verbCubic, wn.pts(), verbCubic, &ts)
		}
	case segTypeCubic:
		switch wnType {
		case segTypeHorizontal:
			pts = horizontalIntersect(wt.pts(), verbCubic, wn.left(), wn.right(),
				wn.y(), wn.xFlipped(), &ts)
		case segTypeVertical:
			pts = verticalIntersect(wt.pts(), verbCubic, wn.top(), wn.bottom(),
				wn.x(), wn.yFlipped(), &ts)
		case segTypeLine:
			pts = curveLineIntersect(wt.pts(), verbCubic,
				wn.pts()[0], wn.pts()[1], &ts)
		case segTypeQuad:
			wn.promoteToCubic()
			pts = curveCurveIntersect(wt.pts(), verbCubic, wn.cubic[:], verbCubic, &ts)
		case segTypeCubic:
			pts = curveCurveIntersect(wt.pts(), verbCubic, wn.pts(), verbCubic, &ts)
		}
	}
	if !*foundCommonContour && pts > 0 {
		test.addCross(next)
		next.addCross(test)
		*foundCommonContour = true
	}
	// two hits on a pair of line-class segments is a shared run, not a
	// crossing; record it for coincidence resolution. Segments adjacent in
	// their own contour first get explicit endpoint span pairs so the run
	// is anchored on both sides.
	if pts == 2 && wnType <= segTypeLine && wtType <= segTypeLine {
		if wt.isAdjacent(wn) {
			testEndTAt := wt.addT(1, wn)
			nextEndTAt := wn.addT(0, wt)
			wt.addOtherT(testEndTAt, 0, nextEndTAt)
			wn.addOtherT(nextEndTAt, 1, testEndTAt)
		}
		if wt.isFirstLast(wn) {
			testStartTAt := wt.addT(0, wn)
			nextStartTAt := wn.addT(1, wt)
			wt.addOtherT(testStartTAt, 1, nextStartTAt)
			wn.addOtherT(nextStartTAt, 0, testStartTAt)
		}
		wt.addCoincident(wn, &ts, swap)
		return
	}
	sa := ts.side(swap)
	sb := 1 - sa
	for pt := 0; pt < pts; pt++ {
		assert(ts.t[0][pt] >= 0 && ts.t[0][pt] <= 1)
		assert(ts.t[1][pt] >= 0 && ts.t[1][pt] <= 1)
		testTAt := wt.addT(ts.t[sa][pt], wn)
		nextTAt := wn.addT(ts.t[sb][pt], wt)
		wt.addOtherT(testTAt, ts.t[sb][pt], nextTAt)
		wn.addOtherT(nextTAt, ts.t[sa][pt], testTAt)
	}
}
