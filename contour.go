package simplify

import "math"

// coincidence pairs two segments whose traces agree pointwise over aligned
// parameter intervals, discovered during intersection and applied later.
type coincidence struct {
	segments [2]*segment
	ts       [2][2]float64
}

// contour is one closed sub-path of the input: an ordered list of segments
// plus the bookkeeping the simplifier accumulates about it.
type contour struct {
	segments       []*segment
	coincidences   []coincidence
	crosses        []*contour // contours known to share an intersection
	bounds         Bounds
	containsCurves bool
	windingSum     int // winding outside this contour; windSentinel if unknown
	id             int
}

func newContour(id int) *contour {
	return &contour{
		bounds:     emptyBounds(),
		windingSum: windSentinel,
		id:         id,
	}
}

// addCoincident records a coincident run between a segment of this contour
// and one of other. swap tells which operand the intersection record's
// side 0 belongs to.
func (c *contour) addCoincident(index int, other *contour, otherIndex int, ts *intersections, swap bool) {
	var co coincidence
	co.segments[0] = c.segments[index]
	co.segments[1] = other.segments[otherIndex]
	si := 0
	if swap {
		si = 1
	}
	co.ts[si][0] = ts.t[0][0]
	co.ts[si][1] = ts.t[0][1]
	co.ts[1-si][0] = ts.t[1][0]
	co.ts[1-si][1] = ts.t[1][1]
	c.coincidences = append(c.coincidences, co)
}

// addCross links a contour that shares an intersection with this one.
// Cross-linked contours cannot enclose each other, so the winding pass
// skips them.
func (c *contour) addCross(crosser *contour) {
	c.crosses = append(c.crosses, crosser)
}

func (c *contour) addLine(pts []Point) {
	s := &segment{}
	s.initCurve(pts, verbLine)
	c.segments = append(c.segments, s)
}

func (c *contour) addQuad(pts []Point) {
	s := &segment{}
	s.initCurve(pts, verbQuad)
	c.segments = append(c.segments, s)
	c.containsCurves = true
}

func (c *contour) addCubic(pts []Point) {
	s := &segment{}
	s.initCurve(pts, verbCubic)
	c.segments = append(c.segments, s)
	c.containsCurves = true
}

// complete freezes the contour once the edge builder has delivered every
// segment.
func (c *contour) complete(ids *idSource) {
	c.setBounds()
	for _, s := range c.segments {
		ids.segmentID++
		s.id = ids.segmentID
	}
}

func (c *contour) setBounds() {
	assert(len(c.segments) > 0)
	b := emptyBounds()
	for _, s := range c.segments {
		b.add(s.bounds)
	}
	c.bounds = b
}

// crossedSegment finds the segment of this contour whose intersection with
// the upward vertical ray from basePt lies closest to it (the largest Y
// still less than basePt.Y), improving on bestY. Returns nil when no segment beats the current best.
func (c *contour) crossedSegment(basePt Point, bestY *float64, tIndex *int, hitT *float64) *segment {
	var bestSegment *segment
	for _, test := range c.segments {
		b := test.bounds
		if b.Top < *bestY {
			continue
		}
		if b.Top > basePt.Y {
			continue
		}
		if b.Left > basePt.X || b.Right < basePt.X {
			continue
		}
		var testHitT float64
		testT := test.crossedSpan(basePt, bestY, &testHitT)
		if testT >= 0 {
			bestSegment = test
			*tIndex = testT
			*hitT = testHitT
		}
	}
	return bestSegment
}

// crossesContour reports whether the two contours are known to intersect.
// A contour trivially crosses itself.
func (c *contour) crossesContour(crosser *contour) bool {
	if c == crosser {
		return true
	}
	for _, cross := range c.crosses {
		if cross == crosser {
			return true
		}
	}
	return false
}

// resolveCoincidence applies the recorded coincident runs. Under even-odd
// input (base winding +1) stacked edges cancel pairwise; under a winding
// input same-direction edges stack instead, and only opposing traversals
// cancel.
func (c *contour) resolveCoincidence(winding int) {
	for i := range c.coincidences {
		co := &c.coincidences[i]
		thisOne := co.segments[0]
		other := co.segments[1]
		startT := co.ts[0][0]
		endT := co.ts[0][1]
		if startT > endT {
			startT, endT = endT, startT
		}
		assert(endT-startT >= tEpsilon)
		oStartT := co.ts[1][0]
		oEndT := co.ts[1][1]
		if oStartT > oEndT {
			oStartT, oEndT = oEndT, oStartT
		}
		assert(oEndT-oStartT >= tEpsilon)
		if endT-startT < tEpsilon || oEndT-oStartT < tEpsilon {
			continue
		}
		if winding > 0 || thisOne.cancels(other) {
			thisOne.addTCancel(startT, endT, other, oStartT, oEndT)
		} else {
			thisOne.addTCoincident(startT, endT, other, oStartT, oEndT)
		}
	}
}

// findTooCloseToCall scans each segment for coincident runs the
// intersectors did not report.
func (c *contour) findTooCloseToCall() {
	for _, s := range c.segments {
		s.findTooCloseToCall()
	}
}

func (c *contour) fixOtherTIndex() {
	for _, s := range c.segments {
		s.fixOtherTIndex()
	}
}

func (c *contour) setWinding(winding int) {
	assert(c.windingSum == windSentinel)
	c.windingSum = winding
}

// winding returns the contour's enclosing winding, consulting cross-linked
// peers when this contour's own value is still unknown.
func (c *contour) winding() int {
	if c.windingSum != windSentinel {
		return c.windingSum
	}
	for _, crosser := range c.crosses {
		if crosser.windingSum != windSentinel {
			c.windingSum = crosser.windingSum
			break
		}
	}
	return c.windingSum
}

// topSegment returns the not-done segment with the smallest live Y,
// updating bestY, or nil when the contour is exhausted.
func (c *contour) topSegment(bestY *float64) *segment {
	var bestSegment *segment
	bestTop := math.MaxFloat64
	for _, test := range c.segments {
		if test.done() {
			continue
		}
		if bestSegment != nil && test.bounds.Top > bestTop {
			continue
		}
		testTop := test.activeTop()
		if bestTop > testTop {
			bestTop = testTop
			bestSegment = test
		}
	}
	if bestSegment != nil {
		*bestY = bestTop
	}
	return bestSegment
}

// idSource tags contours and segments for diagnostics. Keeping the
// counters in the driver's arena rather than package globals keeps
// Simplify re-entrant.
type idSource struct {
	contourID int
	segmentID int
}
