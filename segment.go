package simplify

import (
	"math"

	"golang.org/x/image/math/f32"
)

// A segment is a single line, quadratic or cubic piece within a contour.
// It owns its control points, bounds and a T-sorted span list recording
// every parameter at which it meets another segment. Spans at equal T
// (within tEpsilon) form a cluster sharing one junction point; every
// consumer of T adjacency must treat a cluster as a unit.

// tEpsilon is the single tolerance for T equality. nextSpan, markDone,
// markWinding, buildAngles and the coincidence walks all use it; mixing
// tolerances here produces inconsistent span graphs.
const tEpsilon = 1.1920929e-7

// windSentinel marks a span whose accumulated winding is not yet known.
const windSentinel = math.MinInt32

// span records one meeting point on a segment's T list.
type span struct {
	other      *segment // segment met at this T
	pt         Point    // lazily computed as needed
	hasPt      bool
	t          float64
	otherT     float64 // T value on other at the shared point
	otherIndex int     // index of the mirrored span; invalid during insertion
	windSum    int     // accumulated winding from surrounding contours
	windValue  int     // 0 == canceled; 1 == normal; >1 == coincident
	done       bool    // the sub-edge from this span to the next is consumed
}

type segment struct {
	pts       []Point // 2, 3 or 4 source control points
	verb      curveVerb
	bounds    Bounds
	ts        []span // two or more; always includes t=0 and t=1
	doneSpans int    // quick check that the segment is finished
	id        int    // per-run identifier, for diagnostics
}

func (s *segment) initCurve(pts []Point, v curveVerb) {
	s.pts = pts
	s.verb = v
	s.doneSpans = 0
	s.bounds = curveBounds(pts, v)
}

// activeTop returns the smallest Y over the endpoints of spans that still
// have unconsumed sub-edges.
func (s *segment) activeTop() float64 {
	assert(!s.done())
	result := math.MaxFloat64
	lastDone := true
	for i := range s.ts {
		done := s.ts[i].done
		if !done || !lastDone {
			if y := s.yAtT(i); result > y {
				result = y
			}
		}
		lastDone = done
	}
	assert(result < math.MaxFloat64)
	return result
}

// addAngle appends the angle of the directed sub-edge from span start to
// span end. The junction point is at start.
func (s *segment) addAngle(angles *[]angle, start, end int) {
	assert(start != end)
	var edge [4]Point
	subCurve(s.pts, s.verb, s.ts[start].t, s.ts[end].t, &edge)
	var a angle
	a.set(&edge, s.verb, s, start, end)
	*angles = append(*angles, a)
}

// addCurveTo emits the sub-edge from span start to span end into the
// output path when active, and returns the sub-edge's final point at
// boundary precision either way.
func (s *segment) addCurveTo(start, end int, dst *Path, active bool) f32.Vec2 {
	var edge [4]Point
	subCurve(s.pts, s.verb, s.ts[start].t, s.ts[end].t, &edge)
	if active {
		switch s.verb {
		case verbLine:
			dst.LineTo(edge[1].X, edge[1].Y)
		case verbQuad:
			dst.QuadraticTo(edge[1].X, edge[1].Y, edge[2].X, edge[2].Y)
		case verbCubic:
			dst.CubicTo(edge[1].X, edge[1].Y, edge[2].X, edge[2].Y,
				edge[3].X, edge[3].Y)
		}
	}
	last := edge[int(s.verb)]
	return pt32(last.X, last.Y)
}

// addMoveTo starts an output contour at the given span's point when active
// and returns that point at boundary precision.
func (s *segment) addMoveTo(tIndex int, dst *Path, active bool) f32.Vec2 {
	pt := s.xyAtT(tIndex)
	if active {
		dst.MoveTo(pt.X, pt.Y)
	}
	return pt32(pt.X, pt.Y)
}

// addOtherT completes a span with its mate's parameter and index.
func (s *segment) addOtherT(index int, otherT float64, otherIndex int) {
	sp := &s.ts[index]
	sp.otherT = otherT
	sp.otherIndex = otherIndex
}

// addT inserts a span at the sorted position and returns its index. Ties
// with an existing T are allowed; clusters are handled by every consumer.
// Coincident edge processing is deferred until after all normal
// intersections are recorded.
func (s *segment) addT(newT float64, other *segment) int {
	insertedAt := len(s.ts)
	for i := range s.ts {
		if newT < s.ts[i].t {
			insertedAt = i
			break
		}
	}
	sp := span{
		t:         newT,
		other:     other,
		windSum:   windSentinel,
		windValue: 1,
	}
	if newT == 1 {
		sp.done = true
		s.doneSpans++
	}
	s.ts = append(s.ts, span{})
	copy(s.ts[insertedAt+1:], s.ts[insertedAt:])
	s.ts[insertedAt] = sp
	return insertedAt
}

// decrementSpan lowers a span's multiplicity, retiring the sub-edge when
// it reaches zero.
func (s *segment) decrementSpan(index int) {
	sp := &s.ts[index]
	assert(sp.windValue > 0)
	if sp.windValue == 0 {
		return
	}
	sp.windValue--
	if sp.windValue == 0 && !sp.done {
		sp.done = true
		s.doneSpans++
	}
}

// addTCancel walks two opposing coincident runs in lock step, cluster by
// cluster, lowering both multiplicities. The walk over other proceeds
// backwards because canceling runs have opposite parameter directions.
func (s *segment) addTCancel(startT, endT float64, other *segment, oStartT, oEndT float64) {
	assert(endT-startT >= tEpsilon)
	assert(oEndT-oStartT >= tEpsilon)
	index := 0
	for index < len(s.ts)-1 && startT-s.ts[index].t >= tEpsilon {
		index++
	}
	oIndex := len(other.ts)
	for oIndex > 0 {
		oIndex--
		if other.ts[oIndex].t-oEndT < tEpsilon {
			break
		}
	}
	// step below the cluster at oEndT; its sub-edge lies outside the run
	for oIndex > 0 {
		oIndex--
		if other.ts[oIndex].t-oEndT <= -tEpsilon {
			break
		}
	}
	for {
		decrement := s.ts[index].windValue != 0 && other.ts[oIndex].windValue != 0
		ref := index
		for {
			if decrement {
				s.decrementSpan(index)
			}
			index++
			if index >= len(s.ts) || s.ts[index].t-s.ts[ref].t >= tEpsilon {
				break
			}
		}
		oRef := oIndex
		for {
			if decrement {
				other.decrementSpan(oIndex)
			}
			if oIndex == 0 {
				break
			}
			oIndex--
			if other.ts[oRef].t-other.ts[oIndex].t >= tEpsilon {
				break
			}
		}
		if index >= len(s.ts) || s.ts[index].t >= endT-tEpsilon {
			break
		}
	}
}

// addTCoincident walks two same-direction coincident runs in lock step:
// the side with the larger multiplicity absorbs, the other side retires.
// Retired spans whose T has no mate on the absorbing side are collected
// and re-inserted afterwards so both segments end with aligned spans.
func (s *segment) addTCoincident(startT, endT float64, other *segment, oStartT, oEndT float64) {
	assert(endT-startT >= tEpsilon)
	assert(oEndT-oStartT >= tEpsilon)
	index := 0
	for index < len(s.ts)-1 && startT-s.ts[index].t >= tEpsilon {
		index++
	}
	oIndex := 0
	for oIndex < len(other.ts)-1 && oStartT-other.ts[oIndex].t >= tEpsilon {
		oIndex++
	}
	var outsideTs, oOutsideTs []float64
	for {
		decrementOther := s.ts[index].windValue >= other.ts[oIndex].windValue
		ref := index
		oRef := oIndex
		clusterT := s.ts[ref].t
		oClusterT := other.ts[oRef].t
		for {
			if decrementOther {
				s.ts[index].windValue++
			} else {
				wasDone := s.ts[index].done
				s.decrementSpan(index)
				if !wasDone && s.ts[index].done {
					outsideTs = append(outsideTs, s.ts[index].t, oClusterT)
				}
			}
			index++
			if index >= len(s.ts) || s.ts[index].t-s.ts[ref].t >= tEpsilon {
				break
			}
		}
		for {
			if decrementOther {
				wasDone := other.ts[oIndex].done
				other.decrementSpan(oIndex)
				if !wasDone && other.ts[oIndex].done {
					oOutsideTs = append(oOutsideTs, other.ts[oIndex].t, clusterT)
				}
			} else {
				other.ts[oIndex].windValue++
			}
			oIndex++
			if oIndex >= len(other.ts) || other.ts[oIndex].t-other.ts[oRef].t >= tEpsilon {
				break
			}
		}
		if index >= len(s.ts) || s.ts[index].t >= endT-tEpsilon {
			break
		}
	}
	if !s.done() && len(outsideTs) > 0 {
		s.addTOutsides(outsideTs, other, oEndT)
	}
	if !other.done() && len(oOutsideTs) > 0 {
		other.addTOutsides(oOutsideTs, s, endT)
	}
}

// addTOutsides inserts mate spans for the (t, otherT) pairs retired during
// a coincident walk, restoring pointwise linkage between both segments.
func (s *segment) addTOutsides(outsideTs []float64, other *segment, otherEnd float64) {
	endT := 0.0
	endSpan := 0
	for i := 0; i+1 < len(outsideTs); i += 2 {
		t := outsideTs[i]
		otherT := outsideTs[i+1]
		if t > 1-tEpsilon {
			return
		}
		if t-endT > tEpsilon {
			endSpan = s.addTPair(t, other, otherT)
		}
		for {
			endSpan++
			if endSpan >= len(s.ts) {
				return
			}
			endT = s.ts[endSpan].t
			if endT-t >= tEpsilon {
				break
			}
		}
	}
	s.addTPair(endT, other, otherEnd)
}

// addTPair adds symmetric spans to both segments and links them. The
// recorded indices may be invalidated by later insertions; fixOtherTIndex
// restores them once insertion is complete.
func (s *segment) addTPair(t float64, other *segment, otherT float64) int {
	insertedAt := s.addT(t, other)
	otherInsertedAt := other.addT(otherT, s)
	s.addOtherT(insertedAt, otherT, otherInsertedAt)
	other.addOtherT(otherInsertedAt, t, insertedAt)
	return insertedAt
}

// addTwoAngles appends the live edges entering and leaving the junction at
// span end, approached from span start.
func (s *segment) addTwoAngles(start, end int, angles *[]angle) {
	// edge leading into the junction
	if s.ts[min(end, start)].windValue > 0 {
		s.addAngle(angles, end, start)
	}
	// edge leading away from the junction
	step := sign32(end - start)
	tIndex := s.nextSpan(end, step)
	if tIndex >= 0 && s.ts[min(end, tIndex)].windValue > 0 {
		s.addAngle(angles, end, tIndex)
	}
}

// buildAngles collects the angles of every sub-edge meeting the junction
// cluster around span index, crossing to mate segments through each span.
func (s *segment) buildAngles(index int, angles *[]angle) {
	referenceT := s.ts[index].t
	for lesser := index - 1; lesser >= 0 && referenceT-s.ts[lesser].t < tEpsilon; lesser-- {
		s.buildAnglesInner(lesser, angles)
	}
	for ; index < len(s.ts) && s.ts[index].t-referenceT < tEpsilon; index++ {
		s.buildAnglesInner(index, angles)
	}
}

func (s *segment) buildAnglesInner(index int, angles *[]angle) {
	sp := &s.ts[index]
	other := sp.other
	// find the edge on either side of the intersection on the mate
	oIndex := sp.otherIndex
	step := 1
	next := other.nextSpan(oIndex, step)
	if next < 0 {
		step = -step
		next = other.nextSpan(oIndex, step)
	}
	if next < 0 {
		return
	}
	other.addTwoAngles(next, oIndex, angles)
}

// cancels reports whether this segment's overall direction opposes the
// other's, deciding how a coincident pair resolves.
func (s *segment) cancels(other *segment) bool {
	var angles [2]angle
	s.fullAngle(&angles[0])
	other.fullAngle(&angles[1])
	return angles[0].cancels(&angles[1])
}

// fullAngle fills a with the departure direction of the whole segment.
func (s *segment) fullAngle(a *angle) {
	var edge [4]Point
	subCurve(s.pts, s.verb, 0, 1, &edge)
	a.set(&edge, s.verb, s, 0, 1)
}

// crossedSpan intersects an upward vertical ray from basePt with this
// segment's spans. It returns the span index of the best hit (the largest
// Y still above the base point), updating bestY and hitT, or -1.
func (s *segment) crossedSpan(basePt Point, bestY *float64, hitT *float64) int {
	bestT := -1
	top := s.bounds.Top
	bottom := s.bounds.Bottom
	start := 0
	for {
		end := s.nextSpan(start, 1)
		if end < 0 {
			break
		}
		t0 := s.ts[start].t
		t1 := s.ts[end].t
		var edge [4]Point
		subCurve(s.pts, s.verb, t0, t1, &edge)
		var ts intersections
		pts := verticalIntersect(edge[:s.verb.ptCount()], s.verb, top, bottom, basePt.X, false, &ts)
		if pts > 0 && !(pts > 1 && s.verb == verbLine) {
			// an edge-on hit of a vertical line waits for another span
			foundT := t0 + ts.t[0][0]*(t1-t0)
			pt := curveXYAtT(s.pts, s.verb, foundT)
			if *bestY < pt.Y && pt.Y < basePt.Y {
				*bestY = pt.Y
				if foundT < t1 {
					bestT = start
				} else {
					bestT = end
				}
				*hitT = foundT
			}
		}
		start = end
		if s.ts[end].t == 1 {
			break
		}
	}
	return bestT
}

// done reports that every sub-edge has been consumed or canceled.
func (s *segment) done() bool {
	assert(s.doneSpans <= len(s.ts))
	return s.doneSpans == len(s.ts)
}

// findNext advances the bridge walk: given the directed sub-edge from
// startIndex to endIndex and the accumulated winding on its outside, it
// selects the successor edge whose winding transitions toward zero.
// Returns nil when the junction offers no viable continuation.
func (s *segment) findNext(winding, startIndex, endIndex int, nextStart, nextEnd *int, firstFind bool) *segment {
	assert(startIndex != endIndex)
	count := len(s.ts)
	if startIndex < endIndex {
		assert(startIndex < count-1)
	} else {
		assert(startIndex > 0)
	}
	step := sign32(endIndex - startIndex)
	end := s.nextSpan(startIndex, step)
	assert(end >= 0)
	if end < 0 {
		return nil
	}
	endSpan := &s.ts[end]
	if s.isSimple(end) {
		// mark the smaller of startIndex, endIndex done along with all
		// adjacent spans sharing its T
		s.markDone(min(startIndex, endIndex), winding)
		other := endSpan.other
		*nextStart = endSpan.otherIndex
		*nextEnd = *nextStart + step
		if *nextEnd < 0 || *nextEnd >= len(other.ts) {
			return nil
		}
		return other
	}
	// more than one viable candidate: order the edges around the junction
	var angles []angle
	s.addTwoAngles(startIndex, end, &angles)
	s.buildAngles(end, &angles)
	sorted := sortAngles(angles)
	firstIndex := -1
	for i, a := range sorted {
		if a.segment == s && a.start == end && a.end == startIndex {
			firstIndex = i
			break
		}
	}
	assert(firstIndex >= 0)
	if firstIndex < 0 {
		return nil
	}
	startWinding := winding
	angleCount := len(sorted)
	nextIndex := firstIndex + 1
	lastIndex := firstIndex
	if firstIndex == 0 {
		lastIndex = angleCount
	}
	var foundAngle *angle
	for {
		if nextIndex == angleCount {
			nextIndex = 0
		}
		nextAngle := sorted[nextIndex]
		maxWinding := winding
		nextSegment := nextAngle.segment
		windValue := nextSegment.windValueAt(nextAngle)
		assert(windValue > 0)
		winding -= nextAngle.sign() * windValue
		if winding == 0 {
			if foundAngle == nil {
				foundAngle = nextAngle
			}
		} else if !nextSegment.done() && nextSegment.windSumAt(nextAngle) == windSentinel {
			// winding is non-zero, so nextAngle does not connect to the
			// current chain; record the interim winding and propagate it
			// through unambiguous connections
			if absInt(maxWinding) < absInt(winding) {
				maxWinding = winding
			}
			if foundAngle != nil {
				nextSegment.markAndChaseWinding(nextAngle, maxWinding)
			} else {
				nextSegment.markAndChaseDone(nextAngle, maxWinding)
			}
		}
		nextIndex++
		if nextIndex == lastIndex {
			break
		}
	}
	s.markDone(min(startIndex, endIndex), startWinding)
	if foundAngle == nil {
		return nil
	}
	*nextStart = foundAngle.start
	*nextEnd = foundAngle.end
	return foundAngle.segment
}

// findTooCloseToCall looks for a pair of nearby T values mapping to the
// same point whose mate segments also share a point: the signature of a
// tiny coincident run that the intersectors did not report as one. The
// run is reported for diagnostics; resolving it is left undone because the
// cancel/coincident choice for these slivers has not been worked out.
func (s *segment) findTooCloseToCall() {
	count := len(s.ts)
	if count < 3 { // require t=0, x, 1 at minimum
		return
	}
	matchIndex := 0
	var match *span
	var mOther *segment
	for {
		match = &s.ts[matchIndex]
		mOther = match.other
		if len(mOther.ts) >= 3 {
			break
		}
		matchIndex++
		if matchIndex >= count {
			return
		}
	}
	matchPt := s.xyAtT(matchIndex)
	for index := matchIndex + 1; index < count; index++ {
		test := &s.ts[index]
		if test.done {
			continue
		}
		tOther := test.other
		if len(tOther.ts) < 3 {
			continue
		}
		testPt := s.xyAtT(index)
		if matchPt != testPt {
			matchIndex = index
			match = test
			mOther = tOther
			matchPt = testPt
			continue
		}
		moStart := -1
		moEnd := -1
		var moEndT float64
		for moIndex := range mOther.ts {
			moSpan := &mOther.ts[moIndex]
			if moSpan.done {
				continue
			}
			if moSpan.other == s {
				if moSpan.otherT == match.t {
					moStart = moIndex
				}
				continue
			}
			if moSpan.other == tOther {
				moEnd = moIndex
				moEndT = moSpan.t
			}
		}
		if moStart < 0 || moEnd < 0 || moStart == moEnd {
			continue
		}
		toStart := -1
		toEnd := -1
		for toIndex := range tOther.ts {
			toSpan := &tOther.ts[toIndex]
			if toSpan.other == s {
				if toSpan.otherT == test.t {
					toStart = toIndex
				}
				continue
			}
			if toSpan.other == mOther && toSpan.otherT == moEndT {
				toEnd = toIndex
			}
		}
		if toStart <= 0 || toEnd <= 0 || toStart == toEnd {
			continue
		}
		if !mOther.isLinear(moStart, moEnd) || !tOther.isLinear(toStart, toEnd) {
			continue
		}
		Logger().Debug("unresolved near-coincident run",
			"segment", s.id, "t", match.t, "otherT", test.t)
	}
}

// findTop locates this segment's topmost live point, orders the edges
// meeting there, and returns the leftmost live edge as the starting edge
// of an output contour.
func (s *segment) findTop(tIndex, endIndex *int) *segment {
	// topmost tangent from y-min to first point is closest to horizontal
	assert(!s.done())
	firstT := -1
	topPt := Point{X: math.MaxFloat64, Y: math.MaxFloat64}
	count := len(s.ts)
	// check both ends of each sub-edge, wanting the smaller Y of the pair
	lastDone := true
	for i := 0; i < count; i++ {
		sp := &s.ts[i]
		if !sp.done || !lastDone {
			intercept := s.xyAtT(i)
			if topPt.Y > intercept.Y ||
				(topPt.Y == intercept.Y && topPt.X > intercept.X) {
				topPt = intercept
				firstT = i
			}
		}
		lastDone = sp.done
	}
	assert(firstT >= 0)
	if firstT < 0 {
		return nil
	}
	end := s.nextSpan(firstT, 1)
	if end == -1 {
		end = s.nextSpan(firstT, -1)
		assert(end != -1)
		if end < 0 {
			return nil
		}
	}
	// sort the edges at the top to find the leftmost
	var angles []angle
	s.addTwoAngles(end, firstT, &angles)
	s.buildAngles(firstT, &angles)
	sorted := sortAngles(angles)
	// skip edges that have already been processed
	first := -1
	var leftSegment *segment
	for {
		first++
		if first >= len(sorted) {
			return nil
		}
		a := sorted[first]
		leftSegment = a.segment
		*tIndex = a.end
		*endIndex = a.start
		if !leftSegment.ts[min(*tIndex, *endIndex)].done {
			break
		}
	}
	return leftSegment
}

// fixOtherTIndex rebinds every span to its mirrored span. Indices recorded
// during insertion go stale as later insertions shift the mate's list, so
// the linkage is rebuilt wholesale once all spans exist.
func (s *segment) fixOtherTIndex() {
	for i := range s.ts {
		iSpan := &s.ts[i]
		oT := iSpan.otherT
		other := iSpan.other
		for o := range other.ts {
			oSpan := &other.ts[o]
			if oSpan.t == oT && oSpan.other == s {
				iSpan.otherIndex = o
				break
			}
		}
	}
}

// chaseDone follows a linear (non-branching) chain of spans, marking each
// unambiguous connection done with the given winding.
func (s *segment) chaseDone(index, step, winding int) {
	cur := s
	startSeg, startIndex := s, index
	for {
		end := cur.nextSpan(index, step)
		if end < 0 || cur.multipleSpans(end, step) {
			return
		}
		endSpan := &cur.ts[end]
		other := endSpan.other
		index = endSpan.otherIndex
		if other == startSeg && index == startIndex {
			return // chain closed on itself
		}
		otherEnd := other.nextSpan(index, step)
		if otherEnd < 0 {
			return
		}
		other.markDone(min(index, otherEnd), winding)
		cur = other
	}
}

// chaseWinding follows a linear chain of spans, recording the winding on
// each until a branch or an already-winded span stops it.
func (s *segment) chaseWinding(index, step, winding int) {
	cur := s
	for {
		end := cur.nextSpan(index, step)
		if end < 0 || cur.multipleSpans(end, step) {
			return
		}
		endSpan := &cur.ts[end]
		other := endSpan.other
		oIndex := endSpan.otherIndex
		otherEnd := other.nextSpan(oIndex, step)
		if otherEnd < 0 {
			return
		}
		m := min(oIndex, otherEnd)
		if other.ts[m].windSum != windSentinel {
			return
		}
		other.markWinding(m, winding)
		cur, index = other, oIndex
	}
}

// isLinear reports whether the sub-curve between two spans is a straight
// run.
func (s *segment) isLinear(start, end int) bool {
	if s.verb == verbLine {
		return true
	}
	var edge [4]Point
	subCurve(s.pts, s.verb, s.ts[start].t, s.ts[end].t, &edge)
	if s.verb == verbQuad {
		return collinear(edge[0], edge[2], edge[1])
	}
	return collinear(edge[0], edge[3], edge[1]) && collinear(edge[0], edge[3], edge[2])
}

// isSimple reports whether the junction at span end connects exactly two
// sub-edges, so the successor is the mate directly and no angle sort is
// needed.
func (s *segment) isSimple(end int) bool {
	count := len(s.ts)
	if count == 2 {
		return true
	}
	t := s.ts[end].t
	if t < tEpsilon {
		return s.ts[1].t >= tEpsilon
	}
	if t > 1-tEpsilon {
		return s.ts[count-2].t <= 1-tEpsilon
	}
	return false
}

func (s *segment) isHorizontal() bool {
	return s.bounds.Top == s.bounds.Bottom
}

func (s *segment) isVertical() bool {
	return s.bounds.Left == s.bounds.Right
}

// markAndChaseDone marks the angle's sub-edge done (this edge is excluded
// by the winding rule) and chases its far end through unambiguous
// connections.
func (s *segment) markAndChaseDone(a *angle, winding int) {
	index := a.start
	endIndex := a.end
	step := sign32(endIndex - index)
	s.chaseDone(index, step, winding)
	s.markDone(min(index, endIndex), winding)
}

// markAndChaseWinding records the winding on the angle's sub-edge and
// propagates it through unambiguous connections.
func (s *segment) markAndChaseWinding(a *angle, winding int) {
	index := a.start
	endIndex := a.end
	step := sign32(endIndex - index)
	s.chaseWinding(index, step, winding)
	s.markWinding(min(index, endIndex), winding)
}

// markDone marks the cluster at index done, recording the winding. Spans
// already done are left untouched.
func (s *segment) markDone(index, winding int) {
	referenceT := s.ts[index].t
	for lesser := index - 1; lesser >= 0 && referenceT-s.ts[lesser].t < tEpsilon; lesser-- {
		s.markOneDone(lesser, winding)
	}
	for ; index < len(s.ts) && s.ts[index].t-referenceT < tEpsilon; index++ {
		s.markOneDone(index, winding)
	}
}

func (s *segment) markOneDone(index, winding int) {
	sp := &s.ts[index]
	if sp.done {
		return
	}
	assert(sp.windSum == windSentinel || sp.windSum == winding)
	sp.done = true
	sp.windSum = winding
	s.doneSpans++
}

// markWinding records the winding on the cluster at index without
// consuming it.
func (s *segment) markWinding(index, winding int) {
	assert(!s.done())
	referenceT := s.ts[index].t
	for lesser := index - 1; lesser >= 0 && referenceT-s.ts[lesser].t < tEpsilon; lesser-- {
		s.markOneWinding(lesser, winding)
	}
	for ; index < len(s.ts) && s.ts[index].t-referenceT < tEpsilon; index++ {
		s.markOneWinding(index, winding)
	}
}

func (s *segment) markOneWinding(index, winding int) {
	sp := &s.ts[index]
	if sp.done {
		return
	}
	assert(sp.windSum == windSentinel || sp.windSum == winding)
	sp.windSum = winding
}

// multipleSpans reports whether further spans exist beyond end in the walk
// direction, which makes the connection there ambiguous for chasing.
func (s *segment) multipleSpans(end, step int) bool {
	if step > 0 {
		return end+1 < len(s.ts)
	}
	return end > 0
}

// nextSpan returns the index of the nearest span beyond from (in the
// direction of step) whose T leaves the cluster at from, or -1.
func (s *segment) nextSpan(from, step int) int {
	fromT := s.ts[from].t
	count := len(s.ts)
	to := from
	for {
		to += step
		if step > 0 {
			if to >= count {
				break
			}
			if s.ts[to].t-fromT < tEpsilon {
				continue
			}
		} else {
			if to < 0 {
				break
			}
			if fromT-s.ts[to].t < tEpsilon {
				continue
			}
		}
		return to
	}
	return -1
}

// spanSign gives the winding contribution of the directed sub-edge: a
// forward traversal contributes the negated multiplicity.
func (s *segment) spanSign(startIndex, endIndex int) int {
	if startIndex < endIndex {
		return -s.ts[startIndex].windValue
	}
	return s.ts[endIndex].windValue
}

func (s *segment) t(tIndex int) float64 {
	return s.ts[tIndex].t
}

// windSum returns the accumulated winding at a span, windSentinel if
// unknown.
func (s *segment) windSum(tIndex int) int {
	return s.ts[tIndex].windSum
}

// windSumAt returns the accumulated winding of an angle's sub-edge.
func (s *segment) windSumAt(a *angle) int {
	return s.windSum(min(a.start, a.end))
}

// windValue returns the multiplicity of the sub-edge starting at tIndex.
func (s *segment) windValue(tIndex int) int {
	return s.ts[tIndex].windValue
}

// windValueAt returns the multiplicity of an angle's sub-edge.
func (s *segment) windValueAt(a *angle) int {
	return s.windValue(min(a.start, a.end))
}

// xyAtT returns the point at a span's T, computing and caching it on first
// use.
func (s *segment) xyAtT(index int) Point {
	sp := &s.ts[index]
	if !sp.hasPt {
		switch {
		case sp.t == 0:
			sp.pt = s.pts[0]
		case sp.t == 1:
			sp.pt = s.pts[len(s.pts)-1]
		default:
			sp.pt = curveXYAtT(s.pts, s.verb, sp.t)
		}
		sp.hasPt = true
	}
	return sp.pt
}

func (s *segment) yAtT(index int) float64 {
	return s.xyAtT(index).Y
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
