package simplify

import "math"

// The winding pass assigns a base winding to a contour by shooting a
// vertical ray upward from one of its points and reading the accumulated
// winding of the closest edge crossed. Contours that share an intersection
// with the base contour cannot enclose it and are skipped.

// innerContourCheck computes the winding enclosing baseContour at basePt
// and stores it on the contour.
func innerContourCheck(contourList []*contour, baseContour *contour, basePt Point) int {
	winding := 0
	bestY := -math.MaxFloat64
	for _, c := range contourList {
		if basePt.Y < c.bounds.Top {
			continue
		}
		if bestY > c.bounds.Bottom {
			continue
		}
		if baseContour.crossesContour(c) {
			continue
		}
		var tIndex int
		var tHit float64
		test := c.crossedSegment(basePt, &bestY, &tIndex, &tHit)
		if test == nil {
			continue
		}
		var dx float64
		if tHit == test.t(tIndex) {
			// The ray hit the shared end of two spans. Build the wheel of
			// angles there and take the winding of the edge nearest the
			// ray, preferring one whose X derivative is nonzero.
			var angles []angle
			end := test.nextSpan(tIndex, 1)
			if end < 0 {
				end = test.nextSpan(tIndex, -1)
			}
			if end < 0 {
				continue
			}
			test.addTwoAngles(tIndex, end, &angles)
			test.buildAngles(tIndex, &angles)
			sorted := sortAngles(angles)
			if len(sorted) == 0 {
				continue
			}
			a := sorted[0]
			if a.dx == 0 {
				a = sorted[len(sorted)-1]
				assert(a.dx != 0)
				if a.dx == 0 {
					continue
				}
			}
			winding = a.segment.windSum(min(a.start, a.end))
			dx = a.dx
		} else {
			winding = test.windSum(tIndex)
			dx = curveDXAtT(test.pts, test.verb, tHit)
		}
		if winding == windSentinel {
			Logger().Debug("ray hit an unwinded span", "contour", c.id)
			winding = 0
			continue
		}
		// If a positive change in T has the same sign as the winding, the
		// ray exited rather than entered the edge; step the count back.
		assert(dx != 0)
		if winding != 0 && dx != 0 && (winding > 0) == (dx > 0) {
			if dx > 0 {
				winding--
			} else {
				winding++
			}
		}
	}
	baseContour.setWinding(winding)
	return winding
}

// findTopContour locates the contour and segment holding the smallest live
// Y across the whole set.
func findTopContour(contourList []*contour, topContour **contour) *segment {
	var topStart *segment
	bestY := math.MaxFloat64
	ci := 0
	var c *contour
	for ci < len(contourList) {
		c = contourList[ci]
		topStart = c.topSegment(&bestY)
		if topStart != nil {
			break
		}
		ci++
	}
	if topStart == nil {
		return nil
	}
	*topContour = c
	for ci++; ci < len(contourList); ci++ {
		testContour := contourList[ci]
		if bestY < testContour.bounds.Top {
			continue
		}
		testY := math.MaxFloat64
		test := testContour.topSegment(&testY)
		if test == nil || bestY <= testY {
			continue
		}
		*topContour = testContour
		topStart = test
		bestY = testY
	}
	return topStart
}
