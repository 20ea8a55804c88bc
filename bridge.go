package simplify

import "golang.org/x/image/math/f32"

// The bridge walks the intersected edge graph and emits the output. Each
// pass starts at the topmost unprocessed edge; above the top is outside,
// below is inside. Edges whose accumulated winding transitions through
// zero separate filled from unfilled area and are written out; edges
// buried inside the winding, and coincident pairs that cancel, are only
// marked consumed.
func bridge(contourList []*contour, dst *Path) {
	firstContour := true
	for {
		var topContour *contour
		topStart := findTopContour(contourList, &topContour)
		if topStart == nil {
			break
		}
		var index, endIndex int
		current := topStart.findTop(&index, &endIndex)
		if current == nil {
			break
		}
		// A contour whose winding was already established contributes zero
		// here: its unprocessed edges continue the walk that set it.
		winding := 0
		if !firstContour && topContour.winding() == windSentinel {
			topPoint := current.xyAtT(endIndex)
			winding = innerContourCheck(contourList, topContour, topPoint)
		}
		var firstPt *f32.Vec2
		var lastPt f32.Vec2
		firstTime := true
		spanWinding := current.spanSign(index, endIndex)
		if firstContour {
			topContour.setWinding(spanWinding)
			firstContour = false
		}
		active := winding*spanWinding <= 0
		for {
			assert(!current.done())
			var nextStart, nextEnd int
			next := current.findNext(winding+spanWinding, index, endIndex,
				&nextStart, &nextEnd, firstTime)
			if next == nil {
				if firstPt != nil && *firstPt != lastPt {
					Logger().Warn("abandoning unclosable contour",
						"segment", current.id)
				}
				break
			}
			if firstPt == nil {
				p := current.addMoveTo(index, dst, active)
				firstPt = &p
			}
			lastPt = current.addCurveTo(index, endIndex, dst, active)
			current = next
			index = nextStart
			endIndex = nextEnd
			spanWinding = sign32(spanWinding) *
				next.windValue(min(nextStart, nextEnd))
			firstTime = false
			if *firstPt == lastPt {
				break
			}
		}
		if firstPt != nil && active {
			dst.Close()
		}
	}
}
