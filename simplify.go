package simplify

import "sort"

// Simplify rewrites src as an equivalent path whose outline is one or more
// simple closed contours with no overlapping edges, filling identically
// under the even-odd rule.
//
// dst is cleared on entry and receives fill type FillEvenOdd. The inverse
// bit of src's fill type is discarded: the output outlines the same region
// set, and re-inverting is the caller's concern.
//
// Simplify never fails. Degenerate input curves are dropped, and a
// pathological junction that cannot be walked abandons only the contour it
// belongs to.
func Simplify(src, dst *Path) {
	// evenodd maps to +1, winding to -1, regardless of inverse-ness
	winding := -1
	if src.FillType().IsEvenOdd() {
		winding = 1
	}
	dst.Clear()
	dst.SetFillType(FillEvenOdd)

	// turn the path into a sorted list of contours of segments
	var ids idSource
	var contours []*contour
	buildEdges(src, &contours, &ids)
	contourList := makeContourList(contours)
	if len(contourList) == 0 {
		return
	}
	Logger().Debug("simplify", "contours", len(contourList),
		"fill", src.FillType())

	// find all intersections between segment pairs
	for i := range contourList {
		current := contourList[i]
		for j := i; j < len(contourList); j++ {
			if !addIntersectTs(current, contourList[j]) {
				break
			}
		}
	}
	fixOtherTIndex(contourList)
	// eat through coincident edges
	coincidenceCheck(contourList, winding)
	// coincidence resolution can insert spans of its own, so restore the
	// mirrored-index invariant once more before walking
	fixOtherTIndex(contourList)
	// construct closed contours
	bridge(contourList, dst)
}

// makeContourList orders contours by their bounds, top first then left.
func makeContourList(contours []*contour) []*contour {
	list := make([]*contour, len(contours))
	copy(list, contours)
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.bounds.Top == b.bounds.Top {
			return a.bounds.Left < b.bounds.Left
		}
		return a.bounds.Top < b.bounds.Top
	})
	return list
}

// coincidenceCheck resolves the coincident pairs found while intersecting,
// then looks for coincidence formed by clipped non-coincident segments.
func coincidenceCheck(contourList []*contour, winding int) {
	for _, c := range contourList {
		c.resolveCoincidence(winding)
	}
	for _, c := range contourList {
		c.findTooCloseToCall()
	}
}

func fixOtherTIndex(contourList []*contour) {
	for _, c := range contourList {
		c.fixOtherTIndex()
	}
}
