package simplify

import "golang.org/x/image/math/f32"

// edgeBuilder turns a path's element list into contours of reduced
// segments. Degenerate curves are dropped, higher orders collapse where
// the geometry allows, and a missing closing edge is synthesized.
//
// Segment points are copied out of the path at boundary precision and
// promoted once, so reductions never need a relocation fix-up pass.
type edgeBuilder struct {
	current *contour
	movePt  f32.Vec2
	pen     f32.Vec2
	out     *[]*contour
	ids     *idSource
}

// buildEdges populates contours from the path's verbs in order.
func buildEdges(path *Path, out *[]*contour, ids *idSource) {
	b := edgeBuilder{out: out, ids: ids}
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			b.complete()
			b.movePt = e.Point
			b.pen = e.Point
		case LineTo:
			// skip degenerate points
			if b.pen != e.Point {
				b.contour().addLine([]Point{pt64(b.pen), pt64(e.Point)})
			}
			b.pen = e.Point
		case QuadTo:
			pts, verb := reduceQuad([]Point{pt64(b.pen), pt64(e.Control), pt64(e.Point)})
			switch verb {
			case verbLine:
				b.contour().addLine(pts)
			case verbQuad:
				b.contour().addQuad(pts)
			}
			b.pen = e.Point
		case CubicTo:
			pts, verb := reduceCubic([]Point{
				pt64(b.pen), pt64(e.Control1), pt64(e.Control2), pt64(e.Point),
			})
			switch verb {
			case verbLine:
				b.contour().addLine(pts)
			case verbQuad:
				b.contour().addQuad(pts)
			case verbCubic:
				b.contour().addCubic(pts)
			}
			b.pen = e.Point
		case Close:
			if b.current != nil && b.pen != b.movePt {
				b.current.addLine([]Point{pt64(b.pen), pt64(b.movePt)})
			}
			b.complete()
			b.pen = b.movePt
		}
	}
	b.complete()
}

// contour returns the in-progress contour, opening one at the pen if a
// drawing verb arrives without a preceding move.
func (b *edgeBuilder) contour() *contour {
	if b.current == nil {
		b.ids.contourID++
		b.current = newContour(b.ids.contourID)
		b.movePt = b.pen
	}
	return b.current
}

// complete finalizes the in-progress contour, discarding it when empty.
func (b *edgeBuilder) complete() {
	if b.current == nil {
		return
	}
	if len(b.current.segments) > 0 {
		b.current.complete(b.ids)
		*b.out = append(*b.out, b.current)
	}
	b.current = nil
}
