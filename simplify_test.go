package simplify

import (
	"math"
	"math/rand"
	"testing"
)

// checkWellFormed verifies the output grammar: every contour is a MoveTo,
// one or more drawing verbs, then Close.
func checkWellFormed(t *testing.T, p *Path) {
	t.Helper()
	const (
		outside = iota
		drawing
	)
	state := outside
	drawn := false
	for i, elem := range p.Elements() {
		switch elem.(type) {
		case MoveTo:
			if state != outside {
				t.Fatalf("element %d: MoveTo inside open contour", i)
			}
			state = drawing
			drawn = false
		case LineTo, QuadTo, CubicTo:
			if state != drawing {
				t.Fatalf("element %d: drawing verb outside contour", i)
			}
			drawn = true
		case Close:
			if state != drawing || !drawn {
				t.Fatalf("element %d: Close without drawn contour", i)
			}
			state = outside
		}
	}
	if state != outside {
		t.Fatal("path ends with an unclosed contour")
	}
}

func countContours(p *Path) int {
	n := 0
	for _, elem := range p.Elements() {
		if _, ok := elem.(MoveTo); ok {
			n++
		}
	}
	return n
}

// vertexPoints returns the on-curve endpoints of the path.
func vertexPoints(p *Path) []Point {
	var pts []Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, pt64(e.Point))
		case LineTo:
			pts = append(pts, pt64(e.Point))
		case QuadTo:
			pts = append(pts, pt64(e.Point))
		case CubicTo:
			pts = append(pts, pt64(e.Point))
		}
	}
	return pts
}

// checkVertexSet verifies that the distinct output vertices are exactly the
// expected set, regardless of order or starting point.
func checkVertexSet(t *testing.T, p *Path, want []Point) {
	t.Helper()
	const tol = 1e-4
	got := vertexPoints(p)
	for _, w := range want {
		found := false
		for _, g := range got {
			if approxPt(g, w, tol) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected vertex %v missing (got %v)", w, got)
		}
	}
	for _, g := range got {
		found := false
		for _, w := range want {
			if approxPt(g, w, tol) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("unexpected vertex %v (want set %v)", g, want)
		}
	}
}

// checkRegion compares membership of the simplified path (under its
// even-odd fill) against a reference predicate at the given probes.
func checkRegion(t *testing.T, out *Path, reference func(Point) bool, probes []Point) {
	t.Helper()
	for _, pt := range probes {
		want := reference(pt)
		got := out.Contains(pt)
		if got != want {
			t.Errorf("containment at %v = %v, want %v", pt, got, want)
		}
	}
}

// gridProbes samples half-offset points covering the box, avoiding the
// integer coordinates geometry lives on.
func gridProbes(b Bounds) []Point {
	var probes []Point
	for y := math.Floor(b.Top) - 0.5; y <= b.Bottom+0.5; y++ {
		for x := math.Floor(b.Left) - 0.5; x <= b.Right+0.5; x++ {
			probes = append(probes, Pt(x, y))
		}
	}
	return probes
}

// checkNoInteriorCrossings verifies that no two non-adjacent line edges of
// the output intersect away from their endpoints. Only meaningful for
// all-line outputs.
func checkNoInteriorCrossings(t *testing.T, p *Path) {
	t.Helper()
	type edge struct{ a, b Point }
	var edges []edge
	var cur, start Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			start = pt64(e.Point)
			cur = start
		case LineTo:
			q := pt64(e.Point)
			edges = append(edges, edge{cur, q})
			cur = q
		case QuadTo, CubicTo:
			return // interior test only covers line outputs
		case Close:
			if cur != start {
				edges = append(edges, edge{cur, start})
			}
			cur = start
		}
	}
	const eps = 1e-6
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			var ts intersections
			n := lineLineIntersect(edges[i].a, edges[i].b, edges[j].a, edges[j].b, &ts)
			if n == 2 {
				if math.Abs(ts.t[0][0]-ts.t[0][1]) > eps {
					t.Errorf("edges %d and %d share a coincident run", i, j)
				}
				continue
			}
			for k := 0; k < n; k++ {
				t0, t1 := ts.t[0][k], ts.t[1][k]
				if t0 > eps && t0 < 1-eps && t1 > eps && t1 < 1-eps {
					t.Errorf("edges %d and %d cross in their interiors (t=%v/%v)",
						i, j, t0, t1)
				}
			}
		}
	}
}

func simplified(src *Path) *Path {
	dst := NewPath()
	Simplify(src, dst)
	return dst
}

func TestSimplifySquare(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillEvenOdd)
	src.MoveTo(0, 0)
	src.LineTo(10, 0)
	src.LineTo(10, 10)
	src.LineTo(0, 10)
	src.Close()
	dst := simplified(src)

	if dst.FillType() != FillEvenOdd {
		t.Errorf("fill = %v, want FillEvenOdd", dst.FillType())
	}
	checkWellFormed(t, dst)
	if got := countContours(dst); got != 1 {
		t.Fatalf("contours = %d, want 1", got)
	}
	checkVertexSet(t, dst, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)})
	checkNoInteriorCrossings(t, dst)
	checkRegion(t, dst, src.Contains, gridProbes(src.BoundingBox()))
}

func TestSimplifyCoincidentSquaresSameDirection(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillWinding)
	src.Rectangle(0, 0, 1, 1)
	src.Rectangle(0, 0, 1, 1)
	dst := simplified(src)

	checkWellFormed(t, dst)
	if got := countContours(dst); got != 1 {
		t.Fatalf("contours = %d, want 1", got)
	}
	checkVertexSet(t, dst, []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)})
	if !dst.Contains(Pt(0.5, 0.5)) {
		t.Error("center of doubled square should be inside")
	}
	if dst.Contains(Pt(1.5, 0.5)) {
		t.Error("point beside doubled square should be outside")
	}
}

func TestSimplifyCoincidentSquaresOppositeDirections(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillWinding)
	src.Rectangle(0, 0, 1, 1)
	src.MoveTo(0, 0)
	src.LineTo(0, 1)
	src.LineTo(1, 1)
	src.LineTo(1, 0)
	src.Close()
	dst := simplified(src)

	checkWellFormed(t, dst)
	if !dst.IsEmpty() {
		t.Fatalf("opposing squares should cancel; got %d elements",
			len(dst.Elements()))
	}
}

func TestSimplifyFigureEight(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillEvenOdd)
	src.MoveTo(0, 0)
	src.LineTo(10, 10)
	src.LineTo(10, 0)
	src.LineTo(0, 10)
	src.Close()
	dst := simplified(src)

	checkWellFormed(t, dst)
	if got := countContours(dst); got != 2 {
		t.Fatalf("contours = %d, want 2", got)
	}
	checkVertexSet(t, dst, []Point{
		Pt(0, 0), Pt(0, 10), Pt(5, 5), Pt(10, 0), Pt(10, 10),
	})
	probes := []Point{
		Pt(2, 5), Pt(8, 5), // inside the two lobes
		Pt(5, 2), Pt(5, 8), // between the lobes
		Pt(-1, 5), Pt(11, 5), // outside
	}
	checkRegion(t, dst, src.Contains, probes)
}

func TestSimplifyOverlappingRects(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillEvenOdd)
	src.Rectangle(0, 0, 10, 10)
	src.Rectangle(5, 5, 10, 10)
	dst := simplified(src)

	checkWellFormed(t, dst)
	if got := countContours(dst); got != 1 {
		t.Fatalf("contours = %d, want 1", got)
	}
	checkVertexSet(t, dst, []Point{
		Pt(0, 0), Pt(10, 0), Pt(10, 5), Pt(15, 5),
		Pt(15, 15), Pt(5, 15), Pt(5, 10), Pt(0, 10),
	})
	checkNoInteriorCrossings(t, dst)
	// the output outlines the union of the inputs
	union := func(pt Point) bool {
		inR1 := pt.X > 0 && pt.X < 10 && pt.Y > 0 && pt.Y < 10
		inR2 := pt.X > 5 && pt.X < 15 && pt.Y > 5 && pt.Y < 15
		return inR1 || inR2
	}
	checkRegion(t, dst, union, gridProbes(src.BoundingBox()))
}

func TestSimplifyDegenerateEdge(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillEvenOdd)
	src.MoveTo(0, 0)
	src.LineTo(0, 0)
	src.LineTo(10, 0)
	src.Close()
	dst := simplified(src)

	checkWellFormed(t, dst)
	// the two surviving edges retrace each other; the result spans no area
	for _, pt := range gridProbes(Bounds{Left: -1, Top: -1, Right: 11, Bottom: 2}) {
		if dst.Contains(pt) {
			t.Fatalf("zero-area input contains %v", pt)
		}
	}
}

func TestSimplifyQuadDome(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillEvenOdd)
	src.MoveTo(0, 0)
	src.QuadraticTo(5, 10, 10, 0)
	src.Close()
	dst := simplified(src)

	checkWellFormed(t, dst)
	if got := countContours(dst); got != 1 {
		t.Fatalf("contours = %d, want 1", got)
	}
	quads, cubics := 0, 0
	for _, elem := range dst.Elements() {
		switch elem.(type) {
		case QuadTo:
			quads++
		case CubicTo:
			cubics++
		}
	}
	if quads != 1 || cubics != 0 {
		t.Errorf("curve verbs = %d quads, %d cubics; want 1 quad", quads, cubics)
	}
	probes := []Point{Pt(5, 4), Pt(1, 1), Pt(9, 1), Pt(5, 5.5), Pt(1, 2.5), Pt(-1, 1)}
	checkRegion(t, dst, src.Contains, probes)
	b := dst.BoundingBox()
	if math.Abs(b.Bottom-5) > 1e-4 || math.Abs(b.Right-10) > 1e-4 {
		t.Errorf("bounds = %+v, want bottom 5, right 10", b)
	}
}

func TestSimplifyCubicDome(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillWinding)
	src.MoveTo(0, 0)
	src.CubicTo(3, 6, 7, 6, 10, 0)
	src.Close()
	dst := simplified(src)

	checkWellFormed(t, dst)
	if got := countContours(dst); got != 1 {
		t.Fatalf("contours = %d, want 1", got)
	}
	probes := []Point{Pt(5, 4), Pt(2, 1), Pt(8, 1), Pt(5, 5), Pt(2, 3.5), Pt(11, 1)}
	checkRegion(t, dst, src.Contains, probes)
}

func TestSimplifyDisjointSquares(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillEvenOdd)
	src.Rectangle(0, 0, 4, 4)
	src.Rectangle(10, 0, 4, 4)
	dst := simplified(src)

	checkWellFormed(t, dst)
	if got := countContours(dst); got != 2 {
		t.Fatalf("contours = %d, want 2", got)
	}
	checkRegion(t, dst, src.Contains, gridProbes(src.BoundingBox()))
}

func TestSimplifyNestedSquaresWinding(t *testing.T) {
	src := NewPath()
	src.SetFillType(FillWinding)
	src.Rectangle(0, 0, 10, 10)
	src.Rectangle(3, 3, 4, 4)
	dst := simplified(src)

	checkWellFormed(t, dst)
	// under non-zero winding the nested same-direction square is interior
	if got := countContours(dst); got != 1 {
		t.Fatalf("contours = %d, want 1", got)
	}
	checkVertexSet(t, dst, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)})
	checkRegion(t, dst, src.Contains, gridProbes(src.BoundingBox()))
}

func TestSimplifyEmptyPath(t *testing.T) {
	src := NewPath()
	dst := NewPath()
	dst.LineTo(1, 1) // must be cleared
	Simplify(src, dst)
	if !dst.IsEmpty() {
		t.Error("simplifying an empty path should clear the destination")
	}
	if dst.FillType() != FillEvenOdd {
		t.Errorf("fill = %v, want FillEvenOdd", dst.FillType())
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	builds := []struct {
		name  string
		build func() *Path
	}{
		{
			name: "figure eight",
			build: func() *Path {
				p := NewPath()
				p.SetFillType(FillEvenOdd)
				p.MoveTo(0, 0)
				p.LineTo(10, 10)
				p.LineTo(10, 0)
				p.LineTo(0, 10)
				p.Close()
				return p
			},
		},
		{
			name: "overlapping rects",
			build: func() *Path {
				p := NewPath()
				p.SetFillType(FillWinding)
				p.Rectangle(0, 0, 10, 10)
				p.Rectangle(5, 5, 10, 10)
				return p
			},
		},
	}
	for _, tt := range builds {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.build()
			once := simplified(src)
			twice := simplified(once)
			checkWellFormed(t, twice)
			probes := gridProbes(src.BoundingBox())
			checkRegion(t, twice, once.Contains, probes)
		})
	}
}

func TestSimplifyRectChain(t *testing.T) {
	// three rectangles overlapping in a chain; every junction lies on the
	// union outline
	src := NewPath()
	src.SetFillType(FillWinding)
	src.Rectangle(0, 0, 6, 6)
	src.Rectangle(4, 2, 6, 6)
	src.Rectangle(8, 4, 6, 5)
	dst := simplified(src)

	checkWellFormed(t, dst)
	checkNoInteriorCrossings(t, dst)
	checkRegion(t, dst, src.Contains, gridProbes(src.BoundingBox()))
}

// TestSimplifyRandomRects verifies ray parity equivalence between input
// and output over randomized axis-aligned pairs. Edge coordinates are
// drawn without replacement so every crossing is transversal and every
// junction lies on the union outline; coincident runs are covered by the
// deterministic tests above.
func TestSimplifyRandomRects(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	for run := 0; run < 25; run++ {
		src := NewPath()
		src.SetFillType(FillWinding)
		perm := rng.Perm(16)
		const rects = 2
		for i := 0; i < rects; i++ {
			xs := []int{perm[4*i], perm[4*i+1]}
			ys := []int{perm[4*i+2], perm[4*i+3]}
			if xs[0] > xs[1] {
				xs[0], xs[1] = xs[1], xs[0]
			}
			if ys[0] > ys[1] {
				ys[0], ys[1] = ys[1], ys[0]
			}
			src.Rectangle(float64(xs[0]), float64(ys[0]),
				float64(xs[1]-xs[0]), float64(ys[1]-ys[0]))
		}
		dst := simplified(src)
		checkWellFormed(t, dst)
		if t.Failed() {
			t.Fatalf("run %d: malformed output", run)
		}
		for _, pt := range gridProbes(src.BoundingBox()) {
			want := src.Contains(pt)
			got := dst.Contains(pt)
			if got != want {
				t.Fatalf("run %d: containment at %v = %v, want %v",
					run, pt, got, want)
			}
		}
	}
}
