package simplify

import "testing"

func newLineSegment(p0, p1 Point) *segment {
	s := &segment{}
	s.initCurve([]Point{p0, p1}, verbLine)
	return s
}

func TestAddTKeepsSorted(t *testing.T) {
	s := newLineSegment(Pt(0, 0), Pt(10, 0))
	other := newLineSegment(Pt(0, 0), Pt(0, 10))
	for _, v := range []float64{1, 0, 0.5, 0.25, 0.75} {
		s.addT(v, other)
	}
	for i := 1; i < len(s.ts); i++ {
		if s.ts[i-1].t > s.ts[i].t {
			t.Fatalf("ts not sorted: %v before %v", s.ts[i-1].t, s.ts[i].t)
		}
	}
	if len(s.ts) != 5 {
		t.Fatalf("span count = %d, want 5", len(s.ts))
	}
	// the span at t=1 is born done; the rest are live
	if !s.ts[4].done || s.doneSpans != 1 {
		t.Errorf("t=1 span done=%v doneSpans=%d, want true/1", s.ts[4].done, s.doneSpans)
	}
	for i := 0; i < 4; i++ {
		if s.ts[i].done {
			t.Errorf("span %d unexpectedly done", i)
		}
		if s.ts[i].windValue != 1 || s.ts[i].windSum != windSentinel {
			t.Errorf("span %d windValue=%d windSum=%d, want 1/sentinel",
				i, s.ts[i].windValue, s.ts[i].windSum)
		}
	}
}

func TestAddTPairAndFixOtherTIndex(t *testing.T) {
	a := newLineSegment(Pt(0, 0), Pt(10, 10))
	b := newLineSegment(Pt(10, 0), Pt(0, 10))
	a.addTPair(0.5, b, 0.5)
	a.addTPair(0, b, 1)
	a.addTPair(1, b, 0)
	a.fixOtherTIndex()
	b.fixOtherTIndex()
	for i := range a.ts {
		sp := &a.ts[i]
		mate := &sp.other.ts[sp.otherIndex]
		if mate.other != a || mate.t != sp.otherT || mate.otherT != sp.t {
			t.Errorf("span %d not mirrored: t=%v otherT=%v mate.t=%v mate.otherT=%v",
				i, sp.t, sp.otherT, mate.t, mate.otherT)
		}
	}
}

func TestNextSpanSkipsClusters(t *testing.T) {
	s := newLineSegment(Pt(0, 0), Pt(10, 0))
	other := newLineSegment(Pt(0, 0), Pt(0, 10))
	s.addT(0, other)
	s.addT(0.5, other)
	s.addT(0.5+tEpsilon/4, other) // same cluster as 0.5
	s.addT(1, other)
	if got := s.nextSpan(1, 1); got != 3 {
		t.Errorf("nextSpan(1,+1) = %d, want 3 (skip cluster mate)", got)
	}
	if got := s.nextSpan(2, -1); got != 0 {
		t.Errorf("nextSpan(2,-1) = %d, want 0", got)
	}
	if got := s.nextSpan(3, 1); got != -1 {
		t.Errorf("nextSpan(3,+1) = %d, want -1", got)
	}
}

func TestMarkDoneCluster(t *testing.T) {
	s := newLineSegment(Pt(0, 0), Pt(10, 0))
	other := newLineSegment(Pt(0, 0), Pt(0, 10))
	s.addT(0, other)
	s.addT(0.5, other)
	s.addT(0.5+tEpsilon/4, other)
	s.addT(1, other)
	s.markDone(1, 7)
	if !s.ts[1].done || !s.ts[2].done {
		t.Fatal("cluster at 0.5 not fully marked done")
	}
	if s.ts[1].windSum != 7 || s.ts[2].windSum != 7 {
		t.Fatal("cluster windSum not recorded")
	}
	if s.ts[0].done {
		t.Fatal("span outside cluster marked done")
	}
	// t=0 remains; t=1 was done at creation; 0.5 cluster newly done
	if s.done() {
		t.Fatal("segment done too early")
	}
	s.markDone(0, 7)
	if !s.done() {
		t.Fatal("segment should be done")
	}
}

func TestSpanSign(t *testing.T) {
	s := newLineSegment(Pt(0, 0), Pt(10, 0))
	other := newLineSegment(Pt(0, 0), Pt(0, 10))
	s.addT(0, other)
	s.addT(1, other)
	if got := s.spanSign(0, 1); got != -1 {
		t.Errorf("forward spanSign = %d, want -1", got)
	}
	if got := s.spanSign(1, 0); got != 1 {
		t.Errorf("backward spanSign = %d, want 1", got)
	}
}

func TestIsSimple(t *testing.T) {
	s := newLineSegment(Pt(0, 0), Pt(10, 0))
	other := newLineSegment(Pt(0, 0), Pt(0, 10))
	s.addT(0, other)
	s.addT(1, other)
	if !s.isSimple(1) {
		t.Error("two-span segment should be simple at either end")
	}
	s.addT(0.5, other)
	if s.isSimple(1) { // index 1 is now the interior span
		t.Error("interior junction should not be simple")
	}
	if !s.isSimple(0) || !s.isSimple(2) {
		t.Error("pure endpoint junctions of a three-span segment are simple")
	}
}

func TestAddTCancelRetiresBothSides(t *testing.T) {
	// two identical edges traversed in opposite directions
	a := newLineSegment(Pt(0, 0), Pt(10, 0))
	b := newLineSegment(Pt(10, 0), Pt(0, 0))
	filler := newLineSegment(Pt(0, 0), Pt(0, 10))
	for _, s := range []*segment{a, b} {
		s.addT(0, filler)
		s.addT(1, filler)
	}
	a.addTCancel(0, 1, b, 0, 1)
	if a.ts[0].windValue != 0 || b.ts[0].windValue != 0 {
		t.Errorf("windValues = %d/%d, want 0/0",
			a.ts[0].windValue, b.ts[0].windValue)
	}
	if !a.done() || !b.done() {
		t.Error("canceled segments should be done")
	}
}

func TestAddTCoincidentStacksOneSide(t *testing.T) {
	// two identical edges traversed the same direction
	a := newLineSegment(Pt(0, 0), Pt(10, 0))
	b := newLineSegment(Pt(0, 0), Pt(10, 0))
	filler := newLineSegment(Pt(0, 0), Pt(0, 10))
	for _, s := range []*segment{a, b} {
		s.addT(0, filler)
		s.addT(1, filler)
	}
	a.addTCoincident(0, 1, b, 0, 1)
	if a.ts[0].windValue != 2 {
		t.Errorf("absorber windValue = %d, want 2", a.ts[0].windValue)
	}
	if b.ts[0].windValue != 0 || !b.done() {
		t.Errorf("retired side windValue = %d done=%v, want 0/true",
			b.ts[0].windValue, b.done())
	}
	if a.done() {
		t.Error("absorbing segment must stay live")
	}
}

func TestSegmentCancels(t *testing.T) {
	a := newLineSegment(Pt(0, 0), Pt(10, 0))
	b := newLineSegment(Pt(10, 0), Pt(0, 0))
	c := newLineSegment(Pt(0, 0), Pt(10, 0))
	if !a.cancels(b) {
		t.Error("opposing segments should cancel")
	}
	if a.cancels(c) {
		t.Error("same-direction segments should not cancel")
	}
}
