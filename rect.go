package simplify

import "math"

// Bounds is an axis-aligned bounding box. Unlike a plain rectangle, a Bounds
// holding a horizontal or vertical line is not considered empty; the
// intersection pass must still test such segments against their neighbors.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// boundsIntersect reports whether two boxes touch or overlap.
func boundsIntersect(a, b Bounds) bool {
	return a.Left <= b.Right && b.Left <= a.Right &&
		a.Top <= b.Bottom && b.Top <= a.Bottom
}

// emptyBounds returns a box that any add() will replace.
func emptyBounds() Bounds {
	return Bounds{
		Left:   math.MaxFloat64,
		Top:    math.MaxFloat64,
		Right:  -math.MaxFloat64,
		Bottom: -math.MaxFloat64,
	}
}

// add grows the box to include another box.
func (b *Bounds) add(o Bounds) {
	if o.Left < b.Left {
		b.Left = o.Left
	}
	if o.Top < b.Top {
		b.Top = o.Top
	}
	if o.Right > b.Right {
		b.Right = o.Right
	}
	if o.Bottom > b.Bottom {
		b.Bottom = o.Bottom
	}
}

// addPoint grows the box to include a point.
func (b *Bounds) addPoint(p Point) {
	b.add(Bounds{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y})
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Contains reports whether the point lies inside or on the box.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// IsEmpty reports whether the box holds no geometry at all. A degenerate
// box describing a single point or an axis-aligned line is not empty.
func (b Bounds) IsEmpty() bool {
	return b.Left > b.Right || b.Top > b.Bottom ||
		math.IsNaN(b.Left) || math.IsNaN(b.Top) ||
		math.IsNaN(b.Right) || math.IsNaN(b.Bottom)
}
