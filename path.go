package simplify

import "golang.org/x/image/math/f32"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new sub-path at a point.
type MoveTo struct {
	Point f32.Vec2
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point f32.Vec2
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control f32.Vec2
	Point   f32.Vec2
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 f32.Vec2
	Control2 f32.Vec2
	Point    f32.Vec2
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// pt32 narrows builder coordinates to the path's boundary precision.
func pt32(x, y float64) f32.Vec2 {
	return f32.Vec2{float32(x), float32(y)}
}

// pt64 promotes a stored path point for geometry.
func pt64(v f32.Vec2) Point {
	return Point{X: float64(v[0]), Y: float64(v[1])}
}

// Path represents a vector path: a sequence of drawing elements plus the
// fill rule deciding which side of the outline is the interior.
//
// Coordinates are stored in single precision. All geometric computation on
// a Path promotes them to double precision first.
type Path struct {
	elements []PathElement
	fill     FillType
	start    f32.Vec2 // starting point of current subpath
	current  f32.Vec2 // current point
}

// NewPath creates a new empty path with the even-odd fill type.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// SetFillType sets the path's fill rule.
func (p *Path) SetFillType(f FillType) {
	p.fill = f
}

// FillType returns the path's fill rule.
func (p *Path) FillType() FillType {
	return p.fill
}

// MoveTo starts a new subpath at a point.
func (p *Path) MoveTo(x, y float64) {
	pt := pt32(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := pt32(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{
		Control: pt32(cx, cy),
		Point:   pt32(x, y),
	})
	p.current = pt32(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: pt32(c1x, c1y),
		Control2: pt32(c2x, c2y),
		Point:    pt32(x, y),
	})
	p.current = pt32(x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path and resets the fill type.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.fill = FillEvenOdd
	p.start = f32.Vec2{}
	p.current = f32.Vec2{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path draws nothing.
func (p *Path) IsEmpty() bool {
	for _, elem := range p.elements {
		switch elem.(type) {
		case LineTo, QuadTo, CubicTo:
			return false
		}
	}
	return true
}

// CurrentPoint returns the current pen position.
func (p *Path) CurrentPoint() Point {
	return pt64(p.current)
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.fill = p.fill
	result.start = p.start
	result.current = p.current
	return result
}
