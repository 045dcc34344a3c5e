package state

import "math"

// Shapes is everything derived from three points. It is recomputed from
// the points on every change and never stored on its own.
type Shapes struct {
	// Vertices holds A, B, C and the derived fourth vertex D, in drawing order.
	Vertices [4]Point

	Base              float64
	Height            float64
	ParallelogramArea float64

	Center     Point
	Radius     float64
	CircleArea float64
}

// Fourth returns the derived fourth vertex.
func (s Shapes) Fourth() Point { return s.Vertices[3] }

// FourthVertex completes the parallelogram A, B, C, D with B opposite D.
func FourthVertex(a, b, c Point) Point {
	return a.Sub(b).Add(c)
}

// heightToLine returns the distance from c to the line through a and b.
// A vertical line has no slope, so the horizontal offset is used instead.
func heightToLine(a, b, c Point) float64 {
	dx := b.X - a.X
	if dx == 0 {
		return math.Abs(c.X - a.X)
	}
	slope := (b.Y - a.Y) / dx
	if math.IsInf(slope, 0) {
		return math.Abs(c.X - a.X)
	}
	intercept := a.Y - slope*a.X
	// Hypot keeps the norm finite for any finite slope.
	return math.Abs(-slope*c.X+c.Y-intercept) / math.Hypot(slope, 1)
}

// finite maps NaN and ±Inf to 0 so nothing non-drawable reaches a renderer.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Derive computes the parallelogram spanned by a, b, c and the circle that
// shares its center and area. Collinear points give a zero area and a zero
// radius.
func Derive(a, b, c Point) Shapes {
	d := FourthVertex(a, b, c)

	base := finite(a.Distance(b))
	height := finite(heightToLine(a, b, c))
	area := finite(base * height)

	radius := finite(math.Sqrt(area / math.Pi))

	return Shapes{
		Vertices:          [4]Point{a, b, c, d},
		Base:              base,
		Height:            height,
		ParallelogramArea: area,
		Center:            Pt((a.X+c.X)/2, (b.Y+d.Y)/2),
		Radius:            radius,
		CircleArea:        math.Pi * radius * radius,
	}
}

// DeriveSet derives shapes from s when it holds exactly MaxPoints points.
func DeriveSet(s *PointSet) (Shapes, bool) {
	if s.Len() != MaxPoints {
		return Shapes{}, false
	}
	return Derive(s.points[0], s.points[1], s.points[2]), true
}
