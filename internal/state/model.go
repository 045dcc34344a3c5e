package state

import (
	"fmt"
	"math"
)

// CircleRadius is the default hit-test radius around a placed point. It is
// also the radius the renderers use to draw point markers.
const CircleRadius = 11.0

// MaxPoints is the number of points that define the derived shapes.
const MaxPoints = 3

// Point is a position on the drawing surface. Points are values: a drag
// replaces the stored point, it never edits one in place.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// String formats the point the way the on-canvas labels show it.
func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// HitTest selects how a pointer position is matched against a placed point.
type HitTest uint8

const (
	// HitTestSum compares x+y sums. It is coarse: any position on the
	// anti-diagonal band through a point counts as a hit.
	HitTestSum HitTest = iota
	// HitTestEuclidean compares true distance against the radius.
	HitTestEuclidean
)

var hitTestNames = [...]string{
	HitTestSum:       "sum",
	HitTestEuclidean: "euclidean",
}

func (h HitTest) String() string {
	if int(h) < len(hitTestNames) {
		return hitTestNames[h]
	}
	return "unknown"
}

// ParseHitTest maps a config name to a HitTest.
func ParseHitTest(name string) (HitTest, error) {
	for i, n := range hitTestNames {
		if n == name {
			return HitTest(i), nil
		}
	}
	return HitTestSum, fmt.Errorf("unknown hit test %q", name)
}

// near reports whether q lies within radius of p under mode h.
func (h HitTest) near(q, p Point, radius float64) bool {
	if h == HitTestEuclidean {
		return q.Distance(p) <= radius
	}
	return math.Abs((q.X+q.Y)-(p.X+p.Y)) <= radius
}
