package state

// PointSet is the ordered set of user-placed points, at most MaxPoints
// long. Insertion order decides which pairs form the parallelogram sides.
type PointSet struct {
	points []Point
	radius float64
	mode   HitTest
}

// NewPointSet creates an empty set. A non-positive radius falls back to
// CircleRadius.
func NewPointSet(radius float64, mode HitTest) *PointSet {
	if radius <= 0 {
		radius = CircleRadius
	}
	return &PointSet{
		points: make([]Point, 0, MaxPoints),
		radius: radius,
		mode:   mode,
	}
}

// Len returns the number of stored points.
func (s *PointSet) Len() int { return len(s.points) }

// Full reports whether no more points can be added.
func (s *PointSet) Full() bool { return len(s.points) >= MaxPoints }

// Radius returns the hit-test radius.
func (s *PointSet) Radius() float64 { return s.radius }

// At returns the point at index i.
func (s *PointSet) At(i int) (Point, bool) {
	if i < 0 || i >= len(s.points) {
		return Point{}, false
	}
	return s.points[i], true
}

// Points returns a copy of the stored points in insertion order.
func (s *PointSet) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Add appends p. It is rejected when the set is full or when p hits an
// existing point; a hit means the caller should select that point instead.
func (s *PointSet) Add(p Point) bool {
	if s.Full() {
		return false
	}
	if _, ok := s.NearestIndex(p); ok {
		return false
	}
	s.points = append(s.points, p)
	return true
}

// Replace overwrites the point at index i. Out-of-range indexes are a no-op.
func (s *PointSet) Replace(i int, p Point) bool {
	if i < 0 || i >= len(s.points) {
		return false
	}
	s.points[i] = p
	return true
}

// NearestIndex returns the index of the first point whose hit region
// contains p.
func (s *PointSet) NearestIndex(p Point) (int, bool) {
	for i, q := range s.points {
		if s.mode.near(q, p, s.radius) {
			return i, true
		}
	}
	return -1, false
}

// Clear removes every point.
func (s *PointSet) Clear() {
	s.points = s.points[:0]
}

// Load replaces the whole set with pts, keeping at most MaxPoints. It is
// used by viewers mirroring a host and skips the proximity check.
func (s *PointSet) Load(pts []Point) {
	s.points = s.points[:0]
	for _, p := range pts {
		if len(s.points) == MaxPoints {
			break
		}
		s.points = append(s.points, p)
	}
}
