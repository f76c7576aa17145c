package geom

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
)

// Triangle is a Polygon specialization with exactly three vertices. It
// provides O(1) area and a fast CCW-based containment test.
type Triangle struct {
	A, B, C Point
}

// NewTriangle returns the triangle a-b-c.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Points returns the triangle's three vertices in construction order.
func (t Triangle) Points() []Point {
	return []Point{t.A, t.B, t.C}
}

// Hash returns an order-independent fingerprint of t's vertex set,
// matching Polygon.Hash's sorted-by-x convention so a Triangle and an
// equal-vertex Polygon collide on the same identity.
func (t Triangle) Hash() uint64 {
	return hashPoints(t.Points())
}

// Area returns the (unsigned) area of the triangle.
func (t Triangle) Area() float64 {
	a, b, c := t.A, t.B, t.C
	sum := (b.X*a.Y - a.X*b.Y) + (c.X*b.Y - b.X*c.Y) + (a.X*c.Y - c.X*a.Y)
	return math.Abs(sum) / 2.0
}

// ContainsPoint reports whether p lies within t, boundary inclusive,
// using the CCW predicate: p is outside exactly when it lies strictly
// left of one edge and strictly right of another.
func (t Triangle) ContainsPoint(p Point) bool {
	pts := t.Points()
	left, right := false, false
	for i := 0; i < 3; i++ {
		a, b := pts[i], pts[(i+1)%3]
		left = left || CCW(a, b, p)
		right = right || CCW(b, a, p)
	}
	return !(left && right)
}

// InteriorPoint returns a uniformly-distributed random point inside t,
// via the barycentric rejection-free sampling used by the original
// test-data generator. Exercised only by property-based tests.
func (t Triangle) InteriorPoint(rng *rand.Rand) Point {
	r1 := rng.Float64()
	r2 := rng.Float64()
	sq1 := math.Sqrt(r1)
	wa := 1 - sq1
	wb := sq1 * (1 - r2)
	wc := r2 * sq1
	return Point{
		X: wa*t.A.X + wb*t.B.X + wc*t.C.X,
		Y: wa*t.A.Y + wb*t.B.Y + wc*t.C.Y,
	}
}

// convexContainsPoint is the horizontal-ray-crossing test used by
// Polygon's convex fast path.
func convexContainsPoint(points []Point, p Point) bool {
	inside := false
	n := len(points)
	p1 := points[0]
	for i := 0; i <= n; i++ {
		p2 := points[i%n]
		if p.Y > math.Min(p1.Y, p2.Y) && p.Y <= math.Max(p1.Y, p2.Y) && p.X <= math.Max(p1.X, p2.X) {
			xIntersect := math.Inf(-1)
			if p1.Y != p2.Y {
				xIntersect = (p.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
			}
			if p1.X == p2.X || p.X <= xIntersect {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// hashPoints hashes a point set order-independently by sorting on X
// first (ties on Y) before combining.
func hashPoints(points []Point) uint64 {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	h := fnv.New64a()
	var buf [16]byte
	for _, p := range sorted {
		putF64(buf[0:8], p.X)
		putF64(buf[8:16], p.Y)
		h.Write(buf[:])
	}
	return h.Sum64()
}
