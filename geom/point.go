// Package geom provides the planar geometric primitives shared by every
// other package in this module: points, lines, triangles and polygons,
// the CCW turn predicate, and segment intersection.
package geom

import (
	"hash/fnv"
	"math"
)

// Point is an immutable pair of finite coordinates. Equality is bitwise
// on X and Y, matching the original design: two points at the same
// float64 bit pattern are the same point, no tolerance applied.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and q have bitwise-identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Hash returns a deterministic fingerprint of p, derived from its
// coordinate bits.
func (p Point) Hash() uint64 {
	h := fnv.New64a()
	var buf [16]byte
	putF64(buf[0:8], p.X)
	putF64(buf[8:16], p.Y)
	h.Write(buf[:])
	return h.Sum64()
}

func putF64(b []byte, f float64) {
	bits := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		b[i] = byte(bits >> (8 * uint(i)))
	}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns c*p.
func (p Point) Scale(c float64) Point {
	return Point{c * p.X, c * p.Y}
}

// SqrDist returns the squared Euclidean distance between p and q.
func (p Point) SqrDist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.SqrDist(q))
}

// CloseTo reports whether p lies within epsilon of q.
func (p Point) CloseTo(q Point, epsilon float64) bool {
	return p.Dist(q) < epsilon
}

// CCW tests whether the turn a->b->c is strictly counter-clockwise.
// Collinear triples return false; this asymmetry is load-bearing in the
// funnel algorithm and must be preserved (see funnel package).
func CCW(a, b, c Point) bool {
	return (b.X-a.X)*(c.Y-a.Y) > (b.Y-a.Y)*(c.X-a.X)
}

// Intersect reports whether segments a1b1 and a2b2 properly cross.
// Endpoint-touching cases inherit CCW's collinearity bias and are
// treated as non-intersecting.
func Intersect(a1, b1, a2, b2 Point) bool {
	return CCW(a1, b1, a2) != CCW(a1, b1, b2) &&
		CCW(a2, b2, a1) != CCW(a2, b2, b1)
}
