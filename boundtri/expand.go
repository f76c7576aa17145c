package boundtri

import (
	"math"

	"github.com/ngeo/polymap/geom"
)

// DefaultOuterFactor is the default outward-push factor used by
// LargerBoundingTriangle when the caller does not override it.
const DefaultOuterFactor = 10

// LargerBoundingTriangle pushes each vertex of a triangle outward along
// the bisector of its interior angle by factor units, so that the
// result strictly contains tri with headroom for the points
// Kirkpatrick preprocessing will later insert on its boundary.
func LargerBoundingTriangle(tri geom.Triangle, factor int) geom.Triangle {
	if factor <= 0 {
		factor = DefaultOuterFactor
	}

	pts := tri.Points()
	out := make([]geom.Point, 3)
	for i := range pts {
		prev := pts[(i+2)%3]
		curr := pts[i]
		next := pts[(i+1)%3]
		out[i] = pushVertex(prev, curr, next, factor)
	}
	return geom.NewTriangle(out[0], out[1], out[2])
}

// pushVertex moves curr outward from the triangle prev-curr-next along
// the bisector of the angle at curr, by factor units, with the result
// rounded away from zero.
func pushVertex(prev, curr, next geom.Point, factor int) geom.Point {
	toPrev := normalize(prev.Sub(curr))
	toNext := normalize(next.Sub(curr))

	// toPrev+toNext points into the triangle; reversed, it points outward.
	bisector := toPrev.Add(toNext).Scale(-1)
	if bisector.X == 0 && bisector.Y == 0 {
		bisector = perpendicular(toNext)
	}
	bisector = normalize(bisector)

	sameSideAsCurr := geom.CCW(prev, next, curr)
	if geom.CCW(prev, next, curr.Add(bisector)) != sameSideAsCurr {
		bisector = bisector.Scale(-1)
	}

	pushed := curr.Add(bisector.Scale(float64(factor)))
	return geom.NewPoint(roundAwayFromZero(pushed.X), roundAwayFromZero(pushed.Y))
}

// roundAwayFromZero rounds n toward the nearer integer away from zero:
// floor when negative, ceil when non-negative.
func roundAwayFromZero(n float64) float64 {
	if n < 0 {
		return math.Floor(n)
	}
	return math.Ceil(n)
}

func normalize(v geom.Point) geom.Point {
	length := math.Hypot(v.X, v.Y)
	if length == 0 {
		return v
	}
	return geom.NewPoint(v.X/length, v.Y/length)
}

func perpendicular(v geom.Point) geom.Point {
	return geom.NewPoint(-v.Y, v.X)
}
