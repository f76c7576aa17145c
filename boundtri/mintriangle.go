package boundtri

import (
	"fmt"
	"math"

	"github.com/ngeo/polymap/geom"
	"github.com/ngeo/polymap/internal/xmath"
)

// EpsilonMidpoint is the tolerance used to validate that a candidate
// triangle's side midpoints actually touch the corresponding polygon
// side, per spec.
const EpsilonMidpoint = 0.01

// MinBoundingTriangle returns the minimum-area triangle enclosing a
// convex polygon, using the O'Rourke/Klee rotating-calipers algorithm:
// for each polygon edge taken as a candidate base, it finds the
// opposite-chain indices that make the flush triangle of minimum area.
//
// If poly is not convex, it is first replaced by its convex hull.
func MinBoundingTriangle(poly *geom.Polygon) (geom.Triangle, error) {
	if !poly.IsConvex() {
		hull, err := ConvexHull(poly.Points)
		if err != nil {
			return geom.Triangle{}, err
		}
		poly = hull
	}

	n := poly.N()
	points := poly.Points

	if n < 3 {
		return geom.Triangle{}, fmt.Errorf("boundtri: polygon must have at least three vertices")
	}
	if n == 3 {
		return geom.NewTriangle(points[0], points[1], points[2]), nil
	}

	side := func(idx int) geom.Line {
		return geom.NewLine(points[((idx-1)%n+n)%n], points[idx%n])
	}

	h := func(point geom.Point, s geom.Line) float64 {
		return s.Distance(point)
	}
	hAt := func(idx int, s geom.Line) float64 {
		return s.Distance(points[mod(idx, n)])
	}

	gamma := func(point geom.Point, on geom.Line, base geom.Line) (geom.Point, bool) {
		intersection, ok := on.Intersection(base)
		if !ok {
			return geom.Point{}, false
		}
		dist := 2 * h(point, base)
		if on.Vertical {
			ref := geom.NewPoint(intersection.X, intersection.Y+1)
			dDist := h(ref, base)
			if dDist == 0 {
				return geom.Point{}, false
			}
			guess := geom.NewPoint(intersection.X, intersection.Y+dist/dDist)
			if geom.CCW(base.P1, base.P2, guess) != geom.CCW(base.P1, base.P2, point) {
				guess = geom.NewPoint(intersection.X, intersection.Y-dist/dDist)
			}
			return guess, true
		}
		ref, ok := on.AtX(intersection.X + 1)
		if !ok {
			return geom.Point{}, false
		}
		dDist := h(ref, base)
		if dDist == 0 {
			return geom.Point{}, false
		}
		guessP, _ := on.AtX(intersection.X + dist/dDist)
		if geom.CCW(base.P1, base.P2, guessP) != geom.CCW(base.P1, base.P2, point) {
			guessP, _ = on.AtX(intersection.X - dist/dDist)
		}
		return guessP, true
	}

	validTriangle := func(a, b, c geom.Point, ia, ib, ic int) bool {
		midA := geom.NewLine(c, b).Midpoint()
		midB := geom.NewLine(a, c).Midpoint()
		midC := geom.NewLine(a, b).Midpoint()

		validate := func(midpoint geom.Point, index int) bool {
			s := side(index)
			if s.Vertical {
				if midpoint.X != s.P1.X {
					return false
				}
				maxY := math.Max(s.P1.Y, s.P2.Y) + EpsilonMidpoint
				minY := math.Min(s.P1.Y, s.P2.Y) - EpsilonMidpoint
				return midpoint.Y <= maxY && midpoint.Y >= minY
			}
			maxX := math.Max(s.P1.X, s.P2.X) + EpsilonMidpoint
			minX := math.Min(s.P1.X, s.P2.X) - EpsilonMidpoint
			if midpoint.X > maxX || midpoint.X < minX {
				return false
			}
			onSide, ok := s.AtX(midpoint.X)
			if !ok {
				return false
			}
			return onSide.CloseTo(midpoint, xmath.Epsilon*100+EpsilonMidpoint)
		}

		return validate(midA, ia) && validate(midB, ib) && validate(midC, ic)
	}

	triangleForIndex := func(c, a, b int) (*geom.Triangle, int, int) {
		a = mod(maxInt(a, c+1), n)
		b = mod(maxInt(b, c+2), n)
		sideC := side(c)

		high := func(bIdx int, gammaB geom.Point) bool {
			if geom.CCW(gammaB, points[bIdx], points[mod(bIdx-1, n)]) ==
				geom.CCW(gammaB, points[bIdx], points[mod(bIdx+1, n)]) {
				return false
			}
			if geom.CCW(points[mod(bIdx-1, n)], points[mod(bIdx+1, n)], gammaB) ==
				geom.CCW(points[mod(bIdx-1, n)], points[mod(bIdx+1, n)], points[bIdx]) {
				return h(gammaB, sideC) > hAt(bIdx, sideC)
			}
			return false
		}

		low := func(bIdx int, gammaB geom.Point) bool {
			if geom.CCW(gammaB, points[bIdx], points[mod(bIdx-1, n)]) ==
				geom.CCW(gammaB, points[bIdx], points[mod(bIdx+1, n)]) {
				return false
			}
			if geom.CCW(points[mod(bIdx-1, n)], points[mod(bIdx+1, n)], gammaB) ==
				geom.CCW(points[mod(bIdx-1, n)], points[mod(bIdx+1, n)], points[bIdx]) {
				return false
			}
			return h(gammaB, sideC) > hAt(bIdx, sideC)
		}

		onLeftChain := func(bIdx int) bool {
			return hAt(mod(bIdx+1, n), sideC) >= hAt(bIdx, sideC)
		}

		incrementLowHigh := func(a, b int) (int, int) {
			gammaA, ok := gamma(points[a], side(a), sideC)
			if ok && high(b, gammaA) {
				return a, mod(b+1, n)
			}
			return mod(a+1, n), b
		}

		tangency := func(a, b int) bool {
			gammaB, ok := gamma(points[b], side(a), sideC)
			if !ok {
				return false
			}
			return hAt(b, sideC) >= hAt(mod(a-1, n), sideC) && high(b, gammaB)
		}

		for onLeftChain(b) {
			b = mod(b+1, n)
		}

		for hAt(b, sideC) > hAt(a, sideC) {
			a, b = incrementLowHigh(a, b)
		}

		for tangency(a, b) {
			b = mod(b+1, n)
		}

		gammaB, ok := gamma(points[b], side(a), sideC)
		if !ok {
			return nil, a, b
		}

		var sideA, sideB geom.Line
		if low(b, gammaB) || hAt(b, sideC) < hAt(mod(a-1, n), sideC) {
			sb := side(b)
			sa := side(a)
			mid, ok := sideC.Intersection(sb)
			if !ok {
				return nil, a, b
			}
			other, ok := sa.Intersection(sb)
			if !ok {
				return nil, a, b
			}
			sideB = geom.NewLine(mid, other)

			if h(sideB.Midpoint(), sideC) < hAt(mod(a-1, n), sideC) {
				gammaA, ok := gamma(points[mod(a-1, n)], sideB, sideC)
				if !ok {
					return nil, a, b
				}
				sideA = geom.NewLine(gammaA, points[mod(a-1, n)])
			} else {
				sideA = sa
			}
		} else {
			gammaB2, ok := gamma(points[b], side(a), sideC)
			if !ok {
				return nil, a, b
			}
			sideB = geom.NewLine(gammaB2, points[b])
			sideA = geom.NewLine(gammaB2, points[mod(a-1, n)])
		}

		vertexA, ok := sideC.Intersection(sideB)
		if !ok {
			return nil, a, b
		}
		vertexB, ok := sideC.Intersection(sideA)
		if !ok {
			return nil, a, b
		}
		vertexC, ok := sideA.Intersection(sideB)
		if !ok {
			return nil, a, b
		}

		if !validTriangle(vertexA, vertexB, vertexC, a, b, c) {
			return nil, a, b
		}
		tri := geom.NewTriangle(vertexA, vertexB, vertexC)
		return &tri, a, b
	}

	var candidates []geom.Triangle
	a, b := 1, 2
	for i := 0; i < n; i++ {
		var tri *geom.Triangle
		tri, a, b = triangleForIndex(i, a, b)
		if tri != nil {
			candidates = append(candidates, *tri)
		}
	}

	if len(candidates) == 0 {
		return geom.Triangle{}, fmt.Errorf("boundtri: no valid minimum bounding triangle found")
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Area() < best.Area() {
			best = c
		}
	}
	return best, nil
}

func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
