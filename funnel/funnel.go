// Package funnel implements the two-chain shortest-path algorithm (Lee-
// Preparata / Hershberger-Snoeyink) over a corridor of adjacent
// triangles, per spec §4.7. It is grounded on the funnel in the Python
// original (the complete variant, not the incomplete stub of the same
// name — see DESIGN.md) and on the portal-walking structure of
// arl-go-detour's detour.FindStraightPath, which solves the same
// problem over a navmesh corridor.
package funnel

import "github.com/ngeo/polymap/geom"

// Portal is a portal edge shared by two consecutive corridor triangles.
type Portal struct {
	A, B geom.Point
}

// ExtractPortals derives the portal sequence from a corridor of
// pairwise-adjacent triangles: consecutive triangles share exactly two
// vertices (the edge between them). Returns a *DegenerateCorridorError
// if any consecutive pair shares fewer or more than two vertices.
func ExtractPortals(corridor []geom.Triangle) ([]Portal, error) {
	if len(corridor) < 2 {
		return nil, nil
	}
	portals := make([]Portal, 0, len(corridor)-1)
	for i := 1; i < len(corridor); i++ {
		shared := sharedVertices(corridor[i-1], corridor[i])
		if len(shared) != 2 {
			return nil, &DegenerateCorridorError{Index: i}
		}
		portals = append(portals, Portal{A: shared[0], B: shared[1]})
	}
	return portals, nil
}

func sharedVertices(a, b geom.Triangle) []geom.Point {
	var shared []geom.Point
	for _, p := range a.Points() {
		for _, q := range b.Points() {
			if p.Equal(q) {
				shared = append(shared, p)
				break
			}
		}
	}
	return shared
}

// Path computes the shortest path from start to end through a corridor
// of pairwise-adjacent triangles, given start ∈ corridor[0] and
// end ∈ corridor[len-1].
func Path(corridor []geom.Triangle, start, end geom.Point) ([]geom.Point, error) {
	portals, err := ExtractPortals(corridor)
	if err != nil {
		return nil, err
	}
	if len(portals) == 0 {
		return []geom.Point{start, end}, nil
	}
	return build(portals, start, end)
}

// build runs the main funnel loop given an already-extracted portal
// sequence.
func build(portals []Portal, start, end geom.Point) ([]geom.Point, error) {
	pl, pr := portals[0].A, portals[0].B
	if !geom.CCW(pl, start, pr) {
		pl, pr = pr, pl
	}

	tail := []geom.Point{start}
	left := []geom.Point{pl}
	right := []geom.Point{pr}

	prevA, prevB := portals[0].A, portals[0].B

	for i := 1; i < len(portals); i++ {
		e := portals[i]
		bound, free, ok := boundFree(e, prevA, prevB)
		if !ok {
			return nil, &DegenerateCorridorError{Index: i}
		}

		switch {
		case bound.Equal(back(left)):
			tail, left, right = stepA(tail, left, right, bound, free)
		case bound.Equal(back(right)):
			tail, left, right = stepB(tail, left, right, bound, free)
		default:
			return nil, &DegenerateCorridorError{Index: i}
		}

		prevA, prevB = e.A, e.B
	}

	return finish(tail, left, right, end), nil
}

// boundFree identifies which endpoint of e is shared with the previous
// portal (bound) and which is new (free).
func boundFree(e Portal, prevA, prevB geom.Point) (bound, free geom.Point, ok bool) {
	switch {
	case e.A.Equal(prevA) || e.A.Equal(prevB):
		return e.A, e.B, true
	case e.B.Equal(prevA) || e.B.Equal(prevB):
		return e.B, e.A, true
	default:
		return geom.Point{}, geom.Point{}, false
	}
}

// stepA handles the case where bound is the left chain's current tip:
// the free point is a candidate for the right chain.
func stepA(tail, left, right []geom.Point, bound, free geom.Point) ([]geom.Point, []geom.Point, []geom.Point) {
	apex := back(tail)

	switch {
	case bound.Equal(apex):
		right = right[:0]
	case len(right) > 0 && front(right).Equal(apex):
		right = right[1:]
	case len(left) > 0 && !geom.CCW(front(left), apex, free):
		var popped geom.Point
		for len(left) > 0 && !geom.CCW(front(left), apex, free) {
			popped = front(left)
			left = left[1:]
			tail = append(tail, popped)
			apex = popped
		}
		if len(left) == 0 {
			left = []geom.Point{popped}
		}
		right = right[:0]
	case len(right) == 0 || !geom.CCW(apex, back(right), free):
		// widens: fall through to unconditional append below.
	default:
		for len(right) > 0 && geom.CCW(apex, back(right), free) {
			right = right[:len(right)-1]
		}
	}

	right = append(right, free)
	return tail, left, right
}

// stepB mirrors stepA with left/right swapped.
func stepB(tail, left, right []geom.Point, bound, free geom.Point) ([]geom.Point, []geom.Point, []geom.Point) {
	apex := back(tail)

	switch {
	case bound.Equal(apex):
		left = left[:0]
	case len(left) > 0 && front(left).Equal(apex):
		left = left[1:]
	case len(right) > 0 && !geom.CCW(free, apex, front(right)):
		var popped geom.Point
		for len(right) > 0 && !geom.CCW(free, apex, front(right)) {
			popped = front(right)
			right = right[1:]
			tail = append(tail, popped)
			apex = popped
		}
		if len(right) == 0 {
			right = []geom.Point{popped}
		}
		left = left[:0]
	case len(left) == 0 || geom.CCW(apex, back(left), free):
		// widens: fall through to unconditional append below.
	default:
		for len(left) > 0 && !geom.CCW(apex, back(left), free) {
			left = left[:len(left)-1]
		}
	}

	left = append(left, free)
	return tail, left, right
}

// finish drains the remaining chain vertices into tail and appends end,
// per the finalization rule of spec §4.7.
func finish(tail, left, right []geom.Point, end geom.Point) []geom.Point {
	drainRightFirst := len(right) > 0 && contains(tail, front(right))

	drainLeft := func() {
		for _, v := range left {
			if geom.CCW(back(tail), v, end) {
				tail = append(tail, v)
			}
		}
	}
	drainRight := func() {
		for _, v := range right {
			if geom.CCW(end, v, back(tail)) {
				tail = append(tail, v)
			}
		}
	}

	if drainRightFirst {
		drainRight()
		drainLeft()
	} else {
		drainLeft()
		drainRight()
	}

	return append(tail, end)
}

func front(pts []geom.Point) geom.Point { return pts[0] }
func back(pts []geom.Point) geom.Point  { return pts[len(pts)-1] }

func contains(pts []geom.Point, p geom.Point) bool {
	for _, q := range pts {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
