// Package boundtri computes the minimum-area triangle enclosing a convex
// polygon (O'Rourke/Klee rotating calipers) and expands it outward into
// a strict bounding triangle for Kirkpatrick preprocessing.
package boundtri

import (
	"sort"

	"github.com/ngeo/polymap/geom"
)

// ConvexHull returns the minimum-area polygon enclosing points, using
// Andrew's monotone-chain construction.
//
// The retrieval pack's only convex-hull library, quickhull-go, computes
// 3-D hulls over point clouds; run on z=0-padded 2-D points it returns a
// pair of coincident triangulated faces rather than an ordered 2-D
// boundary; recovering the polygon from that would need an unverified
// reduction this module cannot test without running the toolchain. We
// instead follow the monotone-chain hull used elsewhere in the pack
// (see DESIGN.md) directly over geom.Point.
func ConvexHull(points []geom.Point) (*geom.Polygon, error) {
	pts := uniqueSorted(points)
	if len(pts) < 3 {
		return geom.NewPolygon(pts)
	}

	lower := chain(pts)
	upper := chain(reversed(pts))

	hull := make([]geom.Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)

	return geom.NewPolygon(hull)
}

func chain(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		for len(out) >= 2 && !geom.CCW(out[len(out)-2], out[len(out)-1], p) {
			out = out[:len(out)-1]
		}
		out = append(out, p)
	}
	return out
}

func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func uniqueSorted(points []geom.Point) []geom.Point {
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	out := pts[:0]
	var last geom.Point
	hasLast := false
	for _, p := range pts {
		if !hasLast || !p.Equal(last) {
			out = append(out, p)
			last = p
			hasLast = true
		}
	}
	return out
}
