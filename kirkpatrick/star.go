package kirkpatrick

import (
	"fmt"

	"github.com/ngeo/polymap/geom"
)

// starPolygon reconstructs the closed boundary around a removed vertex
// p from the non-p edges of the triangles incident to it, per spec
// §4.5 step 6c ("walk their non-p edges to reconstruct the star
// polygon around p"). Each affected triangle contributes exactly one
// such edge; stitching them end-to-end by shared endpoint yields the
// star's vertex cycle, open (the closing edge back to the first vertex
// is implicit, matching geom.Polygon's convention).
func starPolygon(affected []geom.Triangle, p geom.Point) ([]geom.Point, error) {
	type edge struct{ a, b geom.Point }
	edges := make([]edge, 0, len(affected))
	for _, t := range affected {
		var nonP []geom.Point
		for _, q := range t.Points() {
			if !q.Equal(p) {
				nonP = append(nonP, q)
			}
		}
		if len(nonP) != 2 {
			return nil, fmt.Errorf("kirkpatrick: triangle does not contain removed vertex as expected")
		}
		edges = append(edges, edge{nonP[0], nonP[1]})
	}
	if len(edges) < 3 {
		return nil, fmt.Errorf("kirkpatrick: star polygon needs at least 3 edges, got %d", len(edges))
	}

	used := make([]bool, len(edges))
	poly := []geom.Point{edges[0].a, edges[0].b}
	used[0] = true

	for len(poly) < len(edges) {
		last := poly[len(poly)-1]
		found := false
		for i, e := range edges {
			if used[i] {
				continue
			}
			switch {
			case e.a.Equal(last):
				poly = append(poly, e.b)
				used[i] = true
				found = true
			case e.b.Equal(last):
				poly = append(poly, e.a)
				used[i] = true
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("kirkpatrick: star polygon around vertex is not a simple cycle")
		}
	}

	// n edges stitch into n vertices, with the cycle-closing edge back
	// to poly[0] left implicit, matching geom.Polygon's convention.
	return poly, nil
}
