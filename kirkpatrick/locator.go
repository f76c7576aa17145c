// Package kirkpatrick preprocesses a single polygonal region into a
// Kirkpatrick point-location DAG (O(n) preprocessing, O(log n) query),
// per spec §4.5. Grounded on
// original_source/lib/point_location/kirkpatrick.py's
// SinglePolygonLocator.
package kirkpatrick

import (
	"fmt"
	"sort"

	"github.com/ngeo/polymap/boundtri"
	"github.com/ngeo/polymap/geom"
	"github.com/ngeo/polymap/graph"
	"github.com/ngeo/polymap/triangulate"
)

// Config collects the Kirkpatrick preprocessing parameters of spec §6.
type Config struct {
	OuterFactor    int
	IndepSetDegree int
}

// DefaultConfig returns the spec-documented defaults.
func DefaultConfig() Config {
	return Config{OuterFactor: 10, IndepSetDegree: 8}
}

// Locator answers point-location queries for one polygonal region,
// via a DAG built by repeatedly peeling low-degree vertices from a
// triangulated bounding triangle down to the region's own
// triangulation.
type Locator struct {
	dag          *graph.Directed
	triangles    map[string]geom.Triangle
	regionLeaves map[string]bool
	root         string

	BoundingTriangle geom.Triangle
	Outline          *geom.Polygon
}

// NewLocator preprocesses region (with an optional explicit outline;
// pass nil to use region's convex hull) into a Locator.
func NewLocator(region *geom.Polygon, outline *geom.Polygon, cfg Config) (*Locator, error) {
	if outline == nil {
		hull, err := boundtri.ConvexHull(region.Points)
		if err != nil {
			return nil, &BoundingTriangleFailureError{Reason: err}
		}
		outline = hull
	}

	minTri, err := boundtri.MinBoundingTriangle(outline)
	if err != nil {
		return nil, &BoundingTriangleFailureError{Reason: err}
	}
	bounding := boundtri.LargerBoundingTriangle(minTri, cfg.OuterFactor)

	boundaryTris, err := triangulate.Polygon(bounding.Points(), outline.Points)
	if err != nil {
		return nil, &BoundingTriangleFailureError{Reason: err}
	}

	var regionTris []geom.Triangle
	if region.N() == 3 {
		tri, _ := region.ToTriangle()
		regionTris = []geom.Triangle{tri}
	} else {
		regionTris, err = region.Triangulation()
		if err != nil {
			return nil, &BoundingTriangleFailureError{Reason: err}
		}
	}

	l := &Locator{
		dag:              graph.NewDirected(),
		triangles:        make(map[string]geom.Triangle),
		regionLeaves:     make(map[string]bool),
		BoundingTriangle: bounding,
		Outline:          outline,
	}

	frontier := make(map[string]geom.Triangle)
	for _, t := range regionTris {
		fp := fpKey(t.Hash())
		l.dag.AddNode(fp)
		l.triangles[fp] = t
		l.regionLeaves[fp] = true
		frontier[fp] = t
	}
	for _, t := range boundaryTris {
		fp := fpKey(t.Hash())
		l.dag.AddNode(fp)
		l.triangles[fp] = t
		frontier[fp] = t
	}

	boundingVerts := make(map[string]bool, 3)
	for _, v := range bounding.Points() {
		boundingVerts[pointKey(v)] = true
	}

	for len(frontier) > 1 {
		if err := l.peelOnce(frontier, boundingVerts, cfg.IndepSetDegree); err != nil {
			return nil, err
		}
	}

	for fp := range frontier {
		l.root = fp
	}
	return l, nil
}

// peelOnce runs one layer of the Kirkpatrick peel: build the frontier's
// vertex graph, extract a low-degree independent set, and for each
// removed vertex replace its incident ("affected") triangles with a
// re-triangulation of the star polygon around it. frontier is mutated
// in place to become the next layer.
func (l *Locator) peelOnce(frontier map[string]geom.Triangle, boundingVerts map[string]bool, maxDegree int) error {
	vg := graph.NewUndirected()
	vertexPoint := make(map[string]geom.Point)
	for _, t := range frontier {
		pts := t.Points()
		for i := 0; i < 3; i++ {
			a, b := pts[i], pts[(i+1)%3]
			ka, kb := pointKey(a), pointKey(b)
			vertexPoint[ka] = a
			vertexPoint[kb] = b
			vg.Connect(ka, kb)
		}
	}

	indepKeys := vg.IndependentSet(maxDegree, boundingVerts)
	if len(indepKeys) == 0 {
		return peelStuckError{}
	}

	for _, vk := range indepKeys {
		p := vertexPoint[vk]

		var affectedFps []string
		var affected []geom.Triangle
		for fp, t := range frontier {
			if triangleHasVertex(t, p) {
				affectedFps = append(affectedFps, fp)
				affected = append(affected, t)
			}
		}
		if len(affected) == 0 {
			continue
		}

		poly, err := starPolygon(affected, p)
		if err != nil {
			return err
		}

		newTris, err := triangulate.Polygon(poly, nil)
		if err != nil {
			return err
		}

		for _, nt := range newTris {
			nfp := fpKey(nt.Hash())
			l.dag.AddNode(nfp)
			l.triangles[nfp] = nt
			for _, afp := range affectedFps {
				l.dag.Connect(nfp, afp)
			}
			frontier[nfp] = nt
		}
		for _, afp := range affectedFps {
			delete(frontier, afp)
		}
	}
	return nil
}

// AnnotatedLocate resolves p to the triangle that contains it, and
// reports whether that triangle is an original region leaf (as opposed
// to a boundary-annulus triangle), and whether p lies in the bounding
// triangle at all.
func (l *Locator) AnnotatedLocate(p geom.Point) (triangle geom.Triangle, isRegion bool, found bool) {
	if !l.BoundingTriangle.ContainsPoint(p) {
		return geom.Triangle{}, false, false
	}

	current := l.root
	for {
		children := l.dag.Neighbors(current)
		if len(children) == 0 {
			t := l.triangles[current]
			return t, l.regionLeaves[current], true
		}
		sort.Strings(children)

		next := ""
		for _, c := range children {
			if l.triangles[c].ContainsPoint(p) {
				next = c
				break
			}
		}
		if next == "" {
			t := l.triangles[current]
			return t, l.regionLeaves[current], true
		}
		current = next
	}
}

// Locate resolves p to the region triangle that contains it. Boundary-
// annulus hits and points outside the bounding triangle both report
// not-found, per spec §4.5.
func (l *Locator) Locate(p geom.Point) (geom.Triangle, bool) {
	t, isRegion, found := l.AnnotatedLocate(p)
	if !found || !isRegion {
		return geom.Triangle{}, false
	}
	return t, true
}

// TriangleByFingerprint returns the triangle with the given
// fingerprint, for callers (package region, package corridor) that
// received a fingerprint from a prior Locate/AnnotatedLocate call.
func (l *Locator) TriangleByFingerprint(fp uint64) (geom.Triangle, bool) {
	t, ok := l.triangles[fpKey(fp)]
	return t, ok
}

// RegionTriangles returns the region's own triangulation triangles,
// used by package corridor to build the dual graph for path queries.
func (l *Locator) RegionTriangles() []geom.Triangle {
	out := make([]geom.Triangle, 0, len(l.regionLeaves))
	for fp := range l.regionLeaves {
		out = append(out, l.triangles[fp])
	}
	return out
}

// IsAcyclic reports whether the preprocessing DAG has no cycles
// (testable property 7 of spec §8).
func (l *Locator) IsAcyclic() bool {
	return l.dag.IsAcyclic()
}

// RootCount returns the number of DAG roots; a correctly built locator
// always has exactly one (the bounding triangle).
func (l *Locator) RootCount() int {
	return len(l.dag.Roots())
}

func triangleHasVertex(t geom.Triangle, p geom.Point) bool {
	for _, q := range t.Points() {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

func pointKey(p geom.Point) string {
	return fmt.Sprintf("%x", p.Hash())
}

func fpKey(fp uint64) string {
	return fmt.Sprintf("%x", fp)
}
