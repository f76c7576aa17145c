package geom

import "fmt"

// Triangulator triangulates a simple polygon, optionally with one hole.
// The triangulate package registers the concrete ear-clip implementation
// via RegisterTriangulator; geom itself stays free of that dependency so
// triangulate can depend on geom without forming an import cycle.
type Triangulator func(points []Point, hole []Point) ([]Triangle, error)

var defaultTriangulator Triangulator

// RegisterTriangulator installs the triangulation backend used by
// Polygon.Triangulation. Called once from the triangulate package's
// init().
func RegisterTriangulator(t Triangulator) {
	defaultTriangulator = t
}

// Polygon is an ordered sequence of at least three points, with an
// implicit closing edge from the last point back to the first. Its
// triangulation is computed lazily on first demand and memoized.
type Polygon struct {
	Points []Point

	hole          []Point
	triangulation []Triangle
}

// NewPolygon validates and returns a polygon over points.
func NewPolygon(points []Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("polygon must have at least three vertices, got %d", len(points))
	}
	return &Polygon{Points: points}, nil
}

// N returns the number of vertices.
func (p *Polygon) N() int {
	return len(p.Points)
}

// SetHole attaches a single hole boundary to the polygon, invalidating
// any cached triangulation.
func (p *Polygon) SetHole(hole []Point) {
	p.hole = hole
	p.triangulation = nil
}

// Hash returns an order-independent fingerprint of the polygon's vertex
// set.
func (p *Polygon) Hash() uint64 {
	return hashPoints(p.Points)
}

// Triangulation returns the polygon's triangulation, computing and
// caching it on first call.
func (p *Polygon) Triangulation() ([]Triangle, error) {
	if p.triangulation != nil {
		return p.triangulation, nil
	}
	if defaultTriangulator == nil {
		return nil, fmt.Errorf("geom: no triangulator registered (import the triangulate package)")
	}
	tris, err := defaultTriangulator(p.Points, p.hole)
	if err != nil {
		return nil, err
	}
	p.triangulation = tris
	return tris, nil
}

// IsConvex reports whether every consecutive vertex triple turns the
// same way.
func (p *Polygon) IsConvex() bool {
	n := p.N()
	var target *bool
	for i := 0; i < n; i++ {
		a := p.Points[i%n]
		b := p.Points[(i+1)%n]
		c := p.Points[(i+2)%n]
		t := CCW(a, b, c)
		if target == nil {
			target = &t
		} else if *target != t {
			return false
		}
	}
	return true
}

// CCW reports whether the first three vertices are in counter-clockwise
// order.
func (p *Polygon) CCW() bool {
	return CCW(p.Points[0], p.Points[1], p.Points[2])
}

// Area returns the polygon's area, computed from its triangulation.
func (p *Polygon) Area() (float64, error) {
	tris, err := p.Triangulation()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, t := range tris {
		total += t.Area()
	}
	return total, nil
}

// ContainsPoint reports whether point lies inside the polygon. Convex
// polygons use the fast ray test directly; concave polygons triangulate
// first and test each triangle.
func (p *Polygon) ContainsPoint(point Point) (bool, error) {
	if p.IsConvex() {
		return convexContainsPoint(p.Points, point), nil
	}
	tris, err := p.Triangulation()
	if err != nil {
		return false, err
	}
	for _, t := range tris {
		if t.ContainsPoint(point) {
			return true, nil
		}
	}
	return false, nil
}

// ToTriangle returns p as a Triangle when it has exactly three vertices.
func (p *Polygon) ToTriangle() (Triangle, bool) {
	if p.N() != 3 {
		return Triangle{}, false
	}
	return NewTriangle(p.Points[0], p.Points[1], p.Points[2]), true
}
