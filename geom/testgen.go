package geom

import "math/rand"

// The helpers in this file exist to synthesize property-based test
// fixtures (spec invariants over random points and random sub-polygons);
// they are not part of the query-facing API and are only reached from
// tests in geom and kirkpatrick.

// InteriorPoint returns a uniformly-distributed random point inside p,
// found by rejection sampling over the bounding box.
func (p *Polygon) InteriorPoint(rng *rand.Rand) (Point, error) {
	minX, maxX, minY, maxY := p.bounds()
	for {
		cand := Point{
			X: minX + rng.Float64()*(maxX-minX),
			Y: minY + rng.Float64()*(maxY-minY),
		}
		ok, err := p.ContainsPoint(cand)
		if err != nil {
			return Point{}, err
		}
		if ok {
			return cand, nil
		}
	}
}

// ExteriorPoint returns a random point near p but outside it.
func (p *Polygon) ExteriorPoint(rng *rand.Rand) (Point, error) {
	minX, maxX, minY, maxY := p.bounds()
	off := func() float64 { return 1 - 2*rng.Float64() }
	for {
		cand := Point{
			X: minX + rng.Float64()*(maxX-minX) + off(),
			Y: minY + rng.Float64()*(maxY-minY) + off(),
		}
		ok, err := p.ContainsPoint(cand)
		if err != nil {
			return Point{}, err
		}
		if !ok {
			return cand, nil
		}
	}
}

// SmartInteriorPoint returns a random interior point chosen by sampling
// a triangle of the polygon's triangulation weighted by area, then a
// random point within that triangle. Unlike InteriorPoint, this never
// rejects a sample.
func (p *Polygon) SmartInteriorPoint(rng *rand.Rand) (Point, error) {
	tris, err := p.Triangulation()
	if err != nil {
		return Point{}, err
	}
	var total float64
	areas := make([]float64, len(tris))
	for i, t := range tris {
		areas[i] = t.Area()
		total += areas[i]
	}
	r := rng.Float64()
	var cum float64
	for i, t := range tris {
		cum += areas[i] / total
		if cum >= r {
			return t.InteriorPoint(rng), nil
		}
	}
	return tris[len(tris)-1].InteriorPoint(rng), nil
}

func (p *Polygon) bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = p.Points[0].X, p.Points[0].X
	minY, maxY = p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return
}

// Split randomly bisects a convex polygon by connecting two distinct
// vertices, yielding two smaller sub-polygons. Only convex splitting is
// implemented; concave splitting (with area-increase rejection) is not.
// No test in this module calls it.
func (p *Polygon) Split(rng *rand.Rand) (*Polygon, *Polygon, error) {
	n := p.N()
	if n < 4 {
		return nil, nil, nil
	}
	draw := func() (int, int) {
		u := rng.Intn(n)
		v := rng.Intn(n)
		for abs(float64(v-u)) < 2 || abs(float64(u-v)) > float64(n-2) {
			v = rng.Intn(n)
		}
		if u > v {
			u, v = v, u
		}
		return u, v
	}

	u, v := draw()
	for i := 0; i < 1000; i++ {
		if p.validSplit(u, v) {
			break
		}
		u, v = draw()
	}

	p1pts := append([]Point{}, p.Points[u:v+1]...)
	p2pts := append(append([]Point{}, p.Points[v:]...), p.Points[:u+1]...)

	p1, err := NewPolygon(p1pts)
	if err != nil {
		return nil, nil, err
	}
	p2, err := NewPolygon(p2pts)
	if err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

func (p *Polygon) validSplit(u, v int) bool {
	pu, pv := p.Points[u], p.Points[v]
	n := p.N()
	for i := 0; i < n; i++ {
		p1 := p.Points[i]
		p2 := p.Points[(i+1)%n]
		if p1.Equal(pu) || p2.Equal(pu) || p1.Equal(pv) || p2.Equal(pv) {
			continue
		}
		if Intersect(pv, pu, p1, p2) {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
