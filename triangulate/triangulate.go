// Package triangulate adapts the ear-clip triangulator at
// github.com/rclancey/go-earcut (a black-box polygon-to-triangles
// primitive) to polymap's geom.Polygon / geom.Triangle types: it
// flattens points to coordinates, invokes the ear-clip routine, and
// re-inflates the returned index triples into triangles whose vertices
// reference the original points by value.
package triangulate

import (
	"fmt"

	"github.com/rclancey/go-earcut"

	"github.com/ngeo/polymap/geom"
)

func init() {
	geom.RegisterTriangulator(Polygon)
}

// Polygon triangulates points, with an optional single hole, and
// returns the covering triangles. Triangle vertices reference the
// original points and hole points by value, never by index.
func Polygon(points []geom.Point, hole []geom.Point) ([]geom.Triangle, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("triangulate: polygon must have at least three vertices")
	}

	flat := make([]float64, 0, 2*(len(points)+len(hole)))
	allPoints := make([]geom.Point, 0, len(points)+len(hole))

	for _, p := range points {
		flat = append(flat, p.X, p.Y)
		allPoints = append(allPoints, p)
	}

	var holeStart []int
	if len(hole) > 0 {
		holeStart = []int{len(allPoints)}
		for _, p := range hole {
			flat = append(flat, p.X, p.Y)
			allPoints = append(allPoints, p)
		}
	}

	indices, err := earcut.Earcut(flat, holeStart, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulate: %w", err)
	}

	tris := make([]geom.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		tris = append(tris, geom.NewTriangle(
			allPoints[indices[i]],
			allPoints[indices[i+1]],
			allPoints[indices[i+2]],
		))
	}
	return tris, nil
}
