package boundtri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngeo/polymap/boundtri"
	"github.com/ngeo/polymap/geom"
	_ "github.com/ngeo/polymap/triangulate"
)

func TestMinBoundingTriangleContainsSquare(t *testing.T) {
	square, err := geom.NewPolygon([]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(0, 10),
	})
	require.NoError(t, err)

	tri, err := boundtri.MinBoundingTriangle(square)
	require.NoError(t, err)

	for _, p := range square.Points {
		assert.True(t, tri.ContainsPoint(p), "bounding triangle must contain vertex %v", p)
	}
	squareArea, err := square.Area()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tri.Area(), squareArea-1e-6)
	assert.LessOrEqual(t, tri.Area(), squareArea*4)
}

func TestMinBoundingTriangleOfTriangleIsItself(t *testing.T) {
	poly, err := geom.NewPolygon([]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(4, 0),
		geom.NewPoint(2, 4),
	})
	require.NoError(t, err)

	tri, err := boundtri.MinBoundingTriangle(poly)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, tri.Area(), 1e-6)
}
