package funnel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngeo/polymap/funnel"
	"github.com/ngeo/polymap/geom"
)

func diagonalSquare() []geom.Triangle {
	lower := geom.NewTriangle(geom.NewPoint(0, 0), geom.NewPoint(10, 0), geom.NewPoint(10, 10))
	upper := geom.NewTriangle(geom.NewPoint(0, 0), geom.NewPoint(10, 10), geom.NewPoint(0, 10))
	return []geom.Triangle{lower, upper}
}

func TestExtractPortalsSharesDiagonal(t *testing.T) {
	portals, err := funnel.ExtractPortals(diagonalSquare())
	require.NoError(t, err)
	require.Len(t, portals, 1)

	ends := map[geom.Point]bool{portals[0].A: true, portals[0].B: true}
	assert.True(t, ends[geom.NewPoint(0, 0)])
	assert.True(t, ends[geom.NewPoint(10, 10)])
}

func TestExtractPortalsDetectsDegenerateCorridor(t *testing.T) {
	a := geom.NewTriangle(geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(0, 1))
	b := geom.NewTriangle(geom.NewPoint(20, 20), geom.NewPoint(21, 20), geom.NewPoint(20, 21))
	_, err := funnel.ExtractPortals([]geom.Triangle{a, b})
	assert.Error(t, err)
}

func TestPathStraightLineThroughConvexCorridor(t *testing.T) {
	start := geom.NewPoint(2, 1)
	end := geom.NewPoint(8, 9)

	path, err := funnel.Path(diagonalSquare(), start, end)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
}

func TestPathStartsAndEndsCorrectly(t *testing.T) {
	start := geom.NewPoint(1, 1)
	end := geom.NewPoint(9, 9)

	path, err := funnel.Path(diagonalSquare(), start, end)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
}

func TestPathIsDeterministic(t *testing.T) {
	start := geom.NewPoint(3, 2)
	end := geom.NewPoint(7, 8)

	path1, err := funnel.Path(diagonalSquare(), start, end)
	require.NoError(t, err)
	path2, err := funnel.Path(diagonalSquare(), start, end)
	require.NoError(t, err)
	assert.Equal(t, path1, path2)
}

func TestPathSingleTriangleCorridorIsDirect(t *testing.T) {
	tri := geom.NewTriangle(geom.NewPoint(0, 0), geom.NewPoint(10, 0), geom.NewPoint(5, 10))
	start := geom.NewPoint(4, 2)
	end := geom.NewPoint(6, 4)

	path, err := funnel.Path([]geom.Triangle{tri}, start, end)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{start, end}, path)
}
