package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngeo/polymap/geom"
	"github.com/ngeo/polymap/polymaperr"
	"github.com/ngeo/polymap/region"
)

func squareAt(x, y float64) *geom.Polygon {
	poly, _ := geom.NewPolygon([]geom.Point{
		geom.NewPoint(x, y),
		geom.NewPoint(x+10, y),
		geom.NewPoint(x+10, y+10),
		geom.NewPoint(x, y+10),
	})
	return poly
}

func TestAddRegionsLocatesAcrossRegions(t *testing.T) {
	c := region.NewCoordinator(region.DefaultConfig())
	skipped, err := c.AddRegions([]*geom.Polygon{squareAt(0, 0), squareAt(100, 100)}, nil)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	_, idx, found := c.Locate(geom.NewPoint(5, 5), nil)
	require.True(t, found)
	assert.Equal(t, 0, idx)

	_, idx, found = c.Locate(geom.NewPoint(105, 105), nil)
	require.True(t, found)
	assert.Equal(t, 1, idx)

	_, _, found = c.Locate(geom.NewPoint(50, 50), nil)
	assert.False(t, found)
}

func TestShortestPathWithinSingleRegion(t *testing.T) {
	c := region.NewCoordinator(region.DefaultConfig())
	_, err := c.AddRegions([]*geom.Polygon{squareAt(0, 0)}, nil)
	require.NoError(t, err)

	require.NoError(t, c.SetFirstPoint(geom.NewPoint(1, 1)))
	assert.True(t, c.HasFirstPoint())

	path, err := c.GetShortestPath(geom.NewPoint(9, 9))
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, geom.NewPoint(1, 1), path[0])
	assert.Equal(t, geom.NewPoint(9, 9), path[len(path)-1])
	assert.False(t, c.HasFirstPoint())
}

func TestShortestPathAcrossRegionsIsRejected(t *testing.T) {
	c := region.NewCoordinator(region.DefaultConfig())
	_, err := c.AddRegions([]*geom.Polygon{squareAt(0, 0), squareAt(100, 100)}, nil)
	require.NoError(t, err)

	require.NoError(t, c.SetFirstPoint(geom.NewPoint(1, 1)))
	_, err = c.GetShortestPath(geom.NewPoint(105, 105))
	require.Error(t, err)
	assert.True(t, polymaperr.Is(err, polymaperr.CrossRegionPath))
	assert.False(t, c.HasFirstPoint())
}

func TestSetFirstPointOutsideAnyRegionFails(t *testing.T) {
	c := region.NewCoordinator(region.DefaultConfig())
	_, err := c.AddRegions([]*geom.Polygon{squareAt(0, 0)}, nil)
	require.NoError(t, err)

	err = c.SetFirstPoint(geom.NewPoint(500, 500))
	require.Error(t, err)
	assert.True(t, polymaperr.Is(err, polymaperr.PointOutside))
	assert.False(t, c.HasFirstPoint())
}
