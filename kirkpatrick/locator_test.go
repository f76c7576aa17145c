package kirkpatrick_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngeo/polymap/geom"
	"github.com/ngeo/polymap/kirkpatrick"
)

func square() *geom.Polygon {
	poly, _ := geom.NewPolygon([]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(0, 10),
	})
	return poly
}

func pentagon() *geom.Polygon {
	poly, _ := geom.NewPolygon([]geom.Point{
		geom.NewPoint(0, 4),
		geom.NewPoint(3, 0),
		geom.NewPoint(8, 1),
		geom.NewPoint(9, 6),
		geom.NewPoint(4, 9),
	})
	return poly
}

func TestNewLocatorProducesSingleRootDAG(t *testing.T) {
	loc, err := kirkpatrick.NewLocator(square(), nil, kirkpatrick.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, loc.RootCount())
	assert.True(t, loc.IsAcyclic())
}

func TestNewLocatorAcceptsConvexPentagon(t *testing.T) {
	loc, err := kirkpatrick.NewLocator(pentagon(), nil, kirkpatrick.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, loc.RootCount())
	assert.True(t, loc.IsAcyclic())
}

func TestLocatorLocatesInteriorPoints(t *testing.T) {
	region := square()
	loc, err := kirkpatrick.NewLocator(region, nil, kirkpatrick.DefaultConfig())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 25; i++ {
		p, err := region.SmartInteriorPoint(rng)
		require.NoError(t, err)

		tri, found := loc.Locate(p)
		require.True(t, found, "point %v should locate inside region", p)
		assert.True(t, tri.ContainsPoint(p))
	}
}

func TestLocatorRejectsExteriorPoints(t *testing.T) {
	region := square()
	loc, err := kirkpatrick.NewLocator(region, nil, kirkpatrick.DefaultConfig())
	require.NoError(t, err)

	far := geom.NewPoint(-1000, -1000)
	_, found := loc.Locate(far)
	assert.False(t, found)

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10; i++ {
		p, err := region.ExteriorPoint(rng)
		require.NoError(t, err)
		if _, isRegion, found := loc.AnnotatedLocate(p); found {
			assert.False(t, isRegion, "exterior point %v incorrectly classified as region", p)
		}
	}
}

func TestLocatorInteriorPointsResolveToRegionLeaves(t *testing.T) {
	region := square()
	loc, err := kirkpatrick.NewLocator(region, nil, kirkpatrick.DefaultConfig())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 15; i++ {
		p, err := region.SmartInteriorPoint(rng)
		require.NoError(t, err)
		_, isRegion, found := loc.AnnotatedLocate(p)
		require.True(t, found)
		assert.True(t, isRegion)
	}
}

func TestLocatorDeterministicAcrossRepeatedQueries(t *testing.T) {
	region := square()
	loc, err := kirkpatrick.NewLocator(region, nil, kirkpatrick.DefaultConfig())
	require.NoError(t, err)

	p := geom.NewPoint(5, 5)
	first, ok1 := loc.Locate(p)
	second, ok2 := loc.Locate(p)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}
