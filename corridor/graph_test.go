package corridor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngeo/polymap/corridor"
	"github.com/ngeo/polymap/geom"
)

func squareTriangles() []geom.Triangle {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(10, 0)
	c := geom.NewPoint(10, 10)
	d := geom.NewPoint(0, 10)
	return []geom.Triangle{
		geom.NewTriangle(a, b, c),
		geom.NewTriangle(a, c, d),
	}
}

func TestNewGraphLinksSharedEdge(t *testing.T) {
	tris := squareTriangles()
	g, err := corridor.NewGraph(tris)
	require.NoError(t, err)

	t1, t2 := tris[0].Hash(), tris[1].Hash()
	neighbors := g.Neighbors(t1)
	assert.Contains(t, neighbors, t2)

	p1, p2, ok := g.SharedEdge(t1, t2)
	require.True(t, ok)
	diag := map[geom.Point]bool{p1: true, p2: true}
	assert.True(t, diag[geom.NewPoint(0, 0)] || diag[geom.NewPoint(10, 10)])
}

func TestBFSFindsCorridor(t *testing.T) {
	tris := squareTriangles()
	g, err := corridor.NewGraph(tris)
	require.NoError(t, err)

	path, err := g.BFS(tris[0].Hash(), tris[1].Hash())
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, tris[0].Hash(), path[0])
	assert.Equal(t, tris[1].Hash(), path[1])
}

func TestBFSSameTriangle(t *testing.T) {
	tris := squareTriangles()
	g, err := corridor.NewGraph(tris)
	require.NoError(t, err)

	path, err := g.BFS(tris[0].Hash(), tris[0].Hash())
	require.NoError(t, err)
	assert.Equal(t, []uint64{tris[0].Hash()}, path)
}

func TestNewGraphRejectsOverfullEdge(t *testing.T) {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(10, 0)
	c := geom.NewPoint(5, 10)
	d := geom.NewPoint(5, -10)
	e := geom.NewPoint(5, 20)

	tris := []geom.Triangle{
		geom.NewTriangle(a, b, c),
		geom.NewTriangle(a, b, d),
		geom.NewTriangle(a, b, e),
	}
	_, err := corridor.NewGraph(tris)
	assert.Error(t, err)
}
