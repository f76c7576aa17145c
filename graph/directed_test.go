package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngeo/polymap/graph"
)

func TestDirectedRootsTracking(t *testing.T) {
	g := graph.NewDirected()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("c")

	assert.ElementsMatch(t, []string{"a", "b", "c"}, g.Roots())

	g.Connect("a", "b")
	assert.ElementsMatch(t, []string{"a", "c"}, g.Roots())

	g.Connect("a", "c")
	assert.ElementsMatch(t, []string{"a"}, g.Roots())
}

func TestDirectedConnectAutoAddsNodes(t *testing.T) {
	g := graph.NewDirected()
	g.Connect("x", "y")
	assert.True(t, g.HasNode("x"))
	assert.True(t, g.HasNode("y"))
	assert.Equal(t, []string{"y"}, g.Neighbors("x"))
}

func TestDirectedIsAcyclicOnDAG(t *testing.T) {
	g := graph.NewDirected()
	g.Connect("a", "b")
	g.Connect("b", "c")
	g.Connect("a", "c")
	assert.True(t, g.IsAcyclic())
}

func TestDirectedIsAcyclicDetectsCycle(t *testing.T) {
	g := graph.NewDirected()
	g.Connect("a", "b")
	g.Connect("b", "c")
	g.Connect("c", "a")
	assert.False(t, g.IsAcyclic())
}
