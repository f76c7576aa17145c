package graph

import "sort"

// Undirected is a simple undirected graph, implemented as a Directed
// graph with every Connect mirrored both ways. Its distinguishing
// operation is IndependentSet, used by Kirkpatrick preprocessing to
// pick the next batch of low-degree interior vertices to remove from
// the triangulation in one peel of the hierarchy.
type Undirected struct {
	d *Directed
}

// NewUndirected returns an empty undirected graph.
func NewUndirected() *Undirected {
	return &Undirected{d: NewDirected()}
}

// AddNode registers id, if not already present.
func (g *Undirected) AddNode(id string) {
	g.d.AddNode(id)
}

// Connect adds an edge between a and b, in both directions.
func (g *Undirected) Connect(a, b string) {
	g.d.Connect(a, b)
	g.d.Connect(b, a)
}

// HasNode reports whether id has been added.
func (g *Undirected) HasNode(id string) bool {
	return g.d.HasNode(id)
}

// Degree returns the number of distinct neighbors of id.
func (g *Undirected) Degree(id string) int {
	return len(g.d.out[id])
}

// Neighbors returns id's neighbors.
func (g *Undirected) Neighbors(id string) []string {
	return g.d.Neighbors(id)
}

// NodeCount returns the number of nodes in the graph.
func (g *Undirected) NodeCount() int {
	return g.d.NodeCount()
}

// IndependentSet returns a maximal set of mutually non-adjacent nodes,
// each with degree at most maxDegree, skipping any node in avoid. It
// visits nodes in a fixed (insertion-independent but deterministic)
// order by sorting identities, so preprocessing runs are reproducible
// given the same vertex naming.
func (g *Undirected) IndependentSet(maxDegree int, avoid map[string]bool) []string {
	candidates := make([]string, 0, g.d.NodeCount())
	for id := range g.d.out {
		if avoid != nil && avoid[id] {
			continue
		}
		if g.Degree(id) <= maxDegree {
			candidates = append(candidates, id)
		}
	}
	sort.Strings(candidates)

	chosen := make(map[string]bool, len(candidates))
	result := make([]string, 0, len(candidates))
	for _, id := range candidates {
		blocked := false
		for _, n := range g.Neighbors(id) {
			if chosen[n] {
				blocked = true
				break
			}
		}
		if !blocked {
			chosen[id] = true
			result = append(result, id)
		}
	}
	return result
}
