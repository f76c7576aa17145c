// Package graph provides the small directed/undirected graph types used
// by the Kirkpatrick preprocessing DAG (package kirkpatrick): a directed
// graph with root tracking and an acyclicity check, and an undirected
// graph with bounded-degree independent-set extraction. Neither needs
// weights, multi-edges or traversal callbacks, so unlike the triangle
// dual graph (package corridor) this one is hand-rolled rather than
// built atop katalvlaran/lvlath — see DESIGN.md.
package graph

// Directed is a simple directed graph over string node identities. It
// tracks its current roots (nodes with no incoming edge) incrementally,
// since Kirkpatrick preprocessing repeatedly asks "which nodes have
// nothing pointing at them yet" while building the DAG bottom-up.
type Directed struct {
	out   map[string]map[string]bool
	in    map[string]map[string]bool
	roots map[string]bool
}

// NewDirected returns an empty directed graph.
func NewDirected() *Directed {
	return &Directed{
		out:   make(map[string]map[string]bool),
		in:    make(map[string]map[string]bool),
		roots: make(map[string]bool),
	}
}

// AddNode registers id with no edges, if not already present. A freshly
// added node is a root until something connects into it.
func (g *Directed) AddNode(id string) {
	if _, ok := g.out[id]; ok {
		return
	}
	g.out[id] = make(map[string]bool)
	g.in[id] = make(map[string]bool)
	g.roots[id] = true
}

// Connect adds a directed edge from->to, adding either endpoint that
// doesn't exist yet. to is no longer a root once something points at it.
func (g *Directed) Connect(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.out[from][to] = true
	g.in[to][from] = true
	delete(g.roots, to)
}

// HasNode reports whether id has been added.
func (g *Directed) HasNode(id string) bool {
	_, ok := g.out[id]
	return ok
}

// Neighbors returns the nodes id points to.
func (g *Directed) Neighbors(id string) []string {
	out := make([]string, 0, len(g.out[id]))
	for n := range g.out[id] {
		out = append(out, n)
	}
	return out
}

// Roots returns the current set of nodes with no incoming edge.
func (g *Directed) Roots() []string {
	out := make([]string, 0, len(g.roots))
	for n := range g.roots {
		out = append(out, n)
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Directed) NodeCount() int {
	return len(g.out)
}

// IsAcyclic reports whether the graph has no directed cycle, via
// Kahn's algorithm: peel the current roots, decrement in-degree of
// their neighbors, and repeat. Any node left unpeeled at the end sits
// on a cycle. The peel starts from a snapshot of Roots() and does not
// mutate the graph; a node popped off the frontier and found to still
// have live predecessors is simply left for a later round rather than
// reinserted into g.roots, which stays the graph's own bookkeeping.
func (g *Directed) IsAcyclic() bool {
	inDegree := make(map[string]int, len(g.in))
	for id, preds := range g.in {
		inDegree[id] = len(preds)
	}

	frontier := make([]string, 0, len(g.roots))
	for id := range g.roots {
		frontier = append(frontier, id)
	}

	visited := 0
	for len(frontier) > 0 {
		id := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		visited++
		for n := range g.out[id] {
			inDegree[n]--
			if inDegree[n] == 0 {
				frontier = append(frontier, n)
			}
		}
	}
	return visited == len(g.out)
}
