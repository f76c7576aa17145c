// Package corridor builds the triangle dual graph (DCEL-like) for a
// region's triangulation and runs BFS over it to produce the corridor
// of adjacent triangles between a source and target triangle, per
// spec §4.6. Unlike the Kirkpatrick DAG (package graph), the dual
// graph has no root tracking or independent-set need, so it is built
// directly on top of katalvlaran/lvlath's adjacency-list Graph and BFS
// rather than hand-rolled.
package corridor

import (
	"fmt"

	lvlath "github.com/katalvlaran/lvlath/graph"

	"github.com/ngeo/polymap/geom"
)

// EdgeOverfullError reports that an edge was assigned a third owning
// triangle during adjacency construction — a fatal sign of non-planar
// input or a triangulation bug, per spec §7.
type EdgeOverfullError struct {
	EdgeFingerprint uint64
}

func (e *EdgeOverfullError) Error() string {
	return fmt.Sprintf("corridor: edge %x assigned a third owning triangle", e.EdgeFingerprint)
}

// Graph is the dual graph of a region's triangulation: nodes are
// triangles (identified by their fingerprint), edges connect triangles
// sharing a full polygon edge.
type Graph struct {
	g         *lvlath.Graph
	triangles map[string]geom.Triangle
	// sharedEdge records, for each pair of adjacent triangle fingerprints
	// (undirected key "min|max"), the endpoints of the portal edge they
	// share — needed to extract the funnel's portal sequence.
	sharedEdge map[string][2]geom.Point
}

// NewGraph builds the dual graph of triangles. Returns an
// *EdgeOverfullError if any edge is claimed by a third triangle.
func NewGraph(triangles []geom.Triangle) (*Graph, error) {
	dg := &Graph{
		g:          lvlath.NewGraph(false, false),
		triangles:  make(map[string]geom.Triangle, len(triangles)),
		sharedEdge: make(map[string][2]geom.Point),
	}

	type owner struct {
		fp  uint64
		key string
	}
	edgeOwners := make(map[uint64][]owner)

	for _, t := range triangles {
		fp := t.Hash()
		key := fpKey(fp)
		dg.triangles[key] = t
		dg.g.AddVertex(&lvlath.Vertex{ID: key})

		pts := t.Points()
		for i := 0; i < 3; i++ {
			a, b := pts[i], pts[(i+1)%3]
			efp := geom.EdgeFingerprint(a, b)
			owners := edgeOwners[efp]
			if len(owners) >= 2 {
				return nil, &EdgeOverfullError{EdgeFingerprint: efp}
			}
			owners = append(owners, owner{fp: fp, key: key})
			edgeOwners[efp] = owners
			if len(owners) == 2 {
				u, v := owners[0], owners[1]
				dg.g.AddEdge(u.key, v.key, 1)
				dg.sharedEdge[pairKey(u.key, v.key)] = [2]geom.Point{a, b}
			}
		}
	}

	return dg, nil
}

// Triangle returns the triangle for a fingerprint and whether it is
// present in the graph.
func (dg *Graph) Triangle(fp uint64) (geom.Triangle, bool) {
	t, ok := dg.triangles[fpKey(fp)]
	return t, ok
}

// Neighbors returns the fingerprints of triangles adjacent to fp.
func (dg *Graph) Neighbors(fp uint64) []uint64 {
	verts := dg.g.Neighbors(fpKey(fp))
	out := make([]uint64, 0, len(verts))
	for _, v := range verts {
		out = append(out, keyFp(v.ID))
	}
	return out
}

// SharedEdge returns the endpoints of the portal edge shared by two
// adjacent triangles, and whether they are in fact adjacent.
func (dg *Graph) SharedEdge(a, b uint64) (geom.Point, geom.Point, bool) {
	edge, ok := dg.sharedEdge[pairKey(fpKey(a), fpKey(b))]
	if !ok {
		return geom.Point{}, geom.Point{}, false
	}
	return edge[0], edge[1], true
}

// BFS returns the sequence of triangle fingerprints from source to
// target inclusive, or an empty sequence if unreachable. Neighbor
// iteration order (and therefore tie-breaking among equally-short
// corridors) is whatever lvlath's adjacency list yields and is not
// guaranteed deterministic, per spec §4.6.
func (dg *Graph) BFS(source, target uint64) ([]uint64, error) {
	sourceKey, targetKey := fpKey(source), fpKey(target)
	if !dg.g.HasVertex(sourceKey) {
		return nil, fmt.Errorf("corridor: source triangle %x not in graph", source)
	}
	if !dg.g.HasVertex(targetKey) {
		return nil, fmt.Errorf("corridor: target triangle %x not in graph", target)
	}
	if sourceKey == targetKey {
		return []uint64{source}, nil
	}

	res, err := dg.g.BFS(sourceKey, nil)
	if err != nil {
		return nil, err
	}
	if !res.Visited[targetKey] {
		return nil, nil
	}

	var path []string
	for cur := targetKey; ; {
		path = append(path, cur)
		if cur == sourceKey {
			break
		}
		cur = res.Parent[cur]
	}
	out := make([]uint64, len(path))
	for i, key := range path {
		out[len(path)-1-i] = keyFp(key)
	}
	return out, nil
}

func fpKey(fp uint64) string {
	return fmt.Sprintf("%x", fp)
}

func keyFp(key string) uint64 {
	var fp uint64
	fmt.Sscanf(key, "%x", &fp)
	return fp
}

func pairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}
