// Package region implements the multi-region coordinator of spec §4.8:
// it dispatches point-location and path queries to the correct
// per-region Kirkpatrick locator, and carries the "first point, then
// shortest path" session used by interactive callers. Grounded on
// original_source/lib/point_location/kirkpatrick.py's
// MultiPolygonLocator.
package region

import (
	"fmt"

	"github.com/ngeo/polymap/corridor"
	"github.com/ngeo/polymap/funnel"
	"github.com/ngeo/polymap/geom"
	"github.com/ngeo/polymap/kirkpatrick"
	"github.com/ngeo/polymap/polymaperr"
)

// region bundles one preprocessed polygon with the dual graph its
// shortest-path queries run over.
type region struct {
	locator  *kirkpatrick.Locator
	corridor *corridor.Graph
}

// Coordinator holds a set of per-region locators and dispatches
// queries across them, per spec §4.8.
type Coordinator struct {
	cfg     Config
	regions []*region
	owner   map[uint64]int // triangle fingerprint -> region index

	firstPoint    geom.Point
	firstTriangle geom.Triangle
	firstRegion   int
	hasFirst      bool
}

// NewCoordinator returns an empty coordinator using cfg for every
// region it preprocesses.
func NewCoordinator(cfg Config) *Coordinator {
	return &Coordinator{
		cfg:   cfg,
		owner: make(map[uint64]int),
	}
}

// AddRegions triangulates and preprocesses each polygon in polygons,
// pairing it with the outline at the same index in outlines (a nil
// entry means "use the convex hull"). Regions whose bounding-triangle
// build fails are skipped, and their indices are returned in skipped;
// a triangle fingerprint collision across regions aborts the whole
// call, per spec §4.8 and §7.
func (c *Coordinator) AddRegions(polygons []*geom.Polygon, outlines []*geom.Polygon) (skipped []int, err error) {
	kcfg := kirkpatrick.Config{OuterFactor: c.cfg.OuterFactor, IndepSetDegree: c.cfg.IndepSetDegree}

	for i, poly := range polygons {
		var outline *geom.Polygon
		if i < len(outlines) {
			outline = outlines[i]
		}

		loc, err := kirkpatrick.NewLocator(poly, outline, kcfg)
		if err != nil {
			skipped = append(skipped, i)
			continue
		}

		cg, err := corridor.NewGraph(loc.RegionTriangles())
		if err != nil {
			return nil, fmt.Errorf("region: building corridor graph for region %d: %w", i, err)
		}

		idx := len(c.regions)
		for _, t := range loc.RegionTriangles() {
			fp := t.Hash()
			if _, exists := c.owner[fp]; exists {
				return nil, fmt.Errorf("region: triangle %x claimed by more than one region", fp)
			}
			c.owner[fp] = idx
		}

		c.regions = append(c.regions, &region{locator: loc, corridor: cg})
	}
	return skipped, nil
}

// Locate resolves p to its containing triangle and owning region
// index. If hint is non-nil and its fingerprint is owned by a region,
// the search is restricted to that region; otherwise every region is
// scanned in insertion order and the first hit wins.
func (c *Coordinator) Locate(p geom.Point, hint *geom.Triangle) (triangle geom.Triangle, regionIdx int, found bool) {
	if hint != nil {
		if idx, ok := c.owner[hint.Hash()]; ok {
			if t, found := c.regions[idx].locator.Locate(p); found {
				return t, idx, true
			}
			return geom.Triangle{}, 0, false
		}
	}

	for idx, r := range c.regions {
		if t, found := r.locator.Locate(p); found {
			return t, idx, true
		}
	}
	return geom.Triangle{}, 0, false
}

// SetFirstPoint locates p and, on success, stashes it as the session's
// starting point for a later GetShortestPath call.
func (c *Coordinator) SetFirstPoint(p geom.Point) error {
	t, idx, found := c.Locate(p, nil)
	if !found {
		return polymaperr.ErrPointOutside
	}
	c.firstPoint = p
	c.firstTriangle = t
	c.firstRegion = idx
	c.hasFirst = true
	return nil
}

// HasFirstPoint reports whether a session start point is currently
// stashed.
func (c *Coordinator) HasFirstPoint() bool {
	return c.hasFirst
}

// GetShortestPath resolves end, requires it to be in the same region
// as the stashed first point, and if so runs that region's BFS +
// funnel to produce the connecting polyline. The session state is
// cleared either way. Per spec §4.8/§7, a cross-region request is
// non-fatal: it returns ErrCrossRegionPath rather than aborting.
func (c *Coordinator) GetShortestPath(end geom.Point) ([]geom.Point, error) {
	if !c.hasFirst {
		return nil, fmt.Errorf("region: no first point set")
	}
	start, startTri, startRegion := c.firstPoint, c.firstTriangle, c.firstRegion
	c.hasFirst = false

	endTri, endRegion, found := c.Locate(end, nil)
	if !found {
		return nil, polymaperr.ErrPointOutside
	}
	if endRegion != startRegion {
		return nil, polymaperr.ErrCrossRegionPath
	}

	r := c.regions[startRegion]
	fps, err := r.corridor.BFS(startTri.Hash(), endTri.Hash())
	if err != nil {
		return nil, err
	}
	if len(fps) == 0 {
		return nil, fmt.Errorf("region: no corridor between start and end triangle")
	}

	corridorTris := make([]geom.Triangle, len(fps))
	for i, fp := range fps {
		t, ok := r.corridor.Triangle(fp)
		if !ok {
			return nil, fmt.Errorf("region: corridor triangle %x missing from graph", fp)
		}
		corridorTris[i] = t
	}

	return funnel.Path(corridorTris, start, end)
}
