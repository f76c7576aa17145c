package region

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ngeo/polymap/geom"
)

// regionFile is the on-disk shape read by the CLI: a list of regions,
// each a polygon vertex ring with an optional explicit outline ring.
// This is "GeoJSON-ish" rather than RFC 7946 GeoJSON proper: the
// retrieval pack's only GeoJSON parser
// (github.com/twpayne/go-geom/encoding/geojson, used by
// other_examples/rgeo.go) pulls in a full feature/geometry/CRS object
// model (plus github.com/golang/geo/s2 and github.com/pkg/errors) built
// for arbitrary real-world GeoJSON, which this CLI's flat polygon-ring
// format has no use for; decoding the same [x,y]-pair-array shape with
// encoding/json avoids that entirely unused dependency weight.
type regionFile struct {
	Regions []regionEntry `json:"regions"`
}

type regionEntry struct {
	Polygon [][2]float64  `json:"polygon"`
	Outline *[][2]float64 `json:"outline,omitempty"`
}

// LoadRegionsFile reads a region file from path, returning one polygon
// per region and, where present, its explicit outline (nil entries fall
// back to the convex hull during preprocessing).
func LoadRegionsFile(path string) (polygons []*geom.Polygon, outlines []*geom.Polygon, err error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var rf regionFile
	if err := json.Unmarshal(buf, &rf); err != nil {
		return nil, nil, fmt.Errorf("region: parsing %s: %w", path, err)
	}

	for i, entry := range rf.Regions {
		poly, err := ringToPolygon(entry.Polygon)
		if err != nil {
			return nil, nil, fmt.Errorf("region: region %d: %w", i, err)
		}
		polygons = append(polygons, poly)

		if entry.Outline != nil {
			outline, err := ringToPolygon(*entry.Outline)
			if err != nil {
				return nil, nil, fmt.Errorf("region: region %d outline: %w", i, err)
			}
			outlines = append(outlines, outline)
		} else {
			outlines = append(outlines, nil)
		}
	}
	return polygons, outlines, nil
}

func ringToPolygon(ring [][2]float64) (*geom.Polygon, error) {
	points := make([]geom.Point, len(ring))
	for i, xy := range ring {
		points[i] = geom.NewPoint(xy[0], xy[1])
	}
	return geom.NewPolygon(points)
}
