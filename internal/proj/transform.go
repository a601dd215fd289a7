package proj

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// SRID constants for common projections
const (
	SRID4326 = 4326 // WGS84 (lat/lon)
	SRID3857 = 3857 // Web Mercator
)

// Transformer projects WGS84 coordinates into the planar target projection
// used for ring assembly.
type Transformer struct {
	TargetSRID int
}

// NewTransformer creates a transformer targeting the given SRID
func NewTransformer(targetSRID int) (*Transformer, error) {
	if targetSRID != SRID4326 && targetSRID != SRID3857 {
		return nil, fmt.Errorf("unsupported target SRID: %d (only 4326 and 3857 supported)", targetSRID)
	}
	return &Transformer{TargetSRID: targetSRID}, nil
}

// Point converts a lon/lat coordinate to a planar point in the target
// projection. With target 4326 the coordinate passes through unchanged.
func (t *Transformer) Point(lon, lat float64) orb.Point {
	if t.TargetSRID == SRID4326 {
		return orb.Point{lon, lat}
	}
	x, y := lonLatToWebMercator(lon, lat)
	return orb.Point{x, y}
}

// Web Mercator constants
const (
	// Semi-major axis of WGS84 ellipsoid in meters
	earthRadius = 6378137.0
	// Maximum extent of Web Mercator
	maxExtent = 20037508.342789244
)

// lonLatToWebMercator converts WGS84 (lon, lat) to Web Mercator (x, y)
func lonLatToWebMercator(lon, lat float64) (x, y float64) {
	// Clamp latitude to avoid infinity at poles
	if lat > 85.06 {
		lat = 85.06
	} else if lat < -85.06 {
		lat = -85.06
	}

	x = lon * maxExtent / 180.0

	latRad := lat * math.Pi / 180.0
	y = math.Log(math.Tan(math.Pi/4.0+latRad/2.0)) * earthRadius

	return x, y
}

// ParseSRID parses a projection string to SRID
// Accepts: "4326", "3857", "EPSG:4326", "EPSG:3857"
func ParseSRID(s string) (int, error) {
	switch s {
	case "4326", "EPSG:4326":
		return SRID4326, nil
	case "3857", "EPSG:3857":
		return SRID3857, nil
	default:
		return 0, fmt.Errorf("unsupported projection: %s (supported: 4326, 3857)", s)
	}
}
