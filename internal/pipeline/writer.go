package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// WriteGeoJSON writes the assembled relations as a GeoJSON FeatureCollection
func WriteGeoJSON(path string, results []*Result) error {
	fc := geojson.NewFeatureCollection()
	for _, res := range results {
		if len(res.Polygon.Combined()) == 0 {
			// No outer ring at all; nothing renderable to export.
			continue
		}
		fc.Append(res.Feature())
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to encode feature collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
