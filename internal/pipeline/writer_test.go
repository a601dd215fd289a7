package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/wegman-software/multipolygon-go/internal/multipolygon"
)

func TestWriteGeoJSON(t *testing.T) {
	// One assemblable relation and one with no renderable geometry.
	empty := &multipolygon.Relation{ID: 2, Members: []multipolygon.Member{
		{Way: squareWay(30, 40, 0, 0, 5), Role: "inner", Drawable: true},
	}}
	results, err := AssembleAll(context.Background(),
		[]*multipolygon.Relation{testRelation(1), empty}, nil, 1)
	if err != nil {
		t.Fatalf("AssembleAll: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.geojson")
	if err := WriteGeoJSON(path, results); err != nil {
		t.Fatalf("WriteGeoJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1 (relation without outer ring skipped)", len(fc.Features))
	}
	if fc.Features[0].Properties.MustInt("relation_id") != 1 {
		t.Errorf("relation_id = %v, want 1", fc.Features[0].Properties["relation_id"])
	}
}
