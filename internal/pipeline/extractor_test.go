package pipeline

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/wegman-software/multipolygon-go/internal/config"
	"github.com/wegman-software/multipolygon-go/internal/multipolygon"
)

func relationWithType(id int64, typ string) *osm.Relation {
	rel := &osm.Relation{ID: osm.RelationID(id)}
	if typ != "" {
		rel.Tags = osm.Tags{{Key: "type", Value: typ}}
	}
	return rel
}

func TestWantRelation(t *testing.T) {
	tests := []struct {
		name       string
		relationID int64
		rel        *osm.Relation
		want       bool
	}{
		{"multipolygon tag", 0, relationWithType(1, "multipolygon"), true},
		{"boundary tag", 0, relationWithType(2, "boundary"), true},
		{"route tag", 0, relationWithType(3, "route"), false},
		{"no type tag", 0, relationWithType(4, ""), false},
		{"requested id matches", 42, relationWithType(42, "route"), true},
		{"requested id other relation", 42, relationWithType(7, "multipolygon"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.RelationID = tt.relationID
			e := &Extractor{cfg: cfg}
			if got := e.wantRelation(tt.rel); got != tt.want {
				t.Errorf("wantRelation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelationsSkipsMissingWays(t *testing.T) {
	resolved := squareWay(10, 1, 0, 0, 10)
	e := &Extractor{
		relations: []relationRef{{
			ID: 1,
			Members: []memberRef{
				{WayID: 10, Role: "outer"},
				{WayID: 11, Role: "inner"}, // never resolved in pass 2
			},
		}},
		ways: map[osm.WayID]*multipolygon.Way{10: resolved},
	}

	relations := e.Relations()
	if len(relations) != 1 {
		t.Fatalf("got %d relations, want 1", len(relations))
	}
	rel := relations[0]
	if len(rel.Members) != 1 {
		t.Fatalf("got %d members, want 1 (missing way dropped)", len(rel.Members))
	}
	if rel.Members[0].Way != resolved {
		t.Errorf("member does not reference the resolved way")
	}
	if !rel.Members[0].Drawable {
		t.Errorf("resolved member should be drawable")
	}
}
