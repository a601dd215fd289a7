package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/wegman-software/multipolygon-go/internal/logger"
	"github.com/wegman-software/multipolygon-go/internal/multipolygon"
)

// Result summarizes one assembled relation
type Result struct {
	Relation   *multipolygon.Relation
	Polygon    *multipolygon.Multipolygon
	OpenChains int
}

// AssembleAll assembles every relation snapshot in parallel. Assembly of one
// relation is synchronous and independent of all others, so relations fan
// out across workers with no shared state beyond the read-only node arena.
func AssembleAll(ctx context.Context, relations []*multipolygon.Relation, matcher *multipolygon.RoleMatcher, workers int) ([]*Result, error) {
	log := logger.Get()

	results := make([]*Result, len(relations))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rel := range relations {
		i, rel := i, rel
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			mp := multipolygon.NewMultipolygon(rel, matcher)
			res := &Result{Relation: rel, Polygon: mp}
			for _, ring := range mp.Combined() {
				if !ringClosed(ring) {
					res.OpenChains++
				}
			}
			if res.OpenChains > 0 {
				log.Debug("Relation has open chains",
					zap.Int64("relation", int64(rel.ID)),
					zap.Int("open_chains", res.OpenChains))
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ringClosed reports whether the ring's node sequence actually closes.
// Open chains are assembled anyway; this only feeds diagnostics.
func ringClosed(ring *multipolygon.Ring) bool {
	nodes := ring.Nodes()
	if len(nodes) == 0 {
		return true
	}
	return nodes[0].ID == nodes[len(nodes)-1].ID
}

// Feature converts one assembled relation into a GeoJSON MultiPolygon
// feature. Each combined ring becomes a polygon whose first ring is the
// outer boundary and whose remaining rings are the attached holes.
func (r *Result) Feature() *geojson.Feature {
	mp := make(orb.MultiPolygon, 0, len(r.Polygon.Combined()))
	for _, ring := range r.Polygon.Combined() {
		mp = append(mp, orb.Polygon(ring.Path().Subpaths()))
	}

	f := geojson.NewFeature(mp)
	f.Properties["relation_id"] = int64(r.Relation.ID)
	f.Properties["outer_rings"] = len(r.Polygon.Combined())
	f.Properties["inner_rings"] = countInners(r.Polygon)
	if r.OpenChains > 0 {
		f.Properties["open_chains"] = r.OpenChains
	}
	return f
}

func countInners(mp *multipolygon.Multipolygon) int {
	count := 0
	for _, ring := range mp.Combined() {
		count += len(ring.Inners())
	}
	return count
}
