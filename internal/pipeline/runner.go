package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wegman-software/multipolygon-go/internal/config"
	"github.com/wegman-software/multipolygon-go/internal/logger"
	"github.com/wegman-software/multipolygon-go/internal/multipolygon"
)

// Stats holds run statistics
type Stats struct {
	Relations  int
	Rings      int
	Inners     int
	OpenChains int
	Duration   time.Duration
}

// Run executes the full extract-assemble-write pipeline and returns the
// assembly results (also written to the configured output file).
func Run(ctx context.Context, cfg *config.Config, matcher *multipolygon.RoleMatcher) ([]*Result, *Stats, error) {
	log := logger.Get()
	start := time.Now()

	extractor, err := NewExtractor(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer extractor.Close()

	if err := extractor.Run(ctx); err != nil {
		return nil, nil, err
	}

	relations := extractor.Relations()
	log.Info("Assembling multipolygons",
		zap.Int("relations", len(relations)),
		zap.Int("workers", cfg.Workers))

	results, err := AssembleAll(ctx, relations, matcher, cfg.Workers)
	if err != nil {
		return nil, nil, err
	}

	stats := &Stats{Relations: len(results)}
	for _, res := range results {
		stats.Rings += len(res.Polygon.Combined())
		stats.Inners += countInners(res.Polygon)
		stats.OpenChains += res.OpenChains
	}

	if cfg.OutputFile != "" {
		if err := WriteGeoJSON(cfg.OutputFile, results); err != nil {
			return nil, nil, err
		}
		log.Info("Wrote output", zap.String("file", cfg.OutputFile))
	}

	stats.Duration = time.Since(start)
	return results, stats, nil
}
