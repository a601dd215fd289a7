package cmd

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/wegman-software/multipolygon-go/internal/logger"
	"github.com/wegman-software/multipolygon-go/internal/metrics"
	"github.com/wegman-software/multipolygon-go/internal/pipeline"
	"github.com/wegman-software/multipolygon-go/internal/proj"
)

var (
	projectionStr string
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <input.osm.pbf>",
	Short: "Assemble multipolygon relations into GeoJSON",
	Long: `Assemble every multipolygon and boundary relation in a PBF extract:

  1. Pass 1: Collect relations and the way IDs they reference
  2. Pass 2: Stream nodes into a memory-mapped index, resolve member ways
  3. Join open ways into rings, classify roles, assign holes to outers
  4. Write the assembled polygons as a GeoJSON FeatureCollection`,
	Args: cobra.ExactArgs(1),
	Run:  runAssemble,
}

func init() {
	rootCmd.AddCommand(assembleCmd)

	assembleCmd.Flags().StringVarP(&cfg.OutputFile, "output", "o", cfg.OutputFile, "Output GeoJSON file")
	assembleCmd.Flags().StringVarP(&projectionStr, "projection", "E", "3857", "Target projection SRID (4326 or 3857)")
	assembleCmd.Flags().StringVar(&cfg.RolesFile, "roles", "", "Role classification YAML file")
	assembleCmd.Flags().Int64Var(&cfg.RelationID, "relation", 0, "Assemble only this relation ID")
}

func runAssemble(cmd *cobra.Command, args []string) {
	cfg.InputFile = args[0]
	log := logger.Get()

	srid, err := proj.ParseSRID(projectionStr)
	if err != nil {
		exitWithError("invalid projection", err)
	}
	cfg.Projection = srid

	if err := cfg.Validate(); err != nil {
		exitWithError("invalid configuration", err)
	}

	matcher, err := loadMatcher()
	if err != nil {
		exitWithError("failed to load roles file", err)
	}

	ctx := context.Background()

	if cfg.MetricsInterval > 0 {
		collector := metrics.NewCollector(cfg.MetricsInterval, log)
		metricsCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go collector.Start(metricsCtx)
	}

	log.Info("Starting multipolygon assembly",
		zap.String("input", cfg.InputFile),
		zap.String("output", cfg.OutputFile),
		zap.Int("workers", cfg.Workers),
		zap.Int("projection", cfg.Projection))

	_, stats, err := pipeline.Run(ctx, cfg, matcher)
	if err != nil {
		exitWithError("assembly failed", err)
	}

	log.Info("Assembly complete",
		zap.Duration("total_time", stats.Duration.Round(time.Millisecond)),
		zap.Int("relations", stats.Relations),
		zap.Int("outer_rings", stats.Rings),
		zap.Int("inner_rings", stats.Inners),
		zap.Int("open_chains", stats.OpenChains))
}
