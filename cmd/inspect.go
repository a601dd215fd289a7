package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/wegman-software/multipolygon-go/internal/logger"
	"github.com/wegman-software/multipolygon-go/internal/pipeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.osm.pbf>",
	Short: "Show the ring structure of a single relation",
	Long: `Assemble one relation and print its ring structure without writing
output: outer rings, their attached holes, and any chains that failed to
close. Useful for debugging broken multipolygons.`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Int64Var(&cfg.RelationID, "relation", 0, "Relation ID to inspect (required)")
	inspectCmd.Flags().StringVar(&cfg.RolesFile, "roles", "", "Role classification YAML file")
	inspectCmd.MarkFlagRequired("relation")
}

func runInspect(cmd *cobra.Command, args []string) {
	cfg.InputFile = args[0]
	cfg.OutputFile = "" // inspection never writes a file
	cfg.Projection = 4326
	log := logger.Get()

	if err := cfg.Validate(); err != nil {
		exitWithError("invalid configuration", err)
	}

	matcher, err := loadMatcher()
	if err != nil {
		exitWithError("failed to load roles file", err)
	}

	results, _, err := pipeline.Run(context.Background(), cfg, matcher)
	if err != nil {
		exitWithError("assembly failed", err)
	}
	if len(results) == 0 {
		exitWithError("relation not found in extract", nil)
	}

	res := results[0]
	log.Info("Relation",
		zap.Int64("id", int64(res.Relation.ID)),
		zap.Int("members", len(res.Relation.Members)),
		zap.Int("outer_ways", len(res.Polygon.OuterWays())),
		zap.Int("inner_ways", len(res.Polygon.InnerWays())),
		zap.Int("open_chains", res.OpenChains))

	for i, ring := range res.Polygon.Combined() {
		b := ring.Bounds()
		log.Info("Outer ring",
			zap.Int("index", i),
			zap.Int("nodes", len(ring.Nodes())),
			zap.Int("holes", len(ring.Inners())),
			zap.Float64("min_x", b.Min[0]),
			zap.Float64("min_y", b.Min[1]),
			zap.Float64("max_x", b.Max[0]),
			zap.Float64("max_y", b.Max[1]))
	}
}
