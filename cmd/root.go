package cmd

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/wegman-software/multipolygon-go/internal/config"
	"github.com/wegman-software/multipolygon-go/internal/logger"
	"github.com/wegman-software/multipolygon-go/internal/multipolygon"
)

var (
	cfg             = config.DefaultConfig()
	verbose         bool
	logFile         string
	metricsInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "multipolygon-go",
	Short: "OSM multipolygon relation assembler",
	Long: `multipolygon-go assembles OSM multipolygon and boundary relations
into renderable polygons with holes.

Features:
  - Multi-threaded PBF parsing with a memory-mapped node index
  - Role-driven outer/inner classification (configurable via YAML)
  - Endpoint splicing of open member ways into closed rings
  - Even-odd nesting resolution assigning holes to their outer rings
  - GeoJSON output in WGS84 or Web Mercator`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg.Verbose = verbose
		cfg.LogFile = logFile
		cfg.MetricsInterval = metricsInterval

		logger.Init(verbose, logFile)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVarP(&cfg.Workers, "workers", "j", cfg.Workers, "Number of parallel assembly workers")

	// Logging and metrics flags
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file for persistent logging (JSON format)")
	rootCmd.PersistentFlags().DurationVar(&metricsInterval, "metrics-interval", 0, "Interval for system metrics logging (e.g., 10s, 1m; 0 disables)")
}

// loadMatcher builds the role matcher from the configured roles file, or the
// built-in outer/inner defaults when no file is given.
func loadMatcher() (*multipolygon.RoleMatcher, error) {
	if cfg.RolesFile == "" {
		return multipolygon.DefaultRoleMatcher(), nil
	}
	roles, err := config.LoadRoles(cfg.RolesFile)
	if err != nil {
		return nil, err
	}
	return multipolygon.NewRoleMatcher(
		roles.OuterExactRoles, roles.OuterRolePrefixes,
		roles.InnerExactRoles, roles.InnerRolePrefixes,
	), nil
}

func exitWithError(msg string, err error) {
	log := logger.Get()
	if err != nil {
		log.Error(msg, zap.Error(err))
	} else {
		log.Error(msg)
	}
	os.Exit(1)
}
