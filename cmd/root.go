package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/mapwalk/internal/app"
	"github.com/philipparndt/mapwalk/internal/config"
	"github.com/philipparndt/mapwalk/internal/logging"
	"github.com/philipparndt/mapwalk/version"
)

var (
	configFile string
	assetsDir  string
	debug      bool
	fullscreen bool
	watch      bool
)

var rootCmd = &cobra.Command{
	Use:   "mapwalk",
	Short: "Walk over a map and measure distances",
	Long: `mapwalk is an interactive map viewer with two modes.
In walking mode the map scrolls under a pinned viewpoint (W A S D) and the
distance walked is counted. In measuring mode clicks place and remove
waypoints and the distance along them is shown.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runViewer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "", "texture directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload textures when they change on disk")
}

// loadConfig loads the configuration and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("assets") {
		cfg.Assets.Dir = assetsDir
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debug
	}
	if f := cmd.Flags().Lookup("fullscreen"); f != nil && f.Changed {
		cfg.Window.Fullscreen = fullscreen
	}
	if f := cmd.Flags().Lookup("watch"); f != nil && f.Changed {
		cfg.Watch = watch
	}
	return cfg, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting mapwalk", zap.String("version", version.GetFullVersion()), zap.String("assets", cfg.Assets.Dir))
	return app.Run(cfg, logger)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
