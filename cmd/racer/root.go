package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"racer/internal/config"
	"racer/internal/game"
	"racer/internal/level"
	"racer/internal/log"
)

const envPrefix = "RACER"

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

// rootCmd launches the game window when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Track racing prototype",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.InitLogger(logLevel, logFormat)
		defer func() { _ = log.Logger.Sync() }()

		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		g, err := game.New(cfg, log.Logger)
		if err != nil {
			return err
		}
		g.Run()
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./.racer.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (zap levels: debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format (text or json)")

	rootCmd.Flags().Int32("window-width", 1280, "window width in pixels")
	rootCmd.Flags().Int32("window-height", 720, "window height in pixels")
	rootCmd.Flags().Int32("target-fps", 60, "frame rate cap")
	rootCmd.Flags().String("levels", "levels", "directory with level files")
	rootCmd.Flags().String("cars", "assets/cars", "directory with car definitions")
	rootCmd.Flags().String("parts", "assets/parts/trackparts.json", "track part library file")
	rootCmd.Flags().Bool("show-fps", false, "draw the FPS overlay")
	rootCmd.Flags().Bool("show-memalloc", false, "draw the heap overlay")

	flagKeys := map[string]string{
		"window-width":  "window.width",
		"window-height": "window.height",
		"target-fps":    "window.target_fps",
		"levels":        "paths.levels",
		"cars":          "paths.cars",
		"parts":         "paths.parts",
		"show-fps":      "debug.show_fps",
		"show-memalloc": "debug.show_memalloc",
	}
	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "could not bind flag %s: %v\n", flag, err)
		}
	}

	rootCmd.AddCommand(newGenMapCmd())
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".racer")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// bindFlags binds each cobra flag to its environment variable equivalent
// (dashes become underscores, e.g. --window-width to RACER_WINDOW_WIDTH).
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "could not bind env var %s: %v\n", f.Name, err)
			}
		}
	})
}

// newGenMapCmd exposes the enclosed-map generator: a bordered tile grid
// written to the levels directory, ready for the level selector.
func newGenMapCmd() *cobra.Command {
	var (
		width, height int
		wall, empty   int
		out           string
	)
	cmd := &cobra.Command{
		Use:   "genmap",
		Short: "Generate an enclosed rectangular map file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 3 || height < 3 {
				return fmt.Errorf("map must be at least 3x3, got %dx%d", width, height)
			}
			m := level.GenerateEnclosed(width, height, wall, empty)
			if err := level.Save(&m, out); err != nil {
				return err
			}
			fmt.Printf("Map saved to %s\n", out)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 20, "map width in tiles")
	cmd.Flags().IntVar(&height, "height", 15, "map height in tiles")
	cmd.Flags().IntVar(&wall, "wall", 1, "tile code for border cells")
	cmd.Flags().IntVar(&empty, "empty", 0, "tile code for interior cells")
	cmd.Flags().StringVar(&out, "out", "levels/enclosed_generated.json", "output path")
	return cmd
}
