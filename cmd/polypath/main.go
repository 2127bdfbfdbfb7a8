package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/polypath/internal/app"
	"github.com/philipparndt/polypath/internal/logging"
	"github.com/philipparndt/polypath/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "polypath",
	Short: "Place points, draw a polygon and walk its boundary",
	Long: `polypath opens a drawing surface where up to 15 points can be placed by
clicking. Once the polygon is drawn, two of its points can be selected and
the boundary path between them is highlighted, walking clockwise or
counterclockwise.

The subcommands compute and render the same paths without a window.`,
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log := mustLogger()
		if err := app.Run(app.Options{ConfigPath: configPath, Log: log}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with surface size and colors")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func mustLogger() *slog.Logger {
	log, err := logging.New(os.Stderr, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return log
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
