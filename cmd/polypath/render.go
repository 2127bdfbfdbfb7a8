package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/polypath/internal/logging"
	"github.com/philipparndt/polypath/pkg/config"
	"github.com/philipparndt/polypath/pkg/polygon"
	"github.com/philipparndt/polypath/pkg/surface"
	"github.com/philipparndt/polypath/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	renderOpts pathFlags
	renderOut  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the polygon and an optional path to a PNG file",
	Long: `Draw the points, the polygon boundary and, when --from and --to are given,
the highlighted path exactly as the window would show them.`,
	Example: `  polypath render -p "100,100 300,80 400,250 250,400 80,300" --from p1 --to p3 -o path.png`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := renderToFile(renderOut, cmd.OutOrStdout(), &renderOpts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	renderOpts.register(renderCmd, true)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "polygon.png", "output PNG file")
	rootCmd.AddCommand(renderCmd)
}

// renderToFile renders into memory and only creates path once the image is complete
func renderToFile(path string, w io.Writer, f *pathFlags) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var buf bytes.Buffer
	if err := runRender(&buf, w, cfg, f); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// runRender draws the polygon onto a raster and writes it as PNG to out.
// The path description, if any, is printed to w. Nothing is written to out
// when the input is invalid.
func runRender(out io.Writer, w io.Writer, cfg config.Config, f *pathFlags) error {
	set, err := buildPolygon(f)
	if err != nil {
		return err
	}

	var first, second int
	withPath := f.from != "" || f.to != ""
	if withPath {
		first, second, err = endpoints(f, set)
		if err != nil {
			return err
		}
	}

	raster := viewer.NewRaster(cfg.Surface.Width, cfg.Surface.Height, config.MustColor(cfg.Surface.Background))
	surf := surface.New(raster, surface.StyleFromConfig(cfg.Style), logging.WithComponent(mustLogger(), "render"))

	for _, p := range set.Points() {
		surf.AddPoint(p)
	}
	surf.CommitPolygon()

	if withPath {
		path := surf.HighlightPath(first, second, f.direction())
		fmt.Fprintf(w, "Path: %s\n", polygon.Describe(path))
	}

	return raster.EncodePNG(out)
}
