package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/polypath/pkg/analysis"
	"github.com/philipparndt/polypath/pkg/polygon"
	"github.com/spf13/cobra"
)

var infoOpts pathFlags

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display measurements of a polygon",
	Long:  "Show the point labels, perimeter, area, winding and edge statistics of the polygon through the given points.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInfo(cmd.OutOrStdout(), &infoOpts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	infoOpts.register(infoCmd, false)
	rootCmd.AddCommand(infoCmd)
}

func runInfo(w io.Writer, f *pathFlags) error {
	set, err := buildPolygon(f)
	if err != nil {
		return err
	}

	points := set.Points()
	result := analysis.AnalyzePolygon(points)

	fmt.Fprintln(w, "Polygon Information")
	fmt.Fprintln(w, "===================")
	fmt.Fprintf(w, "Points: %d\n", result.PointCount)
	for i, p := range points {
		fmt.Fprintf(w, "  %-4s %s\n", polygon.Label(i), analysis.FormatPoint(p))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Measurements:")
	fmt.Fprintf(w, "  Perimeter: %s\n", analysis.FormatLength(result.Perimeter))
	fmt.Fprintf(w, "  Area: %.1f square px\n", result.Area)
	fmt.Fprintf(w, "  Winding: %s\n\n", result.Winding)

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatPoint(result.Bounds.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatPoint(result.Bounds.Max))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatPoint(result.Bounds.Center()))

	fmt.Fprintln(w, "Edge Lengths:")
	fmt.Fprintf(w, "  Minimum: %s\n", analysis.FormatLength(result.MinEdgeLength))
	fmt.Fprintf(w, "  Maximum: %s\n", analysis.FormatLength(result.MaxEdgeLength))
	fmt.Fprintf(w, "  Average: %s\n", analysis.FormatLength(result.AvgEdgeLength))
	return nil
}
