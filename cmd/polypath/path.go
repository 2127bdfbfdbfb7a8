package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/polypath/pkg/analysis"
	"github.com/philipparndt/polypath/pkg/polygon"
	"github.com/spf13/cobra"
)

var pathOpts pathFlags

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the boundary path between two points",
	Long:  "Walk the polygon boundary from one point to another in the chosen direction and print the visited points.",
	Example: `  polypath path --points "100,100 300,80 400,250 250,400 80,300" --from p1 --to p3
  polypath path -p "0,0 10,0 10,10 0,10" --from 1 --to 3 --counterclockwise`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPath(cmd.OutOrStdout(), &pathOpts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	pathOpts.register(pathCmd, true)
	pathCmd.MarkFlagRequired("from")
	pathCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(pathCmd)
}

func runPath(w io.Writer, f *pathFlags) error {
	set, err := buildPolygon(f)
	if err != nil {
		return err
	}

	first, second, err := endpoints(f, set)
	if err != nil {
		return err
	}

	path := polygon.Walk(first, second, set.Len(), f.direction())

	fmt.Fprintf(w, "Path: %s\n", polygon.Describe(path))
	fmt.Fprintf(w, "Direction: %s\n", f.direction())
	fmt.Fprintf(w, "Length: %s\n", analysis.FormatLength(analysis.PathLength(set.Points(), path)))
	return nil
}
