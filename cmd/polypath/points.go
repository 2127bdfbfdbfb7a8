package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/polygon"
	"github.com/spf13/cobra"
)

var errBadPoint = errors.New("invalid point")

// pathFlags are shared by the commands that take a polygon and a path
type pathFlags struct {
	points           string
	from             string
	to               string
	counterClockwise bool
}

func (f *pathFlags) register(cmd *cobra.Command, needPath bool) {
	cmd.Flags().StringVarP(&f.points, "points", "p", "", `points in order, e.g. "100,100 300,80 400,250"`)
	cmd.MarkFlagRequired("points")

	if !needPath {
		return
	}
	cmd.Flags().StringVar(&f.from, "from", "", "first endpoint label, e.g. p1 or 1")
	cmd.Flags().StringVar(&f.to, "to", "", "second endpoint label, e.g. p4 or 4")
	cmd.Flags().BoolVar(&f.counterClockwise, "counterclockwise", false, "walk counterclockwise instead of clockwise")
}

func (f *pathFlags) direction() polygon.Direction {
	if f.counterClockwise {
		return polygon.CounterClockwise
	}
	return polygon.Clockwise
}

// parsePoints parses "x,y x,y ..." with whitespace or semicolons between points
func parsePoints(s string) ([]geometry.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ';'
	})

	points := make([]geometry.Point, 0, len(fields))
	for _, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("%q: %w", field, errBadPoint)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", field, errBadPoint)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", field, errBadPoint)
		}
		if !finite(x) || !finite(y) {
			return nil, fmt.Errorf("%q: %w", field, errBadPoint)
		}
		points = append(points, geometry.NewPoint(x, y))
	}
	return points, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// parseLabel turns p3 or 3 into index 2
func parseLabel(s string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "p"))
	if err != nil {
		return 0, fmt.Errorf("invalid point label %q", s)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("point label %q out of range p1..p%d", s, count)
	}
	return n - 1, nil
}

// buildPolygon parses the points flag into a committed set
func buildPolygon(f *pathFlags) (*polygon.Set, error) {
	points, err := parsePoints(f.points)
	if err != nil {
		return nil, err
	}
	return polygon.FromPoints(points)
}

// endpoints resolves the from/to flags against set
func endpoints(f *pathFlags, set *polygon.Set) (int, int, error) {
	first, err := parseLabel(f.from, set.Len())
	if err != nil {
		return 0, 0, fmt.Errorf("--from: %w", err)
	}
	second, err := parseLabel(f.to, set.Len())
	if err != nil {
		return 0, 0, fmt.Errorf("--to: %w", err)
	}
	return first, second, nil
}
