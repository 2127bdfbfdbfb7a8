package app

import (
	"fmt"
	"strings"

	"github.com/philipparndt/polypath/pkg/analysis"
	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/polygon"
)

const (
	pathPrefix   = "Path:"
	lengthPrefix = "Length:"
)

func countText(count int) string {
	return fmt.Sprintf("Created %d points", count)
}

func countState(count int) CountState {
	if polygon.ValidCount(count) {
		return CountValid
	}
	return CountInvalid
}

func endpointText(name string, index int) string {
	if index == noEndpoint {
		return name + ": -"
	}
	return name + ": " + polygon.Label(index)
}

func directionText(dir polygon.Direction) string {
	if dir == polygon.CounterClockwise {
		return "Counterclockwise order"
	}
	return "Clockwise order"
}

// PathText renders the walk from first to second in dir over n points
func PathText(first, second, n int, dir polygon.Direction) string {
	return pathPrefix + " " + polygon.Describe(polygon.Walk(first, second, n, dir))
}

func lengthText(points []geometry.Point, path []int) string {
	return lengthPrefix + " " + analysis.FormatLength(analysis.PathLength(points, path))
}

func infoText(points []geometry.Point) string {
	stats := analysis.AnalyzePolygon(points)

	var b strings.Builder
	fmt.Fprintf(&b, "Points: %d\n", stats.PointCount)
	fmt.Fprintf(&b, "Perimeter: %s\n", analysis.FormatLength(stats.Perimeter))
	fmt.Fprintf(&b, "Area: %.1f px²\n", stats.Area)
	fmt.Fprintf(&b, "Winding: %s", stats.Winding)
	return b.String()
}
