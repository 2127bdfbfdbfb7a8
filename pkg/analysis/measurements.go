package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/polypath/pkg/geometry"
)

// EdgeInfo contains information about a boundary edge of the polygon
type EdgeInfo struct {
	From   int
	To     int
	Length float64
}

// PolygonStats contains various measurements of a point polygon
type PolygonStats struct {
	PointCount    int
	Bounds        geometry.Bounds
	Perimeter     float64
	Area          float64
	Winding       geometry.Winding
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Edges         []EdgeInfo
}

// AnalyzePolygon measures the closed polygon through points in order
func AnalyzePolygon(points []geometry.Point) *PolygonStats {
	result := &PolygonStats{
		PointCount: len(points),
		Bounds:     geometry.NewBounds(points),
		Perimeter:  geometry.Perimeter(points, true),
		Area:       math.Abs(geometry.SignedArea(points)),
		Winding:    geometry.Orientation(points),
		Edges:      make([]EdgeInfo, 0, len(points)),
	}

	if len(points) < 2 {
		return result
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := range points {
		j := (i + 1) % len(points)
		length := points[i].Distance(points[j])

		result.Edges = append(result.Edges, EdgeInfo{
			From:   i,
			To:     j,
			Length: length,
		})

		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(len(result.Edges))

	return result
}

// PathLength returns the length of the open polyline visiting path in order
func PathLength(points []geometry.Point, path []int) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += points[path[i-1]].Distance(points[path[i]])
	}
	return total
}

// FormatPoint formats a point for display
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// FormatLength formats a pixel length for display
func FormatLength(length float64) string {
	return fmt.Sprintf("%.1f px", length)
}
