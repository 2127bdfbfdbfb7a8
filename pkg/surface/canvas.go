package surface

import (
	"image/color"

	"github.com/philipparndt/polypath/pkg/config"
	"github.com/philipparndt/polypath/pkg/geometry"
)

// Canvas is the 2D drawing target a Surface renders onto
type Canvas interface {
	// Clear removes everything drawn so far
	Clear()
	FillCircle(center geometry.Point, radius float64, col color.Color)
	Line(from, to geometry.Point, width float64, col color.Color)
	Text(at geometry.Point, text string, col color.Color)
	// Flush presents what has been drawn since the last Clear
	Flush()
}

// Style holds the resolved drawing style
type Style struct {
	PointRadius    float64
	PointColor     color.Color
	LabelColor     color.Color
	BoundaryColor  color.Color
	BoundaryWidth  float64
	HighlightColor color.Color
	HighlightWidth float64
}

// LabelOffset is where a point label is placed relative to the point
var LabelOffset = geometry.NewPoint(8, -8)

// StyleFromConfig resolves a validated style configuration
func StyleFromConfig(c config.StyleConfig) Style {
	return Style{
		PointRadius:    c.PointRadius,
		PointColor:     config.MustColor(c.PointColor),
		LabelColor:     config.MustColor(c.LabelColor),
		BoundaryColor:  config.MustColor(c.BoundaryColor),
		BoundaryWidth:  c.BoundaryWidth,
		HighlightColor: config.MustColor(c.HighlightColor),
		HighlightWidth: c.HighlightWidth,
	}
}

// DefaultStyle returns the style of the default configuration
func DefaultStyle() Style {
	return StyleFromConfig(config.Default().Style)
}
