// Package surface implements the drawing surface that owns the user placed
// points, the committed polygon and the highlighted path.
package surface

import (
	"log/slog"

	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/polygon"
)

// Surface owns the point set and renders it onto a Canvas
type Surface struct {
	set       *polygon.Set
	canvas    Canvas
	style     Style
	highlight []int
	listeners []func(count int)
	log       *slog.Logger
}

// New creates an empty surface drawing onto canvas
func New(canvas Canvas, style Style, log *slog.Logger) *Surface {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Surface{
		set:    polygon.NewSet(),
		canvas: canvas,
		style:  style,
		log:    log,
	}
	s.redraw()
	return s
}

// OnPointsChanged registers a callback invoked with the new point count
// after every successful AddPoint
func (s *Surface) OnPointsChanged(callback func(count int)) {
	s.listeners = append(s.listeners, callback)
}

// Points returns the recorded points in insertion order
func (s *Surface) Points() []geometry.Point {
	return s.set.Points()
}

// Len returns the number of recorded points
func (s *Surface) Len() int {
	return s.set.Len()
}

// Committed reports whether the polygon has been drawn
func (s *Surface) Committed() bool {
	return s.set.Committed()
}

// Highlight returns the currently highlighted path
func (s *Surface) Highlight() []int {
	return s.highlight
}

// HitTest returns the index of the first point within the hit radius of p
func (s *Surface) HitTest(p geometry.Point) (int, bool) {
	return s.set.HitTest(p)
}

// AddPoint records a point at p. It is a no-op once the polygon is committed
// or the set is full.
func (s *Surface) AddPoint(p geometry.Point) (int, bool) {
	count, ok := s.set.Add(p)
	if !ok {
		return count, false
	}

	s.log.Debug("point added", "label", polygon.Label(count-1), "point", p)
	s.redraw()

	for _, listener := range s.listeners {
		listener(count)
	}
	return count, true
}

// CommitPolygon draws the closed boundary through the points in insertion order
func (s *Surface) CommitPolygon() bool {
	if !s.set.Commit() {
		return false
	}

	s.log.Debug("polygon committed", "points", s.set.Len())
	s.redraw()
	return true
}

// HighlightPath draws the path from first to second walking in dir and
// returns the visited indices. It is a no-op before commit.
func (s *Surface) HighlightPath(first, second int, dir polygon.Direction) []int {
	if !s.set.Committed() {
		return nil
	}

	path := polygon.Walk(first, second, s.set.Len(), dir)
	if path == nil {
		return nil
	}

	s.highlight = path
	s.log.Debug("path highlighted", "path", polygon.Describe(path), "direction", dir)
	s.redraw()
	return path
}

// Clear removes all points, the boundary and the highlight
func (s *Surface) Clear() {
	s.set.Clear()
	s.highlight = nil
	s.log.Debug("surface cleared")
	s.redraw()
}

// SetStyle changes the drawing style and redraws
func (s *Surface) SetStyle(style Style) {
	s.style = style
	s.redraw()
}

func (s *Surface) redraw() {
	s.canvas.Clear()

	points := s.set.Points()

	if s.set.Committed() {
		for i := range points {
			s.canvas.Line(points[i], points[(i+1)%len(points)], s.style.BoundaryWidth, s.style.BoundaryColor)
		}
	}

	if len(s.highlight) > 1 {
		for i := 1; i < len(s.highlight); i++ {
			from := points[s.highlight[i-1]]
			to := points[s.highlight[i]]
			s.canvas.Line(from, to, s.style.HighlightWidth, s.style.HighlightColor)
		}
	}

	for i, p := range points {
		s.canvas.FillCircle(p, s.style.PointRadius, s.style.PointColor)
		s.canvas.Text(p.Add(LabelOffset), polygon.Label(i), s.style.LabelColor)
	}

	s.canvas.Flush()
}
