package app

import (
	"image/color"
	"testing"

	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/surface"
)

// frameCounter is a canvas that only counts highlight strokes of the last frame
type frameCounter struct {
	highlightWidth float64
	pending        int
	highlights     int
}

func (f *frameCounter) Clear() { f.pending = 0 }

func (f *frameCounter) FillCircle(geometry.Point, float64, color.Color) {}

func (f *frameCounter) Line(_, _ geometry.Point, width float64, _ color.Color) {
	if width == f.highlightWidth {
		f.pending++
	}
}

func (f *frameCounter) Text(geometry.Point, string, color.Color) {}

func (f *frameCounter) Flush() { f.highlights = f.pending }

func newTestSession(t *testing.T) (*Session, *frameCounter) {
	t.Helper()
	style := surface.DefaultStyle()
	canvas := &frameCounter{highlightWidth: style.HighlightWidth}
	return NewSession(canvas, style, nil), canvas
}

// ring returns n points spaced well beyond the hit radius
func ring(n int) []geometry.Point {
	points := make([]geometry.Point, n)
	for i := range points {
		points[i] = geometry.NewPoint(float64(40+i*30), float64(100+(i%2)*60))
	}
	return points
}

func place(s *Session, points []geometry.Point) {
	for _, p := range points {
		s.Click(p)
	}
}

// pick arms the given mode and clicks the point
func pick(s *Session, action Action, p geometry.Point) {
	s.Controller.Trigger(action)
	s.Click(p.Add(geometry.NewPoint(3, -2)))
}
