package app

import (
	"log/slog"

	"github.com/philipparndt/polypath/internal/logging"
	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/surface"
)

// Session wires a drawing surface to its controller. Clicks on the canvas
// go to both; the surface only accepts them before commit and the
// controller only after.
type Session struct {
	Surface    *surface.Surface
	Controller *Controller
}

// NewSession creates a surface drawing on canvas and the controller driving it
func NewSession(canvas surface.Canvas, style surface.Style, log *slog.Logger) *Session {
	if log == nil {
		log = logging.Discard()
	}

	surf := surface.New(canvas, style, logging.WithComponent(log, "surface"))
	controller := NewController(surf, logging.WithComponent(log, "controller"))
	surf.OnPointsChanged(controller.PointsChanged)

	return &Session{
		Surface:    surf,
		Controller: controller,
	}
}

// Click handles a pointer click at p in surface coordinates
func (s *Session) Click(p geometry.Point) {
	s.Surface.AddPoint(p)
	s.Controller.SurfaceClick(p)
}
