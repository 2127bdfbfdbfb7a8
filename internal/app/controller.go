package app

import (
	"log/slog"

	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/polygon"
)

// PointSurface is the drawing surface the controller drives
type PointSurface interface {
	Clear()
	CommitPolygon() bool
	HighlightPath(first, second int, dir polygon.Direction) []int
	HitTest(p geometry.Point) (int, bool)
	Committed() bool
	Points() []geometry.Point
}

// Controller turns control panel actions and surface clicks into surface
// operations and keeps the derived status text. It never draws itself.
type Controller struct {
	surface   PointSurface
	phase     Phase
	created   bool
	count     int
	selection SelectionState
	status    Status
	listeners []func(Status)
	log       *slog.Logger
}

// NewController creates a controller in the ready phase
func NewController(surface PointSurface, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		surface:   surface,
		phase:     PhaseReady,
		selection: newSelectionState(),
		status:    DefaultStatus(),
		log:       log,
	}
}

// OnChange registers a callback invoked after every state change
func (c *Controller) OnChange(callback func(Status)) {
	c.listeners = append(c.listeners, callback)
}

// Status returns the current status
func (c *Controller) Status() Status {
	return c.status
}

// Phase returns the workflow stage
func (c *Controller) Phase() Phase {
	return c.phase
}

// Direction returns the chosen walking direction
func (c *Controller) Direction() polygon.Direction {
	return c.selection.direction
}

// Endpoints returns the chosen endpoint indices; -1 means not chosen
func (c *Controller) Endpoints() (first, second int) {
	return c.selection.first, c.selection.second
}

// Enabled reports whether action is currently available
func (c *Controller) Enabled(action Action) bool {
	switch action {
	case ActionCreate:
		return !c.created
	case ActionDraw:
		return c.phase != PhaseCommitted && polygon.ValidCount(c.count)
	case ActionSelectFirst, ActionSelectSecond, ActionToggleDirection:
		return c.phase == PhaseCommitted
	case ActionClear:
		return true
	default:
		return false
	}
}

// Trigger runs the handler bound to action
func (c *Controller) Trigger(action Action) {
	switch action {
	case ActionCreate:
		c.StartCreation()
	case ActionDraw:
		c.DrawPolygon()
	case ActionSelectFirst:
		c.SelectFirstMode()
	case ActionSelectSecond:
		c.SelectSecondMode()
	case ActionToggleDirection:
		c.ToggleDirection()
	case ActionClear:
		c.Clear()
	}
}

// StartCreation clears the surface and starts a creation session.
// Only one session is allowed per clear cycle.
func (c *Controller) StartCreation() {
	if !c.Enabled(ActionCreate) {
		return
	}

	c.surface.Clear()
	c.phase = PhaseCreating
	c.created = true
	c.count = 0
	c.selection = newSelectionState()
	c.status = DefaultStatus()

	c.log.Debug("creation started")
	c.notify()
}

// PointsChanged updates the point count shown and the draw action
func (c *Controller) PointsChanged(count int) {
	c.count = count
	c.status.Count = count
	c.status.CountText = countText(count)
	c.status.CountState = countState(count)

	c.notify()
}

// DrawPolygon commits the polygon and enables endpoint selection
func (c *Controller) DrawPolygon() {
	if !c.Enabled(ActionDraw) {
		return
	}
	if !c.surface.CommitPolygon() {
		return
	}

	c.phase = PhaseCommitted
	c.status.InfoText = infoText(c.surface.Points())

	c.log.Debug("polygon drawn", "points", c.count)
	c.notify()
}

// SelectFirstMode arms the first endpoint. Arming replaces any armed mode.
func (c *Controller) SelectFirstMode() {
	c.arm(ModeFirst, ActionSelectFirst)
}

// SelectSecondMode arms the second endpoint. Arming replaces any armed mode.
func (c *Controller) SelectSecondMode() {
	c.arm(ModeSecond, ActionSelectSecond)
}

func (c *Controller) arm(mode Mode, action Action) {
	if !c.Enabled(action) {
		return
	}

	c.selection.mode = mode
	c.status.Mode = mode
	c.notify()
}

// ToggleDirection flips the walking direction and redraws the path when
// both endpoints are chosen
func (c *Controller) ToggleDirection() {
	if !c.Enabled(ActionToggleDirection) {
		return
	}

	c.selection.direction = c.selection.direction.Toggle()
	c.status.DirectionText = directionText(c.selection.direction)

	if c.selection.complete() {
		c.highlight()
	}

	c.log.Debug("direction toggled", "direction", c.selection.direction)
	c.notify()
}

// SurfaceClick assigns the armed endpoint to the point under p
func (c *Controller) SurfaceClick(p geometry.Point) {
	if !c.surface.Committed() {
		return
	}

	index, ok := c.surface.HitTest(p)
	if !ok {
		return
	}

	switch c.selection.mode {
	case ModeFirst:
		c.selection.first = index
		c.status.FirstText = endpointText("First point", index)
	case ModeSecond:
		c.selection.second = index
		c.status.SecondText = endpointText("Second point", index)
	default:
		return
	}

	c.log.Debug("endpoint selected", "mode", c.selection.mode, "label", polygon.Label(index))
	c.selection.mode = ModeNone
	c.status.Mode = ModeNone

	if c.selection.complete() {
		c.highlight()
	}
	c.notify()
}

// Clear empties the surface and resets every control and text
func (c *Controller) Clear() {
	c.surface.Clear()
	c.phase = PhaseReady
	c.created = false
	c.count = 0
	c.selection = newSelectionState()
	c.status = DefaultStatus()

	c.log.Debug("cleared")
	c.notify()
}

func (c *Controller) highlight() {
	first, second, dir := c.selection.first, c.selection.second, c.selection.direction

	path := c.surface.HighlightPath(first, second, dir)
	if path == nil {
		return
	}

	points := c.surface.Points()
	c.status.PathText = PathText(first, second, len(points), dir)
	c.status.LengthText = lengthText(points, path)
}

func (c *Controller) notify() {
	for _, listener := range c.listeners {
		listener(c.status)
	}
}
