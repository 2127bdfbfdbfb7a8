package app

import (
	"github.com/philipparndt/polypath/pkg/polygon"
)

// Phase is the workflow stage of the widget
type Phase int

const (
	// PhaseReady is the initial stage and the stage after Clear
	PhaseReady Phase = iota
	// PhaseCreating is entered by the create action; points are being placed
	PhaseCreating
	// PhaseCommitted is entered once the polygon is drawn
	PhaseCommitted
)

func (p Phase) String() string {
	switch p {
	case PhaseCreating:
		return "creating"
	case PhaseCommitted:
		return "committed"
	default:
		return "ready"
	}
}

// Action is one of the user triggered controls
type Action int

const (
	ActionCreate Action = iota
	ActionDraw
	ActionSelectFirst
	ActionSelectSecond
	ActionToggleDirection
	ActionClear
)

// Actions lists every action in panel order
var Actions = []Action{
	ActionCreate,
	ActionDraw,
	ActionSelectFirst,
	ActionSelectSecond,
	ActionToggleDirection,
	ActionClear,
}

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "Create points"
	case ActionDraw:
		return "Draw polygon"
	case ActionSelectFirst:
		return "First point"
	case ActionSelectSecond:
		return "Second point"
	case ActionToggleDirection:
		return "Toggle order"
	case ActionClear:
		return "Clear"
	default:
		return "unknown"
	}
}

// Mode is the armed endpoint selection; the next surface click on a point
// assigns that endpoint. At most one mode is armed.
type Mode int

const (
	ModeNone Mode = iota
	ModeFirst
	ModeSecond
)

// CountState classifies the point count for display
type CountState int

const (
	// CountNeutral is shown before any point was placed
	CountNeutral CountState = iota
	CountValid
	CountInvalid
)

// noEndpoint marks an endpoint that has not been chosen
const noEndpoint = -1

// SelectionState holds the chosen endpoints and direction
type SelectionState struct {
	first     int
	second    int
	direction polygon.Direction
	mode      Mode
}

func newSelectionState() SelectionState {
	return SelectionState{
		first:     noEndpoint,
		second:    noEndpoint,
		direction: polygon.Clockwise,
		mode:      ModeNone,
	}
}

// complete reports whether both endpoints are assigned
func (s SelectionState) complete() bool {
	return s.first != noEndpoint && s.second != noEndpoint
}

// Status is the derived text shown in the control panel
type Status struct {
	Count         int
	CountText     string
	CountState    CountState
	FirstText     string
	SecondText    string
	DirectionText string
	PathText      string
	LengthText    string
	InfoText      string
	Mode          Mode
}

// DefaultStatus returns the status of a freshly cleared widget
func DefaultStatus() Status {
	return Status{
		CountText:     countText(0),
		CountState:    CountNeutral,
		FirstText:     endpointText("First point", noEndpoint),
		SecondText:    endpointText("Second point", noEndpoint),
		DirectionText: directionText(polygon.Clockwise),
		PathText:      pathPrefix,
		LengthText:    lengthPrefix + " -",
		Mode:          ModeNone,
	}
}
