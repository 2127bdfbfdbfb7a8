package app

import (
	"fmt"
	"unicode"
)

// KeyBinding maps a typed character to an action in keyboard driven front ends
type KeyBinding struct {
	Key    rune
	Action Action
}

// KeyBindings lists the keyboard shortcuts in panel order
var KeyBindings = []KeyBinding{
	{'c', ActionCreate},
	{'d', ActionDraw},
	{'1', ActionSelectFirst},
	{'2', ActionSelectSecond},
	{'t', ActionToggleDirection},
	{'x', ActionClear},
}

// ActionForKey returns the action bound to r, ignoring case
func ActionForKey(r rune) (Action, bool) {
	r = unicode.ToLower(r)
	for _, b := range KeyBindings {
		if b.Key == r {
			return b.Action, true
		}
	}
	return 0, false
}

// KeyHelp returns one line per key binding. Disabled actions are marked and
// the armed endpoint mode is flagged.
func (c *Controller) KeyHelp() []string {
	lines := make([]string, 0, len(KeyBindings))
	for _, b := range KeyBindings {
		label := b.Action.String()
		if b.Action == ActionToggleDirection {
			label = c.status.DirectionText
		}

		switch {
		case !c.Enabled(b.Action):
			label += " (disabled)"
		case b.Action == ActionSelectFirst && c.status.Mode == ModeFirst,
			b.Action == ActionSelectSecond && c.status.Mode == ModeSecond:
			label += " (armed)"
		}
		lines = append(lines, fmt.Sprintf("[%c] %s", unicode.ToUpper(b.Key), label))
	}
	return lines
}

// StatusLines returns the status texts in panel order, skipping empty ones
func (s Status) StatusLines() []string {
	lines := make([]string, 0, 6)
	for _, text := range []string{s.CountText, s.FirstText, s.SecondText, s.PathText, s.LengthText, s.InfoText} {
		if text != "" {
			lines = append(lines, text)
		}
	}
	return lines
}
