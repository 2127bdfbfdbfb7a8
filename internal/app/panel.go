package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ControlPanel shows the action buttons and status labels. The widgets are
// passive: they only render what the controller reports.
type ControlPanel struct {
	controller  *Controller
	buttons     map[Action]*widget.Button
	countLabel  *widget.Label
	firstLabel  *widget.Label
	secondLabel *widget.Label
	pathLabel   *widget.Label
	lengthLabel *widget.Label
	infoLabel   *widget.Label
	content     fyne.CanvasObject
}

// NewControlPanel creates the panel and binds it to controller
func NewControlPanel(controller *Controller) *ControlPanel {
	p := &ControlPanel{
		controller:  controller,
		buttons:     make(map[Action]*widget.Button),
		countLabel:  widget.NewLabel(""),
		firstLabel:  widget.NewLabel(""),
		secondLabel: widget.NewLabel(""),
		pathLabel:   widget.NewLabel(""),
		lengthLabel: widget.NewLabel(""),
		infoLabel:   widget.NewLabel(""),
	}

	for _, action := range Actions {
		p.buttons[action] = widget.NewButton(action.String(), func() {
			controller.Trigger(action)
		})
	}

	p.pathLabel.Wrapping = fyne.TextWrapWord
	p.pathLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click on the surface to place 3 to 15 points\n" +
			"• Draw the polygon\n" +
			"• Pick the first and second point, then click them\n" +
			"• Toggle the order to walk the other way",
	)
	instructions.Wrapping = fyne.TextWrapWord

	p.content = container.NewVBox(
		p.buttons[ActionCreate],
		p.countLabel,
		p.buttons[ActionDraw],
		widget.NewSeparator(),
		p.buttons[ActionSelectFirst],
		p.firstLabel,
		p.buttons[ActionSelectSecond],
		p.secondLabel,
		p.buttons[ActionToggleDirection],
		widget.NewSeparator(),
		p.pathLabel,
		p.lengthLabel,
		widget.NewSeparator(),
		widget.NewLabel("Polygon:"),
		p.infoLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		p.buttons[ActionClear],
	)

	controller.OnChange(p.render)
	p.render(controller.Status())

	return p
}

// Content returns the panel's canvas object
func (p *ControlPanel) Content() fyne.CanvasObject {
	return p.content
}

// Button returns the button bound to action
func (p *ControlPanel) Button(action Action) *widget.Button {
	return p.buttons[action]
}

func (p *ControlPanel) render(status Status) {
	for action, button := range p.buttons {
		if p.controller.Enabled(action) {
			button.Enable()
		} else {
			button.Disable()
		}
		button.Importance = widget.MediumImportance
	}

	switch status.Mode {
	case ModeFirst:
		p.buttons[ActionSelectFirst].Importance = widget.HighImportance
	case ModeSecond:
		p.buttons[ActionSelectSecond].Importance = widget.HighImportance
	}

	toggle := p.buttons[ActionToggleDirection]
	toggle.SetText(status.DirectionText)

	switch status.CountState {
	case CountValid:
		p.countLabel.Importance = widget.SuccessImportance
	case CountInvalid:
		p.countLabel.Importance = widget.DangerImportance
	default:
		p.countLabel.Importance = widget.MediumImportance
	}
	p.countLabel.SetText(status.CountText)

	p.firstLabel.SetText(status.FirstText)
	p.secondLabel.SetText(status.SecondText)
	p.pathLabel.SetText(status.PathText)
	p.lengthLabel.SetText(status.LengthText)
	p.infoLabel.SetText(status.InfoText)

	for _, button := range p.buttons {
		button.Refresh()
	}
}
