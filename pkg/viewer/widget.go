package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/polypath/pkg/geometry"
)

// LabelTextSize is the font size of point labels
const LabelTextSize = 12

// CanvasWidget is a fixed size drawing area that implements surface.Canvas
// with Fyne canvas objects and reports taps in local coordinates
type CanvasWidget struct {
	widget.BaseWidget
	size       fyne.Size
	background *canvas.Rectangle
	pending    []fyne.CanvasObject
	objects    []fyne.CanvasObject
	onTapped   func(point geometry.Point)
}

// NewCanvasWidget creates a drawing area of the given pixel size
func NewCanvasWidget(width, height int, background color.Color) *CanvasWidget {
	w := &CanvasWidget{
		size:       fyne.NewSize(float32(width), float32(height)),
		background: canvas.NewRectangle(background),
	}
	w.ExtendBaseWidget(w)
	return w
}

// SetOnTapped sets the callback for taps on the drawing area
func (w *CanvasWidget) SetOnTapped(callback func(point geometry.Point)) {
	w.onTapped = callback
}

// SetBackground changes the background color
func (w *CanvasWidget) SetBackground(col color.Color) {
	w.background.FillColor = col
	w.background.Refresh()
}

// Objects returns the primitives presented by the last Flush
func (w *CanvasWidget) Objects() []fyne.CanvasObject {
	return w.objects
}

// Clear starts a new frame
func (w *CanvasWidget) Clear() {
	w.pending = make([]fyne.CanvasObject, 0)
}

// FillCircle adds a filled circle to the frame
func (w *CanvasWidget) FillCircle(center geometry.Point, radius float64, col color.Color) {
	circle := canvas.NewCircle(col)
	size := float32(radius * 2)
	circle.Resize(fyne.NewSize(size, size))
	circle.Move(fyne.NewPos(float32(center.X-radius), float32(center.Y-radius)))

	w.pending = append(w.pending, circle)
}

// Line adds a straight stroke to the frame
func (w *CanvasWidget) Line(from, to geometry.Point, width float64, col color.Color) {
	line := canvas.NewLine(col)
	line.StrokeWidth = float32(width)
	line.Position1 = fyne.NewPos(float32(from.X), float32(from.Y))
	line.Position2 = fyne.NewPos(float32(to.X), float32(to.Y))

	w.pending = append(w.pending, line)
}

// Text adds a label with its baseline at the given point
func (w *CanvasWidget) Text(at geometry.Point, text string, col color.Color) {
	label := canvas.NewText(text, col)
	label.TextSize = LabelTextSize
	// canvas.Text is positioned by its top left corner
	label.Move(fyne.NewPos(float32(at.X), float32(at.Y)-LabelTextSize))

	w.pending = append(w.pending, label)
}

// Flush presents the frame
func (w *CanvasWidget) Flush() {
	w.objects = w.pending
	w.pending = nil
	w.Refresh()
}

// Tapped handles tap events on the drawing area
func (w *CanvasWidget) Tapped(event *fyne.PointEvent) {
	if w.onTapped == nil {
		return
	}
	w.onTapped(geometry.NewPoint(float64(event.Position.X), float64(event.Position.Y)))
}

// CreateRenderer creates the renderer for the widget
func (w *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	return &canvasWidgetRenderer{widget: w}
}

// canvasWidgetRenderer implements fyne.WidgetRenderer
type canvasWidgetRenderer struct {
	widget *CanvasWidget
}

func (r *canvasWidgetRenderer) Layout(size fyne.Size) {
	r.widget.background.Resize(size)
}

func (r *canvasWidgetRenderer) MinSize() fyne.Size {
	return r.widget.size
}

func (r *canvasWidgetRenderer) Refresh() {
	canvas.Refresh(r.widget)
}

func (r *canvasWidgetRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.widget.objects)+1)
	objects = append(objects, r.widget.background)
	return append(objects, r.widget.objects...)
}

func (r *canvasWidgetRenderer) Destroy() {}
