package viewer

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasWidgetTapped(t *testing.T) {
	test.NewTempApp(t)

	w := NewCanvasWidget(200, 100, color.Gray{Y: 0x99})

	var tapped []geometry.Point
	w.SetOnTapped(func(p geometry.Point) { tapped = append(tapped, p) })

	test.TapAt(w, fyne.NewPos(12, 34))

	require.Len(t, tapped, 1)
	assert.Equal(t, geometry.NewPoint(12, 34), tapped[0])
}

func TestCanvasWidgetTappedWithoutCallback(t *testing.T) {
	test.NewTempApp(t)

	w := NewCanvasWidget(200, 100, color.Gray{Y: 0x99})
	assert.NotPanics(t, func() { test.TapAt(w, fyne.NewPos(1, 1)) })
}

func TestCanvasWidgetFrame(t *testing.T) {
	test.NewTempApp(t)

	w := NewCanvasWidget(200, 100, color.Gray{Y: 0x99})
	assert.Equal(t, fyne.NewSize(200, 100), w.MinSize())

	w.Clear()
	w.FillCircle(geometry.NewPoint(50, 50), 5, color.White)
	w.Line(geometry.NewPoint(0, 0), geometry.NewPoint(10, 10), 2, color.Black)
	w.Text(geometry.NewPoint(58, 42), "p1", color.Black)

	// Nothing is presented before Flush
	assert.Empty(t, w.Objects())

	w.Flush()
	objects := w.Objects()
	require.Len(t, objects, 3)

	circle, ok := objects[0].(*canvas.Circle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(45, 45), circle.Position())
	assert.Equal(t, fyne.NewSize(10, 10), circle.Size())

	line, ok := objects[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, float32(2), line.StrokeWidth)

	text, ok := objects[2].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "p1", text.Text)

	w.Clear()
	w.Flush()
	assert.Empty(t, w.Objects())
}
