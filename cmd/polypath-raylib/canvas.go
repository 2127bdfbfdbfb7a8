package main

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/polypath/pkg/geometry"
)

// labelFontSize matches the height of the raster labels
const labelFontSize = 13

// rlPainter draws replayed display list primitives with raylib. It must be
// used between rl.BeginDrawing and rl.EndDrawing.
type rlPainter struct{}

func (rlPainter) FillCircle(center geometry.Point, radius float64, col color.Color) {
	rl.DrawCircleV(vec(center), float32(radius), rlColor(col))
}

func (rlPainter) Line(from, to geometry.Point, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	rl.DrawLineEx(vec(from), vec(to), float32(width), rlColor(col))
}

// Text anchors at the baseline like the other canvases; raylib anchors at the top
func (rlPainter) Text(at geometry.Point, text string, col color.Color) {
	x := int32(math.Round(at.X))
	y := int32(math.Round(at.Y)) - labelFontSize
	rl.DrawText(text, x, y, labelFontSize, rlColor(col))
}

func vec(p geometry.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func rlColor(col color.Color) rl.Color {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
