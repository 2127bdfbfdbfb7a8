package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/polypath/pkg/geometry"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster implements surface.Canvas on an in-memory image
type Raster struct {
	img        *image.RGBA
	background color.Color
}

// NewRaster creates an image canvas of the given size
func NewRaster(width, height int, background color.Color) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
	r.Clear()
	return r
}

// Image returns the rendered image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear fills the image with the background color
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

// FillCircle fills a disc around center
func (r *Raster) FillCircle(center geometry.Point, radius float64, col color.Color) {
	if !finite(center) || math.IsNaN(radius) {
		return
	}
	fillCircle(r.img, center.X, center.Y, radius, toRGBA(col))
}

// Line draws a stroke of the given width between two points. The segment is
// clipped to the image first, so far off-screen endpoints cost nothing.
func (r *Raster) Line(from, to geometry.Point, width float64, col color.Color) {
	c := toRGBA(col)

	// Wide strokes may touch the image from just outside it
	margin := math.Max(width/2, 0) + 1
	bounds := r.img.Bounds()
	from, to, ok := clipSegment(from, to,
		float64(bounds.Min.X)-margin, float64(bounds.Min.Y)-margin,
		float64(bounds.Max.X)+margin, float64(bounds.Max.Y)+margin)
	if !ok {
		return
	}

	x1, y1 := int(math.Round(from.X)), int(math.Round(from.Y))
	x2, y2 := int(math.Round(to.X)), int(math.Round(to.Y))

	if width <= 1 {
		drawLine(r.img, x1, y1, x2, y2, c)
		return
	}

	// Stamp a disc at every step for wider strokes
	half := width / 2
	walkLine(x1, y1, x2, y2, func(x, y int) {
		fillCircle(r.img, float64(x), float64(y), half, c)
	})
}

// Text draws a label with its baseline starting at the given point
func (r *Raster) Text(at geometry.Point, text string, col color.Color) {
	// Labels anchored far outside the image would overflow the 26.6 dot
	b := r.img.Bounds()
	if !finite(at) || at.X < float64(b.Min.X-textMargin) || at.X > float64(b.Max.X+textMargin) ||
		at.Y < float64(b.Min.Y-textMargin) || at.Y > float64(b.Max.Y+textMargin) {
		return
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(at.X)), int(math.Round(at.Y))),
	}
	d.DrawString(text)
}

// Flush is a no-op, the image is updated in place
func (r *Raster) Flush() {}

// EncodePNG writes the image as PNG
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// textMargin is how far outside the image a label anchor may lie and still be drawn
const textMargin = 256

func finite(p geometry.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// clipSegment clips the segment a-b to the given box with the Liang-Barsky
// algorithm. It reports false when nothing of the segment lies inside or an
// endpoint is not finite.
func clipSegment(a, b geometry.Point, minX, minY, maxX, maxY float64) (geometry.Point, geometry.Point, bool) {
	if !finite(a) || !finite(b) {
		return a, b, false
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}

	from := geometry.NewPoint(a.X+t0*dx, a.Y+t0*dy)
	to := geometry.NewPoint(a.X+t1*dx, a.Y+t1*dy)
	return from, to, true
}

func toRGBA(col color.Color) color.RGBA {
	return color.RGBAModel.Convert(col).(color.RGBA)
}

// fillCircle fills all pixels whose center lies within radius of (cx, cy)
func fillCircle(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	bounds := img.Bounds()

	minX := int(math.Max(float64(bounds.Min.X), math.Floor(cx-radius)))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(cx+radius)))
	minY := int(math.Max(float64(bounds.Min.Y), math.Floor(cy-radius)))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(cy+radius)))

	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		dy := float64(y) - cy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()
	walkLine(x1, y1, x2, y2, func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.SetRGBA(x, y, col)
		}
	})
}

// walkLine visits every pixel of a Bresenham line including both ends
func walkLine(x1, y1, x2, y2 int, visit func(x, y int)) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		visit(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
