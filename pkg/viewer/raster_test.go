package viewer

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"
	"time"

	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	grey = color.RGBA{0x99, 0x99, 0x99, 0xff}
	blue = color.RGBA{0, 0, 0xff, 0xff}
)

func TestRasterClear(t *testing.T) {
	r := NewRaster(20, 10, grey)
	r.FillCircle(geometry.NewPoint(5, 5), 3, blue)
	r.Clear()

	assert.Equal(t, grey, r.Image().RGBAAt(5, 5))
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(40, 40, grey)
	r.FillCircle(geometry.NewPoint(20, 20), 5, blue)

	assert.Equal(t, blue, r.Image().RGBAAt(20, 20))
	assert.Equal(t, blue, r.Image().RGBAAt(24, 20))
	assert.Equal(t, grey, r.Image().RGBAAt(26, 20))
	assert.Equal(t, grey, r.Image().RGBAAt(24, 24))
}

func TestRasterFillCircleClipped(t *testing.T) {
	r := NewRaster(10, 10, grey)
	r.FillCircle(geometry.NewPoint(0, 0), 4, blue)

	assert.Equal(t, blue, r.Image().RGBAAt(0, 0))
}

func TestRasterLine(t *testing.T) {
	r := NewRaster(20, 20, grey)
	r.Line(geometry.NewPoint(2, 5), geometry.NewPoint(17, 5), 1, blue)

	for x := 2; x <= 17; x++ {
		assert.Equal(t, blue, r.Image().RGBAAt(x, 5), "x=%d", x)
	}
	assert.Equal(t, grey, r.Image().RGBAAt(2, 6))
}

func TestRasterWideLine(t *testing.T) {
	r := NewRaster(20, 20, grey)
	r.Line(geometry.NewPoint(2, 10), geometry.NewPoint(17, 10), 4, blue)

	assert.Equal(t, blue, r.Image().RGBAAt(10, 8))
	assert.Equal(t, blue, r.Image().RGBAAt(10, 12))
	assert.Equal(t, grey, r.Image().RGBAAt(10, 14))
}

func TestRasterText(t *testing.T) {
	r := NewRaster(40, 20, grey)
	r.Text(geometry.NewPoint(2, 15), "p1", blue)

	found := false
	for y := 0; y < 20 && !found; y++ {
		for x := 0; x < 40; x++ {
			if r.Image().RGBAAt(x, y) == blue {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "label was not drawn")
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(16, 8, grey)

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestRasterLineFarOffscreen(t *testing.T) {
	r := NewRaster(50, 50, grey)

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Line(geometry.NewPoint(0, 10), geometry.NewPoint(1e9, 10), 1, blue)
		r.Line(geometry.NewPoint(0, 30), geometry.NewPoint(1e11, 30), 4, blue)
		r.Line(geometry.NewPoint(-1e12, -1e12), geometry.NewPoint(-1e11, -5), 1, blue)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("drawing far off-screen lines did not finish")
	}

	// The visible part is still drawn
	assert.Equal(t, blue, r.Image().RGBAAt(49, 10))
	assert.Equal(t, blue, r.Image().RGBAAt(25, 31))
}

func TestRasterSkipsNonFinite(t *testing.T) {
	r := NewRaster(20, 20, grey)
	nan := geometry.NewPoint(math.NaN(), 5)
	inf := geometry.NewPoint(5, math.Inf(1))

	assert.NotPanics(t, func() {
		r.Line(geometry.NewPoint(0, 0), nan, 1, blue)
		r.Line(inf, geometry.NewPoint(0, 0), 3, blue)
		r.FillCircle(nan, 5, blue)
		r.Text(inf, "p1", blue)
		r.Text(geometry.NewPoint(1e12, 1e12), "p2", blue)
	})
	assert.Equal(t, grey, r.Image().RGBAAt(0, 0))
}

func TestClipSegment(t *testing.T) {
	from, to, ok := clipSegment(geometry.NewPoint(-10, 5), geometry.NewPoint(30, 5), 0, 0, 20, 20)
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint(0, 5), from)
	assert.Equal(t, geometry.NewPoint(20, 5), to)

	// Fully inside is unchanged
	from, to, ok = clipSegment(geometry.NewPoint(2, 3), geometry.NewPoint(8, 9), 0, 0, 20, 20)
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint(2, 3), from)
	assert.Equal(t, geometry.NewPoint(8, 9), to)

	_, _, ok = clipSegment(geometry.NewPoint(-10, -5), geometry.NewPoint(30, -5), 0, 0, 20, 20)
	assert.False(t, ok)

	_, _, ok = clipSegment(geometry.NewPoint(30, 0), geometry.NewPoint(40, 20), 0, 0, 20, 20)
	assert.False(t, ok)
}
