package viewer

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/surface"
	"github.com/stretchr/testify/assert"
)

func TestSurfaceOnRasterWithExtremeCoordinates(t *testing.T) {
	tests := map[string][]geometry.Point{
		"huge": {{X: 0, Y: 0}, {X: 1e11, Y: 0}, {X: 0, Y: 10}},
		"nan":  {{X: 0, Y: 0}, {X: math.NaN(), Y: 0}, {X: 0, Y: 10}},
		"inf":  {{X: 0, Y: 0}, {X: math.Inf(-1), Y: 40}, {X: 0, Y: 10}},
	}

	for name, points := range tests {
		t.Run(name, func(t *testing.T) {
			raster := NewRaster(500, 500, color.RGBA{0x99, 0x99, 0x99, 0xff})
			s := surface.New(raster, surface.DefaultStyle(), nil)

			done := make(chan bool)
			go func() {
				for _, p := range points {
					s.AddPoint(p)
				}
				done <- s.CommitPolygon()
			}()

			select {
			case committed := <-done:
				assert.True(t, committed)
			case <-time.After(5 * time.Second):
				t.Fatal("rendering did not finish")
			}
		})
	}
}
