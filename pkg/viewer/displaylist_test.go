package viewer

import (
	"testing"

	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/polygon"
	"github.com/philipparndt/polypath/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayListPublishesOnFlush(t *testing.T) {
	d := NewDisplayList()
	d.Clear()
	d.FillCircle(geometry.NewPoint(1, 2), 5, blue)
	d.Line(geometry.NewPoint(0, 0), geometry.NewPoint(3, 4), 2, grey)

	assert.Empty(t, d.Frame())

	d.Flush()
	frame := d.Frame()
	require.Len(t, frame, 2)
	assert.Equal(t, PrimitiveCircle, frame[0].Kind)
	assert.Equal(t, 5.0, frame[0].Size)
	assert.Equal(t, PrimitiveLine, frame[1].Kind)
	assert.Equal(t, geometry.NewPoint(3, 4), frame[1].To)

	// The published frame survives until the next flush
	d.Clear()
	d.Text(geometry.NewPoint(1, 1), "p1", blue)
	assert.Len(t, d.Frame(), 2)

	d.Flush()
	frame = d.Frame()
	require.Len(t, frame, 1)
	assert.Equal(t, "p1", frame[0].Text)
}

func TestDisplayListReplayMatchesRaster(t *testing.T) {
	points := []geometry.Point{{X: 40, Y: 40}, {X: 200, Y: 60}, {X: 220, Y: 210}, {X: 60, Y: 180}}

	direct := NewRaster(256, 256, grey)
	list := NewDisplayList()
	for _, canvas := range []surface.Canvas{direct, list} {
		s := surface.New(canvas, surface.DefaultStyle(), nil)
		for _, p := range points {
			s.AddPoint(p)
		}
		require.True(t, s.CommitPolygon())
		require.NotNil(t, s.HighlightPath(0, 2, polygon.CounterClockwise))
	}

	replayed := NewRaster(256, 256, grey)
	list.Replay(replayed)

	assert.Equal(t, direct.Image().Pix, replayed.Image().Pix)
}
