package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointAdd(t *testing.T) {
	result := NewPoint(1, 2).Add(NewPoint(4, 5))
	assert.Equal(t, NewPoint(5, 7), result)
}

func TestPointSub(t *testing.T) {
	result := NewPoint(5, 7).Sub(NewPoint(1, 2))
	assert.Equal(t, NewPoint(4, 5), result)
}

func TestPointDistance(t *testing.T) {
	distance := NewPoint(0, 0).Distance(NewPoint(3, 4))
	assert.InDelta(t, 5.0, distance, 1e-10)
}

func TestPointCross(t *testing.T) {
	assert.InDelta(t, 1.0, NewPoint(1, 0).Cross(NewPoint(0, 1)), 1e-10)
	assert.InDelta(t, -1.0, NewPoint(0, 1).Cross(NewPoint(1, 0)), 1e-10)
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(10.0, 20.5)", NewPoint(10, 20.5).String())
}

func TestBounds(t *testing.T) {
	b := NewBounds([]Point{{10, 40}, {30, 20}, {20, 60}})

	assert.Equal(t, NewPoint(10, 20), b.Min)
	assert.Equal(t, NewPoint(30, 60), b.Max)
	assert.Equal(t, NewPoint(20, 40), b.Size())
	assert.Equal(t, NewPoint(20, 40), b.Center())
	assert.Equal(t, Bounds{}, NewBounds(nil))
}

func TestPerimeter(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	assert.InDelta(t, 30.0, Perimeter(square, false), 1e-10)
	assert.InDelta(t, 40.0, Perimeter(square, true), 1e-10)
	assert.Zero(t, Perimeter(square[:1], true))
}

func TestSignedAreaAndOrientation(t *testing.T) {
	// Right, down, left in screen space is clockwise
	cw := []Point{{0, 0}, {4, 0}, {4, 3}}
	ccw := []Point{{0, 0}, {4, 3}, {4, 0}}

	assert.InDelta(t, 6.0, SignedArea(cw), 1e-10)
	assert.InDelta(t, -6.0, SignedArea(ccw), 1e-10)
	assert.Equal(t, Clockwise, Orientation(cw))
	assert.Equal(t, CounterClockwise, Orientation(ccw))

	line := []Point{{0, 0}, {1, 1}, {2, 2}}
	assert.Equal(t, Degenerate, Orientation(line))
	assert.True(t, math.Abs(SignedArea(line)) < 1e-10)
}
