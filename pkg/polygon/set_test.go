package polygon

import (
	"testing"

	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(s *Set, n int) {
	for i := 0; i < n; i++ {
		s.Add(geometry.NewPoint(float64(i*30), float64(i*20)))
	}
}

func TestAddRespectsLimit(t *testing.T) {
	s := NewSet()
	fill(s, MaxPoints)
	require.Equal(t, MaxPoints, s.Len())

	count, ok := s.Add(geometry.NewPoint(1, 1))
	assert.False(t, ok)
	assert.Equal(t, MaxPoints, count)
	assert.Equal(t, MaxPoints, s.Len())
}

func TestAddAllowsCoincidentPoints(t *testing.T) {
	s := NewSet()
	s.Add(geometry.NewPoint(5, 5))
	count, ok := s.Add(geometry.NewPoint(5, 5))

	assert.True(t, ok)
	assert.Equal(t, 2, count)
}

func TestCommitBounds(t *testing.T) {
	for n := 0; n <= MaxPoints; n++ {
		s := NewSet()
		fill(s, n)

		ok := s.Commit()
		assert.Equal(t, n >= MinPoints, ok, "n=%d", n)
		assert.Equal(t, n >= MinPoints, s.Committed(), "n=%d", n)
		assert.Equal(t, ValidCount(n), s.Committed(), "n=%d", n)
	}
}

func TestAddAfterCommitIsNoop(t *testing.T) {
	s := NewSet()
	fill(s, 4)
	require.True(t, s.Commit())

	count, ok := s.Add(geometry.NewPoint(100, 100))
	assert.False(t, ok)
	assert.Equal(t, 4, count)

	// Recommit does not change anything
	assert.True(t, s.Commit())
	assert.Equal(t, 4, s.Len())
}

func TestClear(t *testing.T) {
	s := NewSet()
	fill(s, 5)
	s.Commit()
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Committed())

	_, ok := s.Add(geometry.NewPoint(1, 2))
	assert.True(t, ok)
}

func TestHitTest(t *testing.T) {
	s := NewSet()
	s.Add(geometry.NewPoint(100, 100))
	s.Add(geometry.NewPoint(105, 100))
	s.Add(geometry.NewPoint(300, 300))

	// First match in insertion order wins even if a later point is closer
	index, ok := s.HitTest(geometry.NewPoint(104, 100))
	assert.True(t, ok)
	assert.Equal(t, 0, index)

	index, ok = s.HitTest(geometry.NewPoint(306, 306))
	assert.True(t, ok)
	assert.Equal(t, 2, index)

	// Exactly on the radius is a miss
	_, ok = s.HitTest(geometry.NewPoint(300, 310))
	assert.False(t, ok)

	_, ok = s.HitTest(geometry.NewPoint(200, 200))
	assert.False(t, ok)
}

func TestPointsReturnsCopy(t *testing.T) {
	s := NewSet()
	fill(s, 3)
	points := s.Points()
	points[0] = geometry.NewPoint(-1, -1)

	assert.Equal(t, geometry.NewPoint(0, 0), s.At(0))
}

func TestFromPoints(t *testing.T) {
	s, err := FromPoints([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	require.NoError(t, err)
	assert.True(t, s.Committed())
	assert.Equal(t, 3, s.Len())

	_, err = FromPoints([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = FromPoints(make([]geometry.Point, MaxPoints+1))
	assert.ErrorIs(t, err, ErrTooManyPoints)
}
