// Package polygon holds the ordered point cycle the user builds on the
// drawing surface and the directional walk around it.
package polygon

import (
	"errors"
	"fmt"

	"github.com/philipparndt/polypath/pkg/geometry"
)

const (
	// MaxPoints is the largest number of points a set accepts
	MaxPoints = 15
	// MinPoints is the smallest number of points that forms a polygon
	MinPoints = 3
	// HitRadius is the pixel distance below which a click selects a point
	HitRadius = 10.0
)

var (
	ErrTooFewPoints  = errors.New("too few points")
	ErrTooManyPoints = errors.New("too many points")
)

// Set is an ordered sequence of points. Insertion order is the polygon
// boundary order. Once committed the sequence is frozen until Clear.
type Set struct {
	points    []geometry.Point
	committed bool
}

// NewSet creates an empty point set
func NewSet() *Set {
	return &Set{
		points: make([]geometry.Point, 0, MaxPoints),
	}
}

// FromPoints builds a committed set from points
func FromPoints(points []geometry.Point) (*Set, error) {
	if len(points) < MinPoints {
		return nil, fmt.Errorf("need at least %d points, got %d: %w", MinPoints, len(points), ErrTooFewPoints)
	}
	if len(points) > MaxPoints {
		return nil, fmt.Errorf("at most %d points allowed, got %d: %w", MaxPoints, len(points), ErrTooManyPoints)
	}

	s := NewSet()
	for _, p := range points {
		s.Add(p)
	}
	s.Commit()
	return s, nil
}

// ValidCount reports whether count points can be committed as a polygon
func ValidCount(count int) bool {
	return count >= MinPoints && count <= MaxPoints
}

// Add appends p and returns the new count. It is a no-op when the set is
// committed or already holds MaxPoints. Coincident points are kept as distinct.
func (s *Set) Add(p geometry.Point) (int, bool) {
	if s.committed || len(s.points) >= MaxPoints {
		return len(s.points), false
	}
	s.points = append(s.points, p)
	return len(s.points), true
}

// Commit freezes the set as a closed polygon. Fewer than MinPoints is a no-op.
func (s *Set) Commit() bool {
	if len(s.points) < MinPoints {
		return false
	}
	s.committed = true
	return true
}

// Clear empties the set and drops the committed flag
func (s *Set) Clear() {
	s.points = s.points[:0]
	s.committed = false
}

// Committed reports whether the polygon has been drawn
func (s *Set) Committed() bool {
	return s.committed
}

// Len returns the number of points
func (s *Set) Len() int {
	return len(s.points)
}

// At returns the point at index
func (s *Set) At(index int) geometry.Point {
	return s.points[index]
}

// Points returns a copy of the points in insertion order
func (s *Set) Points() []geometry.Point {
	out := make([]geometry.Point, len(s.points))
	copy(out, s.points)
	return out
}

// HitTest returns the first point, in insertion order, lying strictly
// within HitRadius of p.
func (s *Set) HitTest(p geometry.Point) (int, bool) {
	for i, candidate := range s.points {
		if candidate.Distance(p) < HitRadius {
			return i, true
		}
	}
	return -1, false
}
