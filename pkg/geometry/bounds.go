package geometry

// Bounds is an axis aligned box around a set of points
type Bounds struct {
	Min Point
	Max Point
}

// NewBounds returns the bounding box of points. Empty input yields the zero box.
func NewBounds(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Size returns the width and height of the box
func (b Bounds) Size() Point {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the box
func (b Bounds) Center() Point {
	return b.Min.Add(b.Max).Mul(0.5)
}
