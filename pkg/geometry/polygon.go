package geometry

// Winding describes the rotational sense of a point sequence as seen on screen
type Winding int

const (
	// Degenerate is reported for collinear or empty sequences
	Degenerate Winding = iota
	Clockwise
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "degenerate"
	}
}

// Perimeter sums the segment lengths along points. When closed is set the
// segment from the last point back to the first is included.
func Perimeter(points []Point, closed bool) float64 {
	if len(points) < 2 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	if closed {
		total += points[len(points)-1].Distance(points[0])
	}
	return total
}

// SignedArea computes the shoelace area of the closed polygon. The value is
// positive when the points wind clockwise in screen space (y pointing down).
func SignedArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}

	sum := 0.0
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].Cross(points[j])
	}
	return sum / 2
}

// Orientation reports how the points wind on screen
func Orientation(points []Point) Winding {
	area := SignedArea(points)
	switch {
	case area > 0:
		return Clockwise
	case area < 0:
		return CounterClockwise
	default:
		return Degenerate
	}
}
