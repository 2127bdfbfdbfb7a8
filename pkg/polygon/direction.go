package polygon

// Direction is the rotational sense used to walk the point cycle.
// Clockwise steps to the next higher index, CounterClockwise to the next lower one.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Step returns the index increment for the direction
func (d Direction) Step() int {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

// Toggle returns the opposite direction
func (d Direction) Toggle() Direction {
	if d == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}
