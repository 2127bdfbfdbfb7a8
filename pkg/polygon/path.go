package polygon

import (
	"fmt"
	"strings"
)

// PathSeparator joins point labels in a path description
const PathSeparator = " - "

// Walk returns the indices visited going from start to end around a cycle of
// n points in direction dir, both endpoints included. The arc is chosen by
// dir alone, not by length. Out of range input yields nil.
func Walk(start, end, n int, dir Direction) []int {
	if n <= 0 || start < 0 || start >= n || end < 0 || end >= n {
		return nil
	}

	step := dir.Step()
	path := []int{start}
	for i := start; i != end; {
		i = (i + step + n) % n
		path = append(path, i)
	}
	return path
}

// Label returns the display label of the point at index, e.g. p1 for index 0
func Label(index int) string {
	return fmt.Sprintf("p%d", index+1)
}

// Describe renders a path as its point labels, e.g. "p1 - p2 - p3"
func Describe(path []int) string {
	labels := make([]string, len(path))
	for i, index := range path {
		labels[i] = Label(index)
	}
	return strings.Join(labels, PathSeparator)
}
