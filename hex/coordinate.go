// Package hex provides the value types stored in a hex board: coordinates,
// terrains and the tiles pairing them.
package hex

import "fmt"

// Coordinate identifies a position on a hex board. Coordinates are
// ordered by b first and a second. A Coordinate is immutable.
type Coordinate struct {
	a int
	b int
}

// NewCoordinate returns the coordinate (a, b)
func NewCoordinate(a, b int) Coordinate {
	return Coordinate{a: a, b: b}
}

// A returns the first component of the coordinate
func (c Coordinate) A() int {
	return c.a
}

// B returns the second component of the coordinate
func (c Coordinate) B() int {
	return c.b
}

// Compare returns
//  -1 if c < o
//   0 if c == o
//   1 if c > o
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.b < o.b:
		return -1
	case c.b > o.b:
		return 1
	case c.a < o.a:
		return -1
	case c.a > o.a:
		return 1
	default:
		return 0
	}
}

// Less returns true if c is ordered before o
func (c Coordinate) Less(o Coordinate) bool {
	return c.Compare(o) < 0
}

func (c Coordinate) String() string {
	return fmt.Sprintf("<%d,%d>", c.a, c.b)
}

// CompareCoordinates is Coordinate.Compare as a plain function so it can
// be handed to sort routines and ordered containers
func CompareCoordinates(a, b Coordinate) int {
	return a.Compare(b)
}
