package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Locator is implemented by keys that have a position in the plane.
// Distance-based heuristics use it; keys without a position estimate zero.
type Locator interface {
	Position() (x, y float64)
}

// Point is an integer grid coordinate, the usual key of a world graph.
type Point struct {
	X, Y int
}

// Position implements Locator.
func (p Point) Position() (float64, float64) { return float64(p.X), float64(p.Y) }

// String renders the point as "x,y".
func (p Point) String() string { return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) }

// ParsePoint parses the "x,y" form produced by Point.String.
// Surrounding whitespace around either coordinate is ignored.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}

	return Point{X: x, Y: y}, nil
}
