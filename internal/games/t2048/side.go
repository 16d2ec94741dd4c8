package t2048

import (
	"fmt"
	"strings"
	"unicode"
)

// Side names one edge of the board. Tilting toward a side slides every
// tile in that direction.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists every side in clockwise order starting at North.
var Sides = [...]Side{North, East, South, West}

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s >= North && s <= West
}

// Canonical maps (col, row) as seen with s at the top of the board back to
// canonical north coordinates on a board of the given size.
//
// In the rotated frame "toward increasing row" always points at s, so the
// tilt engine can treat every side as a tilt toward north.
func (s Side) Canonical(col, row, size int) (int, int) {
	last := size - 1
	switch s {
	case East:
		return row, last - col
	case South:
		return last - col, last - row
	case West:
		return last - row, col
	default:
		return col, row
	}
}

// Relative is the inverse of Canonical: it maps canonical coordinates into
// the frame where s is at the top.
func (s Side) Relative(col, row, size int) (int, int) {
	last := size - 1
	switch s {
	case East:
		return last - row, col
	case South:
		return last - col, last - row
	case West:
		return row, last - col
	default:
		return col, row
	}
}

// ParseSide accepts compass names and arrow-style aliases:
// n/north/u/up, e/east/r/right, s/south/d/down, w/west/l/left.
func ParseSide(text string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "n", "north", "u", "up":
		return North, nil
	case "e", "east", "r", "right":
		return East, nil
	case "s", "south", "d", "down":
		return South, nil
	case "w", "west", "l", "left":
		return West, nil
	default:
		return North, fmt.Errorf("%w: %q", ErrUnknownSide, text)
	}
}

// ParseMoves turns a move string such as "nnes", "u,l,d" or "up left" into
// a sequence of sides. Separators (spaces, commas) split the string into
// fields; a field is either one side name or a run of one-letter sides.
func ParseMoves(text string) ([]Side, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var sides []Side
	for _, f := range fields {
		if side, err := ParseSide(f); err == nil {
			sides = append(sides, side)
			continue
		}
		for _, r := range f {
			side, err := ParseSide(string(r))
			if err != nil {
				return nil, fmt.Errorf("move %d: %w", len(sides)+1, err)
			}
			sides = append(sides, side)
		}
	}
	return sides, nil
}
