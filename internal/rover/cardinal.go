package rover

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCardinal = errors.New("unknown cardinal")

// Cardinal is one of the four compass headings.
type Cardinal int

const (
	North Cardinal = iota
	East
	South
	West
)

// Next returns the clockwise neighbour.
func (c Cardinal) Next() Cardinal {
	switch c {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Previous returns the counter-clockwise neighbour.
func (c Cardinal) Previous() Cardinal {
	switch c {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

func (c Cardinal) Opposite() Cardinal {
	switch c {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta is the unit step along c. North grows y, East grows x.
func (c Cardinal) Delta() (dx, dy int) {
	switch c {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

func (c Cardinal) String() string {
	switch c {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Cardinal(%d)", int(c))
}

// ParseCardinal accepts a single letter or a full name in any case.
func ParseCardinal(s string) (Cardinal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return North, fmt.Errorf("%w %q", ErrUnknownCardinal, s)
}
