package rover

import "fmt"

type MoveSense int

const (
	Forward MoveSense = iota
	Backward
)

type TurnSense int

const (
	Left TurnSense = iota
	Right
)

// Rover is a value: Move and Turn return new rovers and never modify the receiver.
type Rover struct {
	Name        string
	Orientation Cardinal
	Position    Coord
}

func New(name string, orientation Cardinal, pos Coord) Rover {
	return Rover{Name: name, Orientation: orientation, Position: pos}
}

// Move steps one cell along (Forward) or against (Backward) the current
// orientation, wrapping around the edges of g.
func (r Rover) Move(sense MoveSense, g Grid) Rover {
	dx, dy := r.Orientation.Delta()
	if sense == Backward {
		dx, dy = -dx, -dy
	}
	r.Position = g.Wrap(Coord{X: r.Position.X + dx, Y: r.Position.Y + dy})
	return r
}

func (r Rover) Turn(sense TurnSense) Rover {
	if sense == Right {
		r.Orientation = r.Orientation.Next()
	} else {
		r.Orientation = r.Orientation.Previous()
	}
	return r
}

func (r Rover) String() string {
	return fmt.Sprintf("%s %s facing %s", r.Name, r.Position, r.Orientation)
}
