package world

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"rover/internal/rover"
)

var glyphs = map[rover.Cardinal]byte{
	rover.North: '^',
	rover.East:  '>',
	rover.South: 'v',
	rover.West:  '<',
}

// Render draws g with north at the top: '#' is an obstacle, the rover is
// drawn as an arrow pointing where it faces.
func Render(w io.Writer, g rover.Grid, r rover.Rover) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s facing %s\n", r.Name, r.Position, r.Orientation)
	for y := g.Size() - 1; y >= 0; y-- {
		for x := 0; x < g.Size(); x++ {
			c := rover.Coord{X: x, Y: y}
			switch {
			case r.Position == c:
				bw.WriteByte(glyphs[r.Orientation])
			case g.HasObstacle(c):
				bw.WriteByte('#')
			default:
				bw.WriteByte('.')
			}
			if x < g.Size()-1 {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Animate clears the terminal and renders every step, pausing delay between frames.
func Animate(w io.Writer, g rover.Grid, steps []rover.Outcome, delay time.Duration) error {
	for _, s := range steps {
		fmt.Fprint(w, "\033[H\033[2J")
		if err := Render(w, g, s.After); err != nil {
			return err
		}
		if s.Blocked {
			fmt.Fprintf(w, "command %s blocked\n", s.Command)
		}
		time.Sleep(delay)
	}
	return nil
}
