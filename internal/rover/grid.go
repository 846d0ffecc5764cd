package rover

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidSize = errors.New("grid size must be positive")

type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a square torus of side size with a fixed set of obstacles.
// The zero value is not usable; build grids with NewGrid.
type Grid struct {
	size      int
	obstacles map[Coord]struct{}
}

func NewGrid(size int, obstacles ...Coord) (Grid, error) {
	if size <= 0 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	g := Grid{size: size, obstacles: make(map[Coord]struct{}, len(obstacles))}
	for _, o := range obstacles {
		g.obstacles[g.Wrap(o)] = struct{}{}
	}
	return g, nil
}

func (g Grid) Size() int {
	return g.size
}

// Obstacles returns a sorted copy of the obstacle set.
func (g Grid) Obstacles() []Coord {
	out := make([]Coord, 0, len(g.obstacles))
	for c := range g.obstacles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func (g Grid) HasObstacle(pos Coord) bool {
	_, ok := g.obstacles[pos]
	return ok
}

// Wrap maps c onto the grid, always yielding coordinates in [0, size).
func (g Grid) Wrap(c Coord) Coord {
	return Coord{X: wrap(c.X, g.size), Y: wrap(c.Y, g.size)}
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
