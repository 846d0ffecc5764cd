package world

import "rover/internal/rover"

// Plan finds a shortest command sequence taking a rover from one cell to
// another on the wrapping grid g, never entering an obstacle. Every accepted
// command moves the rover one cell toward its target direction regardless of
// heading, so running the plan from any orientation ends on to.
func Plan(g rover.Grid, from, to rover.Coord) ([]rover.Cardinal, bool) {
	from, to = g.Wrap(from), g.Wrap(to)
	if g.HasObstacle(to) {
		return nil, false
	}

	type link struct {
		prev rover.Coord
		dir  rover.Cardinal
	}
	moves := []rover.Cardinal{rover.North, rover.East, rover.South, rover.West}
	came := map[rover.Coord]link{}
	visited := map[rover.Coord]bool{from: true}
	q := []rover.Coord{from}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if cur == to {
			var path []rover.Cardinal
			for c := to; c != from; c = came[c].prev {
				path = append(path, came[c].dir)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, true
		}
		for _, d := range moves {
			dx, dy := d.Delta()
			next := g.Wrap(rover.Coord{X: cur.X + dx, Y: cur.Y + dy})
			if visited[next] || g.HasObstacle(next) {
				continue
			}
			visited[next] = true
			came[next] = link{prev: cur, dir: d}
			q = append(q, next)
		}
	}
	return nil, false
}
