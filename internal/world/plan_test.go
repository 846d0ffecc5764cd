package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rover/internal/rover"
)

func TestPlanUsesWrapAround(t *testing.T) {
	g, err := rover.NewGrid(6)
	require.NoError(t, err)

	path, ok := Plan(g, rover.Coord{X: 0, Y: 0}, rover.Coord{X: 5, Y: 0})
	require.True(t, ok)
	assert.Equal(t, []rover.Cardinal{rover.West}, path)
}

func TestPlanAvoidsObstacles(t *testing.T) {
	g, err := rover.NewGrid(5,
		rover.Coord{X: 1, Y: 0}, rover.Coord{X: 1, Y: 1}, rover.Coord{X: 1, Y: 2},
		rover.Coord{X: 4, Y: 0}, rover.Coord{X: 0, Y: 4},
	)
	require.NoError(t, err)
	from, to := rover.Coord{X: 0, Y: 0}, rover.Coord{X: 2, Y: 0}

	path, ok := Plan(g, from, to)
	require.True(t, ok)

	for _, facing := range []rover.Cardinal{rover.North, rover.East, rover.South, rover.West} {
		steps := rover.Trace(path, rover.New("r", facing, from), g)
		for _, s := range steps {
			assert.False(t, s.Blocked)
		}
		assert.Equal(t, to, steps[len(steps)-1].After.Position)
	}
}

func TestPlanUnreachable(t *testing.T) {
	g, err := rover.NewGrid(3,
		rover.Coord{X: 1, Y: 0}, rover.Coord{X: 0, Y: 1}, rover.Coord{X: 2, Y: 0}, rover.Coord{X: 0, Y: 2},
	)
	require.NoError(t, err)

	_, ok := Plan(g, rover.Coord{}, rover.Coord{X: 2, Y: 2})
	assert.False(t, ok)

	_, ok = Plan(g, rover.Coord{X: 2, Y: 2}, rover.Coord{X: 1, Y: 0})
	assert.False(t, ok, "target is an obstacle")
}

func TestPlanSameCell(t *testing.T) {
	g, err := rover.NewGrid(3)
	require.NoError(t, err)

	path, ok := Plan(g, rover.Coord{X: 1, Y: 1}, rover.Coord{X: 4, Y: 1})
	require.True(t, ok)
	assert.Empty(t, path)
}
