package interpreter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rover/internal/rover"
)

func compile(t *testing.T, src string, limit int) []rover.Cardinal {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	cmds, err := Compile(prog, limit)
	require.NoError(t, err)
	return cmds
}

func TestMoveStatements(t *testing.T) {
	cmds := compile(t, "N E E; SW;", 0)
	assert.Equal(t, "NEESW", rover.Encode(cmds))
}

func TestRawDropsUnknown(t *testing.T) {
	cmds := compile(t, `raw "NNxE k";`, 0)
	assert.Equal(t, "NNE", rover.Encode(cmds))
}

func TestLoopAndIf(t *testing.T) {
	src := `
# square walk
n = 2;
repeat i = 1 : n do
	N; E;
end
if n - 2 do W; end
if n - 1 do S; end
`
	assert.Equal(t, "NENES", rover.Encode(compile(t, src, 0)))
}

func TestLoopVariableInBody(t *testing.T) {
	src := `
repeat i = 1 : 3 do
	if i - 2 do N; end
end`
	assert.Equal(t, "NN", rover.Encode(compile(t, src, 0)))
}

func TestEmptyProgram(t *testing.T) {
	assert.Empty(t, compile(t, "  # nothing\n", 0))
}

func TestUndefinedVariable(t *testing.T) {
	prog, err := Parse("repeat i = 1 : count do N; end")
	require.NoError(t, err)
	_, err = Compile(prog, 0)
	require.ErrorIs(t, err, ErrUndefinedVariable)
	assert.Contains(t, err.Error(), "count")
}

func TestCommandLimit(t *testing.T) {
	prog, err := Parse("repeat i = 1 : 10 do N E; end")
	require.NoError(t, err)

	_, err = Compile(prog, 5)
	require.ErrorIs(t, err, ErrCommandLimit)

	cmds, err := Compile(prog, 20)
	require.NoError(t, err)
	assert.Len(t, cmds, 20)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"N", "repeat i = 1 do N; end", "x = ;", `raw NNE;`} {
		_, err := Parse(src)
		assert.Error(t, err, src)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.rvs")
	require.NoError(t, os.WriteFile(path, []byte("N; E;\n"), 0o644))

	prog, err := ParseFile(path)
	require.NoError(t, err)
	cmds, err := Compile(prog, 0)
	require.NoError(t, err)
	assert.Equal(t, []rover.Cardinal{rover.North, rover.East}, cmds)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.rvs"))
	assert.Error(t, err)
}

func TestScriptDrivesRover(t *testing.T) {
	g, err := rover.NewGrid(6, rover.Coord{X: 1, Y: 1})
	require.NoError(t, err)
	cmds := compile(t, "repeat i = 1 : 4 do N; end E;", 0)

	end := rover.Run(cmds, rover.New("curiosity", rover.North, rover.Coord{}), g)
	assert.Equal(t, rover.Coord{X: 1, Y: 4}, end.Position)
	assert.Equal(t, rover.East, end.Orientation)
}

func TestLoopEndingAtMaxIntTerminates(t *testing.T) {
	src := fmt.Sprintf("repeat i = %d : %d do x = i; end", math.MaxInt-1, math.MaxInt)
	prog, err := Parse(src)
	require.NoError(t, err)

	ctx := NewContext(10)
	require.NoError(t, prog.Expand(ctx))
	x, ok := ctx.Get("x")
	require.True(t, ok)
	assert.Equal(t, math.MaxInt, x)
	assert.Empty(t, ctx.Commands())
}

func TestSilentLoopHitsLimit(t *testing.T) {
	prog, err := Parse("repeat i = 1 : 300000000 do x = i; end")
	require.NoError(t, err)

	_, err = Compile(prog, 10)
	require.ErrorIs(t, err, ErrCommandLimit)
}

func TestEmptyRangeSkipsBody(t *testing.T) {
	assert.Empty(t, compile(t, "repeat i = 3 : 1 do N; end", 1))
}
