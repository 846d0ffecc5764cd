package rover

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var all = []Cardinal{North, East, South, West}

func TestNextIsClockwise(t *testing.T) {
	assert.Equal(t, East, North.Next())
	assert.Equal(t, South, East.Next())
	assert.Equal(t, West, South.Next())
	assert.Equal(t, North, West.Next())
}

func TestRotationLaws(t *testing.T) {
	for _, d := range all {
		assert.Equal(t, d, d.Previous().Next(), "next(previous(%s))", d)
		assert.Equal(t, d, d.Next().Previous(), "previous(next(%s))", d)
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite(opposite(%s))", d)
		assert.Equal(t, d.Opposite(), d.Next().Next(), "two right turns of %s", d)
	}
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, West, East.Opposite())
}

func TestParseCardinal(t *testing.T) {
	cases := map[string]Cardinal{
		"N": North, "north": North, " East ": East, "s": South, "WEST": West,
	}
	for in, want := range cases {
		got, err := ParseCardinal(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCardinal("up")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCardinal))
}

func TestCardinalString(t *testing.T) {
	assert.Equal(t, "NESW", North.String()+East.String()+South.String()+West.String())
	assert.Equal(t, "Cardinal(9)", Cardinal(9).String())
}
