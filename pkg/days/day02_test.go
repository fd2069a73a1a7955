package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxPerGame(t *testing.T) {
	games, err := maxPerGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green\nGame 12: 1 red")
	require.NoError(t, err)

	assert.Equal(t, cubeSet{"red": 4, "green": 2, "blue": 6}, games[1])
	assert.Equal(t, cubeSet{"red": 1, "green": 0, "blue": 0}, games[12])
}

func TestMaxPerGame_Malformed(t *testing.T) {
	_, err := maxPerGame("Round 1: 3 blue")
	assert.EqualError(t, err, `malformed game "Round 1: 3 blue"`)
}

func TestPossibleGames_CustomLimit(t *testing.T) {
	sum, err := possibleGames("Game 1: 3 blue\nGame 2: 5 blue", cubeSet{"red": 0, "green": 0, "blue": 4})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum)
}
