package highscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardKeepsBestDescending(t *testing.T) {
	b := NewBoard(5, 50, 20, 1, 99, 7, 8, 9, 10, 11, 12, 13)

	assert.Equal(t, Limit, b.Len())
	assert.Equal(t, []int{99, 50, 20, 13, 12, 11, 10, 9, 8, 7}, b.Scores())
	assert.Equal(t, 99, b.Best())
}

func TestBoardAddRank(t *testing.T) {
	b := NewBoard(300, 200, 100)

	assert.Equal(t, 1, b.Add(400))
	assert.Equal(t, 4, b.Add(200), "ties rank below existing entries")
	assert.Equal(t, 6, b.Add(0))
}

func TestBoardAddOffBoard(t *testing.T) {
	b := NewBoard(10, 20, 30, 40, 50, 60, 70, 80, 90, 100)

	assert.False(t, b.Qualifies(10))
	assert.Equal(t, 0, b.Add(10))
	assert.Equal(t, 10, b.Scores()[9])

	assert.True(t, b.Qualifies(11))
	assert.Equal(t, 10, b.Add(11))
	assert.Equal(t, 11, b.Scores()[9])
}

func TestBoardEmpty(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, 0, b.Best())
	assert.True(t, b.Qualifies(0))
	assert.Empty(t, b.Lines())
	assert.Equal(t, "", b.String())
}

func TestBoardLines(t *testing.T) {
	b := NewBoard(42, 123456, 1234567)

	assert.Equal(t, []string{"1234567", "123456", "000042"}, b.Lines())
}

func TestParse(t *testing.T) {
	b, err := Parse("120\n\n  45 \n300\n")
	require.NoError(t, err)
	assert.Equal(t, []int{300, 120, 45}, b.Scores())

	again, err := Parse(b.String())
	require.NoError(t, err)
	assert.Equal(t, b.Scores(), again.Scores())
}

func TestParseError(t *testing.T) {
	_, err := Parse("10\nabc\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
