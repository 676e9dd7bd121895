package grid

import (
	"testing"

	"github.com/noctilu/hashlife"
	"github.com/stretchr/testify/assert"
)

func gliderCells() [][]bool {
	return [][]bool{
		{false, true, false, false, false, false, false, false},
		{false, false, true, false, false, false, false, false},
		{true, true, true, false, false, false, false, false},
	}
}

func TestFromGridPadsToSquarePowerOfTwo(t *testing.T) {
	n := FromGrid(gliderCells())
	assert.Equal(t, 8, n.Side())
}

func TestRoundTrip(t *testing.T) {
	want := gliderCells()
	n := FromGrid(want)
	got := ToGrid(n)

	for y, row := range want {
		for x, alive := range row {
			assert.Equal(t, alive, got[y][x], "cell (%d,%d)", x, y)
		}
	}
	// cells outside the original jagged grid must be dead-padded.
	for y := len(want); y < len(got); y++ {
		for x := range got[y] {
			assert.False(t, got[y][x], "padding cell (%d,%d) must be dead", x, y)
		}
	}
}

func TestFromGridJaggedRows(t *testing.T) {
	cells := [][]bool{
		{true},
		{false, true, true},
	}
	n := FromGrid(cells)
	assert.Equal(t, 4, n.Side())

	got := ToGrid(n)
	assert.True(t, got[0][0])
	assert.False(t, got[0][1])
	assert.True(t, got[1][1])
	assert.True(t, got[1][2])
}

func TestFromGridEmptyIsAllDead(t *testing.T) {
	n := FromGrid(nil)
	assert.Equal(t, 2, n.Side())
	assert.Equal(t, [4]bool{false, false, false, false}, n.Tile)
}

func TestFromGridIntoSharesUniverseWithJump(t *testing.T) {
	u := hashlife.NewUniverse()
	n := FromGridInto(u, gliderCells())
	stepped := u.Jump(n, 1)
	assert.NotNil(t, stepped)
}
