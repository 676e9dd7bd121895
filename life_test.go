package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepLifeEmptyStaysEmpty(t *testing.T) {
	var grid [4][4]bool
	out := stepLife(grid)
	assert.Equal(t, [4]bool{false, false, false, false}, out)
}

func TestStepLifeBirthOnThreeNeighbors(t *testing.T) {
	var grid [4][4]bool
	// three live neighbors of the inner top-left cell (1,1): (0,1),(1,0),(0,0)
	grid[0][0] = true
	grid[0][1] = true
	grid[1][0] = true

	out := stepLife(grid)
	assert.True(t, out[0], "dead cell with exactly three live neighbors is born")
}

func TestStepLifeSurvivesOnTwoOrThree(t *testing.T) {
	var grid [4][4]bool
	grid[1][1] = true // the cell itself, alive
	grid[0][1] = true
	grid[1][0] = true

	out := stepLife(grid)
	assert.True(t, out[0], "live cell with exactly two live neighbors survives")

	grid[0][0] = true // a third live neighbor
	out = stepLife(grid)
	assert.True(t, out[0], "live cell with exactly three live neighbors survives")
}

func TestStepLifeDiesOnOverpopulation(t *testing.T) {
	var grid [4][4]bool
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			grid[r][c] = true
		}
	}
	out := stepLife(grid)
	assert.False(t, out[0], "live cell with eight live neighbors dies of overpopulation")
}

func TestStepLifeDiesOnUnderpopulation(t *testing.T) {
	var grid [4][4]bool
	grid[1][1] = true
	grid[0][0] = true

	out := stepLife(grid)
	assert.False(t, out[0], "live cell with one live neighbor dies of underpopulation")
}

func TestStepBaseNeverCountsSelf(t *testing.T) {
	u := NewUniverse()
	// a live cell at (1,1) with a single live neighbor at (0,0): with the
	// cell excluded from its own count it sees one neighbor and dies;
	// counted in, it would see two and survive.
	tl := Leaf(true, false, false, true) // tl and br of the tl tile: (0,0) and (1,1) of the 4x4
	branch := u.Make(tl, DeadLeaf(), DeadLeaf(), DeadLeaf())
	assert.Equal(t, [4]bool{false, false, false, false}, branch.Result.Tile)
}
