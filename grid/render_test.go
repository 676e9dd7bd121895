package grid

import (
	"testing"

	"github.com/noctilu/hashlife"
	"github.com/stretchr/testify/assert"
)

func TestRenderDeadLeaf(t *testing.T) {
	assert.Equal(t, "__\n__\n", Render(hashlife.DeadLeaf()))
}

func TestRenderMatchesTileOrder(t *testing.T) {
	n := hashlife.Leaf(true, false, false, true)
	assert.Equal(t, "#_\n_#\n", Render(n))
}

func TestRenderRoundTripsThroughFromGrid(t *testing.T) {
	cells := gliderCells()
	n := FromGrid(cells)
	out := Render(n)

	lines := []string{
		"_#______",
		"__#_____",
		"###_____",
		"________",
		"________",
		"________",
		"________",
		"________",
	}
	for i, line := range lines {
		start := i * 9 // 8 chars + newline
		assert.Equal(t, line+"\n", out[start:start+9])
	}
}
