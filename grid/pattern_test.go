package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadPatternParsesHashAsLive(t *testing.T) {
	src := "_#______\n__#_____\n###_____\n"
	cells, err := LoadPattern(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, 3, len(cells))
	assert.Equal(t, []bool{false, true, false, false, false, false, false, false}, cells[0])
	assert.Equal(t, []bool{true, true, true, false, false, false, false, false}, cells[2])
}

func TestLoadPatternRaggedRowsPreserved(t *testing.T) {
	src := "#\n.##\n"
	cells, err := LoadPattern(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(cells[0]))
	assert.Equal(t, 3, len(cells[1]))
}

func TestLoadPatternEmptyInput(t *testing.T) {
	cells, err := LoadPattern(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Nil(t, cells)
}
