package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogramCountsByLevel(t *testing.T) {
	u := NewUniverse()

	u.DeadOfSize(0) // one Size-0 branch (all dead)
	u.DeadOfSize(1) // shares the Size-0 branch above, plus one Size-1 (all dead)

	// a second, distinct Size-0 branch, and a second, distinct Size-1
	// branch built from it.
	live := u.Make(Leaf(true, false, false, false), DeadLeaf(), DeadLeaf(), DeadLeaf())
	u.Make(live, u.DeadOfSize(0), u.DeadOfSize(0), u.DeadOfSize(0))

	h := u.Histogram()
	assert.Equal(t, 2, h[0], "the all-dead and live-containing Size-0 branches are distinct")
	assert.Equal(t, 2, h[1], "the all-dead and live-containing Size-1 branches are distinct")
	assert.Equal(t, u.Len(), h[0]+h[1])
}

func TestHistogramEmptyUniverse(t *testing.T) {
	u := NewUniverse()
	h := u.Histogram()
	assert.Empty(t, h)
	assert.Empty(t, h.SortedLevels())
}

func TestSortedLevelsAscending(t *testing.T) {
	u := NewUniverse()
	u.DeadOfSize(4)

	levels := u.Histogram().SortedLevels()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, levels)
}

func TestStatsAggregatesSizeHitsMissesAndHistogram(t *testing.T) {
	u := NewUniverse()

	a := u.Make(DeadLeaf(), DeadLeaf(), DeadLeaf(), DeadLeaf())
	b := u.Make(DeadLeaf(), DeadLeaf(), DeadLeaf(), DeadLeaf()) // hit, same as a
	assert.Same(t, a, b)

	stats := u.Stats()
	assert.Equal(t, u.Len(), stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, LevelHistogram{0: 1}, stats.Histogram)
}
