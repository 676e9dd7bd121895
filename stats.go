package hashlife

import "sort"

// LevelHistogram counts interned branches by Size. Leaves are not
// interned through the Universe and so never appear here.
type LevelHistogram map[int]int

// SortedLevels returns the histogram's keys in ascending order.
func (h LevelHistogram) SortedLevels() []int {
	levels := make([]int, 0, len(h))
	for level := range h {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// Histogram returns the current count of interned branches at each Size.
func (u *Universe) Histogram() LevelHistogram {
	h := make(LevelHistogram)
	for _, shard := range u.shards {
		for _, n := range shard {
			h[n.Size]++
		}
	}
	return h
}

// Stats summarizes the universe's cache: total interned node count, hit
// and miss counts from Make, and the per-size histogram.
type Stats struct {
	Size      int
	Hits      uint64
	Misses    uint64
	Histogram LevelHistogram
}

// Stats snapshots the universe's current cache statistics.
func (u *Universe) Stats() Stats {
	return Stats{
		Size:      u.Len(),
		Hits:      u.hits,
		Misses:    u.misses,
		Histogram: u.Histogram(),
	}
}
