package hashlife

import (
	"github.com/dolthub/maphash"
)

// shardCount is the number of independent maps the interning store splits
// its keys across. The universe is expected to grow to many millions of
// entries over a long run (see Stats), and Make sits on the hottest path
// in the package, so a single giant map's incremental growth/rehash cost
// is spread across many smaller maps instead.
const shardCount = 64

// Universe is the canonical node set: a mapping from a Children key to
// the one Branch built from exactly those four children. It is explicit,
// caller-owned state — never a package global — and must be threaded
// through every constructing call; nothing here is safe for concurrent
// use without external synchronization, matching the single-threaded,
// exclusive-mutation model this package assumes.
type Universe struct {
	shards [shardCount]map[Children]*Node
	hash   maphash.Hasher[Children]

	// advanceCache memoizes advance's (node, steps) subproblems. Separate
	// from shards: its keys are not canonical branch identities, just a
	// cache of a pure function's results.
	advanceCache map[advanceKey]*Node

	hits   uint64
	misses uint64
}

// NewUniverse returns an empty interning store.
func NewUniverse() *Universe {
	u := &Universe{
		hash:         maphash.NewHasher[Children](),
		advanceCache: make(map[advanceKey]*Node),
	}
	for i := range u.shards {
		u.shards[i] = make(map[Children]*Node)
	}
	return u
}

func (u *Universe) shardIndex(ch Children) uint64 {
	return u.hash.Hash(ch) % shardCount
}

// Len returns the total number of interned branches across all shards.
func (u *Universe) Len() int {
	n := 0
	for _, shard := range u.shards {
		n += len(shard)
	}
	return n
}

// CacheStats returns the running count of Make calls that found an
// existing branch (hits) versus had to build one (misses).
func (u *Universe) CacheStats() (hits, misses uint64) {
	return u.hits, u.misses
}

// Make is the sole constructor for branches: given four children sharing
// variant and size, it returns the canonical branch for that exact
// 4-tuple, building and interning one if none exists yet.
//
// Calling Make with children of differing variant or differing size is a
// precondition violation and panics — it is unreachable if the rest of
// this package's public API is used correctly (spec: programmer error).
func (u *Universe) Make(tl, tr, bl, br *Node) *Node {
	if tl.IsLeaf() != tr.IsLeaf() || tl.IsLeaf() != bl.IsLeaf() || tl.IsLeaf() != br.IsLeaf() {
		panic("hashlife: Make called with children of differing variant")
	}
	if !tl.IsLeaf() && (tl.Size != tr.Size || tl.Size != bl.Size || tl.Size != br.Size) {
		panic("hashlife: Make called with children of differing size")
	}

	key := Children{tl, tr, bl, br}
	idx := u.shardIndex(key)
	if existing, ok := u.shards[idx][key]; ok {
		u.hits++
		return existing
	}
	u.misses++

	var node *Node
	if tl.IsLeaf() {
		node = u.stepBase(key)
	} else {
		node = u.stepMacro(key)
	}

	u.shards[idx][key] = node
	return node
}
