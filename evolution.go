package hashlife

import "math"

// fullSteps returns the number of generations a branch of the given Size
// represents in full: 1<<size, except it saturates to math.MaxUint64
// once size reaches 64 instead of following Go's defined-but-surprising
// rule that left-shifting a uint64 by its own bit width or more yields 0.
// Jump never asks advance for more than a 63-bit steps count, so the
// saturated branch only matters for the extra headroom padding Jump adds
// beyond what servicing generations strictly requires: without it, a
// Size of 64 or more would make full wrap to 0 and collide with a
// legitimate steps == 0 request below.
func fullSteps(size int) uint64 {
	if size >= 64 {
		return math.MaxUint64
	}
	return uint64(1) << uint(size)
}

// pad returns a branch one size larger than n, with n's content centered
// inside a ring of newly-dead border: each of the new branch's four
// children is itself a branch holding n's matching child in the
// diagonally-opposite corner, dead elsewhere. Repeated padding is how a
// trimmed pattern grows enough room for Jump to advance it by large
// generation counts without any live activity reaching the working
// region's edge.
func (u *Universe) pad(n *Node) *Node {
	mustBranch(n)

	var dead *Node
	if n.Size == 0 {
		dead = DeadLeaf()
	} else {
		dead = u.DeadOfSize(n.Size - 1)
	}

	tl := u.Make(dead, dead, dead, n.TL)
	tr := u.Make(dead, dead, n.TR, dead)
	bl := u.Make(dead, n.BL, dead, dead)
	br := u.Make(n.BR, dead, dead, dead)

	return u.Make(tl, tr, bl, br)
}

// crop returns the centered node one size smaller than n, with no
// generations elapsed — the single-node generalization of center. It is
// always safe regardless of margin: it is an exact view of n's existing
// state, not an approximation, so it never needs to consult a memoized
// Result.
func (u *Universe) crop(n *Node) *Node {
	mustBranch(n)
	if n.Size == 0 {
		// n's children are leaves; take the inner 2x2 of the 4x4 grid
		// directly, since leaves have no children to recurse into.
		return Leaf(n.TL.Tile[3], n.TR.Tile[2], n.BL.Tile[1], n.BR.Tile[0])
	}
	return u.center(n.TL, n.TR, n.BL, n.BR)
}

// advanceKey identifies one (node, elapsed-steps) subproblem solved by
// advance. Without memoizing on this pair, the nine-cell recursion below
// revisits the same pair many times over as it fans out across a single
// level (the shared edge and center cells each feed two or four of the
// parent's four quadrants), and that redundant work compounds with
// recursion depth.
type advanceKey struct {
	node  *Node
	steps uint64
}

// advance returns the centered node one size smaller than n after exactly
// steps generations, where n is a branch of size k and 0 <= steps <=
// 2^k. It generalizes Result (the steps == 2^k case, already memoized on
// the node itself) to any smaller step count by recursing into the same
// nine overlapping size-(k-1) cells Result is built from, asking each for
// only as much time as is actually wanted instead of the full 2^(k-1) a
// direct Result read would commit to.
func (u *Universe) advance(n *Node, steps uint64) *Node {
	mustBranch(n)

	full := fullSteps(n.Size)
	if steps == full {
		return n.Result
	}
	if n.Size == 0 {
		// full == 1 here, and steps != full, so steps must be 0: a pure
		// recentring with no time elapsed.
		return u.crop(n)
	}

	key := advanceKey{n, steps}
	if cached, ok := u.advanceCache[key]; ok {
		return cached
	}

	tm := u.horiz(n.TL, n.TR)
	bm := u.horiz(n.BL, n.BR)
	ml := u.vert(n.TL, n.BL)
	mr := u.vert(n.TR, n.BR)
	mm := u.center(n.TL, n.TR, n.BL, n.BR)

	// Split steps across (at most) two passes over the nine cells, each
	// pass bounded by what a size-(k-1) cell can service in one go — the
	// same two-pass shape stepMacro uses to reach a full 2^k from two
	// half-speed consolidations.
	half := full / 2
	s1 := steps
	if s1 > half {
		s1 = half
	}
	s2 := steps - s1

	rtl := u.consolidateBy(n.TL, tm, ml, mm, s1)
	rtr := u.consolidateBy(tm, n.TR, mm, mr, s1)
	rbl := u.consolidateBy(ml, mm, n.BL, bm, s1)
	rbr := u.consolidateBy(mm, mr, bm, n.BR, s1)

	var result *Node
	if s2 == 0 {
		result = u.Make(u.crop(rtl), u.crop(rtr), u.crop(rbl), u.crop(rbr))
	} else {
		result = u.consolidateBy(rtl, rtr, rbl, rbr, s2)
	}

	u.advanceCache[key] = result
	return result
}

// consolidateBy is consolidate generalized from "each child's full
// Result" to "each child advanced by exactly steps generations".
func (u *Universe) consolidateBy(a, b, c, d *Node, steps uint64) *Node {
	return u.Make(u.advance(a, steps), u.advance(b, steps), u.advance(c, steps), u.advance(d, steps))
}

// Jump advances n by exactly generations steps and returns the trimmed
// result. The node is padded first so that its own size can service the
// whole request in a single advance call, with two further rings of
// headroom so the margin around the pattern stays provably dead
// throughout.
//
// generations may be any value representable in 63 bits; behavior beyond
// that is unspecified.
func (u *Universe) Jump(n *Node, generations uint64) *Node {
	n = Trim(n)
	if generations == 0 {
		return n
	}

	if n.IsLeaf() {
		n = u.Make(n, DeadLeaf(), DeadLeaf(), DeadLeaf())
	}

	for fullSteps(n.Size) < generations {
		n = u.pad(n)
	}
	n = u.pad(n)
	n = u.pad(n)

	return Trim(u.advance(n, generations))
}
