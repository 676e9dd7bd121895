package hashlife

// stepMacro builds a branch whose four children are themselves same-size
// branches, and computes its Result by the standard Hashlife
// construction: nine overlapping size-k macrocells are formed from the
// children's children, each pair/quad joined by horiz/vert/center; the
// nine cells' own (already memoized) Results are consolidated into four
// quarter-results, and those four are consolidated once more into the
// final Result, one size smaller than this branch.
func (u *Universe) stepMacro(ch Children) *Node {
	k := ch.TL.Size

	tm := u.horiz(ch.TL, ch.TR)
	bm := u.horiz(ch.BL, ch.BR)
	ml := u.vert(ch.TL, ch.BL)
	mr := u.vert(ch.TR, ch.BR)
	mm := u.center(ch.TL, ch.TR, ch.BL, ch.BR)

	rtl := u.consolidate(ch.TL, tm, ml, mm)
	rtr := u.consolidate(tm, ch.TR, mm, mr)
	rbl := u.consolidate(ml, mm, ch.BL, bm)
	rbr := u.consolidate(mm, mr, bm, ch.BR)

	result := u.consolidate(rtl, rtr, rbl, rbr)

	return &Node{
		Children: ch,
		Result:   result,
		Size:     k + 1,
		Dead:     allDead(ch),
	}
}

func mustBranch(n *Node) {
	if n.IsLeaf() {
		panic("hashlife: operator called with a leaf where a branch was required")
	}
}

func mustSameSize(a, b *Node) {
	if a.Size != b.Size {
		panic("hashlife: operator called with branches of differing size")
	}
}

// horiz joins the east half of left with the west half of right, one
// size smaller: the result's children are left.TR, right.TL, left.BR,
// right.BL.
func (u *Universe) horiz(left, right *Node) *Node {
	mustBranch(left)
	mustBranch(right)
	mustSameSize(left, right)
	return u.Make(left.TR, right.TL, left.BR, right.BL)
}

// vert joins the south half of top with the north half of bottom, one
// size smaller: the result's children are top.BL, top.BR, bottom.TL,
// bottom.TR.
func (u *Universe) vert(top, bottom *Node) *Node {
	mustBranch(top)
	mustBranch(bottom)
	mustSameSize(top, bottom)
	return u.Make(top.BL, top.BR, bottom.TL, bottom.TR)
}

// center takes the innermost quadrant of each of four same-size
// branches arranged tl/tr/bl/br, one size smaller: the result's children
// are tl.BR, tr.BL, bl.TR, br.TL.
func (u *Universe) center(tl, tr, bl, br *Node) *Node {
	mustBranch(tl)
	mustBranch(tr)
	mustBranch(bl)
	mustBranch(br)
	mustSameSize(tl, tr)
	mustSameSize(tl, bl)
	mustSameSize(tl, br)
	return u.Make(tl.BR, tr.BL, bl.TR, br.TL)
}

// consolidate is the operator that advances time: given four same-size
// branches, it joins their memoized Results (each already one size
// smaller and 2x the generations further along) into a single node one
// size smaller than the inputs.
func (u *Universe) consolidate(tl, tr, bl, br *Node) *Node {
	mustBranch(tl)
	mustBranch(tr)
	mustBranch(bl)
	mustBranch(br)
	mustSameSize(tl, tr)
	mustSameSize(tl, bl)
	mustSameSize(tl, br)
	return u.Make(tl.Result, tr.Result, bl.Result, br.Result)
}

// DeadOfSize returns the canonical all-dead branch of the given size
// (k < 0 returns the dead leaf).
func (u *Universe) DeadOfSize(k int) *Node {
	if k < 0 {
		return DeadLeaf()
	}
	child := u.DeadOfSize(k - 1)
	return u.Make(child, child, child, child)
}

// IsAllDead reports whether every cell within n's region is dead. O(1):
// it reads the cached Dead flag rather than scanning the tree, for both
// leaves and branches.
func IsAllDead(n *Node) bool {
	return n.Dead
}

// Trim returns the canonical smallest node representing the same
// live-cell set as n: if three of n's four children are dead, Trim
// descends into the remaining one; if all four are dead, it collapses to
// the dead leaf; otherwise n is already minimal and is returned
// unchanged. Trim never constructs a node (it only returns existing
// handles), so it needs no Universe.
func Trim(n *Node) *Node {
	if n.IsLeaf() {
		return n
	}

	tlDead := IsAllDead(n.TL)
	trDead := IsAllDead(n.TR)
	blDead := IsAllDead(n.BL)
	brDead := IsAllDead(n.BR)

	deadCount := 0
	for _, dead := range [4]bool{tlDead, trDead, blDead, brDead} {
		if dead {
			deadCount++
		}
	}

	switch {
	case deadCount == 4:
		return DeadLeaf()
	case deadCount == 3:
		switch {
		case !tlDead:
			return Trim(n.TL)
		case !trDead:
			return Trim(n.TR)
		case !blDead:
			return Trim(n.BL)
		default:
			return Trim(n.BR)
		}
	default:
		return n
	}
}
