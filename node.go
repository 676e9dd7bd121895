/*Package hashlife implements Hashlife: an algorithm that advances Conway's
Game of Life by enormous numbers of generations in time sub-linear in the
generation count, by exploiting the self-similarity of cellular patterns
through aggressive memoization of a recursively defined quadtree.

A Node is either a Leaf (a fixed 2x2 tile of boolean cells) or a Branch
(a macrocell: four same-size children plus a memoized evolution Result).
Every Branch is constructed through a Universe, which interns it: two
branches built from pointer-identical children are always the same *Node.
This is what makes Hashlife's memoization effective — evolving a pattern
with a long-period oscillator or a repeated spaceship costs time
proportional to the number of distinct subtrees, not to the pattern's
area or the number of generations requested.

The hashlife algorithm is inspired by "An Algorithm for Compressing Space
and Time" (Gosper). Only B3/S23 Life is implemented; there is no general
rule-set support, no infinite-universe bookkeeping (the universe is a
finite square whose side is a power of two, grown by padding as needed),
and no garbage collection of the interning cache within a single run.
*/
package hashlife

// Children is the interning key for a Branch: the four child handles in
// reading order. Equality on Children is identity equality on the four
// pointers — never recursive structural equality — which is what keeps
// interning O(1) and makes evolution proportional to the number of
// distinct subtrees rather than to the pattern's area.
type Children struct {
	TL, TR, BL, BR *Node
}

// Node is a quadtree cell: either a Leaf (Children is the zero value,
// Tile holds its four cells) or a Branch (Children holds four same-size,
// same-variant sub-nodes, Result and Size and Dead are populated).
type Node struct {
	Children

	// Tile holds a Leaf's four cells in reading order (tl, tr, bl, br).
	// Meaningless for a Branch.
	Tile [4]bool

	// Result is the central region after 2^Size generations (one
	// generation, for a Size-0 branch whose children are leaves). Nil
	// for a Leaf.
	Result *Node

	// Size is the branch's level: side length is 2^(Size+2). Leaves are
	// conceptually size -1; this field is meaningless for a Leaf.
	Size int

	// Dead is true iff every cell within this node's region is dead.
	Dead bool
}

// IsLeaf reports whether n is a 2x2 leaf tile rather than a macrocell.
func (n *Node) IsLeaf() bool {
	return n.TL == nil
}

// Side returns the node's side length in cells: 2 for a leaf, 2^(Size+2)
// for a branch.
func (n *Node) Side() int {
	if n.IsLeaf() {
		return 2
	}
	return 1 << uint(n.Size+2)
}

// leaves caches all sixteen possible 2x2 tiles, indexed by the bit-packed
// tile value (tl<<3 | tr<<2 | bl<<1 | br). Leaves need not be interned
// through a Universe (spec allows, but does not require, leaf interning);
// caching the fixed, tiny set of possible leaves directly is cheaper and
// simpler than routing them through the map-based store used for
// branches.
var leaves [16]*Node

func init() {
	for i := range leaves {
		leaves[i] = &Node{
			Tile: [4]bool{i&8 != 0, i&4 != 0, i&2 != 0, i&1 != 0},
			Dead: i == 0,
		}
	}
}

func leafIndex(tl, tr, bl, br bool) int {
	idx := 0
	if tl {
		idx |= 8
	}
	if tr {
		idx |= 4
	}
	if bl {
		idx |= 2
	}
	if br {
		idx |= 1
	}
	return idx
}

// Leaf returns the canonical 2x2 leaf tile for the given cells, in
// reading order (tl, tr, bl, br).
func Leaf(tl, tr, bl, br bool) *Node {
	return leaves[leafIndex(tl, tr, bl, br)]
}

// DeadLeaf returns the canonical all-dead 2x2 leaf.
func DeadLeaf() *Node {
	return leaves[0]
}
