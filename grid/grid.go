// Package grid is the boundary between a plain boolean grid and the
// hashlife package's quadtree representation. It is not part of the
// core algorithm: FromGrid/ToGrid exist only to let the driver and
// pattern loader hand the core something it can work with, and to get
// a renderable grid back out.
package grid

import "github.com/noctilu/hashlife"

// FromGrid builds a *hashlife.Node from a possibly-jagged boolean grid
// in a fresh universe, dead-padding it to the smallest power-of-two
// square (side at least 2) before recursively building size-0 branches
// from its 2x2 tiles and composing them upward. cells is indexed
// [row][col]; row 0 is the top row, matching the pattern-file and
// rendered-output row order.
//
// Use FromGridInto instead when the node must later be passed to an
// existing Universe's Jump — a node built here is only interned against
// the throwaway universe FromGrid creates.
func FromGrid(cells [][]bool) *hashlife.Node {
	return FromGridInto(hashlife.NewUniverse(), cells)
}

// FromGridInto is FromGrid, but interns the resulting tree into u.
func FromGridInto(u *hashlife.Universe, cells [][]bool) *hashlife.Node {
	rows := len(cells)
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}

	side := 2
	for side < rows || side < cols {
		side *= 2
	}

	get := func(x, y int) bool {
		if y < 0 || y >= rows || x < 0 || x >= len(cells[y]) {
			return false
		}
		return cells[y][x]
	}

	return buildFromGrid(u, get, 0, 0, side)
}

func buildFromGrid(u *hashlife.Universe, get func(x, y int) bool, x, y, side int) *hashlife.Node {
	if side == 2 {
		return hashlife.Leaf(get(x, y), get(x+1, y), get(x, y+1), get(x+1, y+1))
	}
	half := side / 2
	tl := buildFromGrid(u, get, x, y, half)
	tr := buildFromGrid(u, get, x+half, y, half)
	bl := buildFromGrid(u, get, x, y+half, half)
	br := buildFromGrid(u, get, x+half, y+half, half)
	return u.Make(tl, tr, bl, br)
}

// ToGrid recursively concatenates n's child grids into one side x side
// boolean grid, row 0 on top, matching FromGrid's row order.
func ToGrid(n *hashlife.Node) [][]bool {
	side := n.Side()
	cells := make([][]bool, side)
	for i := range cells {
		cells[i] = make([]bool, side)
	}
	writeGrid(n, cells, 0, 0)
	return cells
}

func writeGrid(n *hashlife.Node, cells [][]bool, x, y int) {
	if n.IsLeaf() {
		cells[y][x], cells[y][x+1] = n.Tile[0], n.Tile[1]
		cells[y+1][x], cells[y+1][x+1] = n.Tile[2], n.Tile[3]
		return
	}
	half := n.Side() / 2
	writeGrid(n.TL, cells, x, y)
	writeGrid(n.TR, cells, x+half, y)
	writeGrid(n.BL, cells, x, y+half)
	writeGrid(n.BR, cells, x+half, y+half)
}
