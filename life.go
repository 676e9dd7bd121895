package hashlife

// stepBase builds the smallest branch (size 0, four leaf children) and
// computes its Result: one generation of B3/S23 Life applied to the
// inner 2x2 of the 4x4 grid the four leaves stitch together. This is the
// base case of the temporal recursion — every deeper Result is built by
// consolidating results that bottom out here.
func (u *Universe) stepBase(ch Children) *Node {
	grid := stitch(ch)
	inner := stepLife(grid)

	return &Node{
		Children: ch,
		Result:   Leaf(inner[0], inner[1], inner[2], inner[3]),
		Size:     0,
		Dead:     allDead(ch),
	}
}

// stitch assembles the four 2x2 leaf tiles of ch into one 4x4 grid, with
// tl/tr/bl/br occupying the matching quadrant of the combined grid. grid
// is indexed [row][col].
func stitch(ch Children) [4][4]bool {
	var grid [4][4]bool

	grid[0][0], grid[0][1] = ch.TL.Tile[0], ch.TL.Tile[1]
	grid[1][0], grid[1][1] = ch.TL.Tile[2], ch.TL.Tile[3]

	grid[0][2], grid[0][3] = ch.TR.Tile[0], ch.TR.Tile[1]
	grid[1][2], grid[1][3] = ch.TR.Tile[2], ch.TR.Tile[3]

	grid[2][0], grid[2][1] = ch.BL.Tile[0], ch.BL.Tile[1]
	grid[3][0], grid[3][1] = ch.BL.Tile[2], ch.BL.Tile[3]

	grid[2][2], grid[2][3] = ch.BR.Tile[0], ch.BR.Tile[1]
	grid[3][2], grid[3][3] = ch.BR.Tile[2], ch.BR.Tile[3]

	return grid
}

// innerPositions are the four cells of a 4x4 grid whose next generation
// a base-case step reports: (row, col) pairs for tl, tr, bl, br of the
// inner 2x2.
var innerPositions = [4][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}

// stepLife applies one generation of B3/S23 Life to the inner 2x2 of a
// 4x4 grid, returning the next state of those four cells in reading
// order. Neighbor counting excludes the cell itself — a dead cell with
// exactly three live neighbors is born, a live cell survives with two or
// three live neighbors, and all other cells die.
func stepLife(grid [4][4]bool) [4]bool {
	var out [4]bool

	for i, pos := range innerPositions {
		row, col := pos[0], pos[1]
		alive := grid[row][col]

		neighbors := 0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if grid[row+dr][col+dc] {
					neighbors++
				}
			}
		}

		out[i] = neighbors == 3 || (alive && neighbors == 2)
	}

	return out
}

func allDead(ch Children) bool {
	return IsAllDead(ch.TL) && IsAllDead(ch.TR) && IsAllDead(ch.BL) && IsAllDead(ch.BR)
}
