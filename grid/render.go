package grid

import (
	"strings"

	"github.com/noctilu/hashlife"
)

// Render maps n to a printable character grid: '#' for live cells, '_'
// for dead, '\n'-terminated rows.
func Render(n *hashlife.Node) string {
	cells := ToGrid(n)

	var b strings.Builder
	for _, row := range cells {
		for _, alive := range row {
			if alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('_')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
