package grid

import (
	"bufio"
	"io"
)

// LoadPattern reads a line-oriented pattern file from r: each line is a
// row, byte '#' means a live cell, any other byte means dead. Each row
// keeps its own line's length; FromGrid treats cells past the end of a
// shorter row as dead. The number of rows need not equal the longest
// row's length — FromGrid handles squaring and padding from there.
func LoadPattern(r io.Reader) ([][]bool, error) {
	var rows [][]bool

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		row := make([]bool, len(line))
		for i := 0; i < len(line); i++ {
			row[i] = line[i] == '#'
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}
