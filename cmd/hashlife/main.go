// Command hashlife is the Hashlife driver: it loads a Game of Life
// pattern file, advances it by a requested number of generations, and
// prints the before/after grids.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/noctilu/hashlife"
	"github.com/noctilu/hashlife/grid"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "hashlife",
		Usage:   "advance a Game of Life pattern with the Hashlife algorithm",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "generations",
				Aliases: []string{"n"},
				Usage:   "number of generations to advance (defaults to one step of the macrocell's own memoized result)",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print universe interning statistics after the run",
			},
		},
		ArgsUsage: "PATTERN-FILE",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return fmt.Errorf("missing pattern file argument")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening pattern file: %w", err)
	}
	defer f.Close()

	cells, err := grid.LoadPattern(f)
	if err != nil {
		return fmt.Errorf("loading pattern: %w", err)
	}

	u := hashlife.NewUniverse()
	before := grid.FromGridInto(u, cells)

	generations := ctx.Uint64("generations")
	if !ctx.IsSet("generations") {
		generations = 1
		if !before.IsLeaf() {
			generations = 1 << uint(before.Size)
		}
	}

	fmt.Print("before:\n")
	fmt.Print(grid.Render(hashlife.Trim(before)))

	after := u.Jump(before, generations)

	fmt.Printf("\nafter %d generations:\n", generations)
	fmt.Print(grid.Render(after))

	if ctx.Bool("stats") {
		printStats(u)
	}

	return nil
}

func printStats(u *hashlife.Universe) {
	stats := u.Stats()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("universe cache stats")
	t.AppendRow(table.Row{"interned nodes", stats.Size})
	t.AppendRow(table.Row{"cache hits", stats.Hits})
	t.AppendRow(table.Row{"cache misses", stats.Misses})

	fmt.Println()
	t.Render()

	levels := table.NewWriter()
	levels.SetOutputMirror(os.Stdout)
	levels.SetTitle("nodes by size")
	levels.AppendHeader(table.Row{"size", "count"})
	for _, level := range stats.Histogram.SortedLevels() {
		levels.AppendRow(table.Row{level, stats.Histogram[level]})
	}
	fmt.Println()
	levels.Render()
}
