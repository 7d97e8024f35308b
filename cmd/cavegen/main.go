// Command cavegen generates a cave map and prints it as text, optionally with
// the shortest path between two cells.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mad-caves/internal/app"
	"mad-caves/internal/render"
	"mad-caves/pkg/astar"
	"mad-caves/pkg/cave"
	"mad-caves/pkg/core"
)

var errBadCell = errors.New("cell must be col,row")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "cavegen:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 42, "seed for map generation")
	from := fs.String("from", "", "path start as col,row")
	to := fs.String("to", "", "path goal as col,row")
	penalty := fs.Float64("border-penalty", astar.DefaultBorderPenalty, "cost multiplier for steps onto cells next to walls")
	level := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	var set app.KVList
	fs.Var(&set, "set", "generator parameter in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := app.NewLogger(stderr, *level)
	grid := cave.Generate(cave.FromMap(set.Map()), cave.WithSeed(*seed), cave.WithLogger(logger))
	scene := render.Scene{Grid: grid}

	var res astar.Result
	if *from != "" || *to != "" {
		start, err := parseCell(*from)
		if err != nil {
			return fmt.Errorf("-from: %w", err)
		}
		goal, err := parseCell(*to)
		if err != nil {
			return fmt.Errorf("-to: %w", err)
		}
		res, err = astar.FindPath(start, goal, grid, astar.WithBorderPenalty(*penalty))
		if err != nil {
			return err
		}
		scene.Path = res.Path
		scene.Start, scene.Goal = &start, &goal
	}

	fmt.Fprint(stdout, render.Text(scene))
	if scene.Start != nil {
		if res.Found {
			fmt.Fprintf(stdout, "path: %d cells, cost %.2f\n", res.Len(), res.Cost)
		} else {
			fmt.Fprintln(stdout, "path: unreachable")
		}
	}
	return nil
}

func parseCell(s string) (core.Cell, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	if !ok {
		return core.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return core.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return core.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	return core.C(col, row), nil
}
