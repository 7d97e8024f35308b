// Command cave-sweep generates many seeds in parallel and reports how each
// map came out, flagging any map whose floor is not a single region.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"mad-caves/internal/app"
	"mad-caves/pkg/cave"
)

type sweepResult struct {
	seed    int64
	stats   cave.Stats
	floor   int
	regions int
}

func (r sweepResult) connected() bool { return r.regions <= 1 }

func main() {
	seeds := flag.Int("seeds", 100, "number of seeds to generate")
	first := flag.Int64("first", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	level := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	var set app.KVList
	flag.Var(&set, "set", "generator parameter in key=value form (repeatable)")
	flag.Parse()

	cfg := cave.FromMap(set.Map())
	app.NewLogger(os.Stderr, *level).Info("sweep",
		"seeds", *seeds, "workers", *workers, "w", cfg.Width, "h", cfg.Height)

	start := time.Now()
	all := sweep(cfg, *first, *seeds, *workers)
	report(os.Stdout, all, time.Since(start))

	for _, res := range all {
		if !res.connected() {
			os.Exit(1)
		}
	}
}

func sweep(cfg cave.Config, first int64, seeds, workers int) []sweepResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(cfg, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < seeds; i++ {
			jobs <- first + int64(i)
		}
		close(jobs)
	}()

	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all
}

func runSeed(cfg cave.Config, seed int64) sweepResult {
	b := cave.New(cfg, cave.WithSeed(seed)).Build()
	grid := b.Run()
	return sweepResult{
		seed:    seed,
		stats:   b.Stats(),
		floor:   grid.Count(false),
		regions: len(cave.Regions(grid, false)),
	}
}

func report(w io.Writer, all []sweepResult, elapsed time.Duration) {
	var rooms, passages, forced, broken int
	for _, res := range all {
		st := res.stats
		mark := ""
		if !res.connected() {
			mark = "  DISCONNECTED"
			broken++
		}
		fmt.Fprintf(w, "seed=%d floor=%d rooms=%d passages=%d forced=%d pruned=%d+%d%s\n",
			res.seed, res.floor, st.Rooms, st.Passages, st.Forced, st.IslandsRemoved, st.CavesRemoved, mark)
		rooms += st.Rooms
		passages += st.Passages
		forced += st.Forced
	}
	if len(all) == 0 {
		return
	}
	n := float64(len(all))
	fmt.Fprintf(w, "\n%d maps in %s: avg rooms %.1f, avg passages %.1f, avg forced %.1f, disconnected %d\n",
		len(all), elapsed.Round(time.Millisecond), float64(rooms)/n, float64(passages)/n, float64(forced)/n, broken)
}
