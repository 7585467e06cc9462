package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"layerpaint/internal/app"
	"layerpaint/internal/check"
	"layerpaint/internal/layer"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 64, "number of sessions to generate")
	first := flag.Int64("seed", 1, "first seed")
	steps := flag.Int("steps", 400, "operations per session")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %v", err)
	}

	sc := cfg.Session()
	reg := layer.Default()
	fmt.Printf("Checking %d sessions (%s %dx%d, %d workers, %d steps)\n",
		*seeds, sc.Grid.Policy, sc.Grid.Width, sc.Grid.Height, *workers, *steps)

	var (
		mu  sync.Mutex
		all []check.Result
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	start := time.Now()
	for i := 0; i < *seeds; i++ {
		seed := *first + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := check.Run(sc, reg, seed, *steps, cfg.Background, 0)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			mu.Lock()
			all = append(all, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("replay check: %v", err)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	failed := 0
	for _, res := range all {
		if !res.Match {
			failed++
			fmt.Printf("MISMATCH %s\n", res)
		}
	}
	fmt.Printf("\n%d/%d sessions replayed identically (elapsed %s)\n",
		len(all)-failed, len(all), time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}
