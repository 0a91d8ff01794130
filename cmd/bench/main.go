package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/eisen"
	"github.com/aretw0/eisen/pkg/core"
)

// bench measures what a mutation costs with each storage adapter: every
// change rewrites the whole snapshot, so cost grows with the board size.
func main() {
	count := flag.Int("count", 500, "Number of notes to create")
	adapter := flag.String("adapter", eisen.AdapterFS, "Storage adapter: fs, sqlite or memory")
	format := flag.String("format", "json", "Snapshot format: json or yaml")
	versioned := flag.Bool("git", false, "Commit every write (fs only)")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "eisen_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	open := func() *eisen.App {
		app, err := eisen.New(context.Background(), benchDir,
			eisen.WithAdapter(*adapter),
			eisen.WithFormat(*format),
			eisen.WithVersioning(*versioned),
			eisen.WithLogger(logger),
		)
		if err != nil {
			panic(err)
		}
		return app
	}

	ctx := context.Background()
	app := open()
	app.SignIn(ctx, "bench")
	store, _ := app.Store()

	fmt.Printf("Creating %d notes with the %s adapter in %s...\n", *count, *adapter, benchDir)
	quadrants := core.Quadrants()
	startCreate := time.Now()
	for i := range *count {
		_, err := store.Create(ctx, core.Fields{
			Title:    fmt.Sprintf("Note %d", i),
			Body:     "generated by eisen bench",
			Quadrant: quadrants[i%len(quadrants)],
		})
		if err != nil {
			panic(err)
		}
	}
	createTook := time.Since(startCreate)

	startMove := time.Now()
	for i, n := range store.Notes() {
		if err := store.Move(ctx, n.ID, quadrants[(i+1)%len(quadrants)]); err != nil {
			panic(err)
		}
	}
	moveTook := time.Since(startMove)
	app.Close()

	// Reopen to simulate the next CLI command.
	startLoad := time.Now()
	again := open()
	again.Resume(ctx)
	reloaded, _ := again.Store()
	loadTook := time.Since(startLoad)
	again.Close()

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes, %s/%s):\n", *count, *adapter, *format)
	fmt.Printf("  Create: %v (%v per note)\n", createTook, createTook/time.Duration(max(*count, 1)))
	fmt.Printf("  Move:   %v\n", moveTook)
	fmt.Printf("  Load:   %v (items: %d)\n", loadTook, reloaded.Len())
	fmt.Printf("--------------------------------------------------\n")
}
