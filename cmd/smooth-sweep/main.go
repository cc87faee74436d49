package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"terragen/internal/app"
	"terragen/internal/surfaces/terrain"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 42, "generation seed shared by every run")
	size := flag.Int("size", 256, "grid width and height for each run")
	top := flag.Int("top", 5, "number of results to print")
	var overrides app.KVList
	flag.Var(&overrides, "set", "terrain override in key=value form (repeatable)")
	flag.Parse()

	base := terrain.FromMap(overrides.Map())
	base.Width, base.Height = *size, *size

	var sets []kernelSet
	for _, radius := range []int{0, 1, 2, 3, 4, 6} {
		for _, sigma := range []float32{1, 2, 3, 4.5} {
			sets = append(sets, kernelSet{kind: "gaussian", radius: radius, sigma: sigma})
		}
	}
	sets = append(sets, kernelSet{kind: "box", radius: 1})

	fmt.Printf("Sweeping %d kernels (%d workers, %dx%d grid)\n", len(sets), *workers, *size, *size)

	jobs := make(chan kernelSet)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				res, err := runKernel(base, k, *seed)
				if err != nil {
					log.Printf("%s: %v", k, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, k := range sets {
			jobs <- k
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	// Smoothest first; ties broken by cost.
	sort.Slice(all, func(i, j int) bool {
		if all[i].meanDeviation != all[j].meanDeviation {
			return all[i].meanDeviation < all[j].meanDeviation
		}
		return all[i].elapsed < all[j].elapsed
	})

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}
