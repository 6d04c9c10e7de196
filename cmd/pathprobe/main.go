// pathprobe benchmarks route queries over a freshly generated world:
// random start/goal pairs drawn from passable surface cells, issued across
// concurrent workers with a chosen capability archetype.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cgcardona/bugtopia-sub000/internal/pathfinding"
	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
	"github.com/cgcardona/bugtopia-sub000/internal/world"
)

type probeJob struct {
	start world.GridCoord
	goal  world.GridCoord
}

func main() {
	var (
		totalRequests = flag.Int("requests", 2000, "number of route requests to issue")
		concurrency   = flag.Int("concurrency", runtime.NumCPU(), "number of concurrent workers")
		resolution    = flag.Int("resolution", 32, "world grid resolution")
		worldTypeFlag = flag.String("type", "continental", "world type to generate")
		archetypeFlag = flag.String("archetype", "walker", "capability archetype: walker, climber, swimmer, flyer, burrower")
		timeout       = flag.Duration("timeout", 250*time.Millisecond, "per-request timeout")
		seed          = flag.Int64("seed", 1337, "world seed, also seeds start/goal selection")
	)
	flag.Parse()

	if *totalRequests <= 0 {
		fmt.Fprintln(os.Stderr, "requests must be positive")
		os.Exit(1)
	}
	if *concurrency <= 0 {
		fmt.Fprintln(os.Stderr, "concurrency must be positive")
		os.Exit(1)
	}
	worldType, ok := terrain.WorldTypeFromString(*worldTypeFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown world type %q\n", *worldTypeFlag)
		os.Exit(1)
	}

	bounds := world.Bounds{MinX: -500, MinY: -500, Width: 1000, Height: 1000}
	w := world.New(bounds, worldType, *resolution, *seed)
	navigator := pathfinding.NewNavigator(w)
	traits := pathfinding.DefaultTraits(pathfinding.ArchetypeFromString(*archetypeFlag))

	candidates := collectCandidates(w, traits)
	if len(candidates) < 2 {
		fmt.Fprintln(os.Stderr, "not enough traversable cells to probe")
		os.Exit(1)
	}

	jobs := make(chan probeJob)
	go func() {
		defer close(jobs)
		rng := rand.New(rand.NewSource(*seed))
		for i := 0; i < *totalRequests; i++ {
			start := candidates[rng.Intn(len(candidates))]
			goal := candidates[rng.Intn(len(candidates))]
			for start == goal {
				goal = candidates[rng.Intn(len(candidates))]
			}
			jobs <- probeJob{start: start, goal: goal}
		}
	}()

	var (
		wg                 sync.WaitGroup
		successes          int64
		failures           int64
		timeouts           int64
		budgetExhausted    int64
		totalSuccessLength int64
	)

	worker := func() {
		defer wg.Done()
		for job := range jobs {
			routeCtx, cancel := context.WithTimeout(context.Background(), *timeout)
			route, err := navigator.FindRoute(routeCtx, job.start, job.goal, traits)
			cancel()

			switch {
			case err == nil:
				atomic.AddInt64(&successes, 1)
				atomic.AddInt64(&totalSuccessLength, int64(len(route)-1))
			case errors.Is(err, context.DeadlineExceeded):
				atomic.AddInt64(&timeouts, 1)
			case errors.Is(err, pathfinding.ErrBudgetExceeded):
				atomic.AddInt64(&budgetExhausted, 1)
			default:
				atomic.AddInt64(&failures, 1)
			}
		}
	}

	wg.Add(*concurrency)
	for i := 0; i < *concurrency; i++ {
		go worker()
	}

	startWall := time.Now()
	wg.Wait()
	wallDuration := time.Since(startWall)

	succ := atomic.LoadInt64(&successes)
	avgPathLength := 0.0
	if succ > 0 {
		avgPathLength = float64(atomic.LoadInt64(&totalSuccessLength)) / float64(succ)
	}
	snap := navigator.Metrics().Snapshot()
	avgDuration := time.Duration(0)
	if snap.RoutesRequested > 0 {
		avgDuration = snap.SearchTime / time.Duration(snap.RoutesRequested)
	}

	fmt.Println("== Route Probe ==")
	fmt.Printf("World: %s resolution %d seed %d\n", worldType, *resolution, *seed)
	fmt.Printf("Archetype: %s\n", *archetypeFlag)
	fmt.Printf("Requests: %d  Concurrency: %d\n", *totalRequests, *concurrency)
	fmt.Printf("Successes: %d, Failures: %d, Timeouts: %d, Budget exhausted: %d\n",
		succ, atomic.LoadInt64(&failures), atomic.LoadInt64(&timeouts), atomic.LoadInt64(&budgetExhausted))
	fmt.Printf("Average path length (steps): %.2f\n", avgPathLength)
	fmt.Printf("Average search time: %s\n", avgDuration)
	fmt.Printf("Nodes expanded: %d, Neighbors tested: %d, Cost rejections: %d\n",
		snap.NodesExpanded, snap.NeighborsTested, snap.CostRejections)
	fmt.Printf("Wall time: %s (%.0f req/s)\n",
		wallDuration.Round(time.Millisecond),
		float64(*totalRequests)/wallDuration.Seconds())
}

// collectCandidates gathers surface cells the archetype can actually stand
// in, so probe failures measure reachability rather than blocked endpoints.
func collectCandidates(w *world.VoxelWorld, traits pathfinding.Traits) []world.GridCoord {
	var candidates []world.GridCoord
	for _, c := range w.VoxelsInLayer(world.LayerSurface) {
		v := w.VoxelAt(c)
		if v == nil {
			continue
		}
		if _, ok := pathfinding.TransitionCost(v.Transition, traits); !ok {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}
