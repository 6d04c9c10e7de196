package pathfinding

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cgcardona/bugtopia-sub000/internal/world"
)

// DefaultNodeBudget bounds a single search. The grid is finite, so the
// budget mostly guards against pathological trait/terrain combinations that
// flood-fill the whole volume before failing.
const DefaultNodeBudget = 50_000

var (
	ErrOutOfBounds    = errors.New("coordinate outside the grid")
	ErrStartBlocked   = errors.New("start cell not traversable for these traits")
	ErrGoalBlocked    = errors.New("goal cell not traversable for these traits")
	ErrNoRoute        = errors.New("no traversable route")
	ErrBudgetExceeded = errors.New("search node budget exceeded")
)

// Navigator performs A* search over the voxel connectivity graph with
// capability-gated step costs. It only reads the world, so one navigator may
// serve concurrent callers.
type Navigator struct {
	world      *world.VoxelWorld
	nodeBudget int
	metrics    *NavigatorMetrics
}

func NewNavigator(w *world.VoxelWorld) *Navigator {
	return &Navigator{
		world:      w,
		nodeBudget: DefaultNodeBudget,
		metrics:    &NavigatorMetrics{},
	}
}

// WithNodeBudget overrides the per-search expansion bound.
func (n *Navigator) WithNodeBudget(budget int) *Navigator {
	if budget > 0 {
		n.nodeBudget = budget
	}
	return n
}

// Metrics exposes the accumulated search counters.
func (n *Navigator) Metrics() *NavigatorMetrics {
	return n.metrics
}

// FindRoute locates a cheapest path between two grid cells for an organism
// with the given traits. The route includes both endpoints. Neighbor
// expansion follows the voxel edge map, so structural rules (no vertical
// movement through plain air) hold automatically.
func (n *Navigator) FindRoute(ctx context.Context, start, goal world.GridCoord, traits Traits) ([]world.GridCoord, error) {
	n.metrics.routesRequested.Add(1)
	started := time.Now()
	defer func() {
		n.metrics.searchTime.Add(time.Since(started).Nanoseconds())
	}()

	route, err := n.search(ctx, start, goal, traits)
	if err != nil {
		n.metrics.routesFailed.Add(1)
		return nil, err
	}
	n.metrics.routesFound.Add(1)
	return route, nil
}

func (n *Navigator) search(ctx context.Context, start, goal world.GridCoord, traits Traits) ([]world.GridCoord, error) {
	startVoxel := n.world.VoxelAt(start)
	goalVoxel := n.world.VoxelAt(goal)
	if startVoxel == nil || goalVoxel == nil {
		return nil, ErrOutOfBounds
	}
	if _, ok := TransitionCost(startVoxel.Transition, traits); !ok {
		return nil, ErrStartBlocked
	}
	if _, ok := TransitionCost(goalVoxel.Transition, traits); !ok {
		return nil, ErrGoalBlocked
	}
	if start == goal {
		return []world.GridCoord{start}, nil
	}

	open := &nodeQueue{}
	heap.Init(open)
	heap.Push(open, &pathNode{coord: start})

	cameFrom := map[world.GridCoord]world.GridCoord{}
	gScore := map[world.GridCoord]float64{start: 0}

	expanded := 0
	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("route search: %w", ctx.Err())
		default:
		}

		current := heap.Pop(open).(*pathNode)
		if current.coord == goal {
			return reconstruct(cameFrom, current.coord), nil
		}

		expanded++
		n.metrics.nodesExpanded.Add(1)
		if expanded > n.nodeBudget {
			return nil, ErrBudgetExceeded
		}

		voxel := n.world.VoxelAt(current.coord)
		if voxel == nil {
			continue
		}
		for d := world.Direction(0); d < world.DirectionCount; d++ {
			if !voxel.EdgeTo(d) {
				continue
			}
			n.metrics.neighborsTested.Add(1)
			next := current.coord.Step(d)
			neighbor := n.world.VoxelAt(next)
			if neighbor == nil {
				continue
			}
			stepCost, ok := TransitionCost(neighbor.Transition, traits)
			if !ok {
				n.metrics.costRejections.Add(1)
				continue
			}
			tentative := gScore[current.coord] + stepCost
			if best, seen := gScore[next]; seen && tentative >= best {
				continue
			}
			cameFrom[next] = current.coord
			gScore[next] = tentative
			heap.Push(open, &pathNode{coord: next, priority: tentative + heuristic(next, goal)})
		}
	}

	return nil, ErrNoRoute
}

// heuristic is the Manhattan grid distance, admissible because every
// passable step costs at least 1.
func heuristic(a, b world.GridCoord) float64 {
	return float64(absInt(a.X-b.X) + absInt(a.Y-b.Y) + absInt(a.Z-b.Z))
}

func reconstruct(cameFrom map[world.GridCoord]world.GridCoord, current world.GridCoord) []world.GridCoord {
	path := []world.GridCoord{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pathNode struct {
	coord    world.GridCoord
	priority float64
	index    int
}

type nodeQueue []*pathNode

func (q nodeQueue) Len() int           { return len(q) }
func (q nodeQueue) Less(i, j int) bool { return q[i].priority < q[j].priority }
func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	item := x.(*pathNode)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
