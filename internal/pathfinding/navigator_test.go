package pathfinding

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
	"github.com/cgcardona/bugtopia-sub000/internal/world"
)

var (
	navWorldOnce sync.Once
	navWorld     *world.VoxelWorld
)

func testNavWorld(t *testing.T) *world.VoxelWorld {
	t.Helper()
	navWorldOnce.Do(func() {
		bounds := world.Bounds{MinX: 0, MinY: 0, Width: 800, Height: 800}
		navWorld = world.New(bounds, terrain.WorldContinental, 16, 7)
	})
	return navWorld
}

// rampColumn picks a connector column left untouched by the shaft pass, so
// every cell along it is a ramp a walker can use.
func rampColumn() (int, int) {
	return 12, 4
}

func TestFindRouteAlongRampColumn(t *testing.T) {
	w := testNavWorld(t)
	nav := NewNavigator(w)
	gx, gy := rampColumn()

	start := world.GridCoord{X: gx, Y: gy, Z: 0}
	goal := world.GridCoord{X: gx, Y: gy, Z: 8}
	route, err := nav.FindRoute(context.Background(), start, goal, DefaultTraits(ArchetypeWalker))
	require.NoError(t, err)
	require.NotEmpty(t, route)

	assert.Equal(t, start, route[0])
	assert.Equal(t, goal, route[len(route)-1])
	for i := 1; i < len(route); i++ {
		prev, cur := route[i-1], route[i]
		manhattan := absInt(cur.X-prev.X) + absInt(cur.Y-prev.Y) + absInt(cur.Z-prev.Z)
		require.Equal(t, 1, manhattan, "route step %d is not face-adjacent", i)
		v := w.VoxelAt(cur)
		require.NotNil(t, v)
		_, ok := TransitionCost(v.Transition, DefaultTraits(ArchetypeWalker))
		require.True(t, ok, "route enters untraversable cell %+v", cur)
	}

	snap := nav.Metrics().Snapshot()
	assert.EqualValues(t, 1, snap.RoutesRequested)
	assert.EqualValues(t, 1, snap.RoutesFound)
	assert.Greater(t, snap.NodesExpanded, int64(0))
}

func TestFindRouteTrivialWhenStartEqualsGoal(t *testing.T) {
	w := testNavWorld(t)
	nav := NewNavigator(w)
	gx, gy := rampColumn()
	c := world.GridCoord{X: gx, Y: gy, Z: 3}

	route, err := nav.FindRoute(context.Background(), c, c, DefaultTraits(ArchetypeWalker))
	require.NoError(t, err)
	assert.Equal(t, []world.GridCoord{c}, route)
}

func TestFindRouteRejectsOutOfBounds(t *testing.T) {
	w := testNavWorld(t)
	nav := NewNavigator(w)
	gx, gy := rampColumn()

	_, err := nav.FindRoute(context.Background(),
		world.GridCoord{X: -1, Y: 0, Z: 0},
		world.GridCoord{X: gx, Y: gy, Z: 0},
		DefaultTraits(ArchetypeWalker))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFindRouteRejectsBlockedEndpoints(t *testing.T) {
	w := testNavWorld(t)
	nav := NewNavigator(w)
	gx, gy := rampColumn()
	goal := world.GridCoord{X: gx, Y: gy, Z: 0}

	var solid *world.GridCoord
	dims := w.Dimensions()
	for gz := 0; gz < dims.Depth && solid == nil; gz++ {
		for y := 0; y < dims.Height && solid == nil; y++ {
			for x := 0; x < dims.Width; x++ {
				c := world.GridCoord{X: x, Y: y, Z: gz}
				if !w.VoxelAt(c).Passable() {
					solid = &c
					break
				}
			}
		}
	}
	require.NotNil(t, solid, "a generated world always holds some rock")

	_, err := nav.FindRoute(context.Background(), *solid, goal, DefaultTraits(ArchetypeWalker))
	assert.ErrorIs(t, err, ErrStartBlocked)

	_, err = nav.FindRoute(context.Background(), goal, *solid, DefaultTraits(ArchetypeWalker))
	assert.ErrorIs(t, err, ErrGoalBlocked)
}

func TestFindRouteHonorsNodeBudget(t *testing.T) {
	w := testNavWorld(t)
	nav := NewNavigator(w).WithNodeBudget(1)
	gx, gy := rampColumn()

	_, err := nav.FindRoute(context.Background(),
		world.GridCoord{X: gx, Y: gy, Z: 0},
		world.GridCoord{X: gx, Y: gy, Z: 12},
		DefaultTraits(ArchetypeWalker))
	assert.ErrorIs(t, err, ErrBudgetExceeded)
}

func TestFindRouteHonorsCancellation(t *testing.T) {
	w := testNavWorld(t)
	nav := NewNavigator(w)
	gx, gy := rampColumn()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := nav.FindRoute(ctx,
		world.GridCoord{X: gx, Y: gy, Z: 0},
		world.GridCoord{X: gx, Y: gy, Z: 12},
		DefaultTraits(ArchetypeWalker))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentRouteQueriesShareOneWorld(t *testing.T) {
	w := testNavWorld(t)
	nav := NewNavigator(w)
	gx, gy := rampColumn()
	traits := DefaultTraits(ArchetypeWalker)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(gz int) {
			defer wg.Done()
			route, err := nav.FindRoute(context.Background(),
				world.GridCoord{X: gx, Y: gy, Z: 0},
				world.GridCoord{X: gx, Y: gy, Z: gz},
				traits)
			assert.NoError(t, err)
			assert.NotEmpty(t, route)
		}(1 + i)
	}
	wg.Wait()

	snap := nav.Metrics().Snapshot()
	assert.EqualValues(t, 8, snap.RoutesRequested)
	assert.EqualValues(t, 8, snap.RoutesFound)
}
