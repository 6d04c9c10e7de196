package world

import (
	"math"

	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
)

// Column selection rates for carved features, per mille of surface columns.
const (
	caveColumnPermille   = 15
	climbColumnPermille  = 12
	aerialColumnPermille = 8
)

const (
	caveDepthCells   = 8
	climbHeightCells = 10

	// Connector column spacing in grid cells. Ramps are dense enough that
	// every region can reach every layer; shafts are sparser express routes.
	rampInterval  = 8
	shaftInterval = 16

	caveTunnelWidth  = 0.9
	shaftTunnelWidth = 0.8
)

// buildConnectivity computes the 6-directional adjacency and then carves the
// guaranteed inter-layer structures. Pass order is fixed and matters: later
// passes overwrite earlier classification, and the final edge recompute must
// see the fully carved grid.
func (w *VoxelWorld) buildConnectivity(root *terrain.NoiseSource) {
	src := root.Derive(labelCarve)

	w.computeEdges()
	w.carveCaveEntrances(src)
	w.carveClimbingRoutes(src)
	w.carveAerialAccess(src)
	w.carveSystematicRamps()
	w.carveVerticalShafts()
	w.computeEdges()
}

// computeEdges fills every voxel's passability map. A horizontal edge needs
// both endpoints passable; a vertical edge additionally requires that the
// pair is not plain air on both sides, so open sky affords no climbing
// without a carved structure or flight clearance.
func (w *VoxelWorld) computeEdges() {
	for i := range w.voxels {
		v := &w.voxels[i]
		for d := Direction(0); d < DirectionCount; d++ {
			v.Edges[d] = w.edgeExists(v, d)
		}
	}
}

func (w *VoxelWorld) edgeExists(v *Voxel, d Direction) bool {
	if !v.Passable() {
		return false
	}
	n := w.VoxelAt(v.Coord.Step(d))
	if n == nil || !n.Passable() {
		return false
	}
	if d.Vertical() && v.Transition.Kind == TransitionAir && n.Transition.Kind == TransitionAir {
		return false
	}
	return true
}

// carve overwrites a cell's terrain and transition in place. Position and
// layer are untouched; carving never moves a voxel between bands.
func (w *VoxelWorld) carve(c GridCoord, t TerrainType, tr Transition) {
	if !w.InBounds(c) {
		return
	}
	v := &w.voxels[w.index(c)]
	v.Terrain = t
	v.Transition = tr
	w.metrics.recordCarve()
}

// surfaceGridZ locates the grid cell containing the height-map surface for a
// column, clamped into the grid.
func (w *VoxelWorld) surfaceGridZ(gx, gy int) int {
	h := w.heightMap.At(gx, gy)
	return clampIndex(int(math.Round((h-WorldFloorZ)/w.zPitch)), w.Resolution)
}

// carveCaveEntrances drills tunnel columns from the surface down into the
// underground band. The tunnel narrows with depth, so entrances stay easy
// while the deep end squeezes large organisms.
func (w *VoxelWorld) carveCaveEntrances(src *terrain.NoiseSource) {
	for gy := 0; gy < w.Resolution; gy++ {
		for gx := 0; gx < w.Resolution; gx++ {
			if src.Cell(gx, gy, 1)%1000 >= caveColumnPermille {
				continue
			}
			top := w.surfaceGridZ(gx, gy)
			for step := 0; step <= caveDepthCells; step++ {
				gz := top - step
				if gz < 0 {
					break
				}
				width := caveTunnelWidth - 0.08*float64(step)
				w.carve(GridCoord{X: gx, Y: gy, Z: gz}, TerrainOpen,
					Transition{Kind: TransitionTunnel, Param: math.Max(0.2, width)})
			}
			w.metrics.caveEntrances.Add(1)
		}
	}
}

// carveClimbingRoutes raises sparse climbable columns from the surface up
// through the canopy band, difficulty growing with height.
func (w *VoxelWorld) carveClimbingRoutes(src *terrain.NoiseSource) {
	for gy := 0; gy < w.Resolution; gy++ {
		for gx := 0; gx < w.Resolution; gx++ {
			if src.Cell(gx, gy, 2)%1000 >= climbColumnPermille {
				continue
			}
			base := w.surfaceGridZ(gx, gy)
			for step := 0; step <= climbHeightCells; step++ {
				gz := base + step
				if gz >= w.Resolution {
					break
				}
				difficulty := math.Min(1.0, 0.15+0.06*float64(step))
				w.carve(GridCoord{X: gx, Y: gy, Z: gz}, TerrainForest,
					Transition{Kind: TransitionClimb, Param: difficulty})
			}
			w.metrics.climbRoutes.Add(1)
		}
	}
}

// carveAerialAccess opens flight columns through the upper third of the
// grid so winged organisms can cross between canopy and open sky.
func (w *VoxelWorld) carveAerialAccess(src *terrain.NoiseSource) {
	floor := w.Resolution * 2 / 3
	for gy := 0; gy < w.Resolution; gy++ {
		for gx := 0; gx < w.Resolution; gx++ {
			if src.Cell(gx, gy, 3)%1000 >= aerialColumnPermille {
				continue
			}
			for gz := floor; gz < w.Resolution; gz++ {
				clearance := float64(gz-floor) / math.Max(1, float64(w.Resolution-1-floor))
				w.carve(GridCoord{X: gx, Y: gy, Z: gz}, TerrainOpen,
					Transition{Kind: TransitionFlight, Param: clearance})
			}
			w.metrics.aerialColumns.Add(1)
		}
	}
}

// carveSystematicRamps lays full-height connector columns on a fixed grid
// spacing, spanning underground through aerial. Ramp angle grows with the
// cell's distance from the column's vertical center, gentle in the middle
// and steep at the extremes.
func (w *VoxelWorld) carveSystematicRamps() {
	center := float64(w.Resolution-1) / 2
	for gy := rampInterval / 2; gy < w.Resolution; gy += rampInterval {
		for gx := rampInterval / 2; gx < w.Resolution; gx += rampInterval {
			for gz := 0; gz < w.Resolution; gz++ {
				spread := math.Abs(float64(gz)-center) / math.Max(1, center)
				angle := math.Min(1.0, 0.15+0.70*spread)
				w.carve(GridCoord{X: gx, Y: gy, Z: gz}, TerrainHill,
					Transition{Kind: TransitionRamp, Param: angle})
			}
			w.metrics.rampColumns.Add(1)
		}
	}
}

// carveVerticalShafts links the underground band to the surface with
// wider-spaced express tunnels.
func (w *VoxelWorld) carveVerticalShafts() {
	for gy := shaftInterval / 4; gy < w.Resolution; gy += shaftInterval {
		for gx := shaftInterval / 4; gx < w.Resolution; gx += shaftInterval {
			top := w.surfaceGridZ(gx, gy)
			for gz := 0; gz <= top && gz < w.Resolution; gz++ {
				w.carve(GridCoord{X: gx, Y: gy, Z: gz}, TerrainOpen,
					Transition{Kind: TransitionTunnel, Param: shaftTunnelWidth})
			}
			w.metrics.shafts.Add(1)
		}
	}
}
