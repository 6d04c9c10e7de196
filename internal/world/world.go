package world

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
)

// VoxelWorld is a generated voxel grid plus its frozen indexes. New runs
// the full synthesis pipeline synchronously; afterwards consumers treat the
// value as immutable and share it freely.
type VoxelWorld struct {
	ID         uuid.UUID
	Type       terrain.WorldType
	Seed       int64
	Bounds     Bounds
	Resolution int

	// VoxelSize is the horizontal cell pitch along x in world units.
	VoxelSize float64

	voxels []Voxel
	dims   Dimensions
	layers [LayerCount][]GridCoord

	heightMap      *terrain.Field
	temperatureMap *terrain.Field
	moistureMap    *terrain.Field
	biomeMap       *terrain.BiomeField

	cellX  float64
	cellY  float64
	zPitch float64

	rng     *rand.Rand
	metrics *GenerationMetrics
}

// New synthesizes a world. Generation is deterministic for equal
// (bounds, worldType, resolution, seed) and runs to completion before
// returning; the noise seed is the only randomness input.
func New(bounds Bounds, worldType terrain.WorldType, resolution int, seed int64) *VoxelWorld {
	if resolution < 2 {
		resolution = 2
	}
	if bounds.Width <= 0 {
		bounds.Width = 1
	}
	if bounds.Height <= 0 {
		bounds.Height = 1
	}

	w := &VoxelWorld{
		ID:         uuid.New(),
		Type:       worldType,
		Seed:       seed,
		Bounds:     bounds,
		Resolution: resolution,
		VoxelSize:  bounds.Width / float64(resolution),
		voxels:     make([]Voxel, resolution*resolution*resolution),
		dims:       Dimensions{Width: resolution, Height: resolution, Depth: resolution},
		cellX:      bounds.Width / float64(resolution),
		cellY:      bounds.Height / float64(resolution),
		zPitch:     (WorldCeilingZ - WorldFloorZ) / float64(resolution-1),
		rng:        rand.New(rand.NewSource(seed)),
		metrics:    &GenerationMetrics{},
	}

	root := terrain.NewNoiseSource(seed)

	start := time.Now()
	w.heightMap = terrain.SynthesizeHeight(root, worldType, resolution)
	w.temperatureMap = terrain.SynthesizeTemperature(root, resolution)
	w.moistureMap = terrain.SynthesizeMoisture(root, resolution)
	w.biomeMap = terrain.SynthesizeBiomes(worldType, w.temperatureMap, w.moistureMap)
	w.metrics.recordPhase(&w.metrics.synthesisTime, start)

	start = time.Now()
	w.buildGrid(root)
	w.metrics.recordPhase(&w.metrics.gridTime, start)

	start = time.Now()
	w.buildConnectivity(root)
	w.metrics.recordPhase(&w.metrics.connectivityTime, start)

	start = time.Now()
	w.populateResources(root)
	w.metrics.recordPhase(&w.metrics.resourceTime, start)

	snap := w.metrics.Snapshot()
	log.Printf("world %s: %s %dx%dx%d generated in %s (%d voxels, %d carved, %d resources)",
		w.ID, worldType, resolution, resolution, resolution,
		snap.TotalTime().Round(time.Millisecond),
		snap.VoxelsClassified, snap.FeaturesCarved, snap.ResourcesPlaced)
	return w
}

func (w *VoxelWorld) Dimensions() Dimensions {
	return w.dims
}

// Metrics exposes the generation counters for snapshotting.
func (w *VoxelWorld) Metrics() *GenerationMetrics {
	return w.metrics
}

// HeightMap is the 2D elevation map. Callers must not modify it.
func (w *VoxelWorld) HeightMap() *terrain.Field {
	return w.heightMap
}

// TemperatureMap is the 2D temperature map. Callers must not modify it.
func (w *VoxelWorld) TemperatureMap() *terrain.Field {
	return w.temperatureMap
}

// MoistureMap is the 2D moisture map. Callers must not modify it.
func (w *VoxelWorld) MoistureMap() *terrain.Field {
	return w.moistureMap
}

// BiomeMap is the 2D biome map. Callers must not modify it.
func (w *VoxelWorld) BiomeMap() *terrain.BiomeField {
	return w.biomeMap
}

func (w *VoxelWorld) index(c GridCoord) int {
	return c.X + c.Y*w.Resolution + c.Z*w.Resolution*w.Resolution
}

// InBounds reports whether the grid coordinate addresses a voxel.
func (w *VoxelWorld) InBounds(c GridCoord) bool {
	return c.X >= 0 && c.X < w.Resolution &&
		c.Y >= 0 && c.Y < w.Resolution &&
		c.Z >= 0 && c.Z < w.Resolution
}

// VoxelAt returns the voxel at a grid coordinate, nil outside the grid.
// The pointer aliases world-owned state; callers must not mutate it.
func (w *VoxelWorld) VoxelAt(c GridCoord) *Voxel {
	if !w.InBounds(c) {
		return nil
	}
	return &w.voxels[w.index(c)]
}

// VoxelAtPosition resolves a world position to its containing voxel, nil
// outside world bounds.
func (w *VoxelWorld) VoxelAtPosition(p Position3D) *Voxel {
	if !w.Bounds.Contains(p) {
		return nil
	}
	return w.VoxelAt(w.WorldToGrid(p))
}

// VoxelsInLayer returns every coordinate in the elevation band. The slice
// is the frozen layer index; callers must not modify it.
func (w *VoxelWorld) VoxelsInLayer(layer TerrainLayer) []GridCoord {
	if layer < 0 || layer >= LayerCount {
		return nil
	}
	return w.layers[layer]
}

// WorldToGrid quantizes a world position to grid coordinates, clamping each
// axis into the grid.
func (w *VoxelWorld) WorldToGrid(p Position3D) GridCoord {
	gx := int(math.Floor((p.X - w.Bounds.MinX) / w.cellX))
	gy := int(math.Floor((p.Y - w.Bounds.MinY) / w.cellY))
	gz := int(math.Round((p.Z - WorldFloorZ) / w.zPitch))
	return GridCoord{
		X: clampIndex(gx, w.Resolution),
		Y: clampIndex(gy, w.Resolution),
		Z: clampIndex(gz, w.Resolution),
	}
}

// GridToWorld maps a grid coordinate to its world position. Together with
// WorldToGrid it round-trips to within one voxel size, not exactly.
func (w *VoxelWorld) GridToWorld(c GridCoord) Position3D {
	return Position3D{
		X: w.Bounds.MinX + float64(c.X)*w.cellX,
		Y: w.Bounds.MinY + float64(c.Y)*w.cellY,
		Z: WorldFloorZ + float64(c.Z)*w.zPitch,
	}
}

// HeightAt samples the raw elevation map at a world-plane position.
func (w *VoxelWorld) HeightAt(x, y float64) float64 {
	gx := clampIndex(int(math.Floor((x-w.Bounds.MinX)/w.cellX)), w.Resolution)
	gy := clampIndex(int(math.Floor((y-w.Bounds.MinY)/w.cellY)), w.Resolution)
	return w.heightMap.At(gx, gy)
}

// FindSpawnPosition returns a drop-in point for a new organism. Preference
// order: surface voxels with at least three passable neighbours, then any
// passable surface voxel, finally a point just above the topmost solid cell
// of the grid's center column. Never fails.
func (w *VoxelWorld) FindSpawnPosition() Position3D {
	var preferred, fallback []GridCoord
	for _, c := range w.layers[LayerSurface] {
		v := w.VoxelAt(c)
		if v == nil || !v.Passable() {
			continue
		}
		fallback = append(fallback, c)
		if w.passableNeighborCount(c) >= 3 {
			preferred = append(preferred, c)
		}
	}

	if len(preferred) > 0 {
		return w.GridToWorld(preferred[w.rng.Intn(len(preferred))])
	}
	if len(fallback) > 0 {
		return w.GridToWorld(fallback[w.rng.Intn(len(fallback))])
	}

	// Emergency placement: walk down the center column for solid ground.
	cx, cy := w.Resolution/2, w.Resolution/2
	for gz := w.Resolution - 1; gz >= 0; gz-- {
		v := w.VoxelAt(GridCoord{X: cx, Y: cy, Z: gz})
		if v != nil && v.Transition.Kind == TransitionSolid {
			p := w.GridToWorld(GridCoord{X: cx, Y: cy, Z: gz})
			p.Z = math.Min(p.Z+w.zPitch, WorldCeilingZ)
			return p
		}
	}
	return w.GridToWorld(GridCoord{X: cx, Y: cy, Z: w.Resolution / 2})
}

func (w *VoxelWorld) passableNeighborCount(c GridCoord) int {
	count := 0
	for d := Direction(0); d < DirectionCount; d++ {
		if n := w.VoxelAt(c.Step(d)); n != nil && n.Passable() {
			count++
		}
	}
	return count
}

func clampIndex(v, resolution int) int {
	if v < 0 {
		return 0
	}
	if v >= resolution {
		return resolution - 1
	}
	return v
}
