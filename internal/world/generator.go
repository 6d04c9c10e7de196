package world

import (
	"math"

	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
)

// Noise channel labels for grid classification. Distinct labels keep each
// concern's lattice independent of the height octaves.
const (
	labelTerrain  int64 = 307
	labelCarve    int64 = 389
	labelResource int64 = 401
)

// Hash noise scales per band; larger blocks make coarser features.
const (
	undergroundPocketScale = 3.0
	surfaceDetailScale     = 2.0
	canopyDetailScale      = 2.0
	aerialBandScale        = 4.0
	windNoiseScale         = 5.0
)

const (
	// Obstacle rate for vegetated and granular terrain, cells per hundred.
	sparseSolidPercent = 2

	maxSwimDepth           = 0.25
	climbGradientThreshold = 2.0
)

func (w *VoxelWorld) buildGrid(root *terrain.NoiseSource) {
	src := root.Derive(labelTerrain)
	for gz := 0; gz < w.Resolution; gz++ {
		for gy := 0; gy < w.Resolution; gy++ {
			for gx := 0; gx < w.Resolution; gx++ {
				c := GridCoord{X: gx, Y: gy, Z: gz}
				v := w.classifyVoxel(c, src)
				w.voxels[w.index(c)] = v
				w.layers[v.Layer] = append(w.layers[v.Layer], c)
				w.metrics.voxelsClassified.Add(1)
			}
		}
	}
}

func (w *VoxelWorld) classifyVoxel(c GridCoord, src *terrain.NoiseSource) Voxel {
	pos := w.GridToWorld(c)
	layer := LayerForZ(pos.Z)

	// Dimensions are fixed, so the maps always cover the grid; degrade to
	// an open cell rather than fault if that ever stops holding.
	if !w.heightMap.Covers(c.X, c.Y) || !w.biomeMap.Covers(c.X, c.Y) {
		return w.defaultVoxel(c, pos, layer)
	}

	surfaceH := w.heightMap.At(c.X, c.Y)
	biome := w.biomeMap.At(c.X, c.Y)

	terrainType := w.baseTerrain(c, pos, layer, surfaceH, biome, src)
	terrainType = w.applyWorldOverride(terrainType, c, pos, surfaceH)

	baseTemp := w.temperatureMap.At(c.X, c.Y)
	baseMoist := w.moistureMap.At(c.X, c.Y)

	return Voxel{
		Coord:       c,
		Position:    pos,
		Terrain:     terrainType,
		Layer:       layer,
		Transition:  w.transitionFor(terrainType, c, pos, layer, surfaceH, src),
		Biome:       biome,
		Temperature: computeTemperature(baseTemp, pos.Z),
		Moisture:    computeMoisture(baseMoist, layer),
		Light:       computeLight(layer, biome.VegetationDensity()),
		Wind:        computeWind(pos.Z, src.HashNoise(c.X, c.Y, c.Z, windNoiseScale)),
	}
}

func (w *VoxelWorld) defaultVoxel(c GridCoord, pos Position3D, layer TerrainLayer) Voxel {
	return Voxel{
		Coord:       c,
		Position:    pos,
		Terrain:     TerrainOpen,
		Layer:       layer,
		Transition:  Transition{Kind: TransitionAir},
		Biome:       terrain.BiomeTemperateGrassland,
		Temperature: 0.5,
		Moisture:    0.5,
		Light:       computeLight(layer, 0),
		Wind:        0.3,
	}
}

func (w *VoxelWorld) baseTerrain(c GridCoord, pos Position3D, layer TerrainLayer, surfaceH float64, biome terrain.BiomeType, src *terrain.NoiseSource) TerrainType {
	switch layer {
	case LayerUnderground:
		return w.undergroundTerrain(c, src)
	case LayerSurface:
		return w.surfaceTerrain(c, pos, surfaceH, biome, src)
	case LayerCanopy:
		return canopyTerrain(c, biome, src)
	default:
		return aerialTerrain(c, src)
	}
}

// undergroundTerrain carves cave pockets into the rock matrix: open
// galleries, flooded sections where the column is damp, fungal feeding
// pockets between them.
func (w *VoxelWorld) undergroundTerrain(c GridCoord, src *terrain.NoiseSource) TerrainType {
	n := src.HashNoise(c.X, c.Y, c.Z, undergroundPocketScale)
	moisture := w.moistureMap.At(c.X, c.Y)
	switch {
	case n < 0.28:
		return TerrainOpen
	case n < 0.34 && moisture > 0.6:
		return TerrainWater
	case n < 0.38 && moisture > 0.4:
		return TerrainFood
	default:
		return TerrainWall
	}
}

// surfaceTerrain is solid below ground level, open sky above it, and a
// biome-conditioned shell at ground level.
func (w *VoxelWorld) surfaceTerrain(c GridCoord, pos Position3D, surfaceH float64, biome terrain.BiomeType, src *terrain.NoiseSource) TerrainType {
	if pos.Z < surfaceH-w.zPitch {
		return TerrainWall
	}
	if pos.Z > surfaceH+w.zPitch {
		return TerrainOpen
	}

	n := src.HashNoise(c.X, c.Y, c.Z, surfaceDetailScale)
	switch biome {
	case terrain.BiomeDesert:
		switch {
		case n < 0.55:
			return TerrainSand
		case n < 0.75:
			return TerrainHill
		case n < 0.83:
			return TerrainWater // oasis
		default:
			return TerrainOpen
		}
	case terrain.BiomeTemperateForest, terrain.BiomeBorealForest, terrain.BiomeTropicalRainforest:
		switch {
		case n < 0.45:
			return TerrainForest
		case n < 0.57:
			return TerrainFood
		case n < 0.65:
			return TerrainWater
		default:
			return TerrainOpen
		}
	case terrain.BiomeWetlands:
		switch {
		case n < 0.40:
			return TerrainWater
		case n < 0.70:
			return TerrainSwamp
		case n < 0.80:
			return TerrainFood
		default:
			return TerrainOpen
		}
	case terrain.BiomeAlpine, terrain.BiomeTundra:
		switch {
		case n < 0.40:
			return TerrainIce
		case n < 0.65:
			return TerrainHill
		case n < 0.71:
			return TerrainFood
		default:
			return TerrainOpen
		}
	case terrain.BiomeCoastal:
		switch {
		case n < 0.35:
			return TerrainWater
		case n < 0.65:
			return TerrainSand
		case n < 0.75:
			return TerrainFood
		default:
			return TerrainOpen
		}
	default: // grassland and savanna
		switch {
		case n < 0.25:
			return TerrainHill
		case n < 0.37:
			return TerrainFood
		case n < 0.45:
			return TerrainWater
		default:
			return TerrainOpen
		}
	}
}

// canopyTerrain scales foliage density by the biome's vegetation constant.
func canopyTerrain(c GridCoord, biome terrain.BiomeType, src *terrain.NoiseSource) TerrainType {
	density := biome.VegetationDensity()
	n := src.HashNoise(c.X, c.Y, c.Z, canopyDetailScale)
	switch {
	case n < 0.45*density:
		return TerrainForest
	case n < 0.60*density:
		return TerrainFood
	case n < 0.60*density+0.08:
		return TerrainShadow
	default:
		return TerrainOpen
	}
}

// aerialTerrain is mostly open sky with sparse wind, forage and predator
// bands.
func aerialTerrain(c GridCoord, src *terrain.NoiseSource) TerrainType {
	n := src.HashNoise(c.X, c.Y, c.Z, aerialBandScale)
	switch {
	case n < 0.06:
		return TerrainWind
	case n < 0.09:
		return TerrainFood
	case n < 0.11:
		return TerrainPredator
	default:
		return TerrainOpen
	}
}

// applyWorldOverride reshapes base terrain per world type by absolute
// elevation (radial bands for the volcano). Overrides win over biome rules.
func (w *VoxelWorld) applyWorldOverride(base TerrainType, c GridCoord, pos Position3D, surfaceH float64) TerrainType {
	shell := math.Abs(pos.Z-surfaceH) <= w.zPitch

	switch w.Type {
	case terrain.WorldContinental:
		if shell && surfaceH > 30 {
			return TerrainIce
		}
	case terrain.WorldArchipelago:
		if shell && surfaceH < -5 {
			return TerrainWater
		}
		if shell && surfaceH > 15 {
			return TerrainHill
		}
	case terrain.WorldCanyon:
		if shell && surfaceH < -15 {
			return TerrainSand
		}
		if shell && surfaceH > 16 {
			return TerrainHill
		}
	case terrain.WorldCavern:
		// The world sits inside rock: everything above the canopy band is
		// ceiling, reopened only by carved columns.
		if pos.Z >= canopyCeiling {
			return TerrainWall
		}
	case terrain.WorldSkylands:
		// Nothing holds a floating mass up; clear the column underneath.
		if pos.Z < surfaceH-skylandsMassDepth {
			return TerrainOpen
		}
	case terrain.WorldAbyss:
		if pos.Z <= abyssSeaLevel && pos.Z >= surfaceH-w.zPitch {
			return TerrainWater
		}
	case terrain.WorldVolcano:
		div := float64(w.Resolution - 1)
		if div <= 0 {
			div = 1
		}
		r := math.Sqrt(sqDiff(float64(c.X)/div, 0.5) + sqDiff(float64(c.Y)/div, 0.5))
		if shell && r < 0.10 {
			return TerrainPredator // lava pool in the crater
		}
		if shell && r < 0.22 {
			return TerrainHill
		}
		if shell && surfaceH > 18 {
			return TerrainHill
		}
	}
	return base
}

const (
	skylandsMassDepth = 12.0
	abyssSeaLevel     = -25.0
)

func (w *VoxelWorld) transitionFor(t TerrainType, c GridCoord, pos Position3D, layer TerrainLayer, surfaceH float64, src *terrain.NoiseSource) Transition {
	switch t {
	case TerrainWall:
		return Transition{Kind: TransitionSolid}
	case TerrainWater:
		depth := math.Min(maxSwimDepth, 0.05+0.25*w.moistureMap.At(c.X, c.Y))
		return Transition{Kind: TransitionSwim, Param: depth}
	case TerrainHill:
		gradient := w.localGradient(c.X, c.Y)
		if gradient > climbGradientThreshold {
			return Transition{Kind: TransitionClimb, Param: math.Min(1.0, gradient/6.0)}
		}
		return Transition{Kind: TransitionRamp, Param: math.Min(1.0, gradient/4.0)}
	case TerrainForest, TerrainFood, TerrainSand, TerrainIce, TerrainSwamp:
		// Sparse solids: the odd trunk or boulder in otherwise navigable
		// terrain.
		if src.Cell(c.X, c.Y, c.Z)%100 < sparseSolidPercent {
			return Transition{Kind: TransitionSolid}
		}
		return Transition{Kind: TransitionAir}
	default:
		if layer == LayerAerial {
			clearance := clamp01((pos.Z - surfaceH) / 40)
			return Transition{Kind: TransitionFlight, Param: clearance}
		}
		return Transition{Kind: TransitionAir}
	}
}

// localGradient is the height difference against the 4-neighbour average.
func (w *VoxelWorld) localGradient(gx, gy int) float64 {
	h := w.heightMap.At(gx, gy)
	avg := (w.heightMap.At(gx+1, gy) + w.heightMap.At(gx-1, gy) +
		w.heightMap.At(gx, gy+1) + w.heightMap.At(gx, gy-1)) / 4
	return math.Abs(h - avg)
}

const temperatureLapsePerUnit = 0.004

func computeTemperature(base, z float64) float64 {
	return clamp01(base - temperatureLapsePerUnit*math.Max(0, z))
}

func computeMoisture(base float64, layer TerrainLayer) float64 {
	if layer == LayerUnderground {
		return clamp01(base + 0.15)
	}
	return clamp01(base)
}

func computeLight(layer TerrainLayer, vegetation float64) float64 {
	switch layer {
	case LayerUnderground:
		return 0.05
	case LayerSurface:
		return 0.85
	case LayerCanopy:
		return clamp01(0.9 - 0.5*vegetation)
	default:
		return 1.0
	}
}

func computeWind(z, n float64) float64 {
	altitude := (z - WorldFloorZ) / (WorldCeilingZ - WorldFloorZ)
	return clamp01(0.1 + 0.6*altitude + (n-0.5)*0.3)
}

func sqDiff(a, b float64) float64 {
	return (a - b) * (a - b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
