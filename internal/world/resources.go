package world

import (
	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
)

const (
	baseResourceChance = 0.05
	maxResourceChance  = 0.30

	resourceDensityMin = 0.3
	resourceDensityMax = 1.0
)

// Per-layer spawn multipliers. Surface is the richest band; thin air the
// poorest.
var layerResourceMultiplier = [LayerCount]float64{
	LayerUnderground: 0.8,
	LayerSurface:     1.5,
	LayerCanopy:      1.2,
	LayerAerial:      0.4,
}

// Resource kinds by the elevation band they usually spawn in. Surface lists
// two so open grassland and seeded scrub both occur.
var layerResourceKinds = [LayerCount][]ResourceKind{
	LayerUnderground: {ResourceFungus},
	LayerSurface:     {ResourceVegetation, ResourceSeeds},
	LayerCanopy:      {ResourceFruit},
	LayerAerial:      {ResourceNectar},
}

// populateResources attaches forage metadata to passable voxels. Every draw
// comes from the labelled hash channel, so resource placement is as
// reproducible as the terrain itself.
func (w *VoxelWorld) populateResources(root *terrain.NoiseSource) {
	src := root.Derive(labelResource)
	for i := range w.voxels {
		v := &w.voxels[i]
		if !v.Passable() {
			continue
		}

		chance := resourceChance(v.Biome, v.Layer)
		roll := float64(src.Cell(v.Coord.X, v.Coord.Y, v.Coord.Z)) / float64(1<<32)
		if roll >= chance {
			continue
		}

		densityRoll := src.HashNoise(v.Coord.X, v.Coord.Y, v.Coord.Z+w.Resolution, 1)
		v.Resource = &Resource{
			Kind:    resourceKindFor(v.Layer, src.Cell(v.Coord.X+w.Resolution, v.Coord.Y, v.Coord.Z)),
			Density: resourceDensityMin + (resourceDensityMax-resourceDensityMin)*densityRoll,
		}
		w.metrics.resourcesPlaced.Add(1)
	}
}

// resourceChance is the capped spawn probability for a cell. Vegetated
// biomes carry more forage than barren ones.
func resourceChance(biome terrain.BiomeType, layer TerrainLayer) float64 {
	biomeMultiplier := 0.5 + 2.0*biome.VegetationDensity()
	chance := baseResourceChance * biomeMultiplier * layerResourceMultiplier[layer]
	if chance > maxResourceChance {
		return maxResourceChance
	}
	return chance
}

// resourceKindFor picks among the kinds preferring the voxel's band,
// falling back to vegetation when the band lists none.
func resourceKindFor(layer TerrainLayer, pick uint32) ResourceKind {
	kinds := layerResourceKinds[layer]
	if len(kinds) == 0 {
		return ResourceVegetation
	}
	return kinds[pick%uint32(len(kinds))]
}
