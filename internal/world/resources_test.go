package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
)

func TestResourceChanceNeverExceedsCap(t *testing.T) {
	for _, biome := range terrain.AllBiomes() {
		for _, layer := range AllLayers() {
			chance := resourceChance(biome, layer)
			require.Greater(t, chance, 0.0, "%s/%s", biome, layer)
			require.LessOrEqual(t, chance, maxResourceChance, "%s/%s", biome, layer)
		}
	}
}

func TestResourcesOnlyOnPassableVoxels(t *testing.T) {
	w := testWorld(t)
	placed := 0
	for i := range w.voxels {
		v := &w.voxels[i]
		if v.Resource == nil {
			continue
		}
		placed++
		require.True(t, v.Passable(), "resource on impassable cell %+v", v.Coord)
		require.GreaterOrEqual(t, v.Resource.Density, resourceDensityMin)
		require.LessOrEqual(t, v.Resource.Density, resourceDensityMax)
	}
	assert.Greater(t, placed, 0, "expected some resources in a full world")
	assert.EqualValues(t, placed, w.Metrics().Snapshot().ResourcesPlaced)
}

func TestResourceKindsMatchPreferredLayer(t *testing.T) {
	w := testWorld(t)
	for i := range w.voxels {
		v := &w.voxels[i]
		if v.Resource == nil {
			continue
		}
		kinds := layerResourceKinds[v.Layer]
		found := false
		for _, k := range kinds {
			if k == v.Resource.Kind {
				found = true
				break
			}
		}
		require.True(t, found, "kind %s in layer %s at %+v", v.Resource.Kind, v.Layer, v.Coord)
	}
}

func TestResourceKindFallsBackToVegetation(t *testing.T) {
	var empty [LayerCount][]ResourceKind
	original := layerResourceKinds
	layerResourceKinds = empty
	defer func() { layerResourceKinds = original }()

	assert.Equal(t, ResourceVegetation, resourceKindFor(LayerCanopy, 7))
}
