package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCoversAllSevenClasses(t *testing.T) {
	cases := []struct {
		temperature float64
		moisture    float64
		want        BiomeType
	}{
		{0.10, 0.20, BiomeTundra},
		{0.10, 0.80, BiomeBorealForest},
		{0.50, 0.20, BiomeTemperateGrassland},
		{0.50, 0.80, BiomeTemperateForest},
		{0.90, 0.10, BiomeDesert},
		{0.90, 0.45, BiomeSavanna},
		{0.90, 0.90, BiomeTropicalRainforest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.temperature, tc.moisture),
			"t=%.2f m=%.2f", tc.temperature, tc.moisture)
	}
}

func TestClassifyForStaysInPalette(t *testing.T) {
	for _, worldType := range AllWorldTypes() {
		allowed := map[BiomeType]bool{}
		for _, b := range worldType.AllowedBiomes() {
			allowed[b] = true
		}
		for ti := 0; ti <= 10; ti++ {
			for mi := 0; mi <= 10; mi++ {
				got := ClassifyFor(worldType, float64(ti)/10, float64(mi)/10)
				require.True(t, allowed[got], "%s produced %s outside its palette", worldType, got)
			}
		}
	}
}

func TestClassifyForKeepsAllowedClass(t *testing.T) {
	// Hot and dry classifies as desert, which canyon allows directly.
	assert.Equal(t, BiomeDesert, ClassifyFor(WorldCanyon, 0.90, 0.10))
}

func TestClassifyForNearestMatchFallback(t *testing.T) {
	// Cold and wet classifies as boreal forest; canyon does not allow it,
	// so the nearest palette entry by |dT|+|dM| must win.
	temperature, moisture := 0.10, 0.80
	require.Equal(t, BiomeBorealForest, Classify(temperature, moisture))

	want := WorldCanyon.AllowedBiomes()[0]
	bestDist := math.MaxFloat64
	for _, b := range WorldCanyon.AllowedBiomes() {
		c := b.Climate()
		d := math.Abs(c.Temperature-temperature) + math.Abs(c.Moisture-moisture)
		if d < bestDist {
			want = b
			bestDist = d
		}
	}
	assert.Equal(t, want, ClassifyFor(WorldCanyon, temperature, moisture))
}

func TestBiomeClimateConstantsNormalized(t *testing.T) {
	for _, b := range AllBiomes() {
		c := b.Climate()
		require.GreaterOrEqual(t, c.Temperature, 0.0, "%s", b)
		require.LessOrEqual(t, c.Temperature, 1.0, "%s", b)
		require.GreaterOrEqual(t, c.Moisture, 0.0, "%s", b)
		require.LessOrEqual(t, c.Moisture, 1.0, "%s", b)
		require.GreaterOrEqual(t, c.Vegetation, 0.0, "%s", b)
		require.LessOrEqual(t, c.Vegetation, 1.0, "%s", b)
	}
}

func TestSynthesizeBiomesDeterministic(t *testing.T) {
	build := func() *BiomeField {
		root := NewNoiseSource(2024)
		temperature := SynthesizeTemperature(root, 20)
		moisture := SynthesizeMoisture(root, 20)
		return SynthesizeBiomes(WorldArchipelago, temperature, moisture)
	}

	a := build()
	b := build()
	assert.Equal(t, a.Biomes(), b.Biomes())
}

func TestSynthesizeClimateNormalized(t *testing.T) {
	root := NewNoiseSource(77)
	temperature := SynthesizeTemperature(root, 24)
	moisture := SynthesizeMoisture(root, 24)

	for gy := 0; gy < 24; gy++ {
		for gx := 0; gx < 24; gx++ {
			tv := temperature.At(gx, gy)
			mv := moisture.At(gx, gy)
			require.GreaterOrEqual(t, tv, 0.0)
			require.LessOrEqual(t, tv, 1.0)
			require.GreaterOrEqual(t, mv, 0.0)
			require.LessOrEqual(t, mv, 1.0)
		}
	}
}

func TestTemperatureWarmestAtMidLine(t *testing.T) {
	root := NewNoiseSource(31)
	temperature := SynthesizeTemperature(root, 33)

	mid, edge := 0.0, 0.0
	for gx := 0; gx < 33; gx++ {
		mid += temperature.At(gx, 16)
		edge += temperature.At(gx, 0)
	}
	assert.Greater(t, mid, edge, "mid-line rows should average warmer than edge rows")
}
