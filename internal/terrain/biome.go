package terrain

import "math"

// BiomeType classifies a column's climate. The constants below feed both
// classification (nearest-match fallback) and terrain density rules.
type BiomeType string

const (
	BiomeTundra             BiomeType = "tundra"
	BiomeBorealForest       BiomeType = "boreal_forest"
	BiomeTemperateForest    BiomeType = "temperate_forest"
	BiomeTemperateGrassland BiomeType = "temperate_grassland"
	BiomeDesert             BiomeType = "desert"
	BiomeSavanna            BiomeType = "savanna"
	BiomeTropicalRainforest BiomeType = "tropical_rainforest"
	BiomeWetlands           BiomeType = "wetlands"
	BiomeAlpine             BiomeType = "alpine"
	BiomeCoastal            BiomeType = "coastal"
)

func AllBiomes() []BiomeType {
	return []BiomeType{
		BiomeTundra,
		BiomeBorealForest,
		BiomeTemperateForest,
		BiomeTemperateGrassland,
		BiomeDesert,
		BiomeSavanna,
		BiomeTropicalRainforest,
		BiomeWetlands,
		BiomeAlpine,
		BiomeCoastal,
	}
}

// Climate holds a biome's fixed reference constants on the [0,1] scale.
type Climate struct {
	Temperature float64
	Moisture    float64
	Vegetation  float64
}

var biomeClimates = map[BiomeType]Climate{
	BiomeTundra:             {Temperature: 0.10, Moisture: 0.30, Vegetation: 0.10},
	BiomeBorealForest:       {Temperature: 0.25, Moisture: 0.60, Vegetation: 0.60},
	BiomeTemperateForest:    {Temperature: 0.50, Moisture: 0.65, Vegetation: 0.80},
	BiomeTemperateGrassland: {Temperature: 0.50, Moisture: 0.35, Vegetation: 0.40},
	BiomeDesert:             {Temperature: 0.90, Moisture: 0.10, Vegetation: 0.05},
	BiomeSavanna:            {Temperature: 0.80, Moisture: 0.35, Vegetation: 0.30},
	BiomeTropicalRainforest: {Temperature: 0.85, Moisture: 0.90, Vegetation: 1.00},
	BiomeWetlands:           {Temperature: 0.60, Moisture: 0.95, Vegetation: 0.70},
	BiomeAlpine:             {Temperature: 0.15, Moisture: 0.45, Vegetation: 0.15},
	BiomeCoastal:            {Temperature: 0.55, Moisture: 0.70, Vegetation: 0.50},
}

func (b BiomeType) Climate() Climate {
	if c, ok := biomeClimates[b]; ok {
		return c
	}
	return biomeClimates[BiomeTemperateGrassland]
}

func (b BiomeType) VegetationDensity() float64 {
	return b.Climate().Vegetation
}

// Classify maps a climate sample to one of seven coarse classes.
func Classify(temperature, moisture float64) BiomeType {
	switch {
	case temperature < 0.30:
		if moisture < 0.50 {
			return BiomeTundra
		}
		return BiomeBorealForest
	case temperature < 0.65:
		if moisture < 0.50 {
			return BiomeTemperateGrassland
		}
		return BiomeTemperateForest
	case moisture < 0.30:
		return BiomeDesert
	case moisture < 0.60:
		return BiomeSavanna
	default:
		return BiomeTropicalRainforest
	}
}

// ClassifyFor constrains classification to the world type's palette. A class
// outside the palette falls back to the allowed biome whose climate
// constants are nearest the sample by |dT| + |dM|; ties keep the earliest
// palette entry.
func ClassifyFor(worldType WorldType, temperature, moisture float64) BiomeType {
	class := Classify(temperature, moisture)
	allowed := worldType.AllowedBiomes()
	if len(allowed) == 0 {
		return class
	}
	for _, b := range allowed {
		if b == class {
			return class
		}
	}
	best := allowed[0]
	bestDist := math.MaxFloat64
	for _, b := range allowed {
		c := b.Climate()
		d := math.Abs(c.Temperature-temperature) + math.Abs(c.Moisture-moisture)
		if d < bestDist {
			best = b
			bestDist = d
		}
	}
	return best
}

// SynthesizeBiomes classifies every column from the climate maps under the
// world type's palette.
func SynthesizeBiomes(worldType WorldType, temperature, moisture *Field) *BiomeField {
	resolution := temperature.Resolution()
	field := NewBiomeField(resolution)
	for gy := 0; gy < resolution; gy++ {
		for gx := 0; gx < resolution; gx++ {
			field.Set(gx, gy, ClassifyFor(worldType, temperature.At(gx, gy), moisture.At(gx, gy)))
		}
	}
	return field
}
