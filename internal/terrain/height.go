package terrain

import "math"

// WorldType selects the large-scale landform recipe and the biome palette a
// world draws from. Each variant is a pure function of normalized
// coordinates; no variant keeps state.
type WorldType string

const (
	WorldContinental WorldType = "continental"
	WorldArchipelago WorldType = "archipelago"
	WorldCanyon      WorldType = "canyon"
	WorldCavern      WorldType = "cavern"
	WorldSkylands    WorldType = "skylands"
	WorldAbyss       WorldType = "abyss"
	WorldVolcano     WorldType = "volcano"
)

func AllWorldTypes() []WorldType {
	return []WorldType{
		WorldContinental,
		WorldArchipelago,
		WorldCanyon,
		WorldCavern,
		WorldSkylands,
		WorldAbyss,
		WorldVolcano,
	}
}

func WorldTypeFromString(value string) (WorldType, bool) {
	for _, t := range AllWorldTypes() {
		if string(t) == value {
			return t, true
		}
	}
	return "", false
}

// Noise octaves layered on top of the base landform, largest feature first.
var heightOctaves = []struct {
	scale  float64
	weight float64
}{
	{3.0, 12.0},
	{6.0, 6.0},
	{12.0, 3.0},
}

// SynthesizeHeight builds the elevation map for a world type: the variant's
// base landform plus the noise octaves, in world elevation units.
func SynthesizeHeight(root *NoiseSource, worldType WorldType, resolution int) *Field {
	src := root.Derive(labelHeight)
	field := NewField(resolution)
	div := float64(resolution - 1)
	if div <= 0 {
		div = 1
	}
	for gy := 0; gy < resolution; gy++ {
		ny := float64(gy) / div
		for gx := 0; gx < resolution; gx++ {
			nx := float64(gx) / div
			h := worldType.BaseHeight(nx, ny)
			for _, oct := range heightOctaves {
				h += (src.Sample(nx, ny, oct.scale) - 0.5) * 2 * oct.weight
			}
			field.Set(gx, gy, h)
		}
	}
	return field
}

// BaseHeight is the variant's landform at normalized coordinates in [0,1].
// Output is in world elevation units, roughly [-45, +46] before octaves.
func (t WorldType) BaseHeight(nx, ny float64) float64 {
	switch t {
	case WorldContinental:
		// Parallel mountain chains with broad valleys between them.
		ridge := 1 - math.Abs(math.Sin(nx*math.Pi*2.4+ny*math.Pi*0.8))
		return -8 + 34*ridge*ridge + 6*(ny-0.5)
	case WorldArchipelago:
		// Island bumps rising from a shallow sea floor.
		h := -18.0
		h += 30 * bump(nx, ny, 0.30, 0.35, 0.18)
		h += 26 * bump(nx, ny, 0.70, 0.60, 0.16)
		h += 24 * bump(nx, ny, 0.45, 0.80, 0.13)
		return h
	case WorldCanyon:
		// Plateau with a central crater bowl and a raised rim.
		r := radial(nx, ny, 0.5, 0.5)
		bowl := math.Max(0, 1-r/0.30)
		rim := math.Exp(-sq((r - 0.34) / 0.07))
		return 12 - 34*bowl*bowl + 8*rim
	case WorldCavern:
		// High rolling shell leaving most of the column interior.
		return 14 + 8*math.Sin(nx*math.Pi*2.2)*math.Cos(ny*math.Pi*1.8)
	case WorldSkylands:
		// Floating masses over a void floor; the gap below each mass is
		// opened by the skylands terrain override.
		h := -45.0
		h += 80 * bump(nx, ny, 0.25, 0.30, 0.14)
		h += 74 * bump(nx, ny, 0.65, 0.25, 0.12)
		h += 78 * bump(nx, ny, 0.50, 0.65, 0.15)
		h += 70 * bump(nx, ny, 0.80, 0.80, 0.11)
		return h
	case WorldAbyss:
		// Shallow shelf split by a deep trench along the mid-line.
		t2 := math.Abs(ny - 0.5)
		trench := math.Max(0, 1-t2/0.22)
		return 4 - 46*trench*trench
	case WorldVolcano:
		// Single cone with a crater floor sunk below the rim.
		r := radial(nx, ny, 0.5, 0.5)
		cone := math.Max(0, 1-r/0.55)
		return -6 + 52*cone*cone - 34*math.Exp(-sq(r/0.16))
	default:
		return 0
	}
}

// AllowedBiomes is the ordered biome palette for the world type. Order
// matters: nearest-match fallback breaks ties by list position.
func (t WorldType) AllowedBiomes() []BiomeType {
	switch t {
	case WorldContinental:
		return []BiomeType{
			BiomeTemperateForest,
			BiomeTemperateGrassland,
			BiomeBorealForest,
			BiomeTundra,
			BiomeSavanna,
			BiomeAlpine,
		}
	case WorldArchipelago:
		return []BiomeType{
			BiomeCoastal,
			BiomeTropicalRainforest,
			BiomeWetlands,
			BiomeSavanna,
			BiomeTemperateForest,
		}
	case WorldCanyon:
		return []BiomeType{
			BiomeDesert,
			BiomeSavanna,
			BiomeTemperateGrassland,
			BiomeAlpine,
		}
	case WorldCavern:
		return []BiomeType{
			BiomeWetlands,
			BiomeBorealForest,
			BiomeTundra,
			BiomeAlpine,
		}
	case WorldSkylands:
		return []BiomeType{
			BiomeAlpine,
			BiomeTemperateForest,
			BiomeBorealForest,
			BiomeTundra,
		}
	case WorldAbyss:
		return []BiomeType{
			BiomeCoastal,
			BiomeWetlands,
			BiomeTundra,
			BiomeBorealForest,
		}
	case WorldVolcano:
		return []BiomeType{
			BiomeDesert,
			BiomeSavanna,
			BiomeAlpine,
			BiomeTundra,
		}
	default:
		return []BiomeType{BiomeTemperateGrassland}
	}
}

// bump is a smooth radial hill: 1 at the center, 0 beyond the radius.
func bump(nx, ny, cx, cy, radius float64) float64 {
	d := radial(nx, ny, cx, cy)
	if d >= radius {
		return 0
	}
	f := 1 - sq(d/radius)
	return f * f
}

func radial(nx, ny, cx, cy float64) float64 {
	return math.Sqrt(sq(nx-cx) + sq(ny-cy))
}

func sq(v float64) float64 {
	return v * v
}
