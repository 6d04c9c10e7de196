package terrain

// Field is a square scalar map with one sample per grid column, row-major.
type Field struct {
	resolution int
	values     []float64
}

func NewField(resolution int) *Field {
	if resolution < 1 {
		resolution = 1
	}
	return &Field{
		resolution: resolution,
		values:     make([]float64, resolution*resolution),
	}
}

func (f *Field) Resolution() int {
	return f.resolution
}

// Covers reports whether the column index lies inside the map.
func (f *Field) Covers(x, y int) bool {
	return x >= 0 && x < f.resolution && y >= 0 && y < f.resolution
}

// At samples the map. Out-of-range indexes clamp to the nearest edge so a
// stray index degrades to a boundary value instead of a fault.
func (f *Field) At(x, y int) float64 {
	x = clampIndex(x, f.resolution)
	y = clampIndex(y, f.resolution)
	return f.values[y*f.resolution+x]
}

func (f *Field) Set(x, y int, value float64) {
	if !f.Covers(x, y) {
		return
	}
	f.values[y*f.resolution+x] = value
}

// Values exposes the backing slice for bulk comparison and export. Callers
// must not modify it.
func (f *Field) Values() []float64 {
	return f.values
}

// BiomeField is a square biome map with one entry per grid column.
type BiomeField struct {
	resolution int
	biomes     []BiomeType
}

func NewBiomeField(resolution int) *BiomeField {
	if resolution < 1 {
		resolution = 1
	}
	return &BiomeField{
		resolution: resolution,
		biomes:     make([]BiomeType, resolution*resolution),
	}
}

func (f *BiomeField) Resolution() int {
	return f.resolution
}

func (f *BiomeField) Covers(x, y int) bool {
	return x >= 0 && x < f.resolution && y >= 0 && y < f.resolution
}

func (f *BiomeField) At(x, y int) BiomeType {
	x = clampIndex(x, f.resolution)
	y = clampIndex(y, f.resolution)
	biome := f.biomes[y*f.resolution+x]
	if biome == "" {
		return BiomeTemperateGrassland
	}
	return biome
}

func (f *BiomeField) Set(x, y int, biome BiomeType) {
	if !f.Covers(x, y) {
		return
	}
	f.biomes[y*f.resolution+x] = biome
}

// Biomes exposes the backing slice for bulk comparison and export. Callers
// must not modify it.
func (f *BiomeField) Biomes() []BiomeType {
	return f.biomes
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
