package terrain

import "math"

const (
	temperatureNoiseScale  = 4.0
	temperatureNoiseWeight = 0.25

	// Equator band: temperature peaks at the grid mid-line and cools
	// toward both edges.
	temperatureEdge = 0.15
	temperatureSpan = 0.60
)

var moistureOctaves = []struct {
	scale  float64
	weight float64
}{
	{3.5, 0.35},
	{9.0, 0.15},
}

// SynthesizeTemperature builds the temperature map in [0,1]: a latitude
// band warm at the center rows plus one noise octave.
func SynthesizeTemperature(root *NoiseSource, resolution int) *Field {
	src := root.Derive(labelTemperature)
	field := NewField(resolution)
	div := float64(resolution - 1)
	if div <= 0 {
		div = 1
	}
	for gy := 0; gy < resolution; gy++ {
		ny := float64(gy) / div
		band := 1 - math.Abs(ny-0.5)*2
		for gx := 0; gx < resolution; gx++ {
			nx := float64(gx) / div
			t := temperatureEdge + temperatureSpan*band
			t += (src.Sample(nx, ny, temperatureNoiseScale) - 0.5) * 2 * temperatureNoiseWeight
			field.Set(gx, gy, clamp01(t))
		}
	}
	return field
}

// SynthesizeMoisture builds the moisture map in [0,1] from two noise
// octaves around a neutral midpoint.
func SynthesizeMoisture(root *NoiseSource, resolution int) *Field {
	src := root.Derive(labelMoisture)
	field := NewField(resolution)
	div := float64(resolution - 1)
	if div <= 0 {
		div = 1
	}
	for gy := 0; gy < resolution; gy++ {
		ny := float64(gy) / div
		for gx := 0; gx < resolution; gx++ {
			nx := float64(gx) / div
			m := 0.5
			for _, oct := range moistureOctaves {
				m += (src.Sample(nx, ny, oct.scale) - 0.5) * 2 * oct.weight
			}
			field.Set(gx, gy, clamp01(m))
		}
	}
	return field
}
