package world

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
)

// PreviewOptions controls the debug render of a generated world.
type PreviewOptions struct {
	// CellPixels is the square pixel size of one grid column.
	CellPixels int

	// SliceZ, when non-negative, renders a horizontal cut at that grid
	// elevation instead of the top-down composite.
	SliceZ int
}

func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{CellPixels: 8, SliceZ: -1}
}

var biomeTints = map[terrain.BiomeType]color.NRGBA{
	terrain.BiomeTundra:             {R: 214, G: 222, B: 228, A: 255},
	terrain.BiomeBorealForest:       {R: 56, G: 102, B: 74, A: 255},
	terrain.BiomeTemperateForest:    {R: 64, G: 132, B: 66, A: 255},
	terrain.BiomeTemperateGrassland: {R: 128, G: 156, B: 84, A: 255},
	terrain.BiomeDesert:             {R: 214, G: 188, B: 120, A: 255},
	terrain.BiomeSavanna:            {R: 178, G: 160, B: 92, A: 255},
	terrain.BiomeTropicalRainforest: {R: 34, G: 112, B: 52, A: 255},
	terrain.BiomeWetlands:           {R: 74, G: 112, B: 96, A: 255},
	terrain.BiomeAlpine:             {R: 168, G: 176, B: 186, A: 255},
	terrain.BiomeCoastal:            {R: 138, G: 166, B: 140, A: 255},
}

var terrainAccents = map[TerrainType]color.NRGBA{
	TerrainWater:    {R: 52, G: 96, B: 186, A: 255},
	TerrainIce:      {R: 208, G: 232, B: 244, A: 255},
	TerrainSand:     {R: 226, G: 204, B: 142, A: 255},
	TerrainSwamp:    {R: 88, G: 96, B: 58, A: 255},
	TerrainPredator: {R: 196, G: 62, B: 44, A: 255},
	TerrainWall:     {R: 72, G: 66, B: 62, A: 255},
	TerrainWind:     {R: 196, G: 208, B: 224, A: 255},
}

// RenderPreview composites the world into an image: biome tint shaded by
// elevation, terrain accents for water, ice, sand and the like. With a
// non-negative SliceZ the image shows that single grid layer instead.
func RenderPreview(w *VoxelWorld, opts PreviewOptions) (*image.NRGBA, error) {
	if w == nil {
		return nil, fmt.Errorf("world is nil")
	}
	cell := opts.CellPixels
	if cell <= 0 {
		cell = 1
	}
	if opts.SliceZ >= w.Resolution {
		return nil, fmt.Errorf("slice z %d outside grid depth %d", opts.SliceZ, w.Resolution)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w.Resolution*cell, w.Resolution*cell))
	for gy := 0; gy < w.Resolution; gy++ {
		for gx := 0; gx < w.Resolution; gx++ {
			var col color.NRGBA
			if opts.SliceZ >= 0 {
				col = sliceCellColor(w, gx, gy, opts.SliceZ)
			} else {
				col = compositeCellColor(w, gx, gy)
			}
			fillCell(img, gx, gy, cell, col)
		}
	}
	return img, nil
}

// SavePreview renders and writes the preview PNG.
func SavePreview(w *VoxelWorld, path string, opts PreviewOptions) error {
	img, err := RenderPreview(w, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preview dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

// compositeCellColor is the top-down view of one column: the biome tint lit
// by surface elevation, replaced by an accent where the surface shell holds
// a strongly colored terrain.
func compositeCellColor(w *VoxelWorld, gx, gy int) color.NRGBA {
	base := biomeTints[w.biomeMap.At(gx, gy)]
	if base.A == 0 {
		base = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	}

	h := w.heightMap.At(gx, gy)
	shade := 0.45 + 0.55*clamp01((h-WorldFloorZ)/(WorldCeilingZ-WorldFloorZ))
	col := applyShade(base, shade)

	surface := w.VoxelAt(GridCoord{X: gx, Y: gy, Z: w.surfaceGridZ(gx, gy)})
	if surface != nil {
		if accent, ok := terrainAccents[surface.Terrain]; ok {
			col = applyShade(accent, 0.6+0.4*shade)
		}
	}
	return col
}

func sliceCellColor(w *VoxelWorld, gx, gy, gz int) color.NRGBA {
	v := w.VoxelAt(GridCoord{X: gx, Y: gy, Z: gz})
	if v == nil {
		return color.NRGBA{A: 255}
	}
	if accent, ok := terrainAccents[v.Terrain]; ok {
		return accent
	}
	base := biomeTints[v.Biome]
	if base.A == 0 {
		base = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	}
	if !v.Passable() {
		return applyShade(base, 0.3)
	}
	return applyShade(base, 0.5+0.5*v.Light)
}

func applyShade(base color.NRGBA, factor float64) color.NRGBA {
	factor = clamp01(factor)
	return color.NRGBA{
		R: uint8(math.Round(float64(base.R) * factor)),
		G: uint8(math.Round(float64(base.G) * factor)),
		B: uint8(math.Round(float64(base.B) * factor)),
		A: 255,
	}
}

func fillCell(img *image.NRGBA, gx, gy, cell int, col color.NRGBA) {
	for py := gy * cell; py < (gy+1)*cell; py++ {
		for px := gx * cell; px < (gx+1)*cell; px++ {
			img.SetNRGBA(px, py, col)
		}
	}
}
