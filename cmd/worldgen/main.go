package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/cgcardona/bugtopia-sub000/internal/config"
	"github.com/cgcardona/bugtopia-sub000/internal/snapshot"
	"github.com/cgcardona/bugtopia-sub000/internal/world"
)

func main() {
	var (
		cfgPath     = flag.String("config", "", "path to world generation configuration file")
		worldType   = flag.String("type", "", "world type override (continental, archipelago, ...)")
		resolution  = flag.Int("resolution", 0, "grid resolution override")
		seed        = flag.Int64("seed", 0, "noise seed override (0 keeps the configured seed)")
		previewPath = flag.String("preview", "", "write a preview PNG to this path")
		exportPath  = flag.String("export", "", "write a compressed world snapshot to this path")
		stats       = flag.Bool("stats", true, "print occupancy statistics")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	applyOverrides(cfg, *worldType, *resolution, *seed, *previewPath, *exportPath)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("validate config: %v", err)
	}

	bounds := world.Bounds{
		MinX:   cfg.World.Bounds.MinX,
		MinY:   cfg.World.Bounds.MinY,
		Width:  cfg.World.Bounds.Width,
		Height: cfg.World.Bounds.Height,
	}
	w := world.New(bounds, cfg.WorldType(), cfg.World.Resolution, cfg.World.Seed)

	if *stats {
		printStats(w)
	}

	if cfg.Preview.Enabled {
		opts := world.PreviewOptions{CellPixels: cfg.Preview.CellPixels, SliceZ: cfg.Preview.SliceZ}
		if err := world.SavePreview(w, cfg.Preview.Path, opts); err != nil {
			log.Fatalf("save preview: %v", err)
		}
		log.Printf("preview written to %s", cfg.Preview.Path)
	}

	if cfg.Export.Enabled {
		if err := snapshot.Write(cfg.Export.Path, snapshot.Capture(w)); err != nil {
			log.Fatalf("write snapshot: %v", err)
		}
		log.Printf("snapshot written to %s", cfg.Export.Path)
	}
}

func applyOverrides(cfg *config.Config, worldType string, resolution int, seed int64, previewPath, exportPath string) {
	if worldType != "" {
		cfg.World.Type = worldType
	}
	if resolution > 0 {
		cfg.World.Resolution = resolution
	}
	if seed != 0 {
		cfg.World.Seed = seed
	}
	if previewPath != "" {
		cfg.Preview.Enabled = true
		cfg.Preview.Path = previewPath
	}
	if exportPath != "" {
		cfg.Export.Enabled = true
		cfg.Export.Path = exportPath
	}
}

func printStats(w *world.VoxelWorld) {
	dims := w.Dimensions()
	total := dims.Width * dims.Height * dims.Depth

	fmt.Printf("== World %s ==\n", w.ID)
	fmt.Printf("Type: %s  Resolution: %d  Seed: %d  VoxelSize: %.2f\n",
		w.Type, w.Resolution, w.Seed, w.VoxelSize)

	terrainCounts := map[world.TerrainType]int{}
	transitionCounts := map[world.TransitionKind]int{}
	biomeCounts := map[string]int{}
	resources := 0
	passable := 0
	for _, layer := range world.AllLayers() {
		coords := w.VoxelsInLayer(layer)
		fmt.Printf("Layer %-12s %7d voxels (%.1f%%)\n",
			layer, len(coords), 100*float64(len(coords))/float64(total))
		for _, c := range coords {
			v := w.VoxelAt(c)
			terrainCounts[v.Terrain]++
			transitionCounts[v.Transition.Kind]++
			biomeCounts[string(v.Biome)]++
			if v.Passable() {
				passable++
			}
			if v.Resource != nil {
				resources++
			}
		}
	}
	fmt.Printf("Passable: %d/%d (%.1f%%)  Resources: %d\n",
		passable, total, 100*float64(passable)/float64(total), resources)

	printHistogram("Terrain", terrainCounts, total)
	printHistogram("Transition", transitionCounts, total)
	printHistogram("Biome", biomeCounts, total)

	snap := w.Metrics().Snapshot()
	fmt.Printf("Carved features: %d (caves %d, climbs %d, aerial %d, ramps %d, shafts %d)\n",
		snap.FeaturesCarved, snap.CaveEntrances, snap.ClimbRoutes,
		snap.AerialColumns, snap.RampColumns, snap.Shafts)
	fmt.Printf("Phase times: synthesis %s, grid %s, connectivity %s, resources %s\n",
		snap.SynthesisTime, snap.GridTime, snap.ConnectivityTime, snap.ResourceTime)
}

func printHistogram[K ~string](label string, counts map[K]int, total int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	fmt.Printf("%s occupancy:\n", label)
	for _, k := range keys {
		n := counts[K(k)]
		fmt.Printf("  %-20s %7d (%.2f%%)\n", k, n, 100*float64(n)/float64(total))
	}
}
