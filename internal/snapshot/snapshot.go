// Package snapshot exports a generated world into a compact file for the
// rendering and evolution collaborators. The format is a zstd stream opening
// with one JSON header line (human inspectable with zstdcat | head -1)
// followed by a gob payload.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
	"github.com/cgcardona/bugtopia-sub000/internal/world"
)

const FormatVersion = 1

type Header struct {
	Version     int    `json:"version"`
	WorldID     string `json:"world_id"`
	WorldType   string `json:"world_type"`
	Resolution  int    `json:"resolution"`
	CreatedUnix int64  `json:"created_unix"`
}

// VoxelV1 is the exported classification of one grid cell. The grid index
// is implicit via x + y*R + z*R² ordering, matching the generator's arena.
type VoxelV1 struct {
	Terrain    string
	Transition string
	Param      float64
	Biome      string
	Edges      [world.DirectionCount]bool

	Temperature float64
	Moisture    float64
	Light       float64
	Wind        float64

	ResourceKind    string
	ResourceDensity float64
}

type SnapshotV1 struct {
	Header Header

	Seed       int64
	WorldType  string
	Resolution int
	VoxelSize  float64
	Bounds     world.Bounds

	HeightMap      []float64
	TemperatureMap []float64
	MoistureMap    []float64
	BiomeMap       []string

	Voxels []VoxelV1
}

// Capture copies everything external consumers need out of a generated
// world.
func Capture(w *world.VoxelWorld) SnapshotV1 {
	snap := SnapshotV1{
		Header: Header{
			Version:     FormatVersion,
			WorldID:     w.ID.String(),
			WorldType:   string(w.Type),
			Resolution:  w.Resolution,
			CreatedUnix: time.Now().Unix(),
		},
		Seed:       w.Seed,
		WorldType:  string(w.Type),
		Resolution: w.Resolution,
		VoxelSize:  w.VoxelSize,
		Bounds:     w.Bounds,

		HeightMap:      append([]float64(nil), w.HeightMap().Values()...),
		TemperatureMap: append([]float64(nil), w.TemperatureMap().Values()...),
		MoistureMap:    append([]float64(nil), w.MoistureMap().Values()...),

		Voxels: make([]VoxelV1, 0, w.Resolution*w.Resolution*w.Resolution),
	}

	biomes := w.BiomeMap().Biomes()
	snap.BiomeMap = make([]string, len(biomes))
	for i, b := range biomes {
		snap.BiomeMap[i] = string(b)
	}

	for gz := 0; gz < w.Resolution; gz++ {
		for gy := 0; gy < w.Resolution; gy++ {
			for gx := 0; gx < w.Resolution; gx++ {
				v := w.VoxelAt(world.GridCoord{X: gx, Y: gy, Z: gz})
				rec := VoxelV1{
					Terrain:     string(v.Terrain),
					Transition:  string(v.Transition.Kind),
					Param:       v.Transition.Param,
					Biome:       string(v.Biome),
					Edges:       v.Edges,
					Temperature: v.Temperature,
					Moisture:    v.Moisture,
					Light:       v.Light,
					Wind:        v.Wind,
				}
				if v.Resource != nil {
					rec.ResourceKind = string(v.Resource.Kind)
					rec.ResourceDensity = v.Resource.Density
				}
				snap.Voxels = append(snap.Voxels, rec)
			}
		}
	}
	return snap
}

// BiomeAt is a convenience lookup into the exported biome map.
func (s SnapshotV1) BiomeAt(gx, gy int) terrain.BiomeType {
	idx := gy*s.Resolution + gx
	if idx < 0 || idx >= len(s.BiomeMap) {
		return terrain.BiomeTemperateGrassland
	}
	return terrain.BiomeType(s.BiomeMap[idx])
}

// Write stores the snapshot at path, creating parent directories as needed.
func Write(path string, snap SnapshotV1) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 256*1024)
	defer bw.Flush()

	hb, err := json.Marshal(snap.Header)
	if err != nil {
		return fmt.Errorf("marshal header: %w", err)
	}
	if _, err := bw.Write(hb); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

// Read loads a snapshot written by Write.
func Read(path string) (SnapshotV1, error) {
	var snap SnapshotV1
	f, err := os.Open(path)
	if err != nil {
		return snap, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return snap, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	// Skip the header line; the gob payload carries the header too.
	if _, err := br.ReadBytes('\n'); err != nil {
		return snap, fmt.Errorf("read header: %w", err)
	}

	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return snap, fmt.Errorf("gob decode: %w", err)
	}
	if snap.Header.Version != FormatVersion {
		return snap, fmt.Errorf("unsupported snapshot version %d", snap.Header.Version)
	}
	return snap, nil
}
