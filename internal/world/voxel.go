package world

import "github.com/cgcardona/bugtopia-sub000/internal/terrain"

// Layer thresholds in world elevation units.
const (
	undergroundCeiling = -30.0
	surfaceCeiling     = 10.0
	canopyCeiling      = 30.0
)

// TerrainLayer is the fixed elevation band of a voxel.
type TerrainLayer int

const (
	LayerUnderground TerrainLayer = iota
	LayerSurface
	LayerCanopy
	LayerAerial
)

const LayerCount = 4

// LayerForZ derives the band from elevation alone. Voxels never store a
// layer that diverges from this function of their position.
func LayerForZ(z float64) TerrainLayer {
	switch {
	case z < undergroundCeiling:
		return LayerUnderground
	case z < surfaceCeiling:
		return LayerSurface
	case z < canopyCeiling:
		return LayerCanopy
	default:
		return LayerAerial
	}
}

func AllLayers() []TerrainLayer {
	return []TerrainLayer{LayerUnderground, LayerSurface, LayerCanopy, LayerAerial}
}

func (l TerrainLayer) String() string {
	switch l {
	case LayerUnderground:
		return "underground"
	case LayerSurface:
		return "surface"
	case LayerCanopy:
		return "canopy"
	case LayerAerial:
		return "aerial"
	default:
		return "unknown"
	}
}

// TerrainType labels what occupies a voxel.
type TerrainType string

const (
	TerrainOpen     TerrainType = "open"
	TerrainWall     TerrainType = "wall"
	TerrainWater    TerrainType = "water"
	TerrainHill     TerrainType = "hill"
	TerrainForest   TerrainType = "forest"
	TerrainFood     TerrainType = "food"
	TerrainSand     TerrainType = "sand"
	TerrainIce      TerrainType = "ice"
	TerrainSwamp    TerrainType = "swamp"
	TerrainShadow   TerrainType = "shadow"
	TerrainPredator TerrainType = "predator"
	TerrainWind     TerrainType = "wind"
)

// TransitionKind is the traversal rule family attached to a voxel.
type TransitionKind string

const (
	TransitionSolid  TransitionKind = "solid"
	TransitionAir    TransitionKind = "air"
	TransitionRamp   TransitionKind = "ramp"
	TransitionClimb  TransitionKind = "climb"
	TransitionSwim   TransitionKind = "swim"
	TransitionTunnel TransitionKind = "tunnel"
	TransitionFlight TransitionKind = "flight"
	TransitionBridge TransitionKind = "bridge"
)

// Transition pairs a kind with its parameter: ramp angle, climb difficulty,
// swim depth, tunnel width, flight clearance, bridge stability. Solid and
// air carry none.
type Transition struct {
	Kind  TransitionKind
	Param float64
}

// Passable reports whether any organism could occupy the cell. Solid is the
// only impassable kind; the cost model may still reject specific organisms
// on the rest.
func (t Transition) Passable() bool {
	return t.Kind != TransitionSolid
}

// ResourceKind names a consumable attached to a voxel.
type ResourceKind string

const (
	ResourceFungus     ResourceKind = "fungus"
	ResourceVegetation ResourceKind = "vegetation"
	ResourceSeeds      ResourceKind = "seeds"
	ResourceFruit      ResourceKind = "fruit"
	ResourceNectar     ResourceKind = "nectar"
)

// Resource is optional forage metadata on a passable voxel.
type Resource struct {
	Kind    ResourceKind
	Density float64
}

// Voxel is one cell of the grid. Identity is the grid coordinate;
// everything else is derived during generation and read-only afterwards.
type Voxel struct {
	Coord      GridCoord
	Position   Position3D
	Terrain    TerrainType
	Layer      TerrainLayer
	Transition Transition
	Biome      terrain.BiomeType

	// Environmental scalars, all in [0,1].
	Temperature float64
	Moisture    float64
	Light       float64
	Wind        float64

	// Edges holds passage toward each of the six neighbours.
	Edges [DirectionCount]bool

	Resource *Resource
}

func (v *Voxel) Passable() bool {
	return v.Transition.Passable()
}

// EdgeTo reports passage toward the given direction.
func (v *Voxel) EdgeTo(d Direction) bool {
	if d < 0 || d >= DirectionCount {
		return false
	}
	return v.Edges[d]
}
