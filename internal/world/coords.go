package world

import "math"

// World elevation span. Grid z maps affinely onto this range regardless of
// resolution, so layer thresholds stay meaningful across worlds.
const (
	WorldFloorZ   = -50.0
	WorldCeilingZ = 50.0
)

// GridCoord addresses one voxel in the dense grid.
type GridCoord struct {
	X int
	Y int
	Z int
}

// Position3D is a point in world units. Z is elevation.
type Position3D struct {
	X float64
	Y float64
	Z float64
}

func (p Position3D) Distance(o Position3D) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	dz := p.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// HorizontalDistance ignores elevation.
func (p Position3D) HorizontalDistance(o Position3D) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Bounds is the world-unit footprint of the grid on the horizontal plane.
type Bounds struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

func (b Bounds) MaxX() float64 {
	return b.MinX + b.Width
}

func (b Bounds) MaxY() float64 {
	return b.MinY + b.Height
}

// Contains reports whether the position lies inside the world volume,
// elevation included.
func (b Bounds) Contains(p Position3D) bool {
	if p.X < b.MinX || p.X > b.MaxX() || p.Y < b.MinY || p.Y > b.MaxY() {
		return false
	}
	return p.Z >= WorldFloorZ && p.Z <= WorldCeilingZ
}

// Dimensions is the voxel count per axis. The grid is always cubic.
type Dimensions struct {
	Width  int
	Height int
	Depth  int
}

// Direction indexes the six face-adjacent neighbours. Pairs are laid out
// adjacently so flipping the low bit flips the direction.
type Direction int

const (
	DirNorth Direction = iota
	DirSouth
	DirEast
	DirWest
	DirUp
	DirDown
)

const DirectionCount = 6

var directionOffsets = [DirectionCount]GridCoord{
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
}

func (d Direction) Offset() GridCoord {
	return directionOffsets[d]
}

func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Vertical reports whether the direction crosses layers.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Step returns the neighbouring coordinate in the given direction.
func (c GridCoord) Step(d Direction) GridCoord {
	o := d.Offset()
	return GridCoord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}
