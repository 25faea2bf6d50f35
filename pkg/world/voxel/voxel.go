// Package voxel defines the world surface that feature generators read and write.
package voxel

import "errors"

// ErrNotGenerated is returned when a position falls inside a chunk that has
// not been generated or loaded yet.
var ErrNotGenerated = errors.New("chunk not generated")

// Material is a block state, encoded as blockID<<4 | metadata.
type Material uint16

// Air is the empty block state.
const Air Material = 0

// NewMaterial builds a block state from a block ID and metadata value.
func NewMaterial(id, meta int) Material {
	return Material(id<<4 | meta&0xF)
}

// ID returns the block ID part of the state.
func (m Material) ID() int { return int(m >> 4) }

// Meta returns the metadata part of the state.
func (m Material) Meta() int { return int(m & 0xF) }

// Pos is a block position in world space.
type Pos struct {
	X, Y, Z int
}

// Add returns p offset by (dx, dy, dz).
func (p Pos) Add(dx, dy, dz int) Pos {
	return Pos{p.X + dx, p.Y + dy, p.Z + dz}
}

// Up returns p moved n blocks up.
func (p Pos) Up(n int) Pos { return Pos{p.X, p.Y + n, p.Z} }

// Down returns the block directly below p.
func (p Pos) Down() Pos { return Pos{p.X, p.Y - 1, p.Z} }

// World is the block access needed by feature generators.
type World interface {
	// Material returns the block state at p, or ErrNotGenerated when p lies
	// in a chunk that is not loaded.
	Material(p Pos) (Material, error)
	// IsReplaceable reports whether m at p may be overwritten by terrain
	// features (air, tall grass, water...).
	IsReplaceable(m Material, p Pos) bool
	// CanBeReplacedByFoliage reports whether m at p may be overwritten by leaves.
	CanBeReplacedByFoliage(m Material, p Pos) bool
	// RegionLoaded reports whether every chunk touching the box [min, max] is loaded.
	RegionLoaded(min, max Pos) bool
	// SetVoxel writes m at p.
	SetVoxel(p Pos, m Material) error
	// Height is the exclusive vertical ceiling of the world.
	Height() int
}
