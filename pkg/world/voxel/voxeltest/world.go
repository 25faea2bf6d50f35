// Package voxeltest provides an in-memory voxel.World for tests.
package voxeltest

import (
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// Block states used by MapWorld's default classification.
var (
	Stone     = voxel.NewMaterial(1, 0)
	Grass     = voxel.NewMaterial(2, 0)
	Dirt      = voxel.NewMaterial(3, 0)
	Log       = voxel.NewMaterial(17, 1)
	Leaves    = voxel.NewMaterial(18, 1)
	TallGrass = voxel.NewMaterial(31, 1)
	Flower    = voxel.NewMaterial(38, 0)
)

// MapWorld is a sparse world. Every position inside Bounds reads as Air
// unless set; positions outside Bounds return voxel.ErrNotGenerated.
type MapWorld struct {
	Blocks map[voxel.Pos]voxel.Material
	// Bounds is the inclusive horizontal extent of loaded terrain.
	MinX, MinZ, MaxX, MaxZ int
	Ceiling                int
	// Failing positions return Err from Material.
	Failing map[voxel.Pos]error
}

// NewFlat returns a world loaded within radius blocks of the origin column
// with a grass floor at groundY and dirt below it.
func NewFlat(radius, groundY int) *MapWorld {
	w := &MapWorld{
		Blocks:  make(map[voxel.Pos]voxel.Material),
		MinX:    -radius,
		MinZ:    -radius,
		MaxX:    radius,
		MaxZ:    radius,
		Ceiling: 256,
		Failing: make(map[voxel.Pos]error),
	}
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			w.Blocks[voxel.Pos{X: x, Y: groundY, Z: z}] = Grass
			if groundY > 0 {
				w.Blocks[voxel.Pos{X: x, Y: groundY - 1, Z: z}] = Dirt
			}
		}
	}
	return w
}

func (w *MapWorld) loaded(p voxel.Pos) bool {
	return p.X >= w.MinX && p.X <= w.MaxX && p.Z >= w.MinZ && p.Z <= w.MaxZ
}

func (w *MapWorld) Material(p voxel.Pos) (voxel.Material, error) {
	if err, ok := w.Failing[p]; ok {
		return voxel.Air, err
	}
	if !w.loaded(p) {
		return voxel.Air, voxel.ErrNotGenerated
	}
	return w.Blocks[p], nil
}

func (w *MapWorld) IsReplaceable(m voxel.Material, _ voxel.Pos) bool {
	return m == voxel.Air || m.ID() == TallGrass.ID()
}

func (w *MapWorld) CanBeReplacedByFoliage(m voxel.Material, _ voxel.Pos) bool {
	switch m.ID() {
	case voxel.Air.ID(), Leaves.ID(), TallGrass.ID(), Flower.ID():
		return true
	}
	return false
}

func (w *MapWorld) RegionLoaded(min, max voxel.Pos) bool {
	return w.loaded(min) && w.loaded(max)
}

func (w *MapWorld) SetVoxel(p voxel.Pos, m voxel.Material) error {
	if !w.loaded(p) {
		return voxel.ErrNotGenerated
	}
	if m == voxel.Air {
		delete(w.Blocks, p)
		return nil
	}
	w.Blocks[p] = m
	return nil
}

func (w *MapWorld) Height() int { return w.Ceiling }

// Clone returns a deep copy of w.
func (w *MapWorld) Clone() *MapWorld {
	c := *w
	c.Blocks = make(map[voxel.Pos]voxel.Material, len(w.Blocks))
	for p, m := range w.Blocks {
		c.Blocks[p] = m
	}
	c.Failing = make(map[voxel.Pos]error, len(w.Failing))
	for p, err := range w.Failing {
		c.Failing[p] = err
	}
	return &c
}

// Count returns how many voxels hold m.
func (w *MapWorld) Count(m voxel.Material) int {
	n := 0
	for _, b := range w.Blocks {
		if b == m {
			n++
		}
	}
	return n
}
