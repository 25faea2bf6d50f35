package world

import (
	"fmt"
	"sync"

	"github.com/OCharnyshevich/blossom-gen/pkg/gamedata"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// World tracks block state with a generator for base terrain and overrides
// for placed features. Only chunks that were loaded explicitly can be read
// or written; everything else reports voxel.ErrNotGenerated.
type World struct {
	mu        sync.RWMutex
	blocks    map[voxel.Pos]voxel.Material
	generator gen.Generator
	chunks    map[gen.ChunkPos]*gen.ChunkData
	registry  gamedata.BlockRegistry
}

// NewWorld creates a new World with the given generator. registry supplies
// the replaceable and transparent flags of each block.
func NewWorld(generator gen.Generator, registry gamedata.BlockRegistry) *World {
	return &World{
		blocks:    make(map[voxel.Pos]voxel.Material),
		generator: generator,
		chunks:    make(map[gen.ChunkPos]*gen.ChunkData),
		registry:  registry,
	}
}

// LoadChunk returns the ChunkData for the given chunk coordinates,
// generating and caching it if needed.
func (w *World) LoadChunk(cx, cz int) *gen.ChunkData {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := w.generator.Generate(cx, cz)

	w.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[pos]; ok {
		w.mu.Unlock()
		return existing
	}
	w.chunks[pos] = c
	w.mu.Unlock()
	return c
}

// IsChunkLoaded reports whether chunk (cx, cz) has been loaded.
func (w *World) IsChunkLoaded(cx, cz int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.chunks[gen.ChunkPos{X: cx, Z: cz}]
	return ok
}

// PreGenerateRadius loads every chunk within radius of the origin chunk and
// returns how many chunks that covers.
func (w *World) PreGenerateRadius(radius int) int {
	count := 0
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			w.LoadChunk(cx, cz)
			count++
		}
	}
	return count
}

// LoadedChunks returns the number of chunks in memory.
func (w *World) LoadedChunks() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// Material returns the block state at p. Positions above or below the
// world read as air.
func (w *World) Material(p voxel.Pos) (voxel.Material, error) {
	if p.Y < 0 || p.Y >= gen.WorldHeight {
		return voxel.Air, nil
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	c, ok := w.chunks[gen.ChunkPosOf(p.X, p.Z)]
	if !ok {
		return voxel.Air, fmt.Errorf("read %v: %w", p, voxel.ErrNotGenerated)
	}
	if s, ok := w.blocks[p]; ok {
		return s, nil
	}
	return c.GetBlock(p.X&0xF, p.Y, p.Z&0xF), nil
}

// SetVoxel stores a block state override. Writing the generated state back
// removes the override.
func (w *World) SetVoxel(p voxel.Pos, m voxel.Material) error {
	if p.Y < 0 || p.Y >= gen.WorldHeight {
		return fmt.Errorf("write %v: y outside [0, %d)", p, gen.WorldHeight)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.chunks[gen.ChunkPosOf(p.X, p.Z)]
	if !ok {
		return fmt.Errorf("write %v: %w", p, voxel.ErrNotGenerated)
	}
	if m == c.GetBlock(p.X&0xF, p.Y, p.Z&0xF) {
		delete(w.blocks, p)
	} else {
		w.blocks[p] = m
	}
	return nil
}

// IsReplaceable reports whether any feature may overwrite m.
func (w *World) IsReplaceable(m voxel.Material, _ voxel.Pos) bool {
	if m == voxel.Air {
		return true
	}
	b, ok := w.registry.ByID(m.ID())
	return ok && b.Replaceable
}

// CanBeReplacedByFoliage reports whether leaves may grow into m. Any block
// that does not fill its cube qualifies, leaves included.
func (w *World) CanBeReplacedByFoliage(m voxel.Material, _ voxel.Pos) bool {
	if m == voxel.Air {
		return true
	}
	b, ok := w.registry.ByID(m.ID())
	return ok && b.Transparent
}

// RegionLoaded reports whether every chunk overlapping the box between min
// and max is loaded. A box entirely outside the vertical range never is.
func (w *World) RegionLoaded(min, max voxel.Pos) bool {
	if max.Y < 0 || min.Y >= gen.WorldHeight {
		return false
	}
	lo, hi := gen.ChunkPosOf(min.X, min.Z), gen.ChunkPosOf(max.X, max.Z)

	w.mu.RLock()
	defer w.mu.RUnlock()
	for cx := lo.X; cx <= hi.X; cx++ {
		for cz := lo.Z; cz <= hi.Z; cz++ {
			if _, ok := w.chunks[gen.ChunkPos{X: cx, Z: cz}]; !ok {
				return false
			}
		}
	}
	return true
}

// Height is the exclusive build ceiling.
func (w *World) Height() int { return gen.WorldHeight }

// ForEachOverride calls fn for every block override under a read lock.
func (w *World) ForEachOverride(fn func(pos voxel.Pos, m voxel.Material)) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for pos, m := range w.blocks {
		fn(pos, m)
	}
}

// LoadOverrides replaces all block overrides. The chunks they fall in are
// not loaded; reads still require LoadChunk.
func (w *World) LoadOverrides(overrides map[voxel.Pos]voxel.Material) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.blocks = overrides
}

// SurfaceHeight returns the terrain height of column (x, z) as generated.
func (w *World) SurfaceHeight(x, z int) int {
	return w.generator.HeightAt(x, z)
}

// SpawnHeight returns the terrain height at (0, 0) + 1, the first air block.
func (w *World) SpawnHeight() int {
	return w.generator.HeightAt(0, 0) + 1
}

var _ voxel.World = (*World)(nil)
