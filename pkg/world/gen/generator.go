package gen

import "github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"

const (
	// WorldHeight is the exclusive vertical ceiling of a chunk column.
	WorldHeight = 256
	// ChunkSize is the horizontal edge length of a chunk.
	ChunkSize = 16
)

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// ChunkPosOf returns the chunk containing the block column (x, z).
func ChunkPosOf(x, z int) ChunkPos {
	return ChunkPos{X: x >> 4, Z: z >> 4}
}

// Section holds block data for a 16×16×16 vertical slice of a chunk.
// Index = y*256 + z*16 + x.
type Section struct {
	Blocks [4096]voxel.Material
}

// ChunkData holds the generated terrain for one chunk column.
type ChunkData struct {
	Sections [WorldHeight / 16]*Section // nil = all-air
	Biomes   [256]byte                  // index = z*16 + x → biome ID
}

// Generator produces chunk data deterministically from a seed.
type Generator interface {
	Generate(chunkX, chunkZ int) *ChunkData
	HeightAt(blockX, blockZ int) int
}

// SetBlock sets a block state at the given local coordinates within the chunk.
// x, z must be in [0,16), y must be in [0,WorldHeight).
func (c *ChunkData) SetBlock(x, y, z int, state voxel.Material) {
	sec := y >> 4
	if c.Sections[sec] == nil {
		if state == voxel.Air {
			return
		}
		c.Sections[sec] = &Section{}
	}
	c.Sections[sec].Blocks[(y&0xF)*256+z*16+x] = state
}

// GetBlock returns the block state at the given local coordinates.
func (c *ChunkData) GetBlock(x, y, z int) voxel.Material {
	sec := y >> 4
	if c.Sections[sec] == nil {
		return voxel.Air
	}
	return c.Sections[sec].Blocks[(y&0xF)*256+z*16+x]
}

// SetBiome sets the biome ID at the given local x, z coordinates.
func (c *ChunkData) SetBiome(x, z int, biome byte) {
	c.Biomes[z*16+x] = biome
}

// Biome returns the biome ID at the given local x, z coordinates.
func (c *ChunkData) Biome(x, z int) byte {
	return c.Biomes[z*16+x]
}
