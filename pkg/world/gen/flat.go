package gen

import "github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"

// Block IDs used by the terrain generators, matching the pc-1.8 table.
const (
	blockStone     = 1
	blockGrass     = 2
	blockDirt      = 3
	blockBedrock   = 7
	blockTallGrass = 31
	blockFlower    = 38
)

var (
	stateBedrock   = voxel.NewMaterial(blockBedrock, 0)
	stateStone     = voxel.NewMaterial(blockStone, 0)
	stateDirt      = voxel.NewMaterial(blockDirt, 0)
	stateGrass     = voxel.NewMaterial(blockGrass, 0)
	stateTallGrass = voxel.NewMaterial(blockTallGrass, 1)
	stateFlower    = voxel.NewMaterial(blockFlower, 0)
)

// FlatGenerator generates a classic superflat world:
// bedrock at y=0, stone y=1..2, dirt y=3, grass y=4.
type FlatGenerator struct {
	seed       int64
	biome      byte
	vegetation bool
}

// NewFlatGenerator creates a bare FlatGenerator in the plains biome.
func NewFlatGenerator(seed int64) *FlatGenerator {
	return &FlatGenerator{seed: seed, biome: BiomePlains}
}

// NewMeadowGenerator creates a FlatGenerator whose grass is dotted with
// tall grass and flowers, in the given biome.
func NewMeadowGenerator(seed int64, biome byte) *FlatGenerator {
	return &FlatGenerator{seed: seed, biome: biome, vegetation: true}
}

// WithBiome returns a copy of g that reports biome for every column.
func (g *FlatGenerator) WithBiome(biome byte) *FlatGenerator {
	c := *g
	c.biome = biome
	return &c
}

func (g *FlatGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := &ChunkData{}

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			c.SetBlock(x, 0, z, stateBedrock)
			c.SetBlock(x, 1, z, stateStone)
			c.SetBlock(x, 2, z, stateStone)
			c.SetBlock(x, 3, z, stateDirt)
			c.SetBlock(x, 4, z, stateGrass)
			c.SetBiome(x, z, g.biome)
		}
	}

	if g.vegetation {
		g.placeVegetation(c, chunkX, chunkZ)
	}
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return 4 // top solid block is at y=4 (grass)
}

// placeVegetation scatters tall grass and flowers on the surface.
func (g *FlatGenerator) placeVegetation(c *ChunkData, chunkX, chunkZ int) {
	rng := NewChunkRNG(g.seed, chunkX, chunkZ, 700)
	for range 20 {
		x := rng.NextN(16)
		z := rng.NextN(16)
		if rng.NextN(3) == 0 {
			c.SetBlock(x, 5, z, stateTallGrass)
		} else if rng.NextN(8) == 0 {
			c.SetBlock(x, 5, z, stateFlower)
		}
	}
}
