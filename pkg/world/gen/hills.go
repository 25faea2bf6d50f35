package gen

import "github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"

const (
	seaLevel   = 62
	blockSand  = 12
	blockWater = 9
)

var (
	stateSand  = voxel.NewMaterial(blockSand, 0)
	stateWater = voxel.NewMaterial(blockWater, 0)
)

// HillsGenerator produces rolling grassland with forest patches, sandy
// lowlands and water below sea level. It gives tree placement uneven ground
// and unsuitable soil to deal with.
type HillsGenerator struct {
	terrain *Noise
	detail  *Noise
	biomes  *Noise
}

// NewHillsGenerator creates a HillsGenerator from a seed.
func NewHillsGenerator(seed int64) *HillsGenerator {
	return &HillsGenerator{
		terrain: NewNoise(seed, 1),
		detail:  NewNoise(seed, 2),
		biomes:  NewNoise(seed, 3),
	}
}

func (g *HillsGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := &ChunkData{}
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			bx, bz := chunkX*16+x, chunkZ*16+z
			height := g.HeightAt(bx, bz)
			biome := g.biomeAt(bx, bz, height)
			c.SetBiome(x, z, biome)
			g.fillColumn(c, x, z, height, biome)
		}
	}
	return c
}

// HeightAt returns the y of the top solid block of the column.
func (g *HillsGenerator) HeightAt(blockX, blockZ int) int {
	base := g.terrain.Octaves(float64(blockX)/128, float64(blockZ)/128, 5, 0.5)
	detail := g.detail.Octaves(float64(blockX)/32, float64(blockZ)/32, 3, 0.5)
	h := int(seaLevel + 2 + base*18 + detail*4)
	return min(max(h, 1), WorldHeight-6)
}

func (g *HillsGenerator) biomeAt(bx, bz, height int) byte {
	if height < seaLevel {
		return BiomeOcean
	}
	if height <= seaLevel+1 {
		return BiomeBeach
	}
	v := g.biomes.Octaves(float64(bx)/256, float64(bz)/256, 2, 0.5)
	switch {
	case v > 0.25:
		return BiomeForest
	case v < -0.35:
		return BiomeDesert
	default:
		return BiomePlains
	}
}

func (g *HillsGenerator) fillColumn(c *ChunkData, x, z, height int, biome byte) {
	c.SetBlock(x, 0, z, stateBedrock)
	for y := 1; y <= height-4; y++ {
		c.SetBlock(x, y, z, stateStone)
	}

	top, under := stateGrass, stateDirt
	switch biome {
	case BiomeDesert, BiomeBeach, BiomeOcean:
		top, under = stateSand, stateSand
	}
	for y := max(height-3, 1); y < height; y++ {
		c.SetBlock(x, y, z, under)
	}
	c.SetBlock(x, height, z, top)

	for y := height + 1; y <= seaLevel; y++ {
		c.SetBlock(x, y, z, stateWater)
	}
}
