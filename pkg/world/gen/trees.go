package gen

import "github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"

// TreeSite is a candidate tree origin: the air block directly above the
// surface, plus the seed a tree generator should be driven with.
type TreeSite struct {
	Pos   voxel.Pos
	Biome byte
	Seed  int64
}

// TreeScatter picks tree sites per chunk.
type TreeScatter struct {
	seed     int64
	perChunk int
}

// NewTreeScatter creates a TreeScatter from a seed. perChunk overrides the
// per-biome tree count when positive.
func NewTreeScatter(seed int64, perChunk int) *TreeScatter {
	return &TreeScatter{seed: seed, perChunk: perChunk}
}

// Sites returns the tree sites for chunk (chunkX, chunkZ). heightAt reports
// the surface height at a world block column.
func (ts *TreeScatter) Sites(c *ChunkData, chunkX, chunkZ int, heightAt func(x, z int) int) []TreeSite {
	rng := NewChunkRNG(ts.seed, chunkX, chunkZ, 600)

	// Determine biome from center of chunk for tree density.
	count := ts.perChunk
	if count <= 0 {
		count = treesForBiome(c.Biome(8, 8))
	}

	var sites []TreeSite
	for range count {
		x := rng.NextN(16)
		z := rng.NextN(16)
		bx, bz := chunkX*16+x, chunkZ*16+z
		y := heightAt(bx, bz)
		seed := rng.Int64()

		if y < 1 || y >= WorldHeight-6 {
			continue
		}

		// Trees only root in grass or dirt.
		if top := c.GetBlock(x, y, z).ID(); top != blockGrass && top != blockDirt {
			continue
		}

		sites = append(sites, TreeSite{
			Pos:   voxel.Pos{X: bx, Y: y + 1, Z: bz},
			Biome: c.Biome(x, z),
			Seed:  seed,
		})
	}
	return sites
}

func treesForBiome(biome byte) int {
	switch biome {
	case BiomeDesert:
		return 0
	case BiomeOcean, BiomeBeach:
		return 0
	case BiomePlains, BiomeSavanna:
		return 1
	case BiomeTaiga:
		return 6
	case BiomeForest:
		return 8
	case BiomeDarkForest:
		return 10
	case BiomeJungle:
		return 12
	default:
		return 2
	}
}
