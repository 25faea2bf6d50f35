package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkRNGDeterministic(t *testing.T) {
	a := NewChunkRNG(99, 3, -4, 600)
	b := NewChunkRNG(99, 3, -4, 600)
	for range 100 {
		assert.Equal(t, a.NextN(1000), b.NextN(1000))
	}
}

func TestChunkRNGRange(t *testing.T) {
	r := NewChunkRNG(1, 0, 0, 0)
	for range 1000 {
		v := r.NextN(16)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 16)
		assert.GreaterOrEqual(t, r.Int64(), int64(0))
	}
}

func TestTreeScatterSites(t *testing.T) {
	g := NewFlatGenerator(5)
	c := g.Generate(1, 2)
	ts := NewTreeScatter(5, 4)

	sites := ts.Sites(c, 1, 2, g.HeightAt)
	assert.Len(t, sites, 4)
	for _, s := range sites {
		assert.Equal(t, 5, s.Pos.Y, "origin is one block above grass")
		assert.Equal(t, ChunkPos{1, 2}, ChunkPosOf(s.Pos.X, s.Pos.Z))
		assert.Equal(t, BiomePlains, s.Biome)
	}

	again := ts.Sites(c, 1, 2, g.HeightAt)
	assert.Equal(t, sites, again)
}

func TestTreeScatterBiomeCounts(t *testing.T) {
	tests := []struct {
		biome byte
		want  int
	}{
		{BiomeDesert, 0},
		{BiomeOcean, 0},
		{BiomePlains, 1},
		{BiomeForest, 8},
		{BiomeDarkForest, 10},
	}
	for _, tt := range tests {
		g := NewMeadowGenerator(3, tt.biome)
		c := g.Generate(0, 0)
		sites := NewTreeScatter(3, 0).Sites(c, 0, 0, g.HeightAt)
		assert.Len(t, sites, tt.want, "biome %d", tt.biome)
	}
}
