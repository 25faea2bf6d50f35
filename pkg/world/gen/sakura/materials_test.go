package sakura

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OCharnyshevich/blossom-gen/pkg/gamedata"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// countingBlocks counts name lookups.
type countingBlocks struct {
	gamedata.BlockRegistry
	lookups atomic.Int32
}

func (c *countingBlocks) ByName(name string) (gamedata.Block, bool) {
	c.lookups.Add(1)
	return c.BlockRegistry.ByName(name)
}

func TestMaterialsFallback(t *testing.T) {
	m := NewMaterials(gamedata.NewStaticBlocks([]gamedata.Block{{ID: 17, Name: "log"}}))
	assert.Equal(t, voxel.NewMaterial(17, 1), m.Resolve(RoleTrunk))
	assert.Equal(t, voxel.NewMaterial(18, 1), m.Resolve(RoleLeaves))

	assert.Equal(t, voxel.NewMaterial(17, 1), NewMaterials(nil).Resolve(RoleTrunk))
}

func TestMaterialsCustomBlocks(t *testing.T) {
	m := NewMaterials(gamedata.NewStaticBlocks([]gamedata.Block{
		{ID: 200, Name: "sakura_blossom_log"},
		{ID: 201, Name: "sakura_blossom_leaves"},
	}))
	assert.Equal(t, voxel.NewMaterial(200, 0), m.Resolve(RoleTrunk))
	assert.Equal(t, voxel.NewMaterial(201, 0), m.Resolve(RoleLeaves))
}

func TestMaterialsResolveOnce(t *testing.T) {
	blocks := &countingBlocks{BlockRegistry: gamedata.NewStaticBlocks([]gamedata.Block{
		{ID: 201, Name: "sakura_blossom_leaves"},
	})}
	m := NewMaterials(blocks)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				assert.Equal(t, voxel.NewMaterial(17, 1), m.Resolve(RoleTrunk))
				assert.Equal(t, voxel.NewMaterial(201, 0), m.Resolve(RoleLeaves))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), blocks.lookups.Load(), "one lookup per custom block name")
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "trunk", RoleTrunk.String())
	assert.Equal(t, "leaves", RoleLeaves.String())
	assert.Equal(t, "unknown", Role(9).String())
}

func TestNewStreamIsSeedStable(t *testing.T) {
	a, b := NewStream(-3), NewStream(-3)
	for range 16 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.NotEqual(t, NewStream(1).Int64(), NewStream(2).Int64())
}
