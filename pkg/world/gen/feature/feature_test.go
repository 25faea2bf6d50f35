package feature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel/voxeltest"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b voxel.Pos
		want []voxel.Pos
	}{
		{"single point", voxel.Pos{1, 2, 3}, voxel.Pos{1, 2, 3}, []voxel.Pos{{1, 2, 3}}},
		{"vertical", voxel.Pos{0, 5, 0}, voxel.Pos{0, 8, 0}, []voxel.Pos{{0, 5, 0}, {0, 6, 0}, {0, 7, 0}, {0, 8, 0}}},
		{"shallow slope", voxel.Pos{0, 0, 0}, voxel.Pos{3, 1, 0}, []voxel.Pos{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 1, 0}}},
		{"negative", voxel.Pos{0, 0, 0}, voxel.Pos{-2, 0, -1}, []voxel.Pos{{0, 0, 0}, {-1, 0, 0}, {-2, 0, -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.a, tt.b))
		})
	}
}

func TestDisk(t *testing.T) {
	c := voxel.Pos{10, 4, -3}
	assert.Equal(t, []voxel.Pos{c}, Disk(c, 0))
	assert.Len(t, Disk(c, 1), 5)
	assert.Len(t, Disk(c, 2), 13)
	for _, p := range Disk(c, 3) {
		dx, dz := p.X-c.X, p.Z-c.Z
		assert.LessOrEqual(t, dx*dx+dz*dz, 9)
		assert.Equal(t, c.Y, p.Y)
	}
}

func TestCanDrawLine(t *testing.T) {
	var pr Primitives
	w := voxeltest.NewFlat(8, 4)
	from, to := voxel.Pos{0, 5, 0}, voxel.Pos{0, 9, 0}

	ok, err := pr.CanDrawLine(w, from, to, voxeltest.Log)
	require.NoError(t, err)
	assert.True(t, ok)

	w.Blocks[voxel.Pos{0, 6, 0}] = voxeltest.TallGrass
	ok, err = pr.CanDrawLine(w, from, to, voxeltest.Log)
	require.NoError(t, err)
	assert.True(t, ok, "tall grass is replaceable")

	w.Blocks[voxel.Pos{0, 7, 0}] = voxeltest.Stone
	ok, err = pr.CanDrawLine(w, from, to, voxeltest.Log)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanDrawLineOutsideLoadedTerrain(t *testing.T) {
	var pr Primitives
	w := voxeltest.NewFlat(2, 4)

	_, err := pr.CanDrawLine(w, voxel.Pos{0, 5, 0}, voxel.Pos{5, 5, 0}, voxeltest.Log)
	assert.True(t, errors.Is(err, voxel.ErrNotGenerated))
}

func TestCanDrawLineAboveCeiling(t *testing.T) {
	var pr Primitives
	w := voxeltest.NewFlat(2, 4)
	w.Ceiling = 8

	ok, err := pr.CanDrawLine(w, voxel.Pos{0, 5, 0}, voxel.Pos{0, 9, 0}, voxeltest.Log)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDrawLine(t *testing.T) {
	var pr Primitives
	w := voxeltest.NewFlat(8, 4)
	w.Blocks[voxel.Pos{2, 5, 0}] = voxeltest.Stone

	require.NoError(t, pr.DrawLine(w, voxel.Pos{0, 5, 0}, voxel.Pos{4, 5, 0}, voxeltest.Log))

	assert.Equal(t, voxeltest.Log, w.Blocks[voxel.Pos{0, 5, 0}])
	assert.Equal(t, voxeltest.Log, w.Blocks[voxel.Pos{4, 5, 0}])
	assert.Equal(t, voxeltest.Stone, w.Blocks[voxel.Pos{2, 5, 0}], "solid blocks are kept")
	assert.Equal(t, 4, w.Count(voxeltest.Log))
}

func TestLeafCluster(t *testing.T) {
	var pr Primitives
	w := voxeltest.NewFlat(8, 4)
	at := voxel.Pos{0, 10, 0}

	ok, err := pr.CanStampLeafCluster(w, at, 2, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, pr.StampLeafCluster(w, at, 2, 2, voxeltest.Leaves))
	assert.Equal(t, 13+5, w.Count(voxeltest.Leaves))
	assert.Equal(t, voxeltest.Leaves, w.Blocks[voxel.Pos{2, 10, 0}])
	assert.Equal(t, voxeltest.Leaves, w.Blocks[voxel.Pos{1, 11, 0}])
	assert.NotContains(t, w.Blocks, voxel.Pos{2, 11, 0})

	// A second cluster may overlap leaves but not a log.
	ok, err = pr.CanStampLeafCluster(w, at, 2, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	w.Blocks[voxel.Pos{0, 11, 1}] = voxeltest.Log
	ok, err = pr.CanStampLeafCluster(w, at, 2, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFillDiskKeepsSolidBlocks(t *testing.T) {
	var pr Primitives
	w := voxeltest.NewFlat(8, 4)
	w.Blocks[voxel.Pos{0, 6, 0}] = voxeltest.Log
	w.Blocks[voxel.Pos{1, 6, 0}] = voxeltest.Flower

	require.NoError(t, pr.FillDisk(w, voxel.Pos{0, 6, 0}, 1, voxeltest.Leaves))

	assert.Equal(t, voxeltest.Log, w.Blocks[voxel.Pos{0, 6, 0}])
	assert.Equal(t, voxeltest.Leaves, w.Blocks[voxel.Pos{1, 6, 0}])
	assert.Equal(t, 4, w.Count(voxeltest.Leaves))
}

func TestFillDiskOutsideWorldHeight(t *testing.T) {
	var pr Primitives
	w := voxeltest.NewFlat(8, 4)

	require.NoError(t, pr.FillDisk(w, voxel.Pos{0, 300, 0}, 2, voxeltest.Leaves))
	assert.Zero(t, w.Count(voxeltest.Leaves))
}
