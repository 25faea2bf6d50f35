package pc_1_8_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/blossom-gen/pkg/gamedata"
	pc18 "github.com/OCharnyshevich/blossom-gen/pkg/gamedata/versions/pc_1_8"
)

func newGameData(t *testing.T) *gamedata.GameData {
	t.Helper()
	gd := pc18.New()
	require.NotNil(t, gd, "New() returned nil")
	return gd
}

func TestInitRegistration(t *testing.T) {
	gd, err := gamedata.Load("pc-1.8")
	require.NoError(t, err, "pc-1.8 should be registered via init()")
	require.NotNil(t, gd)
	assert.Equal(t, pc18.Version, gd.Version)
}

func TestBlocks_ByID(t *testing.T) {
	gd := newGameData(t)

	stone, ok := gd.Blocks.ByID(1)
	require.True(t, ok, "expected to find block with ID 1 (stone)")
	assert.Equal(t, "stone", stone.Name)
	assert.Equal(t, "Stone", stone.DisplayName)
	assert.False(t, stone.Replaceable)
}

func TestBlocks_ByName(t *testing.T) {
	gd := newGameData(t)

	air, ok := gd.Blocks.ByName("air")
	require.True(t, ok, "expected to find block 'air'")
	assert.Equal(t, 0, air.ID)
	assert.True(t, air.Transparent)
	assert.True(t, air.Replaceable)
}

func TestBlocks_FoliageFlags(t *testing.T) {
	gd := newGameData(t)

	tests := []struct {
		name        string
		transparent bool
		replaceable bool
	}{
		{"leaves", true, false},
		{"log", false, false},
		{"tallgrass", true, true},
		{"red_flower", true, false},
		{"water", true, true},
		{"grass", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := gd.Blocks.ByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.transparent, b.Transparent, "transparent")
			assert.Equal(t, tt.replaceable, b.Replaceable, "replaceable")
		})
	}
}

func TestBlocks_NoCustomSakuraBlocks(t *testing.T) {
	gd := newGameData(t)

	_, ok := gd.Blocks.ByName("sakura_blossom_leaves")
	assert.False(t, ok, "vanilla 1.8 has no sakura blocks")
}
