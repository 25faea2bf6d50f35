// Package pc_1_8 registers the 1.8 block table under the name "pc-1.8".
package pc_1_8

import "github.com/OCharnyshevich/blossom-gen/pkg/gamedata"

// Version is the name this data set is registered under.
const Version = "pc-1.8"

func init() {
	gamedata.Register(Version, New)
}

// New returns the 1.8 data set.
func New() *gamedata.GameData {
	return &gamedata.GameData{
		Version: Version,
		Blocks:  gamedata.NewStaticBlocks(blocks),
	}
}

var woodVariations = []gamedata.Variation{
	{Metadata: 0, DisplayName: "Oak"},
	{Metadata: 1, DisplayName: "Spruce"},
	{Metadata: 2, DisplayName: "Birch"},
	{Metadata: 3, DisplayName: "Jungle"},
}

// Only the blocks terrain and feature generation touch are listed.
var blocks = []gamedata.Block{
	{ID: 0, Name: "air", DisplayName: "Air", Material: "air", Transparent: true, Replaceable: true},
	{ID: 1, Name: "stone", DisplayName: "Stone", Material: "rock"},
	{ID: 2, Name: "grass", DisplayName: "Grass Block", Material: "grass"},
	{ID: 3, Name: "dirt", DisplayName: "Dirt", Material: "dirt", Variations: []gamedata.Variation{
		{Metadata: 0, DisplayName: "Dirt"},
		{Metadata: 1, DisplayName: "Coarse Dirt"},
		{Metadata: 2, DisplayName: "Podzol"},
	}},
	{ID: 4, Name: "cobblestone", DisplayName: "Cobblestone", Material: "rock"},
	{ID: 5, Name: "planks", DisplayName: "Wood Planks", Material: "wood", Variations: woodVariations},
	{ID: 6, Name: "sapling", DisplayName: "Sapling", Material: "plants", Transparent: true, Variations: woodVariations},
	{ID: 7, Name: "bedrock", DisplayName: "Bedrock", Material: "rock"},
	{ID: 8, Name: "flowing_water", DisplayName: "Water", Material: "water", Transparent: true, Replaceable: true},
	{ID: 9, Name: "water", DisplayName: "Stationary Water", Material: "water", Transparent: true, Replaceable: true},
	{ID: 10, Name: "flowing_lava", DisplayName: "Lava", Material: "lava", Transparent: true, Replaceable: true},
	{ID: 11, Name: "lava", DisplayName: "Stationary Lava", Material: "lava", Transparent: true, Replaceable: true},
	{ID: 12, Name: "sand", DisplayName: "Sand", Material: "sand"},
	{ID: 13, Name: "gravel", DisplayName: "Gravel", Material: "sand"},
	{ID: 17, Name: "log", DisplayName: "Wood", Material: "wood", Variations: woodVariations},
	{ID: 18, Name: "leaves", DisplayName: "Leaves", Material: "leaves", Transparent: true, Variations: woodVariations},
	{ID: 20, Name: "glass", DisplayName: "Glass", Material: "glass", Transparent: true},
	{ID: 24, Name: "sandstone", DisplayName: "Sandstone", Material: "rock"},
	{ID: 31, Name: "tallgrass", DisplayName: "Grass", Material: "vine", Transparent: true, Replaceable: true},
	{ID: 32, Name: "deadbush", DisplayName: "Dead Bush", Material: "vine", Transparent: true, Replaceable: true},
	{ID: 37, Name: "yellow_flower", DisplayName: "Dandelion", Material: "plants", Transparent: true},
	{ID: 38, Name: "red_flower", DisplayName: "Poppy", Material: "plants", Transparent: true},
	{ID: 78, Name: "snow_layer", DisplayName: "Snow", Material: "snow", Transparent: true, Replaceable: true},
	{ID: 79, Name: "ice", DisplayName: "Ice", Material: "ice", Transparent: true},
	{ID: 81, Name: "cactus", DisplayName: "Cactus", Material: "cactus", Transparent: true},
	{ID: 106, Name: "vine", DisplayName: "Vines", Material: "vine", Transparent: true, Replaceable: true},
}
