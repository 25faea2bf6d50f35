package gamedata

import "github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"

// Block describes the properties of a block ID that world generation cares about.
type Block struct {
	ID          int
	Name        string
	DisplayName string
	Material    string
	Transparent bool
	// Replaceable blocks can be overwritten by any generated feature
	// (air, fluids, tall grass, snow layers).
	Replaceable bool
	Variations  []Variation
}

// Variation names one metadata value of a block.
type Variation struct {
	Metadata    int
	DisplayName string
}

// State returns the block state for b with the given metadata.
func (b Block) State(meta int) voxel.Material {
	return voxel.NewMaterial(b.ID, meta)
}

// BlockRegistry looks blocks up by ID or name.
type BlockRegistry interface {
	ByID(id int) (Block, bool)
	ByName(name string) (Block, bool)
	All() []Block
}

// GameData is the per-version data set used by the generator.
type GameData struct {
	Version string
	Blocks  BlockRegistry
}

// StaticBlocks is a BlockRegistry backed by an in-memory table.
type StaticBlocks struct {
	byID   map[int]Block
	byName map[string]Block
	all    []Block
}

// NewStaticBlocks indexes blocks. Later entries win on duplicate IDs or names.
func NewStaticBlocks(blocks []Block) *StaticBlocks {
	s := &StaticBlocks{
		byID:   make(map[int]Block, len(blocks)),
		byName: make(map[string]Block, len(blocks)),
		all:    make([]Block, len(blocks)),
	}
	copy(s.all, blocks)
	for _, b := range blocks {
		s.byID[b.ID] = b
		s.byName[b.Name] = b
	}
	return s
}

func (s *StaticBlocks) ByID(id int) (Block, bool) {
	b, ok := s.byID[id]
	return b, ok
}

func (s *StaticBlocks) ByName(name string) (Block, bool) {
	b, ok := s.byName[name]
	return b, ok
}

func (s *StaticBlocks) All() []Block {
	out := make([]Block, len(s.all))
	copy(out, s.all)
	return out
}
