package sakura

import (
	"sync"

	"github.com/OCharnyshevich/blossom-gen/pkg/gamedata"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// Role is the logical part of the tree a block is used for.
type Role int

const (
	RoleTrunk Role = iota
	RoleLeaves
)

func (r Role) String() string {
	switch r {
	case RoleTrunk:
		return "trunk"
	case RoleLeaves:
		return "leaves"
	default:
		return "unknown"
	}
}

// Block names looked up for the dedicated sakura blocks. When a data set
// does not carry them, spruce-metadata log and leaves are used instead.
const (
	customLogName    = "sakura_blossom_log"
	customLeavesName = "sakura_blossom_leaves"
)

var (
	fallbackTrunk  = voxel.NewMaterial(17, 1)
	fallbackLeaves = voxel.NewMaterial(18, 1)
)

// Materials resolves roles to block states. The registry is consulted once,
// on first use; later calls return the cached states.
type Materials struct {
	blocks gamedata.BlockRegistry

	once   sync.Once
	trunk  voxel.Material
	leaves voxel.Material
}

// NewMaterials creates a resolver over blocks. blocks may be nil.
func NewMaterials(blocks gamedata.BlockRegistry) *Materials {
	return &Materials{blocks: blocks}
}

// Resolve returns the block state used for role r.
func (m *Materials) Resolve(r Role) voxel.Material {
	m.once.Do(m.load)
	if r == RoleLeaves {
		return m.leaves
	}
	return m.trunk
}

func (m *Materials) load() {
	m.trunk, m.leaves = fallbackTrunk, fallbackLeaves
	if m.blocks == nil {
		return
	}
	if b, ok := m.blocks.ByName(customLogName); ok {
		m.trunk = b.State(0)
	}
	if b, ok := m.blocks.ByName(customLeavesName); ok {
		m.leaves = b.State(0)
	}
}
