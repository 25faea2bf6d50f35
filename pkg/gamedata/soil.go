package gamedata

import (
	"sync"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// SoilRegistry tracks which blocks trees may root in. Soil is matched by
// block ID, metadata is ignored.
type SoilRegistry struct {
	mu  sync.RWMutex
	ids map[int]struct{}
}

// NewSoilRegistry returns a registry containing the given block IDs.
func NewSoilRegistry(ids ...int) *SoilRegistry {
	r := &SoilRegistry{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
	return r
}

// DefaultSoils resolves grass and dirt from blocks.
func DefaultSoils(blocks BlockRegistry) *SoilRegistry {
	r := NewSoilRegistry()
	for _, name := range []string{"grass", "dirt"} {
		if b, ok := blocks.ByName(name); ok {
			r.Add(b.ID)
		}
	}
	return r
}

// Add registers another soil block ID.
func (r *SoilRegistry) Add(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[id] = struct{}{}
}

// IsValidSoil reports whether a tree may grow on top of m.
func (r *SoilRegistry) IsValidSoil(m voxel.Material) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[m.ID()]
	return ok
}
