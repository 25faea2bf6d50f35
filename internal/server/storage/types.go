package storage

import (
	"cmp"
	"slices"
)

// WorldData holds world-level metadata and the placed blocks for persistence.
type WorldData struct {
	Seed      int64           `json:"seed"`
	Generator string          `json:"generator"`
	Overrides []BlockOverride `json:"overrides"`
}

// BlockOverride is a single block override for JSON serialization.
type BlockOverride struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	State uint16 `json:"state"`
}

// sortOverrides orders overrides by position so saved files are stable.
func sortOverrides(o []BlockOverride) {
	slices.SortFunc(o, func(a, b BlockOverride) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.Z, b.Z), cmp.Compare(a.X, b.X))
	})
}
