package world

import (
	"fmt"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen/sakura"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// Placement is the outcome of one tree site.
type Placement struct {
	Site     gen.TreeSite
	Accepted bool
	// Written is the number of voxels the tree wrote.
	Written int
}

// Decorate grows sakura trees on the sites scatter picks for chunk (cx, cz).
// The chunk must already be loaded. Trees reach into neighbouring chunks, so
// sites near unloaded neighbours are rejected rather than clipped.
func (w *World) Decorate(cx, cz int, trees *sakura.Generator, scatter *gen.TreeScatter) ([]Placement, error) {
	if !w.IsChunkLoaded(cx, cz) {
		return nil, fmt.Errorf("decorate chunk (%d, %d): %w", cx, cz, voxel.ErrNotGenerated)
	}
	c := w.LoadChunk(cx, cz)

	sites := scatter.Sites(c, cx, cz, w.SurfaceHeight)
	out := make([]Placement, 0, len(sites))
	for _, site := range sites {
		rec := voxel.NewRecorder(w)
		ok, err := trees.GenerateSeed(rec, site.Seed, site.Pos)
		if err != nil {
			return out, fmt.Errorf("decorate chunk (%d, %d): %w", cx, cz, err)
		}
		out = append(out, Placement{Site: site, Accepted: ok, Written: len(rec.Writes())})
	}
	return out, nil
}
