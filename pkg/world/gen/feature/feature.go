// Package feature holds the block-level drawing primitives shared by tree
// and decoration generators: lines, leaf clusters and flat disks.
//
// Check functions never write. Place functions skip voxels that may not be
// overwritten, so they are safe to run over terrain that was not checked.
package feature

import (
	"fmt"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// Primitives is the zero-size implementation of the drawing operations.
type Primitives struct{}

// Line returns the voxels of the straight line from a to b, both included.
// Each step advances one block along the dominant axis; the other axes are
// interpolated and truncated toward zero relative to a.
func Line(a, b voxel.Pos) []voxel.Pos {
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	steps := max(abs(dx), abs(dy), abs(dz))
	if steps == 0 {
		return []voxel.Pos{a}
	}

	out := make([]voxel.Pos, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, voxel.Pos{
			X: a.X + int(float64(dx)*t),
			Y: a.Y + int(float64(dy)*t),
			Z: a.Z + int(float64(dz)*t),
		})
	}
	return out
}

// CanDrawLine reports whether every voxel between from and to can be
// replaced by m.
func (Primitives) CanDrawLine(w voxel.World, from, to voxel.Pos, m voxel.Material) (bool, error) {
	for _, p := range Line(from, to) {
		if p.Y < 0 || p.Y >= w.Height() {
			return false, nil
		}
		cur, err := w.Material(p)
		if err != nil {
			return false, fmt.Errorf("check line at %v: %w", p, err)
		}
		if cur != m && !w.IsReplaceable(cur, p) {
			return false, nil
		}
	}
	return true, nil
}

// DrawLine writes a one-voxel-wide line of m from from to to.
func (Primitives) DrawLine(w voxel.World, from, to voxel.Pos, m voxel.Material) error {
	for _, p := range Line(from, to) {
		if p.Y < 0 || p.Y >= w.Height() {
			continue
		}
		cur, err := w.Material(p)
		if err != nil {
			return fmt.Errorf("draw line at %v: %w", p, err)
		}
		if cur != m && !w.IsReplaceable(cur, p) && !w.CanBeReplacedByFoliage(cur, p) {
			continue
		}
		if err := w.SetVoxel(p, m); err != nil {
			return fmt.Errorf("draw line at %v: %w", p, err)
		}
	}
	return nil
}

// clusterLayers returns the disk radii of a leaf cluster, bottom first.
func clusterLayers(radius, height int) []int {
	layers := make([]int, 0, height)
	for dy := 0; dy < height; dy++ {
		layers = append(layers, max(radius-dy, 0))
	}
	return layers
}

// CanStampLeafCluster reports whether a cluster of the given radius and
// height rooted at p only covers voxels leaves may replace.
func (Primitives) CanStampLeafCluster(w voxel.World, p voxel.Pos, radius, height int) (bool, error) {
	for dy, r := range clusterLayers(radius, height) {
		for _, q := range Disk(p.Up(dy), r) {
			if q.Y < 0 || q.Y >= w.Height() {
				return false, nil
			}
			cur, err := w.Material(q)
			if err != nil {
				return false, fmt.Errorf("check leaf cluster at %v: %w", q, err)
			}
			if !w.CanBeReplacedByFoliage(cur, q) {
				return false, nil
			}
		}
	}
	return true, nil
}

// StampLeafCluster writes a cluster of stacked, shrinking leaf disks at p.
func (pr Primitives) StampLeafCluster(w voxel.World, p voxel.Pos, radius, height int, m voxel.Material) error {
	for dy, r := range clusterLayers(radius, height) {
		if err := pr.FillDisk(w, p.Up(dy), r, m); err != nil {
			return err
		}
	}
	return nil
}

// Disk returns the voxels of the flat disk of the given radius centred on c:
// every (dx, dz) with dx²+dz² <= radius².
func Disk(c voxel.Pos, radius int) []voxel.Pos {
	out := make([]voxel.Pos, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dz*dz <= r2 {
				out = append(out, c.Add(dx, 0, dz))
			}
		}
	}
	return out
}

// FillDisk writes m on every voxel of the disk that leaves may replace.
func (pr Primitives) FillDisk(w voxel.World, c voxel.Pos, radius int, m voxel.Material) error {
	if c.Y < 0 || c.Y >= w.Height() {
		return nil
	}
	for _, p := range Disk(c, radius) {
		if err := pr.SetLeaf(w, p, m); err != nil {
			return err
		}
	}
	return nil
}

// SetLeaf writes m at p if the current block may be replaced by leaves.
func (Primitives) SetLeaf(w voxel.World, p voxel.Pos, m voxel.Material) error {
	cur, err := w.Material(p)
	if err != nil {
		return fmt.Errorf("set leaf at %v: %w", p, err)
	}
	if cur != voxel.Air && !w.CanBeReplacedByFoliage(cur, p) {
		return nil
	}
	if err := w.SetVoxel(p, m); err != nil {
		return fmt.Errorf("set leaf at %v: %w", p, err)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
