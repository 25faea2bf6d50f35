package sakura

import (
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// mode is what a pass does with the geometry: checker only reads the world,
// committer writes it. The geometry itself comes from layoutBranches and
// the canopy helpers and is identical for both.
type mode interface {
	branch(from, to voxel.Pos) (bool, error)
	cluster(at voxel.Pos) (bool, error)
	canopyLayer(center voxel.Pos, radius float64, layer int) (bool, error)
	cone(start voxel.Pos, radii []int) error
}

// walk lays out branches from start and runs them, their leaf clusters, the
// canopy and the central cone through m. It stops at the first step m
// reports as infeasible.
func walk(m mode, rng Source, p Params, start voxel.Pos, height int, radius float64) (bool, error) {
	l := layoutBranches(rng, p, start, height, radius)

	for _, node := range l.Nodes {
		if ok, err := m.branch(start, node); err != nil || !ok {
			return false, err
		}
	}

	for _, node := range l.Nodes {
		if ok, err := m.cluster(node); err != nil || !ok {
			return false, err
		}
	}

	for layer := range canopyLayers(height) {
		r := layerRadius(radius, height, layer)
		if ok, err := m.canopyLayer(l.Center.Up(layer), r, layer); err != nil || !ok {
			return false, err
		}
	}

	if err := m.cone(start, coneRadii(height-1, coneBottomRadius, coneTopRadius)); err != nil {
		return false, err
	}
	return true, nil
}

// checker is the read-only pass.
type checker struct {
	w     voxel.World
	prims Primitives
	trunk voxel.Material
}

func (c *checker) branch(from, to voxel.Pos) (bool, error) {
	return c.prims.CanDrawLine(c.w, from, to, c.trunk)
}

func (c *checker) cluster(at voxel.Pos) (bool, error) {
	return c.prims.CanStampLeafCluster(c.w, at, clusterRadius, clusterHeight)
}

func (c *checker) canopyLayer(center voxel.Pos, radius float64, _ int) (bool, error) {
	minDist, maxDist := annulus(radius)
	span := layerSpan(radius)
	for _, dz := range span {
		for _, dx := range span {
			p := center.Add(dx, 0, dz)
			m, err := c.w.Material(p)
			if err != nil {
				return false, err
			}
			if inAnnulus(dx, dz, minDist, maxDist) && m != voxel.Air && !c.w.IsReplaceable(m, p) {
				return false, nil
			}
		}
	}
	return true, nil
}

// The cone has no feasibility check; it only fills foliage-replaceable
// voxels next to the branch base.
func (c *checker) cone(voxel.Pos, []int) error { return nil }

// committer is the writing pass. It draws skip chances from rng, after the
// layout has consumed its share.
type committer struct {
	w      voxel.World
	prims  Primitives
	rng    Source
	trunk  voxel.Material
	leaves voxel.Material
}

func (c *committer) branch(from, to voxel.Pos) (bool, error) {
	return true, c.prims.DrawLine(c.w, from, to, c.trunk)
}

func (c *committer) cluster(at voxel.Pos) (bool, error) {
	return true, c.prims.StampLeafCluster(c.w, at, clusterRadius, clusterHeight, c.leaves)
}

func (c *committer) canopyLayer(center voxel.Pos, radius float64, layer int) (bool, error) {
	minDist, maxDist := annulus(radius)
	skip := skipChance(layer)
	span := layerSpan(radius)
	for _, dz := range span {
		for _, dx := range span {
			p := center.Add(dx, 0, dz)
			m, err := c.w.Material(p)
			if err != nil {
				return false, err
			}
			if !inAnnulus(dx, dz, minDist, maxDist) {
				continue
			}
			if m != voxel.Air && !c.w.CanBeReplacedByFoliage(m, p) {
				continue
			}
			if c.rng.IntN(skip) != 0 {
				if err := c.w.SetVoxel(p, c.leaves); err != nil {
					return false, err
				}
			}
		}
	}
	return true, nil
}

func (c *committer) cone(start voxel.Pos, radii []int) error {
	for offset, r := range radii {
		if err := c.prims.FillDisk(c.w, start.Up(offset), r, c.leaves); err != nil {
			return err
		}
	}
	return nil
}
