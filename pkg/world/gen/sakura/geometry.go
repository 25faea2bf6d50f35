package sakura

import (
	"math"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// Branch layout. Angles are in the generator's own unit: a draw divided
// by 90, fed straight to sin/cos. The rotation step mixes that unit with a
// 360-based step; both are kept as-is because tree shapes depend on them.
const (
	branchAngleSpread = 50
	branchAngleMin    = 35
	angleDivisor      = 90
	branchRise        = 1.3
	canopyLiftBase    = 2.3
	fullTurn          = 360
)

// Leaf clusters stamped at every branch end.
const (
	clusterRadius = 2
	clusterHeight = 2
)

// Central cone radii, bottom and top.
const (
	coneBottomRadius = 0.75
	coneTopRadius    = 2.0
)

// Layout is the branch geometry of one tree: where each branch ends and
// where the canopy is centred.
type Layout struct {
	Start voxel.Pos
	// Nodes are the branch end points, in draw order.
	Nodes []voxel.Pos
	// Sum of branch offsets (x, rise, z) used to centre the canopy.
	SumX, SumRise, SumZ float32
	// Center is the bottom centre of the canopy.
	Center voxel.Pos
	// Lift is count/SumRise + 2.3. It is derived alongside the centre but
	// no placement reads it.
	Lift float32
}

// layoutBranches draws the branch count and every branch from rng and
// derives the canopy centre. It consumes exactly the draws both passes
// expect, in the same order.
func layoutBranches(rng Source, p Params, start voxel.Pos, height int, radius float64) Layout {
	count := p.BranchCountBase + rng.IntN(p.BranchCountExtra)
	step := fullTurn / count

	l := Layout{Start: start, Nodes: make([]voxel.Pos, 0, count)}
	var curAngle float32
	for range count {
		angle := float32(rng.IntN(branchAngleSpread)+branchAngleMin) / angleDivisor
		rise := float32(float32(height+1)*float32(math.Sin(float64(angle)))) / branchRise
		reach := float32(radius * math.Cos(float64(angle)))

		curAngle += float32(rng.IntN(step)+step) / angleDivisor

		x := int(float64(reach) * math.Cos(float64(curAngle)))
		z := int(float64(reach) * math.Sin(float64(curAngle)))

		l.SumX += float32(x)
		l.SumRise += rise
		l.SumZ += float32(z)

		l.Nodes = append(l.Nodes, start.Add(x, int(rise), z))
	}

	avgX := l.SumX / float32(count)
	avgZ := l.SumZ / float32(count)
	l.Lift = float32(count)/l.SumRise + canopyLiftBase
	l.Center = voxel.Pos{X: int(avgX) + start.X, Y: start.Y, Z: int(avgZ) + start.Z}
	return l
}

// canopyLayers is the number of canopy layers for a branch height.
func canopyLayers(height int) int { return height + 2 }

// layerRadius is the canopy radius at a layer; it shrinks along a cosine.
func layerRadius(radius float64, height, layer int) float64 {
	return radius * math.Cos(float64(layer)/(float64(height)/branchRise))
}

// annulus returns the squared planar distance bounds of a canopy ring of
// the given radius. A negative minimum means the ring is a full disk.
func annulus(radius float64) (minDist, maxDist float32) {
	minDist = -1
	if radius-3 > 0 {
		minDist = float32((radius - 3) * (radius - 3))
	}
	return minDist, float32(radius * radius)
}

// inAnnulus reports whether the offset (dx, dz) lies on the ring.
func inAnnulus(dx, dz int, minDist, maxDist float32) bool {
	d := float32(dx*dx + dz*dz)
	return d <= maxDist && d >= minDist
}

// layerSpan returns the offsets scanned for a ring of the given radius:
// from int(-radius) while below radius+1.
func layerSpan(radius float64) []int {
	var out []int
	for i := int(-radius); float64(i) < radius+1; i++ {
		out = append(out, i)
	}
	return out
}

// skipChance is the inverse density of a canopy layer: a qualifying voxel
// is left empty with probability 1/skipChance. The two bottom layers are
// sparse to give the canopy a ragged underside.
func skipChance(layer int) int {
	if layer < 2 {
		return 2 + layer*5
	}
	return 1000
}

// coneRadii returns the disk radius for each level of a vertical cone of
// the given height, interpolated from r1 at the bottom to r2 at the top.
func coneRadii(height int, r1, r2 float64) []int {
	if height <= 0 {
		return nil
	}
	var ratio float64
	if height > 1 {
		ratio = (r2 - r1) / float64(height-1)
	}
	radii := make([]int, height)
	for offset := range radii {
		radii[offset] = int(ratio*float64(offset) + r1)
	}
	return radii
}
