package sakura

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// scripted replays fixed bounded draws, then returns zero.
type scripted struct {
	t    *testing.T
	vals []int
	next int
}

func (s *scripted) IntN(n int) int {
	s.t.Helper()
	require.Positive(s.t, n, "IntN bound")
	if s.next >= len(s.vals) {
		s.next++
		return 0
	}
	v := s.vals[s.next]
	s.next++
	require.Less(s.t, v, n, "scripted draw %d out of range", s.next-1)
	return v
}

func (s *scripted) Int64() int64     { return 0 }
func (s *scripted) Float64() float64 { return 0 }

func TestShapeDrawOrder(t *testing.T) {
	tests := []struct {
		name  string
		draws []int
		want  Shape
	}{
		{"smallest", []int{0, 0}, Shape{Height: 8, Radius: 4, TrunkHeight: 2, BranchHeight: 4}},
		{"largest", []int{3, 3}, Shape{Height: 11, Radius: 5.5, TrunkHeight: 3, BranchHeight: 6}},
		{"height then width", []int{1, 2}, Shape{Height: 9, Radius: 5, TrunkHeight: 2, BranchHeight: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scripted{t: t, vals: tt.draws}
			assert.Equal(t, tt.want, DefaultParams().Shape(rng))
			assert.Equal(t, 2, rng.next, "shape consumes exactly two draws")
		})
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.BranchCountBase = 0
	p.HeightVariance = 0
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "branch_count_base")
	assert.Contains(t, err.Error(), "height_variance")

	p = DefaultParams()
	p.TrunkHeightFraction = 1
	assert.Error(t, p.Validate())

	p = DefaultParams()
	p.BranchCountExtra = 400
	assert.Error(t, p.Validate())
}

func TestBranchCountEveryDraw(t *testing.T) {
	p := DefaultParams()
	start := voxel.Pos{X: 0, Y: 10, Z: 0}

	for d := 0; d < p.BranchCountExtra; d++ {
		for _, height := range []int{0, 4, 6} {
			rng := &scripted{t: t, vals: []int{d}}
			l := layoutBranches(rng, p, start, height, 5)

			count := len(l.Nodes)
			assert.Equal(t, p.BranchCountBase+d, count)
			assert.GreaterOrEqual(t, count, p.BranchCountBase)
			assert.LessOrEqual(t, count, p.BranchCountBase+p.BranchCountExtra-1)
			assert.Positive(t, fullTurn/count, "rotation step must stay positive")
			assert.False(t, math.IsInf(float64(l.Lift), 0) || math.IsNaN(float64(l.Lift)), "lift %v", l.Lift)
		}
	}
}

func TestLayoutBranchGeometry(t *testing.T) {
	// One branch (base 1, extra draw 0), angle draw 0 -> 35/90, rotation
	// draw 0 -> step 360 -> 360/90 = 4 units.
	p := DefaultParams()
	p.BranchCountBase = 1
	p.BranchCountExtra = 1
	start := voxel.Pos{X: 100, Y: 70, Z: -20}

	rng := &scripted{t: t, vals: []int{0, 0, 0}}
	l := layoutBranches(rng, p, start, 4, 5)
	require.Len(t, l.Nodes, 1)

	angle := float32(35) / 90
	rise := float32(float32(5)*float32(math.Sin(float64(angle)))) / 1.3
	reach := float32(5 * math.Cos(float64(angle)))
	curAngle := float32(360) / 90
	wantX := int(float64(reach) * math.Cos(float64(curAngle)))
	wantZ := int(float64(reach) * math.Sin(float64(curAngle)))

	assert.Equal(t, start.Add(wantX, int(rise), wantZ), l.Nodes[0])
	assert.Equal(t, voxel.Pos{X: start.X + wantX, Y: start.Y, Z: start.Z + wantZ}, l.Center)
	assert.InDelta(t, float64(1/rise+2.3), float64(l.Lift), 1e-6)
}

func TestPlanIsDeterministic(t *testing.T) {
	g := newTestGenerator(t)
	pos := voxel.Pos{X: 0, Y: 5, Z: 0}

	for seed := int64(0); seed < 20; seed++ {
		a := g.Plan(seed, pos)
		b := g.Plan(seed, pos)
		assert.Equal(t, a, b, "seed %d", seed)
	}
}

func TestAnnulus(t *testing.T) {
	minDist, maxDist := annulus(6)
	assert.Equal(t, float32(9), minDist)
	assert.Equal(t, float32(36), maxDist)

	assert.True(t, inAnnulus(3, 1, minDist, maxDist), "distance 10 qualifies")
	assert.False(t, inAnnulus(2, 1, minDist, maxDist), "distance 5 is inside the hole")
	assert.False(t, inAnnulus(6, 2, minDist, maxDist), "distance 40 is outside the ring")
	assert.True(t, inAnnulus(0, 6, minDist, maxDist), "the rim qualifies")
	assert.True(t, inAnnulus(3, 0, minDist, maxDist), "the inner edge qualifies")
}

func TestAnnulusSmallRadiusIsFullDisk(t *testing.T) {
	minDist, maxDist := annulus(2.5)
	assert.Equal(t, float32(-1), minDist)
	assert.True(t, inAnnulus(0, 0, minDist, maxDist))

	minDist, _ = annulus(3)
	assert.Equal(t, float32(-1), minDist, "radius-3 == 0 is not positive")
}

func TestLayerRadiusShrinks(t *testing.T) {
	assert.Equal(t, 5.0, layerRadius(5, 4, 0))
	prev := layerRadius(5, 4, 0)
	for layer := 1; layer < canopyLayers(4); layer++ {
		r := layerRadius(5, 4, layer)
		assert.Less(t, r, prev)
		prev = r
	}
	assert.InDelta(t, 5*math.Cos(1/(4/1.3)), layerRadius(5, 4, 1), 1e-12)
}

func TestLayerSpan(t *testing.T) {
	assert.Equal(t, []int{-4, -3, -2, -1, 0, 1, 2, 3, 4}, layerSpan(4))
	assert.Equal(t, []int{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6}, layerSpan(5.5))
	assert.Equal(t, []int{0}, layerSpan(0))
}

func TestSkipChance(t *testing.T) {
	assert.Equal(t, 2, skipChance(0))
	assert.Equal(t, 7, skipChance(1))
	for layer := 2; layer < 10; layer++ {
		assert.Equal(t, 1000, skipChance(layer))
	}
}

func TestConeRadii(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, coneRadii(3, 0.75, 2))
	assert.Equal(t, []int{0, 1, 1, 1, 2}, coneRadii(5, 0.75, 2))
	assert.Equal(t, []int{0}, coneRadii(1, 0.75, 2))
	assert.Nil(t, coneRadii(0, 0.75, 2))
}
