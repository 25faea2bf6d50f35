package sakura

import (
	"errors"
	"fmt"
)

// Params controls the size of generated trees.
type Params struct {
	// BaseHeight is the minimum total height of a tree.
	BaseHeight int `json:"base_height" yaml:"base_height" env:"BASE_HEIGHT"`
	// HeightVariance is the exclusive bound of the random extra height.
	HeightVariance int `json:"height_variance" yaml:"height_variance" env:"HEIGHT_VARIANCE"`
	// CanopyWidth is the minimum canopy diameter in blocks.
	CanopyWidth int `json:"canopy_width" yaml:"canopy_width" env:"CANOPY_WIDTH"`
	// CanopyWidthVariance is the exclusive bound of the random extra diameter.
	CanopyWidthVariance int `json:"canopy_width_variance" yaml:"canopy_width_variance" env:"CANOPY_WIDTH_VARIANCE"`
	// TrunkHeightFraction is the share of the total height taken by the main trunk.
	TrunkHeightFraction float64 `json:"trunk_height_fraction" yaml:"trunk_height_fraction" env:"TRUNK_HEIGHT_FRACTION"`
	// BranchCountBase is the minimum number of branches.
	BranchCountBase int `json:"branch_count_base" yaml:"branch_count_base" env:"BRANCH_COUNT_BASE"`
	// BranchCountExtra is the exclusive bound of the random extra branches.
	BranchCountExtra int `json:"branch_count_extra" yaml:"branch_count_extra" env:"BRANCH_COUNT_EXTRA"`
}

// DefaultParams returns the stock sakura blossom tree proportions.
func DefaultParams() Params {
	return Params{
		BaseHeight:          8,
		HeightVariance:      4,
		CanopyWidth:         8,
		CanopyWidthVariance: 4,
		TrunkHeightFraction: 0.30,
		BranchCountBase:     2,
		BranchCountExtra:    4,
	}
}

// maxBranches keeps the per-branch rotation step 360/count above zero.
const maxBranches = 360

// Validate reports parameter sets that would make generation divide by
// zero or draw from an empty range.
func (p Params) Validate() error {
	var errs []error
	if p.BaseHeight < 1 {
		errs = append(errs, fmt.Errorf("base_height must be at least 1, got %d", p.BaseHeight))
	}
	if p.HeightVariance < 1 {
		errs = append(errs, fmt.Errorf("height_variance must be at least 1, got %d", p.HeightVariance))
	}
	if p.CanopyWidth < 0 {
		errs = append(errs, fmt.Errorf("canopy_width must not be negative, got %d", p.CanopyWidth))
	}
	if p.CanopyWidthVariance < 1 {
		errs = append(errs, fmt.Errorf("canopy_width_variance must be at least 1, got %d", p.CanopyWidthVariance))
	}
	if p.TrunkHeightFraction < 0 || p.TrunkHeightFraction >= 1 {
		errs = append(errs, fmt.Errorf("trunk_height_fraction must be in [0, 1), got %g", p.TrunkHeightFraction))
	}
	if p.BranchCountBase < 1 {
		errs = append(errs, fmt.Errorf("branch_count_base must be at least 1, got %d", p.BranchCountBase))
	}
	if p.BranchCountExtra < 1 {
		errs = append(errs, fmt.Errorf("branch_count_extra must be at least 1, got %d", p.BranchCountExtra))
	}
	if p.BranchCountBase+p.BranchCountExtra-1 > maxBranches {
		errs = append(errs, fmt.Errorf("at most %d branches are supported", maxBranches))
	}
	return errors.Join(errs...)
}

// Shape is the size of one tree instance.
type Shape struct {
	Height       int
	Radius       float64
	TrunkHeight  int
	BranchHeight int
}

// Shape draws the size of one tree from rng. The draw order is fixed: both
// generation passes depend on it to stay in step.
func (p Params) Shape(rng Source) Shape {
	height := rng.IntN(p.HeightVariance) + p.BaseHeight
	radius := float64(p.CanopyWidth+rng.IntN(p.CanopyWidthVariance)) / 2.0
	trunk := int(float64(height) * p.TrunkHeightFraction)
	return Shape{
		Height:       height,
		Radius:       radius,
		TrunkHeight:  trunk,
		BranchHeight: height - trunk - 2,
	}
}
