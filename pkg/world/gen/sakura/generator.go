// Package sakura generates sakura blossom trees: a short trunk, radiating
// branches ending in leaf clusters, a layered canopy and a leaf cone around
// the branch base.
//
// Generation runs in two passes over the same geometry. The check pass only
// reads the world and answers whether a tree fits; the commit pass writes
// it. Both passes build their random stream from the same seed, so they see
// the same tree.
package sakura

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen/feature"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// SoilValidator decides which blocks a tree may root in.
type SoilValidator interface {
	IsValidSoil(m voxel.Material) bool
}

// Primitives are the block drawing operations used by both passes.
type Primitives interface {
	CanDrawLine(w voxel.World, from, to voxel.Pos, m voxel.Material) (bool, error)
	DrawLine(w voxel.World, from, to voxel.Pos, m voxel.Material) error
	CanStampLeafCluster(w voxel.World, at voxel.Pos, radius, height int) (bool, error)
	StampLeafCluster(w voxel.World, at voxel.Pos, radius, height int, m voxel.Material) error
	FillDisk(w voxel.World, center voxel.Pos, radius int, m voxel.Material) error
}

// Region margins around the origin that must be loaded. The check pass
// asks for a wider buffer so that the commit pass, which follows the same
// geometry, stays inside loaded terrain.
const (
	checkMargin  = 5
	commitMargin = 1
	// headroom is the space kept free above the tree top.
	headroom = 4
)

// initialSeed is what LastSeed reports before any attempt.
const initialSeed = 1234

// Generator places sakura blossom trees. It is safe for concurrent use;
// each attempt owns its random stream.
type Generator struct {
	params    Params
	materials *Materials
	soil      SoilValidator
	prims     Primitives
	log       *slog.Logger

	mu       sync.Mutex
	lastSeed int64
}

// NewGenerator creates a Generator. params must pass Validate.
func NewGenerator(params Params, materials *Materials, soil SoilValidator, log *slog.Logger) *Generator {
	return &Generator{
		params:    params,
		materials: materials,
		soil:      soil,
		prims:     feature.Primitives{},
		log:       log,
		lastSeed:  initialSeed,
	}
}

// Params returns the generator's tree proportions.
func (g *Generator) Params() Params { return g.params }

// LastSeed returns the seed of the most recent attempt, successful or not.
func (g *Generator) LastSeed() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastSeed
}

func (g *Generator) recordSeed(seed int64) {
	g.mu.Lock()
	g.lastSeed = seed
	g.mu.Unlock()
}

// TryPlace draws a seed from src and checks whether a tree fits at pos.
func (g *Generator) TryPlace(w voxel.World, src Source, pos voxel.Pos) (bool, error) {
	return g.TryPlaceSeed(w, src.Int64(), pos)
}

// TryPlaceSeed checks whether the tree for seed fits at pos. It never
// writes to w.
func (g *Generator) TryPlaceSeed(w voxel.World, seed int64, pos voxel.Pos) (bool, error) {
	g.recordSeed(seed)
	ok, err := g.check(w, NewStream(seed), pos)
	return g.outcome("check", seed, pos, ok, err)
}

// Place draws a seed from src and writes the tree at pos.
func (g *Generator) Place(w voxel.World, src Source, pos voxel.Pos) (bool, error) {
	return g.PlaceSeed(w, src.Int64(), pos)
}

// PlaceSeed writes the tree for seed at pos. Callers are expected to have
// checked the same seed and position with TryPlaceSeed first; PlaceSeed
// only repeats the cheap preconditions.
func (g *Generator) PlaceSeed(w voxel.World, seed int64, pos voxel.Pos) (bool, error) {
	g.recordSeed(seed)
	ok, err := g.place(w, NewStream(seed), pos)
	return g.outcome("place", seed, pos, ok, err)
}

// Generate draws a seed from src, then checks and places the tree.
func (g *Generator) Generate(w voxel.World, src Source, pos voxel.Pos) (bool, error) {
	return g.GenerateSeed(w, src.Int64(), pos)
}

// GenerateSeed checks the tree for seed at pos and, if it fits, places it
// using a fresh stream from the same seed.
func (g *Generator) GenerateSeed(w voxel.World, seed int64, pos voxel.Pos) (bool, error) {
	ok, err := g.TryPlaceSeed(w, seed, pos)
	if err != nil || !ok {
		return false, err
	}
	return g.PlaceSeed(w, seed, pos)
}

// outcome turns reads of ungenerated terrain into a logged rejection.
func (g *Generator) outcome(pass string, seed int64, pos voxel.Pos, ok bool, err error) (bool, error) {
	if err == nil {
		return ok, nil
	}
	if errors.Is(err, voxel.ErrNotGenerated) {
		g.log.Info("sakura tree tried to generate in an ungenerated chunk",
			"pass", pass, "seed", seed, "pos", pos, "error", err)
		return false, nil
	}
	return false, fmt.Errorf("%s sakura tree at %v: %w", pass, pos, err)
}

// prepare derives the shape and runs the checks shared by both passes:
// headroom, soil and loaded region.
func (g *Generator) prepare(w voxel.World, rng Source, pos voxel.Pos, margin int) (Shape, bool, error) {
	s := g.params.Shape(rng)

	if pos.Y < 1 || pos.Y+s.Height+headroom >= w.Height() {
		return s, false, nil
	}

	soil, err := w.Material(pos.Down())
	if err != nil {
		return s, false, err
	}
	if !g.soil.IsValidSoil(soil) {
		return s, false, nil
	}

	r := int(math.Ceil(s.Radius)) + margin
	if !w.RegionLoaded(pos.Add(-r, -r, -r), pos.Add(r, r, r)) {
		return s, false, nil
	}
	return s, true, nil
}

func (g *Generator) check(w voxel.World, rng Source, pos voxel.Pos) (bool, error) {
	s, ok, err := g.prepare(w, rng, pos, checkMargin)
	if err != nil || !ok {
		return false, err
	}

	trunk := g.materials.Resolve(RoleTrunk)
	top := pos.Up(s.TrunkHeight)
	if ok, err := g.prims.CanDrawLine(w, pos, top, trunk); err != nil || !ok {
		return false, err
	}

	c := &checker{w: w, prims: g.prims, trunk: trunk}
	return walk(c, rng, g.params, top, s.BranchHeight, s.Radius)
}

func (g *Generator) place(w voxel.World, rng Source, pos voxel.Pos) (bool, error) {
	s, ok, err := g.prepare(w, rng, pos, commitMargin)
	if err != nil || !ok {
		return false, err
	}

	trunk := g.materials.Resolve(RoleTrunk)
	top := pos.Up(s.TrunkHeight)
	if ok, err := g.prims.CanDrawLine(w, pos, top, trunk); err != nil || !ok {
		return false, err
	}
	if err := g.prims.DrawLine(w, pos, top, trunk); err != nil {
		return false, err
	}

	c := &committer{
		w:      w,
		prims:  g.prims,
		rng:    rng,
		trunk:  trunk,
		leaves: g.materials.Resolve(RoleLeaves),
	}
	return walk(c, rng, g.params, top, s.BranchHeight, s.Radius)
}

// Plan is the geometry of the tree a seed produces, independent of any world.
type Plan struct {
	Shape  Shape
	Trunk  [2]voxel.Pos
	Layout Layout
}

// Plan derives the tree for seed at pos without touching a world or the
// last-seed record.
func (g *Generator) Plan(seed int64, pos voxel.Pos) Plan {
	rng := NewStream(seed)
	s := g.params.Shape(rng)
	top := pos.Up(s.TrunkHeight)
	return Plan{
		Shape:  s,
		Trunk:  [2]voxel.Pos{pos, top},
		Layout: layoutBranches(rng, g.params, top, s.BranchHeight, s.Radius),
	}
}
