// Package server wires terrain, tree generation and the journal together:
// it plants trees over a world, surveys seeds in parallel and replays
// journaled trees.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/blossom-gen/internal/server/config"
	"github.com/OCharnyshevich/blossom-gen/internal/server/storage"
	"github.com/OCharnyshevich/blossom-gen/internal/server/world"
	"github.com/OCharnyshevich/blossom-gen/pkg/gamedata"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen/sakura"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"

	// Register the built-in block data.
	_ "github.com/OCharnyshevich/blossom-gen/pkg/gamedata/versions/pc_1_8"
)

// Planter grows sakura trees over a generated world.
type Planter struct {
	cfg       *config.Config
	log       *slog.Logger
	data      *gamedata.GameData
	soil      *gamedata.SoilRegistry
	materials *sakura.Materials
	world     *world.World
	trees     *sakura.Generator
	scatter   *gen.TreeScatter
	journal   *storage.Journal
}

// New creates a Planter for cfg. journal may be nil, in which case nothing
// is recorded.
func New(cfg *config.Config, journal *storage.Journal, log *slog.Logger) (*Planter, error) {
	data, err := gamedata.Load(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}
	generator, err := cfg.NewGenerator()
	if err != nil {
		return nil, err
	}
	if err := cfg.Tree.Validate(); err != nil {
		return nil, fmt.Errorf("tree params: %w", err)
	}

	// Shared by every tree, surveys and replays included.
	materials := sakura.NewMaterials(data.Blocks)
	soil := gamedata.DefaultSoils(data.Blocks)
	return &Planter{
		cfg:       cfg,
		log:       log,
		data:      data,
		soil:      soil,
		materials: materials,
		world:     world.NewWorld(generator, data.Blocks),
		trees:     sakura.NewGenerator(cfg.Tree, materials, soil, log),
		scatter:   gen.NewTreeScatter(cfg.Seed, cfg.TreesPerChunk),
		journal:   journal,
	}, nil
}

// World returns the world trees are planted in.
func (p *Planter) World() *world.World { return p.world }

// Trees returns the tree generator.
func (p *Planter) Trees() *sakura.Generator { return p.trees }

// Resume loads the trees saved in store into the world, so the next Plant
// grows around them. It reports false when nothing was saved, and fails if
// the save belongs to a different seed or generator.
func (p *Planter) Resume(store *storage.Storage) (bool, error) {
	meta, err := store.LoadWorld(p.world)
	if err != nil || meta == nil {
		return false, err
	}
	if meta.Seed != p.cfg.Seed || meta.Generator != p.cfg.GeneratorType {
		p.world.LoadOverrides(make(map[voxel.Pos]voxel.Material))
		return false, fmt.Errorf("saved world is %s seed %d, config is %s seed %d",
			meta.Generator, meta.Seed, p.cfg.GeneratorType, p.cfg.Seed)
	}
	p.log.Info("resumed saved world", "overrides", len(meta.Overrides))
	return true, nil
}

// Summary totals a Plant run.
type Summary struct {
	Chunks   int
	Sites    int
	Accepted int
	Written  int
}

// Plant loads every chunk within the configured radius and decorates all
// but the outer ring, which only serves as margin for trees that overhang
// their own chunk. Each site is journaled.
func (p *Planter) Plant(ctx context.Context) (Summary, error) {
	var sum Summary
	loaded := p.world.PreGenerateRadius(p.cfg.WorldRadius)
	p.log.Info("world loaded", "chunks", loaded, "generator", p.cfg.GeneratorType, "seed", p.cfg.Seed)

	r := p.cfg.WorldRadius - 1
	for cx := -r; cx <= r; cx++ {
		for cz := -r; cz <= r; cz++ {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			placements, err := p.world.Decorate(cx, cz, p.trees, p.scatter)
			if err != nil {
				return sum, err
			}
			sum.Chunks++
			for _, pl := range placements {
				sum.Sites++
				if pl.Accepted {
					sum.Accepted++
					sum.Written += pl.Written
				}
				if err := p.record(ctx, pl); err != nil {
					return sum, err
				}
			}
			p.log.Debug("decorated chunk", "x", cx, "z", cz, "sites", len(placements))
		}
	}

	p.log.Info("planting finished",
		"chunks", sum.Chunks,
		"sites", sum.Sites,
		"accepted", sum.Accepted,
		"written", sum.Written,
	)
	return sum, nil
}

func (p *Planter) record(ctx context.Context, pl world.Placement) error {
	if p.journal == nil {
		return nil
	}
	_, err := p.journal.Record(ctx, storage.Attempt{
		Seed:     pl.Site.Seed,
		Origin:   pl.Site.Pos,
		Accepted: pl.Accepted,
		Written:  pl.Written,
		Params:   p.cfg.Tree,
	})
	return err
}

// SurveyResult is the outcome of one seed tried on fresh terrain.
type SurveyResult struct {
	Seed     int64
	Origin   voxel.Pos
	Shape    sakura.Shape
	Branches int
	Accepted bool
	Written  int
}

// Survey grows one tree per seed, each on its own fresh copy of the
// terrain around the origin, using up to workers goroutines. Results are
// returned in seed order.
func (p *Planter) Survey(ctx context.Context, seeds []int64, workers int) ([]SurveyResult, error) {
	results := make([]SurveyResult, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.survey(seed)
			if err != nil {
				return fmt.Errorf("survey seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Planter) survey(seed int64) (SurveyResult, error) {
	generator, err := p.cfg.NewGenerator()
	if err != nil {
		return SurveyResult{}, err
	}
	w := world.NewWorld(generator, p.data.Blocks)
	origin := voxel.Pos{X: 8, Z: 8}
	origin.Y = w.SurfaceHeight(origin.X, origin.Z) + 1
	loadAround(w, origin)

	trees := sakura.NewGenerator(p.cfg.Tree, p.materials, p.soil, p.log)
	plan := trees.Plan(seed, origin)

	rec := voxel.NewRecorder(w)
	ok, err := trees.GenerateSeed(rec, seed, origin)
	if err != nil {
		return SurveyResult{}, err
	}
	return SurveyResult{
		Seed:     seed,
		Origin:   origin,
		Shape:    plan.Shape,
		Branches: len(plan.Layout.Nodes),
		Accepted: ok,
		Written:  len(rec.Writes()),
	}, nil
}

// ReplayResult compares a journaled tree with its rebuild.
type ReplayResult struct {
	Attempt  storage.Attempt
	Accepted bool
	Written  int
	// Match is true when the rebuild agrees with the journal. Trees that
	// grew into neighbours in the original run may legitimately differ.
	Match bool
}

// Replay rebuilds journaled attempt id on fresh terrain with the params it
// was recorded with.
func (p *Planter) Replay(ctx context.Context, id int64) (ReplayResult, error) {
	if p.journal == nil {
		return ReplayResult{}, fmt.Errorf("replay attempt %d: no journal", id)
	}
	a, err := p.journal.Attempt(ctx, id)
	if err != nil {
		return ReplayResult{}, err
	}

	generator, err := p.cfg.NewGenerator()
	if err != nil {
		return ReplayResult{}, err
	}
	w := world.NewWorld(generator, p.data.Blocks)
	loadAround(w, a.Origin)

	trees := sakura.NewGenerator(a.Params, p.materials, p.soil, p.log)
	rec := voxel.NewRecorder(w)
	ok, err := trees.GenerateSeed(rec, a.Seed, a.Origin)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay attempt %d: %w", id, err)
	}

	res := ReplayResult{Attempt: a, Accepted: ok, Written: len(rec.Writes())}
	res.Match = res.Accepted == a.Accepted && res.Written == a.Written
	p.log.Info("replayed attempt", "id", id, "seed", a.Seed, "match", res.Match)
	return res, nil
}

// loadAround loads the chunks within one chunk of pos, enough for any
// tree rooted at pos.
func loadAround(w *world.World, pos voxel.Pos) {
	c := gen.ChunkPosOf(pos.X, pos.Z)
	for cx := c.X - 1; cx <= c.X+1; cx++ {
		for cz := c.Z - 1; cz <= c.Z+1; cz++ {
			w.LoadChunk(cx, cz)
		}
	}
}
