// Command treegen grows sakura trees over generated terrain.
//
// Usage:
//
//	treegen [flags] plant          decorate the world, on top of any saved trees, and journal every site
//	treegen [flags] survey         try -count seeds from -first on fresh terrain
//	treegen [flags] replay -id N   rebuild journaled attempt N
//	treegen [flags] list           print the newest -count journal entries
//	treegen [flags] stats          print journal totals
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/OCharnyshevich/blossom-gen/internal/server"
	"github.com/OCharnyshevich/blossom-gen/internal/server/config"
	"github.com/OCharnyshevich/blossom-gen/internal/server/storage"
)

func main() {
	cfg := config.DefaultConfig()

	dataDir := flag.String("data", "data", "directory for config, world and journal")
	saveConfig := flag.Bool("save-config", false, "write the effective config back to the data directory")
	first := flag.Int64("first", 1, "survey: first seed")
	count := flag.Int("count", 16, "survey: number of seeds; list: number of entries")
	accepted := flag.Bool("accepted", false, "list: only accepted trees")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "survey: parallel workers")
	id := flag.Int64("id", 0, "replay: journal attempt id")

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "terrain generator: flat, meadow or hills")
	flag.StringVar(&cfg.Biome, "biome", cfg.Biome, "biome of flat and meadow worlds")
	flag.IntVar(&cfg.WorldRadius, "world-radius", cfg.WorldRadius, "loaded area in chunks around the origin")
	flag.IntVar(&cfg.TreesPerChunk, "trees-per-chunk", cfg.TreesPerChunk, "tree sites per chunk, 0 for biome density")
	flag.StringVar(&cfg.Version, "version", cfg.Version, "block data version")
	flag.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "journal database, relative to -data")
	flag.StringVar(&cfg.PresetSource, "preset", cfg.PresetSource, "tree preset: local path or go-getter URL")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	command := "plant"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	bootLog := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := storage.New(*dataDir, bootLog)
	if err != nil {
		bootLog.Error("create storage", "error", err)
		os.Exit(1)
	}

	// default < file < env < flag
	fromFile := config.DefaultConfig()
	if err := store.LoadConfig(fromFile); err != nil {
		bootLog.Error("load config", "error", err)
		os.Exit(1)
	}
	if err := config.LoadEnv(fromFile); err != nil {
		bootLog.Error("load env", "error", err)
		os.Exit(1)
	}
	config.Merge(cfg, fromFile, explicit)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.PresetSource != "" {
		preset, err := config.FetchPreset(ctx, cfg.PresetSource, store.Dir())
		if err != nil {
			bootLog.Error("load preset", "error", err)
			os.Exit(1)
		}
		cfg.Tree = preset.Tree
		bootLog.Info("preset loaded", "name", preset.Name, "source", cfg.PresetSource)
	}

	if err := cfg.Validate(); err != nil {
		bootLog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if *saveConfig {
		if err := store.SaveConfig(cfg); err != nil {
			log.Error("save config", "error", err)
			os.Exit(1)
		}
	}

	var journal *storage.Journal
	if command != "survey" {
		journal, err = storage.OpenJournal(store.Path(cfg.JournalPath))
		if err != nil {
			log.Error("open journal", "error", err)
			os.Exit(1)
		}
		defer journal.Close()
	}

	planter, err := server.New(cfg, journal, log)
	if err != nil {
		log.Error("create planter", "error", err)
		os.Exit(1)
	}

	switch command {
	case "plant":
		err = plant(ctx, planter, store, cfg, log)
	case "survey":
		err = survey(ctx, planter, *first, *count, *workers)
	case "replay":
		err = replay(ctx, planter, *id)
	case "list":
		err = list(ctx, journal, *count, *accepted)
	case "stats":
		err = stats(ctx, journal)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(command+" failed", "error", err)
		journal.Close()
		os.Exit(1)
	}
}

func plant(ctx context.Context, p *server.Planter, store *storage.Storage, cfg *config.Config, log *slog.Logger) error {
	if _, err := p.Resume(store); err != nil {
		return err
	}
	if _, err := p.Plant(ctx); err != nil {
		return err
	}
	meta := storage.WorldData{Seed: cfg.Seed, Generator: cfg.GeneratorType}
	if err := store.SaveWorld(p.World(), meta); err != nil {
		return err
	}
	log.Info("world saved", "dir", store.Dir())
	return nil
}

func survey(ctx context.Context, p *server.Planter, first int64, count, workers int) error {
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	results, err := p.Survey(ctx, seeds, workers)
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-8s %-7s %-8s %-9s %s\n", "SEED", "HEIGHT", "RADIUS", "BRANCH", "ACCEPTED", "WRITTEN")
	for _, r := range results {
		fmt.Printf("%-12d %-8d %-7.1f %-8d %-9t %d\n",
			r.Seed, r.Shape.Height, r.Shape.Radius, r.Branches, r.Accepted, r.Written)
	}
	return nil
}

func replay(ctx context.Context, p *server.Planter, id int64) error {
	if id <= 0 {
		return errors.New("replay needs -id")
	}
	res, err := p.Replay(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("attempt %d seed %d at %v: journal accepted=%t written=%d, replay accepted=%t written=%d, match=%t\n",
		id, res.Attempt.Seed, res.Attempt.Origin,
		res.Attempt.Accepted, res.Attempt.Written,
		res.Accepted, res.Written, res.Match)
	return nil
}

func list(ctx context.Context, j *storage.Journal, limit int, onlyAccepted bool) error {
	entries, err := j.Attempts(ctx, limit, onlyAccepted)
	if err != nil {
		return err
	}

	fmt.Printf("%-6s %-20s %-18s %-9s %-8s %s\n", "ID", "SEED", "ORIGIN", "ACCEPTED", "WRITTEN", "CREATED")
	for _, a := range entries {
		origin := fmt.Sprintf("%d,%d,%d", a.Origin.X, a.Origin.Y, a.Origin.Z)
		fmt.Printf("%-6d %-20d %-18s %-9t %-8d %s\n",
			a.ID, a.Seed, origin, a.Accepted, a.Written, a.CreatedAt.Format(time.DateTime))
	}
	return nil
}

func stats(ctx context.Context, j *storage.Journal) error {
	total, accepted, err := j.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("attempts: %d, accepted: %d\n", total, accepted)
	return nil
}
