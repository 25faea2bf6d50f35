package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/blossom-gen/internal/server/config"
	"github.com/OCharnyshevich/blossom-gen/internal/server/world"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

// Storage handles file-based persistence for config and world data.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, "world"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// Dir returns the storage root.
func (s *Storage) Dir() string { return s.dir }

// Path resolves name inside the storage root unless it is absolute.
func (s *Storage) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// LoadConfig reads config.json into cfg. If the file does not exist, cfg is unchanged.
func (s *Storage) LoadConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.log.Info("loaded config from file", "path", path)
	return nil
}

// SaveConfig writes cfg to config.json atomically.
func (s *Storage) SaveConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	return s.atomicWriteJSON(path, cfg)
}

// LoadWorld reads overrides.json and bulk-loads block overrides into the
// world. It returns the world metadata, or nil if nothing was saved.
func (s *Storage) LoadWorld(w *world.World) (*WorldData, error) {
	path := filepath.Join(s.dir, "world", "overrides.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read world overrides: %w", err)
	}

	var wd WorldData
	if err := json.Unmarshal(data, &wd); err != nil {
		return nil, fmt.Errorf("parse world overrides: %w", err)
	}

	overrides := make(map[voxel.Pos]voxel.Material, len(wd.Overrides))
	for _, o := range wd.Overrides {
		overrides[voxel.Pos{X: o.X, Y: o.Y, Z: o.Z}] = voxel.Material(o.State)
	}

	w.LoadOverrides(overrides)
	s.log.Info("loaded world overrides", "count", len(overrides))
	return &wd, nil
}

// SaveWorld writes all block overrides to overrides.json atomically.
func (s *Storage) SaveWorld(w *world.World, meta WorldData) error {
	meta.Overrides = meta.Overrides[:0]
	w.ForEachOverride(func(pos voxel.Pos, m voxel.Material) {
		meta.Overrides = append(meta.Overrides, BlockOverride{
			X: pos.X, Y: pos.Y, Z: pos.Z, State: uint16(m),
		})
	})
	sortOverrides(meta.Overrides)

	path := filepath.Join(s.dir, "world", "overrides.json")
	if err := s.atomicWriteJSON(path, &meta); err != nil {
		return err
	}
	s.log.Info("saved world overrides", "path", path, "count", len(meta.Overrides))
	return nil
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
