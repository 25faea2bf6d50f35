package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen/sakura"
)

// Preset is a named set of tree proportions stored as YAML:
//
//	name: weeping
//	description: tall and narrow
//	tree:
//	  base_height: 10
//	  canopy_width: 6
//
// Keys missing from the file keep their default values.
type Preset struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Tree        sakura.Params `yaml:"tree"`
}

// ParsePreset decodes and validates a YAML preset. Unknown keys are errors.
func ParsePreset(data []byte) (*Preset, error) {
	p := &Preset{Tree: sakura.DefaultParams()}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if err := p.Tree.Validate(); err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return p, nil
}

// LoadPreset reads a preset from a local file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return ParsePreset(data)
}

// FetchPreset downloads the preset at src into dir and loads it. src is any
// go-getter address: a local path, an http(s) URL, a git or s3 source.
// Relative local paths resolve against the working directory.
func FetchPreset(ctx context.Context, src, dir string) (*Preset, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	dst := filepath.Join(dir, "preset.yaml")

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("fetch preset %s: %w", src, err)
	}
	return LoadPreset(dst)
}
